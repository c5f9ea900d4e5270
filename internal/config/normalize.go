package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeAcquire()
	c.normalizeSegment()
	if err := c.normalizeFilter(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LedgerDir) == "" {
		c.Paths.LedgerDir = defaultLedgerDir
	}
	if c.Paths.LedgerDir, err = expandPath(c.Paths.LedgerDir); err != nil {
		return fmt.Errorf("paths.ledger_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeAcquire() {
	c.Acquire.Binary = strings.TrimSpace(c.Acquire.Binary)
	if c.Acquire.Binary == "" {
		c.Acquire.Binary = defaultAcquireBinary
	}
	if c.Acquire.SearchTimeout <= 0 {
		c.Acquire.SearchTimeout = defaultSearchTimeout
	}
	if c.Acquire.DownloadTimeout <= 0 {
		c.Acquire.DownloadTimeout = defaultDownloadTimeout
	}
	if c.Acquire.ProbeTimeout <= 0 {
		c.Acquire.ProbeTimeout = defaultProbeTimeout
	}
	if c.Acquire.MaxResults <= 0 {
		c.Acquire.MaxResults = defaultMaxResults
	}
	if c.Acquire.RateLimitSeconds < 0 {
		c.Acquire.RateLimitSeconds = defaultRateLimitSeconds
	}
	if strings.TrimSpace(c.Acquire.VideoQuality) == "" {
		c.Acquire.VideoQuality = defaultVideoQuality
	}
	languages := make([]string, 0, len(c.Acquire.SubtitleLanguages))
	for _, lang := range c.Acquire.SubtitleLanguages {
		if lang = strings.TrimSpace(lang); lang != "" {
			languages = append(languages, lang)
		}
	}
	if len(languages) == 0 {
		languages = defaultSubtitleLanguages()
	}
	c.Acquire.SubtitleLanguages = languages
}

func (c *Config) normalizeSegment() {
	if c.Segment.ThresholdSeconds <= 0 {
		c.Segment.ThresholdSeconds = defaultSegmentThreshold
	}
	if c.Segment.WindowSeconds <= 0 {
		c.Segment.WindowSeconds = defaultSegmentWindow
	}
}

func (c *Config) normalizeFilter() error {
	c.Filter.RequireKeywords = trimKeywords(c.Filter.RequireKeywords)
	c.Filter.ExcludeKeywords = trimKeywords(c.Filter.ExcludeKeywords)
	if c.Filter.MinDurationSeconds < 0 {
		c.Filter.MinDurationSeconds = 0
	}
	if strings.TrimSpace(c.Filter.ExcludeDir) != "" {
		expanded, err := expandPath(c.Filter.ExcludeDir)
		if err != nil {
			return fmt.Errorf("filter.exclude_dir: %w", err)
		}
		c.Filter.ExcludeDir = expanded
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}

func trimKeywords(keywords []string) []string {
	result := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			result = append(result, kw)
		}
	}
	return result
}
