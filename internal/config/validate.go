package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateAcquire(); err != nil {
		return err
	}
	if err := c.validateSegment(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.OutputDir == "" {
		return errors.New("paths.output_dir must be set")
	}
	if c.Paths.LedgerDir == "" {
		return errors.New("paths.ledger_dir must be set")
	}
	return nil
}

func (c *Config) validateAcquire() error {
	if c.Acquire.Binary == "" {
		return errors.New("acquire.binary must be set")
	}
	if c.Acquire.SearchTimeout <= 0 {
		return errors.New("acquire.search_timeout must be positive")
	}
	if c.Acquire.DownloadTimeout <= 0 {
		return errors.New("acquire.download_timeout must be positive")
	}
	if c.Acquire.MaxResults <= 0 {
		return errors.New("acquire.max_results must be positive")
	}
	return nil
}

func (c *Config) validateSegment() error {
	if c.Segment.WindowSeconds > c.Segment.ThresholdSeconds {
		return fmt.Errorf("segment.window_seconds (%d) must not exceed segment.threshold_seconds (%d)",
			c.Segment.WindowSeconds, c.Segment.ThresholdSeconds)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level %q is not recognized", c.Logging.Level)
	}
	return nil
}
