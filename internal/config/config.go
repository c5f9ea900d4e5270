package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	OutputDir string `toml:"output_dir"`
	LedgerDir string `toml:"ledger_dir"`
	LogDir    string `toml:"log_dir"`
}

// Acquire contains configuration for the external acquisition tool.
type Acquire struct {
	Binary            string   `toml:"binary"`
	SearchTimeout     int      `toml:"search_timeout"`
	DownloadTimeout   int      `toml:"download_timeout"`
	ProbeTimeout      int      `toml:"probe_timeout"`
	MaxResults        int      `toml:"max_results"`
	RateLimitSeconds  int      `toml:"rate_limit_seconds"`
	VideoQuality      string   `toml:"video_quality"`
	SubtitleLanguages []string `toml:"subtitle_languages"`
}

// Segment contains configuration for long-form segmentation.
type Segment struct {
	ThresholdSeconds int `toml:"threshold_seconds"`
	WindowSeconds    int `toml:"window_seconds"`
}

// Filter contains configuration for candidate filtering during search
// resolution. Empty keyword lists disable the corresponding rule.
type Filter struct {
	RequireKeywords    []string `toml:"require_keywords"`
	ExcludeKeywords    []string `toml:"exclude_keywords"`
	MinDurationSeconds int      `toml:"min_duration_seconds"`
	ExcludeDir         string   `toml:"exclude_dir"`
}

// Logging contains configuration for log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config encapsulates all configuration values for vidharvest.
//
// Configuration sections by subsystem:
//   - Paths: output, ledger, and log directories
//   - Acquire: external tool binary, timeouts, quality, subtitle languages
//   - Segment: long-form segmentation threshold and window width
//   - Filter: title keyword and duration filtering for search results
//   - Logging: log format and level
type Config struct {
	Paths   Paths   `toml:"paths"`
	Acquire Acquire `toml:"acquire"`
	Segment Segment `toml:"segment"`
	Filter  Filter  `toml:"filter"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/vidharvest/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. The boolean reports
// whether a config file existed at the resolved path.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("vidharvest.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories a run needs before any item is
// processed.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.OutputDir, c.Paths.LedgerDir, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// AcquireBinary returns the external acquisition tool executable name.
func (c *Config) AcquireBinary() string {
	if strings.TrimSpace(c.Acquire.Binary) == "" {
		return defaultAcquireBinary
	}
	return c.Acquire.Binary
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
