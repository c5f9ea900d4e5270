package main

import (
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"vidharvest/internal/config"
	"vidharvest/internal/ledger"
	"vidharvest/internal/logging"
	"vidharvest/internal/pipeline"
	"vidharvest/internal/services/ytdlp"
)

// configPathEnv overrides the configuration file location when the --config
// flag is not given. A .env file in the working directory can set it.
const configPathEnv = "VIDHARVEST_CONFIG"

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configPath())
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) logger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: os.Stderr,
	})
}

func (c *commandContext) openLedger() (*ledger.Ledger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return ledger.Open(cfg.Paths.LedgerDir)
}

func (c *commandContext) newClient() (*ytdlp.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return ytdlp.New(cfg.AcquireBinary(), ytdlp.Options{
		SearchTimeout:     time.Duration(cfg.Acquire.SearchTimeout) * time.Second,
		DownloadTimeout:   time.Duration(cfg.Acquire.DownloadTimeout) * time.Second,
		ProbeTimeout:      time.Duration(cfg.Acquire.ProbeTimeout) * time.Second,
		VideoQuality:      cfg.Acquire.VideoQuality,
		SubtitleLanguages: cfg.Acquire.SubtitleLanguages,
	})
}

// newRunner wires a pipeline runner for one command invocation. The caller
// owns the returned ledger and must close it after the run.
func (c *commandContext) newRunner(force bool) (*pipeline.Runner, *ledger.Ledger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := c.logger()
	if err != nil {
		return nil, nil, err
	}
	client, err := c.newClient()
	if err != nil {
		return nil, nil, err
	}
	led, err := c.openLedger()
	if err != nil {
		return nil, nil, err
	}
	var opts []pipeline.Option
	if force {
		opts = append(opts, pipeline.WithForce())
	}
	runner, err := pipeline.New(cfg, client, client, led, logger, opts...)
	if err != nil {
		_ = led.Close()
		return nil, nil, err
	}
	return runner, led, nil
}

func (c *commandContext) configPath() string {
	if c.configFlag != nil {
		if path := strings.TrimSpace(*c.configFlag); path != "" {
			return path
		}
	}
	return strings.TrimSpace(os.Getenv(configPathEnv))
}
