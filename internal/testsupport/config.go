// Package testsupport builds configured fixtures for package tests: configs
// seeded with per-test temp directories, open ledgers with registered
// cleanup, and stub external binaries on PATH.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"vidharvest/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// Rate limiting and candidate filtering are disabled so tests run fast and
// deterministically.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.OutputDir = filepath.Join(base, "downloads")
	cfgVal.Paths.LedgerDir = filepath.Join(base, "ledger")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Acquire.RateLimitSeconds = 0
	cfgVal.Filter = config.Filter{}

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return builder.cfg
}

// WithSegmenting overrides the long-form segmentation threshold and window.
func WithSegmenting(thresholdSeconds, windowSeconds int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Segment.ThresholdSeconds = thresholdSeconds
		b.cfg.Segment.WindowSeconds = windowSeconds
	}
}

// WithFilter sets the candidate filter rules on the test config.
func WithFilter(f config.Filter) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Filter = f
	}
}

// WithStubbedBinaries writes stub executables for the provided names and
// prepends them to PATH. If names is empty, the downloader binary is stubbed.
func WithStubbedBinaries(names ...string) ConfigOption {
	return func(b *configBuilder) {
		if len(names) == 0 {
			names = []string{b.cfg.AcquireBinary()}
		}
		binDir := filepath.Join(b.baseDir, "bin")
		if err := os.MkdirAll(binDir, 0o755); err != nil {
			b.t.Fatalf("mkdir bin dir: %v", err)
		}
		script := []byte("#!/bin/sh\nexit 0\n")
		for _, name := range names {
			target := filepath.Join(binDir, name)
			if err := os.WriteFile(target, script, 0o755); err != nil {
				b.t.Fatalf("write stub %s: %v", name, err)
			}
		}
		b.t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	}
}
