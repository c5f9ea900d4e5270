package preflight

import (
	"os"
	"path/filepath"
	"testing"

	"vidharvest/internal/config"
)

func TestCheckDirectoryAccessOK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("Output directory", dir)
	if !result.OK {
		t.Fatalf("expected OK for %s: %+v", dir, result)
	}
}

func TestCheckDirectoryAccessNotExist(t *testing.T) {
	result := CheckDirectoryAccess("Output directory", filepath.Join(t.TempDir(), "missing"))
	if result.OK {
		t.Fatalf("expected failure: %+v", result)
	}
}

func TestCheckDirectoryAccessNotDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	result := CheckDirectoryAccess("Output directory", file)
	if result.OK {
		t.Fatalf("expected failure for non-directory: %+v", result)
	}
}

func TestRunAllNilConfig(t *testing.T) {
	results := RunAll(nil)
	if len(results) != 1 || results[0].OK {
		t.Fatalf("expected single failing result: %+v", results)
	}
}

func TestRunAllReportsDirectoriesAndBinaries(t *testing.T) {
	defaults := config.Default()
	cfg := &defaults
	cfg.Paths.OutputDir = t.TempDir()
	cfg.Paths.LedgerDir = t.TempDir()
	cfg.Paths.LogDir = t.TempDir()
	cfg.Acquire.Binary = "definitely-not-installed-anywhere"

	results := RunAll(cfg)
	if len(results) < 4 {
		t.Fatalf("expected directory and binary checks, got %+v", results)
	}
	for _, result := range results[:3] {
		if !result.OK {
			t.Fatalf("directory check failed unexpectedly: %+v", result)
		}
	}
	if !Failed(results) {
		t.Fatal("missing downloader should fail preflight")
	}
}
