package deps

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(present, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}

	if !results[0].Available {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[0].Detail != "" {
		t.Fatalf("unexpected detail for available dependency: %s", results[0].Detail)
	}

	if results[1].Available {
		t.Fatalf("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatalf("expected detail message for missing binary")
	}
}

func TestCheckBinariesUnconfigured(t *testing.T) {
	results := CheckBinaries([]Requirement{{Name: "Blank", Command: "  "}})
	if results[0].Available {
		t.Fatal("blank command reported available")
	}
	if results[0].Detail != "command not configured" {
		t.Fatalf("unexpected detail: %s", results[0].Detail)
	}
}

func TestDefaultsCarryConfiguredDownloader(t *testing.T) {
	reqs := Defaults("yt-dlp-nightly")
	if len(reqs) == 0 || reqs[0].Command != "yt-dlp-nightly" {
		t.Fatalf("configured downloader not first requirement: %+v", reqs)
	}
	if reqs[0].Optional {
		t.Fatal("downloader must not be optional")
	}
}
