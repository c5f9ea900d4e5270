package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"vidharvest/internal/logging"
)

func TestNewConsoleIncludesComponentAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	component := logging.NewComponentLogger(logger, "pipeline")
	component.Info("item recorded", logging.Args(logging.String("status", "success"))...)

	out := buf.String()
	if !strings.Contains(out, "[pipeline]") {
		t.Fatalf("expected component tag in output, got %q", out)
	}
	if !strings.Contains(out, "item recorded") {
		t.Fatalf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, "status=success") {
		t.Fatalf("expected attr in output, got %q", out)
	}
}

func TestNewJSONEmitsValidObjects(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("download complete", logging.Args(logging.Int("segments", 3))...)

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v (%q)", err, buf.String())
	}
	if decoded["msg"] != "download complete" {
		t.Fatalf("unexpected msg field: %v", decoded["msg"])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("should be dropped")
	logger.Warn("should appear")
	out := buf.String()
	if strings.Contains(out, "should be dropped") {
		t.Fatalf("info line leaked past warn level: %q", out)
	}
	if !strings.Contains(out, "should appear") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("ignored", logging.Args(logging.Error(nil))...)
}
