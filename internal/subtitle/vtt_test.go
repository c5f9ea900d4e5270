package subtitle_test

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"vidharvest/internal/subtitle"
)

const sampleVTT = "WEBVTT\n\n1\n00:00:01.000 --> 00:00:04.000\nHello\nWorld\n\n2\n00:00:04.500 --> 00:00:08.000\nAgain\n"

func TestNormalizeSample(t *testing.T) {
	got := subtitle.Normalize(sampleVTT)
	want := []string{"Hello", "World", "Again"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Normalize = %v, want %v", got, want)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	first := subtitle.Normalize(sampleVTT)
	second := subtitle.Normalize(strings.Join(first, "\n"))
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("second pass changed output: %v vs %v", first, second)
	}
}

func TestNormalizeStripsInlineMarkup(t *testing.T) {
	content := "WEBVTT\n\n00:00:01.000 --> 00:00:02.000 align:start position:0%\n<c.colorCCCCCC>styled</c> and <00:00:01.500>timed\n"
	got := subtitle.Normalize(content)
	want := []string{"styled and timed"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Normalize = %v, want %v", got, want)
	}
}

func TestNormalizePreservesRepeatsAndOrder(t *testing.T) {
	content := "WEBVTT\n\n1\n00:00:01.000 --> 00:00:02.000\nsame line\n\n2\n00:00:02.000 --> 00:00:03.000\nsame line\n"
	got := subtitle.Normalize(content)
	if !reflect.DeepEqual(got, []string{"same line", "same line"}) {
		t.Fatalf("repeated lines not preserved: %v", got)
	}
}

func TestNormalizeHeaderOnly(t *testing.T) {
	if got := subtitle.Normalize("WEBVTT\n"); len(got) != 0 {
		t.Fatalf("expected empty output, got %v", got)
	}
}

func TestParseBuildsCues(t *testing.T) {
	doc, err := subtitle.Parse(sampleVTT)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Cues) != 2 {
		t.Fatalf("expected 2 cues, got %d", len(doc.Cues))
	}
	first := doc.Cues[0]
	if first.StartTime != time.Second || first.EndTime != 4*time.Second {
		t.Fatalf("unexpected first cue range: %v %v", first.StartTime, first.EndTime)
	}
	if !reflect.DeepEqual(first.Lines, []string{"Hello", "World"}) {
		t.Fatalf("unexpected first cue lines: %v", first.Lines)
	}
	second := doc.Cues[1]
	if second.StartTime != 4500*time.Millisecond {
		t.Fatalf("unexpected second cue start: %v", second.StartTime)
	}
	if !reflect.DeepEqual(doc.Lines(), []string{"Hello", "World", "Again"}) {
		t.Fatalf("unexpected flattened lines: %v", doc.Lines())
	}
}

func TestParseShortTimestampForm(t *testing.T) {
	doc, err := subtitle.Parse("WEBVTT\n\n01:30.250 --> 01:31.000\nshort form\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Cues) != 1 {
		t.Fatalf("expected 1 cue, got %d", len(doc.Cues))
	}
	want := time.Minute + 30*time.Second + 250*time.Millisecond
	if doc.Cues[0].StartTime != want {
		t.Fatalf("unexpected start: %v want %v", doc.Cues[0].StartTime, want)
	}
}

func TestParseHeaderOnlyYieldsEmptyDocument(t *testing.T) {
	doc, err := subtitle.Parse("WEBVTT\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Cues) != 0 {
		t.Fatalf("expected no cues, got %d", len(doc.Cues))
	}
}

func TestConvertFileAndDir(t *testing.T) {
	dir := t.TempDir()
	vttPath := filepath.Join(dir, "episode.vtt")
	if err := os.WriteFile(vttPath, []byte(sampleVTT), 0o644); err != nil {
		t.Fatalf("write vtt: %v", err)
	}
	// A BOM-prefixed file exercises the encoding cascade.
	bomPath := filepath.Join(dir, "bom.vtt")
	bom := append([]byte{0xEF, 0xBB, 0xBF}, []byte(sampleVTT)...)
	if err := os.WriteFile(bomPath, bom, 0o644); err != nil {
		t.Fatalf("write bom vtt: %v", err)
	}

	converted, err := subtitle.ConvertDir(dir)
	if err != nil {
		t.Fatalf("ConvertDir: %v", err)
	}
	if converted != 2 {
		t.Fatalf("expected 2 conversions, got %d", converted)
	}

	data, err := os.ReadFile(filepath.Join(dir, "episode.txt"))
	if err != nil {
		t.Fatalf("read txt: %v", err)
	}
	if string(data) != "Hello\nWorld\nAgain\n" {
		t.Fatalf("unexpected txt content: %q", string(data))
	}
}
