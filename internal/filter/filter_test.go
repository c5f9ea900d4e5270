package filter_test

import (
	"os"
	"path/filepath"
	"testing"

	"vidharvest/internal/config"
	"vidharvest/internal/filter"
	"vidharvest/internal/media"
)

func candidate(id, title string, duration int) media.Candidate {
	return media.Candidate{
		ID:              id,
		Title:           title,
		SourceURL:       "https://www.youtube.com/watch?v=" + id,
		DurationSeconds: duration,
		Platform:        media.PlatformYouTube,
	}
}

func TestApplyKeywordRules(t *testing.T) {
	f := filter.New(config.Filter{
		RequireKeywords:    []string{"hong kong", "香港"},
		ExcludeKeywords:    []string{"apartment"},
		MinDurationSeconds: 240,
	}, nil)

	candidates := []media.Candidate{
		candidate("aaa", "Hong Kong street food tour", 900),
		candidate("bbb", "Tokyo travel vlog", 900),
		candidate("ccc", "Hong Kong apartment tour", 900),
		candidate("ddd", "香港夜景", 900),
		candidate("eee", "Hong Kong shorts", 60),
	}
	kept, stats := f.Apply(candidates)
	if len(kept) != 2 {
		t.Fatalf("expected 2 kept, got %d: %+v", len(kept), kept)
	}
	if kept[0].ID != "aaa" || kept[1].ID != "ddd" {
		t.Fatalf("order or selection wrong: %+v", kept)
	}
	if stats.ByTitle != 1 || stats.ByExclude != 1 || stats.ByDuration != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestApplyEmptyRulesKeepEverything(t *testing.T) {
	f := filter.New(config.Filter{}, nil)
	candidates := []media.Candidate{
		candidate("aaa", "Anything", 10),
		candidate("bbb", "At all", 0),
	}
	kept, stats := f.Apply(candidates)
	if len(kept) != 2 || stats.Kept != 2 {
		t.Fatalf("expected all kept, got %+v", stats)
	}
}

func TestApplyExcludesByUploader(t *testing.T) {
	f := filter.New(config.Filter{ExcludeKeywords: []string{"blockedchannel"}}, nil)
	kept, _ := f.Apply([]media.Candidate{
		{ID: "aaa", Title: "Fine title", Uploader: "BlockedChannel HD", DurationSeconds: 900},
	})
	if len(kept) != 0 {
		t.Fatalf("uploader exclusion not applied: %+v", kept)
	}
}

func TestNearDuplicateSuppression(t *testing.T) {
	dir := t.TempDir()
	known := "hong kong harbour night walk in four k.mp4"
	if err := os.WriteFile(filepath.Join(dir, known), nil, 0o644); err != nil {
		t.Fatalf("seed exclude dir: %v", err)
	}

	f := filter.New(config.Filter{ExcludeDir: dir}, nil)
	kept, stats := f.Apply([]media.Candidate{
		candidate("aaa", "Hong Kong harbour night tour", 900),
		candidate("bbb", "Completely different subject matter", 900),
	})
	if stats.ByDuplicate != 1 {
		t.Fatalf("expected 1 duplicate drop, got %+v", stats)
	}
	if len(kept) != 1 || kept[0].ID != "bbb" {
		t.Fatalf("unexpected kept set: %+v", kept)
	}
}
