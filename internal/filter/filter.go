// Package filter prunes search candidates before download: keyword
// requirements, exclusions, minimum duration, and near-duplicate suppression
// against a directory of previously downloaded media.
package filter

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"vidharvest/internal/config"
	"vidharvest/internal/logging"
	"vidharvest/internal/media"
	"vidharvest/internal/textutil"
)

// duplicateSimilarityThreshold is the cosine similarity above which two
// titles are treated as the same video even when fewer than three exact
// words overlap.
const duplicateSimilarityThreshold = 0.8

// Stats counts why candidates were dropped.
type Stats struct {
	Input       int
	Kept        int
	ByTitle     int
	ByExclude   int
	ByDuration  int
	ByDuplicate int
}

// Filter applies the configured candidate rules.
type Filter struct {
	requireKeywords []string
	excludeKeywords []string
	minDuration     int
	known           []knownTitle
	logger          *slog.Logger
}

type knownTitle struct {
	title       string
	words       map[string]struct{}
	fingerprint *textutil.Fingerprint
}

// New builds a filter from configuration. When cfg.ExcludeDir is set, the
// stems of media files already present there seed near-duplicate
// suppression.
func New(cfg config.Filter, logger *slog.Logger) *Filter {
	f := &Filter{
		requireKeywords: lowerAll(cfg.RequireKeywords),
		excludeKeywords: lowerAll(cfg.ExcludeKeywords),
		minDuration:     cfg.MinDurationSeconds,
		logger:          logging.NewComponentLogger(logger, "filter"),
	}
	if dir := strings.TrimSpace(cfg.ExcludeDir); dir != "" {
		f.known = loadKnownTitles(dir)
		f.logger.Debug("loaded downloaded titles for dedupe",
			logging.Args(logging.Int("count", len(f.known)))...)
	}
	return f
}

// Apply returns the candidates that pass every rule, preserving input order.
func (f *Filter) Apply(candidates []media.Candidate) ([]media.Candidate, Stats) {
	stats := Stats{Input: len(candidates)}
	kept := make([]media.Candidate, 0, len(candidates))
	for _, candidate := range candidates {
		switch {
		case f.isNearDuplicate(candidate.Title):
			stats.ByDuplicate++
		case f.isExcluded(candidate.Title) || f.isExcluded(candidate.Uploader):
			stats.ByExclude++
		case !f.hasRequiredKeyword(candidate.Title):
			stats.ByTitle++
		case f.minDuration > 0 && candidate.DurationSeconds < f.minDuration:
			stats.ByDuration++
		default:
			kept = append(kept, candidate)
		}
	}
	stats.Kept = len(kept)
	f.logger.Info("filtered candidates", logging.Args(
		logging.Int("input", stats.Input),
		logging.Int("kept", stats.Kept),
		logging.Int("dropped_duplicate", stats.ByDuplicate),
		logging.Int("dropped_excluded", stats.ByExclude),
		logging.Int("dropped_title", stats.ByTitle),
		logging.Int("dropped_duration", stats.ByDuration),
	)...)
	return kept, stats
}

func (f *Filter) hasRequiredKeyword(title string) bool {
	if len(f.requireKeywords) == 0 {
		return true
	}
	lowered := strings.ToLower(title)
	for _, kw := range f.requireKeywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

func (f *Filter) isExcluded(text string) bool {
	if len(f.excludeKeywords) == 0 || text == "" {
		return false
	}
	lowered := strings.ToLower(text)
	for _, kw := range f.excludeKeywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// isNearDuplicate treats a candidate as already downloaded when its title
// shares three or more words with a known title, or when the term-frequency
// fingerprints of the two titles are nearly identical. Short titles are
// compared too loosely by word overlap, so they are always kept.
func (f *Filter) isNearDuplicate(title string) bool {
	normalized := strings.ToLower(strings.TrimSpace(title))
	if len(normalized) <= 20 {
		return false
	}
	words := wordSet(normalized)
	fingerprint := textutil.NewFingerprint(normalized)
	for _, known := range f.known {
		if len(known.title) <= 20 {
			continue
		}
		common := 0
		for word := range known.words {
			if _, ok := words[word]; ok {
				common++
			}
		}
		if common >= 3 {
			return true
		}
		if textutil.CosineSimilarity(fingerprint, known.fingerprint) >= duplicateSimilarityThreshold {
			return true
		}
	}
	return false
}

func wordSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, word := range strings.Fields(text) {
		set[word] = struct{}{}
	}
	return set
}

func lowerAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func loadKnownTitles(dir string) []knownTitle {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var known []knownTitle
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".mp4" && ext != ".mkv" && ext != ".webm" {
			continue
		}
		stem := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		title := strings.ToLower(strings.TrimSpace(stem))
		known = append(known, knownTitle{
			title:       title,
			words:       wordSet(title),
			fingerprint: textutil.NewFingerprint(title),
		})
	}
	return known
}
