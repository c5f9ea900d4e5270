package ledger

import (
	"fmt"
	"strings"
	"time"

	"vidharvest/internal/media"
)

// Entry is one persisted acquisition attempt.
type Entry struct {
	Platform        media.Platform
	VideoID         string
	Title           string
	URL             string
	DurationSeconds int
	Uploader        string
	Status          media.OutcomeStatus
	Error           string
	LocalPaths      []string
	RunID           string
	DownloadedAt    time.Time
}

// FromOutcome converts a pipeline outcome to its ledger row.
func FromOutcome(outcome media.Outcome, runID string) Entry {
	platform, id := outcome.Item.Identity()
	return Entry{
		Platform:        platform,
		VideoID:         id,
		Title:           outcome.Item.Title,
		URL:             outcome.Item.SourceURL,
		DurationSeconds: outcome.Item.DurationSeconds,
		Uploader:        outcome.Item.Uploader,
		Status:          outcome.Status,
		Error:           outcome.Error,
		LocalPaths:      append([]string(nil), outcome.LocalPaths...),
		RunID:           runID,
		DownloadedAt:    outcome.Timestamp,
	}
}

// FormatDuration renders seconds as m:ss for the human-facing surfaces.
// Zero or unknown durations render empty.
func FormatDuration(seconds int) string {
	if seconds <= 0 {
		return ""
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func joinPaths(paths []string) string {
	return strings.Join(paths, ";")
}

func splitPaths(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, ";")
}
