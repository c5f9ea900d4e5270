package pipeline

import (
	"context"

	"vidharvest/internal/media"
	"vidharvest/internal/segment"
	"vidharvest/internal/services/ytdlp"
)

// SearchProvider resolves a keyword into download candidates.
type SearchProvider interface {
	Search(ctx context.Context, keyword string, maxResults int) ([]media.Candidate, error)
}

// DownloadProvider retrieves media and probes metadata for one candidate.
// A nil window downloads the whole item; a non-nil window downloads only
// that section.
type DownloadProvider interface {
	ProbeDuration(ctx context.Context, item media.Candidate) (int, error)
	Download(ctx context.Context, item media.Candidate, destDir, outputName string, window *segment.Window) (ytdlp.Result, error)
}

// Stats summarizes one run.
type Stats struct {
	Total     int
	Succeeded int
	Failed    int
	Skipped   int
	Deduped   int
}

// workItem pairs a candidate with the output file stem chosen for it.
type workItem struct {
	candidate media.Candidate
	baseName  string
}
