package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"vidharvest/internal/config"
	"vidharvest/internal/filter"
	"vidharvest/internal/inputlist"
	"vidharvest/internal/ledger"
	"vidharvest/internal/logging"
	"vidharvest/internal/media"
	"vidharvest/internal/segment"
	"vidharvest/internal/services"
	"vidharvest/internal/subtitle"
	"vidharvest/internal/textutil"
)

// maxTitleRunes caps sanitized titles used as output file stems.
const maxTitleRunes = 80

// lockFileName guards an output directory against concurrent runs.
const lockFileName = ".vidharvest.lock"

// Runner executes batch acquisition runs against a single output directory.
type Runner struct {
	cfg      *config.Config
	search   SearchProvider
	download DownloadProvider
	ledger   *ledger.Ledger
	logger   *slog.Logger
	force    bool
}

// Option adjusts runner construction.
type Option func(*Runner)

// WithForce makes the runner attempt items the ledger already records as
// succeeded. Forced attempts append a fresh ledger row.
func WithForce() Option {
	return func(r *Runner) { r.force = true }
}

// New constructs a runner. The ledger must already be open; the runner never
// closes it.
func New(cfg *config.Config, search SearchProvider, download DownloadProvider, led *ledger.Ledger, logger *slog.Logger, opts ...Option) (*Runner, error) {
	if cfg == nil || download == nil || led == nil {
		return nil, errors.New("runner requires config, download provider, and ledger")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	r := &Runner{
		cfg:      cfg,
		search:   search,
		download: download,
		ledger:   led,
		logger:   logging.NewComponentLogger(logger, "pipeline"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// RunSearch resolves a keyword into candidates, filters them, and processes
// the survivors. A search failure aborts the run before any item is
// attempted.
func (r *Runner) RunSearch(ctx context.Context, keyword string) (Stats, error) {
	if r.search == nil {
		return Stats{}, errors.New("runner has no search provider")
	}
	candidates, err := r.search.Search(ctx, keyword, r.cfg.Acquire.MaxResults)
	if err != nil {
		return Stats{}, services.Wrap(nil, "search", keyword, "keyword search failed", err)
	}
	candidates, _ = filter.New(r.cfg.Filter, r.logger).Apply(candidates)

	work := make([]workItem, 0, len(candidates))
	for _, candidate := range candidates {
		work = append(work, workItem{candidate: candidate, baseName: searchBaseName(candidate)})
	}
	return r.process(ctx, dedupeBaseNames(work))
}

// RunList processes a prepared URL list. Items keep their list numbering as
// the output file stem so re-runs land on the same names.
func (r *Runner) RunList(ctx context.Context, items []inputlist.Item) (Stats, error) {
	work := make([]workItem, 0, len(items))
	for i, item := range items {
		number := item.Number
		if number <= 0 {
			number = i + 1
		}
		work = append(work, workItem{
			candidate: media.FromURL(item.URL, item.Title),
			baseName:  fmt.Sprintf("%03d", number),
		})
	}
	return r.process(ctx, dedupeBaseNames(work))
}

func (r *Runner) process(ctx context.Context, work []workItem) (Stats, error) {
	stats := Stats{Total: len(work)}
	if len(work) == 0 {
		return stats, nil
	}

	lock := flock.New(filepath.Join(r.cfg.Paths.OutputDir, lockFileName))
	ok, err := lock.TryLock()
	if err != nil {
		return stats, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return stats, fmt.Errorf("another run already holds %s", lock.Path())
	}
	defer func() {
		_ = lock.Unlock()
	}()

	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	logger := r.logger.With(logging.FieldRunID, runID)
	logger.Info("run started", logging.Args(logging.Int("items", stats.Total))...)

	for i, item := range work {
		if i > 0 && !r.pause(ctx) {
			break
		}
		if ctx.Err() != nil {
			break
		}

		platform, id := item.candidate.Identity()
		if !r.force {
			done, err := r.ledger.HasSucceeded(ctx, platform, id)
			if err != nil {
				return stats, fmt.Errorf("ledger lookup: %w", err)
			}
			if done {
				logger.Info("already recorded, skipping",
					logging.Args(logging.String(logging.FieldItemID, id), logging.String(logging.FieldPlatform, string(platform)))...)
				stats.Deduped++
				continue
			}
		}

		outcome := r.processItem(ctx, logger, item)
		if err := r.ledger.Append(ctx, ledger.FromOutcome(outcome, runID)); err != nil {
			return stats, fmt.Errorf("record outcome for %s: %w", id, err)
		}
		switch outcome.Status {
		case media.StatusSuccess:
			stats.Succeeded++
		case media.StatusSkipped:
			stats.Skipped++
		default:
			stats.Failed++
		}
	}

	if err := r.ledger.Finalize(context.WithoutCancel(ctx)); err != nil {
		return stats, fmt.Errorf("finalize ledger: %w", err)
	}
	logger.Info("run finished", logging.Args(
		logging.Int("succeeded", stats.Succeeded),
		logging.Int("failed", stats.Failed),
		logging.Int("skipped", stats.Skipped),
		logging.Int("deduped", stats.Deduped),
	)...)
	return stats, ctx.Err()
}

// processItem drives one candidate through resolve, download, and subtitle
// conversion. It always returns an outcome; errors become failed outcomes
// rather than aborting the run.
func (r *Runner) processItem(ctx context.Context, logger *slog.Logger, item workItem) media.Outcome {
	candidate := item.candidate
	_, id := candidate.Identity()
	ctx = services.WithItemID(ctx, id)
	logger = logger.With(
		logging.FieldItemID, id,
		logging.FieldPlatform, string(candidate.Platform),
	)

	primary := filepath.Join(r.cfg.Paths.OutputDir, item.baseName+".mp4")
	if _, err := os.Stat(primary); err == nil {
		logger.Info("output already present, skipping download", logging.Args(logging.String("path", primary))...)
		return media.NewOutcome(candidate, media.StatusSkipped, []string{primary}, "")
	}

	if candidate.DurationSeconds == 0 {
		duration, err := r.download.ProbeDuration(ctx, candidate)
		switch {
		case err == nil:
			candidate.DurationSeconds = duration
		case services.Reason(err) == "unavailable" || services.Reason(err) == "restricted":
			logger.Warn("item not retrievable", logging.Args(logging.Error(err))...)
			return media.NewOutcome(candidate, media.StatusFailed, nil, err.Error())
		default:
			// Unknown duration only disables segmentation.
			logger.Warn("duration probe failed", logging.Args(logging.Error(err))...)
		}
	}

	windows := []segmentJob{{name: item.baseName}}
	if r.shouldSegment(candidate) {
		plan, err := segment.Compute(item.baseName, candidate.DurationSeconds, r.cfg.Segment.ThresholdSeconds, r.cfg.Segment.WindowSeconds)
		if err != nil {
			return media.NewOutcome(candidate, media.StatusFailed, nil, err.Error())
		}
		if plan.Split {
			logger.Info("splitting long item", logging.Args(
				logging.Int("duration_seconds", candidate.DurationSeconds),
				logging.Int("segments", len(plan.Segments)),
			)...)
			windows = windows[:0]
			for i := range plan.Segments {
				window := plan.Segments[i]
				windows = append(windows, segmentJob{name: window.OutputName, window: &window})
			}
		}
	}

	var paths []string
	for _, job := range windows {
		result, err := r.download.Download(ctx, candidate, r.cfg.Paths.OutputDir, job.name, job.window)
		if err != nil {
			logger.Warn("download failed", logging.Args(
				logging.String("output", job.name),
				logging.String("reason", services.Reason(err)),
				logging.Error(err),
			)...)
			return media.NewOutcome(candidate, media.StatusFailed, paths, err.Error())
		}
		paths = append(paths, result.VideoPath)
		for _, subPath := range result.SubtitlePaths {
			textPath, err := subtitle.ConvertFile(subPath)
			if err != nil {
				logger.Warn("subtitle conversion failed", logging.Args(
					logging.String("subtitle", subPath),
					logging.Error(err),
				)...)
				return media.NewOutcome(candidate, media.StatusFailed, paths, err.Error())
			}
			paths = append(paths, textPath)
		}
	}

	logger.Info("item complete", logging.Args(logging.Int("files", len(paths)))...)
	return media.NewOutcome(candidate, media.StatusSuccess, paths, "")
}

type segmentJob struct {
	name   string
	window *segment.Window
}

func (r *Runner) shouldSegment(candidate media.Candidate) bool {
	threshold := r.cfg.Segment.ThresholdSeconds
	return threshold > 0 &&
		candidate.DurationSeconds > threshold &&
		candidate.Platform.SupportsSections()
}

// pause waits the configured rate limit between items. It returns false when
// the context is cancelled during the wait.
func (r *Runner) pause(ctx context.Context) bool {
	delay := time.Duration(r.cfg.Acquire.RateLimitSeconds) * time.Second
	if delay <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// searchBaseName chooses an output file stem for a search result. Titles are
// sanitized and truncated; candidates with unusable titles fall back to their
// platform ID.
func searchBaseName(candidate media.Candidate) string {
	name := textutil.TitleToFileName(candidate.Title, maxTitleRunes)
	if name == "" {
		name = textutil.SanitizeToken(candidate.ID)
	}
	return name
}

// dedupeBaseNames suffixes repeated stems so two items in one run never
// overwrite each other.
func dedupeBaseNames(work []workItem) []workItem {
	seen := make(map[string]int, len(work))
	for i := range work {
		name := work[i].baseName
		seen[name]++
		if n := seen[name]; n > 1 {
			work[i].baseName = fmt.Sprintf("%s_%d", name, n)
		}
	}
	return work
}
