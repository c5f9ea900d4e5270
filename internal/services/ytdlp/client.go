package ytdlp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"vidharvest/internal/media"
	"vidharvest/internal/segment"
	"vidharvest/internal/services"
)

// Options configures the client.
type Options struct {
	SearchTimeout     time.Duration
	DownloadTimeout   time.Duration
	ProbeTimeout      time.Duration
	VideoQuality      string
	SubtitleLanguages []string
}

// Option mutates the client during construction.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// Client wraps acquisition tool CLI interactions.
type Client struct {
	binary string
	opts   Options
	exec   Executor
}

// New constructs a client for the given tool binary.
func New(binary string, opts Options, clientOpts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("acquisition binary required")
	}
	client := &Client{
		binary: binary,
		opts:   opts,
		exec:   commandExecutor{},
	}
	for _, opt := range clientOpts {
		opt(client)
	}
	return client, nil
}

type searchEntry struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Duration float64 `json:"duration"`
	Uploader string  `json:"uploader"`
	URL      string  `json:"url"`
}

// Search resolves candidates for a keyword in search-engine rank order,
// deduplicated by identifier. A tool error or timeout is surfaced to the
// caller; no retry happens here.
func (c *Client) Search(ctx context.Context, keyword string, maxResults int) ([]media.Candidate, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, services.Wrap(services.ErrExternalTool, "search", "resolve", "keyword required", nil)
	}
	if maxResults <= 0 {
		maxResults = 1
	}

	searchCtx := ctx
	if c.opts.SearchTimeout > 0 {
		var cancel context.CancelFunc
		searchCtx, cancel = context.WithTimeout(ctx, c.opts.SearchTimeout)
		defer cancel()
	}

	args := []string{
		"--dump-json",
		"--no-download",
		"--flat-playlist",
		fmt.Sprintf("ytsearch%d:%s", maxResults, keyword),
	}

	seen := make(map[string]struct{}, maxResults)
	candidates := make([]media.Candidate, 0, maxResults)
	err := c.exec.Run(searchCtx, c.binary, args, func(line string) {
		line = strings.TrimSpace(line)
		if line == "" {
			return
		}
		var entry searchEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			return
		}
		if entry.ID == "" {
			return
		}
		if _, dup := seen[entry.ID]; dup {
			return
		}
		seen[entry.ID] = struct{}{}
		sourceURL := entry.URL
		if sourceURL == "" {
			sourceURL = "https://www.youtube.com/watch?v=" + entry.ID
		}
		candidates = append(candidates, media.Candidate{
			ID:              entry.ID,
			Title:           entry.Title,
			SourceURL:       sourceURL,
			DurationSeconds: int(entry.Duration),
			Uploader:        entry.Uploader,
			Platform:        media.DetectPlatform(sourceURL),
		})
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, services.Wrap(services.ErrTimeout, "search", "resolve", keyword, err)
		}
		return nil, services.Wrap(services.ErrExternalTool, "search", "resolve", keyword, err)
	}
	return candidates, nil
}

// ProbeDuration asks the tool for an item's duration in seconds. Items the
// tool cannot measure report zero.
func (c *Client) ProbeDuration(ctx context.Context, item media.Candidate) (int, error) {
	probeCtx := ctx
	if c.opts.ProbeTimeout > 0 {
		var cancel context.CancelFunc
		probeCtx, cancel = context.WithTimeout(ctx, c.opts.ProbeTimeout)
		defer cancel()
	}

	args := []string{"--print", "%(duration)s", "--no-download", item.SourceURL}
	var output string
	err := c.exec.Run(probeCtx, c.binary, args, func(line string) {
		if output == "" {
			output = strings.TrimSpace(line)
		}
	})
	if err != nil {
		return 0, classify("probe", item, err)
	}
	duration, convErr := strconv.Atoi(output)
	if convErr != nil {
		return 0, nil
	}
	return duration, nil
}

// Result reports the files a download produced.
type Result struct {
	VideoPath     string
	SubtitlePaths []string
}

// Download retrieves one item (or one segment window of it) into destDir
// under the given output name. Format selection follows the item's platform
// policy; subtitle tracks are requested where the platform provides them.
func (c *Client) Download(ctx context.Context, item media.Candidate, destDir, outputName string, window *segment.Window) (Result, error) {
	if destDir == "" {
		return Result{}, services.Wrap(services.ErrExternalTool, "download", "prepare", "destination directory required", nil)
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return Result{}, services.Wrap(services.ErrExternalTool, "download", "prepare", destDir, err)
	}

	dlCtx := ctx
	if c.opts.DownloadTimeout > 0 {
		var cancel context.CancelFunc
		dlCtx, cancel = context.WithTimeout(ctx, c.opts.DownloadTimeout)
		defer cancel()
	}

	outputPath := filepath.Join(destDir, outputName+".mp4")
	args := c.downloadArgs(item, outputPath, window)

	if err := c.exec.Run(dlCtx, c.binary, args, nil); err != nil {
		return Result{}, classify("download", item, err)
	}

	if _, err := os.Stat(outputPath); errors.Is(err, os.ErrNotExist) {
		return Result{}, services.Wrap(services.ErrExternalTool, "download", "verify",
			fmt.Sprintf("tool reported success but %s is missing", filepath.Base(outputPath)), nil)
	}

	result := Result{VideoPath: outputPath}
	result.SubtitlePaths = findSubtitles(destDir, outputName)
	return result, nil
}

func (c *Client) downloadArgs(item media.Candidate, outputPath string, window *segment.Window) []string {
	var args []string
	if item.Platform.SupportsQualityCap() && c.opts.VideoQuality != "" {
		args = append(args, "-f", c.opts.VideoQuality)
	}
	args = append(args,
		"--no-playlist",
		"--no-check-certificate",
		"--merge-output-format", "mp4",
		"-o", outputPath,
	)
	if item.Platform.SupportsSubtitles() && len(c.opts.SubtitleLanguages) > 0 {
		args = append(args,
			"--write-subs",
			"--sub-lang", strings.Join(c.opts.SubtitleLanguages, ","),
			"--convert-subs", "vtt",
		)
	}
	if window != nil && item.Platform.SupportsSections() {
		args = append(args, "--download-sections",
			fmt.Sprintf("*%d-%d", window.StartSeconds, window.EndSeconds))
	}
	return append(args, item.SourceURL)
}

func findSubtitles(destDir, outputName string) []string {
	entries, err := os.ReadDir(destDir)
	if err != nil {
		return nil
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, outputName+".") && strings.HasSuffix(strings.ToLower(name), ".vtt") {
			paths = append(paths, filepath.Join(destDir, name))
		}
	}
	return paths
}
