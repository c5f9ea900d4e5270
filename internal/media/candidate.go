package media

import (
	"regexp"
	"strings"
)

// Platform identifies the hosting site a candidate originates from. The
// platform drives format selection and segmentation eligibility.
type Platform string

const (
	PlatformYouTube  Platform = "youtube"
	PlatformBilibili Platform = "bilibili"
	PlatformRTHK     Platform = "rthk"
	PlatformOther    Platform = "other"
)

// SupportsSections reports whether the platform's remote endpoint accepts
// ranged section downloads. Only YouTube honors them.
func (p Platform) SupportsSections() bool {
	return p == PlatformYouTube
}

// SupportsQualityCap reports whether the capped-resolution format selector
// applies to this platform.
func (p Platform) SupportsQualityCap() bool {
	return p == PlatformYouTube || p == PlatformBilibili
}

// SupportsSubtitles reports whether subtitle tracks are requested for this
// platform.
func (p Platform) SupportsSubtitles() bool {
	return p == PlatformYouTube || p == PlatformBilibili
}

// DetectPlatform classifies a source URL.
func DetectPlatform(rawURL string) Platform {
	lowered := strings.ToLower(rawURL)
	switch {
	case strings.Contains(lowered, "youtube.com"), strings.Contains(lowered, "youtu.be"):
		return PlatformYouTube
	case strings.Contains(lowered, "bilibili.com"):
		return PlatformBilibili
	case strings.Contains(lowered, "rthk.hk"):
		return PlatformRTHK
	default:
		return PlatformOther
	}
}

var youtubeIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:v=|/v/|youtu\.be/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`watch\?v=([a-zA-Z0-9_-]{11})`),
}

// VideoID extracts the platform video identifier from a URL. It returns an
// empty string when no identifier can be derived; callers fall back to the
// URL itself as identity in that case.
func VideoID(rawURL string) string {
	for _, pattern := range youtubeIDPatterns {
		if match := pattern.FindStringSubmatch(rawURL); match != nil {
			return match[1]
		}
	}
	return ""
}

// Candidate is a prospective piece of media identified by search or supplied
// directly, not yet downloaded.
type Candidate struct {
	ID              string
	Title           string
	SourceURL       string
	DurationSeconds int
	Uploader        string
	Platform        Platform
}

// Identity returns the dedupe key for a candidate. Ledger identity is the
// pair (platform, id); candidates without a derivable ID use the source URL.
func (c Candidate) Identity() (Platform, string) {
	id := strings.TrimSpace(c.ID)
	if id == "" {
		id = strings.TrimSpace(c.SourceURL)
	}
	return c.Platform, id
}

// FromURL builds a candidate for a directly supplied URL.
func FromURL(rawURL, title string) Candidate {
	rawURL = strings.TrimSpace(rawURL)
	id := VideoID(rawURL)
	if id == "" {
		id = rawURL
	}
	return Candidate{
		ID:        id,
		Title:     strings.TrimSpace(title),
		SourceURL: rawURL,
		Platform:  DetectPlatform(rawURL),
	}
}

// IsPlaylist reports whether a YouTube URL points at a playlist rather than a
// single video. Playlist links are skipped during input list reading.
func IsPlaylist(rawURL string) bool {
	return DetectPlatform(rawURL) == PlatformYouTube && strings.Contains(rawURL, "&list=")
}
