package media_test

import (
	"testing"

	"vidharvest/internal/media"
)

func TestDetectPlatform(t *testing.T) {
	cases := []struct {
		url  string
		want media.Platform
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", media.PlatformYouTube},
		{"https://youtu.be/dQw4w9WgXcQ", media.PlatformYouTube},
		{"https://www.bilibili.com/video/BV1xx411c7mD", media.PlatformBilibili},
		{"https://www.rthk.hk/tv/dtt31/programme/hongkongstories", media.PlatformRTHK},
		{"https://example.com/video.mp4", media.PlatformOther},
	}
	for _, tc := range cases {
		if got := media.DetectPlatform(tc.url); got != tc.want {
			t.Fatalf("DetectPlatform(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}

func TestVideoID(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/abc123XYZ_-", "abc123XYZ_-"},
		{"https://www.rthk.hk/tv/programme", ""},
	}
	for _, tc := range cases {
		if got := media.VideoID(tc.url); got != tc.want {
			t.Fatalf("VideoID(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}

func TestFromURLFallsBackToURLIdentity(t *testing.T) {
	c := media.FromURL("https://www.rthk.hk/tv/some-episode", "Episode")
	platform, id := c.Identity()
	if platform != media.PlatformRTHK {
		t.Fatalf("unexpected platform: %q", platform)
	}
	if id != "https://www.rthk.hk/tv/some-episode" {
		t.Fatalf("expected URL identity fallback, got %q", id)
	}
}

func TestIsPlaylist(t *testing.T) {
	if !media.IsPlaylist("https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PL123") {
		t.Fatal("expected playlist URL to be detected")
	}
	if media.IsPlaylist("https://www.youtube.com/watch?v=dQw4w9WgXcQ") {
		t.Fatal("plain video URL misclassified as playlist")
	}
}

func TestPlatformCapabilities(t *testing.T) {
	if !media.PlatformYouTube.SupportsSections() {
		t.Fatal("youtube should support sections")
	}
	if media.PlatformBilibili.SupportsSections() {
		t.Fatal("bilibili should not support sections")
	}
	if !media.PlatformBilibili.SupportsQualityCap() || !media.PlatformBilibili.SupportsSubtitles() {
		t.Fatal("bilibili should support quality cap and subtitles")
	}
	if media.PlatformRTHK.SupportsSubtitles() {
		t.Fatal("rthk should not request subtitles")
	}
}
