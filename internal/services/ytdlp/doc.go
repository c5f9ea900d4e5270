// Package ytdlp wraps the external acquisition tool (yt-dlp or compatible)
// behind search, probe, and download operations.
//
// The tool is treated as a black box: requests are declarative argument
// lists, search metadata arrives as one JSON object per stdout line, and
// failures surface as classified sentinel errors from the services package.
// Command execution is abstracted behind an Executor so tests can substitute
// a fake subprocess.
package ytdlp
