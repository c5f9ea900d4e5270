// Command vidharvest acquires batches of videos for corpus building. It
// searches platforms by keyword or reads prepared URL lists, downloads each
// item with yt-dlp, splits long videos into section windows, converts
// subtitle tracks to plain text, and records every attempt in a durable
// ledger.
package main
