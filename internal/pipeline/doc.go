// Package pipeline orchestrates batch acquisition runs. A run resolves a
// work list (from a search keyword or a prepared URL list), then walks it
// sequentially: each item is deduplicated against the ledger, downloaded
// whole or in segment windows, its subtitles converted to plain text, and
// the result recorded as exactly one ledger row. Item failures are recorded
// and the run continues; only search and ledger write failures abort a run.
//
// Runs are single-instance per output directory, enforced with a flock lock
// file, and pause between items to stay polite to the remote platforms.
package pipeline
