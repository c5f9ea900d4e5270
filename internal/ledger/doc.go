// Package ledger persists the durable record of every acquisition attempt.
//
// Three surfaces are kept consistent: a SQLite index keyed by
// (platform, video id) that powers dedupe and resumable re-runs, a CSV row
// file flushed after every append so a crash never leaves a torn row, and an
// XLSX mirror rebuilt wholesale at the end of a run. Append is the only
// mutating operation; prior rows are never edited.
package ledger
