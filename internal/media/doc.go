// Package media defines the domain types shared across the acquisition
// pipeline: candidate items produced by search resolution or input lists,
// download outcomes, and platform detection from source URLs.
//
// Candidates are immutable once created; outcomes are created once per item
// per run and never mutated afterward. A retry produces a new outcome.
package media
