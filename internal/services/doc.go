// Package services holds shared plumbing for external tool integrations:
// sentinel error markers used to classify failures, and context annotation
// helpers that tag log lines with run and item identifiers.
package services
