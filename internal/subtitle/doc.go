// Package subtitle parses WebVTT timed-text files and extracts their
// readable content.
//
// Normalize is line-oriented and order-preserving: the header, numeric cue
// identifiers, timing lines, and blank lines are dropped, inline styling
// markup is stripped, and every surviving text line is kept verbatim in its
// original position. Repeated lines stay repeated; normalizing already
// normalized output changes nothing.
//
// Parse offers a structured cue view for callers that need timing data.
package subtitle
