// Package segment decides whether a media item must be split and computes
// the segment boundaries.
//
// Planning is a pure function of duration, threshold, and window width; it
// performs no I/O and never invokes transcoding. Durations at or below the
// threshold produce the identity plan: one unsuffixed segment spanning the
// whole item.
package segment
