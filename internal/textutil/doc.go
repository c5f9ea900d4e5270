// Package textutil provides text processing utilities for title
// fingerprinting, similarity, and filename sanitization.
//
// The primary use cases are:
//   - Creating token-based fingerprints from video titles for comparison
//   - Computing cosine similarity between fingerprints
//   - Sanitizing titles into safe output filenames
//
// Fingerprints use term frequency vectors normalized for efficient comparison.
// The tokenization process lowercases text, splits on non-alphanumeric
// characters, and filters tokens shorter than 3 characters.
package textutil
