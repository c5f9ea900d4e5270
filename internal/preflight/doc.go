// Package preflight verifies that a host can run acquisition batches:
// working directories must exist and be writable, and the external
// downloader must be installed. Checks are advisory for optional
// dependencies and hard failures otherwise.
package preflight
