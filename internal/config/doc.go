// Package config loads, normalizes, and validates vidharvest configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the pipeline and CLI need: output directories, acquisition timeouts, the
// segmentation policy, candidate filtering lists, and logging options.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths and clear validation errors.
package config
