// Package model defines the data structures shared across the watermark
// pipeline: anchor positions, per-file results, batch reports, and
// persisted run records.
package model
