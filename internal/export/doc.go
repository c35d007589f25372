// Package export writes snapshots of a review session back to disk in the
// word file format, named after the current position and time.
package export
