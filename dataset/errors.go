// Package dataset: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// dataset package. All converters MUST return these sentinels and tests
// MUST check them via errors.Is. Suspicious-but-workable inputs go through
// the warning sink instead (see diag.go), never through errors.
package dataset

import "errors"

var (
	// ErrNilValues indicates that a nil *ndarray.Dense was passed where
	// sample data is required.
	ErrNilValues = errors.New("dataset: nil values array")

	// ErrCoordLength is returned when a supplied coordinate sequence's
	// length does not equal its dimension's axis length at final array
	// construction time. Fatal, no recovery.
	ErrCoordLength = errors.New("dataset: coordinate length does not match axis length")

	// ErrMissingCoord indicates that a dimension named in the final dims
	// list has no coordinate entry and none could be generated. Reachable
	// only through pathological dims overrides (reserved names placed in
	// the free shape).
	ErrMissingCoord = errors.New("dataset: no coordinate for dimension")

	// ErrDimCount indicates that the final dims list length does not match
	// the array rank, i.e. the caller supplied more free dims than the
	// array has free axes.
	ErrDimCount = errors.New("dataset: dims length does not match array rank")
)
