// Package ndarray: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// ndarray package. Constructors and accessors return these sentinels and
// tests check them via errors.Is. No method panics on user-triggered
// conditions.
package ndarray

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (an extent <= 0, or rank 0 where at least one axis is required).
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrOutOfRange indicates an index outside valid bounds, or an index
	// whose arity does not match the array rank.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrSizeMismatch indicates that a data buffer's length does not equal
	// the element count implied by the shape.
	ErrSizeMismatch = errors.New("ndarray: data length does not match shape size")

	// ErrNilDense indicates that a nil *Dense was passed where a value is required.
	ErrNilDense = errors.New("ndarray: nil array")
)
