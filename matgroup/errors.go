// SPDX-License-Identifier: MIT
// Package matgroup: sentinel error set.
// Package-level sentinels only; functions return these (possibly wrapped
// with %w for context) and tests match them via errors.Is.

package matgroup

import "errors"

var (
	// ErrBadDimension is returned when a requested matrix dimension is < 1.
	ErrBadDimension = errors.New("matgroup: dimension must be >= 1")

	// ErrBadOrder is returned by Rotations when the requested group order
	// is < 1.
	ErrBadOrder = errors.New("matgroup: order must be >= 1")

	// ErrBadData is returned by FromData when the flat slice length does
	// not equal d*d.
	ErrBadData = errors.New("matgroup: data length does not match dimension")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are
	// required (matrix construction and Set).
	ErrNaNInf = errors.New("matgroup: NaN or Inf encountered")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matgroup: index out of range")

	// ErrNilMatrix indicates that a nil *Dense was used.
	ErrNilMatrix = errors.New("matgroup: nil matrix")

	// ErrEmptySet is returned by MultiplicationTable on an empty input set.
	ErrEmptySet = errors.New("matgroup: matrix set is empty")

	// ErrDimensionMismatch indicates that two matrices in an operation do
	// not share the same dimension.
	ErrDimensionMismatch = errors.New("matgroup: dimension mismatch")

	// ErrBadTolerance is returned when Options.Tol is not a positive,
	// finite number.
	ErrBadTolerance = errors.New("matgroup: tolerance must be positive and finite")

	// ErrNotClosed is returned in Strict mode when some pairwise product
	// matches no matrix in the set within Tol.
	ErrNotClosed = errors.New("matgroup: set is not closed under multiplication")

	// ErrAmbiguous is returned in Strict mode when some pairwise product
	// matches more than one matrix in the set within Tol.
	ErrAmbiguous = errors.New("matgroup: ambiguous match within tolerance")
)
