// SPDX-License-Identifier: MIT
// Package cayley: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the cayley
// package. All functions return these sentinels and tests check them via
// errors.Is. No function panics on user-triggered error conditions.

package cayley

import "errors"

var (
	// ErrNilTable indicates that a nil *Table was passed to a function.
	ErrNilTable = errors.New("cayley: nil table")

	// ErrBadOrder is returned by constructors when the requested group
	// order is < 1.
	ErrBadOrder = errors.New("cayley: order must be >= 1")

	// ErrNotSquare is returned by FromRows when the input grid is not n×n.
	ErrNotSquare = errors.New("cayley: table is not square")

	// ErrIndexRange is returned by FromRows and Set when an entry lies
	// outside the element index range 0..n-1.
	ErrIndexRange = errors.New("cayley: entry outside element range")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set/Row) return this, never panic.
	ErrOutOfRange = errors.New("cayley: index out of range")

	// ErrIdentity is returned by Identity when zero rows, or more than one
	// row, act as the identity. Covers malformed non-group tables.
	ErrIdentity = errors.New("cayley: no or multiple identities")

	// ErrInverses is returned by Inverses when some element has zero or
	// multiple inverses under the table's operation.
	ErrInverses = errors.New("cayley: every element does not have one inverse")

	// ErrNotLatin is returned by Validate when a row or column is not a
	// permutation of 0..n-1 (violating group closure + cancellation).
	ErrNotLatin = errors.New("cayley: row or column is not a permutation")
)
