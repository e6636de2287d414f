// SPDX-License-Identifier: MIT

// Package cayley - Table storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index
//     formula i*n + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors
//     instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).

package cayley

import (
	"fmt"
	"strings"
)

// Table is a finite-group multiplication table of order n.
// cells holds n*n element indices in row-major order: the product of
// elements i and j is cells[i*n+j].
//
// A Table produced by a constructor always satisfies the range invariant
// (every entry in 0..n-1). The group-theoretic Latin-square invariant is
// NOT enforced on construction; see Validate.
type Table struct {
	n     int   // group order
	cells []int // flat backing storage, length == n*n
}

// New creates an order-n Table with every entry zero.
// Returns ErrBadOrder when n < 1.
// Complexity: O(n²) time and memory.
func New(n int) (*Table, error) {
	if n < 1 {
		return nil, ErrBadOrder
	}

	return &Table{n: n, cells: make([]int, n*n)}, nil
}

// FromRows builds a Table from an n×n grid of element indices.
// The grid is copied; the caller keeps ownership of rows.
// Returns ErrBadOrder on an empty grid, ErrNotSquare when any row length
// differs from the row count, and ErrIndexRange when an entry lies outside
// 0..n-1.
// Complexity: O(n²).
func FromRows(rows [][]int) (*Table, error) {
	n := len(rows)
	if n < 1 {
		return nil, ErrBadOrder
	}
	cells := make([]int, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has length %d, want %d: %w", i, len(row), n, ErrNotSquare)
		}
		for j, k := range row {
			if k < 0 || k >= n {
				return nil, fmt.Errorf("entry (%d,%d)=%d: %w", i, j, k, ErrIndexRange)
			}
			cells = append(cells, k)
		}
	}

	return &Table{n: n, cells: cells}, nil
}

// Order returns the group order n.
func (t *Table) Order() int {
	return t.n
}

// At returns the product index stored at (i, j), i.e. the index of
// element i composed with element j.
func (t *Table) At(i, j int) (int, error) {
	if i < 0 || i >= t.n || j < 0 || j >= t.n {
		return 0, fmt.Errorf("At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return t.cells[i*t.n+j], nil
}

// Set writes product index k at (i, j).
func (t *Table) Set(i, j, k int) error {
	if i < 0 || i >= t.n || j < 0 || j >= t.n {
		return fmt.Errorf("Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if k < 0 || k >= t.n {
		return fmt.Errorf("Set(%d,%d)=%d: %w", i, j, k, ErrIndexRange)
	}
	t.cells[i*t.n+j] = k

	return nil
}

// Row returns a copy of row i.
func (t *Table) Row(i int) ([]int, error) {
	if i < 0 || i >= t.n {
		return nil, fmt.Errorf("Row(%d): %w", i, ErrOutOfRange)
	}
	row := make([]int, t.n)
	copy(row, t.cells[i*t.n:(i+1)*t.n])

	return row, nil
}

// Clone returns a deep copy of the table.
// Complexity: O(n²).
func (t *Table) Clone() *Table {
	cells := make([]int, len(t.cells))
	copy(cells, t.cells)

	return &Table{n: t.n, cells: cells}
}

// String implements fmt.Stringer for easy debugging.
func (t *Table) String() string {
	var b strings.Builder
	for i := 0; i < t.n; i++ {
		b.WriteString("[")
		for j := 0; j < t.n; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%d", t.cells[i*t.n+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// at is the unchecked fast-path lookup used by package algorithms;
// callers guarantee 0 ≤ i,j < n.
func (t *Table) at(i, j int) int {
	return t.cells[i*t.n+j]
}

// Validate checks the Latin-square invariant that Identity, Inverses and
// the regular representation silently assume: every row and every column
// must be a permutation of 0..n-1 (group closure plus cancellation — no
// index may repeat within a row or column).
//
// Identity/Inverses do NOT call Validate; they only detect the narrower
// structural defects their own contracts describe. Call Validate when the
// table comes from an untrusted source.
//
// Returns ErrNilTable on nil, ErrNotLatin on the first violating row or
// column, nil otherwise.
// Complexity: O(n²) time, O(n) scratch.
func Validate(t *Table) error {
	if t == nil {
		return ErrNilTable
	}
	n := t.n
	seen := make([]bool, n)

	// Rows first, in ascending order.
	for i := 0; i < n; i++ {
		for j := range seen {
			seen[j] = false
		}
		for j := 0; j < n; j++ {
			k := t.at(i, j)
			if seen[k] {
				return fmt.Errorf("row %d repeats element %d: %w", i, k, ErrNotLatin)
			}
			seen[k] = true
		}
	}

	// Then columns.
	for j := 0; j < n; j++ {
		for i := range seen {
			seen[i] = false
		}
		for i := 0; i < n; i++ {
			k := t.at(i, j)
			if seen[k] {
				return fmt.Errorf("column %d repeats element %d: %w", j, k, ErrNotLatin)
			}
			seen[k] = true
		}
	}

	return nil
}
