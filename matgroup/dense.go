// SPDX-License-Identifier: MIT

// Package matgroup - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index
//     formula i*d + j.
//   - Guarantee safety at the public surface: At/Set return errors instead
//     of panicking; ingestion rejects NaN/Inf.
//   - Keep algorithmic determinism (fixed loop orders).

package matgroup

import (
	"fmt"
	"math"
	"strings"
)

// Dense is a square row-major matrix of float64 values.
// d is the dimension and data holds d*d elements in row-major order.
type Dense struct {
	d    int       // dimension
	data []float64 // flat backing storage, length == d*d
}

// NewDense creates a d×d Dense matrix initialized to zeros.
// Returns ErrBadDimension when d < 1.
// Complexity: O(d²) time and memory.
func NewDense(d int) (*Dense, error) {
	if d < 1 {
		return nil, ErrBadDimension
	}

	return &Dense{d: d, data: make([]float64, d*d)}, nil
}

// FromData builds a d×d Dense from a flat row-major slice of length d*d.
// The slice is copied; the caller keeps ownership of data. Non-finite
// values are rejected.
// Complexity: O(d²).
func FromData(d int, data []float64) (*Dense, error) {
	if d < 1 {
		return nil, ErrBadDimension
	}
	if len(data) != d*d {
		return nil, fmt.Errorf("len(data)=%d, want %d: %w", len(data), d*d, ErrBadData)
	}
	for idx, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("data[%d]=%g: %w", idx, v, ErrNaNInf)
		}
	}
	cp := make([]float64, len(data))
	copy(cp, data)

	return &Dense{d: d, data: cp}, nil
}

// Identity returns the d×d identity matrix.
// Complexity: O(d²).
func Identity(d int) (*Dense, error) {
	m, err := NewDense(d)
	if err != nil {
		return nil, err
	}
	for i := 0; i < d; i++ {
		m.data[i*d+i] = 1
	}

	return m, nil
}

// Dim returns the matrix dimension d.
func (m *Dense) Dim() int {
	return m.d
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	if row < 0 || row >= m.d || col < 0 || col >= m.d {
		return 0, fmt.Errorf("At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return m.data[row*m.d+col], nil
}

// Set assigns value v at (row, col). Non-finite values are rejected.
func (m *Dense) Set(row, col int, v float64) error {
	if row < 0 || row >= m.d || col < 0 || col >= m.d {
		return fmt.Errorf("Set(%d,%d): %w", row, col, ErrOutOfRange)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("Set(%d,%d)=%g: %w", row, col, v, ErrNaNInf)
	}
	m.data[row*m.d+col] = v

	return nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(d²).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{d: m.d, data: cp}
}

// Mul returns the matrix product m·o as a fresh Dense; neither operand is
// mutated. Fixed i→k→j loop order over the flat slices.
// Complexity: O(d³) time, O(d²) memory.
func (m *Dense) Mul(o *Dense) (*Dense, error) {
	if o == nil {
		return nil, ErrNilMatrix
	}
	if m.d != o.d {
		return nil, fmt.Errorf("Mul %d×%d by %d×%d: %w", m.d, m.d, o.d, o.d, ErrDimensionMismatch)
	}
	d := m.d
	out := &Dense{d: d, data: make([]float64, d*d)}
	for i := 0; i < d; i++ {
		for k := 0; k < d; k++ {
			mik := m.data[i*d+k]
			if mik == 0 {
				continue
			}
			for j := 0; j < d; j++ {
				out.data[i*d+j] += mik * o.data[k*d+j]
			}
		}
	}

	return out, nil
}

// EqualWithin reports whether every entry of m and o differs by strictly
// less than tol in absolute value. An elementwise bound, not a norm: all
// d² entries must individually satisfy |m[i,j]-o[i,j]| < tol.
// Returns false when o is nil or the dimensions differ.
// Complexity: O(d²).
func (m *Dense) EqualWithin(o *Dense, tol float64) bool {
	if o == nil || m.d != o.d {
		return false
	}
	for idx, v := range m.data {
		if math.Abs(v-o.data[idx]) >= tol {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.d; i++ {
		b.WriteString("[")
		for j := 0; j < m.d; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.d+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
