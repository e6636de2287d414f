package rep

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/grouprep/cayley"
	"github.com/katalvlaran/grouprep/matgroup"
)

// ErrNilTable indicates that a nil *cayley.Table was passed to Regular.
var ErrNilTable = errors.New("rep: nil table")

// Regular — construct the regular representation of a group table.
//
// Description:
//
//	Returns D, a stack of n permutation matrices of size n×n, where D[g]
//	encodes left multiplication by g on the index set 0..n-1:
//	D[g]·e_h = e_{t[g,h]}, equivalently D[g][t[g,h], h] = 1 and every
//	other entry 0.
//
// Algorithm Outline:
//  1. For every g, allocate an n×n zero matrix.
//  2. For every h, set entry (t[g,h], h) to 1.
//
// Every cell is determined by exactly one (g, h) grid position, so the
// construction is total — no partial-match ambiguity.
//
// Complexity:
//
//	Time   = O(n²) writes after O(n³) zero-initialization
//	Memory = O(n³)
//
// Errors:
//   - ErrNilTable — t is nil.
//
// The table's group structure is assumed, not validated: a non-Latin
// table yields matrices that are not permutations. Use cayley.Validate
// (or IsPermutation on the output) for untrusted inputs.
func Regular(t *cayley.Table) ([]*matgroup.Dense, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	n := t.Order()

	ds := make([]*matgroup.Dense, n)
	for g := 0; g < n; g++ {
		m, err := matgroup.NewDense(n)
		if err != nil {
			return nil, fmt.Errorf("D[%d]: %w", g, err)
		}
		row, err := t.Row(g)
		if err != nil {
			return nil, fmt.Errorf("D[%d]: %w", g, err)
		}
		for h, gh := range row {
			if err = m.Set(gh, h, 1); err != nil {
				return nil, fmt.Errorf("D[%d]: %w", g, err)
			}
		}
		ds[g] = m
	}

	return ds, nil
}

// IsPermutation reports whether m is a permutation matrix: every entry 0
// or 1, with exactly one 1 in each row and each column.
// A nil matrix is not a permutation.
// Complexity: O(n²).
func IsPermutation(m *matgroup.Dense) bool {
	if m == nil {
		return false
	}
	n := m.Dim()
	rowOnes := make([]int, n)
	colOnes := make([]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, _ := m.At(i, j)
			switch v {
			case 0:
			case 1:
				rowOnes[i]++
				colOnes[j]++
			default:
				return false
			}
		}
	}
	for i := 0; i < n; i++ {
		if rowOnes[i] != 1 || colOnes[i] != 1 {
			return false
		}
	}

	return true
}

// Character returns the character of a representation: the trace of each
// matrix, in order. For the regular representation with identity at index
// e, the character is n at e and 0 elsewhere.
// Nil matrices contribute a zero trace.
// Complexity: O(len(ms)·n).
func Character(ms []*matgroup.Dense) []float64 {
	chi := make([]float64, len(ms))
	for g, m := range ms {
		if m == nil {
			continue
		}
		var tr float64
		for i := 0; i < m.Dim(); i++ {
			v, _ := m.At(i, i)
			tr += v
		}
		chi[g] = tr
	}

	return chi
}
