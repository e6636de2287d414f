package matgroup

import (
	"fmt"
	"math"

	"github.com/katalvlaran/grouprep/cayley"
)

// MultiplicationTable — derive the abstract Cayley table of a matrix group.
//
// Description:
//
//	Given n matrices of dimension d×d forming a group closed under matrix
//	multiplication within opts.Tol, returns the n×n index table where
//	table[i, j] = k iff mats[i]·mats[j] matches mats[k] elementwise within
//	Tol. The matrices' entries are forgotten; only the index structure
//	survives.
//
// Algorithm Outline:
//  1. Validate the set (non-empty, no nils, uniform dimension) and the
//     options (positive finite Tol).
//  2. For every pair (i, j), form the product mats[i]·mats[j].
//  3. Compare the product against every candidate mats[k], k ascending;
//     a match requires ALL d² entries to differ by strictly less than Tol.
//  4. Record each matching k at (i, j) — with several matches the last
//     (highest) k survives; with none the entry stays 0. In Strict mode
//     both cases abort with a sentinel instead.
//
// Complexity:
//
//	Time   = O(n²·d³) products + O(n³·d²) comparisons
//	Memory = O(n²) result + O(d²) scratch
//
// Errors:
//   - ErrEmptySet, ErrNilMatrix, ErrDimensionMismatch — malformed input set.
//   - ErrBadTolerance — Tol ≤ 0, NaN or Inf.
//   - ErrNotClosed, ErrAmbiguous — Strict mode only; carry the offending
//     (i, j) pair as context.
//
// A nil opts selects DefaultOptions().
func MultiplicationTable(mats []*Dense, opts *Options) (*cayley.Table, error) {
	n := len(mats)
	if n == 0 {
		return nil, ErrEmptySet
	}

	// Validate matrices: non-nil, uniform dimension.
	for i, m := range mats {
		if m == nil {
			return nil, fmt.Errorf("mats[%d]: %w", i, ErrNilMatrix)
		}
		if m.d != mats[0].d {
			return nil, fmt.Errorf("mats[%d] is %d×%d, mats[0] is %d×%d: %w",
				i, m.d, m.d, mats[0].d, mats[0].d, ErrDimensionMismatch)
		}
	}

	// Apply options or defaults.
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Tol <= 0 || math.IsNaN(o.Tol) || math.IsInf(o.Tol, 0) {
		return nil, fmt.Errorf("tol=%g: %w", o.Tol, ErrBadTolerance)
	}

	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			prod, err := mats[i].Mul(mats[j])
			if err != nil {
				return nil, fmt.Errorf("product (%d,%d): %w", i, j, err)
			}

			// Ascending candidate scan; in permissive mode each match
			// overwrites the previous one, so the last match wins.
			matches := 0
			for k := 0; k < n; k++ {
				if prod.EqualWithin(mats[k], o.Tol) {
					rows[i][j] = k
					matches++
				}
			}
			if o.Strict {
				switch {
				case matches == 0:
					return nil, fmt.Errorf("product (%d,%d) matches nothing within tol=%g: %w",
						i, j, o.Tol, ErrNotClosed)
				case matches > 1:
					return nil, fmt.Errorf("product (%d,%d) matches %d candidates within tol=%g: %w",
						i, j, matches, o.Tol, ErrAmbiguous)
				}
			}
		}
	}

	return cayley.FromRows(rows)
}
