// Package matgroup derives the abstract multiplication table of a finite
// group given concretely as a set of square matrices closed under matrix
// multiplication.
//
// 🚀 What is a matrix group here?
//
//	An ordered sequence of n float64 matrices of a fixed dimension d×d,
//	compared up to a numerical tolerance. When the set is closed — every
//	pairwise product matches exactly one member within tolerance — the
//	matching indices form a Cayley table over 0..n-1, forgetting the
//	matrix entries entirely.
//
// ✨ Key features:
//   - Dense: compact row-major d×d matrices with allocation-free lookups
//   - MultiplicationTable: all-pairs product matching within tolerance,
//     producing a cayley.Table
//   - Strict mode: opt-in detection of non-closed sets and ambiguous
//     matches (the default mirrors the permissive historical behavior)
//   - Rotations: the 2×2 rotation matrices of the cyclic group Cₙ, a
//     ready-made matrix group for tests and experiments
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/grouprep/matgroup"
//
//	mats, _ := matgroup.Rotations(4) // rotations by 0°, 90°, 180°, 270°
//	opts := matgroup.DefaultOptions()
//	opts.Strict = true               // fail loudly on non-closure
//	tbl, err := matgroup.MultiplicationTable(mats, &opts)
//
// Matching semantics: two matrices are equal within Tol when EVERY entry's
// absolute difference is strictly below Tol — an elementwise bound, not an
// aggregate norm. In the default (non-strict) mode a pair with no match
// leaves its table entry at 0, and a pair with several matches keeps the
// highest matching index (candidates are scanned in ascending order, last
// match wins). The caller owns the closure of the set and the tightness of
// the tolerance; Strict turns both failure modes into sentinel errors.
//
// Performance:
//
//   - Time:   O(n²·d³) product formation + O(n³·d²) comparison
//   - Memory: O(d²) scratch per pair; the result table is O(n²)
package matgroup
