// SPDX-License-Identifier: MIT
// Package matgroup: reference matrix group constructor.
//
// Contract:
//   • Deterministic element labeling: index k is the rotation by 2πk/n.
//   • Element 0 is the identity matrix.
//   • The set is closed under multiplication up to float64 rounding, so
//     MultiplicationTable recovers the cyclic table at any tolerance that
//     dominates the rounding error (DefaultTol comfortably does).

package matgroup

import "math"

// Rotations returns the cyclic group Cₙ realized as the n planar rotation
// matrices by multiples of 2π/n:
//
//	R(θ) = ⎡cos θ  -sin θ⎤
//	       ⎣sin θ   cos θ⎦   with θ = 2πk/n for k = 0..n-1.
//
// Returns ErrBadOrder when n < 1.
// Complexity: O(n).
func Rotations(n int) ([]*Dense, error) {
	if n < 1 {
		return nil, ErrBadOrder
	}
	mats := make([]*Dense, n)
	for k := 0; k < n; k++ {
		theta := 2 * math.Pi * float64(k) / float64(n)
		c, s := math.Cos(theta), math.Sin(theta)
		mats[k] = &Dense{d: 2, data: []float64{c, -s, s, c}}
	}

	return mats, nil
}
