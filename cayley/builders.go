// SPDX-License-Identifier: MIT
// Package cayley: reference group constructors.
//
// Contract (all builders):
//   • Deterministic element labeling, documented per builder.
//   • Element 0 is always the identity.
//   • Returned tables satisfy the Latin-square invariant by construction.
//   • Only sentinel errors; never panic at runtime.

package cayley

// Cyclic returns the Cayley table of the cyclic group ℤ/nℤ:
// table[i, j] = (i + j) mod n. Element i is the residue i.
// Returns ErrBadOrder when n < 1.
// Complexity: O(n²).
func Cyclic(n int) (*Table, error) {
	t, err := New(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			t.cells[i*n+j] = (i + j) % n
		}
	}

	return t, nil
}

// Dihedral returns the Cayley table of the dihedral group D_n of order 2n
// (symmetries of a regular n-gon).
//
// Labeling: index i < n is the rotation rⁱ; index n+i is the reflection
// s·rⁱ. Products follow the relation rᵃ·s = s·r⁻ᵃ:
//
//	rᵃ · rᵇ     = r^(a+b)        rᵃ · s·rᵇ   = s·r^(b-a)
//	s·rᵃ · rᵇ   = s·r^(a+b)      s·rᵃ · s·rᵇ = r^(b-a)
//
// all exponents mod n. Returns ErrBadOrder when n < 1 (D₁ ≅ ℤ/2ℤ and
// D₂ is the Klein four-group; both are accepted).
// Complexity: O(n²).
func Dihedral(n int) (*Table, error) {
	if n < 1 {
		return nil, ErrBadOrder
	}
	order := 2 * n
	t, err := New(order)
	if err != nil {
		return nil, err
	}
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			sum := (a + b) % n
			diff := (b - a + n) % n
			t.cells[a*order+b] = sum             // rᵃ·rᵇ
			t.cells[a*order+(n+b)] = n + diff    // rᵃ·srᵇ
			t.cells[(n+a)*order+b] = n + sum     // srᵃ·rᵇ
			t.cells[(n+a)*order+(n+b)] = diff    // srᵃ·srᵇ
		}
	}

	return t, nil
}

// Klein returns the Cayley table of the Klein four-group ℤ/2ℤ × ℤ/2ℤ:
// every element is its own inverse and table[i, j] = i XOR j under the
// labeling 0=(0,0), 1=(1,0), 2=(0,1), 3=(1,1).
// Complexity: O(1) beyond the 4×4 allocation.
func Klein() *Table {
	t, _ := New(4)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			t.cells[i*4+j] = i ^ j
		}
	}

	return t
}
