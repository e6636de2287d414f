package cayley_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/grouprep/cayley"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCyclic_Table verifies the addition-mod-n formula directly.
func TestCyclic_Table(t *testing.T) {
	tbl, err := cayley.Cyclic(4)
	require.NoError(t, err)

	want := [][]int{
		{0, 1, 2, 3},
		{1, 2, 3, 0},
		{2, 3, 0, 1},
		{3, 0, 1, 2},
	}
	if diff := cmp.Diff(want, tableRows(t, tbl)); diff != "" {
		t.Errorf("Cyclic(4) mismatch (-want +got):\n%s", diff)
	}
}

// TestCyclic_BadOrder verifies builder validation.
func TestCyclic_BadOrder(t *testing.T) {
	_, err := cayley.Cyclic(0)
	assert.ErrorIs(t, err, cayley.ErrBadOrder)
}

// TestDihedral_D3 verifies D₃ (symmetries of a triangle) against the
// relation rᵃ·s = s·r⁻ᵃ, spelled out as a full table.
func TestDihedral_D3(t *testing.T) {
	tbl, err := cayley.Dihedral(3)
	require.NoError(t, err)
	require.Equal(t, 6, tbl.Order(), "D₃ has order 6")

	// Labeling: 0,1,2 = r⁰,r¹,r²; 3,4,5 = s,sr,sr².
	want := [][]int{
		{0, 1, 2, 3, 4, 5},
		{1, 2, 0, 5, 3, 4},
		{2, 0, 1, 4, 5, 3},
		{3, 4, 5, 0, 1, 2},
		{4, 5, 3, 2, 0, 1},
		{5, 3, 4, 1, 2, 0},
	}
	if diff := cmp.Diff(want, tableRows(t, tbl)); diff != "" {
		t.Errorf("Dihedral(3) mismatch (-want +got):\n%s", diff)
	}
}

// TestDihedral_ReflectionsAreInvolutions verifies (srᵃ)² = e for all a.
func TestDihedral_ReflectionsAreInvolutions(t *testing.T) {
	const n = 6
	tbl, err := cayley.Dihedral(n)
	require.NoError(t, err)

	for a := 0; a < n; a++ {
		got, err := tbl.At(n+a, n+a)
		require.NoError(t, err)
		assert.Equal(t, 0, got, "(s·r^%d)² must be the identity", a)
	}
}

// TestDihedral_NonAbelian verifies r·s ≠ s·r for n ≥ 3.
func TestDihedral_NonAbelian(t *testing.T) {
	tbl, err := cayley.Dihedral(3)
	require.NoError(t, err)

	rs, err := tbl.At(1, 3)
	require.NoError(t, err)
	sr, err := tbl.At(3, 1)
	require.NoError(t, err)
	assert.NotEqual(t, rs, sr, "D₃ is non-abelian")
}

// TestDihedral_SmallOrders verifies the degenerate D₁ and D₂ are accepted
// and remain valid groups.
func TestDihedral_SmallOrders(t *testing.T) {
	_, err := cayley.Dihedral(0)
	assert.ErrorIs(t, err, cayley.ErrBadOrder)

	for _, n := range []int{1, 2} {
		tbl, err := cayley.Dihedral(n)
		require.NoError(t, err)
		assert.NoError(t, cayley.Validate(tbl), "Dihedral(%d) must validate", n)
		_, err = cayley.Inverses(tbl)
		assert.NoError(t, err, "Dihedral(%d) must have an inverse map", n)
	}
}

// TestKlein_XORStructure verifies the Klein table is XOR on two bits.
func TestKlein_XORStructure(t *testing.T) {
	tbl := cayley.Klein()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			got, err := tbl.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, i^j, got, "Klein(%d,%d)", i, j)
		}
	}
}
