package rep_test

import (
	"testing"

	"github.com/katalvlaran/grouprep/cayley"
	"github.com/katalvlaran/grouprep/matgroup"
	"github.com/katalvlaran/grouprep/rep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegular_Cyclic3 verifies the headline case: for ℤ/3ℤ, D[0] is the
// identity matrix and D[1] the 3-cycle sending e₀→e₁, e₁→e₂, e₂→e₀.
func TestRegular_Cyclic3(t *testing.T) {
	tbl, err := cayley.Cyclic(3)
	require.NoError(t, err)

	ds, err := rep.Regular(tbl)
	require.NoError(t, err)
	require.Len(t, ds, 3)

	id, err := matgroup.Identity(3)
	require.NoError(t, err)
	assert.True(t, ds[0].EqualWithin(id, 1e-15), "D[0] must be I₃:\n%v", ds[0])

	// D[1] e_h = e_{(1+h) mod 3}: ones at (1,0), (2,1), (0,2).
	cycle, err := matgroup.FromData(3, []float64{
		0, 0, 1,
		1, 0, 0,
		0, 1, 0,
	})
	require.NoError(t, err)
	assert.True(t, ds[1].EqualWithin(cycle, 1e-15), "D[1] must be the 3-cycle:\n%v", ds[1])
}

// TestRegular_PermutationMatrices verifies every output matrix of a valid
// group is a permutation matrix.
func TestRegular_PermutationMatrices(t *testing.T) {
	tbl, err := cayley.Dihedral(4)
	require.NoError(t, err)

	ds, err := rep.Regular(tbl)
	require.NoError(t, err)
	for g, d := range ds {
		assert.True(t, rep.IsPermutation(d), "D[%d] must be a permutation matrix", g)
	}
}

// TestRegular_Homomorphism verifies D(g)·D(h) == D(g·h) on the Klein
// four-group — the defining property of a representation.
func TestRegular_Homomorphism(t *testing.T) {
	tbl := cayley.Klein()
	ds, err := rep.Regular(tbl)
	require.NoError(t, err)

	n := tbl.Order()
	for g := 0; g < n; g++ {
		for h := 0; h < n; h++ {
			prod, err := ds[g].Mul(ds[h])
			require.NoError(t, err)
			gh, err := tbl.At(g, h)
			require.NoError(t, err)
			assert.True(t, prod.EqualWithin(ds[gh], 1e-15),
				"D(%d)·D(%d) must equal D(%d)", g, h, gh)
		}
	}
}

// TestRegular_Trivial covers the n = 1 boundary: a single 1×1 matrix [[1]].
func TestRegular_Trivial(t *testing.T) {
	tbl, err := cayley.Cyclic(1)
	require.NoError(t, err)

	ds, err := rep.Regular(tbl)
	require.NoError(t, err)
	require.Len(t, ds, 1)

	got, err := ds[0].At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

// TestRegular_NilTable verifies the nil guard.
func TestRegular_NilTable(t *testing.T) {
	_, err := rep.Regular(nil)
	assert.ErrorIs(t, err, rep.ErrNilTable)
}

// TestCharacter_RegularRep verifies the regular character: n at the
// identity, 0 everywhere else.
func TestCharacter_RegularRep(t *testing.T) {
	tbl, err := cayley.Cyclic(5)
	require.NoError(t, err)

	ds, err := rep.Regular(tbl)
	require.NoError(t, err)
	chi := rep.Character(ds)

	assert.Equal(t, []float64{5, 0, 0, 0, 0}, chi, "regular character must be (n, 0, ..., 0)")
}

// TestIsPermutation_Negatives covers matrices that are not permutations.
func TestIsPermutation_Negatives(t *testing.T) {
	assert.False(t, rep.IsPermutation(nil), "nil is not a permutation")

	zero, err := matgroup.NewDense(2)
	require.NoError(t, err)
	assert.False(t, rep.IsPermutation(zero), "zero matrix lacks ones")

	twoInRow, err := matgroup.FromData(2, []float64{1, 1, 0, 0})
	require.NoError(t, err)
	assert.False(t, rep.IsPermutation(twoInRow), "two ones in a row")

	fractional, err := matgroup.FromData(2, []float64{0.5, 0.5, 0.5, 0.5})
	require.NoError(t, err)
	assert.False(t, rep.IsPermutation(fractional), "entries must be exactly 0 or 1")

	id, err := matgroup.Identity(4)
	require.NoError(t, err)
	assert.True(t, rep.IsPermutation(id), "identity is a permutation")
}
