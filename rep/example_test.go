package rep_test

import (
	"fmt"

	"github.com/katalvlaran/grouprep/cayley"
	"github.com/katalvlaran/grouprep/rep"
)

// ExampleRegular prints D(1) for ℤ/3ℤ: the permutation matrix of the
// shift h ↦ h+1 (mod 3).
func ExampleRegular() {
	tbl, _ := cayley.Cyclic(3)
	ds, err := rep.Regular(tbl)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(ds[1])
	// Output:
	// [0, 0, 1]
	// [1, 0, 0]
	// [0, 1, 0]
}

// ExampleCharacter shows the character of the regular representation of
// the Klein four-group.
func ExampleCharacter() {
	ds, _ := rep.Regular(cayley.Klein())
	fmt.Println(rep.Character(ds))
	// Output:
	// [4 0 0 0]
}
