// Package rep builds matrix representations of finite groups given as
// Cayley tables — chiefly the regular representation, where the group
// acts on itself by left multiplication.
//
// 🚀 What is the regular representation?
//
//	For a group of order n with table t, element g becomes the n×n
//	permutation matrix D(g) that sends the basis vector e_h to e_{t[g,h]}:
//	D(g)|h⟩ = |gh⟩. Every finite group embeds into a permutation group
//	this way (Cayley's theorem), and the regular representation contains
//	every irreducible representation of the group.
//
// ✨ Key features:
//   - Regular: the full stack of n permutation matrices, one per element
//   - IsPermutation: sanity check for 0/1 matrices with one 1 per row/column
//   - Character: traces of a representation's matrices
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/grouprep/cayley"
//	  "github.com/katalvlaran/grouprep/rep"
//	)
//
//	tbl, _ := cayley.Cyclic(3)
//	D, err := rep.Regular(tbl) // D[0] = I₃, D[1] = the 3-cycle
//
// The construction is total: every cell of every matrix is determined by
// exactly one table position, so unlike deriving a table from floating
// point matrices there is no tolerance or ambiguity involved.
//
// Performance: Regular is O(n³) memory for the stack (n matrices of n²
// entries) and O(n²) work beyond zero-initialization.
package rep
