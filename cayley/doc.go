// Package cayley represents finite groups as multiplication (Cayley)
// tables and computes their basic structural properties.
//
// 🚀 What is a Cayley table?
//
//	The complete n×n grid of pairwise products of a finite group with
//	elements labeled 0..n-1: entry (i, j) holds the index of the product
//	of element i and element j.  Every structural question about a finite
//	group — identity, inverses, commutativity — can be read off the table.
//
// ✨ Key features:
//   - Table: compact row-major storage with O(1) lookups
//   - Identity / Inverses: locate the identity element and the inverse map,
//     with explicit errors on malformed (non-group) tables
//   - Validate: optional Latin-square check (each row and column must be a
//     permutation of 0..n-1)
//   - Builders: Cyclic, Dihedral and Klein reference groups
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/grouprep/cayley"
//
//	tbl, _ := cayley.Cyclic(6)       // ℤ/6ℤ under addition
//	e, err := cayley.Identity(tbl)   // e == 0
//	inv, err := cayley.Inverses(tbl) // inv[i] == (6-i)%6
//
// Errors are package sentinels; match them with errors.Is. Identity and
// Inverses trust the table's group structure and report ErrIdentity or
// ErrInverses when the structure they rely on is missing; call Validate
// first if you need the full Latin-square invariant checked.
//
// Performance: Identity is O(n²), Inverses O(n²), Validate O(n²);
// all memory is scoped to the call.
package cayley
