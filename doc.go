// Package grouprep is a small toolbox for computing with finite groups:
// multiplication (Cayley) tables, matrix groups, and the regular
// representation.
//
// 🚀 What is grouprep?
//
//	A pure-Go library of stateless numeric functions that:
//		• Find the identity element and the inverse map of a Cayley table
//		• Derive the abstract Cayley table of a finite matrix group,
//		  comparing floating-point matrices up to a tolerance
//		• Build the regular representation — the permutation matrices of
//		  the group acting on itself by left multiplication
//		• Construct reference groups (cyclic, dihedral, Klein four) for
//		  tests, examples, and quick experiments
//
// ✨ Why choose grouprep?
//
//   - Minimal API — free functions over immutable value inputs, no hidden state
//   - Explicit failure modes — sentinel errors, errors.Is-friendly, no panics
//   - Pure Go — no cgo, no hidden deps
//   - Deterministic — fixed scan orders, documented tie-breaking
//
// Everything is organized under three subpackages:
//
//	cayley/   — Cayley tables: construction, validation, Identity, Inverses
//	matgroup/ — dense float matrices and table derivation from a matrix group
//	rep/      — the regular representation and representation helpers
//
// Quick sketch:
//
//	mats := matgroup.Rotations(4)                     // C₄ as 2×2 rotations
//	tbl, _ := matgroup.MultiplicationTable(mats, nil) // abstract Cayley table
//	e, _ := cayley.Identity(tbl)                      // e == 0
//	inv, _ := cayley.Inverses(tbl)                    // inv[i] == (4-i)%4
//	D, _ := rep.Regular(tbl)                          // 4 permutation matrices
//
// Dive into the examples/ directory for full walkthroughs.
//
//	go get github.com/katalvlaran/grouprep
package grouprep
