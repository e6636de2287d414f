// Package matgroup: options for table derivation.
package matgroup

// DefaultTol is the default elementwise absolute tolerance used when
// matching pairwise products against set members.
const DefaultTol = 1e-8

// Options configures MultiplicationTable.
//
// Fields:
//   - Tol    — elementwise absolute tolerance for matrix equality; two
//     matrices match when every entry differs by strictly less than Tol.
//     Must be positive and finite.
//   - Strict — when true, a pairwise product with zero matches yields
//     ErrNotClosed and one with multiple matches yields ErrAmbiguous.
//     When false (the default), no match leaves the table entry at 0 and
//     multiple matches keep the last (highest) matching index — the
//     permissive historical behavior, trusting the caller to supply a
//     genuinely closed set with a tight enough tolerance.
//
// Example:
//
//	opts := matgroup.DefaultOptions()
//	opts.Strict = true
//	tbl, err := matgroup.MultiplicationTable(mats, &opts)
//	if err != nil {
//	  // handle ErrNotClosed / ErrAmbiguous / validation errors
//	}
type Options struct {
	Tol    float64
	Strict bool
}

// DefaultOptions returns the documented defaults: Tol = DefaultTol,
// Strict = false.
func DefaultOptions() Options {
	return Options{Tol: DefaultTol, Strict: false}
}
