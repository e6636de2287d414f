package cayley

// Identity — locate the identity element of a Cayley table.
//
// Description:
//
//	Element e is the identity exactly when e·j = j for every j, i.e. when
//	row e of the table reads 0, 1, …, n-1. For a valid group table a left
//	identity is automatically two-sided, so scanning rows suffices.
//
// Algorithm Outline:
//  1. For each row i, test cells[i*n+j] == j for all j.
//  2. Collect qualifying rows; succeed only if exactly one qualifies.
//
// Complexity:
//
//	Time   = O(n²)
//	Memory = O(1)
//
// Errors:
//   - ErrNilTable — t is nil.
//   - ErrIdentity — zero or multiple identity rows (malformed table).
func Identity(t *Table) (int, error) {
	if t == nil {
		return 0, ErrNilTable
	}
	n := t.n

	found, count := 0, 0
	for i := 0; i < n; i++ {
		isID := true
		for j := 0; j < n; j++ {
			if t.at(i, j) != j {
				isID = false
				break
			}
		}
		if isID {
			found = i
			count++
		}
	}
	if count != 1 {
		return 0, ErrIdentity
	}

	return found, nil
}

// Inverses — compute the inverse map of a Cayley table.
//
// Description:
//
//	Returns inv of length n with t[i, inv[i]] == e for every i, where e is
//	the identity. For a valid group table each element has exactly one
//	two-sided inverse; this function verifies exactly that much structure
//	and nothing more.
//
// Algorithm Outline:
//  1. Locate e via Identity.
//  2. Scan all (row, col) pairs in row-major order, keeping those where
//     t[row, col] == e.
//  3. The kept row indices must enumerate 0..n-1 exactly once, in order —
//     otherwise some element has zero or multiple inverses.
//  4. Return the col indices in that row order.
//
// Complexity:
//
//	Time   = O(n²)
//	Memory = O(n)
//
// Errors:
//   - ErrNilTable — t is nil.
//   - ErrIdentity — propagated from Identity.
//   - ErrInverses — the matching pairs do not cover every row exactly once.
func Inverses(t *Table) ([]int, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	e, err := Identity(t)
	if err != nil {
		return nil, err
	}
	n := t.n

	rows := make([]int, 0, n)
	cols := make([]int, 0, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if t.at(i, j) == e {
				rows = append(rows, i)
				cols = append(cols, j)
			}
		}
	}

	// Row-major order makes rows non-decreasing, so an exact enumeration
	// of 0..n-1 is equivalent to rows[i] == i for all i.
	if len(rows) != n {
		return nil, ErrInverses
	}
	for i, r := range rows {
		if r != i {
			return nil, ErrInverses
		}
	}

	return cols, nil
}
