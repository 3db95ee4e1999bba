// SPDX-License-Identifier: MIT

package matrix

// New constructs a Matrix from rows, a non-empty rectangular sequence of
// float64 rows. The input is deep-copied into flat row-major storage, so
// later mutation of rows cannot corrupt the Matrix.
//
// Validation is ordered and fail-fast (see ValidateRows); the first
// failing check's sentinel is returned:
//
//	ErrNotListOfLists  nil outer slice or nil row
//	ErrNoRows          zero rows
//	ErrRaggedRows      differing row lengths
//	ErrNoColumns       a row with zero elements
//	ErrElementNotNumber  non-finite element, only under WithFiniteOnly
//
// Complexity: O(r*c) time and memory.
func New(rows [][]float64, opts ...Option) (Matrix, error) {
	o := gatherOptions(opts...)
	if err := ValidateRows(rows); err != nil {
		return Matrix{}, err
	}
	if o.finiteOnly {
		if err := ValidateFiniteElements(rows); err != nil {
			return Matrix{}, err
		}
	}

	// Deep copy into flat storage to guarantee immutability.
	r, c := len(rows), len(rows[0]) // uniformity is validated above
	data := make([]float64, r*c)
	for i, row := range rows {
		copy(data[i*c:], row)
	}

	return Matrix{r: r, c: c, data: data}, nil
}

// MustNew is the asserting form of New: it returns the Matrix directly
// and panics with *InvalidMatrixError on any validation failure, for
// callers that consider malformed input a programming error.
func MustNew(rows [][]float64, opts ...Option) Matrix {
	return mustMatrix(New(rows, opts...))
}

// mustMatrix converts a fallible result into the asserting convention.
// All Must* forms funnel through here so validation logic is never
// duplicated and every panic payload is an *InvalidMatrixError.
func mustMatrix(m Matrix, err error) Matrix {
	if err != nil {
		panic(newInvalidMatrixError(err))
	}

	return m
}
