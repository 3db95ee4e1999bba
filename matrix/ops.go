// SPDX-License-Identifier: MIT
// Package matrix: the three matrix operations. All of them are pure and
// fail-fast: preconditions are validated before any computation, a fresh
// Matrix is allocated for the result, and inputs are never mutated.

package matrix

// Transpose returns a new Matrix whose (i,j) element equals m's (j,i).
// An R×C input yields a C×R result. Since every constructed Matrix is
// rectangular, the only failure mode is ErrInvalidMatrix on a value that
// bypassed construction.
//
// Deterministic copy order: the source is walked row by row, writing
// data[i*c+j] → res[j*r+i] through flat indexing.
// Complexity: O(r*c) time and memory.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateMatrix(m); err != nil {
		return Matrix{}, err
	}

	res := make([]float64, len(m.data))
	var base int
	for i := 0; i < m.r; i++ {
		base = i * m.c
		for j := 0; j < m.c; j++ {
			res[j*m.r+i] = m.data[base+j]
		}
	}

	return Matrix{r: m.c, c: m.r, data: res}, nil
}

// MustTranspose is the asserting form of Transpose; panics with
// *InvalidMatrixError on failure.
func MustTranspose(m Matrix) Matrix {
	return mustMatrix(Transpose(m))
}

// Scale returns a new Matrix whose every element is m's element times s.
// Failure modes, checked in order:
//
//  1. ErrInvalidMatrix    m bypassed construction (takes precedence)
//  2. ErrScalarNotNumber  s is NaN or ±Inf
//
// Scaling by 1 reproduces m; scaling by 0 yields an all-zero matrix of
// the same shape. Single flat loop, deterministic 0..n-1 order.
// Complexity: O(r*c) time and memory.
func Scale(m Matrix, s float64) (Matrix, error) {
	if err := ValidateMatrix(m); err != nil {
		return Matrix{}, err
	}
	if err := ValidateScalar(s); err != nil {
		return Matrix{}, err
	}

	n := len(m.data)
	res := make([]float64, n)
	for idx := 0; idx < n; idx++ {
		res[idx] = m.data[idx] * s
	}

	return Matrix{r: m.r, c: m.c, data: res}, nil
}

// MustScale is the asserting form of Scale; panics with
// *InvalidMatrixError on failure.
func MustScale(m Matrix, s float64) Matrix {
	return mustMatrix(Scale(m, s))
}

// Add returns the element-wise sum of a and b as a new Matrix.
// Preconditions, checked in order:
//
//  1. ErrInvalidMatrix      a, then b, bypassed construction
//  2. ErrDimensionMismatch  operands' (rows, cols) differ
//
// An invalid operand always reports ErrInvalidMatrix, never a dimension
// error. Single flat loop, deterministic 0..n-1 order.
// Complexity: O(r*c) time and memory.
func Add(a, b Matrix) (Matrix, error) {
	if err := ValidateMatrix(a); err != nil {
		return Matrix{}, err
	}
	if err := ValidateMatrix(b); err != nil {
		return Matrix{}, err
	}
	if err := ValidateSameDimensions(a, b); err != nil {
		return Matrix{}, err
	}

	n := len(a.data)
	res := make([]float64, n)
	for idx := 0; idx < n; idx++ {
		res[idx] = a.data[idx] + b.data[idx]
	}

	return Matrix{r: a.r, c: a.c, data: res}, nil
}

// MustAdd is the asserting form of Add; panics with *InvalidMatrixError
// on failure.
func MustAdd(a, b Matrix) Matrix {
	return mustMatrix(Add(a, b))
}

// Equal reports exact element-wise equality of a and b: identical
// dimensions and identical float64 values in every cell. IEEE semantics
// apply, so a NaN element is never equal to anything. Two zero values
// compare equal.
// Complexity: O(r*c), early exit on first difference.
func Equal(a, b Matrix) bool {
	if a.r != b.r || a.c != b.c {
		return false
	}
	for idx, v := range a.data {
		if v != b.data[idx] {
			return false
		}
	}

	return true
}
