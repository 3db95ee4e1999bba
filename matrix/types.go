// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// invalidString is what String renders for a value that never went
// through a constructor.
const invalidString = "<invalid matrix>"

// Matrix is a rectangular, non-empty, immutable matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
//
// The zero value is not a valid Matrix: operations reject it with
// ErrInvalidMatrix. Construct through New, MustNew, FromRaw or the codecs.
// Once constructed the value is never written again, so copies share the
// backing storage safely and values may be used from any goroutine.
type Matrix struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// Valid reports whether m was produced by a constructor.
// Complexity: O(1).
func (m Matrix) Valid() bool {
	return m.data != nil // constructed matrices always hold >= 1 element
}

// Rows returns the number of rows.
// Complexity: O(1).
func (m Matrix) Rows() int {
	return m.r
}

// Cols returns the number of columns.
// Complexity: O(1).
func (m Matrix) Cols() int {
	return m.c
}

// Dims returns the (rows, cols) pair in one call.
// Complexity: O(1).
func (m Matrix) Dims() (r, c int) {
	return m.r, m.c
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange when either index is outside bounds; on the zero
// value every index is out of bounds.
// Complexity: O(1).
func (m Matrix) At(row, col int) (float64, error) {
	if row < 0 || row >= m.r {
		return 0, fmt.Errorf("At(%d,%d): %w", row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.c {
		return 0, fmt.Errorf("At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// ToSlices exports the matrix as freshly allocated row slices.
// The result round-trips through New and shares no storage with m, so
// callers may mutate it freely. Returns nil for the zero value.
// Complexity: O(r*c) time and memory.
func (m Matrix) ToSlices() [][]float64 {
	if !m.Valid() {
		return nil
	}
	rows := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		rows[i] = make([]float64, m.c)
		copy(rows[i], m.data[i*m.c:(i+1)*m.c])
	}

	return rows
}

// String implements fmt.Stringer, one bracketed row per line.
// Complexity: O(r*c) for string construction.
func (m Matrix) String() string {
	if !m.Valid() {
		return invalidString
	}
	var s string
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		s += "["
		for j = 0; j < m.c; j++ { // iterate over columns
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", " // separate values with comma
			}
		}
		s += "]\n" // close row
	}

	return s
}
