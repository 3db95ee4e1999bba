// SPDX-License-Identifier: MIT
// Package rectmat: the facade. Every name below forwards 1:1 to the
// matrix subpackage so callers can use a single import; no behavior is
// added or changed here. See matrix/doc.go for the full contract.

package rectmat

import "github.com/katalvlaran/rectmat/matrix"

// Core types, aliased so values flow freely between the two import paths.
type (
	// Matrix is a rectangular, non-empty, immutable matrix of float64
	// values. See matrix.Matrix.
	Matrix = matrix.Matrix

	// Option configures construction. See matrix.Option.
	Option = matrix.Option

	// InvalidMatrixError is the panic payload of the Must* forms.
	// See matrix.InvalidMatrixError.
	InvalidMatrixError = matrix.InvalidMatrixError
)

// Sentinel errors, re-exported as the same values: errors.Is matches
// regardless of which import path produced or checks them.
var (
	ErrNotListOfLists    = matrix.ErrNotListOfLists
	ErrNoRows            = matrix.ErrNoRows
	ErrRaggedRows        = matrix.ErrRaggedRows
	ErrNoColumns         = matrix.ErrNoColumns
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
	ErrScalarNotNumber   = matrix.ErrScalarNotNumber
	ErrInvalidMatrix     = matrix.ErrInvalidMatrix
	ErrElementNotNumber  = matrix.ErrElementNotNumber
	ErrOutOfRange        = matrix.ErrOutOfRange
)

// DefaultFiniteOnly mirrors matrix.DefaultFiniteOnly.
const DefaultFiniteOnly = matrix.DefaultFiniteOnly

// WithFiniteOnly rejects NaN and ±Inf elements at construction.
func WithFiniteOnly() Option { return matrix.WithFiniteOnly() }

// New constructs a Matrix from rows. See matrix.New.
func New(rows [][]float64, opts ...Option) (Matrix, error) { return matrix.New(rows, opts...) }

// MustNew is the asserting form of New. See matrix.MustNew.
func MustNew(rows [][]float64, opts ...Option) Matrix { return matrix.MustNew(rows, opts...) }

// FromRaw constructs a Matrix from a dynamic payload. See matrix.FromRaw.
func FromRaw(v any, opts ...Option) (Matrix, error) { return matrix.FromRaw(v, opts...) }

// MustFromRaw is the asserting form of FromRaw. See matrix.MustFromRaw.
func MustFromRaw(v any, opts ...Option) Matrix { return matrix.MustFromRaw(v, opts...) }

// Transpose returns m with rows and columns swapped. See matrix.Transpose.
func Transpose(m Matrix) (Matrix, error) { return matrix.Transpose(m) }

// MustTranspose is the asserting form of Transpose.
func MustTranspose(m Matrix) Matrix { return matrix.MustTranspose(m) }

// Scale multiplies every element of m by s. See matrix.Scale.
func Scale(m Matrix, s float64) (Matrix, error) { return matrix.Scale(m, s) }

// MustScale is the asserting form of Scale.
func MustScale(m Matrix, s float64) Matrix { return matrix.MustScale(m, s) }

// Add returns the element-wise sum of a and b. See matrix.Add.
func Add(a, b Matrix) (Matrix, error) { return matrix.Add(a, b) }

// MustAdd is the asserting form of Add.
func MustAdd(a, b Matrix) Matrix { return matrix.MustAdd(a, b) }

// Equal reports exact element-wise equality. See matrix.Equal.
func Equal(a, b Matrix) bool { return matrix.Equal(a, b) }

// The validator set, individually callable. See matrix/validators.go.

// ValidateShape ensures the candidate is a sequence of sequences.
func ValidateShape(rows [][]float64) error { return matrix.ValidateShape(rows) }

// ValidateHasRows ensures at least one row.
func ValidateHasRows(rows [][]float64) error { return matrix.ValidateHasRows(rows) }

// ValidateUniformColumns ensures all rows share the first row's length.
func ValidateUniformColumns(rows [][]float64) error { return matrix.ValidateUniformColumns(rows) }

// ValidateHasColumns ensures every row has at least one element.
func ValidateHasColumns(rows [][]float64) error { return matrix.ValidateHasColumns(rows) }

// ValidateRows composes the construction checks in their fixed order.
func ValidateRows(rows [][]float64) error { return matrix.ValidateRows(rows) }

// ValidateSameDimensions ensures a and b have identical (rows, cols).
func ValidateSameDimensions(a, b Matrix) error { return matrix.ValidateSameDimensions(a, b) }

// ValidateMatrix ensures m was produced by a constructor.
func ValidateMatrix(m Matrix) error { return matrix.ValidateMatrix(m) }

// ValidateScalar ensures s is a number (not NaN, not ±Inf).
func ValidateScalar(s float64) error { return matrix.ValidateScalar(s) }

// ValidateFiniteElements ensures every element is a finite number.
func ValidateFiniteElements(rows [][]float64) error { return matrix.ValidateFiniteElements(rows) }
