// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines the package-level sentinel errors used across the matrix
// package. All operations return these sentinels and tests check them via
// errors.Is. Fallible forms never panic; the asserting Must* forms panic with
// *InvalidMatrixError wrapping the identical sentinel.

package matrix

import "errors"

// NOTE ON MESSAGING
// -----------------
// The sentinel texts below are the observable contract: callers and tests
// match them verbatim, so they carry no package prefix and are returned
// unwrapped. Do not reword them and do not %w-wrap when returning directly.
// ErrOutOfRange is the one accessor-level sentinel outside that contract and
// keeps the conventional "matrix: ..." prefix.
//
// ERROR ORDER (enforced by the construction pipeline and by tests):
// shape -> row count -> column uniformity -> column count; at operation
// time, matrix validity precedes scalar and dimension checks.

var (
	// ErrNotListOfLists is returned when the candidate payload is not a
	// sequence of sequences: a nil outer slice, a nil row, or (on the raw
	// ingestion path) a scalar or flat list.
	ErrNotListOfLists = errors.New("Matrix must be a list of lists")

	// ErrNoRows is returned when the candidate payload has zero rows.
	ErrNoRows = errors.New("Matrix must have at least one row")

	// ErrRaggedRows is returned when row lengths differ from the first
	// row's length.
	ErrRaggedRows = errors.New("All rows must have the same number of columns")

	// ErrNoColumns is returned when a row has zero elements.
	ErrNoColumns = errors.New("Rows should have at least one column")

	// ErrDimensionMismatch is returned by pairwise operations (Add) when
	// the operands' (rows, cols) differ.
	ErrDimensionMismatch = errors.New("Matrices should have the same dimension")

	// ErrScalarNotNumber is returned by Scale when the scalar is NaN or
	// ±Inf, the float64 values that are not numbers.
	ErrScalarNotNumber = errors.New("Scalar must be a number")

	// ErrInvalidMatrix is returned when an operation receives a Matrix
	// value that never went through a constructor (the zero value).
	// Operations check provenance only; they never re-run the shape
	// pipeline on an already constructed value.
	ErrInvalidMatrix = errors.New("Invalid matrix input. Use the matrix constructor.")

	// ErrElementNotNumber is returned by the raw ingestion path when a row
	// element cannot be coerced to a number, and by the WithFiniteOnly
	// policy when an element is NaN or ±Inf.
	ErrElementNotNumber = errors.New("Matrix elements must be numbers")

	// ErrOutOfRange indicates that a row or column index passed to At is
	// outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")
)

// InvalidMatrixError is the panic payload of the asserting Must* forms.
// It carries the same sentinel the fallible form would have returned, so
// recovered values still satisfy errors.Is and errors.As.
type InvalidMatrixError struct {
	cause error
}

// newInvalidMatrixError wraps cause for a Must* panic.
// A nil cause defaults to ErrInvalidMatrix.
func newInvalidMatrixError(cause error) *InvalidMatrixError {
	if cause == nil {
		cause = ErrInvalidMatrix
	}

	return &InvalidMatrixError{cause: cause}
}

// Error returns the underlying sentinel's diagnostic unchanged.
func (e *InvalidMatrixError) Error() string { return e.cause.Error() }

// Unwrap exposes the underlying sentinel to errors.Is / errors.As.
func (e *InvalidMatrixError) Unwrap() error { return e.cause }
