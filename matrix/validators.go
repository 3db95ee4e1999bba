// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the single source of truth for every structural check in
//     the package. Constructors and operations delegate here instead of
//     carrying ad hoc guard logic.
//   - Return plain sentinel errors (no wrapping) so diagnostics stay
//     byte-for-byte stable for callers matching them.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Shape and uniformity checks scan rows once, O(r); the finite-element
//     policy scans every element, O(r*c).
//
// Note:
//   - Every validator is independently callable: none assumes another has
//     already run. ValidateRows composes the construction checks in their
//     fixed order (Shape → HasRows → UniformColumns → HasColumns) and
//     short-circuits on the first failure.

package matrix

import "math"

// ValidateShape ensures the candidate is a sequence of sequences: the
// outer slice and every row must be present (non-nil).
//
// A nil row is the typed rendition of "this element is not a list"; an
// empty outer slice passes vacuously and is left to ValidateHasRows.
// Returns ErrNotListOfLists on violation.
// Complexity: O(r).
func ValidateShape(rows [][]float64) error {
	if rows == nil {
		return ErrNotListOfLists
	}
	for _, row := range rows {
		if row == nil {
			return ErrNotListOfLists
		}
	}

	return nil
}

// ValidateHasRows ensures the candidate has at least one row.
// Returns ErrNoRows on violation.
// Complexity: O(1).
func ValidateHasRows(rows [][]float64) error {
	if len(rows) == 0 {
		return ErrNoRows
	}

	return nil
}

// ValidateUniformColumns ensures every row's length equals the first
// row's length. An empty candidate passes vacuously; a single row passes
// trivially (nothing to compare against).
// Returns ErrRaggedRows on violation.
// Complexity: O(r).
func ValidateUniformColumns(rows [][]float64) error {
	if len(rows) == 0 {
		return nil // nothing to compare
	}
	want := len(rows[0])
	for _, row := range rows[1:] {
		if len(row) != want {
			return ErrRaggedRows
		}
	}

	return nil
}

// ValidateHasColumns ensures every row has at least one element.
// Distinct from ValidateHasRows on purpose: an empty outer sequence and
// a sequence of empty rows are different failures with different
// diagnostics.
// Returns ErrNoColumns on violation.
// Complexity: O(r).
func ValidateHasColumns(rows [][]float64) error {
	for _, row := range rows {
		if len(row) == 0 {
			return ErrNoColumns
		}
	}

	return nil
}

// ValidateRows composes the construction checks in their fixed order:
// Shape → HasRows → UniformColumns → HasColumns.
//
// Checks run from most fundamental to most specific and the first
// failure short-circuits the rest, so a malformed input fails with the
// most meaningful diagnostic instead of tripping a later check that
// assumes sequence-ness.
// Complexity: O(r).
func ValidateRows(rows [][]float64) error {
	if err := ValidateShape(rows); err != nil {
		return err
	}
	if err := ValidateHasRows(rows); err != nil {
		return err
	}
	if err := ValidateUniformColumns(rows); err != nil {
		return err
	}
	if err := ValidateHasColumns(rows); err != nil {
		return err
	}

	return nil
}

// ValidateSameDimensions ensures matrices a and b have identical
// (rows, cols). Both operands are assumed valid; run ValidateMatrix
// first when provenance is not already established.
// Returns ErrDimensionMismatch on violation.
// Complexity: O(1).
func ValidateSameDimensions(a, b Matrix) error {
	if a.r != b.r || a.c != b.c {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateMatrix ensures m was produced by a constructor. This is the
// operation-time contract check: it never re-runs the shape pipeline,
// it only rejects values that bypassed construction (the zero value).
// Returns ErrInvalidMatrix on violation.
// Complexity: O(1).
func ValidateMatrix(m Matrix) error {
	if !m.Valid() {
		return ErrInvalidMatrix
	}

	return nil
}

// ValidateScalar ensures s is a number: NaN and ±Inf are rejected.
// Returns ErrScalarNotNumber on violation.
// Complexity: O(1).
func ValidateScalar(s float64) error {
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return ErrScalarNotNumber
	}

	return nil
}

// ValidateFiniteElements ensures every element is a finite number.
// Enforced by New only under WithFiniteOnly; by default matrices carry
// whatever float64 values native arithmetic produces.
// Returns ErrElementNotNumber on violation.
// Complexity: O(r*c).
func ValidateFiniteElements(rows [][]float64) error {
	for _, row := range rows {
		for _, e := range row {
			if math.IsNaN(e) || math.IsInf(e, 0) {
				return ErrElementNotNumber
			}
		}
	}

	return nil
}
