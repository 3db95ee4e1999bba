// SPDX-License-Identifier: MIT
// Package matrix: dynamic ingestion and value codecs.
// FromRaw accepts the loosely typed payloads produced by decoding JSON or
// YAML documents and funnels them through the same validation pipeline as
// New, so malformed documents surface the package's own diagnostics
// rather than decoder type errors. The YAML and JSON codecs on Matrix are
// thin wrappers over FromRaw / ToSlices.

package matrix

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Codec contracts implemented by Matrix.
var (
	_ json.Marshaler   = Matrix{}
	_ json.Unmarshaler = (*Matrix)(nil)
	_ yaml.Marshaler   = Matrix{}
	_ yaml.Unmarshaler = (*Matrix)(nil)
)

// FromRaw constructs a Matrix from a dynamically typed payload.
//
// Accepted shapes: [][]float64, [][]int, or []any whose rows are []any,
// []float64 or []int; row elements coerce from any Go numeric type
// (and json.Number). Anything else is not a list of lists: a scalar, a
// string, a map, or a flat list such as []any{1, 2, 3, 4} fails with
// ErrNotListOfLists before any element is inspected.
//
// Validation order matches New: shape (all rows are sequences) is
// established across the whole payload first, then elements are coerced
// (ErrElementNotNumber), then the construction pipeline runs.
// Complexity: O(r*c) time and memory.
func FromRaw(v any, opts ...Option) (Matrix, error) {
	rows, err := coerceRows(v)
	if err != nil {
		return Matrix{}, err
	}

	return New(rows, opts...)
}

// MustFromRaw is the asserting form of FromRaw; panics with
// *InvalidMatrixError on failure.
func MustFromRaw(v any, opts ...Option) Matrix {
	return mustMatrix(FromRaw(v, opts...))
}

// coerceRows narrows a dynamic payload to row slices. Nil rows survive
// coercion untouched so ValidateShape still sees them.
func coerceRows(v any) ([][]float64, error) {
	switch src := v.(type) {
	case [][]float64:
		return src, nil
	case [][]int:
		rows := make([][]float64, len(src))
		for i, row := range src {
			if row == nil {
				continue // keep nil rows nil for the shape check
			}
			conv := make([]float64, len(row))
			for j, e := range row {
				conv[j] = float64(e)
			}
			rows[i] = conv
		}

		return rows, nil
	case []any:
		return rowsFromAny(src)
	}

	return nil, ErrNotListOfLists
}

// rowsFromAny converts decoder output ([]any of rows) in two passes:
// shape first across every row, elements second. The split keeps the
// diagnostic order of the pipeline intact even when a later row is
// malformed in a more fundamental way than an earlier one.
func rowsFromAny(outer []any) ([][]float64, error) {
	// Shape pass: every element must itself be a sequence.
	for _, row := range outer {
		switch row.(type) {
		case []any, []float64, []int:
		default:
			return nil, ErrNotListOfLists
		}
	}

	// Element pass: coerce every entry to float64.
	rows := make([][]float64, len(outer))
	for i, row := range outer {
		switch rr := row.(type) {
		case []float64:
			rows[i] = rr
		case []int:
			conv := make([]float64, len(rr))
			for j, e := range rr {
				conv[j] = float64(e)
			}
			rows[i] = conv
		case []any:
			conv := make([]float64, len(rr))
			for j, e := range rr {
				f, ok := toFloat64(e)
				if !ok {
					return nil, ErrElementNotNumber
				}
				conv[j] = f
			}
			rows[i] = conv
		}
	}

	return rows, nil
}

// toFloat64 coerces a dynamic scalar to float64. JSON decoding yields
// float64, YAML yields int or float64 depending on the literal, and
// json.Decoder with UseNumber yields json.Number; the remaining numeric
// kinds are covered for programmatic payloads.
func toFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	}

	return 0, false
}

// MarshalJSON encodes the matrix as a JSON array of row arrays,
// e.g. [[1,2],[3,4]]. The zero value does not serialize; it returns
// ErrInvalidMatrix.
func (m Matrix) MarshalJSON() ([]byte, error) {
	if err := ValidateMatrix(m); err != nil {
		return nil, err
	}

	return json.Marshal(m.ToSlices())
}

// UnmarshalJSON decodes a JSON array of row arrays through FromRaw, so
// shape violations report the construction diagnostics. Decoder-level
// syntax errors are returned as-is.
func (m *Matrix) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := FromRaw(raw)
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}

// MarshalYAML encodes the matrix as a YAML sequence of row sequences.
// The zero value does not serialize; it returns ErrInvalidMatrix.
func (m Matrix) MarshalYAML() (any, error) {
	if err := ValidateMatrix(m); err != nil {
		return nil, err
	}

	return m.ToSlices(), nil
}

// UnmarshalYAML decodes a YAML sequence of row sequences through
// FromRaw, so shape violations report the construction diagnostics.
func (m *Matrix) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := FromRaw(raw)
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}
