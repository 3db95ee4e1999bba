// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for dynamic ingestion and the
// YAML/JSON codecs.
package matrix_test

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/rectmat/matrix"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestFromRaw_Accepted covers every payload shape the coercion accepts.
func TestFromRaw_Accepted(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    any
		want [][]float64
	}{
		{"typed float rows", [][]float64{{1, 2}, {3, 4}}, [][]float64{{1, 2}, {3, 4}}},
		{"typed int rows", [][]int{{1, 2}, {3, 4}}, [][]float64{{1, 2}, {3, 4}}},
		{"decoded json shape", []any{[]any{1.0, 2.0}, []any{3.0, 4.0}}, [][]float64{{1, 2}, {3, 4}}},
		{"decoded yaml shape", []any{[]any{1, 2}, []any{3, 4}}, [][]float64{{1, 2}, {3, 4}}},
		{"mixed int and float elements", []any{[]any{1, 2.5}}, [][]float64{{1, 2.5}}},
		{"float64 rows in any", []any{[]float64{1, 2}, []float64{3, 4}}, [][]float64{{1, 2}, {3, 4}}},
		{"int rows in any", []any{[]int{1, 2}, []any{3, 4}}, [][]float64{{1, 2}, {3, 4}}},
		{"json.Number elements", []any{[]any{json.Number("1"), json.Number("2.5")}}, [][]float64{{1, 2.5}}},
		{"wider numeric kinds", []any{[]any{int64(1), uint8(2), float32(3)}}, [][]float64{{1, 2, 3}}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.FromRaw(tc.v)
			require.NoError(t, err)
			require.Equal(t, tc.want, m.ToSlices())
		})
	}
}

// TestFromRaw_Diagnostics covers every rejection with its exact message.
func TestFromRaw_Diagnostics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		v        any
		wantErr  error
		wantText string
	}{
		{"nil payload", nil,
			matrix.ErrNotListOfLists, "Matrix must be a list of lists"},
		{"scalar payload", 5,
			matrix.ErrNotListOfLists, "Matrix must be a list of lists"},
		{"string payload", "nope",
			matrix.ErrNotListOfLists, "Matrix must be a list of lists"},
		{"map payload", map[string]any{"rows": 2},
			matrix.ErrNotListOfLists, "Matrix must be a list of lists"},
		{"flat list", []any{1.0, 2.0, 3.0, 4.0},
			matrix.ErrNotListOfLists, "Matrix must be a list of lists"},
		{"null row", []any{[]any{1.0, 2.0}, nil},
			matrix.ErrNotListOfLists, "Matrix must be a list of lists"},
		{"scalar row after bad element", []any{[]any{1.0, "x"}, 5},
			matrix.ErrNotListOfLists, "Matrix must be a list of lists"},
		{"empty list", []any{},
			matrix.ErrNoRows, "Matrix must have at least one row"},
		{"ragged rows", []any{[]any{1.0, 2.0}, []any{3.0}},
			matrix.ErrRaggedRows, "All rows must have the same number of columns"},
		{"empty rows", []any{[]any{}, []any{}},
			matrix.ErrNoColumns, "Rows should have at least one column"},
		{"string element", []any{[]any{1.0, "x"}},
			matrix.ErrElementNotNumber, "Matrix elements must be numbers"},
		{"bool element", []any{[]any{true}},
			matrix.ErrElementNotNumber, "Matrix elements must be numbers"},
		{"null element", []any{[]any{1.0, nil}},
			matrix.ErrElementNotNumber, "Matrix elements must be numbers"},
		{"nested list element", []any{[]any{[]any{1.0}}},
			matrix.ErrElementNotNumber, "Matrix elements must be numbers"},
		{"unparseable json.Number", []any{[]any{json.Number("abc")}},
			matrix.ErrElementNotNumber, "Matrix elements must be numbers"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.FromRaw(tc.v)
			require.Truef(t, errors.Is(err, tc.wantErr),
				"expected errors.Is(%v, %v)", err, tc.wantErr)
			require.EqualError(t, err, tc.wantText)
		})
	}
}

// TestFromRaw_FiniteOnly forwards construction options.
func TestFromRaw_FiniteOnly(t *testing.T) {
	t.Parallel()

	dirty := [][]float64{{1, math.NaN()}}

	_, err := matrix.FromRaw(dirty)
	require.NoError(t, err)

	_, err = matrix.FromRaw(dirty, matrix.WithFiniteOnly())
	require.Truef(t, errors.Is(err, matrix.ErrElementNotNumber),
		"expected errors.Is(%v, %v)", err, matrix.ErrElementNotNumber)
}

// TestMustFromRaw mirrors the asserting convention of the constructors.
func TestMustFromRaw(t *testing.T) {
	t.Parallel()

	m := matrix.MustFromRaw([]any{[]any{1, 2}, []any{3, 4}})
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.ToSlices())

	require.PanicsWithError(t, "Matrix must be a list of lists", func() {
		matrix.MustFromRaw([]any{1.0, 2.0, 3.0, 4.0})
	})
}

// TestMatrix_JSON covers the codec round trip and document-level
// diagnostics.
func TestMatrix_JSON(t *testing.T) {
	t.Parallel()

	m := matrix.MustNew([][]float64{{1, 2}, {3, 4}})

	out, err := json.Marshal(m)
	require.NoError(t, err)
	require.JSONEq(t, "[[1,2],[3,4]]", string(out))

	var back matrix.Matrix
	require.NoError(t, json.Unmarshal(out, &back))
	require.True(t, matrix.Equal(m, back))
}

// TestMatrix_JSON_Diagnostics maps malformed documents onto the
// construction sentinels.
func TestMatrix_JSON_Diagnostics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{"scalar document", `5`, matrix.ErrNotListOfLists},
		{"null document", `null`, matrix.ErrNotListOfLists},
		{"object document", `{"a":1}`, matrix.ErrNotListOfLists},
		{"flat array", `[1,2,3,4]`, matrix.ErrNotListOfLists},
		{"empty array", `[]`, matrix.ErrNoRows},
		{"ragged", `[[1,2],[3]]`, matrix.ErrRaggedRows},
		{"empty rows", `[[],[]]`, matrix.ErrNoColumns},
		{"string element", `[[1,"x"]]`, matrix.ErrElementNotNumber},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var m matrix.Matrix
			err := json.Unmarshal([]byte(tc.doc), &m)
			require.Truef(t, errors.Is(err, tc.wantErr),
				"expected errors.Is(%v, %v)", err, tc.wantErr)
			require.False(t, m.Valid())
		})
	}

	// Decoder-level syntax errors pass through untouched.
	var m matrix.Matrix
	err := json.Unmarshal([]byte(`not json`), &m)
	require.Error(t, err)
	require.False(t, errors.Is(err, matrix.ErrNotListOfLists))
}

// TestMatrix_JSON_MarshalInvalid refuses to serialize the zero value.
func TestMatrix_JSON_MarshalInvalid(t *testing.T) {
	t.Parallel()

	_, err := matrix.Matrix{}.MarshalJSON()
	require.EqualError(t, err, "Invalid matrix input. Use the matrix constructor.")

	// Through the encoder the sentinel survives wrapping.
	_, err = json.Marshal(matrix.Matrix{})
	require.Truef(t, errors.Is(err, matrix.ErrInvalidMatrix),
		"expected errors.Is(%v, %v)", err, matrix.ErrInvalidMatrix)
}

// TestMatrix_YAML covers the codec round trip, handwritten documents and
// document-level diagnostics.
func TestMatrix_YAML(t *testing.T) {
	t.Parallel()

	m := matrix.MustNew([][]float64{{1, 2}, {3, 4}})

	out, err := yaml.Marshal(m)
	require.NoError(t, err)

	var back matrix.Matrix
	require.NoError(t, yaml.Unmarshal(out, &back))
	require.True(t, matrix.Equal(m, back))

	// Flow and block style documents decode the same way.
	var flow matrix.Matrix
	require.NoError(t, yaml.Unmarshal([]byte(`[[1, 2], [3, 4]]`), &flow))
	require.True(t, matrix.Equal(m, flow))

	var block matrix.Matrix
	require.NoError(t, yaml.Unmarshal([]byte("- [1, 2]\n- [3, 4]\n"), &block))
	require.True(t, matrix.Equal(m, block))

	// Float literals round through untouched.
	var frac matrix.Matrix
	require.NoError(t, yaml.Unmarshal([]byte(`[[1.5, -2]]`), &frac))
	require.Equal(t, [][]float64{{1.5, -2}}, frac.ToSlices())
}

// TestMatrix_YAML_Diagnostics maps malformed documents onto the
// construction sentinels.
func TestMatrix_YAML_Diagnostics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{"scalar document", `42`, matrix.ErrNotListOfLists},
		{"mapping document", `rows: 2`, matrix.ErrNotListOfLists},
		{"flat sequence", `[1, 2, 3, 4]`, matrix.ErrNotListOfLists},
		{"empty sequence", `[]`, matrix.ErrNoRows},
		{"ragged", `[[1, 2], [3]]`, matrix.ErrRaggedRows},
		{"string element", `[[1, x]]`, matrix.ErrElementNotNumber},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var m matrix.Matrix
			err := yaml.Unmarshal([]byte(tc.doc), &m)
			require.Truef(t, errors.Is(err, tc.wantErr),
				"expected errors.Is(%v, %v)", err, tc.wantErr)
			require.False(t, m.Valid())
		})
	}
}

// TestMatrix_YAML_MarshalInvalid refuses to serialize the zero value.
func TestMatrix_YAML_MarshalInvalid(t *testing.T) {
	t.Parallel()

	_, err := yaml.Marshal(matrix.Matrix{})
	require.Truef(t, errors.Is(err, matrix.ErrInvalidMatrix),
		"expected errors.Is(%v, %v)", err, matrix.ErrInvalidMatrix)
}
