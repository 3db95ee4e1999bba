// Package matrix provides strictly validated two-dimensional numeric
// matrices with transpose, scalar multiplication and element-wise
// addition.
//
// 🚀 What does it guarantee?
//
//	Every value of type Matrix is rectangular, non-empty and numeric.
//	Construction runs an ordered, fail-fast validation pipeline, so
//	downstream code never re-checks shape invariants:
//	  • shape        — the input is a sequence of sequences
//	  • row count    — at least one row
//	  • uniformity   — all rows share one column count
//	  • column count — at least one column per row
//
// ✨ Key features:
//   - immutable value type: every operation returns a fresh Matrix
//   - dual API: fallible (Matrix, error) and asserting Must* forms
//     (Must* panics with *InvalidMatrixError carrying the same text)
//   - independently callable validators (ValidateRows, ValidateScalar, …)
//   - dynamic ingestion via FromRaw for decoded JSON/YAML payloads
//   - YAML and JSON codecs on the Matrix value itself
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rectmat/matrix"
//
//	m, err := matrix.New([][]float64{{1, 2}, {3, 4}})
//	if err != nil { ... }
//
//	t, _ := matrix.Transpose(m)        // [[1,3],[2,4]]
//	s, _ := matrix.Scale(m, 5)         // [[5,10],[15,20]]
//	sum, _ := matrix.Add(m, m)         // [[2,4],[6,8]]
//
// Error contract:
//
//	Each failure mode has one fixed sentinel whose text is stable and
//	matched verbatim by tests; compare with errors.Is. The asserting
//	forms never invent new messages — they panic with the sentinel the
//	fallible form would have returned.
//
// Performance:
//
//   - All operations are single-pass: O(r·c) time, O(r·c) memory for
//     the result. No locks, no shared state; values are freely
//     shareable across goroutines.
package matrix
