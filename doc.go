// Package rectmat is a small, strict library for two-dimensional numeric
// matrices: validated construction, transpose, scalar multiplication and
// element-wise addition.
//
// 🚀 What is rectmat?
//
//	A focused value library built around one guarantee: anything typed
//	Matrix is rectangular, non-empty and numeric. Construction runs an
//	ordered, fail-fast validation pipeline with fixed diagnostics, so
//	the rest of your code never re-checks shape invariants:
//		• shape        — input must be a sequence of sequences
//		• row count    — at least one row
//		• uniformity   — every row the same length
//		• column count — at least one column per row
//
// ✨ Why choose rectmat?
//
//   - Strict by construction – invalid data never becomes a Matrix
//   - Immutable values – operations return fresh results, inputs untouched
//   - Dual API – fallible (Matrix, error) and asserting Must* forms
//   - Codec-ready – FromRaw ingestion plus YAML and JSON marshaling
//   - Pure Go – no cgo, safely shareable across goroutines
//
// Everything lives in one subpackage; this root package re-exports the
// full surface 1:1 for callers who prefer a single import:
//
//	matrix/ — validators, the Matrix value type, operations, ingestion
//
// Quick example:
//
//	m := rectmat.MustNew([][]float64{{1, 2}, {3, 4}})
//	t := rectmat.MustTranspose(m)   // [[1,3],[2,4]]
//	s := rectmat.MustScale(m, 5)    // [[5,10],[15,20]]
//	sum := rectmat.MustAdd(m, m)    // [[2,4],[6,8]]
//
// Dive into matrix/doc.go for the full error contract and into
// example_test.go files for runnable scenarios.
//
//	go get github.com/katalvlaran/rectmat
package rectmat
