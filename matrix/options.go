// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction.
// Public entry points accept ...Option and resolve them internally via
// gatherOptions; defaults are documented constants so they never diverge
// from the code.

package matrix

// DefaultFiniteOnly toggles the strict finite-element policy on
// construction. Off by default: the contract prescribes native float64
// arithmetic, so NaN and ±Inf are legal data unless a caller opts in.
const DefaultFiniteOnly = false

// Option mutates construction options. Safe to apply repeatedly.
type Option func(*options)

// options stores the effective configuration after applying Option
// setters. Unexported on purpose; callers compose behavior through the
// WithX constructors only.
type options struct {
	finiteOnly bool // DefaultFiniteOnly
}

// WithFiniteOnly rejects NaN and ±Inf elements at construction with
// ErrElementNotNumber. Applies to New and FromRaw; the codecs decode
// with defaults, and existing matrices are unaffected.
func WithFiniteOnly() Option {
	return func(o *options) { o.finiteOnly = true }
}

// gatherOptions applies user-provided setters on top of defaults.
// Last-writer-wins; stable for a given sequence of opts.
func gatherOptions(user ...Option) options {
	o := options{finiteOnly: DefaultFiniteOnly}
	for _, set := range user {
		set(&o)
	}

	return o
}
