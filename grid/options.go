// SPDX-License-Identifier: MIT

// Package grid: functional configuration for grid construction.
//
// Design goals:
//   - Defaults are documented constants (single source of truth).
//   - Options are idempotent; the last one applied wins.
//   - No dead switches: each flag changes behavior and is covered by tests.

package grid

// DefaultBorrowCheck toggles runtime aliasing checks for new grids.
// Off by default: views then cost O(1) and Release is a no-op.
const DefaultBorrowCheck = false

// Option mutates construction options.
type Option func(*Options)

// Options holds the resolved construction options. Fields are internal;
// use the WithX constructors.
type Options struct {
	borrowCheck bool
}

// WithBorrowCheck enables the runtime borrow ledger: every view leases its
// rectangle (shared for View, exclusive for MutView) until Release, and
// aliasing violations panic with a *BorrowError.
//
// Intended for tests and debugging; each access costs O(live views).
func WithBorrowCheck() Option {
	return func(o *Options) { o.borrowCheck = true }
}

// WithoutBorrowCheck disables the runtime borrow ledger.
func WithoutBorrowCheck() Option {
	return func(o *Options) { o.borrowCheck = false }
}

func gatherOptions(opts ...Option) Options {
	o := Options{borrowCheck: DefaultBorrowCheck}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
