// SPDX-License-Identifier: MIT

// Package grid: sentinel error set.
// Coordinate and rectangle operations never return these; they report
// absence with a trailing ok bool. Sentinels are used only by the
// error-returning conveniences (Set, FromRows) and by borrow panics.
// Tests MUST match them via errors.Is.

package grid

import (
	"errors"

	"github.com/katalvlaran/vecvec/internal/borrow"
)

var (
	// ErrOutOfRange indicates that a coordinate lies outside the grid or view.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrNonRectangular indicates rows of differing lengths passed to FromRows.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrBorrowConflict is wrapped by a *BorrowError when an access or a new
	// view overlaps a live view it may not alias (borrow checking only).
	ErrBorrowConflict = borrow.ErrConflict

	// ErrReleased is wrapped by a *BorrowError when a released view, or a
	// view derived from one, is used (borrow checking only).
	ErrReleased = borrow.ErrReleased
)

// BorrowError is the panic value raised on aliasing violations when borrow
// checking is enabled. Violations are programmer errors, the runtime
// counterpart of a rejected borrow at compile time.
type BorrowError struct {
	Op  string // method tag, e.g. "MutView.Set"
	Err error  // wraps ErrBorrowConflict or ErrReleased
}

// Error returns "grid: <Op>: <cause>".
func (e *BorrowError) Error() string { return "grid: " + e.Op + ": " + e.Err.Error() }

// Unwrap exposes the cause for errors.Is / errors.As.
func (e *BorrowError) Unwrap() error { return e.Err }
