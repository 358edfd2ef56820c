// SPDX-License-Identifier: MIT

package borrow

import (
	"errors"
	"fmt"
)

var (
	// ErrConflict indicates a request overlapping a live lease it may not alias.
	ErrConflict = errors.New("borrow: conflicting live lease")

	// ErrReleased indicates use of a lease that was already released.
	ErrReleased = errors.New("borrow: lease released")
)

// ConflictError details which live lease blocked a request.
// It always matches ErrConflict via errors.Is.
type ConflictError struct {
	Want Lease // requested lease; Want.ID is the accessing holder for checks (0 = owner)
	Held Lease // the live lease that blocked it
}

// Error describes both sides of the conflict.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("borrow: %s request on %v conflicts with live %s lease #%d on %v",
		e.Want.Mode, e.Want.Rect, e.Held.Mode, e.Held.ID, e.Held.Rect)
}

// Unwrap returns ErrConflict.
func (e *ConflictError) Unwrap() error { return ErrConflict }
