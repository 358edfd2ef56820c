// SPDX-License-Identifier: MIT

// Package borrow - runtime lease ledger for aliasing checks over one owner.
//
// Purpose:
//   - Record which rectangles of an owner are currently leased, and how
//     (Shared or Exclusive), so overlapping mutable aliases can be detected.
//   - Leases form a tree: a lease acquired through another lease is its
//     child (a reborrow) and may overlap it.
//
// Rules (single source of truth, enforced in conflictLocked):
//   - Two overlapping leases conflict when at least one is Exclusive,
//     unless one is an ancestor of the other.
//   - An access check on behalf of a holder skips the holder and its
//     ancestors but NOT its descendants: a lease is frozen for writes while
//     a child is live, and frozen entirely while an Exclusive child is live.
//   - Empty rectangles never conflict.
//
// Behavior highlights:
//   - A nil *Ledger disables tracking: every call succeeds, Release is a no-op.
//   - Release is idempotent and recursive (children never outlive parents).
//   - Deterministic diagnostics: on several conflicts the oldest lease is reported.
//
// Concurrency:
//   - All methods are guarded by one mutex, so leases may be acquired and
//     released from different goroutines.
//
// Complexity quicksheet:
//   - Acquire/Check: O(L + depth); Release: O(subtree); L = live leases.
package borrow

import (
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/vecvec/rect"
)

// Mode is the capability a lease grants over its rectangle.
type Mode uint8

const (
	// Shared permits reads; any number of Shared leases may overlap.
	Shared Mode = iota + 1
	// Exclusive permits writes; it may not overlap any unrelated lease.
	Exclusive
)

// String returns "shared" or "exclusive".
func (m Mode) String() string {
	switch m {
	case Shared:
		return "shared"
	case Exclusive:
		return "exclusive"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// ID identifies a lease within one Ledger. Root (0) stands for the owner
// itself and is never a live lease.
type ID uint64

// Root is the implicit holder for direct owner access.
const Root ID = 0

// Lease describes one live lease.
type Lease struct {
	ID     ID
	Parent ID
	Rect   rect.Rect // owner-absolute rectangle
	Mode   Mode
}

type entry struct {
	Lease
	children []ID
}

// Ledger tracks live leases over a single owner.
type Ledger struct {
	mu   sync.Mutex
	next ID
	live map[ID]*entry
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{live: make(map[ID]*entry)}
}

// Acquire registers a lease on r with mode m, derived from parent.
// Use Root as parent for leases taken directly from the owner.
//
// Errors:
//   - ErrReleased when parent is no longer live.
//   - *ConflictError (wrapping ErrConflict) when r clashes with a live lease.
//
// On error nothing is registered.
func (l *Ledger) Acquire(parent ID, r rect.Rect, m Mode) (ID, error) {
	if l == nil {
		return Root, nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireLiveLocked(parent); err != nil {
		return Root, err
	}
	if held := l.conflictLocked(parent, r, m); held != nil {
		return Root, &ConflictError{Want: Lease{Parent: parent, Rect: r, Mode: m}, Held: held.Lease}
	}

	return l.insertLocked(parent, r, m), nil
}

// AcquirePair registers two leases with the same parent and mode in one step.
//
// a and b must be disjoint; split callers guarantee it by construction
// (they are the two halves of one rectangle), so they are NOT checked
// against each other. Each one is checked against every other live lease.
// Either both are registered or neither is.
func (l *Ledger) AcquirePair(parent ID, a, b rect.Rect, m Mode) (ID, ID, error) {
	if l == nil {
		return Root, Root, nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireLiveLocked(parent); err != nil {
		return Root, Root, err
	}
	for _, r := range [2]rect.Rect{a, b} {
		if held := l.conflictLocked(parent, r, m); held != nil {
			return Root, Root, &ConflictError{Want: Lease{Parent: parent, Rect: r, Mode: m}, Held: held.Lease}
		}
	}

	return l.insertLocked(parent, a, m), l.insertLocked(parent, b, m), nil
}

// Check reports whether holder may access r with mode m right now.
// holder is the lease performing the access, or Root for the owner.
func (l *Ledger) Check(holder ID, r rect.Rect, m Mode) error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireLiveLocked(holder); err != nil {
		return err
	}
	if held := l.conflictLocked(holder, r, m); held != nil {
		return &ConflictError{Want: Lease{ID: holder, Rect: r, Mode: m}, Held: held.Lease}
	}

	return nil
}

// Release ends lease id and every lease derived from it.
// Releasing Root, an unknown id or an already released id is a no-op.
func (l *Ledger) Release(id ID) {
	if l == nil || id == Root {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.live[id]
	if !ok {
		return
	}
	if p, ok := l.live[e.Parent]; ok {
		p.children = removeID(p.children, id)
	}
	l.dropLocked(e)
}

// Live reports whether id is still registered. Root is always live.
func (l *Ledger) Live(id ID) bool {
	if l == nil || id == Root {
		return true
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.live[id]

	return ok
}

// Len returns the number of live leases.
func (l *Ledger) Len() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.live)
}

// Snapshot returns the live leases ordered by ID (oldest first).
func (l *Ledger) Snapshot() []Lease {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	out := make([]Lease, 0, len(l.live))
	for _, e := range l.live {
		out = append(out, e.Lease)
	}
	l.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

func (l *Ledger) requireLiveLocked(id ID) error {
	if id == Root {
		return nil
	}
	if _, ok := l.live[id]; !ok {
		return fmt.Errorf("borrow: lease #%d: %w", id, ErrReleased)
	}

	return nil
}

// conflictLocked returns the oldest live lease clashing with a request by
// holder for r in mode m, or nil. holder and its ancestors are skipped.
func (l *Ledger) conflictLocked(holder ID, r rect.Rect, m Mode) *entry {
	if r.Empty() {
		return nil
	}
	skip := l.ancestryLocked(holder)

	var found *entry
	for id, e := range l.live {
		if m == Shared && e.Mode == Shared {
			continue
		}
		if containsID(skip, id) || !r.Overlaps(e.Rect) {
			continue
		}
		if found == nil || id < found.ID {
			found = e
		}
	}

	return found
}

// ancestryLocked lists holder and all its ancestors (Root excluded).
func (l *Ledger) ancestryLocked(holder ID) []ID {
	var chain []ID
	for id := holder; id != Root; {
		e, ok := l.live[id]
		if !ok {
			break
		}
		chain = append(chain, id)
		id = e.Parent
	}

	return chain
}

func (l *Ledger) insertLocked(parent ID, r rect.Rect, m Mode) ID {
	l.next++
	id := l.next
	l.live[id] = &entry{Lease: Lease{ID: id, Parent: parent, Rect: r, Mode: m}}
	if p, ok := l.live[parent]; ok {
		p.children = append(p.children, id)
	}

	return id
}

func (l *Ledger) dropLocked(e *entry) {
	delete(l.live, e.ID)
	for _, c := range e.children {
		if ce, ok := l.live[c]; ok {
			l.dropLocked(ce)
		}
	}
}

func containsID(ids []ID, id ID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}

	return false
}

func removeID(ids []ID, id ID) []ID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}

	return ids
}
