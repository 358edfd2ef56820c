// SPDX-License-Identifier: MIT

// Package grid - Grid storage (row-major) & view factories.
//
// Purpose:
//   - Own a flat buffer of width*height elements with the explicit index formula y*width + x.
//   - Report out-of-range coordinates with a trailing ok bool, never a panic or an error.
//   - Hand out no-copy windows: View (read-only) and MutView (exclusive write).
//
// AI-Hints:
//   - Use HSplitAtMut/VSplitAtMut to get two live MutViews at once; they are disjoint by construction.
//   - Use ToRows or Clone when the result must outlive or be independent from the grid.
//   - Enable WithBorrowCheck in tests to turn aliasing mistakes into panics.
//
// Complexity quicksheet:
//   - New: O(w*h); Get/GetMut/Set: O(1); Slice/Split: O(1); Clone/ToRows/String: O(w*h).
//   - Under borrow checking every access and view adds O(live views).

package grid

import (
	"fmt"

	"github.com/katalvlaran/vecvec/internal/borrow"
	"github.com/katalvlaran/vecvec/rect"
)

// ---------- method context tags ----------

const (
	kindGrid    = "Grid"
	kindView    = "View"
	kindMutView = "MutView"

	panicNegativeDims = "grid: New: width and height must be non-negative"
)

// Grid is a fixed-size two-dimensional container in row-major order.
//   - width, height never change after construction.
//   - data holds exactly width*height elements; (x, y) lives at y*width + x.
//   - ledger is nil unless borrow checking is enabled.
type Grid[T any] struct {
	width, height int
	data          []T
	ledger        *borrow.Ledger
}

// Compile-time assertions for Reader & fmt.Stringer conformance.
var (
	_ Reader[int]  = (*Grid[int])(nil)
	_ fmt.Stringer = (*Grid[int])(nil)
)

// New creates a width×height grid with every cell set to fill.
// MAIN DESCRIPTION:
//   - Allocate the backing buffer once and copy fill into each cell.
//
// Behavior highlights:
//   - Zero width or height is legal and yields an empty grid.
//   - fill is copied by assignment; for element types holding pointers the
//     cells share what fill points to (use CloneFunc for deep copies).
//
// Panics:
//   - on negative width or height (programmer error, like make).
//
// Complexity:
//   - Time O(w*h), Space O(w*h).
func New[T any](width, height int, fill T, opts ...Option) *Grid[T] {
	if width < 0 || height < 0 {
		panic(panicNegativeDims)
	}
	data := make([]T, width*height)
	for i := range data {
		data[i] = fill
	}

	return newGrid(width, height, data, gatherOptions(opts...))
}

// FromRows builds a grid from a literal list of rows (rows[y][x]).
// The input is copied; later edits to rows do not affect the grid.
//
// Errors:
//   - ErrNonRectangular when rows differ in length.
//
// An empty list yields a 0×0 grid; a list of empty rows yields a 0×h grid.
// Complexity: O(w*h).
func FromRows[T any](rows [][]T, opts ...Option) (*Grid[T], error) {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("FromRows: row %d has length %d, want %d: %w", y, len(row), w, ErrNonRectangular)
		}
	}
	data := make([]T, 0, w*h)
	for _, row := range rows {
		data = append(data, row...)
	}

	return newGrid(w, h, data, gatherOptions(opts...)), nil
}

func newGrid[T any](width, height int, data []T, o Options) *Grid[T] {
	g := &Grid[T]{width: width, height: height, data: data}
	if o.borrowCheck {
		g.ledger = borrow.NewLedger()
	}

	return g
}

// Width returns the number of columns. Complexity: O(1).
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows. Complexity: O(1).
func (g *Grid[T]) Height() int { return g.height }

// Len returns width*height.
func (g *Grid[T]) Len() int { return len(g.data) }

// Rect returns the full rectangle (0, 0, width, height).
func (g *Grid[T]) Rect() rect.Rect { return rect.New(0, 0, g.width, g.height) }

// BorrowChecked reports whether the runtime borrow ledger is enabled.
func (g *Grid[T]) BorrowChecked() bool { return g.ledger != nil }

// LiveViews returns how many views currently hold a lease (0 when borrow
// checking is disabled). Handy for asserting that tests release views.
func (g *Grid[T]) LiveViews() int { return g.ledger.Len() }

// root is the implicit whole-grid window used to share view logic.
func (g *Grid[T]) root() window[T] {
	r := g.Rect()
	return window[T]{g: g, kind: kindGrid, local: r, abs: r, lease: borrow.Root}
}

// Get returns the element at (x, y); ok is false when out of range.
// Complexity: O(1).
func (g *Grid[T]) Get(x, y int) (T, bool) {
	r := g.root()
	return r.Get(x, y)
}

// GetMut returns a pointer to the element at (x, y); ok is false when out
// of range. The pointer licenses writes to that one cell; do not retain it
// while a view over the cell is live.
// Complexity: O(1).
func (g *Grid[T]) GetMut(x, y int) (*T, bool) {
	r := g.root()
	return r.ptr("GetMut", x, y)
}

// Set stores v at (x, y).
//
// Errors:
//   - ErrOutOfRange (wrapped with "Grid.Set(x,y)") when out of range.
func (g *Grid[T]) Set(x, y int, v T) error {
	r := g.root()
	return r.set(x, y, v)
}

// Slice returns a read-only view of [x,x+w) × [y,y+h).
// MAIN DESCRIPTION:
//   - O(1) window over the same storage; no elements are copied.
//
// Behavior highlights:
//   - ok iff all components are non-negative, x+w <= Width() and y+h <= Height().
//   - Zero-area rectangles inside or on the boundary are valid.
//   - Any number of Views may overlap each other and direct reads of the grid.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Grid[T]) Slice(x, y, w, h int) (*View[T], bool) {
	r := g.root()
	return r.Slice(x, y, w, h)
}

// SliceMut returns an exclusive view of [x,x+w) × [y,y+h).
// While it is live, no other accessor may touch its cells; the grid only
// checks this under WithBorrowCheck.
func (g *Grid[T]) SliceMut(x, y, w, h int) (*MutView[T], bool) {
	r := g.root()
	return r.sliceMut(x, y, w, h)
}

// HSplitAt splits the grid into rows [0,y) and [y,Height()).
// ok is false unless 0 <= y <= Height().
func (g *Grid[T]) HSplitAt(y int) (top, bottom *View[T], ok bool) {
	r := g.root()
	return r.HSplitAt(y)
}

// VSplitAt splits the grid into columns [0,x) and [x,Width()).
// ok is false unless 0 <= x <= Width().
func (g *Grid[T]) VSplitAt(x int) (left, right *View[T], ok bool) {
	r := g.root()
	return r.VSplitAt(x)
}

// HSplitAtMut is the exclusive form of HSplitAt: both halves are live
// MutViews at once, which is safe because they never share a cell.
func (g *Grid[T]) HSplitAtMut(y int) (top, bottom *MutView[T], ok bool) {
	r := g.root()
	return r.splitMut("HSplitAtMut", y, true)
}

// VSplitAtMut is the exclusive form of VSplitAt.
func (g *Grid[T]) VSplitAtMut(x int) (left, right *MutView[T], ok bool) {
	r := g.root()
	return r.splitMut("VSplitAtMut", x, false)
}

// AsView returns a read-only view of the whole grid at (0, 0).
func (g *Grid[T]) AsView() *View[T] {
	v, _ := g.Slice(0, 0, g.width, g.height)
	return v
}

// AsMutView returns an exclusive view of the whole grid at (0, 0).
func (g *Grid[T]) AsMutView() *MutView[T] {
	v, _ := g.SliceMut(0, 0, g.width, g.height)
	return v
}

// Do visits each element in row-major order and calls f(x, y, v).
// It stops early when f returns false.
// Complexity: O(w*h), no allocations.
func (g *Grid[T]) Do(f func(x, y int, v T) bool) {
	r := g.root()
	r.Do(f)
}

// Apply replaces each element with f(x, y, v), in row-major order.
func (g *Grid[T]) Apply(f func(x, y int, v T) T) {
	r := g.root()
	r.apply(f)
}

// Fill sets every element to v.
func (g *Grid[T]) Fill(v T) {
	r := g.root()
	r.fill(v)
}

// ToRows copies the grid into a fresh [][]T (rows[y][x]).
func (g *Grid[T]) ToRows() [][]T {
	r := g.root()
	return r.ToRows()
}

// Clone returns an independent copy with the same shape, elements and
// borrow-check policy. Live views are not carried over.
// MAIN DESCRIPTION:
//   - Copy the backing buffer in one pass (elements copied by assignment).
//
// Complexity:
//   - Time O(w*h), Space O(w*h).
func (g *Grid[T]) Clone() *Grid[T] {
	return g.CloneFunc(nil)
}

// CloneFunc is Clone with a per-element copy function, for element types
// that need a deep copy. A nil f copies by assignment.
func (g *Grid[T]) CloneFunc(f func(T) T) *Grid[T] {
	g.check(kindGrid, "Clone", borrow.Root, g.Rect(), borrow.Shared)
	cp := make([]T, len(g.data))
	if f == nil {
		copy(cp, g.data)
	} else {
		for i, v := range g.data {
			cp[i] = f(v)
		}
	}

	return newGrid(g.width, g.height, cp, Options{borrowCheck: g.ledger != nil})
}

// String renders the grid row by row: "[[a, b], [c, d]]".
// Intended for debugging; elements are formatted with %v.
func (g *Grid[T]) String() string {
	r := g.root()
	return r.String()
}

// check panics with a *BorrowError when holder may not access r in mode m.
// It is a no-op without borrow checking.
func (g *Grid[T]) check(kind, method string, holder borrow.ID, r rect.Rect, m borrow.Mode) {
	if g.ledger == nil {
		return
	}
	if err := g.ledger.Check(holder, r, m); err != nil {
		panic(&BorrowError{Op: kind + "." + method, Err: err})
	}
}

// lease registers a view rectangle, panicking on conflict.
func (g *Grid[T]) lease(kind, method string, parent borrow.ID, r rect.Rect, m borrow.Mode) borrow.ID {
	if g.ledger == nil {
		return borrow.Root
	}
	id, err := g.ledger.Acquire(parent, r, m)
	if err != nil {
		panic(&BorrowError{Op: kind + "." + method, Err: err})
	}

	return id
}

// leasePair registers both halves of a split in one step.
func (g *Grid[T]) leasePair(kind, method string, parent borrow.ID, a, b rect.Rect, m borrow.Mode) (borrow.ID, borrow.ID) {
	if g.ledger == nil {
		return borrow.Root, borrow.Root
	}
	ia, ib, err := g.ledger.AcquirePair(parent, a, b, m)
	if err != nil {
		panic(&BorrowError{Op: kind + "." + method, Err: err})
	}

	return ia, ib
}
