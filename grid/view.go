// SPDX-License-Identifier: MIT

// Package grid - View & MutView: non-owning windows over a Grid.
//
// Purpose:
//   - Translate local (x, y) to grid-absolute offsets; never copy elements.
//   - Encode the capability in the type: View reads, MutView reads and writes.
//   - Compose offsets at construction so a view of a view addresses the root
//     grid directly (no extra indirection per nesting level).
//
// Borrow discipline (checked only under WithBorrowCheck):
//   - View leases its rectangle shared, MutView exclusive; sub-views lease
//     from their parent, which stays frozen while they are live.
//   - Split halves are leased as a pair and are disjoint by construction.
//   - Release ends a view's lease together with every view derived from it.

package grid

import (
	"fmt"

	"github.com/katalvlaran/vecvec/internal/borrow"
	"github.com/katalvlaran/vecvec/rect"
)

// window is the shape-and-lease state shared by View and MutView.
type window[T any] struct {
	g     *Grid[T]
	kind  string    // method tag prefix for diagnostics
	local rect.Rect // relative to the immediate owner
	abs   rect.Rect // relative to the root grid
	lease borrow.ID
}

// View is a read-only window over a Grid or over another view.
// It is created only by Grid and view factories.
type View[T any] struct {
	window[T]
}

// MutView is an exclusive read-write window over a Grid or over another
// MutView. At most one live MutView may cover a given cell, except for the
// two halves of one split, which never share a cell.
type MutView[T any] struct {
	window[T]
}

var (
	_ Reader[int]  = (*View[int])(nil)
	_ Reader[int]  = (*MutView[int])(nil)
	_ fmt.Stringer = (*View[int])(nil)
	_ fmt.Stringer = (*MutView[int])(nil)
)

// X returns the column offset relative to the owner the view was cut from.
func (v *window[T]) X() int { return v.local.X }

// Y returns the row offset relative to the owner the view was cut from.
func (v *window[T]) Y() int { return v.local.Y }

// Width returns the number of columns in the view.
func (v *window[T]) Width() int { return v.local.W }

// Height returns the number of rows in the view.
func (v *window[T]) Height() int { return v.local.H }

// Rect returns the view rectangle relative to its immediate owner.
func (v *window[T]) Rect() rect.Rect { return v.local }

// Bounds returns the view rectangle in root-grid coordinates.
func (v *window[T]) Bounds() rect.Rect { return v.abs }

// Release ends the view's lease and the leases of every view derived from
// it. Idempotent; a no-op without borrow checking.
func (v *window[T]) Release() { v.g.ledger.Release(v.lease) }

// offset bounds-checks local (x, y) and returns the flat index in the root.
func (v *window[T]) offset(x, y int) (int, bool) {
	if x < 0 || x >= v.local.W || y < 0 || y >= v.local.H {
		return 0, false
	}

	return (v.abs.Y+y)*v.g.width + v.abs.X + x, true
}

// cell returns the absolute unit rectangle of local (x, y).
func (v *window[T]) cell(x, y int) rect.Rect {
	return rect.New(v.abs.X+x, v.abs.Y+y, 1, 1)
}

// Get returns the element at local (x, y); ok is false when (x, y) is
// outside the view, even if it would be inside the grid.
// Complexity: O(1).
func (v *window[T]) Get(x, y int) (T, bool) {
	off, ok := v.offset(x, y)
	if !ok {
		var zero T
		return zero, false
	}
	v.g.check(v.kind, "Get", v.lease, v.cell(x, y), borrow.Shared)

	return v.g.data[off], true
}

func (v *window[T]) ptr(method string, x, y int) (*T, bool) {
	off, ok := v.offset(x, y)
	if !ok {
		return nil, false
	}
	v.g.check(v.kind, method, v.lease, v.cell(x, y), borrow.Exclusive)

	return &v.g.data[off], true
}

func (v *window[T]) set(x, y int, val T) error {
	off, ok := v.offset(x, y)
	if !ok {
		return fmt.Errorf("%s.Set(%d,%d): %w", v.kind, x, y, ErrOutOfRange)
	}
	v.g.check(v.kind, "Set", v.lease, v.cell(x, y), borrow.Exclusive)
	v.g.data[off] = val

	return nil
}

// sub validates a local rectangle and composes it onto the root.
func (v *window[T]) sub(local rect.Rect) (rect.Rect, bool) {
	if !local.Within(v.local.W, v.local.H) {
		return rect.Rect{}, false
	}

	return local.Translate(v.abs.X, v.abs.Y), true
}

// Slice returns a read-only sub-view of [x,x+w) × [y,y+h) in local
// coordinates. ok iff x+w <= Width() and y+h <= Height() (non-negative).
// Complexity: O(1).
func (v *window[T]) Slice(x, y, w, h int) (*View[T], bool) {
	local := rect.New(x, y, w, h)
	abs, ok := v.sub(local)
	if !ok {
		return nil, false
	}
	id := v.g.lease(v.kind, "Slice", v.lease, abs, borrow.Shared)

	return &View[T]{window[T]{g: v.g, kind: kindView, local: local, abs: abs, lease: id}}, true
}

func (v *window[T]) sliceMut(x, y, w, h int) (*MutView[T], bool) {
	local := rect.New(x, y, w, h)
	abs, ok := v.sub(local)
	if !ok {
		return nil, false
	}
	id := v.g.lease(v.kind, "SliceMut", v.lease, abs, borrow.Exclusive)

	return &MutView[T]{window[T]{g: v.g, kind: kindMutView, local: local, abs: abs, lease: id}}, true
}

// halves cuts the view's own frame at `at`, returning local rectangles.
func (v *window[T]) halves(at int, horizontal bool) (a, b rect.Rect, ok bool) {
	frame := rect.New(0, 0, v.local.W, v.local.H)
	if horizontal {
		return frame.HSplit(at)
	}

	return frame.VSplit(at)
}

func (v *window[T]) split(method string, at int, horizontal bool, m borrow.Mode) (a, b window[T], ok bool) {
	la, lb, ok := v.halves(at, horizontal)
	if !ok {
		return window[T]{}, window[T]{}, false
	}
	aa := la.Translate(v.abs.X, v.abs.Y)
	ab := lb.Translate(v.abs.X, v.abs.Y)
	ia, ib := v.g.leasePair(v.kind, method, v.lease, aa, ab, m)

	kind := kindView
	if m == borrow.Exclusive {
		kind = kindMutView
	}
	a = window[T]{g: v.g, kind: kind, local: la, abs: aa, lease: ia}
	b = window[T]{g: v.g, kind: kind, local: lb, abs: ab, lease: ib}

	return a, b, true
}

// HSplitAt splits the view into its rows [0,y) and [y,Height()).
// ok is false unless 0 <= y <= Height().
func (v *window[T]) HSplitAt(y int) (top, bottom *View[T], ok bool) {
	a, b, ok := v.split("HSplitAt", y, true, borrow.Shared)
	if !ok {
		return nil, nil, false
	}

	return &View[T]{a}, &View[T]{b}, true
}

// VSplitAt splits the view into its columns [0,x) and [x,Width()).
// ok is false unless 0 <= x <= Width().
func (v *window[T]) VSplitAt(x int) (left, right *View[T], ok bool) {
	a, b, ok := v.split("VSplitAt", x, false, borrow.Shared)
	if !ok {
		return nil, nil, false
	}

	return &View[T]{a}, &View[T]{b}, true
}

func (v *window[T]) splitMut(method string, at int, horizontal bool) (a, b *MutView[T], ok bool) {
	wa, wb, ok := v.split(method, at, horizontal, borrow.Exclusive)
	if !ok {
		return nil, nil, false
	}

	return &MutView[T]{wa}, &MutView[T]{wb}, true
}

// Do visits each element in row-major order and calls f(x, y, v) with
// local coordinates. It stops early when f returns false.
func (v *window[T]) Do(f func(x, y int, val T) bool) {
	v.g.check(v.kind, "Do", v.lease, v.abs, borrow.Shared)
	var x, y, base int
	for y = 0; y < v.local.H; y++ {
		base = (v.abs.Y+y)*v.g.width + v.abs.X
		for x = 0; x < v.local.W; x++ {
			if !f(x, y, v.g.data[base+x]) {
				return
			}
		}
	}
}

func (v *window[T]) apply(f func(x, y int, val T) T) {
	v.g.check(v.kind, "Apply", v.lease, v.abs, borrow.Exclusive)
	var x, y, base int
	for y = 0; y < v.local.H; y++ {
		base = (v.abs.Y+y)*v.g.width + v.abs.X
		for x = 0; x < v.local.W; x++ {
			v.g.data[base+x] = f(x, y, v.g.data[base+x])
		}
	}
}

func (v *window[T]) fill(val T) {
	v.g.check(v.kind, "Fill", v.lease, v.abs, borrow.Exclusive)
	for y := 0; y < v.local.H; y++ {
		row := v.row(y)
		for i := range row {
			row[i] = val
		}
	}
}

// row aliases local row y of the view inside the root buffer.
func (v *window[T]) row(y int) []T {
	base := (v.abs.Y+y)*v.g.width + v.abs.X
	return v.g.data[base : base+v.local.W : base+v.local.W]
}

// ToRows copies the view into a fresh [][]T (rows[y][x]).
func (v *window[T]) ToRows() [][]T {
	v.g.check(v.kind, "ToRows", v.lease, v.abs, borrow.Shared)
	out := make([][]T, v.local.H)
	for y := range out {
		out[y] = append(make([]T, 0, v.local.W), v.row(y)...)
	}

	return out
}

// String renders the view row by row, like Grid.String.
func (v *window[T]) String() string {
	v.g.check(v.kind, "String", v.lease, v.abs, borrow.Shared)
	return render(v.local.W, v.local.H, func(x, y int) T {
		return v.g.data[(v.abs.Y+y)*v.g.width+v.abs.X+x]
	})
}

// ---------- MutView-only surface ----------

// GetMut returns a pointer to the element at local (x, y); ok is false when
// (x, y) is outside the view.
func (v *MutView[T]) GetMut(x, y int) (*T, bool) { return v.ptr("GetMut", x, y) }

// Set stores val at local (x, y).
//
// Errors:
//   - ErrOutOfRange (wrapped with "MutView.Set(x,y)") when outside the view.
func (v *MutView[T]) Set(x, y int, val T) error { return v.set(x, y, val) }

// SliceMut returns an exclusive sub-view of [x,x+w) × [y,y+h) in local
// coordinates. The parent must not be used over those cells while it lives.
func (v *MutView[T]) SliceMut(x, y, w, h int) (*MutView[T], bool) { return v.sliceMut(x, y, w, h) }

// HSplitAtMut splits the view into two live exclusive halves: rows [0,y)
// and [y,Height()). ok is false unless 0 <= y <= Height().
//
// Recursing on the halves partitions a region for independent processing,
// e.g. one goroutine per half.
func (v *MutView[T]) HSplitAtMut(y int) (top, bottom *MutView[T], ok bool) {
	return v.splitMut("HSplitAtMut", y, true)
}

// VSplitAtMut splits the view into two live exclusive halves: columns [0,x)
// and [x,Width()). ok is false unless 0 <= x <= Width().
func (v *MutView[T]) VSplitAtMut(x int) (left, right *MutView[T], ok bool) {
	return v.splitMut("VSplitAtMut", x, false)
}

// Apply replaces each element with f(x, y, v) in row-major order.
func (v *MutView[T]) Apply(f func(x, y int, val T) T) { v.apply(f) }

// Fill sets every element of the view to val.
func (v *MutView[T]) Fill(val T) { v.fill(val) }

// AsView returns a read-only view of the whole window, leased from v.
// v keeps read access while it lives but may not write.
func (v *MutView[T]) AsView() *View[T] {
	w, _ := v.Slice(0, 0, v.local.W, v.local.H)
	return w
}
