// SPDX-License-Identifier: MIT

// Package rect - integer rectangles in a top-left origin plane.
//
// Purpose:
//   - Single source of truth for the bounds arithmetic shared by grid and
//     the borrow ledger (containment, overlap, split halves).
//   - All rectangles are half-open: [X, X+W) × [Y, Y+H).
//
// Behavior highlights:
//   - Zero-area rectangles are legal and never overlap anything.
//   - Negative extents are never produced by this package; Valid reports them.
//
// Complexity quicksheet:
//   - Every function is O(1), allocation-free.
package rect

import "fmt"

// Rect is a half-open rectangle [X, X+W) × [Y, Y+H).
type Rect struct {
	X, Y int // top-left corner
	W, H int // extent (width, height)
}

// New is a positional constructor, mostly for readable call sites.
func New(x, y, w, h int) Rect { return Rect{X: x, Y: y, W: w, H: h} }

// Valid reports whether all four components are non-negative.
// Complexity: O(1).
func (r Rect) Valid() bool { return r.X >= 0 && r.Y >= 0 && r.W >= 0 && r.H >= 0 }

// Empty reports whether r covers no cells.
// Complexity: O(1).
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Area returns W*H, or 0 for an empty rectangle.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}

	return r.W * r.H
}

// Contains reports whether the cell (x, y) lies inside r.
// Complexity: O(1).
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Within reports whether r is a valid window of a w×h owner, that is
// r.Valid() and r.X+r.W <= w and r.Y+r.H <= h.
//
// A rectangle that exactly touches the owner boundary is within it,
// including zero-area rectangles anchored on the far edge (e.g. (w,h,0,0)).
//
// The sums are rearranged as subtractions so huge inputs cannot overflow.
// Complexity: O(1).
func (r Rect) Within(w, h int) bool {
	if !r.Valid() || w < 0 || h < 0 {
		return false
	}

	return r.X <= w && r.W <= w-r.X && r.Y <= h && r.H <= h-r.Y
}

// Overlaps reports whether r and o share at least one cell.
// Empty rectangles overlap nothing, including themselves.
// Complexity: O(1).
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}

	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Intersect returns the common part of r and o. The result is the zero
// Rect when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	if !r.Overlaps(o) {
		return Rect{}
	}
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.W, o.X+o.W), min(r.Y+r.H, o.Y+o.H)

	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Translate shifts r by (dx, dy) keeping its extent.
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// HSplit cuts r horizontally after row at (relative to r.Y).
// top = rows [0,at), bottom = rows [at,H); both keep the full width.
// ok is false unless 0 <= at <= r.H.
//
// The halves never overlap and together cover r exactly.
func (r Rect) HSplit(at int) (top, bottom Rect, ok bool) {
	if at < 0 || at > r.H {
		return Rect{}, Rect{}, false
	}
	top = Rect{X: r.X, Y: r.Y, W: r.W, H: at}
	bottom = Rect{X: r.X, Y: r.Y + at, W: r.W, H: r.H - at}

	return top, bottom, true
}

// VSplit cuts r vertically after column at (relative to r.X).
// left = cols [0,at), right = cols [at,W); both keep the full height.
// ok is false unless 0 <= at <= r.W.
func (r Rect) VSplit(at int) (left, right Rect, ok bool) {
	if at < 0 || at > r.W {
		return Rect{}, Rect{}, false
	}
	left = Rect{X: r.X, Y: r.Y, W: at, H: r.H}
	right = Rect{X: r.X + at, Y: r.Y, W: r.W - at, H: r.H}

	return left, right, true
}

// String renders r as "(x,y wxh)".
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}
