// Package grid provides a fixed-size, row-major two-dimensional container
// with zero-copy windowed views.
//
// The package provides:
//
//   - Grid[T]: owns width*height elements; (x, y) lives at y*width + x.
//   - View[T]: a read-only window over a Grid or another view.
//   - MutView[T]: an exclusive read-write window.
//   - HSplitAtMut / VSplitAtMut: two live MutViews over disjoint halves,
//     the one sanctioned way to hold several mutable windows at once.
//   - Equal, EqualFunc, EqualRows: structural comparison of any Reader.
//
// Out-of-range coordinates and rectangles are not errors: every bounded
// operation returns a trailing ok bool instead.
//
// Aliasing rules. Any number of Views may overlap each other. A MutView
// must not overlap any other live view, and the grid must not be accessed
// over its cells while it is live. Go cannot reject violations at compile
// time, so grids built WithBorrowCheck track every view in a lease ledger
// and panic with a *BorrowError on the first violation. Views from such
// grids hold their lease until Release:
//
//	g := grid.New(4, 3, 0, grid.WithBorrowCheck())
//	top, bottom, _ := g.HSplitAtMut(1)
//	defer top.Release()
//	defer bottom.Release()
//
// Views never own data. Do not keep a view after you are done with the
// grid region it covers; use ToRows or Grid.Clone for independent copies.
package grid
