// Package vecvec is an in-memory, row-major two-dimensional container with
// zero-copy windows over its own storage.
//
// What is in the box?
//
//	A small, generic, zero-runtime-dependency library:
//		• Grid[T]: fixed width×height, one flat buffer, O(1) indexed access
//		• View[T] / MutView[T]: read-only and exclusive windows, nestable at no extra cost
//		• HSplitAtMut / VSplitAtMut: two live mutable halves that never share a cell
//		• Equal / EqualRows: structural comparison, independent of offsets
//		• WithBorrowCheck: an opt-in runtime ledger that panics on aliasing mistakes
//
// Packages:
//
//	grid/            : Grid, View, MutView, equality, formatting, options
//	rect/            : half-open integer rectangles (bounds, overlap, splits)
//	internal/borrow/ : lease ledger backing WithBorrowCheck
//	examples/        : runnable demo programs
//
// Quick ASCII example, HSplitAtMut(1) over a 4×3 grid:
//
//	┌───────────┐
//	│ 0  1  2  3│  top    (0,0 4x1)
//	├───────────┤
//	│ 4  5  6  7│  bottom (0,1 4x2)
//	│ 8  9 10 11│
//	└───────────┘
//
//	go get github.com/katalvlaran/vecvec/grid
package vecvec
