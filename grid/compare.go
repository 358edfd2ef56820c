// SPDX-License-Identifier: MIT

package grid

// Reader is the read-only surface shared by Grid, View and MutView.
type Reader[T any] interface {
	Width() int
	Height() int
	Get(x, y int) (T, bool)
}

// Equal reports whether a and b have the same shape and pairwise-equal
// elements in row-major order. Owners and offsets are irrelevant, so two
// empty views of equal shape are equal wherever they sit.
// Complexity: O(w*h).
func Equal[T comparable](a, b Reader[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T, U any](a Reader[T], b Reader[U], eq func(T, U) bool) bool {
	w, h := a.Width(), a.Height()
	if w != b.Width() || h != b.Height() {
		return false
	}
	var x, y int
	for y = 0; y < h; y++ {
		for x = 0; x < w; x++ {
			av, _ := a.Get(x, y)
			bv, _ := b.Get(x, y)
			if !eq(av, bv) {
				return false
			}
		}
	}

	return true
}

// EqualRows compares r against a literal list of rows (rows[y][x]).
// Equal iff len(rows) == r.Height(), every row has length r.Width(), and
// all elements match positionally.
//
// With zero rows the width cannot be observed: any w×0 reader equals
// [][]T{}.
func EqualRows[T comparable](r Reader[T], rows [][]T) bool {
	w, h := r.Width(), r.Height()
	if len(rows) != h {
		return false
	}
	for y, row := range rows {
		if len(row) != w {
			return false
		}
		for x, want := range row {
			if got, _ := r.Get(x, y); got != want {
				return false
			}
		}
	}

	return true
}
