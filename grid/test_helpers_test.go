// SPDX-License-Identifier: MIT
// Package grid_test contains test helpers
//
// Purpose:
//   • Build the deterministic 4×3 fixtures used across the split/slice tests.
//   • Assert borrow panics by sentinel instead of by message text.

package grid_test

import (
	"testing"

	"github.com/katalvlaran/vecvec/grid"
	"github.com/stretchr/testify/require"
)

// byRows builds a w×h grid whose cell (x, y) holds y*w + x, i.e. it is
// filled 0,1,2,… with x varying fastest.
func byRows(t testing.TB, w, h int, opts ...grid.Option) *grid.Grid[int] {
	t.Helper()
	g := grid.New(w, h, 0, opts...)
	i := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			require.NoError(t, g.Set(x, y, i))
			i++
		}
	}

	return g
}

// byCols builds a w×h grid whose cell (x, y) holds x*h + y, i.e. it is
// filled 0,1,2,… with y varying fastest.
func byCols(t testing.TB, w, h int, opts ...grid.Option) *grid.Grid[int] {
	t.Helper()
	g := grid.New(w, h, 0, opts...)
	i := 0
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			p, ok := g.GetMut(x, y)
			require.True(t, ok)
			*p = i
			i++
		}
	}

	return g
}

// mustGet reads (x, y) and fails the test when it is out of range.
func mustGet[T any](t testing.TB, r grid.Reader[T], x, y int) T {
	t.Helper()
	v, ok := r.Get(x, y)
	require.True(t, ok, "Get(%d,%d) out of range", x, y)

	return v
}

// requireBorrowPanic runs f and asserts it panics with a *grid.BorrowError
// matching target.
func requireBorrowPanic(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a borrow panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		var be *grid.BorrowError
		require.ErrorAs(t, err, &be)
		require.ErrorIs(t, err, target)
	}()
	f()
}
