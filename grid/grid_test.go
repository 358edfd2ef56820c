// Package grid_test contains unit tests for Grid storage and accessors.
package grid_test

import (
	"testing"

	"github.com/katalvlaran/vecvec/grid"
	"github.com/katalvlaran/vecvec/rect"
	"github.com/stretchr/testify/require"
)

// TestNewFillsEveryCell verifies shape accessors and the fill value.
func TestNewFillsEveryCell(t *testing.T) {
	g := grid.New(4, 3, 7)
	require.Equal(t, 4, g.Width())
	require.Equal(t, 3, g.Height())
	require.Equal(t, 12, g.Len())
	require.Equal(t, rect.New(0, 0, 4, 3), g.Rect())
	require.False(t, g.BorrowChecked())

	for x := -1; x < 10; x++ {
		for y := -1; y < 10; y++ {
			v, ok := g.Get(x, y)
			if x >= 0 && x < 4 && y >= 0 && y < 3 {
				require.True(t, ok, "(%d,%d)", x, y)
				require.Equal(t, 7, v)
			} else {
				require.False(t, ok, "(%d,%d)", x, y)
				require.Zero(t, v)
			}
		}
	}
}

// TestEmptyGrids ensures zero dimensions are legal.
func TestEmptyGrids(t *testing.T) {
	for _, wh := range [][2]int{{0, 0}, {0, 3}, {4, 0}} {
		g := grid.New(wh[0], wh[1], "x")
		require.Zero(t, g.Len())
		_, ok := g.Get(0, 0)
		require.False(t, ok)
		_, ok = g.Slice(0, 0, wh[0], wh[1])
		require.True(t, ok)
	}
}

// TestNewNegativePanics treats negative dimensions as a programmer error.
func TestNewNegativePanics(t *testing.T) {
	require.Panics(t, func() { grid.New(-1, 2, 0) })
	require.Panics(t, func() { grid.New(2, -1, 0) })
}

// TestWriteReadRoundTrip writes a distinct value per cell through GetMut,
// independent of visiting order, and reads each back.
func TestWriteReadRoundTrip(t *testing.T) {
	g := grid.New(4, 3, 0)
	i := 0
	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			if x < 4 && y < 3 {
				require.Equal(t, 0, mustGet[int](t, g, x, y))
				p, ok := g.GetMut(x, y)
				require.True(t, ok)
				*p = i
				require.Equal(t, i, mustGet[int](t, g, x, y))
				p, _ = g.GetMut(x, y)
				require.Equal(t, i, *p)
			} else {
				_, ok := g.Get(x, y)
				require.False(t, ok)
				p, ok := g.GetMut(x, y)
				require.False(t, ok)
				require.Nil(t, p)
			}
			i++
		}
	}
	// Column-major visiting order: (x, y) got x*10 + y.
	require.Equal(t, 21, mustGet[int](t, g, 2, 1))
}

// TestSetOutOfRange ensures Set reports ErrOutOfRange and writes nothing.
func TestSetOutOfRange(t *testing.T) {
	g := grid.New(2, 2, 1)
	err := g.Set(2, 0, 9)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
	require.EqualError(t, err, "Grid.Set(2,0): grid: index out of range")
	require.ErrorIs(t, g.Set(0, -1, 9), grid.ErrOutOfRange)
	require.Equal(t, [][]int{{1, 1}, {1, 1}}, g.ToRows())

	require.NoError(t, g.Set(1, 0, 9))
	require.Equal(t, [][]int{{1, 9}, {1, 1}}, g.ToRows())
}

// TestFromRows covers literal construction and ragged input.
func TestFromRows(t *testing.T) {
	src := [][]int{{1, 2, 3}, {4, 5, 6}}
	g, err := grid.FromRows(src)
	require.NoError(t, err)
	require.Equal(t, 3, g.Width())
	require.Equal(t, 2, g.Height())
	require.Equal(t, 6, mustGet[int](t, g, 2, 1))

	src[0][0] = 100 // input is copied
	require.Equal(t, 1, mustGet[int](t, g, 0, 0))

	_, err = grid.FromRows([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, grid.ErrNonRectangular)

	empty, err := grid.FromRows[int](nil)
	require.NoError(t, err)
	require.Zero(t, empty.Width())
	require.Zero(t, empty.Height())

	tall, err := grid.FromRows([][]int{{}, {}, {}})
	require.NoError(t, err)
	require.Zero(t, tall.Width())
	require.Equal(t, 3, tall.Height())
}

// TestCloneIndependence ensures Clone copies the backing store.
func TestCloneIndependence(t *testing.T) {
	g := byRows(t, 4, 3)
	c := g.Clone()
	require.True(t, grid.Equal[int](g, c))

	require.NoError(t, c.Set(0, 0, 42))
	require.Equal(t, 0, mustGet[int](t, g, 0, 0))
	require.False(t, grid.Equal[int](g, c))
}

// TestCloneFunc deep-copies pointer-holding elements.
func TestCloneFunc(t *testing.T) {
	g := grid.New(2, 1, []int(nil))
	require.NoError(t, g.Set(0, 0, []int{1}))
	require.NoError(t, g.Set(1, 0, []int{2}))

	c := g.CloneFunc(func(s []int) []int { return append([]int(nil), s...) })
	p, _ := c.GetMut(0, 0)
	(*p)[0] = 100

	orig, _ := g.Get(0, 0)
	require.Equal(t, []int{1}, orig)
}

// TestVisitors covers Do (with early stop), Apply, Fill and ToRows.
func TestVisitors(t *testing.T) {
	g := byRows(t, 3, 2)

	var seen []int
	g.Do(func(x, y, v int) bool {
		seen = append(seen, v)
		return v < 3
	})
	require.Equal(t, []int{0, 1, 2, 3}, seen)

	g.Apply(func(x, y, v int) int { return v*10 + x + y })
	require.Equal(t, [][]int{{0, 11, 22}, {31, 42, 53}}, g.ToRows())

	g.Fill(5)
	require.Equal(t, [][]int{{5, 5, 5}, {5, 5, 5}}, g.ToRows())

	require.Equal(t, [][]int{}, grid.New(3, 0, 0).ToRows())
}
