// Package rect_test covers the bounds arithmetic shared by grid and borrow.
package rect_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/vecvec/rect"
	"github.com/stretchr/testify/require"
)

// TestWithin checks boundary-touching, degenerate and overflowing windows.
func TestWithin(t *testing.T) {
	cases := []struct {
		name string
		r    rect.Rect
		want bool
	}{
		{"Empty", rect.New(0, 0, 0, 0), true},
		{"Unit", rect.New(0, 0, 1, 1), true},
		{"Full", rect.New(0, 0, 4, 3), true},
		{"FarCornerEmpty", rect.New(4, 3, 0, 0), true},
		{"TooWide", rect.New(0, 0, 5, 1), false},
		{"TooTall", rect.New(0, 0, 1, 4), false},
		{"FarCornerTall", rect.New(4, 3, 0, 1), false},
		{"FarCornerWide", rect.New(4, 3, 1, 0), false},
		{"Outside", rect.New(9, 9, 0, 0), false},
		{"NegativeX", rect.New(-1, 0, 1, 1), false},
		{"NegativeW", rect.New(1, 0, -1, 1), false},
		{"Overflow", rect.New(1, 0, math.MaxInt, 1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.r.Within(4, 3), "%v within 4x3", tc.r)
		})
	}
}

// TestOverlaps verifies half-open overlap and that empty rects never overlap.
func TestOverlaps(t *testing.T) {
	a := rect.New(0, 0, 2, 2)
	require.True(t, a.Overlaps(rect.New(1, 1, 2, 2)))
	require.False(t, a.Overlaps(rect.New(2, 0, 2, 2)), "touching edges share no cell")
	require.False(t, a.Overlaps(rect.New(0, 2, 2, 2)))
	require.False(t, a.Overlaps(rect.New(1, 1, 0, 0)), "empty rect inside a")
	require.False(t, rect.New(1, 1, 0, 5).Overlaps(rect.New(1, 1, 0, 5)))

	require.Equal(t, rect.New(1, 1, 1, 1), a.Intersect(rect.New(1, 1, 2, 2)))
	require.Equal(t, rect.Rect{}, a.Intersect(rect.New(5, 5, 1, 1)))
}

// TestSplits verifies that both halves partition the source rectangle.
func TestSplits(t *testing.T) {
	r := rect.New(1, 2, 4, 3)

	top, bottom, ok := r.HSplit(1)
	require.True(t, ok)
	require.Equal(t, rect.New(1, 2, 4, 1), top)
	require.Equal(t, rect.New(1, 3, 4, 2), bottom)
	require.False(t, top.Overlaps(bottom))
	require.Equal(t, r.Area(), top.Area()+bottom.Area())

	left, right, ok := r.VSplit(4)
	require.True(t, ok)
	require.Equal(t, r, left)
	require.True(t, right.Empty())
	require.Equal(t, 5, right.X)

	_, _, ok = r.HSplit(4)
	require.False(t, ok)
	_, _, ok = r.VSplit(-1)
	require.False(t, ok)
}

// TestContainsAndString covers the remaining helpers.
func TestContainsAndString(t *testing.T) {
	r := rect.New(1, 1, 2, 2)
	require.True(t, r.Contains(1, 1))
	require.True(t, r.Contains(2, 2))
	require.False(t, r.Contains(3, 1))
	require.False(t, r.Contains(0, 1))
	require.Equal(t, rect.New(3, 0, 2, 2), r.Translate(2, -1))
	require.Equal(t, "(1,1 2x2)", r.String())
}
