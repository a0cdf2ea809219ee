package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridd/coord"
	"github.com/katalvlaran/gridd/grid"
)

// TestSub_Validation rejects windows that do not fit inside the parent.
func TestSub_Validation(t *testing.T) {
	g, err := grid.FromRows([][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	require.NoError(t, err)

	win, _ := grid.NewBounds(2, 2)
	cases := []struct {
		name   string
		origin coord.Coord
		b      grid.Bounds
		err    error
	}{
		{"Fits", coord.New(1, 1), win, nil},
		{"NegativeOrigin", coord.New(-1, 0), win, grid.ErrOutOfBounds},
		{"OverflowsRight", coord.New(0, 2), win, grid.ErrOutOfBounds},
		{"OverflowsBottom", coord.New(2, 0), win, grid.ErrOutOfBounds},
		{"BadWindow", coord.New(0, 0), grid.Bounds{Height: -1, Width: 1}, grid.ErrInvalidBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := g.Sub(tc.origin, tc.b)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestView_Get reads through window-local coordinates.
func TestView_Get(t *testing.T) {
	g, err := grid.FromRows([][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	require.NoError(t, err)

	win, _ := grid.NewBounds(2, 2)
	v, err := g.Sub(coord.New(1, 1), win)
	require.NoError(t, err)

	assert.Equal(t, win, v.Bounds())

	got, err := v.Get(coord.New(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 5, got, "view (0,0) is the parent's origin cell")

	got, err = v.Get(coord.New(1, 1))
	require.NoError(t, err)
	assert.Equal(t, 9, got)

	// Window-local bounds apply: the parent's (0,0) is unreachable.
	_, err = v.Get(coord.New(-1, -1))
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
	_, err = v.Get(coord.New(2, 0))
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}

// TestView_Cells scans the window row-major in local coordinates.
func TestView_Cells(t *testing.T) {
	g, err := grid.FromRows([][]int{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)

	win, _ := grid.NewBounds(1, 2)
	v, err := g.Sub(coord.New(1, 1), win)
	require.NoError(t, err)

	seq, err := v.Cells()
	require.NoError(t, err)
	var cs []coord.Coord
	var vs []int
	for c, val := range seq {
		cs = append(cs, c)
		vs = append(vs, val)
	}
	assert.Equal(t, []coord.Coord{coord.New(0, 0), coord.New(0, 1)}, cs)
	assert.Equal(t, []int{5, 6}, vs)
}

// TestView_Stale pins the conflict contract: any parent mutation —
// a Set inside the window, a Set outside it, or a Resize — invalidates
// outstanding views.
func TestView_Stale(t *testing.T) {
	g, err := grid.FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	win, _ := grid.NewBounds(1, 1)

	v, err := g.Sub(coord.New(0, 0), win)
	require.NoError(t, err)
	require.NoError(t, g.Set(coord.New(1, 1), 9)) // outside the window
	_, err = v.Get(coord.New(0, 0))
	assert.ErrorIs(t, err, grid.ErrStaleView)
	_, err = v.Cells()
	assert.ErrorIs(t, err, grid.ErrStaleView)

	v, err = g.Sub(coord.New(0, 0), win)
	require.NoError(t, err)
	nb, _ := grid.NewBounds(3, 3)
	require.NoError(t, g.Resize(nb, 0))
	_, err = v.Get(coord.New(0, 0))
	assert.ErrorIs(t, err, grid.ErrStaleView)

	// A fresh view over the mutated parent works again.
	v, err = g.Sub(coord.New(1, 1), win)
	require.NoError(t, err)
	got, err := v.Get(coord.New(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 9, got)
}
