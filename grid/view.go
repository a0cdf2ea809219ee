package grid

import (
	"iter"

	"github.com/katalvlaran/gridd/coord"
)

// View is a non-owning, read-only window into a parent Grid. A View
// addresses cells in window-local coordinates: (0,0) is the window's
// origin, and its Bounds is the window extent, not the parent's. A View
// holds no storage of its own and must not outlive mutations of the
// parent — it captures the parent's generation stamp at creation and
// every read checks it.
type View[T any] struct {
	parent *Grid[T]
	origin coord.Coord
	bounds Bounds
	stamp  uint64
}

// Sub returns a read-only View over the window of b cells anchored at
// origin in g's coordinates. Returns ErrInvalidBounds for an invalid b,
// ErrOutOfBounds if the window does not fit inside g. Complexity: O(1).
func (g *Grid[T]) Sub(origin coord.Coord, b Bounds) (*View[T], error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	if origin.Row < 0 || origin.Col < 0 ||
		origin.Row > g.bounds.Height-b.Height ||
		origin.Col > g.bounds.Width-b.Width {
		return nil, ErrOutOfBounds
	}

	return &View[T]{parent: g, origin: origin, bounds: b, stamp: g.gen}, nil
}

// Bounds returns the window extent by value.
func (v *View[T]) Bounds() Bounds {
	return v.bounds
}

// Get returns the value at window-local coordinate c.
// Returns ErrStaleView if the parent has mutated since the View was
// created, ErrOutOfBounds if c is outside the window. Complexity: O(1).
func (v *View[T]) Get(c coord.Coord) (T, error) {
	var zero T
	if v.parent.gen != v.stamp {
		return zero, ErrStaleView
	}
	if !v.bounds.Contains(c) {
		return zero, ErrOutOfBounds
	}

	return v.parent.Get(coord.New(v.origin.Row+c.Row, v.origin.Col+c.Col))
}

// Cells returns a lazy row-major scan of (window-local coordinate, value)
// pairs. Returns ErrStaleView if the parent has already mutated; a
// mutation detected mid-traversal panics, as with Grid sequences.
func (v *View[T]) Cells() (iter.Seq2[coord.Coord, T], error) {
	if v.parent.gen != v.stamp {
		return nil, ErrStaleView
	}

	return func(yield func(coord.Coord, T) bool) {
		for c := range v.bounds.Coords() {
			v.parent.check(v.stamp)
			idx, _ := v.parent.bounds.Index(coord.New(v.origin.Row+c.Row, v.origin.Col+c.Col))
			if !yield(c, v.parent.cells[idx]) {
				return
			}
		}
	}, nil
}
