package grid

import (
	"iter"

	"github.com/katalvlaran/gridd/coord"
)

// Grid is a dense two-dimensional container mapping every coordinate
// contained by its Bounds to exactly one value of type T. Storage is a
// single flat slice in row-major order; invariant: len(cells) ==
// Height×Width at all times. A Grid exclusively owns its storage — no two
// Grids alias, and Clone always deep-copies.
//
// gen is the generation stamp consulted by sequences and Views; every
// mutating method bumps it.
type Grid[T any] struct {
	bounds Bounds
	cells  []T
	opts   Options
	gen    uint64
}

// New allocates a Grid of b.Size() cells, each initialized to fill.
// Returns ErrInvalidBounds if b has a negative dimension or an
// int-overflowing size, ErrUnknownConnectivity/ErrUnknownPolicy for bad
// options. Complexity: O(Height×Width) time and memory.
func New[T any](b Bounds, fill T, opts ...Option) (*Grid[T], error) {
	g, err := newEmpty[T](b, opts)
	if err != nil {
		return nil, err
	}
	for i := range g.cells {
		g.cells[i] = fill
	}

	return g, nil
}

// NewFunc allocates a Grid of b.Size() cells, each initialized by gen,
// invoked exactly once per cell with its coordinate, in row-major order.
// Errors as New. Complexity: O(Height×Width).
func NewFunc[T any](b Bounds, gen func(coord.Coord) T, opts ...Option) (*Grid[T], error) {
	g, err := newEmpty[T](b, opts)
	if err != nil {
		return nil, err
	}
	i := 0
	for c := range b.Coords() {
		g.cells[i] = gen(c)
		i++
	}

	return g, nil
}

// NewSquare allocates a side×side Grid initialized to fill. Errors as New.
func NewSquare[T any](side int, fill T, opts ...Option) (*Grid[T], error) {
	b, err := NewBounds(side, side)
	if err != nil {
		return nil, err
	}

	return New(b, fill, opts...)
}

// FromRows builds a Grid from a 2D slice, deep-copying the input so later
// mutation of rows never reaches the Grid. The outer slice supplies the
// height, the first row the width. Returns ErrRagged if any row length
// differs. An empty input yields a valid empty Grid.
// Complexity: O(Height×Width) time and memory.
func FromRows[T any](rows [][]T, opts ...Option) (*Grid[T], error) {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrRagged
		}
	}
	b, err := NewBounds(h, w)
	if err != nil {
		return nil, err
	}
	g, err := newEmpty[T](b, opts)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		copy(g.cells[r*w:(r+1)*w], row)
	}

	return g, nil
}

// newEmpty validates bounds and options and allocates zeroed storage.
func newEmpty[T any](b Bounds, opts []Option) (*Grid[T], error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	return &Grid[T]{
		bounds: b,
		cells:  make([]T, b.Size()),
		opts:   o,
	}, nil
}

// Bounds returns the current Bounds by value. Complexity: O(1).
func (g *Grid[T]) Bounds() Bounds {
	return g.bounds
}

// Get returns the value stored at c.
// Returns ErrOutOfBounds if c is not contained. Complexity: O(1).
func (g *Grid[T]) Get(c coord.Coord) (T, error) {
	idx, err := g.bounds.Index(c)
	if err != nil {
		var zero T
		return zero, err
	}

	return g.cells[idx], nil
}

// Set overwrites the value stored at c. This is the sole mutation
// primitive — every bulk mutator reduces to it semantically.
// Returns ErrOutOfBounds if c is not contained. Complexity: O(1).
func (g *Grid[T]) Set(c coord.Coord, v T) error {
	idx, err := g.bounds.Index(c)
	if err != nil {
		return err
	}
	g.cells[idx] = v
	g.gen++

	return nil
}

// GetRel returns the value stored at anchor offset by d.
// Returns coord.ErrOverflow if the offset arithmetic overflows, or
// ErrOutOfBounds if the resulting coordinate is not contained.
func (g *Grid[T]) GetRel(anchor coord.Coord, d coord.Delta) (T, error) {
	c, err := anchor.Add(d)
	if err != nil {
		var zero T
		return zero, err
	}

	return g.Get(c)
}

// SetRel overwrites the value stored at anchor offset by d.
// Errors as GetRel.
func (g *Grid[T]) SetRel(anchor coord.Coord, d coord.Delta, v T) error {
	c, err := anchor.Add(d)
	if err != nil {
		return err
	}

	return g.Set(c, v)
}

// Update replaces the value at c with fn applied to the current value.
// Returns ErrOutOfBounds if c is not contained; fn is not invoked then.
func (g *Grid[T]) Update(c coord.Coord, fn func(T) T) error {
	v, err := g.Get(c)
	if err != nil {
		return err
	}

	return g.Set(c, fn(v))
}

// Apply replaces every cell with fn applied to its coordinate and current
// value, visiting cells in row-major order. Semantically equivalent to a
// Set per cell. Complexity: O(Height×Width).
func (g *Grid[T]) Apply(fn func(coord.Coord, T) T) {
	i := 0
	for c := range g.bounds.Coords() {
		g.cells[i] = fn(c, g.cells[i])
		i++
	}
	g.gen++
}

// Fill overwrites every cell with v. Complexity: O(Height×Width).
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
	g.gen++
}

// Clone returns a deep copy with independent storage: mutating the clone
// never alters the source. The clone starts a fresh generation.
// Complexity: O(Height×Width) time and memory.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)

	return &Grid[T]{bounds: g.bounds, cells: cells, opts: g.opts}
}

// Resize replaces the Bounds and backing store together. Cells valid
// under both old and new Bounds keep their value; cells newly introduced
// are set to fill; cells dropped are discarded. The swap is atomic from
// the caller's perspective: on ErrInvalidBounds the Grid is untouched,
// and fill is never consulted for retained cells — resizing to identical
// Bounds is a no-op on contents. Complexity: O(new Height×Width).
func (g *Grid[T]) Resize(nb Bounds, fill T) error {
	return g.ResizeFunc(nb, func(coord.Coord) T { return fill })
}

// ResizeFunc is Resize with a per-coordinate generator for newly
// introduced cells, invoked once per new cell in row-major order.
func (g *Grid[T]) ResizeFunc(nb Bounds, gen func(coord.Coord) T) error {
	if err := nb.validate(); err != nil {
		return err
	}
	next := make([]T, nb.Size())
	i := 0
	for c := range nb.Coords() {
		if old, err := g.bounds.Index(c); err == nil {
			next[i] = g.cells[old]
		} else {
			next[i] = gen(c)
		}
		i++
	}
	g.bounds = nb
	g.cells = next
	g.gen++

	return nil
}

// Row returns a lazy sequence over row i in increasing column order.
// The sequence is finite and restartable; each range is a fresh traversal.
// Returns ErrOutOfBounds if i is outside [0, Height).
func (g *Grid[T]) Row(i int) (iter.Seq[T], error) {
	if i < 0 || i >= g.bounds.Height {
		return nil, ErrOutOfBounds
	}
	stamp := g.gen

	return func(yield func(T) bool) {
		base := i * g.bounds.Width
		for j := 0; j < g.bounds.Width; j++ {
			g.check(stamp)
			if !yield(g.cells[base+j]) {
				return
			}
		}
	}, nil
}

// Col returns a lazy sequence over column j in increasing row order.
// Returns ErrOutOfBounds if j is outside [0, Width).
func (g *Grid[T]) Col(j int) (iter.Seq[T], error) {
	if j < 0 || j >= g.bounds.Width {
		return nil, ErrOutOfBounds
	}
	stamp := g.gen

	return func(yield func(T) bool) {
		for i := 0; i < g.bounds.Height; i++ {
			g.check(stamp)
			if !yield(g.cells[i*g.bounds.Width+j]) {
				return
			}
		}
	}, nil
}

// Cells returns a lazy full scan of (coordinate, value) pairs in row-major
// order: strictly increasing under Coord.Compare, exactly Size() pairs.
// Finite and restartable. Complexity: O(Height×Width) per traversal.
func (g *Grid[T]) Cells() iter.Seq2[coord.Coord, T] {
	stamp := g.gen

	return func(yield func(coord.Coord, T) bool) {
		i := 0
		for c := range g.bounds.Coords() {
			g.check(stamp)
			if !yield(c, g.cells[i]) {
				return
			}
			i++
		}
	}
}

// Neighbors returns a lazy sequence of (coordinate, value) pairs for the
// neighbors of c under the grid's default connectivity and edge policy,
// in the fixed order documented by the package.
// Errors as Bounds.Neighbors.
func (g *Grid[T]) Neighbors(c coord.Coord) (iter.Seq2[coord.Coord, T], error) {
	return g.NeighborsWith(c, g.opts.Conn, g.opts.Policy)
}

// NeighborsWith is Neighbors with a per-call connectivity and policy
// override.
func (g *Grid[T]) NeighborsWith(c coord.Coord, conn Connectivity, pol Policy) (iter.Seq2[coord.Coord, T], error) {
	ns, err := g.bounds.Neighbors(c, conn, pol)
	if err != nil {
		return nil, err
	}
	stamp := g.gen

	return func(yield func(coord.Coord, T) bool) {
		for _, n := range ns {
			g.check(stamp)
			// All three policies emit contained coordinates only.
			idx, _ := g.bounds.Index(n)
			if !yield(n, g.cells[idx]) {
				return
			}
		}
	}, nil
}

// check panics when a sequence created at stamp observes a mutated grid.
// Mutating under an in-flight sequence is a programmer error that cannot
// be reported through iter.Seq, so it is treated like ranging a map during
// concurrent write.
func (g *Grid[T]) check(stamp uint64) {
	if g.gen != stamp {
		panic("grid: grid mutated during iteration")
	}
}
