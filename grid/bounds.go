package grid

import (
	"iter"
	"math"

	"github.com/katalvlaran/gridd/coord"
)

// Bounds describes the valid rectangular extent of a grid: Height rows by
// Width columns, both zero-indexed. Bounds is a pure value type — Resize
// produces a new value and never mutates the receiver. Either dimension
// may be 0, in which case the Bounds is empty and contains no coordinate.
type Bounds struct {
	Height, Width int
}

// NewBounds constructs a Bounds of height rows by width columns.
// Returns ErrInvalidBounds if either dimension is negative or if
// height×width would overflow int. Complexity: O(1).
func NewBounds(height, width int) (Bounds, error) {
	b := Bounds{Height: height, Width: width}
	if err := b.validate(); err != nil {
		return Bounds{}, err
	}

	return b, nil
}

// validate re-checks the Bounds invariant; used by every Grid constructor
// so that hand-built Bounds literals go through the same gate.
func (b Bounds) validate() error {
	if b.Height < 0 || b.Width < 0 {
		return ErrInvalidBounds
	}
	if b.Height > 0 && b.Width > math.MaxInt/b.Height {
		return ErrInvalidBounds
	}

	return nil
}

// Empty reports whether the Bounds contains no valid coordinate.
func (b Bounds) Empty() bool {
	return b.Height == 0 || b.Width == 0
}

// Size returns the number of cells, Height×Width.
func (b Bounds) Size() int {
	return b.Height * b.Width
}

// Contains reports whether c lies within the Bounds:
// 0 ≤ row < Height and 0 ≤ col < Width. Complexity: O(1).
func (b Bounds) Contains(c coord.Coord) bool {
	return c.Row >= 0 && c.Row < b.Height && c.Col >= 0 && c.Col < b.Width
}

// Index linearizes c to its row-major backing index, row×Width + col.
// This is the single bounds-checking chokepoint: every Grid accessor
// resolves storage through it. Returns ErrOutOfBounds if c is not
// contained. Complexity: O(1).
func (b Bounds) Index(c coord.Coord) (int, error) {
	if !b.Contains(c) {
		return 0, ErrOutOfBounds
	}

	return c.Row*b.Width + c.Col, nil
}

// CoordAt inverts Index, mapping a row-major backing index back to its
// coordinate. Returns ErrOutOfBounds if idx is outside [0, Size()).
// Complexity: O(1).
func (b Bounds) CoordAt(idx int) (coord.Coord, error) {
	if idx < 0 || idx >= b.Size() {
		return coord.Coord{}, ErrOutOfBounds
	}

	return coord.New(idx/b.Width, idx%b.Width), nil
}

// Resize returns a new Bounds of the given dimensions, leaving the
// receiver untouched. Returns ErrInvalidBounds under the same conditions
// as NewBounds. Complexity: O(1).
func (b Bounds) Resize(height, width int) (Bounds, error) {
	return NewBounds(height, width)
}

// Coords returns a lazy sequence of every contained coordinate in
// row-major order. The sequence is finite and restartable: each range
// performs a fresh traversal. Complexity: O(Height×Width) per traversal.
func (b Bounds) Coords() iter.Seq[coord.Coord] {
	return func(yield func(coord.Coord) bool) {
		for r := 0; r < b.Height; r++ {
			for c := 0; c < b.Width; c++ {
				if !yield(coord.New(r, c)) {
					return
				}
			}
		}
	}
}

// orthoDeltas and diagDeltas fix the neighbor enumeration order:
// orthogonal Up, Down, Left, Right, then diagonals clockwise from UpLeft.
var (
	orthoDeltas = [...]coord.Delta{coord.Up, coord.Down, coord.Left, coord.Right}
	diagDeltas  = [...]coord.Delta{coord.UpLeft, coord.UpRight, coord.DownRight, coord.DownLeft}
)

// Neighbors computes the neighbor coordinates of c under the given
// connectivity and edge policy, in the fixed order documented by the
// package. Returns ErrOutOfBounds if c itself is not contained,
// ErrUnknownConnectivity or ErrUnknownPolicy for invalid enum values.
// Complexity: O(d), d = 4 or 8.
func (b Bounds) Neighbors(c coord.Coord, conn Connectivity, pol Policy) ([]coord.Coord, error) {
	if err := (Options{Conn: conn, Policy: pol}).validate(); err != nil {
		return nil, err
	}
	if !b.Contains(c) {
		return nil, ErrOutOfBounds
	}

	deltas := orthoDeltas[:]
	if conn == Conn8 {
		deltas = append(deltas, diagDeltas[:]...)
	}

	out := make([]coord.Coord, 0, len(deltas))
	for _, d := range deltas {
		n, err := c.Add(d)
		if err != nil {
			// A contained coordinate offset by a unit delta cannot
			// overflow: containment caps both components below the
			// dimension, itself at most MaxInt.
			return nil, err
		}
		switch pol {
		case Bounded:
			if !b.Contains(n) {
				continue
			}
		case Clamp:
			n = b.clamp(n)
		case Wrap:
			n = b.wrap(n)
		}
		out = append(out, n)
	}

	return out, nil
}

// clamp pulls n to the nearest valid edge cell.
func (b Bounds) clamp(n coord.Coord) coord.Coord {
	if n.Row < 0 {
		n.Row = 0
	} else if n.Row >= b.Height {
		n.Row = b.Height - 1
	}
	if n.Col < 0 {
		n.Col = 0
	} else if n.Col >= b.Width {
		n.Col = b.Width - 1
	}

	return n
}

// wrap folds n onto the torus, taking each component modulo its dimension.
func (b Bounds) wrap(n coord.Coord) coord.Coord {
	n.Row = ((n.Row % b.Height) + b.Height) % b.Height
	n.Col = ((n.Col % b.Width) + b.Width) % b.Width

	return n
}
