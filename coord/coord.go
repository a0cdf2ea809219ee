package coord

import (
	"fmt"
	"math"
)

// Coord addresses a single grid cell as a (row, column) pair.
// Both fields are signed so offset arithmetic may transiently leave the
// non-negative range; whether a Coord is valid for a given grid is decided
// by grid.Bounds, never here.
type Coord struct {
	Row, Col int
}

// New constructs a Coord from its row and column indices.
func New(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// Add returns the coordinate offset from c by d.
// Returns ErrOverflow if either component would exceed the int range.
// Complexity: O(1).
func (c Coord) Add(d Delta) (Coord, error) {
	row, err := addChecked(c.Row, d.DRow)
	if err != nil {
		return Coord{}, err
	}
	col, err := addChecked(c.Col, d.DCol)
	if err != nil {
		return Coord{}, err
	}

	return Coord{Row: row, Col: col}, nil
}

// Sub returns the Delta that moves o onto c, i.e. c == o.Add(c.Sub(o)).
// Returns ErrOverflow if either component difference would exceed int.
// Complexity: O(1).
func (c Coord) Sub(o Coord) (Delta, error) {
	dr, err := subChecked(c.Row, o.Row)
	if err != nil {
		return Delta{}, err
	}
	dc, err := subChecked(c.Col, o.Col)
	if err != nil {
		return Delta{}, err
	}

	return Delta{DRow: dr, DCol: dc}, nil
}

// Compare orders coordinates row-major: by row first, then by column.
// Returns -1 if c sorts before o, +1 if after, 0 if equal.
// This is the ordering every grid traversal in gridd follows.
// Complexity: O(1).
func (c Coord) Compare(o Coord) int {
	switch {
	case c.Row < o.Row:
		return -1
	case c.Row > o.Row:
		return 1
	case c.Col < o.Col:
		return -1
	case c.Col > o.Col:
		return 1
	default:
		return 0
	}
}

// Less reports whether c sorts strictly before o in row-major order.
func (c Coord) Less(o Coord) bool {
	return c.Compare(o) < 0
}

// String implements fmt.Stringer as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Manhattan returns the Manhattan (taxicab) distance |Δrow| + |Δcol|
// between a and b. Returns ErrOverflow if a difference or the final sum
// would exceed int. Complexity: O(1).
func Manhattan(a, b Coord) (int, error) {
	dr, err := absDiff(a.Row, b.Row)
	if err != nil {
		return 0, err
	}
	dc, err := absDiff(a.Col, b.Col)
	if err != nil {
		return 0, err
	}

	return addChecked(dr, dc)
}

// Chebyshev returns the Chebyshev (king-move) distance
// max(|Δrow|, |Δcol|) between a and b.
// Returns ErrOverflow if a difference would exceed int. Complexity: O(1).
func Chebyshev(a, b Coord) (int, error) {
	dr, err := absDiff(a.Row, b.Row)
	if err != nil {
		return 0, err
	}
	dc, err := absDiff(a.Col, b.Col)
	if err != nil {
		return 0, err
	}
	if dc > dr {
		dr = dc
	}

	return dr, nil
}

// addChecked returns a+b or ErrOverflow.
func addChecked(a, b int) (int, error) {
	if b > 0 && a > math.MaxInt-b {
		return 0, ErrOverflow
	}
	if b < 0 && a < math.MinInt-b {
		return 0, ErrOverflow
	}

	return a + b, nil
}

// subChecked returns a-b or ErrOverflow.
func subChecked(a, b int) (int, error) {
	if b < 0 && a > math.MaxInt+b {
		return 0, ErrOverflow
	}
	if b > 0 && a < math.MinInt+b {
		return 0, ErrOverflow
	}

	return a - b, nil
}

// absDiff returns |a-b| or ErrOverflow (|math.MinInt| is unrepresentable).
func absDiff(a, b int) (int, error) {
	d, err := subChecked(a, b)
	if err != nil {
		return 0, err
	}
	if d == math.MinInt {
		return 0, ErrOverflow
	}
	if d < 0 {
		d = -d
	}

	return d, nil
}
