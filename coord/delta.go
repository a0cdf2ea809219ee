package coord

import "math"

// Delta is a two-dimensional offset vector between coordinates.
// Like Coord it is a pure value type: applying a Delta never consults any
// grid, so the result may be out of range until a Bounds check says
// otherwise.
type Delta struct {
	DRow, DCol int
}

// Unit direction deltas. The orthogonal four come first, then the four
// diagonals clockwise starting from UpLeft; this is the exact order
// neighbor enumeration uses, so it is part of the public contract.
var (
	// Up moves one row toward row 0.
	Up = Delta{DRow: -1, DCol: 0}
	// Down moves one row away from row 0.
	Down = Delta{DRow: 1, DCol: 0}
	// Left moves one column toward column 0.
	Left = Delta{DRow: 0, DCol: -1}
	// Right moves one column away from column 0.
	Right = Delta{DRow: 0, DCol: 1}

	// UpLeft combines Up and Left.
	UpLeft = Delta{DRow: -1, DCol: -1}
	// UpRight combines Up and Right.
	UpRight = Delta{DRow: -1, DCol: 1}
	// DownRight combines Down and Right.
	DownRight = Delta{DRow: 1, DCol: 1}
	// DownLeft combines Down and Left.
	DownLeft = Delta{DRow: 1, DCol: -1}
)

// Add returns the component-wise sum d+o.
// Returns ErrOverflow if either component would exceed int.
func (d Delta) Add(o Delta) (Delta, error) {
	dr, err := addChecked(d.DRow, o.DRow)
	if err != nil {
		return Delta{}, err
	}
	dc, err := addChecked(d.DCol, o.DCol)
	if err != nil {
		return Delta{}, err
	}

	return Delta{DRow: dr, DCol: dc}, nil
}

// Sub returns the component-wise difference d-o.
// Returns ErrOverflow if either component would exceed int.
func (d Delta) Sub(o Delta) (Delta, error) {
	dr, err := subChecked(d.DRow, o.DRow)
	if err != nil {
		return Delta{}, err
	}
	dc, err := subChecked(d.DCol, o.DCol)
	if err != nil {
		return Delta{}, err
	}

	return Delta{DRow: dr, DCol: dc}, nil
}

// Scale returns d with both components multiplied by k.
// Returns ErrOverflow if either product would exceed int.
func (d Delta) Scale(k int) (Delta, error) {
	dr, err := mulChecked(d.DRow, k)
	if err != nil {
		return Delta{}, err
	}
	dc, err := mulChecked(d.DCol, k)
	if err != nil {
		return Delta{}, err
	}

	return Delta{DRow: dr, DCol: dc}, nil
}

// mulChecked returns a*k or ErrOverflow.
func mulChecked(a, k int) (int, error) {
	if a == 0 || k == 0 {
		return 0, nil
	}
	if a == math.MinInt && k == -1 || k == math.MinInt && a == -1 {
		return 0, ErrOverflow
	}
	p := a * k
	if p/k != a {
		return 0, ErrOverflow
	}

	return p, nil
}
