package coord_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/gridd/coord"
)

// TestUnitDeltas pins the eight direction constants; neighbor enumeration
// order is built on them, so these values are a compatibility contract.
func TestUnitDeltas(t *testing.T) {
	cases := []struct {
		name string
		d    coord.Delta
		want coord.Delta
	}{
		{"Up", coord.Up, coord.Delta{DRow: -1, DCol: 0}},
		{"Down", coord.Down, coord.Delta{DRow: 1, DCol: 0}},
		{"Left", coord.Left, coord.Delta{DRow: 0, DCol: -1}},
		{"Right", coord.Right, coord.Delta{DRow: 0, DCol: 1}},
		{"UpLeft", coord.UpLeft, coord.Delta{DRow: -1, DCol: -1}},
		{"UpRight", coord.UpRight, coord.Delta{DRow: -1, DCol: 1}},
		{"DownRight", coord.DownRight, coord.Delta{DRow: 1, DCol: 1}},
		{"DownLeft", coord.DownLeft, coord.Delta{DRow: 1, DCol: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.d != tc.want {
				t.Errorf("%s = %v; want %v", tc.name, tc.d, tc.want)
			}
		})
	}
}

// TestDeltaAlgebra exercises Add, Sub and Scale on composite offsets.
func TestDeltaAlgebra(t *testing.T) {
	sum, err := coord.Up.Add(coord.Left)
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if sum != coord.UpLeft {
		t.Errorf("Up.Add(Left) = %v; want %v", sum, coord.UpLeft)
	}

	diff, err := coord.UpRight.Sub(coord.Up)
	if err != nil {
		t.Fatalf("Sub error: %v", err)
	}
	if diff != coord.Right {
		t.Errorf("UpRight.Sub(Up) = %v; want %v", diff, coord.Right)
	}

	triple, err := coord.DownLeft.Scale(3)
	if err != nil {
		t.Fatalf("Scale error: %v", err)
	}
	if want := (coord.Delta{DRow: 3, DCol: -3}); triple != want {
		t.Errorf("DownLeft.Scale(3) = %v; want %v", triple, want)
	}

	zero, err := triple.Scale(0)
	if err != nil {
		t.Fatalf("Scale(0) error: %v", err)
	}
	if zero != (coord.Delta{}) {
		t.Errorf("Scale(0) = %v; want zero delta", zero)
	}
}

// TestDeltaOverflow ensures every Delta operation is checked.
func TestDeltaOverflow(t *testing.T) {
	big := coord.Delta{DRow: math.MaxInt, DCol: 0}
	if _, err := big.Add(coord.Down); !errors.Is(err, coord.ErrOverflow) {
		t.Errorf("Add error = %v; want ErrOverflow", err)
	}
	if _, err := big.Sub(coord.Up); !errors.Is(err, coord.ErrOverflow) {
		t.Errorf("Sub error = %v; want ErrOverflow", err)
	}
	if _, err := big.Scale(2); !errors.Is(err, coord.ErrOverflow) {
		t.Errorf("Scale error = %v; want ErrOverflow", err)
	}
	if _, err := (coord.Delta{DRow: math.MinInt}).Scale(-1); !errors.Is(err, coord.ErrOverflow) {
		t.Errorf("Scale(-1) error = %v; want ErrOverflow", err)
	}
}
