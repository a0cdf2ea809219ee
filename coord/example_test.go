// File: coord/example_test.go
package coord_test

import (
	"fmt"

	"github.com/katalvlaran/gridd/coord"
)

////////////////////////////////////////////////////////////////////////////////
// Example: offset arithmetic
////////////////////////////////////////////////////////////////////////////////

// ExampleCoord_Add walks a knight's move from (2,2): two rows up, one
// column right, composed from unit deltas.
func ExampleCoord_Add() {
	twoUp, _ := coord.Up.Scale(2)
	knight, _ := twoUp.Add(coord.Right)

	from := coord.New(2, 2)
	to, _ := from.Add(knight)
	fmt.Println(from, "->", to)

	// Output:
	// (2,2) -> (0,3)
}

////////////////////////////////////////////////////////////////////////////////
// Example: grid distances
////////////////////////////////////////////////////////////////////////////////

// ExampleManhattan contrasts the two grid metrics on the same pair:
// a rook counts every step, a king cuts diagonals.
func ExampleManhattan() {
	a, b := coord.New(0, 0), coord.New(3, 4)

	m, _ := coord.Manhattan(a, b)
	c, _ := coord.Chebyshev(a, b)
	fmt.Println("manhattan:", m)
	fmt.Println("chebyshev:", c)

	// Output:
	// manhattan: 7
	// chebyshev: 4
}
