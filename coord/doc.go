// Package coord provides the coordinate primitives of gridd: Coord, a
// (row, column) address, and Delta, a (row, column) offset vector.
//
// What:
//
//   - Coord is an immutable value type addressing a grid cell; rows grow
//     downward, columns grow rightward, both zero-indexed.
//   - Delta is an offset between coordinates, with unit direction
//     constants (Up, Down, Left, Right and the four diagonals).
//   - Coords are totally ordered row-major (row first, then column) so
//     that traversals built on them are deterministic.
//   - Manhattan and Chebyshev compute the two standard grid distances.
//
// Why:
//
//   - Validity is not a coordinate's concern: Add may leave the grid, or
//     even go negative, and only a Bounds check decides what that means.
//   - All arithmetic is checked: an operation that would exceed the int
//     range fails with ErrOverflow instead of silently wrapping.
//
// Complexity: every operation in this package is O(1).
//
// Errors:
//
//   - ErrOverflow: row or column arithmetic would overflow int.
//
// See package grid for bounds, containment and neighbor computation.
package coord
