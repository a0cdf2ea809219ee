// Package grid provides the storage-and-indexing core of gridd: Bounds,
// edge policies, the dense generic container Grid[T], and read-only Views.
//
// What:
//
//   - Bounds describes a rectangular extent (Height × Width), classifies
//     coordinates as in- or out-of-bounds, and linearizes a coordinate to
//     a row-major backing index (index = row×Width + col). Bounds.Index is
//     the single bounds-checking chokepoint every accessor goes through.
//   - Grid[T] owns exactly one flat backing slice of len Height×Width and
//     exposes O(1) Get/Set, bulk helpers (Update, Apply, Fill), deep Clone
//     and an atomic Resize that retains overlapping cells.
//   - Row, Col, Cells and Neighbors return lazy sequences (iter.Seq /
//     iter.Seq2): finite, restartable, and independent per call — there is
//     no shared cursor between two sequences.
//   - View[T] is a non-owning, read-only window into a parent Grid,
//     addressed in window-local coordinates.
//
// Neighbor ordering (a compatibility contract, not an implementation
// detail — callers may use it for tie-breaking in search algorithms):
// orthogonal neighbors first in the order Up, Down, Left, Right, then the
// diagonals clockwise starting from UpLeft: UpLeft, UpRight, DownRight,
// DownLeft. Out-of-range candidates are handled by the edge Policy:
//
//   - Bounded (default): out-of-range neighbors are omitted; a corner cell
//     yields fewer neighbors than an interior cell.
//   - Clamp: out-of-range neighbors are pulled to the nearest edge cell;
//     a corner cell may report duplicates — deduplicate if you need a set.
//   - Wrap: coordinates wrap modulo Height/Width (toroidal topology).
//
// Mutation vs. live sequences: a Grid carries a generation stamp bumped by
// Set, SetRel, Update, Apply, Fill and Resize. Sequences and Views capture
// the stamp when created; View.Get reports a stale parent with
// ErrStaleView, while a mutation detected inside an in-flight sequence is
// a programmer error and panics (the same way ranging a map panics on
// concurrent write). Transform cells with Apply, not with Set inside a
// Cells loop.
//
// Concurrency: none. A Grid is single-owner and unsynchronized; wrap it in
// your own lock or partition by disjoint row ranges if you share it.
//
// Complexity:
//
//   - Contains, Index, CoordAt, Get, Set: O(1).
//   - New, Resize, Clone, Apply, Fill: O(Height×Width).
//   - Neighbors: O(d), d = 4 or 8 by Connectivity.
//
// Errors:
//
//   - ErrOutOfBounds: coordinate or index outside the current Bounds.
//   - ErrInvalidBounds: negative dimension, or Height×Width overflows int.
//   - ErrRagged: FromRows input rows differ in length.
//   - ErrStaleView: the viewed Grid mutated after the View was created.
//   - ErrUnknownPolicy, ErrUnknownConnectivity: invalid enum value.
package grid
