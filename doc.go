// Package gridd is a generic, dirt-simple, two-dimensional grid:
// a dense container mapping (row, column) coordinates to cell values,
// with bounds-checked access, neighbor computation and lazy iteration.
//
// 🚀 What is gridd?
//
//	A small, pure-Go library that brings together:
//		• Coordinates: (row, column) value types with checked offset arithmetic
//		• Bounds: rectangular extents, containment & row-major linearization
//		• Grid[T]: a dense generic container with O(1) get/set and atomic resize
//		• Sequences: restartable row / column / full-scan / neighbor iterators
//		• Views: non-owning, read-only windows guarded against stale reads
//
// ✨ Why choose gridd?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – every accessor bounds-checked, every failure a sentinel error
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – fixed neighbor ordering callers can rely on for tie-breaking
//
// Under the hood, everything is organized under two subpackages:
//
//	coord/ — Coord & Delta value types, distances, direction constants
//	grid/  — Bounds, edge policies, Grid[T], View[T] and lazy sequences
//
// Quick ASCII example:
//
//	    (0,0)──(0,1)──(0,2)
//	      │      │      │
//	    (1,0)──(1,1)──(1,2)
//
//	represents a 2×3 grid addressed row-first, linearized row-major.
//
// gridd is a building block: boards, tilemaps and matrices of arbitrary
// payload type, without rewriting the coordinate arithmetic every time.
// Rendering, serialization and search algorithms live with the caller —
// the public surface (Bounds, Get, Cells) is all they need.
//
//	go get github.com/katalvlaran/gridd/grid
package gridd
