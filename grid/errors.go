// Package grid: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// grid package. All operations return these sentinels and tests check them
// via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer misuse that cannot be surfaced
// through a signature (mutating a grid under an in-flight sequence).

package grid

import "errors"

var (
	// ErrOutOfBounds indicates a coordinate or index outside the current
	// Bounds. Never clamped or ignored implicitly; clamping only ever
	// happens through the explicit Clamp neighbor policy.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrInvalidBounds indicates a negative dimension or a Height×Width
	// product that overflows the backing store's addressable size.
	// On Resize the grid is left untouched in its prior valid state.
	ErrInvalidBounds = errors.New("grid: invalid bounds")

	// ErrRagged indicates FromRows input rows of differing lengths.
	ErrRagged = errors.New("grid: all rows must have the same length")

	// ErrStaleView indicates the viewed Grid was mutated or resized after
	// the View was created.
	ErrStaleView = errors.New("grid: view invalidated by grid mutation")

	// ErrUnknownPolicy indicates an edge Policy value outside the
	// Bounded/Clamp/Wrap set.
	ErrUnknownPolicy = errors.New("grid: unknown edge policy")

	// ErrUnknownConnectivity indicates a Connectivity value outside the
	// Conn4/Conn8 set.
	ErrUnknownConnectivity = errors.New("grid: unknown connectivity")
)
