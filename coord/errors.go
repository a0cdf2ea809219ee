package coord

import "errors"

// ErrOverflow indicates that coordinate or delta arithmetic would exceed
// the representable int range. Arithmetic never wraps silently; callers
// match this sentinel via errors.Is.
var ErrOverflow = errors.New("coord: integer overflow")
