package grid

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: Up, Down, Left, Right.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals, clockwise from UpLeft.
	Conn8
)

// Policy selects how neighbor computation treats coordinates that fall
// outside the Bounds. See the package documentation for the exact
// semantics of each variant.
type Policy int

const (
	// Bounded omits out-of-range neighbors from the result.
	Bounded Policy = iota
	// Clamp pulls out-of-range neighbors to the nearest valid edge cell.
	Clamp
	// Wrap treats the grid as a torus: coordinates wrap modulo
	// Height and Width.
	Wrap
)

// Options holds the per-grid defaults consulted by Grid.Neighbors when no
// per-call override is given.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Policy chooses the edge policy.
	Policy Policy
}

// DefaultOptions returns the Options every constructor starts from:
// Conn4 connectivity and the Bounded edge policy.
func DefaultOptions() Options {
	return Options{
		Conn:   Conn4,
		Policy: Bounded,
	}
}

// Option configures a Grid at construction via functional arguments.
type Option func(*Options)

// WithConnectivity sets the grid's default neighbor connectivity.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}

// WithPolicy sets the grid's default edge policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		o.Policy = p
	}
}

// validate rejects enum values outside their declared sets.
func (o Options) validate() error {
	if o.Conn != Conn4 && o.Conn != Conn8 {
		return ErrUnknownConnectivity
	}
	if o.Policy != Bounded && o.Policy != Clamp && o.Policy != Wrap {
		return ErrUnknownPolicy
	}

	return nil
}
