package core

import "math"

// Tolerances holds the numeric bounds used for ray queries. Values are fixed
// for the lifetime of a render.
type Tolerances struct {
	// Epsilon is the lower bound of every ray query and the minimum light
	// cosine accepted by the integrator. It suppresses self-intersection of
	// rays leaving a surface.
	Epsilon float64

	// Infinity is the upper bound of primary and scattered ray queries
	Infinity float64
}

// DefaultTolerances returns the tolerances used for scenes with unit to
// Cornell-box scale
func DefaultTolerances() Tolerances {
	return Tolerances{
		Epsilon:  1e-4,
		Infinity: math.MaxFloat64,
	}
}
