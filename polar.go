package algocomplex

import (
	"math"

	"github.com/cwbudde/algo-complex/internal/scalar"
)

// Abs returns the magnitude |z|, computed with the overflow-safe Euclidean
// norm so that large components do not overflow before the square root.
func (z Complex) Abs() float64 {
	return scalar.Hypot(z.re, z.im)
}

// Phase returns the argument of z in the range (-π, π], quadrant-correct.
func (z Complex) Phase() float64 {
	return math.Atan2(z.im, z.re)
}

// FromPolar returns the complex number with the given magnitude and phase
// angle (in radians).
func FromPolar(magnitude, phase float64) Complex {
	return Complex{
		re: magnitude * math.Cos(phase),
		im: magnitude * math.Sin(phase),
	}
}
