package scalar

import "math"

// Hypot returns Sqrt(p*p + q*q), taking care to avoid unnecessary overflow
// for large components. The larger magnitude is factored out so the squared
// term never exceeds 1:
//
//	sqrt(p² + q²) = large · sqrt(1 + (small/large)²)
//
// Special cases:
//
//	Hypot(±Inf, q) = +Inf for any q that is not NaN
//	Hypot(p, q)    = NaN  if either argument is NaN (NaN beats infinity)
func Hypot(p, q float64) float64 {
	small, large := math.Abs(p), math.Abs(q)
	if small > large {
		small, large = large, small
	}

	if small == 0 {
		return large
	}

	// Infinity dominates every finite value, but a NaN partner must still
	// propagate through the ratio below.
	if math.IsInf(large, 1) && !math.IsNaN(small) {
		return math.Inf(1)
	}

	ratio := small / large

	return large * math.Sqrt(1+ratio*ratio)
}
