package algocomplex

import "math"

// hashPrime reduces the real component's bits before mixing, so that the
// two components do not cancel when they are equal.
const hashPrime = 99999989

// Equal reports whether z and w have component-wise equal values under
// IEEE-754 comparison. A value with a NaN component is unequal to every
// value, itself included; signed zeros compare equal.
func (z Complex) Equal(w Complex) bool {
	return z.re == w.re && z.im == w.im
}

// Hash returns a 64-bit hash of z. Values that compare Equal hash
// identically, including across the +0/-0 distinction.
func (z Complex) Hash() uint64 {
	return hashBits(z.re)%hashPrime ^ hashBits(z.im)
}

func hashBits(f float64) uint64 {
	// +0 and -0 differ in bits but compare equal, so they must share a
	// hash input.
	if f == 0 {
		return 0
	}

	return math.Float64bits(f)
}
