package algocomplex

import "math"

// Asin returns the principal arcsine of z, -i·Log(i·z + Sqrt(1 - z²)).
// Inputs in the open upper half-plane or on the negative real axis are
// reflected through the origin first, Asin(z) = -Asin(-z), which keeps the
// result continuous across the branch cut. The reflection applies at most
// once: the reflected argument never satisfies the guard again.
func (z Complex) Asin() Complex {
	if (z.im == 0 && z.re < 0) || z.im > 0 {
		return z.Neg().Asin().Neg()
	}

	s := One.Sub(z.Mul(z)).Sqrt()

	return I.Neg().Mul(I.Mul(z).Add(s).Log())
}

// Acos returns the principal arccosine of z, -i·Log(z + i·Sqrt(1 - z²)).
// Inputs in the open lower half-plane or on the positive real axis reflect
// through Acos(z) = π - Acos(-z), again at most once.
func (z Complex) Acos() Complex {
	if (z.im == 0 && z.re > 0) || z.im < 0 {
		return New(math.Pi, 0).Sub(z.Neg().Acos())
	}

	s := One.Sub(z.Mul(z)).Sqrt()

	return I.Neg().Mul(z.Add(I.Mul(s)).Log())
}

// Atan returns the principal arctangent of z,
// (i/2)·(Log(1 - i·z) - Log(1 + i·z)).
func (z Complex) Atan() Complex {
	iz := I.Mul(z)
	half := I.Div(New(2, 0))

	return half.Mul(One.Sub(iz).Log().Sub(One.Add(iz).Log()))
}
