package algocomplex

import "math"

// Pow returns z**w, computed through the polar form of z:
//
//	z**w = ρ^c · e^(-d·θ) · (cos(c·θ + d·ln ρ) + i·sin(c·θ + d·ln ρ))
//
// for z = ρ·e^(iθ) and w = c + di.
//
// Conventions: Pow(z, Zero) is One for every z, including Zero, and
// Pow(Zero, w) is Zero for every w other than Zero.
func (z Complex) Pow(w Complex) Complex {
	if w.re == 0 && w.im == 0 {
		return One
	}

	if z.re == 0 && z.im == 0 {
		return Zero
	}

	rho := z.Abs()
	theta := z.Phase()

	angle := w.re*theta + w.im*math.Log(rho)
	t := math.Pow(rho, w.re) * math.Exp(-w.im*theta)

	return Complex{
		re: t * math.Cos(angle),
		im: t * math.Sin(angle),
	}
}

// PowReal returns z**x for a real exponent, widening x to a purely real
// complex value.
func (z Complex) PowReal(x float64) Complex {
	return z.Pow(Complex{re: x})
}
