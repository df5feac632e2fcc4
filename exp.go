package algocomplex

import "math"

// Exp returns e**z, the complex exponential of z.
func (z Complex) Exp() Complex {
	t := math.Exp(z.re)

	return Complex{
		re: t * math.Cos(z.im),
		im: t * math.Sin(z.im),
	}
}
