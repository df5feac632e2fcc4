package algocomplex

import "math"

// Sinh returns the hyperbolic sine of z:
//
//	sinh(a+bi) = sinh(a)·cos(b) + i·cosh(a)·sin(b)
func (z Complex) Sinh() Complex {
	return Complex{
		re: math.Sinh(z.re) * math.Cos(z.im),
		im: math.Cosh(z.re) * math.Sin(z.im),
	}
}

// Cosh returns the hyperbolic cosine of z:
//
//	cosh(a+bi) = cosh(a)·cos(b) + i·sinh(a)·sin(b)
func (z Complex) Cosh() Complex {
	return Complex{
		re: math.Cosh(z.re) * math.Cos(z.im),
		im: math.Sinh(z.re) * math.Sin(z.im),
	}
}

// Tanh returns the hyperbolic tangent of z as the ratio Sinh(z)/Cosh(z).
func (z Complex) Tanh() Complex {
	return z.Sinh().Div(z.Cosh())
}
