package algocomplex

import "math"

// Sin returns the sine of z:
//
//	sin(a+bi) = sin(a)·cosh(b) + i·cos(a)·sinh(b)
func (z Complex) Sin() Complex {
	return Complex{
		re: math.Sin(z.re) * math.Cosh(z.im),
		im: math.Cos(z.re) * math.Sinh(z.im),
	}
}

// Cos returns the cosine of z:
//
//	cos(a+bi) = cos(a)·cosh(b) - i·sin(a)·sinh(b)
func (z Complex) Cos() Complex {
	return Complex{
		re: math.Cos(z.re) * math.Cosh(z.im),
		im: -math.Sin(z.re) * math.Sinh(z.im),
	}
}

// Tan returns the tangent of z as the ratio Sin(z)/Cos(z). Poles follow
// float64 division semantics.
func (z Complex) Tan() Complex {
	return z.Sin().Div(z.Cos())
}
