package algocomplex

import "math"

// Neg returns -z.
func (z Complex) Neg() Complex {
	return Complex{re: -z.re, im: -z.im}
}

// Add returns the component-wise sum z + w.
func (z Complex) Add(w Complex) Complex {
	return Complex{re: z.re + w.re, im: z.im + w.im}
}

// Sub returns the component-wise difference z - w.
func (z Complex) Sub(w Complex) Complex {
	return Complex{re: z.re - w.re, im: z.im - w.im}
}

// Mul returns the product z·w using the textbook four-multiplication
// formula (ac-bd, bc+ad). Intermediate products can overflow for very large
// components; that follows plain float64 semantics.
func (z Complex) Mul(w Complex) Complex {
	return Complex{
		re: z.re*w.re - z.im*w.im,
		im: z.im*w.re + z.re*w.im,
	}
}

// Div returns the quotient z / w using Smith's algorithm. The branch picks
// the smaller-magnitude ratio of the divisor components so intermediates
// stay bounded when one component dominates the other. Division by Zero
// follows IEEE-754 division rules and yields Inf or NaN components rather
// than an error.
func (z Complex) Div(w Complex) Complex {
	a, b := z.re, z.im
	c, d := w.re, w.im

	if math.Abs(d) < math.Abs(c) {
		r := d / c
		den := c + d*r

		return Complex{re: (a + b*r) / den, im: (b - a*r) / den}
	}

	r := c / d
	den := d + c*r

	return Complex{re: (b + a*r) / den, im: (-a + b*r) / den}
}
