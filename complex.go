// Package algocomplex implements a complex-number value type over IEEE-754
// float64 components. The operations use numerically robust algorithms:
// overflow-safe magnitude, branch-stable division, a symmetry-preserving
// square root with rescaling, and principal-branch inverse trigonometric
// functions built from the complex logarithm.
//
// Complex is an immutable value. No operation mutates its receiver; every
// operation returns a new value, so values may be copied and used
// concurrently without coordination. Exceptional numeric conditions are
// reported through NaN and ±Inf components on the normal return path, never
// through errors.
package algocomplex

import "math"

// Complex is a complex number with float64 real and imaginary components.
// Any pair of float64 values is a valid Complex, including NaN and ±Inf
// components. The zero value is the complex number 0.
type Complex struct {
	re, im float64
}

// Frequently used values.
var (
	Zero = Complex{}
	One  = Complex{re: 1}
	I    = Complex{im: 1}
)

// New returns the complex number re + im·i. Both components are stored
// verbatim, with no validation or normalization.
func New(re, im float64) Complex {
	return Complex{re: re, im: im}
}

// FromComplex128 returns the value of a built-in complex128.
func FromComplex128(c complex128) Complex {
	return Complex{re: real(c), im: imag(c)}
}

// Real returns the real component.
func (z Complex) Real() float64 { return z.re }

// Imag returns the imaginary component.
func (z Complex) Imag() float64 { return z.im }

// Complex128 returns z as a built-in complex128.
func (z Complex) Complex128() complex128 {
	return complex(z.re, z.im)
}

// Conjugate returns the complex conjugate of z.
func (z Complex) Conjugate() Complex {
	return Complex{re: z.re, im: -z.im}
}

// Reciprocal returns 1/z. The reciprocal of Zero is Zero.
func (z Complex) Reciprocal() Complex {
	if z.re == 0 && z.im == 0 {
		return Zero
	}

	return One.Div(z)
}

// IsNaN reports whether either component is NaN and neither is infinite.
func (z Complex) IsNaN() bool {
	switch {
	case math.IsInf(z.re, 0) || math.IsInf(z.im, 0):
		return false
	case math.IsNaN(z.re) || math.IsNaN(z.im):
		return true
	}

	return false
}

// IsInf reports whether either component is infinite.
func (z Complex) IsInf() bool {
	return math.IsInf(z.re, 0) || math.IsInf(z.im, 0)
}
