package algocomplex

import (
	"math"

	"github.com/cwbudde/algo-complex/internal/scalar"
)

// Log returns the principal natural logarithm of z, ln|z| + i·Phase(z).
// The imaginary component lies in (-π, π].
func (z Complex) Log() Complex {
	return Complex{re: math.Log(z.Abs()), im: z.Phase()}
}

// LogBase returns the logarithm of z in the given real base,
// Log(z) / Log(base).
func (z Complex) LogBase(base float64) Complex {
	return z.Log().Div(New(base, 0).Log())
}

// Log10 returns the base-10 logarithm of z.
func (z Complex) Log10() Complex {
	l := z.Log()

	return Complex{re: l.re * scalar.InvLn10, im: l.im * scalar.InvLn10}
}
