package algocomplex

import (
	"math"

	"github.com/cwbudde/algo-complex/internal/scalar"
)

// Sqrt returns the principal square root of z. The result has a
// non-negative real component; the square root of a negative real is purely
// imaginary, with the sign of the imaginary component following the sign of
// z's imaginary component.
//
// The general case solves x² - y² = re and 2xy = im: it computes the larger
// of x and y from the stable sum (|z| ± re)/2 and derives the other through
// the product constraint x·y = im/2, which avoids cancellation. Components
// near the float64 limit are scaled down by ¼ first and the result scaled
// back up by 2; the scale factor is a power of four, so this is exact.
func (z Complex) Sqrt() Complex {
	if z.im == 0 {
		if z.re < 0 {
			return Complex{im: math.Sqrt(-z.re)}
		}

		return Complex{re: math.Sqrt(z.re)}
	}

	re, im := z.re, z.im

	rescale := false
	if math.Abs(re) >= scalar.SqrtRescaleThreshold || math.Abs(im) >= scalar.SqrtRescaleThreshold {
		if math.IsInf(im, 0) && !math.IsNaN(re) {
			// sqrt(a ± ∞i) = +∞ ± ∞i; computing it through the core
			// formula would produce an ∞/∞ NaN artifact.
			return Complex{re: math.Inf(1), im: im}
		}

		re *= 0.25
		im *= 0.25
		rescale = true
	}

	var x, y float64

	if re >= 0 {
		x = math.Sqrt((scalar.Hypot(re, im) + re) * 0.5)
		y = im / (2 * x)
	} else {
		y = math.Sqrt((scalar.Hypot(re, im) - re) * 0.5)
		if im < 0 {
			y = -y
		}

		x = im / (2 * y)
	}

	if rescale {
		x *= 2
		y *= 2
	}

	return Complex{re: x, im: y}
}
