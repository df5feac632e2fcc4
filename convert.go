package algocomplex

import (
	"math/big"

	"github.com/govalues/decimal"

	"github.com/cwbudde/algo-complex/internal/scalar"
)

// Real is the constraint for real-number types accepted by FromReal.
// The canonical definition is in internal/scalar.
type Real = scalar.Real

// FromReal returns the complex number v + 0i for any built-in integer or
// floating-point value. The conversion widens; the imaginary component is
// exactly zero. Integers beyond 53 bits of magnitude round to the nearest
// representable float64.
func FromReal[T Real](v T) Complex {
	return Complex{re: float64(v)}
}

// FromBigInt returns the explicit, possibly lossy conversion of an
// arbitrary-precision integer to a purely real complex value. Values with
// more than 53 significant bits round; values beyond the float64 range
// saturate to ±Inf.
func FromBigInt(v *big.Int) Complex {
	f, _ := new(big.Float).SetInt(v).Float64()

	return Complex{re: f}
}

// FromDecimal returns the explicit, possibly lossy conversion of a
// fixed-point decimal to a purely real complex value. Fractions without an
// exact binary representation round to the nearest float64.
func FromDecimal(d decimal.Decimal) Complex {
	f, _ := d.Float64()

	return Complex{re: f}
}
