package algocomplex

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// Shared test helper functions used across multiple test files

const defaultTol = 1e-12

func assertApproxTolf(t *testing.T, got, want Complex, tol float64, format string, args ...any) {
	t.Helper()

	if !approxEqual(got, want, tol) {
		t.Fatalf(format+": got %v want %v", append(args, got, want)...)
	}
}

func assertApproxf(t *testing.T, got, want Complex, format string, args ...any) {
	t.Helper()
	assertApproxTolf(t, got, want, defaultTol, format, args...)
}

func approxEqual(got, want Complex, tol float64) bool {
	return scalar.EqualWithinAbsOrRel(got.Real(), want.Real(), tol, tol) &&
		scalar.EqualWithinAbsOrRel(got.Imag(), want.Imag(), tol, tol)
}
