package algocomplex

import "testing"

var benchSink Complex

var benchSinkFloat float64

func BenchmarkAbs(b *testing.B) {
	z := New(3e154, 4e154)

	for i := 0; i < b.N; i++ {
		benchSinkFloat = z.Abs()
	}
}

func BenchmarkMul(b *testing.B) {
	z, w := New(1.5, -2.5), New(-0.25, 3)

	for i := 0; i < b.N; i++ {
		benchSink = z.Mul(w)
	}
}

func BenchmarkDiv(b *testing.B) {
	z, w := New(1.5, -2.5), New(3e200, 4e-200)

	for i := 0; i < b.N; i++ {
		benchSink = z.Div(w)
	}
}

func BenchmarkSqrt(b *testing.B) {
	z := New(-3, 4)

	for i := 0; i < b.N; i++ {
		benchSink = z.Sqrt()
	}
}

func BenchmarkSqrtRescale(b *testing.B) {
	z := New(8e307, -8e307)

	for i := 0; i < b.N; i++ {
		benchSink = z.Sqrt()
	}
}

func BenchmarkExp(b *testing.B) {
	z := New(1, 2)

	for i := 0; i < b.N; i++ {
		benchSink = z.Exp()
	}
}

func BenchmarkAsin(b *testing.B) {
	z := New(0.5, -0.5)

	for i := 0; i < b.N; i++ {
		benchSink = z.Asin()
	}
}
