package algocomplex

import (
	"math"
	"testing"
)

func TestEqual(t *testing.T) {
	t.Parallel()

	if !New(1, 2).Equal(New(1, 2)) {
		t.Error("equal values reported unequal")
	}

	if New(1, 2).Equal(New(1, 3)) || New(1, 2).Equal(New(2, 2)) {
		t.Error("unequal values reported equal")
	}

	// Signed zeros compare equal.
	negZero := math.Copysign(0, -1)
	if !New(negZero, 0).Equal(New(0, negZero)) {
		t.Error("(-0, +0) != (+0, -0)")
	}
}

func TestEqualNaNSelfInequality(t *testing.T) {
	t.Parallel()

	nan := math.NaN()

	tests := []Complex{
		New(nan, 0),
		New(0, nan),
		New(nan, nan),
	}

	for _, z := range tests {
		if z.Equal(z) {
			t.Errorf("%v compares equal to itself despite NaN component", z)
		}
	}
}

func TestHashContract(t *testing.T) {
	t.Parallel()

	// Equal values hash identically.
	pairs := []struct {
		a, b Complex
	}{
		{New(1, 2), New(1, 2)},
		{Zero, Zero},
		{New(math.Copysign(0, -1), 0), New(0, 0)},
		{New(1, math.Copysign(0, -1)), New(1, 0)},
	}

	for _, p := range pairs {
		if !p.a.Equal(p.b) {
			t.Fatalf("%v and %v expected equal", p.a, p.b)
		}

		if p.a.Hash() != p.b.Hash() {
			t.Errorf("equal values %v and %v hash differently", p.a, p.b)
		}
	}
}

func TestHashSpreads(t *testing.T) {
	t.Parallel()

	// Not a contract, but distinct simple values should not all collide.
	seen := make(map[uint64]Complex)
	samples := []Complex{New(1, 2), New(2, 1), New(-1, 2), New(1, -2), New(3, 4), New(4, 3)}

	collisions := 0
	for _, z := range samples {
		if _, ok := seen[z.Hash()]; ok {
			collisions++
		}

		seen[z.Hash()] = z
	}

	if collisions > 1 {
		t.Errorf("%d hash collisions across %d simple values", collisions, len(samples))
	}
}
