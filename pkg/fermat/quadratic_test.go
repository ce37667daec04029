package fermat

import (
	"math/big"
	weak "math/rand"
	"testing"
)

func TestSolveQuadratic(t *testing.T) {
	// x² - 8x + 15 = 0 has roots 3 and 5.
	x1, x2, err := SolveQuadratic(big.NewInt(1), big.NewInt(-8), big.NewInt(15), 64)
	if err != nil {
		t.Fatalf("SolveQuadratic failed: %v", err)
	}
	if x1.Cmp(big.NewFloat(3)) != 0 {
		t.Errorf("x1 = %s, want 3", x1)
	}
	if x2.Cmp(big.NewFloat(5)) != 0 {
		t.Errorf("x2 = %s, want 5", x2)
	}
}

func TestSolveQuadratic_DoubleRoot(t *testing.T) {
	// (x - 4)² = x² - 8x + 16
	x1, x2, err := SolveQuadratic(big.NewInt(1), big.NewInt(-8), big.NewInt(16), 64)
	if err != nil {
		t.Fatalf("SolveQuadratic failed: %v", err)
	}
	if x1.Cmp(x2) != 0 || x1.Cmp(big.NewFloat(4)) != 0 {
		t.Errorf("got (%s, %s), want (4, 4)", x1, x2)
	}
}

func TestSolveQuadratic_RoundTrip(t *testing.T) {
	// For integer roots r1, r2 and leading coefficient a, the polynomial
	// a·x² - a(r1+r2)·x + a·r1·r2 must solve back to {r1, r2}.
	rnd := weak.New(weak.NewSource(1))
	for i := 0; i < 50; i++ {
		a := big.NewInt(rnd.Int63n(1000) + 1)
		if rnd.Intn(2) == 0 {
			a.Neg(a)
		}
		r1 := big.NewInt(rnd.Int63n(1 << 30) - (1 << 29))
		r2 := big.NewInt(rnd.Int63n(1 << 30) - (1 << 29))

		b := new(big.Int).Add(r1, r2)
		b.Mul(b, a)
		b.Neg(b)
		c := new(big.Int).Mul(r1, r2)
		c.Mul(c, a)

		x1, x2, err := SolveQuadratic(a, b, c, PrecisionFor(c))
		if err != nil {
			t.Fatalf("a=%s r1=%s r2=%s: %v", a, r1, r2, err)
		}

		f1 := new(big.Float).SetInt(r1)
		f2 := new(big.Float).SetInt(r2)
		if f1.Cmp(f2) > 0 {
			f1, f2 = f2, f1
		}
		// Root order follows the sign of a; compare as a set.
		lo, hi := x1, x2
		if lo.Cmp(hi) > 0 {
			lo, hi = hi, lo
		}
		if lo.Cmp(f1) != 0 || hi.Cmp(f2) != 0 {
			t.Errorf("a=%s r1=%s r2=%s: got {%s, %s}", a, r1, r2, lo, hi)
		}
	}
}

func TestSolveQuadratic_NegativeDiscriminant(t *testing.T) {
	// x² + 1 = 0 has no real roots.
	if _, _, err := SolveQuadratic(big.NewInt(1), big.NewInt(0), big.NewInt(1), 64); err == nil {
		t.Error("expected error for negative discriminant")
	}
}

func TestSolveQuadratic_ZeroLeadingCoefficient(t *testing.T) {
	if _, _, err := SolveQuadratic(big.NewInt(0), big.NewInt(1), big.NewInt(1), 64); err == nil {
		t.Error("expected error for zero leading coefficient")
	}
}

func TestPrecisionFor(t *testing.T) {
	if got := PrecisionFor(big.NewInt(77)); got != uint(3*2*bitsPerDigit) {
		t.Errorf("PrecisionFor(77) = %d, want %d", got, 3*2*bitsPerDigit)
	}
	// 10^308 has 309 decimal digits.
	huge := new(big.Int).Exp(big.NewInt(10), big.NewInt(308), nil)
	if got := PrecisionFor(huge); got != uint(3*309*bitsPerDigit) {
		t.Errorf("PrecisionFor(10^308) = %d, want %d", got, 3*309*bitsPerDigit)
	}
}
