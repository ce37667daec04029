package fermat

import (
	"errors"
	"math/big"
	"testing"
)

func TestComputeSplit(t *testing.T) {
	// N = 77 = 7·11, midpoint (7+11)/2 = 9, x = (11-7)/2 = 2
	n := big.NewInt(77)
	p, q, err := computeSplit(big.NewInt(9), n)
	if err != nil {
		t.Fatalf("computeSplit failed: %v", err)
	}
	if p.Int64() != 7 || q.Int64() != 11 {
		t.Errorf("got (%s, %s), want (7, 11)", p, q)
	}
}

func TestComputeSplit_NotASquare(t *testing.T) {
	// 10² - 77 = 23 is not a perfect square
	_, _, err := computeSplit(big.NewInt(10), big.NewInt(77))
	if !errors.Is(err, ErrInvalidCandidate) {
		t.Errorf("got %v, want ErrInvalidCandidate", err)
	}
}

func TestComputeSplit_MidpointBelowRoot(t *testing.T) {
	_, _, err := computeSplit(big.NewInt(8), big.NewInt(77))
	if !errors.Is(err, ErrInvalidCandidate) {
		t.Errorf("got %v, want ErrInvalidCandidate", err)
	}
}

func TestVerifyFactors(t *testing.T) {
	n := big.NewInt(77)

	if !VerifyFactors(n, big.NewInt(7), big.NewInt(11)) {
		t.Error("7·11 = 77 should verify")
	}
	// Product equality is exact: 7·11 = 77 ≠ 78
	if VerifyFactors(big.NewInt(78), big.NewInt(7), big.NewInt(11)) {
		t.Error("7·11 should not verify against 78")
	}
	// 1·77: right product, 1 is not prime
	if VerifyFactors(n, big.NewInt(1), big.NewInt(77)) {
		t.Error("1·77 should fail the primality check")
	}
	// 7·11 with a composite swapped in
	if VerifyFactors(big.NewInt(63), big.NewInt(7), big.NewInt(9)) {
		t.Error("composite factor should not verify")
	}
	if VerifyFactors(n, big.NewInt(-7), big.NewInt(-11)) {
		t.Error("negative factors should not verify")
	}
}

func TestCeilSqrt(t *testing.T) {
	for _, tc := range []struct {
		n, want int64
	}{
		{77, 9},   // √77 ≈ 8.77
		{81, 9},   // exact square stays put
		{82, 10},  // just above a square
		{1, 1},
	} {
		if got := ceilSqrt(big.NewInt(tc.n)); got.Int64() != tc.want {
			t.Errorf("ceilSqrt(%d) = %s, want %d", tc.n, got, tc.want)
		}
	}
}
