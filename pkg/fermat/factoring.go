package fermat

import (
	"fmt"
	"math/big"
)

// Number of Miller-Rabin rounds for the primality oracle. big.Int applies a
// Baillie-PSW pass on top, so this is already far beyond the certainty the
// verification step needs.
const primalityRounds = 20

var (
	one        = big.NewInt(1)
	four       = big.NewInt(4)
	six        = big.NewInt(6)
	twentyFour = big.NewInt(24)
)

// FactorResult contains the outcome of a successful factorization.
type FactorResult struct {
	P          *big.Int // Smaller prime factor
	Q          *big.Int // Larger prime factor
	Strategy   string   // Name of the strategy that produced the pair
	Iterations int      // Candidates tried before the pair verified
}

// VerifyFactors reports whether p and q are both prime and multiply back to
// n exactly. Every strategy runs its candidates through this check before
// returning them; an unverified pair is never surfaced as a result.
func VerifyFactors(n, p, q *big.Int) bool {
	if p.Sign() <= 0 || q.Sign() <= 0 {
		return false
	}
	if !p.ProbablyPrime(primalityRounds) || !q.ProbablyPrime(primalityRounds) {
		return false
	}
	return new(big.Int).Mul(p, q).Cmp(n) == 0
}

// computeSplit applies Fermat's identity at the candidate midpoint a:
// with x = √(a² - n), the pair is p = a - x, q = a + x. The square root must
// be exact; otherwise a does not split n and ErrInvalidCandidate is returned.
func computeSplit(a, n *big.Int) (p, q *big.Int, err error) {
	x2 := new(big.Int).Mul(a, a)
	x2.Sub(x2, n)
	if x2.Sign() < 0 {
		return nil, nil, fmt.Errorf("midpoint %s below √%s: %w", a, short(n), ErrInvalidCandidate)
	}
	x := new(big.Int).Sqrt(x2)
	if new(big.Int).Mul(x, x).Cmp(x2) != 0 {
		return nil, nil, fmt.Errorf("a² - n not a perfect square at midpoint %s: %w", a, ErrInvalidCandidate)
	}
	p = new(big.Int).Sub(a, x)
	q = new(big.Int).Add(a, x)
	return p, q, nil
}

// ceilSqrt returns ⌈√n⌉.
func ceilSqrt(n *big.Int) *big.Int {
	r := new(big.Int).Sqrt(n)
	if new(big.Int).Mul(r, r).Cmp(n) != 0 {
		r.Add(r, one)
	}
	return r
}

// short renders n compactly for error messages: full form for small moduli,
// head…tail with the digit count for large ones.
func short(n *big.Int) string {
	s := n.Text(10)
	if len(s) <= 20 {
		return s
	}
	return fmt.Sprintf("%s…%s (%d digits)", s[:8], s[len(s)-8:], len(s))
}
