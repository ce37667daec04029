package fermat

import (
	"context"
	"fmt"
	"math/big"
)

// Mod6Strategy factors moduli whose prime factors satisfy the residue
// pattern 3p ≈ 2q: scaling the problem by 24 makes A = ⌈√(24N)⌉ the exact
// midpoint of 3p and 2q, so the factors drop out of a closed form with no
// searching at all.
//
// The algebra only holds when the pattern does: the scaled discriminant
// A² - 24N must be a perfect square, and the candidate divisions by 6 and 4
// must be exact. Any violation means the assumption was wrong for this
// modulus and the strategy reports ErrAlgebraicAssumption instead of a
// truncated pair.
type Mod6Strategy struct{}

// NewMod6Strategy creates a new mod-6 closed-form strategy.
func NewMod6Strategy() *Mod6Strategy {
	return &Mod6Strategy{}
}

// Name returns the name of this strategy.
func (s *Mod6Strategy) Name() string {
	return "Mod6"
}

// Factor implements the Strategy interface.
func (s *Mod6Strategy) Factor(ctx context.Context, n *big.Int) (*FactorResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scaled := new(big.Int).Mul(n, twentyFour)
	a := ceilSqrt(scaled)

	// D = A² - 24N must be a perfect square, with E = √D exactly.
	d := new(big.Int).Mul(a, a)
	d.Sub(d, scaled)
	e := new(big.Int).Sqrt(d)
	if new(big.Int).Mul(e, e).Cmp(d) != 0 {
		return nil, fmt.Errorf("%s: modulus %s: A² - 24N is not a perfect square: %w",
			s.Name(), short(n), ErrAlgebraicAssumption)
	}

	sum := new(big.Int).Add(a, e)
	diff := new(big.Int).Sub(a, e)

	// Two algebraic candidates, depending on which of 3p, 2q is larger:
	// (p, q) = ((A-E)/6, (A+E)/4) or ((A+E)/6, (A-E)/4).
	for i, cand := range [][2]*big.Int{{diff, sum}, {sum, diff}} {
		p, okP := exactDiv(cand[0], six)
		q, okQ := exactDiv(cand[1], four)
		if !okP || !okQ {
			continue
		}
		if !VerifyFactors(n, p, q) {
			continue
		}
		if p.Cmp(q) > 0 {
			p, q = q, p
		}
		return &FactorResult{
			P:          p,
			Q:          q,
			Strategy:   s.Name(),
			Iterations: i + 1,
		}, nil
	}

	return nil, fmt.Errorf("%s: modulus %s: neither closed-form candidate verified: %w",
		s.Name(), short(n), ErrAlgebraicAssumption)
}

// exactDiv returns x/y and whether the division left no remainder.
func exactDiv(x, y *big.Int) (*big.Int, bool) {
	q, r := new(big.Int).QuoRem(x, y, new(big.Int))
	return q, r.Sign() == 0
}
