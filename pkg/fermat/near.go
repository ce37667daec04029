package fermat

import (
	"context"
	"fmt"
	"math/big"
)

// NearSquareStrategy factors moduli whose prime factors are nearly adjacent,
// so that ⌈√N⌉ is already the midpoint (p+q)/2. It tries exactly one
// candidate and performs no retry: if the single split does not verify, the
// modulus needs a wider search and the call fails.
type NearSquareStrategy struct{}

// NewNearSquareStrategy creates a new near-square strategy.
func NewNearSquareStrategy() *NearSquareStrategy {
	return &NearSquareStrategy{}
}

// Name returns the name of this strategy.
func (s *NearSquareStrategy) Name() string {
	return "NearSquare"
}

// Factor implements the Strategy interface.
func (s *NearSquareStrategy) Factor(ctx context.Context, n *big.Int) (*FactorResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a := ceilSqrt(n)
	p, q, err := computeSplit(a, n)
	if err != nil {
		return nil, fmt.Errorf("%s: modulus %s: %w", s.Name(), short(n), err)
	}
	if !VerifyFactors(n, p, q) {
		return nil, fmt.Errorf("%s: modulus %s: split at ⌈√N⌉ gave a non-prime pair: %w",
			s.Name(), short(n), ErrVerificationFailed)
	}

	return &FactorResult{
		P:          p,
		Q:          q,
		Strategy:   s.Name(),
		Iterations: 1,
	}, nil
}
