package fermat

import (
	"context"
	"errors"
	"fmt"
	"math/big"
)

// BruteForceStrategy factors moduli whose factors are moderately close by
// walking candidate midpoints upward from ⌈√N⌉. The search is bounded and
// deterministic: the same modulus always yields the same pair after the same
// number of iterations.
type BruteForceStrategy struct {
	Config BruteForceConfig
}

// NewBruteForceStrategy creates a new brute-force strategy with the default
// search bound.
func NewBruteForceStrategy() *BruteForceStrategy {
	return &BruteForceStrategy{Config: DefaultBruteForceConfig()}
}

// WithConfig sets the search configuration for the strategy.
func (s *BruteForceStrategy) WithConfig(config BruteForceConfig) *BruteForceStrategy {
	s.Config = config
	return s
}

// Name returns the name of this strategy.
func (s *BruteForceStrategy) Name() string {
	return "BruteForce"
}

// Factor implements the Strategy interface.
//
// Candidates are a₀+1, a₀+2, … with a₀ = ⌈√N⌉; a₀ itself is the near-square
// strategy's job. Midpoints that do not split the modulus, or split it into
// a non-prime pair, simply advance the search.
func (s *BruteForceStrategy) Factor(ctx context.Context, n *big.Int) (*FactorResult, error) {
	bound := s.Config.MaxIterations
	if bound <= 0 {
		bound = DefaultBruteForceConfig().MaxIterations
	}
	checkEvery := s.Config.CheckEvery
	if checkEvery <= 0 {
		checkEvery = DefaultBruteForceConfig().CheckEvery
	}

	a := ceilSqrt(n)
	for k := 1; k <= bound; k++ {
		if k%checkEvery == 0 {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("%s: modulus %s: cancelled after %d iterations: %w",
					s.Name(), short(n), k, ctx.Err())
			default:
			}
		}

		a.Add(a, one)
		p, q, err := computeSplit(a, n)
		if err != nil {
			if errors.Is(err, ErrInvalidCandidate) {
				continue
			}
			return nil, err
		}
		if !VerifyFactors(n, p, q) {
			continue
		}
		return &FactorResult{
			P:          p,
			Q:          q,
			Strategy:   s.Name(),
			Iterations: k,
		}, nil
	}

	return nil, fmt.Errorf("%s: modulus %s: no verified pair within %d iterations: %w",
		s.Name(), short(n), bound, ErrSearchExhausted)
}
