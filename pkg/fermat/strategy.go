package fermat

import (
	"context"
	"math/big"
)

// Strategy defines the interface for factoring strategies.
// Implement this interface to plug a custom search into the Client.
type Strategy interface {
	// Factor attempts to find the two prime factors of n. It returns a
	// verified FactorResult or an error describing which stage failed.
	// The context can be used for cancellation of long-running searches.
	Factor(ctx context.Context, n *big.Int) (*FactorResult, error)

	// Name returns a human-readable name for this strategy.
	Name() string
}

// BruteForceConfig configures the bounded search of BruteForceStrategy.
type BruteForceConfig struct {
	// MaxIterations bounds the number of candidate midpoints tried above
	// ⌈√N⌉ before the search gives up.
	MaxIterations int

	// CheckEvery controls how often the search polls the context for
	// cancellation, in iterations.
	CheckEvery int
}

// DefaultBruteForceConfig returns the standard search bound of 2²⁰
// candidates, suitable for factors a few hundred thousand apart.
func DefaultBruteForceConfig() BruteForceConfig {
	return BruteForceConfig{
		MaxIterations: 1 << 20,
		CheckEvery:    1 << 10,
	}
}
