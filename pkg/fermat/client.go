package fermat

import (
	"context"
	"fmt"
	"math/big"
)

// Client provides a high-level API for factoring operations.
type Client struct {
	strategy Strategy
	parser   ChallengeParser
}

// NewClient creates a new client with default settings: the near-square
// strategy and the JSON challenge parser.
func NewClient() *Client {
	return &Client{
		strategy: NewNearSquareStrategy(),
		parser:   &JSONParser{},
	}
}

// WithStrategy sets a custom factoring strategy.
func (c *Client) WithStrategy(strategy Strategy) *Client {
	c.strategy = strategy
	return c
}

// WithParser sets a custom challenge parser.
func (c *Client) WithParser(parser ChallengeParser) *Client {
	c.parser = parser
	return c
}

// Factor attempts to factor the modulus n with the configured strategy.
func (c *Client) Factor(ctx context.Context, n *big.Int) (*FactorResult, error) {
	if n == nil || n.Sign() <= 0 {
		return nil, fmt.Errorf("modulus must be a positive integer")
	}
	return c.strategy.Factor(ctx, n)
}

// FactorChallenge loads the named challenge from a challenge file and
// factors its modulus. The challenge's suggested strategy is used when it
// names one; otherwise the client's configured strategy runs.
func (c *Client) FactorChallenge(ctx context.Context, source, name string) (*FactorResult, error) {
	ch, err := c.LoadChallenge(source, name)
	if err != nil {
		return nil, err
	}

	strategy := c.strategy
	if ch.Strategy != "" {
		if strategy, err = StrategyByName(ch.Strategy); err != nil {
			return nil, fmt.Errorf("challenge %q: %w", name, err)
		}
	}
	return strategy.Factor(ctx, ch.N)
}

// LoadChallenge loads the named challenge from a challenge file.
func (c *Client) LoadChallenge(source, name string) (*Challenge, error) {
	challenges, err := c.parser.ParseChallenges(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse challenges: %w", err)
	}
	for _, ch := range challenges {
		if ch.Name == name {
			return ch, nil
		}
	}
	return nil, fmt.Errorf("challenge %q not found in %s", name, source)
}

// StrategyByName maps a strategy identifier from a challenge file or command
// line to a strategy with default settings.
func StrategyByName(name string) (Strategy, error) {
	switch name {
	case "near":
		return NewNearSquareStrategy(), nil
	case "brute":
		return NewBruteForceStrategy(), nil
	case "mod6":
		return NewMod6Strategy(), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want near, brute or mod6)", name)
	}
}
