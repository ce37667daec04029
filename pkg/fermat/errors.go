package fermat

import "errors"

// Sentinel errors returned by the factoring strategies. Strategies wrap these
// with the modulus, strategy name and iteration count, so callers should
// match them with errors.Is.
var (
	// ErrInvalidCandidate means a² - N was not a perfect square for the
	// candidate midpoint a. Inside a search loop this just advances the
	// search; for the single-shot near-square strategy it is fatal.
	ErrInvalidCandidate = errors.New("candidate midpoint does not split the modulus")

	// ErrSearchExhausted means the brute-force strategy reached its
	// iteration bound without finding a verified factor pair.
	ErrSearchExhausted = errors.New("search bound exhausted")

	// ErrAlgebraicAssumption means the mod-6 residue pattern required by
	// the scaled strategy does not hold for this modulus: either the
	// scaled discriminant was not a perfect square or one of the closed-form
	// divisions was not exact.
	ErrAlgebraicAssumption = errors.New("mod-6 residue assumption does not hold")

	// ErrVerificationFailed means a candidate pair multiplied back to the
	// modulus but failed the primality check, or vice versa.
	ErrVerificationFailed = errors.New("factor pair failed verification")
)
