// Package fermat factors RSA moduli whose prime factors lie close to √N,
// using Fermat's difference-of-squares identity: when N = p·q and
// a = (p+q)/2, x = (q-p)/2, then N = a² - x², so a midpoint a near √N with
// a² - N a perfect square splits N immediately.
//
// Three strategies are provided, trading search breadth for closed-form
// precision:
//
//   - NearSquareStrategy tries the single candidate ⌈√N⌉. It factors moduli
//     whose primes are nearly adjacent, on the first try or not at all.
//   - BruteForceStrategy walks up to 2²⁰ midpoints above ⌈√N⌉, for factors
//     that are moderately close but not adjacent.
//   - Mod6Strategy handles factors with 3p ≈ 2q by scaling the modulus by 24
//     and reading both factors out of a closed form, with every intermediate
//     step checked for exactness.
//
// # Quick Start
//
//	import "github.com/mahdiidarabi/fermat-rsa/pkg/fermat"
//
//	client := fermat.NewClient()
//
//	result, err := client.Factor(ctx, n)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("p = %s, q = %s\n", result.P, result.Q)
//
// # Choosing a strategy
//
//	client := fermat.NewClient().WithStrategy(
//	    fermat.NewBruteForceStrategy().WithConfig(fermat.BruteForceConfig{
//	        MaxIterations: 1 << 22,
//	    }),
//	)
//
// # Custom strategies
//
// Implement the Strategy interface to plug in a custom search:
//
//	type MyStrategy struct{}
//
//	func (s *MyStrategy) Factor(ctx context.Context, n *big.Int) (*fermat.FactorResult, error) {
//	    // Your custom search logic
//	}
//
//	func (s *MyStrategy) Name() string {
//	    return "MyCustomStrategy"
//	}
//
// Every strategy verifies its candidates before returning them: a
// FactorResult always satisfies P·Q = N exactly with both factors prime and
// P ≤ Q. Failures are reported through sentinel errors (ErrInvalidCandidate,
// ErrSearchExhausted, ErrAlgebraicAssumption, ErrVerificationFailed) wrapped
// with the modulus and strategy that failed.
package fermat
