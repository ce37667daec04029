package fermat

import (
	"errors"
	"fmt"
	"math/big"
)

// bits of working precision per decimal digit, rounded up from log₂10
const bitsPerDigit = 4

// PrecisionFor returns a working precision suitable for root extraction on
// operands the size of n, sized at three times its decimal digit count.
// Thread the result into SolveQuadratic rather than relying on any global
// setting.
func PrecisionFor(n *big.Int) uint {
	digits := len(new(big.Int).Abs(n).Text(10))
	return uint(3 * digits * bitsPerDigit)
}

// SolveQuadratic returns both roots of a·x² + b·x + c = 0, computed as
// arbitrary-precision floats at the given precision. The roots are returned
// in ascending order of the ±√Δ term: x1 = (-b - √Δ)/(2a), x2 = (-b + √Δ)/(2a).
//
// The discriminant must be non-negative and a must be non-zero. The function
// is pure: its arguments are not modified.
func SolveQuadratic(a, b, c *big.Int, prec uint) (x1, x2 *big.Float, err error) {
	if a.Sign() == 0 {
		return nil, nil, errors.New("solve quadratic: leading coefficient is zero")
	}

	// Δ = b² - 4ac
	disc := new(big.Int).Mul(b, b)
	disc.Sub(disc, new(big.Int).Mul(four, new(big.Int).Mul(a, c)))
	if disc.Sign() < 0 {
		return nil, nil, fmt.Errorf("solve quadratic: negative discriminant %s", disc)
	}

	sqrtDisc := new(big.Float).SetPrec(prec).Sqrt(new(big.Float).SetPrec(prec).SetInt(disc))

	negB := new(big.Float).SetPrec(prec).SetInt(new(big.Int).Neg(b))
	twoA := new(big.Float).SetPrec(prec).SetInt(new(big.Int).Lsh(a, 1))

	x1 = new(big.Float).SetPrec(prec).Sub(negB, sqrtDisc)
	x1.Quo(x1, twoA)
	x2 = new(big.Float).SetPrec(prec).Add(negB, sqrtDisc)
	x2.Quo(x2, twoA)
	return x1, x2, nil
}
