// Package arith provides modular arithmetic over an RSA modulus whose
// factorization is known.
package arith

import (
	"errors"
	"math/big"

	"github.com/cronokirby/saferith"
)

var one = new(saferith.Nat).SetUint64(1)

// Modulus wraps a saferith.Modulus together with its prime factorization.
// When n = p⋅q, xᵉ (mod n) can be computed with two half-size
// exponentiations mod p and mod q followed by CRT recombination, which is
// what makes decryption with recovered factors cheap.
type Modulus struct {
	// represents modulus n
	*saferith.Modulus
	// n = p⋅q
	p, q *saferith.Modulus
	// pInv = p⁻¹ (mod q)
	pNat, pInv *saferith.Nat
}

// FromFactors builds the modulus n = p⋅q and caches the values needed to
// accelerate exponentiation mod n. Both factors must be positive and
// distinct.
func FromFactors(p, q *big.Int) (*Modulus, error) {
	if p.Sign() <= 0 || q.Sign() <= 0 {
		return nil, errors.New("factors must be positive")
	}
	if p.Cmp(q) == 0 {
		return nil, errors.New("factors must be distinct")
	}
	pNat := new(saferith.Nat).SetBig(p, p.BitLen())
	qNat := new(saferith.Nat).SetBig(q, q.BitLen())
	nNat := new(saferith.Nat).Mul(pNat, qNat, -1)
	pMod := saferith.ModulusFromNat(pNat)
	qMod := saferith.ModulusFromNat(qNat)
	return &Modulus{
		Modulus: saferith.ModulusFromNat(nNat),
		p:       pMod,
		q:       qMod,
		pNat:    pNat,
		pInv:    new(saferith.Nat).ModInverse(pNat, qMod),
	}, nil
}

// N returns the modulus as a big.Int.
func (n *Modulus) N() *big.Int {
	return n.Modulus.Big()
}

// Phi returns Euler's totient (p-1)⋅(q-1) as a big.Int.
func (n *Modulus) Phi() *big.Int {
	pMinus1 := new(saferith.Nat).Sub(n.p.Nat(), one, -1)
	qMinus1 := new(saferith.Nat).Sub(n.q.Nat(), one, -1)
	return new(saferith.Nat).Mul(pMinus1, qMinus1, -1).Big()
}

// Exp returns xᵉ (mod n), recombining the two factor-sized exponentiations
// through the CRT: r = x₁ + p ⋅ [p⁻¹ (mod q)] ⋅ (x₂ - x₁) (mod n).
func (n *Modulus) Exp(x, e *big.Int) *big.Int {
	xNat := new(saferith.Nat).SetBig(x, x.BitLen())
	eNat := new(saferith.Nat).SetBig(e, e.BitLen())

	var xp, xq saferith.Nat
	xp.Exp(xNat, eNat, n.p)
	xq.Exp(xNat, eNat, n.q)

	r := xq.ModSub(&xq, &xp, n.Modulus)
	r.ModMul(r, n.pInv, n.Modulus)
	r.ModMul(r, n.pNat, n.Modulus)
	r.ModAdd(r, &xp, n.Modulus)
	return r.Big()
}
