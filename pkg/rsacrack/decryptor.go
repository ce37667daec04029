// Package rsacrack decrypts RSA ciphertexts once the modulus has been
// factored. It derives the private exponent from the recovered primes and
// strips the PKCS#1 v1.5 style padding from the decrypted block.
package rsacrack

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"

	"github.com/mahdiidarabi/fermat-rsa/internal/arith"
)

// Leading byte of a padded block: 0x02 marks an encryption block, and the
// payload starts after the first 0x00 separator.
const blockType = 0x02

var (
	// ErrNonInvertibleExponent means gcd(e, φ(n)) ≠ 1, so no private
	// exponent exists for this key material.
	ErrNonInvertibleExponent = errors.New("public exponent not invertible modulo the totient")

	// ErrPaddingMarkerNotFound means the decrypted block does not carry
	// the expected padding marker: the ciphertext did not decrypt to a
	// validly padded message under this key.
	ErrPaddingMarkerNotFound = errors.New("padding marker not found in decrypted block")
)

// Decryptor decrypts ciphertexts under a modulus with known factorization.
type Decryptor struct {
	mod *arith.Modulus
	e   *big.Int
}

// NewDecryptor builds a decryptor from the modulus n, its prime factors and
// the public exponent. The factors must multiply back to n exactly.
func NewDecryptor(n, p, q, e *big.Int) (*Decryptor, error) {
	if new(big.Int).Mul(p, q).Cmp(n) != 0 {
		return nil, fmt.Errorf("p·q does not equal the modulus")
	}
	if e == nil || e.Cmp(big.NewInt(2)) < 0 {
		return nil, fmt.Errorf("public exponent must be at least 2")
	}
	mod, err := arith.FromFactors(p, q)
	if err != nil {
		return nil, err
	}
	return &Decryptor{mod: mod, e: e}, nil
}

// Decrypt recovers the plaintext integer m = c^d mod n. The private exponent
// d = e⁻¹ mod φ(n) is derived on each call and discarded; nothing but the
// factorization is retained between calls.
func (dec *Decryptor) Decrypt(c *big.Int) (*big.Int, error) {
	phi := dec.mod.Phi()
	d := new(big.Int)
	if g := new(big.Int).GCD(d, nil, dec.e, phi); g.Cmp(big.NewInt(1)) != 0 {
		return nil, fmt.Errorf("e = %s, gcd(e, φ) = %s: %w", dec.e, g, ErrNonInvertibleExponent)
	}
	if d.Sign() < 0 {
		d.Add(d, phi)
	}
	return dec.mod.Exp(c, d), nil
}

// DecryptPKCS1 decrypts c and extracts the message bytes from the padded
// block. The big-endian representation of the plaintext integer must start
// with the 0x02 block type and contain a 0x00 separator; everything after
// the separator is the message.
func (dec *Decryptor) DecryptPKCS1(c *big.Int) ([]byte, error) {
	m, err := dec.Decrypt(c)
	if err != nil {
		return nil, err
	}
	block := m.Bytes()
	if len(block) == 0 || block[0] != blockType {
		return nil, fmt.Errorf("block does not start with type %#02x: %w", blockType, ErrPaddingMarkerNotFound)
	}
	sep := bytes.IndexByte(block[1:], 0x00)
	if sep < 0 {
		return nil, fmt.Errorf("no 0x00 separator after block type: %w", ErrPaddingMarkerNotFound)
	}
	return block[sep+2:], nil
}

// Encrypt computes c = m^e mod n. It exists so callers can round-trip known
// plaintexts through the recovered key material.
func (dec *Decryptor) Encrypt(m *big.Int) *big.Int {
	return dec.mod.Exp(m, dec.e)
}
