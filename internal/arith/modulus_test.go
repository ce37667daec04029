package arith

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFactors(t *testing.T) {
	p := big.NewInt(1000003)
	q := big.NewInt(1000033)

	m, err := FromFactors(p, q)
	require.NoError(t, err)
	assert.Equal(t, 0, m.N().Cmp(new(big.Int).Mul(p, q)))

	wantPhi := new(big.Int).Mul(big.NewInt(1000002), big.NewInt(1000032))
	assert.Equal(t, 0, m.Phi().Cmp(wantPhi))
}

func TestFromFactors_Rejects(t *testing.T) {
	_, err := FromFactors(big.NewInt(7), big.NewInt(7))
	assert.Error(t, err, "equal factors")

	_, err = FromFactors(big.NewInt(-7), big.NewInt(11))
	assert.Error(t, err, "negative factor")

	_, err = FromFactors(big.NewInt(0), big.NewInt(11))
	assert.Error(t, err, "zero factor")
}

func TestExp_MatchesBigInt(t *testing.T) {
	p := big.NewInt(1000003)
	q := big.NewInt(1000033)
	n := new(big.Int).Mul(p, q)

	m, err := FromFactors(p, q)
	require.NoError(t, err)

	for _, tc := range []struct{ x, e int64 }{
		{2, 10},
		{123456789, 65537},
		{999999999999, 3},
		{1, 1000000},
		{2, 1},
	} {
		x := big.NewInt(tc.x)
		e := big.NewInt(tc.e)
		want := new(big.Int).Exp(x, e, n)
		assert.Equal(t, 0, m.Exp(x, e).Cmp(want), "x=%d e=%d", tc.x, tc.e)
	}
}

func TestExp_LargeOperands(t *testing.T) {
	// 2^64 + 13 and 2^64 - 59 are both prime.
	p, _ := new(big.Int).SetString("18446744073709551629", 10)
	q, _ := new(big.Int).SetString("18446744073709551557", 10)
	n := new(big.Int).Mul(p, q)

	m, err := FromFactors(p, q)
	require.NoError(t, err)

	x, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	e := big.NewInt(65537)
	want := new(big.Int).Exp(x, e, n)
	assert.Equal(t, 0, m.Exp(x, e).Cmp(want))
}
