package ledger

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// mulDiv
// ---------------------------------------------------------------------------

func TestMulDiv_Floors(t *testing.T) {
	tests := []struct {
		name    string
		x, y, d string
		want    string
	}{
		{"exact", "10", "4", "2", "20"},
		{"floors_down", "7", "3", "2", "10"},
		{"one_wei", "1", "1", "3", "0"},
		{"large_no_overflow", "100000000000000000000", "351000000000000000000",
			"101000000000000000000", "347524752475247524752"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := mulDiv(num(tc.x), num(tc.y), num(tc.d))
			assert.Zero(t, got.Cmp(num(tc.want)))
		})
	}
}

// ---------------------------------------------------------------------------
// TokensForShares / SharesForTokens
// ---------------------------------------------------------------------------

func TestConversions_AtPar(t *testing.T) {
	l, _, _ := seededLedger(t)

	tokens, err := l.TokensForShares(e18(1))
	require.NoError(t, err)
	assert.Zero(t, tokens.Cmp(e18(1)))

	shares, err := l.SharesForTokens(e18(1))
	require.NoError(t, err)
	assert.Zero(t, shares.Cmp(e18(1)))
}

func TestConversions_AfterYield(t *testing.T) {
	l, _, _ := seededLedger(t)
	_, err := l.Mint(alice, alice, e18(99))
	require.NoError(t, err)
	_, err = l.DistributeYield(admin, e18(100))
	require.NoError(t, err)

	// 2 tokens per share.
	tokens, err := l.TokensForShares(e18(3))
	require.NoError(t, err)
	assert.Zero(t, tokens.Cmp(e18(6)))

	shares, err := l.SharesForTokens(e18(6))
	require.NoError(t, err)
	assert.Zero(t, shares.Cmp(e18(3)))
}

func TestConversions_RoundTripBound(t *testing.T) {
	l, res, _ := seededLedger(t)
	_, err := l.Mint(alice, alice, e18(100))
	require.NoError(t, err)

	// An awkward pool value exercises the floor in both directions.
	res.pooled.Add(res.pooled, e18(250))

	for _, s := range []string{"1", "7", "999", "123456789123456789", "100000000000000000000"} {
		shares := num(s)
		tokens, err := l.TokensForShares(shares)
		require.NoError(t, err)
		back, err := l.SharesForTokens(tokens)
		require.NoError(t, err)

		// Each floor loses at most one unit and never rounds up.
		assert.True(t, back.Cmp(shares) <= 0, "shares=%s back=%s", shares, back)
		diff := new(big.Int).Sub(shares, back)
		assert.True(t, diff.Cmp(big.NewInt(1)) <= 0, "shares=%s lost=%s", shares, diff)
	}
}

func TestConversions_ZeroShares(t *testing.T) {
	l, _, _ := seededLedger(t)

	tokens, err := l.TokensForShares(big.NewInt(0))
	require.NoError(t, err)
	assert.Zero(t, tokens.Sign())

	shares, err := l.SharesForTokens(big.NewInt(0))
	require.NoError(t, err)
	assert.Zero(t, shares.Sign())
}

func TestConversions_NegativeRejected(t *testing.T) {
	l, _, _ := seededLedger(t)

	_, err := l.TokensForShares(big.NewInt(-1))
	assert.ErrorIs(t, err, ErrNegativeAmount)

	_, err = l.SharesForTokens(big.NewInt(-1))
	assert.ErrorIs(t, err, ErrNegativeAmount)
}

func TestConversions_BeforeGenesis(t *testing.T) {
	l, _, _ := newTestLedger(t)

	// No shares exist yet; the divisor is zero and must be reported as a
	// broken-genesis condition, never a panic.
	_, err := l.TokensForShares(e18(1))
	assert.ErrorIs(t, err, ErrZeroTotalShares)

	_, err = l.SharesForTokens(e18(1))
	assert.ErrorIs(t, err, ErrZeroTotalShares)
}

func TestSharesForTokens_EmptyReserve(t *testing.T) {
	l, res, _ := seededLedger(t)

	// Shares exist but the pool reports zero: converting tokens to shares
	// would divide by zero.
	res.pooled.SetInt64(0)
	_, err := l.SharesForTokens(e18(1))
	assert.ErrorIs(t, err, ErrZeroReserve)
}
