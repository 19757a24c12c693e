package ledger

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Redeem — owner path
// ---------------------------------------------------------------------------

func TestRedeem_RoundTripAtPar(t *testing.T) {
	l, res, _ := seededLedger(t)
	_, err := l.Mint(alice, alice, e18(40))
	require.NoError(t, err)

	burned, err := l.Redeem(alice, alice, e18(40))
	require.NoError(t, err)

	// At a 1:1 rate the burn is exact.
	assert.Zero(t, burned.Cmp(e18(40)))
	assert.Zero(t, l.SharesOf(alice).Sign())
	assert.Zero(t, res.pooled.Cmp(e18(1)))
	requireInvariant(t, l)
}

func TestRedeem_Partial(t *testing.T) {
	l, _, _ := seededLedger(t)
	_, err := l.Mint(alice, alice, e18(40))
	require.NoError(t, err)

	burned, err := l.Redeem(alice, alice, e18(15))
	require.NoError(t, err)
	assert.Zero(t, burned.Cmp(e18(15)))
	assert.Zero(t, l.SharesOf(alice).Cmp(e18(25)))
	requireInvariant(t, l)
}

func TestRedeem_BalanceExceeded(t *testing.T) {
	l, _, _ := seededLedger(t)
	_, err := l.Mint(alice, alice, e18(5))
	require.NoError(t, err)

	_, err = l.Redeem(alice, alice, e18(6))
	assert.ErrorIs(t, err, ErrBalanceExceeded)
	assert.Zero(t, l.SharesOf(alice).Cmp(e18(5)))
}

func TestRedeem_Errors(t *testing.T) {
	tests := []struct {
		name    string
		caller  Principal
		owner   Principal
		tokens  *big.Int
		wantErr error
	}{
		{"zero_amount", alice, alice, big.NewInt(0), ErrAmountZero},
		{"negative_amount", alice, alice, big.NewInt(-1), ErrNegativeAmount},
		{"zero_caller", ZeroPrincipal, alice, e18(1), ErrZeroPrincipal},
		{"zero_owner", alice, ZeroPrincipal, e18(1), ErrZeroPrincipal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, _, _ := seededLedger(t)
			_, err := l.Mint(alice, alice, e18(10))
			require.NoError(t, err)
			_, err = l.Redeem(tc.caller, tc.owner, tc.tokens)
			assert.ErrorIs(t, err, tc.wantErr)
			requireInvariant(t, l)
		})
	}
}

func TestRedeem_LockedAccountRejected(t *testing.T) {
	l, _, _ := seededLedger(t)
	_, err := l.Mint(alice, alice, e18(10))
	require.NoError(t, err)
	require.NoError(t, l.Approve(LockedPrincipal, alice, e18(1)))

	_, err = l.Redeem(LockedPrincipal, LockedPrincipal, e18(1))
	assert.ErrorIs(t, err, ErrLockedAccount)
	_, err = l.Redeem(alice, LockedPrincipal, e18(1))
	assert.ErrorIs(t, err, ErrLockedAccount)
	assert.Zero(t, l.SharesOf(LockedPrincipal).Cmp(e18(1)))
}

func TestRedeem_TotalSharesNeverReachZero(t *testing.T) {
	l, _, _ := seededLedger(t)
	_, err := l.Mint(alice, alice, e18(10))
	require.NoError(t, err)

	// Redeem every share alice holds; the locked seed keeps the divisor
	// alive for the post-burn revaluation and for later conversions.
	_, err = l.Redeem(alice, alice, e18(10))
	require.NoError(t, err)

	assert.Positive(t, l.TotalShares().Sign())
	bal, err := l.BalanceOf(LockedPrincipal)
	require.NoError(t, err)
	assert.Zero(t, bal.Cmp(e18(1)))
	requireInvariant(t, l)
}

func TestRedeem_BeforeGenesis(t *testing.T) {
	l, _, _ := newTestLedger(t)
	_, err := l.Redeem(alice, alice, e18(1))
	assert.ErrorIs(t, err, ErrNotInitialized)
}

// ---------------------------------------------------------------------------
// Redeem — delegated path
// ---------------------------------------------------------------------------

func TestRedeem_WithAllowance(t *testing.T) {
	l, _, _ := seededLedger(t)
	_, err := l.Mint(alice, alice, e18(20))
	require.NoError(t, err)
	require.NoError(t, l.Approve(alice, bob, e18(8)))

	burned, err := l.Redeem(bob, alice, e18(8))
	require.NoError(t, err)
	assert.Zero(t, burned.Cmp(e18(8)))
	assert.Zero(t, l.SharesOf(alice).Cmp(e18(12)))
	assert.Zero(t, l.Allowance(alice, bob).Sign(), "allowance fully spent")
	requireInvariant(t, l)
}

func TestRedeem_AllowanceExceeded(t *testing.T) {
	l, _, _ := seededLedger(t)
	_, err := l.Mint(alice, alice, e18(20))
	require.NoError(t, err)
	require.NoError(t, l.Approve(alice, bob, e18(5)))

	_, err = l.Redeem(bob, alice, e18(6))
	assert.ErrorIs(t, err, ErrAllowanceExceeded)
	assert.Zero(t, l.SharesOf(alice).Cmp(e18(20)))
	assert.Zero(t, l.Allowance(alice, bob).Cmp(e18(5)))
}

// ---------------------------------------------------------------------------
// Redeem — push failure rollback
// ---------------------------------------------------------------------------

func TestRedeem_PushFailureRollsBack(t *testing.T) {
	l, res, _ := seededLedger(t)
	_, err := l.Mint(alice, alice, e18(20))
	require.NoError(t, err)

	res.pushErr = errors.New("depository rejected withdrawal")
	_, err = l.Redeem(alice, alice, e18(20))
	require.Error(t, err)
	assert.ErrorContains(t, err, "reserve push")

	// All effects undone: shares, totals, pool.
	assert.Zero(t, l.SharesOf(alice).Cmp(e18(20)))
	assert.Zero(t, l.TotalShares().Cmp(e18(21)))
	assert.Zero(t, res.pooled.Cmp(e18(21)))
	requireInvariant(t, l)
}

func TestRedeem_PushFailureRestoresAllowance(t *testing.T) {
	l, res, _ := seededLedger(t)
	_, err := l.Mint(alice, alice, e18(20))
	require.NoError(t, err)
	require.NoError(t, l.Approve(alice, bob, e18(10)))

	res.pushErr = errors.New("depository rejected withdrawal")
	_, err = l.Redeem(bob, alice, e18(10))
	require.Error(t, err)

	assert.Zero(t, l.Allowance(alice, bob).Cmp(e18(10)))
	assert.Zero(t, l.SharesOf(alice).Cmp(e18(20)))
	requireInvariant(t, l)
}

// ---------------------------------------------------------------------------
// Redeem — burn event dust accounting
// ---------------------------------------------------------------------------

func TestRedeem_BurnEventRecordsDust(t *testing.T) {
	res := newTestReserve()
	journal := NewMemoryJournal()
	l := NewLedger(selfAcc, res, NewGate(admin), journal, YieldExplicit)
	require.NoError(t, l.Initialize(admin, e18(1)))
	_, err := l.Mint(alice, alice, e18(100))
	require.NoError(t, err)
	_, err = l.DistributeYield(admin, e18(250))
	require.NoError(t, err)
	journal.Drain()

	bal, err := l.BalanceOf(alice)
	require.NoError(t, err)
	_, err = l.Redeem(alice, alice, bal)
	require.NoError(t, err)

	events := journal.Drain()
	require.Len(t, events, 1)
	burn, ok := events[0].(BurnEvent)
	require.True(t, ok)
	assert.Equal(t, alice, burn.Owner)
	assert.Zero(t, burn.PreTokens.Cmp(bal))
	assert.True(t, burn.PostTokens.Cmp(burn.PreTokens) <= 0,
		"rounding dust stays with the pool")
	assert.Zero(t, burn.SharesBurned.Cmp(num("99999999999999999999")))
}
