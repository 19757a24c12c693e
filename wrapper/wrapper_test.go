package wrapper

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rebaseorg/librebase-go/ledger"
	"github.com/rebaseorg/librebase-go/reserve"
)

var (
	admin    = prin(0xAA)
	alice    = prin(0x01)
	bob      = prin(0x02)
	wrapAcct = prin(0x77)
)

func prin(b byte) ledger.Principal {
	var p ledger.Principal
	p[0] = b
	return p
}

// harness wires a funded ledger to a wrapper. Alice starts with 400
// tokens minted and a standing allowance to the wrapper.
type harness struct {
	ledger  *ledger.Ledger
	reserve *reserve.Memory
	wrapper *Wrapper
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	res := reserve.NewMemory()
	require.NoError(t, res.Credit(admin, big.NewInt(10000)))
	require.NoError(t, res.Credit(alice, big.NewInt(10000)))

	l := ledger.NewLedger(prin(0x5E), res, ledger.NewGate(admin), nil, ledger.YieldExplicit)
	require.NoError(t, l.Initialize(admin, big.NewInt(100)))
	_, err := l.Mint(alice, alice, big.NewInt(400))
	require.NoError(t, err)

	w := New(l, wrapAcct)
	require.NoError(t, l.Approve(alice, wrapAcct, big.NewInt(10000)))

	return &harness{ledger: l, reserve: res, wrapper: w}
}

// ---------------------------------------------------------------------------
// Wrap / Unwrap
// ---------------------------------------------------------------------------

func TestWrap_AtPar(t *testing.T) {
	h := newHarness(t)

	units, err := h.wrapper.Wrap(alice, big.NewInt(100))
	require.NoError(t, err)

	// 1:1 rate: 100 tokens = 100 shares = 100 units.
	assert.Zero(t, units.Cmp(big.NewInt(100)))
	assert.Zero(t, h.wrapper.UnitsOf(alice).Cmp(big.NewInt(100)))
	assert.Zero(t, h.wrapper.TotalUnits().Cmp(big.NewInt(100)))
	assert.Zero(t, h.ledger.SharesOf(wrapAcct).Cmp(big.NewInt(100)))
	assert.Zero(t, h.ledger.SharesOf(alice).Cmp(big.NewInt(300)))
}

func TestWrap_RequiresAllowance(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.ledger.Approve(alice, wrapAcct, big.NewInt(0)))

	_, err := h.wrapper.Wrap(alice, big.NewInt(100))
	assert.ErrorIs(t, err, ledger.ErrAllowanceExceeded)
	assert.Zero(t, h.wrapper.UnitsOf(alice).Sign())
}

func TestWrap_Errors(t *testing.T) {
	h := newHarness(t)

	_, err := h.wrapper.Wrap(ledger.ZeroPrincipal, big.NewInt(1))
	assert.ErrorIs(t, err, ErrZeroPrincipal)

	_, err = h.wrapper.Wrap(alice, big.NewInt(0))
	assert.ErrorIs(t, err, ErrZeroAmount)

	_, err = h.wrapper.Wrap(alice, nil)
	assert.ErrorIs(t, err, ErrZeroAmount)
}

func TestUnwrap_ReturnsShares(t *testing.T) {
	h := newHarness(t)
	_, err := h.wrapper.Wrap(alice, big.NewInt(100))
	require.NoError(t, err)

	tokens, err := h.wrapper.Unwrap(alice, big.NewInt(40))
	require.NoError(t, err)

	assert.Zero(t, tokens.Cmp(big.NewInt(40)))
	assert.Zero(t, h.wrapper.UnitsOf(alice).Cmp(big.NewInt(60)))
	assert.Zero(t, h.wrapper.TotalUnits().Cmp(big.NewInt(60)))
	assert.Zero(t, h.ledger.SharesOf(alice).Cmp(big.NewInt(340)))
}

func TestUnwrap_BalanceExceeded(t *testing.T) {
	h := newHarness(t)
	_, err := h.wrapper.Wrap(alice, big.NewInt(50))
	require.NoError(t, err)

	_, err = h.wrapper.Unwrap(alice, big.NewInt(51))
	assert.ErrorIs(t, err, ErrBalanceExceeded)

	_, err = h.wrapper.Unwrap(bob, big.NewInt(1))
	assert.ErrorIs(t, err, ErrBalanceExceeded)
}

// ---------------------------------------------------------------------------
// Rebase behavior — the whole point of wrapping
// ---------------------------------------------------------------------------

func TestWrappedUnits_StableAcrossRebase(t *testing.T) {
	h := newHarness(t)
	_, err := h.wrapper.Wrap(alice, big.NewInt(100))
	require.NoError(t, err)

	// Double the pool: token balances rebase, wrapped units do not.
	_, err = h.ledger.DistributeYield(admin, big.NewInt(500))
	require.NoError(t, err)

	assert.Zero(t, h.wrapper.UnitsOf(alice).Cmp(big.NewInt(100)))

	// But the token value of those units doubled.
	tokens, err := h.wrapper.TokensForUnits(big.NewInt(100))
	require.NoError(t, err)
	assert.Zero(t, tokens.Cmp(big.NewInt(200)))
}

func TestUnwrap_AfterYield_PaysAppreciatedValue(t *testing.T) {
	h := newHarness(t)
	_, err := h.wrapper.Wrap(alice, big.NewInt(100))
	require.NoError(t, err)

	_, err = h.ledger.DistributeYield(admin, big.NewInt(500))
	require.NoError(t, err)

	tokens, err := h.wrapper.Unwrap(alice, big.NewInt(100))
	require.NoError(t, err)
	assert.Zero(t, tokens.Cmp(big.NewInt(200)))
	assert.Zero(t, h.ledger.SharesOf(alice).Cmp(big.NewInt(400)))
}

func TestWrapShares_SkipsTokenConversion(t *testing.T) {
	h := newHarness(t)

	// Make the rate awkward so a token round trip would lose a unit.
	require.NoError(t, h.reserve.Deposit(big.NewInt(123)))

	units, err := h.wrapper.WrapShares(alice, big.NewInt(77))
	require.NoError(t, err)
	assert.Zero(t, units.Cmp(big.NewInt(77)), "share path moves the exact share count")
	assert.Zero(t, h.ledger.SharesOf(wrapAcct).Cmp(big.NewInt(77)))
}

func TestUnitsForTokens_MatchesLedgerConversion(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.reserve.Deposit(big.NewInt(500)))

	want, err := h.ledger.SharesForTokens(big.NewInt(100))
	require.NoError(t, err)
	got, err := h.wrapper.UnitsForTokens(big.NewInt(100))
	require.NoError(t, err)
	assert.Zero(t, got.Cmp(want))
}

func TestWrapper_Self(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, wrapAcct, h.wrapper.Self())
}
