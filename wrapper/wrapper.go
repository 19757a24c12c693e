package wrapper

import (
	"math/big"
	"sync"

	"github.com/rebaseorg/librebase-go/ledger"
)

// SharesLedger is the slice of the rebasing ledger the wrapper needs:
// the share-transfer primitives and the conversion views.
type SharesLedger interface {
	TransferShares(from, to ledger.Principal, shares *big.Int) (*big.Int, error)
	TransferSharesFrom(spender, from, to ledger.Principal, shares *big.Int) (*big.Int, error)
	SharesForTokens(tokens *big.Int) (*big.Int, error)
	TokensForShares(shares *big.Int) (*big.Int, error)
}

// Wrapper tracks fixed-unit balances backed one-to-one by ledger shares
// held in the wrapper's own ledger account. Holders must approve the
// wrapper's principal on the ledger before wrapping.
type Wrapper struct {
	mu sync.Mutex

	ledger SharesLedger

	// self is the wrapper's ledger account, custodian of all wrapped shares.
	self ledger.Principal

	totalUnits *big.Int
	balances   map[ledger.Principal]*big.Int
}

// New creates a wrapper custodied by the given ledger principal.
func New(l SharesLedger, self ledger.Principal) *Wrapper {
	return &Wrapper{
		ledger:     l,
		self:       self,
		totalUnits: new(big.Int),
		balances:   make(map[ledger.Principal]*big.Int),
	}
}

// Self returns the wrapper's custodial ledger principal.
func (w *Wrapper) Self() ledger.Principal {
	return w.self
}

// TotalUnits returns the total wrapped units outstanding.
func (w *Wrapper) TotalUnits() *big.Int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return new(big.Int).Set(w.totalUnits)
}

// UnitsOf returns a holder's wrapped balance.
func (w *Wrapper) UnitsOf(p ledger.Principal) *big.Int {
	w.mu.Lock()
	defer w.mu.Unlock()
	if b, ok := w.balances[p]; ok {
		return new(big.Int).Set(b)
	}
	return new(big.Int)
}

// Wrap converts the caller's tokens into wrapped units. The token amount
// is converted to shares once, on the ledger, and those shares are pulled
// into custody via the caller's allowance to the wrapper.
//
// Returns the units credited (equal to the shares moved).
func (w *Wrapper) Wrap(caller ledger.Principal, tokens *big.Int) (*big.Int, error) {
	if caller.IsZero() {
		return nil, ErrZeroPrincipal
	}
	if tokens == nil || tokens.Sign() <= 0 {
		return nil, ErrZeroAmount
	}

	shares, err := w.ledger.SharesForTokens(tokens)
	if err != nil {
		return nil, err
	}
	return w.wrapShares(caller, shares)
}

// WrapShares converts an exact share amount into wrapped units, skipping
// the token conversion entirely.
func (w *Wrapper) WrapShares(caller ledger.Principal, shares *big.Int) (*big.Int, error) {
	if caller.IsZero() {
		return nil, ErrZeroPrincipal
	}
	return w.wrapShares(caller, shares)
}

// Unwrap burns the caller's wrapped units and returns the backing shares
// to the caller's ledger account.
//
// Returns the token value of the released shares at the current rate.
func (w *Wrapper) Unwrap(caller ledger.Principal, units *big.Int) (*big.Int, error) {
	if caller.IsZero() {
		return nil, ErrZeroPrincipal
	}
	if units == nil || units.Sign() <= 0 {
		return nil, ErrZeroAmount
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	bal, ok := w.balances[caller]
	if !ok || bal.Cmp(units) < 0 {
		return nil, ErrBalanceExceeded
	}

	tokens, err := w.ledger.TransferShares(w.self, caller, units)
	if err != nil {
		return nil, err
	}

	bal.Sub(bal, units)
	w.totalUnits.Sub(w.totalUnits, units)
	return tokens, nil
}

// UnitsForTokens returns how many wrapped units a token amount is worth
// at the current rate.
func (w *Wrapper) UnitsForTokens(tokens *big.Int) (*big.Int, error) {
	return w.ledger.SharesForTokens(tokens)
}

// TokensForUnits returns the token value of a wrapped unit amount at the
// current rate.
func (w *Wrapper) TokensForUnits(units *big.Int) (*big.Int, error) {
	return w.ledger.TokensForShares(units)
}

func (w *Wrapper) wrapShares(caller ledger.Principal, shares *big.Int) (*big.Int, error) {
	if shares == nil || shares.Sign() <= 0 {
		return nil, ErrZeroAmount
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.ledger.TransferSharesFrom(w.self, caller, w.self, shares); err != nil {
		return nil, err
	}

	bal, ok := w.balances[caller]
	if !ok {
		bal = new(big.Int)
		w.balances[caller] = bal
	}
	bal.Add(bal, shares)
	w.totalUnits.Add(w.totalUnits, shares)
	return new(big.Int).Set(shares), nil
}
