package ledger

import (
	"fmt"
	"math/big"
)

// Redeem burns the owner's shares equivalent to tokens at the current rate
// and pushes that token amount out of the reserve to the caller. A caller
// other than the owner spends a token-denominated allowance.
//
// All ledger mutation commits before the outbound reserve call
// (check-effects-interactions); if the push then fails, the mutation is
// rolled back so the operation stays all-or-nothing.
//
// Returns the number of shares burned.
func (l *Ledger) Redeem(caller, owner Principal, tokens *big.Int) (*big.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.initialized {
		return nil, ErrNotInitialized
	}
	if err := checkAmount(tokens); err != nil {
		return nil, err
	}
	if caller.IsZero() || owner.IsZero() {
		return nil, ErrZeroPrincipal
	}
	if owner == LockedPrincipal {
		return nil, ErrLockedAccount
	}
	if l.gate.IsPaused() {
		return nil, ErrPaused
	}

	value, err := l.reserveValue()
	if err != nil {
		return nil, err
	}
	sharesToBurn, err := l.sharesForTokens(tokens, value)
	if err != nil {
		return nil, err
	}
	if sharesToBurn.Cmp(l.sharesOf(owner)) > 0 {
		return nil, ErrBalanceExceeded
	}
	if caller != owner {
		if err := l.checkAllowance(owner, caller, tokens); err != nil {
			return nil, err
		}
	}

	// Effects: owner shares, total shares, and allowance move together.
	l.debitShares(owner, sharesToBurn)
	if caller != owner {
		l.spendAllowance(owner, caller, tokens)
	}

	// PostTokens revalues the burned shares at the post-burn rate
	// (reserve down by tokens, totals down by sharesToBurn); the delta
	// against PreTokens is the rounding dust kept by the pool.
	postValue := new(big.Int).Sub(value, tokens)
	postTokens := mulDiv(sharesToBurn, postValue, l.totalShares)

	// Interaction: external push after state commit. A reentrant call
	// through the reserve observes only post-burn state.
	if err := l.reserve.PushOut(caller, tokens); err != nil {
		l.creditShares(owner, sharesToBurn)
		if caller != owner {
			l.restoreAllowance(owner, caller, tokens)
		}
		return nil, fmt.Errorf("ledger: reserve push: %w", err)
	}

	l.sink.Emit(BurnEvent{
		Owner:        owner,
		PreTokens:    new(big.Int).Set(tokens),
		PostTokens:   postTokens,
		SharesBurned: new(big.Int).Set(sharesToBurn),
	})
	return new(big.Int).Set(sharesToBurn), nil
}
