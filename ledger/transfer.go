package ledger

import "math/big"

// BalanceOf returns the token-denominated balance of an account: its share
// balance converted at the live exchange rate. Read-only; works while
// paused.
func (l *Ledger) BalanceOf(p Principal) (*big.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.initialized {
		return nil, ErrNotInitialized
	}
	value, err := l.reserveValue()
	if err != nil {
		return nil, err
	}
	return l.tokensForShares(l.sharesOf(p), value)
}

// Transfer moves tokens from one account to another by converting the
// token amount to shares once and moving those shares.
//
// Returns the number of shares moved.
func (l *Ledger) Transfer(from, to Principal, tokens *big.Int) (*big.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.transferTokens(from, to, tokens)
}

// TransferFrom is Transfer on behalf of the owner: the spender's
// token-denominated allowance from the owner is reduced by the amount.
//
// Returns the number of shares moved.
func (l *Ledger) TransferFrom(spender, from, to Principal, tokens *big.Int) (*big.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if spender.IsZero() {
		return nil, ErrZeroPrincipal
	}
	if err := l.checkAllowance(from, spender, tokens); err != nil {
		return nil, err
	}
	shares, err := l.transferTokens(from, to, tokens)
	if err != nil {
		return nil, err
	}
	l.spendAllowance(from, spender, tokens)
	return shares, nil
}

// TransferShares moves a share-denominated amount directly, with no token
// conversion. This is the primitive Transfer is built on; companion
// contracts use it to avoid rounding loss from a double conversion.
//
// Returns the token equivalent of the shares moved, at the current rate.
func (l *Ledger) TransferShares(from, to Principal, shares *big.Int) (*big.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.transferShares(from, to, shares)
}

// TransferSharesFrom is TransferShares on behalf of the owner. The
// allowance spent is the token equivalent of the shares at the current
// rate, since allowances are token-denominated.
//
// Returns the token equivalent of the shares moved.
func (l *Ledger) TransferSharesFrom(spender, from, to Principal, shares *big.Int) (*big.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if spender.IsZero() {
		return nil, ErrZeroPrincipal
	}
	if !l.initialized {
		return nil, ErrNotInitialized
	}
	if err := checkAmount(shares); err != nil {
		return nil, err
	}
	value, err := l.reserveValue()
	if err != nil {
		return nil, err
	}
	tokens, err := l.tokensForShares(shares, value)
	if err != nil {
		return nil, err
	}
	if err := l.checkAllowance(from, spender, tokens); err != nil {
		return nil, err
	}
	if err := l.moveShares(from, to, shares); err != nil {
		return nil, err
	}
	l.spendAllowance(from, spender, tokens)

	l.sink.Emit(TransferEvent{From: from, To: to, Tokens: new(big.Int).Set(tokens)})
	l.sink.Emit(TransferSharesEvent{From: from, To: to, Shares: new(big.Int).Set(shares)})
	return tokens, nil
}

// transferTokens converts tokens to shares and moves them. Requires l.mu held.
func (l *Ledger) transferTokens(from, to Principal, tokens *big.Int) (*big.Int, error) {
	if !l.initialized {
		return nil, ErrNotInitialized
	}
	if err := checkAmount(tokens); err != nil {
		return nil, err
	}
	value, err := l.reserveValue()
	if err != nil {
		return nil, err
	}
	shares, err := l.sharesForTokens(tokens, value)
	if err != nil {
		return nil, err
	}
	if shares.Sign() == 0 {
		// Dust below one share must be rejected, not dropped: a
		// "successful" transfer that moved nothing would mislead callers.
		return nil, ErrTransferZeroShares
	}
	if err := l.moveShares(from, to, shares); err != nil {
		return nil, err
	}

	l.sink.Emit(TransferEvent{From: from, To: to, Tokens: new(big.Int).Set(tokens)})
	l.sink.Emit(TransferSharesEvent{From: from, To: to, Shares: new(big.Int).Set(shares)})
	return new(big.Int).Set(shares), nil
}

// transferShares moves shares and emits both events. Requires l.mu held.
func (l *Ledger) transferShares(from, to Principal, shares *big.Int) (*big.Int, error) {
	if !l.initialized {
		return nil, ErrNotInitialized
	}
	if err := checkAmount(shares); err != nil {
		return nil, err
	}
	value, err := l.reserveValue()
	if err != nil {
		return nil, err
	}
	tokens, err := l.tokensForShares(shares, value)
	if err != nil {
		return nil, err
	}
	if err := l.moveShares(from, to, shares); err != nil {
		return nil, err
	}

	l.sink.Emit(TransferEvent{From: from, To: to, Tokens: tokens})
	l.sink.Emit(TransferSharesEvent{From: from, To: to, Shares: new(big.Int).Set(shares)})
	return new(big.Int).Set(tokens), nil
}

// moveShares validates principals and balance, then moves shares without
// touching the total. Requires l.mu held.
func (l *Ledger) moveShares(from, to Principal, shares *big.Int) error {
	if from.IsZero() || to.IsZero() {
		return ErrZeroPrincipal
	}
	if from == LockedPrincipal {
		// The genesis seed shares keep totalShares above zero forever;
		// letting them out would let a full redeem zero the divisor.
		return ErrLockedAccount
	}
	if to == l.self {
		return ErrTransferToSelf
	}
	fromBal, ok := l.shares[from]
	if !ok || fromBal.Cmp(shares) < 0 {
		return ErrBalanceExceeded
	}

	fromBal.Sub(fromBal, shares)
	toBal, ok := l.shares[to]
	if !ok {
		toBal = new(big.Int)
		l.shares[to] = toBal
	}
	toBal.Add(toBal, shares)
	return nil
}
