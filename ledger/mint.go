package ledger

import "math/big"

// Initialize performs genesis: it pulls seedTokens from the caller into
// the reserve and assigns the matching share count to the locked account,
// fixing the initial exchange rate at one token per share. One-time.
func (l *Ledger) Initialize(caller Principal, seedTokens *big.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.initialized {
		return ErrAlreadyInitialized
	}
	if caller.IsZero() {
		return ErrZeroPrincipal
	}
	if seedTokens == nil || seedTokens.Sign() < 0 {
		return ErrNegativeAmount
	}
	if seedTokens.Cmp(MinSeedTokens) < 0 {
		return ErrInvalidAmount
	}

	if err := l.pullExact(caller, seedTokens); err != nil {
		return err
	}

	seed := new(big.Int).Set(seedTokens)
	l.creditShares(LockedPrincipal, seed)
	l.initialized = true

	l.sink.Emit(MintEvent{To: LockedPrincipal, Tokens: new(big.Int).Set(seed), Shares: new(big.Int).Set(seed)})
	l.sink.Emit(TransferSharesEvent{From: ZeroPrincipal, To: LockedPrincipal, Shares: new(big.Int).Set(seed)})
	return nil
}

// Mint deposits tokens from the caller into the reserve and credits the
// recipient with shares at the pre-deposit exchange rate. Computing the
// rate before the pull is load-bearing: converting against the post-pull
// reserve value would short the depositor of their fair share.
//
// Returns the number of shares minted.
func (l *Ledger) Mint(caller, recipient Principal, tokens *big.Int) (*big.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.initialized {
		return nil, ErrNotInitialized
	}
	if err := checkAmount(tokens); err != nil {
		return nil, err
	}
	if recipient.IsZero() {
		return nil, ErrZeroRecipient
	}
	if caller.IsZero() {
		return nil, ErrZeroPrincipal
	}
	if l.gate.IsPaused() {
		return nil, ErrPaused
	}

	preValue, err := l.reserveValue()
	if err != nil {
		return nil, err
	}
	newShares, err := l.sharesForTokens(tokens, preValue)
	if err != nil {
		return nil, err
	}

	if err := l.pullExact(caller, tokens); err != nil {
		return nil, err
	}

	l.creditShares(recipient, newShares)

	l.sink.Emit(MintEvent{To: recipient, Tokens: new(big.Int).Set(tokens), Shares: new(big.Int).Set(newShares)})
	l.sink.Emit(TransferSharesEvent{From: ZeroPrincipal, To: recipient, Shares: new(big.Int).Set(newShares)})
	return new(big.Int).Set(newShares), nil
}
