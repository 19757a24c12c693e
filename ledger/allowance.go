package ledger

import "math/big"

// Allowances are token-denominated, not share-denominated. This is a
// deliberate design choice: "spender can move up to X tokens" stays fixed
// across rebases, which means the allowance's purchasing power in shares
// drifts with the exchange rate between grant and use.

// Approve sets the spender's allowance from the owner to exactly tokens,
// overwriting any previous value. A zero amount revokes the allowance.
func (l *Ledger) Approve(owner, spender Principal, tokens *big.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if owner.IsZero() || spender.IsZero() {
		return ErrZeroPrincipal
	}
	if tokens == nil || tokens.Sign() < 0 {
		return ErrNegativeAmount
	}

	l.setAllowance(owner, spender, new(big.Int).Set(tokens))
	l.sink.Emit(ApprovalEvent{Owner: owner, Spender: spender, Allowance: new(big.Int).Set(tokens)})
	return nil
}

// IncreaseAllowance raises the spender's allowance by tokens.
func (l *Ledger) IncreaseAllowance(owner, spender Principal, tokens *big.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if owner.IsZero() || spender.IsZero() {
		return ErrZeroPrincipal
	}
	if err := checkAmount(tokens); err != nil {
		return err
	}

	next := new(big.Int).Add(l.allowance(owner, spender), tokens)
	l.setAllowance(owner, spender, next)
	l.sink.Emit(ApprovalEvent{Owner: owner, Spender: spender, Allowance: new(big.Int).Set(next)})
	return nil
}

// DecreaseAllowance lowers the spender's allowance by tokens. Fails with
// ErrAllowanceUnderflow rather than clamping at zero.
func (l *Ledger) DecreaseAllowance(owner, spender Principal, tokens *big.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if owner.IsZero() || spender.IsZero() {
		return ErrZeroPrincipal
	}
	if err := checkAmount(tokens); err != nil {
		return err
	}

	cur := l.allowance(owner, spender)
	if cur.Cmp(tokens) < 0 {
		return ErrAllowanceUnderflow
	}
	next := new(big.Int).Sub(cur, tokens)
	l.setAllowance(owner, spender, next)
	l.sink.Emit(ApprovalEvent{Owner: owner, Spender: spender, Allowance: new(big.Int).Set(next)})
	return nil
}

// Allowance returns the remaining token-denominated allowance.
func (l *Ledger) Allowance(owner, spender Principal) *big.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return new(big.Int).Set(l.allowance(owner, spender))
}

// ---------------------------------------------------------------------------
// Internal allowance bookkeeping. Requires l.mu held.
// ---------------------------------------------------------------------------

func (l *Ledger) allowance(owner, spender Principal) *big.Int {
	if m, ok := l.allowances[owner]; ok {
		if a, ok := m[spender]; ok {
			return a
		}
	}
	return new(big.Int)
}

func (l *Ledger) setAllowance(owner, spender Principal, tokens *big.Int) {
	m, ok := l.allowances[owner]
	if !ok {
		m = make(map[Principal]*big.Int)
		l.allowances[owner] = m
	}
	if tokens.Sign() == 0 {
		delete(m, spender)
		if len(m) == 0 {
			delete(l.allowances, owner)
		}
		return
	}
	m[spender] = tokens
}

// checkAllowance verifies the spender may move tokens on the owner's behalf.
func (l *Ledger) checkAllowance(owner, spender Principal, tokens *big.Int) error {
	if l.allowance(owner, spender).Cmp(tokens) < 0 {
		return ErrAllowanceExceeded
	}
	return nil
}

// spendAllowance reduces the allowance by tokens. The caller must have
// verified it with checkAllowance.
func (l *Ledger) spendAllowance(owner, spender Principal, tokens *big.Int) {
	next := new(big.Int).Sub(l.allowance(owner, spender), tokens)
	l.setAllowance(owner, spender, next)
}

// restoreAllowance reverses spendAllowance during a rollback.
func (l *Ledger) restoreAllowance(owner, spender Principal, tokens *big.Int) {
	next := new(big.Int).Add(l.allowance(owner, spender), tokens)
	l.setAllowance(owner, spender, next)
}
