package ledger

import "math/big"

// mulDiv returns floor(x * y / d). The full-width intermediate product
// never overflows; all rounding loss favours the pool.
func mulDiv(x, y, d *big.Int) *big.Int {
	p := new(big.Int).Mul(x, y)
	return p.Div(p, d)
}

// TokensForShares converts a share count to its current token value:
// floor(shares * pooledValue / totalShares). Read-only.
func (l *Ledger) TokensForShares(shares *big.Int) (*big.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	value, err := l.reserveValue()
	if err != nil {
		return nil, err
	}
	return l.tokensForShares(shares, value)
}

// SharesForTokens converts a token amount to shares at the current rate:
// floor(tokens * totalShares / pooledValue). Read-only.
func (l *Ledger) SharesForTokens(tokens *big.Int) (*big.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	value, err := l.reserveValue()
	if err != nil {
		return nil, err
	}
	return l.sharesForTokens(tokens, value)
}

// tokensForShares converts shares to tokens at the rate implied by the
// given pooled value. Requires l.mu held.
func (l *Ledger) tokensForShares(shares, pooledValue *big.Int) (*big.Int, error) {
	if shares == nil || shares.Sign() < 0 {
		return nil, ErrNegativeAmount
	}
	if l.totalShares.Sign() == 0 {
		return nil, ErrZeroTotalShares
	}
	return mulDiv(shares, pooledValue, l.totalShares), nil
}

// sharesForTokens converts tokens to shares at the rate implied by the
// given pooled value. Requires l.mu held.
func (l *Ledger) sharesForTokens(tokens, pooledValue *big.Int) (*big.Int, error) {
	if tokens == nil || tokens.Sign() < 0 {
		return nil, ErrNegativeAmount
	}
	if l.totalShares.Sign() == 0 {
		return nil, ErrZeroTotalShares
	}
	if pooledValue.Sign() == 0 {
		return nil, ErrZeroReserve
	}
	return mulDiv(tokens, l.totalShares, pooledValue), nil
}
