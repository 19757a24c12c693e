package ledger

import "math/big"

// DistributeYield pulls amount of value from the caller into the reserve
// without minting any shares, which raises the token value of every
// existing share. Privileged callers only. This is the sole rate-increase
// mechanism under the YieldExplicit policy; under YieldPassive the call is
// rejected and yield accrues by value landing in the reserve directly.
//
// Returns the new total pooled value.
func (l *Ledger) DistributeYield(caller Principal, amount *big.Int) (*big.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.initialized {
		return nil, ErrNotInitialized
	}
	if l.policy == YieldPassive {
		return nil, ErrPassiveAccrual
	}
	if err := l.gate.RequirePrivileged(caller); err != nil {
		return nil, err
	}
	if l.gate.IsPaused() {
		return nil, ErrPaused
	}
	if err := checkAmount(amount); err != nil {
		return nil, err
	}

	prev, err := l.reserveValue()
	if err != nil {
		return nil, err
	}
	if err := l.pullExact(caller, amount); err != nil {
		return nil, err
	}
	next := new(big.Int).Add(prev, amount)

	l.sink.Emit(YieldDistributedEvent{PrevValue: new(big.Int).Set(prev), NewValue: new(big.Int).Set(next)})
	return next, nil
}
