package reserve

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/rebaseorg/librebase-go/ledger"
)

// Memory is an in-memory Reserve: a bank of external per-principal
// balances plus the pooled value itself. It backs the ledger in tests and
// single-process deployments.
//
// An optional pull fee models a fee-on-transfer asset: PullIn then
// delivers less than requested, which the ledger rejects.
type Memory struct {
	mu       sync.Mutex
	pooled   *big.Int
	balances map[ledger.Principal]*big.Int
	pullFee  *big.Int
}

// Compile-time interface check.
var _ ledger.Reserve = (*Memory)(nil)

// NewMemory creates an empty reserve.
func NewMemory() *Memory {
	return &Memory{
		pooled:   new(big.Int),
		balances: make(map[ledger.Principal]*big.Int),
	}
}

// Credit funds a principal's external balance, making it available for
// pulls into the pool.
func (m *Memory) Credit(p ledger.Principal, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return ErrNegativeAmount
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.credit(p, amount)
	return nil
}

// Deposit adds value straight to the pool, bypassing any principal.
// This is how passive yield arrives: no ledger call, just a larger
// reported value on the next read.
func (m *Memory) Deposit(amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return ErrNegativeAmount
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pooled.Add(m.pooled, amount)
	return nil
}

// SetPullFee makes every subsequent PullIn deliver fee less than
// requested. Pass nil to clear.
func (m *Memory) SetPullFee(fee *big.Int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if fee == nil || fee.Sign() == 0 {
		m.pullFee = nil
		return
	}
	m.pullFee = new(big.Int).Set(fee)
}

// BalanceOf returns a principal's external (non-pooled) balance.
func (m *Memory) BalanceOf(p ledger.Principal) *big.Int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if b, ok := m.balances[p]; ok {
		return new(big.Int).Set(b)
	}
	return new(big.Int)
}

// CurrentValue returns the pooled value.
func (m *Memory) CurrentValue() (*big.Int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return new(big.Int).Set(m.pooled), nil
}

// PullIn moves amount from the principal's external balance into the pool
// and returns the amount actually received (less any configured fee).
func (m *Memory) PullIn(from ledger.Principal, amount *big.Int) (*big.Int, error) {
	if amount == nil || amount.Sign() < 0 {
		return nil, ErrNegativeAmount
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	bal, ok := m.balances[from]
	if !ok || bal.Cmp(amount) < 0 {
		return nil, fmt.Errorf("%w: principal %s", ErrInsufficientFunds, from)
	}
	bal.Sub(bal, amount)

	received := new(big.Int).Set(amount)
	if m.pullFee != nil {
		received.Sub(received, m.pullFee)
		if received.Sign() < 0 {
			received.SetInt64(0)
		}
	}
	m.pooled.Add(m.pooled, received)
	return received, nil
}

// PushOut moves amount from the pool to the principal's external balance.
func (m *Memory) PushOut(to ledger.Principal, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return ErrNegativeAmount
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pooled.Cmp(amount) < 0 {
		return fmt.Errorf("%w: pooled %s, requested %s", ErrReserveDrained, m.pooled, amount)
	}
	m.pooled.Sub(m.pooled, amount)
	m.credit(to, amount)
	return nil
}

// credit adds to a principal's external balance. Requires m.mu held.
func (m *Memory) credit(p ledger.Principal, amount *big.Int) {
	b, ok := m.balances[p]
	if !ok {
		b = new(big.Int)
		m.balances[p] = b
	}
	b.Add(b, amount)
}
