package ledger

import (
	"fmt"
	"math/big"
	"sync"
)

// YieldPolicy selects how yield reaches the pool.
type YieldPolicy int

const (
	// YieldExplicit (default): yield enters only through DistributeYield,
	// called by the privileged principal.
	YieldExplicit YieldPolicy = iota

	// YieldPassive: yield accrues by value landing in the reserve directly;
	// DistributeYield is rejected so the two policies cannot be mixed.
	YieldPassive
)

// MinSeedTokens is the protocol-fixed minimum genesis deposit: one base
// unit of the reserve's denomination.
var MinSeedTokens = big.NewInt(1)

// Ledger owns the rebasing ledger state: every account's share balance,
// every token-denominated allowance, and the total share count. Pooled
// value is not stored here; it is read live from the Reserve.
//
// One mutex serializes all operations, reproducing the single logical
// thread of execution the accounting model assumes. No other component
// may write shares or totals.
type Ledger struct {
	mu sync.Mutex

	reserve Reserve
	gate    AccessGate
	sink    EventSink

	// self is the ledger's own principal; transfers addressed to it are
	// rejected, as tokens sent there would be irrecoverable.
	self   Principal
	policy YieldPolicy

	initialized bool
	totalShares *big.Int
	shares      map[Principal]*big.Int
	allowances  map[Principal]map[Principal]*big.Int
}

// NewLedger creates an empty, uninitialized ledger. A nil sink discards
// events. The zero YieldPolicy is YieldExplicit.
func NewLedger(self Principal, reserve Reserve, gate AccessGate, sink EventSink, policy YieldPolicy) *Ledger {
	if sink == nil {
		sink = nopSink{}
	}
	return &Ledger{
		reserve:     reserve,
		gate:        gate,
		sink:        sink,
		self:        self,
		policy:      policy,
		totalShares: new(big.Int),
		shares:      make(map[Principal]*big.Int),
		allowances:  make(map[Principal]map[Principal]*big.Int),
	}
}

// Self returns the ledger's own principal.
func (l *Ledger) Self() Principal {
	return l.self
}

// Policy returns the configured yield accrual policy.
func (l *Ledger) Policy() YieldPolicy {
	return l.policy
}

// Initialized reports whether genesis has completed.
func (l *Ledger) Initialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.initialized
}

// TotalShares returns the total number of shares issued.
func (l *Ledger) TotalShares() *big.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return new(big.Int).Set(l.totalShares)
}

// TotalPooledValue returns the reserve's current reported balance. This is
// also the ledger's total token supply.
func (l *Ledger) TotalPooledValue() (*big.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reserveValue()
}

// TotalSupply is the token-denominated supply, which for a rebasing ledger
// is exactly the pooled value.
func (l *Ledger) TotalSupply() (*big.Int, error) {
	return l.TotalPooledValue()
}

// SharesOf returns the share balance of an account. Accounts are created
// implicitly on first credit; unknown accounts hold zero shares.
func (l *Ledger) SharesOf(p Principal) *big.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return new(big.Int).Set(l.sharesOf(p))
}

// ---------------------------------------------------------------------------
// Internal state access. All helpers below require l.mu held.
// ---------------------------------------------------------------------------

// reserveValue reads the live pooled value from the Reserve.
func (l *Ledger) reserveValue() (*big.Int, error) {
	v, err := l.reserve.CurrentValue()
	if err != nil {
		return nil, fmt.Errorf("ledger: reserve value: %w", err)
	}
	return v, nil
}

// sharesOf returns the stored share balance, zero for unknown accounts.
// The returned value must not be mutated by callers outside credit/debit.
func (l *Ledger) sharesOf(p Principal) *big.Int {
	if s, ok := l.shares[p]; ok {
		return s
	}
	return new(big.Int)
}

// creditShares adds amount to an account and to the total, atomically.
func (l *Ledger) creditShares(p Principal, amount *big.Int) {
	s, ok := l.shares[p]
	if !ok {
		s = new(big.Int)
		l.shares[p] = s
	}
	s.Add(s, amount)
	l.totalShares.Add(l.totalShares, amount)
}

// debitShares removes amount from an account and from the total, atomically.
// The caller must have verified the balance.
func (l *Ledger) debitShares(p Principal, amount *big.Int) {
	s := l.shares[p]
	s.Sub(s, amount)
	l.totalShares.Sub(l.totalShares, amount)
}

// pullExact pulls amount into the reserve and verifies the exact amount
// arrived. A mismatch signals a fee-on-transfer asset, which this design
// does not support.
func (l *Ledger) pullExact(from Principal, amount *big.Int) error {
	received, err := l.reserve.PullIn(from, amount)
	if err != nil {
		return fmt.Errorf("ledger: reserve pull: %w", err)
	}
	if received.Cmp(amount) != 0 {
		return fmt.Errorf("%w: requested %s, received %s", ErrTransferMismatch, amount, received)
	}
	return nil
}

// checkAmount validates a positive amount argument.
func checkAmount(a *big.Int) error {
	if a == nil || a.Sign() == 0 {
		return ErrAmountZero
	}
	if a.Sign() < 0 {
		return ErrNegativeAmount
	}
	return nil
}
