package ledger

import "math/big"

// Snapshot is a deep copy of the ledger's durable state: the per-account
// shares map, the allowance map, the total share count, and the genesis
// flag. This is the complete persisted layout; pooled value lives in the
// Reserve and is never part of a snapshot.
type Snapshot struct {
	Initialized bool
	TotalShares *big.Int
	Shares      map[Principal]*big.Int
	Allowances  map[Principal]map[Principal]*big.Int
}

// StateStore persists ledger snapshots.
type StateStore interface {
	// Save replaces the stored snapshot.
	Save(*Snapshot) error

	// Load returns the stored snapshot, or ErrSnapshotNotFound.
	Load() (*Snapshot, error)
}

// Snapshot returns a deep copy of the ledger's durable state.
func (l *Ledger) Snapshot() *Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	shares := make(map[Principal]*big.Int, len(l.shares))
	for p, s := range l.shares {
		shares[p] = new(big.Int).Set(s)
	}
	allowances := make(map[Principal]map[Principal]*big.Int, len(l.allowances))
	for owner, m := range l.allowances {
		inner := make(map[Principal]*big.Int, len(m))
		for spender, a := range m {
			inner[spender] = new(big.Int).Set(a)
		}
		allowances[owner] = inner
	}
	return &Snapshot{
		Initialized: l.initialized,
		TotalShares: new(big.Int).Set(l.totalShares),
		Shares:      shares,
		Allowances:  allowances,
	}
}

// Restore replaces the ledger's durable state with a snapshot. The
// snapshot's share sum must equal its recorded total exactly; anything
// else means the stored state violated the core invariant.
func (l *Ledger) Restore(s *Snapshot) error {
	if s == nil || s.TotalShares == nil {
		return ErrCorruptSnapshot
	}
	sum := new(big.Int)
	for _, v := range s.Shares {
		if v == nil || v.Sign() < 0 {
			return ErrCorruptSnapshot
		}
		sum.Add(sum, v)
	}
	if sum.Cmp(s.TotalShares) != 0 {
		return ErrCorruptSnapshot
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.initialized = s.Initialized
	l.totalShares = new(big.Int).Set(s.TotalShares)
	l.shares = make(map[Principal]*big.Int, len(s.Shares))
	for p, v := range s.Shares {
		if v.Sign() == 0 {
			continue
		}
		l.shares[p] = new(big.Int).Set(v)
	}
	l.allowances = make(map[Principal]map[Principal]*big.Int, len(s.Allowances))
	for owner, m := range s.Allowances {
		inner := make(map[Principal]*big.Int, len(m))
		for spender, a := range m {
			if a == nil || a.Sign() <= 0 {
				continue
			}
			inner[spender] = new(big.Int).Set(a)
		}
		if len(inner) > 0 {
			l.allowances[owner] = inner
		}
	}
	return nil
}
