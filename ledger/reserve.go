package ledger

import "math/big"

// Reserve is the external holder of the pool's actual value. Its reported
// balance is the single source of truth for pooled value; the ledger reads
// it at most once per operation and never caches it across operations, so
// value arriving in the reserve outside the ledger's control (passive
// yield) is reflected in the exchange rate immediately.
type Reserve interface {
	// CurrentValue returns the reserve's total held value.
	CurrentValue() (*big.Int, error)

	// PullIn moves amount of value from the given principal into the
	// reserve and returns the amount actually received. The ledger aborts
	// the surrounding operation if the received amount differs from the
	// requested one (fee-on-transfer assets are unsupported).
	PullIn(from Principal, amount *big.Int) (*big.Int, error)

	// PushOut moves amount of value out of the reserve to the given
	// principal.
	PushOut(to Principal, amount *big.Int) error
}

// AccessGate supplies the pause flag and privileged-caller predicate used
// to gate mint/redeem-adjacent and admin operations. The ledger never owns
// access-control state itself.
type AccessGate interface {
	// IsPaused reports whether the system is paused.
	IsPaused() bool

	// RequirePrivileged returns ErrUnauthorized (possibly wrapped) unless
	// the caller is the designated privileged principal.
	RequirePrivileged(caller Principal) error
}
