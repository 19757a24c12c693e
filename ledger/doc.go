// Package ledger implements a rebasing balance ledger for a pooled,
// yield-bearing asset.
//
// Ownership of the pool is tracked in internal shares. The externally
// reported token balance of an account is derived on demand:
//
//	tokens = shares * pooledValue / totalShares
//
// where pooledValue is always read live from the Reserve, never cached.
// Yield landing in the Reserve therefore raises every holder's token
// balance without any per-account mutation: a rebase is a rate change,
// not a transfer.
//
// All conversions use floor division, biased in the pool's favour: repeated
// round trips can lose dust to the pool but can never mint value.
//
// A Ledger is safe for concurrent use; every operation runs as a single
// serialized state transition under one mutex, and state mutation commits
// before any outbound Reserve call.
package ledger
