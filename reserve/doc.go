// Package reserve provides implementations of the ledger.Reserve
// interface, the external holder of the pool's actual value.
package reserve
