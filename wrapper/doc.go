// Package wrapper implements a fixed-unit companion token over the
// rebasing ledger. One wrapped unit is exactly one ledger share, so a
// wrapped balance never changes while yield accrues; its token value
// does. Wrapping and unwrapping move shares through the ledger's
// share-transfer primitive, never a token amount, so no value is lost to
// a double floor conversion.
package wrapper
