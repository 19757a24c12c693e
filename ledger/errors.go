package ledger

import "errors"

var (
	// ErrInvalidAmount indicates an amount below the protocol minimum.
	ErrInvalidAmount = errors.New("ledger: amount below protocol minimum")

	// ErrAmountZero indicates a zero (or nil) amount where a positive one is required.
	ErrAmountZero = errors.New("ledger: zero amount")

	// ErrNegativeAmount indicates a negative amount argument.
	ErrNegativeAmount = errors.New("ledger: negative amount")

	// ErrZeroPrincipal indicates the zero principal was passed where a real account is required.
	ErrZeroPrincipal = errors.New("ledger: zero principal")

	// ErrInvalidPrincipal indicates a malformed principal encoding.
	ErrInvalidPrincipal = errors.New("ledger: invalid principal")

	// ErrZeroRecipient indicates a mint to the zero principal.
	ErrZeroRecipient = errors.New("ledger: zero recipient")

	// ErrTransferToSelf indicates a transfer addressed to the ledger's own account.
	ErrTransferToSelf = errors.New("ledger: transfer to ledger account")

	// ErrLockedAccount indicates an attempt to move or redeem the locked
	// genesis shares. They back the floor exchange rate and never leave.
	ErrLockedAccount = errors.New("ledger: locked account")

	// ErrBalanceExceeded indicates insufficient share balance for the requested amount.
	ErrBalanceExceeded = errors.New("ledger: balance exceeded")

	// ErrAllowanceExceeded indicates the spender's allowance does not cover the amount.
	ErrAllowanceExceeded = errors.New("ledger: allowance exceeded")

	// ErrAllowanceUnderflow indicates a decrease below zero allowance.
	ErrAllowanceUnderflow = errors.New("ledger: allowance underflow")

	// ErrTransferZeroShares indicates a positive token amount that converts to
	// zero shares at the current rate. Rejected rather than silently no-opped.
	ErrTransferZeroShares = errors.New("ledger: token amount converts to zero shares")

	// ErrTransferMismatch indicates the Reserve received a different amount
	// than requested (fee-on-transfer asset, unsupported).
	ErrTransferMismatch = errors.New("ledger: reserve received mismatched amount")

	// ErrUnauthorized indicates the caller is not the privileged principal.
	ErrUnauthorized = errors.New("ledger: unauthorized")

	// ErrPaused indicates the system is paused.
	ErrPaused = errors.New("ledger: paused")

	// ErrAlreadyInitialized indicates a repeated genesis call.
	ErrAlreadyInitialized = errors.New("ledger: already initialized")

	// ErrNotInitialized indicates an operation before genesis.
	ErrNotInitialized = errors.New("ledger: not initialized")

	// ErrZeroTotalShares indicates a conversion with zero total shares.
	// Unreachable after genesis: the locked account holds shares forever.
	ErrZeroTotalShares = errors.New("ledger: zero total shares")

	// ErrZeroReserve indicates a token-to-share conversion against an empty reserve.
	ErrZeroReserve = errors.New("ledger: zero reserve value")

	// ErrPassiveAccrual indicates an explicit yield distribution on a ledger
	// configured for passive accrual.
	ErrPassiveAccrual = errors.New("ledger: yield accrues passively on this ledger")

	// ErrSnapshotNotFound indicates the store holds no persisted snapshot.
	ErrSnapshotNotFound = errors.New("ledger: snapshot not found")

	// ErrCorruptSnapshot indicates a snapshot whose share sum does not match
	// its recorded total.
	ErrCorruptSnapshot = errors.New("ledger: corrupt snapshot")
)
