package wrapper

import "errors"

var (
	// ErrZeroAmount indicates a zero wrap or unwrap amount.
	ErrZeroAmount = errors.New("wrapper: zero amount")

	// ErrZeroPrincipal indicates the zero principal.
	ErrZeroPrincipal = errors.New("wrapper: zero principal")

	// ErrBalanceExceeded indicates insufficient wrapped units.
	ErrBalanceExceeded = errors.New("wrapper: balance exceeded")
)
