package reserve

import "errors"

var (
	// ErrInsufficientFunds indicates the principal does not hold enough
	// external value to cover a pull.
	ErrInsufficientFunds = errors.New("reserve: insufficient funds")

	// ErrReserveDrained indicates a push larger than the pooled value.
	ErrReserveDrained = errors.New("reserve: push exceeds pooled value")

	// ErrNegativeAmount indicates a negative amount argument.
	ErrNegativeAmount = errors.New("reserve: negative amount")
)
