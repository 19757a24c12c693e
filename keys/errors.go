package keys

import "errors"

var (
	// ErrEmptyPassphrase indicates an empty passphrase.
	ErrEmptyPassphrase = errors.New("keys: empty passphrase")

	// ErrShortSalt indicates a salt below the minimum length.
	ErrShortSalt = errors.New("keys: salt too short")
)
