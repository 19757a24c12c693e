// Package keys derives deterministic operator keypairs for ledger
// administration. The privileged principal and the reserve custodian are
// ordinary ledger principals; deriving them from a passphrase lets an
// operator recreate the same identity on any machine.
package keys

import (
	"golang.org/x/crypto/argon2"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"

	"github.com/rebaseorg/librebase-go/ledger"
)

const (
	// Argon2id parameters for key derivation.
	Argon2Time        = 3
	Argon2Memory      = 64 * 1024 // 64 MB
	Argon2Parallelism = 4
	Argon2KeyLen      = 32

	// MinSaltLen is the minimum accepted salt length.
	MinSaltLen = 16
)

// DeriveKey derives a secp256k1 private key from a passphrase and salt
// using Argon2id. The same inputs always yield the same key.
func DeriveKey(passphrase string, salt []byte) (*ec.PrivateKey, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}
	if len(salt) < MinSaltLen {
		return nil, ErrShortSalt
	}

	kb := argon2.IDKey(
		[]byte(passphrase),
		salt,
		Argon2Time,
		Argon2Memory,
		Argon2Parallelism,
		Argon2KeyLen,
	)

	priv, _ := ec.PrivateKeyFromBytes(kb)
	return priv, nil
}

// DerivePrincipal derives the ledger principal of the keypair DeriveKey
// would produce for the same inputs.
func DerivePrincipal(passphrase string, salt []byte) (ledger.Principal, error) {
	priv, err := DeriveKey(passphrase, salt)
	if err != nil {
		return ledger.ZeroPrincipal, err
	}
	return ledger.PrincipalFromPublicKey(priv.PubKey()), nil
}
