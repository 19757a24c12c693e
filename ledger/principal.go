package ledger

import (
	"encoding/hex"
	"fmt"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	bsvhash "github.com/bsv-blockchain/go-sdk/primitives/hash"
)

// PrincipalLen is the length of a principal identifier in bytes.
const PrincipalLen = 20

// Principal identifies an account on the ledger. It is the 20-byte
// HASH160 of a compressed secp256k1 public key.
type Principal [PrincipalLen]byte

// ZeroPrincipal is the null principal. It is never a valid account.
var ZeroPrincipal Principal

// LockedPrincipal is the permanently locked account credited with the
// genesis seed shares. The ledger rejects any transfer or redeem naming it
// as the source with ErrLockedAccount, so its shares can never leave,
// which keeps total shares above zero and fixes the floor exchange rate
// at genesis. Transfers into it are allowed and amount to a burn.
var LockedPrincipal = Principal{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
}

// PrincipalFromPublicKey derives a principal from a public key:
// RIPEMD160(SHA256(compressed pubkey)).
func PrincipalFromPublicKey(pub *ec.PublicKey) Principal {
	var p Principal
	copy(p[:], bsvhash.Hash160(pub.Compressed()))
	return p
}

// ParsePrincipal decodes a 40-character hex string into a Principal.
func ParsePrincipal(s string) (Principal, error) {
	var p Principal
	b, err := hex.DecodeString(s)
	if err != nil {
		return p, fmt.Errorf("%w: %v", ErrInvalidPrincipal, err)
	}
	if len(b) != PrincipalLen {
		return p, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidPrincipal, PrincipalLen, len(b))
	}
	copy(p[:], b)
	return p, nil
}

// String returns the hex encoding of the principal.
func (p Principal) String() string {
	return hex.EncodeToString(p[:])
}

// IsZero reports whether p is the null principal.
func (p Principal) IsZero() bool {
	return p == ZeroPrincipal
}
