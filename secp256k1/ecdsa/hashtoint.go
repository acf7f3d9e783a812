package ecdsa

import (
	"math/big"

	"github.com/digibyte-org/digiid/secp256k1"
)

// hashToInt converts a message digest into an integer suitable for use as
// the ECDSA "e" value, truncating to the bit length of the curve order
// when the digest is longer, per SECG (and mirroring OpenSSL's
// behavior).
func hashToInt(hash []byte) *big.Int {
	orderBits := secp256k1.N.BitLen()
	orderBytes := (orderBits + 7) / 8
	if len(hash) > orderBytes {
		hash = hash[:orderBytes]
	}

	ret := new(big.Int).SetBytes(hash)
	excess := len(hash)*8 - orderBits
	if excess > 0 {
		ret.Rsh(ret, uint(excess))
	}
	return ret
}
