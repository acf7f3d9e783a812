package ecdsa

import (
	"math/big"

	"github.com/digibyte-org/digiid/digihash"
	"github.com/digibyte-org/digiid/secp256k1"
)

// detK derives a deterministic per-signature nonce from the private
// scalar and message hash via a single RFC6979-style HMAC-SHA256
// derivation:
//
//	V = 0x01 x 32, K = 0x00 x 32
//	K = HMAC(K, V || 0x00 || priv32 || z32)
//	V = HMAC(K, V)
//	K = HMAC(K, V || 0x01 || priv32 || z32)
//	V = HMAC(K, V)
//	k = int(HMAC(K, V))
//
// Unlike full RFC6979, this deliberately stops after the first generated
// value rather than looping until it lands in [1, n); a rejection and
// resample on out-of-range k is not performed.
func detK(priv32, z32 []byte) *big.Int {
	v := bytesRepeat(0x01, 32)
	k := bytesRepeat(0x00, 32)

	kArr := digihash.HmacSha256(k, concat(v, []byte{0x00}, priv32, z32))
	k = kArr[:]
	vArr := digihash.HmacSha256(k, v)
	v = vArr[:]

	kArr = digihash.HmacSha256(k, concat(v, []byte{0x01}, priv32, z32))
	k = kArr[:]
	vArr = digihash.HmacSha256(k, v)
	v = vArr[:]

	raw := digihash.HmacSha256(k, v)
	return secp256k1.Mod(new(big.Int).SetBytes(raw[:]), secp256k1.N)
}

func bytesRepeat(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}

func concat(parts ...[]byte) []byte {
	var n int
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
