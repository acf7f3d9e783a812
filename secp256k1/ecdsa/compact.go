package ecdsa

import (
	"encoding/base64"
	"math/big"

	"github.com/digibyte-org/digiid/secp256k1"
)

// EncodeCompact serializes sig as 65 raw bytes [v][r:32][s:32], then
// base64-encodes them for transport.
func EncodeCompact(sig CompactSignature) string {
	buf := make([]byte, 0, 65)
	buf = append(buf, sig.V)
	buf = append(buf, pad32(sig.R.Bytes())...)
	buf = append(buf, pad32(sig.S.Bytes())...)
	return base64.StdEncoding.EncodeToString(buf)
}

// DecodeCompact inverts EncodeCompact.
func DecodeCompact(s string) (CompactSignature, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return CompactSignature{}, makeError(ErrInvalidSigSize, "compact signature is not valid base64")
	}
	if len(raw) != 65 {
		return CompactSignature{}, makeError(ErrInvalidSigSize, "compact signature is not 65 bytes")
	}
	return CompactSignature{
		V: raw[0],
		R: new(big.Int).SetBytes(raw[1:33]),
		S: new(big.Int).SetBytes(raw[33:65]),
	}, nil
}

// RecoverPubKey recovers the affine public key point implied by a compact
// signature over msgHash.
func RecoverPubKey(msgHash []byte, sig CompactSignature) (secp256k1.AffinePoint, error) {
	return RawRecover(msgHash, sig)
}
