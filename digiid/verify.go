package digiid

import (
	"github.com/digibyte-org/digiid/digihash"
	"github.com/digibyte-org/digiid/keys"
	"github.com/digibyte-org/digiid/secp256k1/ecdsa"
)

// SignatureValid recovers the public key that produced signature over uri,
// derives the address that key implies (compressed or uncompressed, per
// the recovery id's compression flag) under the DigiByte mainnet P2PKH
// version byte, and accepts only if that address equals claimedAddress and
// the signature verifies against the recovered key.
//
// Malformed input never surfaces as an error: any parsing or decoding
// failure simply yields false.
func SignatureValid(uri, claimedAddress, signature string) bool {
	sig, err := ecdsa.DecodeCompact(signature)
	if err != nil {
		return false
	}
	hash := digihash.ElectrumSigHash(uri)
	q, err := ecdsa.RecoverPubKey(hash[:], sig)
	if err != nil {
		return false
	}
	pub := keys.NewPubKey(q.X, q.Y)
	serialized := pub.SerializeUncompressed()
	if sig.IsCompressed() {
		serialized = pub.SerializeCompressed()
	}
	if keys.PubKeyToAddress(serialized, keys.VersionP2PKH) != claimedAddress {
		return false
	}
	ok, err := ecdsa.VerifyByAddress(hash[:], sig, claimedAddress, keys.VersionP2PKH)
	if err != nil {
		return false
	}
	return ok
}
