package ecdsa

import (
	"github.com/digibyte-org/digiid/digihash"
	"github.com/digibyte-org/digiid/keys"
	"github.com/digibyte-org/digiid/secp256k1"
)

// VerifyByPubKey reports whether sig is valid over msgHash for pub.
func VerifyByPubKey(msgHash []byte, sig CompactSignature, pub secp256k1.AffinePoint) bool {
	return RawVerify(msgHash, sig, pub)
}

// VerifyByAddress recovers the public key implied by sig over msgHash and
// accepts if either its compressed or uncompressed address (derived under
// versionByte) equals claimedAddress. A successful address match is
// double-checked with RawVerify.
func VerifyByAddress(msgHash []byte, sig CompactSignature, claimedAddress string, versionByte byte) (bool, error) {
	q, err := RawRecover(msgHash, sig)
	if err != nil {
		return false, nil
	}
	pub := keys.NewPubKey(q.X, q.Y)

	compressedAddr := keys.PubKeyToAddress(pub.SerializeCompressed(), versionByte)
	uncompressedAddr := keys.PubKeyToAddress(pub.SerializeUncompressed(), versionByte)
	if claimedAddress != compressedAddr && claimedAddress != uncompressedAddr {
		return false, nil
	}
	return RawVerify(msgHash, sig, q), nil
}

// VerifyByAnything dispatches on whether claimed looks like an address: if
// so, it verifies by address; otherwise it treats claimed as an encoded
// public key and verifies directly against it. msg is hashed with the
// DigiByte signed-message tagged hash before verification.
func VerifyByAnything(msg string, sig CompactSignature, claimed string, versionByte byte) (bool, error) {
	hash := digihash.ElectrumSigHash(msg)
	if keys.LooksLikeAddress(claimed) {
		return VerifyByAddress(hash[:], sig, claimed, versionByte)
	}
	pub, _, err := keys.ParsePubKeyAny(claimed)
	if err != nil {
		return false, nil
	}
	return VerifyByPubKey(hash[:], sig, secp256k1.AffinePoint{X: pub.X, Y: pub.Y}), nil
}
