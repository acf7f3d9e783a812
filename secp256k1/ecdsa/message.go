package ecdsa

import (
	"github.com/digibyte-org/digiid/digihash"
	"github.com/digibyte-org/digiid/keys"
)

// SignMessage signs msg (hashed with the DigiByte signed-message tagged
// hash) using the private key encoded by key, detected against any
// recognized format (decimal, hex, hex_compressed, WIF, WIF-compressed),
// and returns the resulting compact signature, base64-encoded.
func SignMessage(msg, key string, versionByte byte) (string, error) {
	priv, _, compressed, err := keys.DetectPrivKeyFormat(key, versionByte)
	if err != nil {
		return "", err
	}
	hash := digihash.ElectrumSigHash(msg)
	sig := RawSign(hash[:], priv.D, compressed)
	return EncodeCompact(sig), nil
}

// VerifyMessage decodes a base64 compact signature and verifies it over
// msg against claimed, dispatching through VerifyByAnything.
func VerifyMessage(msg, signature, claimed string, versionByte byte) (bool, error) {
	sig, err := DecodeCompact(signature)
	if err != nil {
		return false, nil
	}
	return VerifyByAnything(msg, sig, claimed, versionByte)
}
