// Package digihash provides the hash primitives DigiID signing and
// verification are built from: SHA-256, RIPEMD-160, their composition as
// HASH160, double SHA-256, HMAC-SHA256, and the DigiByte tagged "signed
// message" hash used by the Electrum-style compact signature scheme.
package digihash

import (
	"crypto/hmac"
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"
)

// Size160 is the length in bytes of a HASH160 digest.
const Size160 = ripemd160.Size

// Size256 is the length in bytes of a SHA-256 digest.
const Size256 = sha256.Size

// magic is the length-prefixed signed-message header DigiByte shares with
// Bitcoin-derived chains.  The leading 0x19 (25) is the byte length of the
// magic string itself, matching the varint-free fixed prefix used by
// bitcoind-family "signmessage"/"verifymessage".
const magic = "DigiByte Signed Message:\n"

// Sha256 returns the SHA-256 digest of b.
func Sha256(b []byte) [Size256]byte {
	return sha256.Sum256(b)
}

// Ripemd160 returns the RIPEMD-160 digest of b.
func Ripemd160(b []byte) [Size160]byte {
	h := ripemd160.New()
	h.Write(b)
	var out [Size160]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Hash160 returns RIPEMD160(SHA256(b)), the digest used to derive addresses
// from serialized public keys.
func Hash160(b []byte) [Size160]byte {
	first := Sha256(b)
	return Ripemd160(first[:])
}

// DoubleSha256 returns SHA256(SHA256(b)), the digest used by Base58Check
// checksums.
func DoubleSha256(b []byte) [Size256]byte {
	first := sha256.Sum256(b)
	return sha256.Sum256(first[:])
}

// HmacSha256 returns the HMAC-SHA256 of msg under key.
func HmacSha256(key, msg []byte) [Size256]byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(msg)
	var out [Size256]byte
	copy(out[:], mac.Sum(nil))
	return out
}

// PutVarint appends the Bitcoin/DigiByte varint encoding of n to dst and
// returns the extended slice.  Values below 253 are encoded as a single
// byte; larger values are prefixed with 0xFD/0xFE/0xFF followed by a
// little-endian 2/4/8-byte count.
func PutVarint(dst []byte, n uint64) []byte {
	switch {
	case n < 0xfd:
		return append(dst, byte(n))
	case n <= 0xffff:
		return append(dst, 0xfd, byte(n), byte(n>>8))
	case n <= 0xffffffff:
		return append(dst, 0xfe, byte(n), byte(n>>8), byte(n>>16), byte(n>>24))
	default:
		return append(dst, 0xff,
			byte(n), byte(n>>8), byte(n>>16), byte(n>>24),
			byte(n>>32), byte(n>>40), byte(n>>48), byte(n>>56))
	}
}

// ElectrumSigHash computes the DigiByte "signed message" hash of msg:
//
//	dsha256(0x19 || "DigiByte Signed Message:\n" || varint(len(msg)) || msg)
//
// This is the digest that compact ECDSA signatures (and their recovery) are
// computed and verified against whenever the signed payload is treated as a
// human-readable message rather than a raw 32-byte hash, which is how DigiID
// URIs are signed by wallets.
func ElectrumSigHash(msg string) [Size256]byte {
	msgBytes := []byte(msg)
	buf := make([]byte, 0, 1+len(magic)+9+len(msgBytes))
	buf = append(buf, byte(len(magic)))
	buf = append(buf, magic...)
	buf = PutVarint(buf, uint64(len(msgBytes)))
	buf = append(buf, msgBytes...)
	return DoubleSha256(buf)
}
