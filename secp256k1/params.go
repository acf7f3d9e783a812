// Package secp256k1 is a pure math/big implementation of the secp256k1
// elliptic curve: field arithmetic modulo its prime, Jacobian point group
// law, and scalar multiplication. It underlies both key derivation (see the
// sibling keys package) and ECDSA signing/verification/recovery (see
// secp256k1/ecdsa).
package secp256k1

import "math/big"

// fromHex converts a hex string into a big.Int and panics on malformed
// input.  Only used for the hard-coded curve constants below, so any error
// indicates a bug in this source file.
func fromHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("secp256k1: invalid hex constant: " + s)
	}
	return n
}

var (
	// P is the secp256k1 field prime.
	P = fromHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")

	// N is the order of the base point G (the size of the scalar group).
	N = fromHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")

	// A is the secp256k1 curve coefficient a in y^2 = x^3 + a*x + b.  It is
	// zero, which is what allows several of the doubling/addition formulas
	// below to drop a term.
	A = big.NewInt(0)

	// B is the secp256k1 curve coefficient b in y^2 = x^3 + a*x + b.
	B = big.NewInt(7)

	// Gx, Gy are the affine coordinates of the base point G.
	Gx = fromHex("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	Gy = fromHex("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")

	// sqrtExp is (p+1)/4, the exponent used to compute modular square
	// roots since secp256k1's prime satisfies p = 3 (mod 4).
	sqrtExp = new(big.Int).Div(new(big.Int).Add(P, big.NewInt(1)), big.NewInt(4))
)

// ByteLen is the number of bytes a field element or scalar occupies when
// serialized big-endian.
const ByteLen = 32
