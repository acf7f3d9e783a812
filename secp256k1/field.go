package secp256k1

import "math/big"

// Mod returns a mod m using the mathematician's convention: the result
// always lies in [0, m), even when a is negative. This differs from Go's
// % operator on plain integers, which gives a truncated, possibly
// negative, remainder.
func Mod(a, m *big.Int) *big.Int {
	r := new(big.Int).Mod(a, m)
	return r
}

// PowMod computes base^exp mod m via square-and-multiply.  It is also used
// to recover a candidate y coordinate from x via x^((p+1)/4) mod p, which
// works because the secp256k1 prime satisfies p = 3 (mod 4).
func PowMod(base, exp, m *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, m)
}

// Inv computes the modular inverse of a modulo n using the extended
// Euclidean algorithm (via math/big's ModInverse). By convention,
// Inv(0, n) returns 0 rather than an error: the zero scalar has no
// inverse, and callers are expected to have already rejected it before
// reaching here.
func Inv(a, n *big.Int) *big.Int {
	if a.Sign() == 0 {
		return big.NewInt(0)
	}
	r := new(big.Int).ModInverse(a, n)
	if r == nil {
		// a and n are not coprime; there is no separate error channel for
		// this, so surface it the same way as the no-inverse-for-zero case.
		return big.NewInt(0)
	}
	return r
}

// sqrtModP returns a square root of a modulo the secp256k1 field prime, via
// a^((p+1)/4) mod p.  This only produces a true square root when a is a
// quadratic residue; callers (DecompressY, curve point recovery) must
// verify the result by squaring it back before trusting it.
func sqrtModP(a *big.Int) *big.Int {
	return PowMod(a, sqrtExp, P)
}
