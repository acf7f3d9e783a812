package ecdsa

import (
	"math/big"

	"github.com/digibyte-org/digiid/secp256k1"
)

// CompactSignature is a Bitcoin/Electrum-style recoverable ECDSA
// signature: a 1-byte recovery/compression flag plus the (r, s) pair.
// v is always in [27, 34]; v >= 31 signals that the signing key's public
// key should be recovered in compressed form.
type CompactSignature struct {
	V byte
	R *big.Int
	S *big.Int
}

// compressedThreshold is the smallest v value that signals a compressed
// public key (27 + 4 for a compression flag).
const compressedThreshold = 31

// IsCompressed reports whether v signals that the signing key used a
// compressed public key.
func (sig CompactSignature) IsCompressed() bool {
	return sig.V >= compressedThreshold
}

// RawSign produces a deterministic (v, r, s) signature over msgHash with
// private scalar d. compressed controls whether the resulting v is offset
// by 4 to signal a compressed source public key.
func RawSign(msgHash []byte, d *big.Int, compressed bool) CompactSignature {
	z := hashToInt(msgHash)
	priv32 := make([]byte, 32)
	db := d.Bytes()
	copy(priv32[32-len(db):], db)

	k := detK(priv32, pad32(msgHash))

	kG := secp256k1.ScalarBaseMult(k)
	r := secp256k1.Mod(kG.X, secp256k1.N)

	kInv := secp256k1.Inv(k, secp256k1.N)
	rd := new(big.Int).Mul(r, d)
	s := secp256k1.Mod(new(big.Int).Mul(kInv, new(big.Int).Add(z, rd)), secp256k1.N)

	doubled := new(big.Int).Lsh(s, 1)
	overHalf := doubled.Cmp(secp256k1.N) >= 0

	parity := int(kG.Y.Bit(0))
	if overHalf {
		parity ^= 1
		s = new(big.Int).Sub(secp256k1.N, s)
	}

	v := byte(27 + parity)
	if compressed {
		v += 4
	}

	sig := CompactSignature{V: v, R: r, S: s}

	if !RawVerify(msgHash, sig, secp256k1.ScalarBaseMult(d)) {
		panic(makeError(ErrSelfVerifyFailed, "freshly produced signature failed self-verification"))
	}
	return sig
}

func pad32(b []byte) []byte {
	if len(b) >= 32 {
		return b[len(b)-32:]
	}
	out := make([]byte, 32)
	copy(out[32-len(b):], b)
	return out
}

// RawVerify reports whether sig is a valid signature over msgHash for the
// given public key.
func RawVerify(msgHash []byte, sig CompactSignature, pub secp256k1.AffinePoint) bool {
	if sig.V < 27 || sig.V > 34 {
		return false
	}
	r := secp256k1.Mod(sig.R, secp256k1.N)
	s := secp256k1.Mod(sig.S, secp256k1.N)
	if r.Sign() == 0 || s.Sign() == 0 {
		return false
	}

	z := hashToInt(msgHash)
	w := secp256k1.Inv(s, secp256k1.N)
	u1 := secp256k1.Mod(new(big.Int).Mul(z, w), secp256k1.N)
	u2 := secp256k1.Mod(new(big.Int).Mul(r, w), secp256k1.N)

	p1 := secp256k1.ScalarBaseMult(u1)
	p2 := secp256k1.ScalarMult(u2, pub.X, pub.Y)
	x := secp256k1.Add(p1, p2)
	if x.IsInfinity() {
		return false
	}

	return secp256k1.Mod(x.X, secp256k1.N).Cmp(r) == 0
}

// RawRecover recovers the public key point used to produce sig over
// msgHash. It does not handle the recid's x = r + n case: the candidate x
// coordinate is always taken to equal r directly.
func RawRecover(msgHash []byte, sig CompactSignature) (secp256k1.AffinePoint, error) {
	if sig.V < 27 || sig.V > 34 {
		return secp256k1.AffinePoint{}, makeError(ErrRecoveryIDRange, "recovery id out of range [27, 34]")
	}
	r := secp256k1.Mod(sig.R, secp256k1.N)
	s := secp256k1.Mod(sig.S, secp256k1.N)
	if r.Sign() == 0 {
		return secp256k1.AffinePoint{}, makeError(ErrRIsZero, "signature r is zero mod n")
	}
	if s.Sign() == 0 {
		return secp256k1.AffinePoint{}, makeError(ErrSIsZero, "signature s is zero mod n")
	}

	x := new(big.Int).Set(sig.R)
	if x.Cmp(secp256k1.P) >= 0 {
		return secp256k1.AffinePoint{}, makeError(ErrRTooLarge, "candidate x is not smaller than the field prime")
	}

	alpha := secp256k1.Mod(new(big.Int).Add(secp256k1.PowMod(x, big.NewInt(3), secp256k1.P), secp256k1.B), secp256k1.P)
	beta := secp256k1.PowMod(alpha, new(big.Int).Div(new(big.Int).Add(secp256k1.P, big.NewInt(1)), big.NewInt(4)), secp256k1.P)

	// v's parity bit (v-27 mod 2, not the raw v mod 2, since the base value
	// 27 is itself odd) records the y-parity of the point RawSign actually
	// combined with s to produce this signature, after any low-S
	// negation. Select the matching root accordingly.
	y := new(big.Int).Set(beta)
	if int(sig.V-27)%2 != int(beta.Bit(0)) {
		y = new(big.Int).Sub(secp256k1.P, beta)
	}

	check := secp256k1.Mod(new(big.Int).Sub(alpha, new(big.Int).Mul(y, y)), secp256k1.P)
	if check.Sign() != 0 {
		return secp256k1.AffinePoint{}, makeError(ErrPointNotOnCurve, "recovered candidate point fails the curve equation")
	}

	z := hashToInt(msgHash)
	rInv := secp256k1.Inv(r, secp256k1.N)

	// Q = r^-1 * (s*(x,y) - z*G)
	negZ := secp256k1.Mod(new(big.Int).Neg(z), secp256k1.N)
	negZG := secp256k1.ScalarBaseMult(negZ)
	sR := secp256k1.ScalarMult(s, x, y)
	sum := secp256k1.Add(negZG, sR)
	q := secp256k1.ScalarMult(rInv, sum.X, sum.Y)
	return q, nil
}
