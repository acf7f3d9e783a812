package keys

import (
	"encoding/hex"
	"math/big"

	"github.com/digibyte-org/digiid/secp256k1"
)

// PubKeyFormat identifies the wire/text layout a public key was decoded
// from or should be encoded to.
//
// Parsing dispatches on runtime-sniffed length and lead byte; callers that
// already know the expected format should prefer the explicit ParsePubKey*
// functions over ParsePubKeyAny's sniffing.
type PubKeyFormat int

// Supported public key formats.
const (
	FormatBin PubKeyFormat = iota
	FormatBinCompressed
	FormatBinElectrum
	FormatHex
	FormatHexCompressed
	FormatHexElectrum
)

const (
	leadUncompressed   = 0x04
	leadCompressedEven = 0x02
	leadCompressedOdd  = 0x03
)

// PubKey is a point on secp256k1 treated as a public key.
type PubKey struct {
	X, Y *big.Int
}

// NewPubKey wraps the affine coordinates (x, y) as a public key without
// validating that the point lies on the curve; use IsOnCurve to check.
func NewPubKey(x, y *big.Int) *PubKey {
	return &PubKey{X: x, Y: y}
}

// IsOnCurve reports whether the key's coordinates satisfy the secp256k1
// curve equation.
func (p *PubKey) IsOnCurve() bool {
	return secp256k1.IsOnCurve(p.X, p.Y)
}

// paddedBytes returns v as a big-endian byte slice padded with leading
// zeros to secp256k1.ByteLen bytes.
func paddedBytes(v *big.Int) []byte {
	out := make([]byte, secp256k1.ByteLen)
	b := v.Bytes()
	copy(out[secp256k1.ByteLen-len(b):], b)
	return out
}

// SerializeUncompressed returns the 65-byte "bin" encoding:
// 0x04 || x || y.
func (p *PubKey) SerializeUncompressed() []byte {
	out := make([]byte, 0, 65)
	out = append(out, leadUncompressed)
	out = append(out, paddedBytes(p.X)...)
	out = append(out, paddedBytes(p.Y)...)
	return out
}

// SerializeCompressed returns the 33-byte "bin_compressed" encoding:
// (0x02 + (y mod 2)) || x.
func (p *PubKey) SerializeCompressed() []byte {
	lead := byte(leadCompressedEven)
	if p.Y.Bit(0) == 1 {
		lead = leadCompressedOdd
	}
	out := make([]byte, 0, 33)
	out = append(out, lead)
	out = append(out, paddedBytes(p.X)...)
	return out
}

// SerializeElectrum returns the 64-byte "bin_electrum" encoding: x || y
// with no leading format byte.
func (p *PubKey) SerializeElectrum() []byte {
	out := make([]byte, 0, 64)
	out = append(out, paddedBytes(p.X)...)
	out = append(out, paddedBytes(p.Y)...)
	return out
}

// HexUncompressed, HexCompressed, HexElectrum return the lowercase hex
// text encodings corresponding to the same-named binary serializations.
func (p *PubKey) HexUncompressed() string { return hex.EncodeToString(p.SerializeUncompressed()) }
func (p *PubKey) HexCompressed() string   { return hex.EncodeToString(p.SerializeCompressed()) }
func (p *PubKey) HexElectrum() string     { return hex.EncodeToString(p.SerializeElectrum()) }

// ParsePubKeyBin parses a raw public key by length and lead byte, covering
// the bin (65 bytes), bin_compressed (33 bytes), and bin_electrum (64
// bytes) formats.
func ParsePubKeyBin(data []byte) (*PubKey, PubKeyFormat, error) {
	switch len(data) {
	case 65:
		if data[0] != leadUncompressed {
			return nil, 0, makeError(ErrUnrecognizedFormat, "unrecognized 65-byte public key lead byte")
		}
		x := new(big.Int).SetBytes(data[1:33])
		y := new(big.Int).SetBytes(data[33:65])
		if !secp256k1.IsOnCurve(x, y) {
			return nil, 0, makeError(ErrPubKeyNotOnCurve, "public key point is not on the secp256k1 curve")
		}
		return &PubKey{X: x, Y: y}, FormatBin, nil

	case 33:
		lead := data[0]
		if lead != leadCompressedEven && lead != leadCompressedOdd {
			return nil, 0, makeError(ErrUnrecognizedFormat, "unrecognized 33-byte public key lead byte")
		}
		x := new(big.Int).SetBytes(data[1:33])
		if x.Cmp(secp256k1.P) >= 0 {
			return nil, 0, makeError(ErrPubKeyXTooBig, "x coordinate is not smaller than the field prime")
		}
		y, ok := secp256k1.DecompressY(x, lead == leadCompressedOdd)
		if !ok {
			return nil, 0, makeError(ErrPubKeyNotOnCurve, "x coordinate does not correspond to a point on the curve")
		}
		return &PubKey{X: x, Y: y}, FormatBinCompressed, nil

	case 64:
		x := new(big.Int).SetBytes(data[:32])
		y := new(big.Int).SetBytes(data[32:64])
		if !secp256k1.IsOnCurve(x, y) {
			return nil, 0, makeError(ErrPubKeyNotOnCurve, "public key point is not on the secp256k1 curve")
		}
		return &PubKey{X: x, Y: y}, FormatBinElectrum, nil

	default:
		return nil, 0, makeError(ErrUnrecognizedFormat, "public key byte length does not match any known format")
	}
}

// ParsePubKeyHex parses a public key given as hex text, covering the hex
// (130 chars), hex_compressed (66 chars), and hex_electrum (128 chars)
// formats.
func ParsePubKeyHex(s string) (*PubKey, PubKeyFormat, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, 0, makeError(ErrUnrecognizedFormat, "public key is not valid hex")
	}
	pk, binFormat, err := ParsePubKeyBin(data)
	if err != nil {
		return nil, 0, err
	}
	switch binFormat {
	case FormatBin:
		return pk, FormatHex, nil
	case FormatBinCompressed:
		return pk, FormatHexCompressed, nil
	case FormatBinElectrum:
		return pk, FormatHexElectrum, nil
	default:
		return pk, binFormat, nil
	}
}

// ParsePubKeyAny sniffs a caller-provided string against the hex-family
// public key formats by length, for callers that only have an opaque
// string and not a known format tag.
func ParsePubKeyAny(s string) (*PubKey, PubKeyFormat, error) {
	switch len(s) {
	case 130, 66, 128:
		return ParsePubKeyHex(s)
	default:
		return nil, 0, makeError(ErrUnrecognizedFormat, "public key string length does not match any known format")
	}
}
