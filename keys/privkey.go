package keys

import (
	"encoding/hex"
	"errors"
	"math/big"

	"github.com/digibyte-org/digiid/b58"
	"github.com/digibyte-org/digiid/secp256k1"
)

// PrivKeyFormat identifies the layout a private key was decoded from.
type PrivKeyFormat int

// Supported private key formats.
const (
	FormatPrivDecimal PrivKeyFormat = iota
	FormatPrivBin
	FormatPrivHex
	FormatPrivBinCompressed
	FormatPrivHexCompressed
	FormatPrivWIF
	FormatPrivWIFCompressed
)

// wifCompressionFlag is appended to the 32-byte scalar before Base58Check
// encoding to signal that the derived public key should be compressed.
const wifCompressionFlag = 0x01

// PrivKey is a secp256k1 scalar treated as a private key.
type PrivKey struct {
	D *big.Int
}

// NewPrivKey validates d as a scalar in [1, N) and wraps it as a private
// key.
func NewPrivKey(d *big.Int) (*PrivKey, error) {
	if d.Sign() <= 0 || d.Cmp(secp256k1.N) >= 0 {
		return nil, makeError(ErrKeyRange, "private key scalar is out of range [1, n)")
	}
	return &PrivKey{D: d}, nil
}

// PubKey derives the public key d*G corresponding to p.
func (p *PrivKey) PubKey() *PubKey {
	ap := secp256k1.ScalarBaseMult(p.D)
	return &PubKey{X: ap.X, Y: ap.Y}
}

// Serialize returns the 32-byte big-endian "bin" encoding of the scalar.
func (p *PrivKey) Serialize() []byte {
	return paddedBytes(p.D)
}

// Hex returns the 64-character hex encoding of the scalar.
func (p *PrivKey) Hex() string {
	return hex.EncodeToString(p.Serialize())
}

// ParsePrivKeyBin parses a raw private key, covering the bin (32 bytes) and
// bin_compressed (33 bytes, trailing 0x01 compression flag) formats.
func ParsePrivKeyBin(data []byte) (*PrivKey, PrivKeyFormat, error) {
	switch len(data) {
	case 32:
		pk, err := NewPrivKey(new(big.Int).SetBytes(data))
		return pk, FormatPrivBin, err
	case 33:
		if data[32] != wifCompressionFlag {
			return nil, 0, makeError(ErrUnrecognizedFormat, "unrecognized trailing byte on 33-byte private key")
		}
		pk, err := NewPrivKey(new(big.Int).SetBytes(data[:32]))
		return pk, FormatPrivBinCompressed, err
	default:
		return nil, 0, makeError(ErrUnrecognizedFormat, "private key byte length does not match any known format")
	}
}

// ParsePrivKeyHex parses a private key given as hex text, covering the hex
// (64 chars) and hex_compressed (66 chars) formats.
func ParsePrivKeyHex(s string) (*PrivKey, PrivKeyFormat, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, 0, makeError(ErrUnrecognizedFormat, "private key is not valid hex")
	}
	pk, binFormat, err := ParsePrivKeyBin(data)
	if err != nil {
		return nil, 0, err
	}
	if binFormat == FormatPrivBinCompressed {
		return pk, FormatPrivHexCompressed, nil
	}
	return pk, FormatPrivHex, nil
}

// ParsePrivKeyDecimal parses a base-10 string private key.
func ParsePrivKeyDecimal(s string) (*PrivKey, error) {
	d, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, makeError(ErrUnrecognizedFormat, "private key is not a valid decimal integer")
	}
	return NewPrivKey(d)
}

// ParsePrivKeyWIF decodes a WIF string under the given network version
// byte (the same byte used for P2PKH addresses; the WIF Base58Check
// version is 128+vbyte). It reports whether the encoded key is flagged
// for a compressed public key.
func ParsePrivKeyWIF(wif string, vbyte byte) (*PrivKey, bool, error) {
	ver, err := b58.VersionByte(wif)
	if err != nil {
		if errors.Is(err, b58.ErrChecksumMismatch) {
			return nil, false, makeError(ErrChecksum, "WIF checksum did not validate")
		}
		return nil, false, makeError(ErrUnrecognizedFormat, "malformed WIF string")
	}
	if ver != 128+int(vbyte) {
		return nil, false, makeError(ErrWrongNetwork, "WIF version byte does not match the requested network")
	}

	payload, err := b58.B58CheckToBin(wif)
	if err != nil {
		return nil, false, makeError(ErrChecksum, "WIF checksum did not validate")
	}

	switch len(payload) {
	case 32:
		pk, err := NewPrivKey(new(big.Int).SetBytes(payload))
		return pk, false, err
	case 33:
		if payload[32] != wifCompressionFlag {
			return nil, false, makeError(ErrUnrecognizedFormat, "unrecognized trailing byte in WIF payload")
		}
		pk, err := NewPrivKey(new(big.Int).SetBytes(payload[:32]))
		return pk, true, err
	default:
		return nil, false, makeError(ErrUnrecognizedFormat, "WIF payload length does not match any known format")
	}
}

// WIF encodes p as a Base58Check WIF string under vbyte, the same network
// version byte used for P2PKH addresses. When compressed is true, a 0x01
// flag byte is appended to the payload to mark the derived public key as
// compressed.
func (p *PrivKey) WIF(vbyte byte, compressed bool) string {
	payload := p.Serialize()
	if compressed {
		payload = append(payload, wifCompressionFlag)
	}
	return b58.BinToB58Check(payload, 128+int(vbyte))
}

// DetectPrivKeyFormat sniffs an opaque private key string against the
// hex/hex_compressed (64 or 66 characters), WIF/WIF-compressed, and
// decimal formats, in that order, and returns the parsed key, its format, and whether the format
// implies a compressed public key, for callers that only have an opaque
// string and not a known format tag.
func DetectPrivKeyFormat(s string, vbyte byte) (*PrivKey, PrivKeyFormat, bool, error) {
	if len(s) == 64 || len(s) == 66 {
		if pk, format, err := ParsePrivKeyHex(s); err == nil {
			return pk, format, format == FormatPrivHexCompressed, nil
		}
	}
	if pk, compressed, err := ParsePrivKeyWIF(s, vbyte); err == nil {
		format := FormatPrivWIF
		if compressed {
			format = FormatPrivWIFCompressed
		}
		return pk, format, compressed, nil
	}
	if pk, err := ParsePrivKeyDecimal(s); err == nil {
		return pk, FormatPrivDecimal, false, nil
	}
	return nil, 0, false, makeError(ErrUnrecognizedFormat, "private key string does not match any known format")
}

// ConvertPrivKeyToPubKeyHex detects the format of an encoded private key
// and returns the corresponding public key, hex-encoded in the matching
// family: WIF-compressed and hex_compressed inputs yield hex_compressed
// output, every other input yields uncompressed hex output.
func ConvertPrivKeyToPubKeyHex(s string, vbyte byte) (string, error) {
	pk, _, compressed, err := DetectPrivKeyFormat(s, vbyte)
	if err != nil {
		return "", err
	}
	pub := pk.PubKey()
	if compressed {
		return pub.HexCompressed(), nil
	}
	return pub.HexUncompressed(), nil
}
