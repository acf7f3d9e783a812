// Package b58 implements the BaseCodec and Base58Check components of the
// DigiID cryptographic substrate: radix conversion between a non-negative
// integer, a byte slice, and text over a fixed set of alphabets (bases 2,
// 10, 16, 32, 58, 256), plus the Base58Check payload/version/checksum
// envelope used for WIF strings and addresses.
package b58

import (
	"errors"
	"math/big"

	"github.com/decred/base58"
)

const (
	alphabetBinary  = "01"
	alphabetDecimal = "0123456789"
	alphabetHex     = "0123456789abcdef"
	alphabetBase32  = "abcdefghijklmnopqrstuvwxyz234567"
	alphabetBase58  = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
)

// alphabetFor returns the digit alphabet for the given base, and ok=false
// for any base this package does not support.  Base 256 has no text
// alphabet: it is handled specially by encode/decode since its "digits"
// are raw bytes, not characters.
func alphabetFor(base int) (alphabet string, ok bool) {
	switch base {
	case 2:
		return alphabetBinary, true
	case 10:
		return alphabetDecimal, true
	case 16:
		return alphabetHex, true
	case 32:
		return alphabetBase32, true
	case 58:
		return alphabetBase58, true
	case 256:
		return "", true
	default:
		return "", false
	}
}

// padElement returns the left-padding element used to reach minlen digits
// for the given base: the zero byte for base 256, '1' for base 58 (its
// zero digit), and '0' for everything else.
func padElement(base int) byte {
	switch base {
	case 256:
		return 0x00
	case 58:
		return '1'
	default:
		return '0'
	}
}

// Encode emits the digits of value in the given base using that base's
// alphabet, left-padded to minlen with the base's padding element. Base 256
// returns raw bytes; every other supported base returns the ASCII text
// encoding. value must be non-negative.
func Encode(value *big.Int, base int, minlen int) ([]byte, error) {
	alphabet, ok := alphabetFor(base)
	if !ok {
		return nil, makeError(ErrUnsupportedBase, "unsupported base")
	}

	v := new(big.Int).Set(value)
	bigBase := big.NewInt(int64(base))
	mod := new(big.Int)

	var digits []byte
	if base == 256 {
		digits = v.Bytes()
	} else {
		zero := big.NewInt(0)
		for v.Cmp(zero) > 0 {
			v.DivMod(v, bigBase, mod)
			digits = append([]byte{alphabet[mod.Int64()]}, digits...)
		}
	}

	if len(digits) < minlen {
		pad := make([]byte, minlen-len(digits))
		for i := range pad {
			pad[i] = padElement(base)
		}
		digits = append(pad, digits...)
	}
	return digits, nil
}

// EncodeString is a convenience wrapper around Encode for the text-valued
// bases (everything except 256); it panics if called with base 256.
func EncodeString(value *big.Int, base int, minlen int) (string, error) {
	if base == 256 {
		panic("b58: EncodeString called with base 256; use Encode")
	}
	out, err := Encode(value, base, minlen)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Decode parses input as digits in the given base and returns the
// non-negative integer they represent.  Base 256 consumes input as raw
// bytes; every other base consumes input as ASCII text over that base's
// alphabet.
func Decode(input []byte, base int) (*big.Int, error) {
	alphabet, ok := alphabetFor(base)
	if !ok {
		return nil, makeError(ErrUnsupportedBase, "unsupported base")
	}

	value := big.NewInt(0)
	if base == 256 {
		value.SetBytes(input)
		return value, nil
	}

	bigBase := big.NewInt(int64(base))
	for _, c := range input {
		idx := indexOf(alphabet, c)
		if idx < 0 {
			return nil, makeError(ErrInvalidDigit,
				"character does not belong to the base's alphabet")
		}
		value.Mul(value, bigBase)
		value.Add(value, big.NewInt(int64(idx)))
	}
	return value, nil
}

// DecodeString is a convenience wrapper around Decode for the text-valued
// bases.
func DecodeString(input string, base int) (*big.Int, error) {
	return Decode([]byte(input), base)
}

func indexOf(alphabet string, c byte) int {
	for i := 0; i < len(alphabet); i++ {
		if alphabet[i] == c {
			return i
		}
	}
	return -1
}

// Changebase reinterprets input as digits in the from base, and re-emits it
// as digits in the to base, left-padded to minlen.  When from == to, this
// only applies the padding rule (no decode/encode round trip is needed).
func Changebase(input []byte, from, to int, minlen int) ([]byte, error) {
	if from == to {
		if _, ok := alphabetFor(from); !ok {
			return nil, makeError(ErrUnsupportedBase, "unsupported base")
		}
		if len(input) >= minlen {
			return input, nil
		}
		pad := make([]byte, minlen-len(input))
		for i := range pad {
			pad[i] = padElement(from)
		}
		return append(pad, input...), nil
	}

	value, err := Decode(input, from)
	if err != nil {
		return nil, err
	}
	return Encode(value, to, minlen)
}

// BinToB58Check encodes payload under version into a Base58Check string,
// delegating the version/checksum envelope to base58.CheckEncode.
func BinToB58Check(payload []byte, version int) string {
	return base58.CheckEncode(payload, [2]byte{byte(version), 0})
}

// B58CheckToBin decodes a Base58Check string, verifies its checksum, and
// returns the payload (the bytes following the version byte; use
// VersionByte to recover the version).
func B58CheckToBin(s string) ([]byte, error) {
	payload, _, err := base58.CheckDecode(s)
	if err != nil {
		if errors.Is(err, base58.ErrChecksum) {
			return nil, makeError(ErrChecksumMismatch, "base58check checksum mismatch")
		}
		return nil, makeError(ErrTooShort, "base58check string too short to contain a checksum")
	}
	return payload, nil
}

// VersionByte returns the single leading version byte encoded in a
// Base58Check string produced by BinToB58Check.
func VersionByte(s string) (int, error) {
	_, version, err := base58.CheckDecode(s)
	if err != nil {
		if errors.Is(err, base58.ErrChecksum) {
			return 0, makeError(ErrChecksumMismatch, "base58check checksum mismatch")
		}
		return 0, makeError(ErrTooShort, "base58check string too short to contain a version byte")
	}
	return int(version[0]), nil
}
