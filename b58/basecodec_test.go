package b58

import (
	"bytes"
	"math/big"
	"testing"
)

// TestEncodeBase58KnownVector checks a base-58 encoding against a known
// vector.
func TestEncodeBase58KnownVector(t *testing.T) {
	n, ok := new(big.Int).SetString("4669523849932130508876392554713407521319117239637943224980015676156491", 10)
	if !ok {
		t.Fatal("failed to parse test integer")
	}
	const want = "8s3gRRbpi7NyJH3sudQTtsygDHDyzzB5q3Xc6svA"
	got, err := EncodeString(n, 58, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("Encode(n, 58) = %q, want %q", got, want)
	}

	back, err := DecodeString(got, 58)
	if err != nil {
		t.Fatal(err)
	}
	if back.Cmp(n) != 0 {
		t.Fatalf("Decode(Encode(n)) = %v, want %v", back, n)
	}
}

// TestEncodeBase256KnownVector checks a base-256 encoding against a known
// vector.
func TestEncodeBase256KnownVector(t *testing.T) {
	want := []byte{173, 51, 199, 177, 216, 177, 196, 183, 192, 150, 220, 234, 57, 145, 219, 154, 51, 37, 6, 178, 9, 206, 152, 144, 33, 128, 108, 106, 75}
	n := new(big.Int).SetBytes(want)
	got, err := Encode(n, 256, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("Encode(n, 256) = %x, want %x", got, want)
	}
}

// TestRoundTripAllBases checks that decode(encode(n, b), b) == n for
// every supported base.
func TestRoundTripAllBases(t *testing.T) {
	bases := []int{2, 10, 16, 32, 58, 256}
	values := []int64{0, 1, 7, 255, 256, 65535, 123456789, 1 << 40}
	for _, base := range bases {
		for _, v := range values {
			n := big.NewInt(v)
			enc, err := Encode(n, base, 0)
			if err != nil {
				t.Fatalf("Encode(%d, %d): %v", v, base, err)
			}
			dec, err := Decode(enc, base)
			if err != nil {
				t.Fatalf("Decode(Encode(%d, %d)): %v", v, base, err)
			}
			if dec.Int64() != v {
				t.Errorf("base %d: round-trip(%d) = %d", base, v, dec.Int64())
			}
		}
	}
}

func TestEncodeMinlenPadding(t *testing.T) {
	got, err := EncodeString(big.NewInt(5), 16, 4)
	if err != nil {
		t.Fatal(err)
	}
	if got != "0005" {
		t.Fatalf("got %q, want %q", got, "0005")
	}

	got58, err := EncodeString(big.NewInt(0), 58, 3)
	if err != nil {
		t.Fatal(err)
	}
	if got58 != "111" {
		t.Fatalf("got %q, want %q", got58, "111")
	}

	got256, err := Encode(big.NewInt(5), 256, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got256, []byte{0, 0, 5}) {
		t.Fatalf("got %v, want [0 0 5]", got256)
	}
}

func TestUnsupportedBase(t *testing.T) {
	if _, err := Encode(big.NewInt(1), 7, 0); err == nil {
		t.Fatal("expected error for unsupported base")
	}
	if _, err := Decode([]byte("1"), 7); err == nil {
		t.Fatal("expected error for unsupported base")
	}
}

func TestChangebaseSameBasePadsOnly(t *testing.T) {
	out, err := Changebase([]byte("abc"), 16, 16, 5)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "00abc" {
		t.Fatalf("got %q, want %q", out, "00abc")
	}
}

// TestB58CheckRoundTrip checks that b58check_to_bin(bin_to_b58check(x, v))
// restores x, and version_byte recovers v, for v < 256.
func TestB58CheckRoundTrip(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a}
	for _, version := range []int{0, 1, 0x1e, 0x3f, 0x80, 255} {
		encoded := BinToB58Check(payload, version)
		decoded, err := B58CheckToBin(encoded)
		if err != nil {
			t.Fatalf("version %d: %v", version, err)
		}
		if !bytes.Equal(decoded, payload) {
			t.Fatalf("version %d: decoded %x, want %x", version, decoded, payload)
		}
		v, err := VersionByte(encoded)
		if err != nil {
			t.Fatalf("version %d: VersionByte: %v", version, err)
		}
		if v != version {
			t.Fatalf("VersionByte = %d, want %d", v, version)
		}
	}
}

func TestB58CheckChecksumMismatch(t *testing.T) {
	encoded := BinToB58Check([]byte{1, 2, 3}, 0)
	tampered := []byte(encoded)
	// Flip the final character, which lives inside the checksum region.
	if tampered[len(tampered)-1] == 'a' {
		tampered[len(tampered)-1] = 'b'
	} else {
		tampered[len(tampered)-1] = 'a'
	}
	_, err := B58CheckToBin(string(tampered))
	if err == nil {
		t.Fatal("expected checksum mismatch error")
	}
}

func TestB58CheckLeadingZeroBytes(t *testing.T) {
	payload := []byte{0x00, 0x00, 0x01, 0x02}
	encoded := BinToB58Check(payload, 0)
	if encoded[0] != '1' {
		t.Fatalf("expected leading '1' for version-zero + leading-zero payload, got %q", encoded)
	}
	decoded, err := B58CheckToBin(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(decoded, payload) {
		t.Fatalf("decoded %x, want %x", decoded, payload)
	}
}
