package keys

import (
	"math/big"
	"testing"

	"github.com/digibyte-org/digiid/b58"
)

// samplePrivKey returns a small, well away from both 0 and n, fixed
// private scalar useful across table-driven tests.
func samplePrivKey(t *testing.T) *PrivKey {
	t.Helper()
	d, ok := new(big.Int).SetString("CA2E79E72C79C4D66AA78563C2DFE9F6A1BDFF2DF9CA26CB9D0A2C4D7D4AB5", 16)
	if !ok {
		t.Fatal("bad fixture scalar")
	}
	pk, err := NewPrivKey(d)
	if err != nil {
		t.Fatalf("NewPrivKey: %v", err)
	}
	return pk
}

func TestPubKeySerializeParseRoundTrip(t *testing.T) {
	pub := samplePrivKey(t).PubKey()

	uncompressed := pub.SerializeUncompressed()
	got, format, err := ParsePubKeyBin(uncompressed)
	if err != nil {
		t.Fatalf("ParsePubKeyBin(uncompressed): %v", err)
	}
	if format != FormatBin {
		t.Fatalf("format = %v, want FormatBin", format)
	}
	if got.X.Cmp(pub.X) != 0 || got.Y.Cmp(pub.Y) != 0 {
		t.Fatal("uncompressed round trip changed the point")
	}

	compressed := pub.SerializeCompressed()
	got, format, err = ParsePubKeyBin(compressed)
	if err != nil {
		t.Fatalf("ParsePubKeyBin(compressed): %v", err)
	}
	if format != FormatBinCompressed {
		t.Fatalf("format = %v, want FormatBinCompressed", format)
	}
	if got.X.Cmp(pub.X) != 0 || got.Y.Cmp(pub.Y) != 0 {
		t.Fatal("compressed round trip changed the point")
	}

	electrum := pub.SerializeElectrum()
	got, format, err = ParsePubKeyBin(electrum)
	if err != nil {
		t.Fatalf("ParsePubKeyBin(electrum): %v", err)
	}
	if format != FormatBinElectrum {
		t.Fatalf("format = %v, want FormatBinElectrum", format)
	}
	if got.X.Cmp(pub.X) != 0 || got.Y.Cmp(pub.Y) != 0 {
		t.Fatal("electrum round trip changed the point")
	}
}

func TestPubKeyHexRoundTrip(t *testing.T) {
	pub := samplePrivKey(t).PubKey()

	for _, tc := range []struct {
		name   string
		hex    string
		format PubKeyFormat
	}{
		{"uncompressed", pub.HexUncompressed(), FormatHex},
		{"compressed", pub.HexCompressed(), FormatHexCompressed},
		{"electrum", pub.HexElectrum(), FormatHexElectrum},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, format, err := ParsePubKeyHex(tc.hex)
			if err != nil {
				t.Fatalf("ParsePubKeyHex: %v", err)
			}
			if format != tc.format {
				t.Fatalf("format = %v, want %v", format, tc.format)
			}
			if got.X.Cmp(pub.X) != 0 || got.Y.Cmp(pub.Y) != 0 {
				t.Fatal("hex round trip changed the point")
			}

			gotAny, formatAny, err := ParsePubKeyAny(tc.hex)
			if err != nil {
				t.Fatalf("ParsePubKeyAny: %v", err)
			}
			if formatAny != tc.format || gotAny.X.Cmp(pub.X) != 0 {
				t.Fatal("ParsePubKeyAny disagreed with ParsePubKeyHex")
			}
		})
	}
}

func TestPubKeyRejectsOffCurvePoint(t *testing.T) {
	bad := make([]byte, 65)
	bad[0] = 0x04
	bad[1] = 1 // x = 1, y = 1: not on secp256k1
	bad[64] = 1
	if _, _, err := ParsePubKeyBin(bad); err == nil {
		t.Fatal("expected an error for an off-curve point")
	}
}

func TestPrivKeyBinHexWIFRoundTrip(t *testing.T) {
	pk := samplePrivKey(t)

	bin := pk.Serialize()
	got, format, err := ParsePrivKeyBin(bin)
	if err != nil {
		t.Fatalf("ParsePrivKeyBin: %v", err)
	}
	if format != FormatPrivBin || got.D.Cmp(pk.D) != 0 {
		t.Fatal("bin round trip mismatch")
	}

	hex := pk.Hex()
	got, format, err = ParsePrivKeyHex(hex)
	if err != nil {
		t.Fatalf("ParsePrivKeyHex: %v", err)
	}
	if format != FormatPrivHex || got.D.Cmp(pk.D) != 0 {
		t.Fatal("hex round trip mismatch")
	}

	for _, compressed := range []bool{false, true} {
		wif := pk.WIF(VersionP2PKH, compressed)
		got, gotCompressed, err := ParsePrivKeyWIF(wif, VersionP2PKH)
		if err != nil {
			t.Fatalf("ParsePrivKeyWIF(compressed=%v): %v", compressed, err)
		}
		if gotCompressed != compressed {
			t.Fatalf("compressed = %v, want %v", gotCompressed, compressed)
		}
		if got.D.Cmp(pk.D) != 0 {
			t.Fatal("WIF round trip changed the scalar")
		}
	}
}

func TestParsePrivKeyWIFWrongNetwork(t *testing.T) {
	pk := samplePrivKey(t)
	wif := pk.WIF(VersionP2PKH, true)
	if _, _, err := ParsePrivKeyWIF(wif, VersionP2SH); err == nil {
		t.Fatal("expected a wrong-network error")
	}
}

func TestDetectPrivKeyFormat(t *testing.T) {
	pk := samplePrivKey(t)

	cases := []struct {
		name     string
		input    string
		format   PrivKeyFormat
		compress bool
	}{
		{"decimal", pk.D.String(), FormatPrivDecimal, false},
		{"hex", pk.Hex(), FormatPrivHex, false},
		{"wif", pk.WIF(VersionP2PKH, false), FormatPrivWIF, false},
		{"wif_compressed", pk.WIF(VersionP2PKH, true), FormatPrivWIFCompressed, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, format, compressed, err := DetectPrivKeyFormat(tc.input, VersionP2PKH)
			if err != nil {
				t.Fatalf("DetectPrivKeyFormat: %v", err)
			}
			if format != tc.format {
				t.Fatalf("format = %v, want %v", format, tc.format)
			}
			if compressed != tc.compress {
				t.Fatalf("compressed = %v, want %v", compressed, tc.compress)
			}
			if got.D.Cmp(pk.D) != 0 {
				t.Fatal("detected key has the wrong scalar")
			}
		})
	}
}

func TestConvertPrivKeyToPubKeyHexFamily(t *testing.T) {
	pk := samplePrivKey(t)
	pub := pk.PubKey()

	gotHex, err := ConvertPrivKeyToPubKeyHex(pk.WIF(VersionP2PKH, false), VersionP2PKH)
	if err != nil {
		t.Fatalf("ConvertPrivKeyToPubKeyHex(wif): %v", err)
	}
	if gotHex != pub.HexUncompressed() {
		t.Fatal("wif should convert to uncompressed hex")
	}

	gotHex, err = ConvertPrivKeyToPubKeyHex(pk.WIF(VersionP2PKH, true), VersionP2PKH)
	if err != nil {
		t.Fatalf("ConvertPrivKeyToPubKeyHex(wif_compressed): %v", err)
	}
	if gotHex != pub.HexCompressed() {
		t.Fatal("wif_compressed should convert to compressed hex")
	}
}

// TestAddressFromPrivKeyMatchesRegex checks that for every valid private
// key, the address derived from its public key matches the address
// recognition regex and round-trips through Base58Check.
func TestAddressFromPrivKeyMatchesRegex(t *testing.T) {
	pk := samplePrivKey(t)
	pub := pk.PubKey()

	addr := PubKeyToAddress(pub.SerializeCompressed(), VersionP2PKH)
	if !LooksLikeAddress(addr) {
		t.Fatalf("address %q does not match the recognition regex", addr)
	}

	payload, err := b58.B58CheckToBin(addr)
	if err != nil {
		t.Fatalf("B58CheckToBin: %v", err)
	}
	ver, err := b58.VersionByte(addr)
	if err != nil {
		t.Fatalf("VersionByte: %v", err)
	}
	if ver != VersionP2PKH {
		t.Fatalf("version byte = %d, want %d", ver, VersionP2PKH)
	}
	if len(payload) != 20 {
		t.Fatalf("payload length = %d, want 20 (HASH160)", len(payload))
	}
}
