package digiid

import (
	"math/big"
	"strings"
	"testing"

	"github.com/digibyte-org/digiid/keys"
	"github.com/digibyte-org/digiid/secp256k1/ecdsa"
)

func TestGenerateURI(t *testing.T) {
	secureChallenge, err := MakeChallenge("abc123", "https://example.com/cb", true)
	if err != nil {
		t.Fatalf("MakeChallenge: %v", err)
	}
	got, err := GenerateURI(secureChallenge)
	if err != nil {
		t.Fatalf("GenerateURI: %v", err)
	}
	if want := "digiid://example.com/cb?x=abc123"; got != want {
		t.Fatalf("GenerateURI(secure) = %q, want %q", got, want)
	}

	insecureChallenge, err := MakeChallenge("abc123", "https://example.com/cb", false)
	if err != nil {
		t.Fatalf("MakeChallenge: %v", err)
	}
	got, err = GenerateURI(insecureChallenge)
	if err != nil {
		t.Fatalf("GenerateURI: %v", err)
	}
	if want := "digiid://example.com/cb?x=abc123&u=1"; got != want {
		t.Fatalf("GenerateURI(insecure) = %q, want %q", got, want)
	}
}

func TestURIValid(t *testing.T) {
	c, err := MakeChallenge("nonce1", "https://example.com/login", true)
	if err != nil {
		t.Fatalf("MakeChallenge: %v", err)
	}
	uri, err := GenerateURI(c)
	if err != nil {
		t.Fatalf("GenerateURI: %v", err)
	}
	if !URIValid(c, uri) {
		t.Fatal("URIValid rejected the URI generated from the same challenge")
	}
	if URIValid(c, uri+"x") {
		t.Fatal("URIValid accepted a tampered URI")
	}
}

func TestMakeChallengeRejectsInvalidCallback(t *testing.T) {
	if _, err := MakeChallenge("n", "::not a url::", true); err == nil {
		t.Fatal("expected an error for an unparseable callback")
	}
}

// TestSignatureValid exercises a full challenge/sign/verify round trip
// through the public DigiIdProtocol surface.
func TestSignatureValid(t *testing.T) {
	d, ok := new(big.Int).SetString("7B1F2E3D4C5B6A798807F6E5D4C3B2A190817263544536271809F1E2D3C4B5A", 16)
	if !ok {
		t.Fatal("bad fixture scalar")
	}
	priv, err := keys.NewPrivKey(d)
	if err != nil {
		t.Fatalf("NewPrivKey: %v", err)
	}
	pub := priv.PubKey()
	addr := keys.PubKeyToAddress(pub.SerializeCompressed(), keys.VersionP2PKH)

	c, err := MakeChallenge("abc123", "https://example.com/cb", true)
	if err != nil {
		t.Fatalf("MakeChallenge: %v", err)
	}
	uri, err := GenerateURI(c)
	if err != nil {
		t.Fatalf("GenerateURI: %v", err)
	}

	wif := priv.WIF(keys.VersionP2PKH, true)
	signature, err := ecdsa.SignMessage(uri, wif, keys.VersionP2PKH)
	if err != nil {
		t.Fatalf("SignMessage: %v", err)
	}

	if !SignatureValid(uri, addr, signature) {
		t.Fatal("SignatureValid rejected a signature produced for the claimed address")
	}
}

func TestSignatureValidRejectsTamperedURI(t *testing.T) {
	d, ok := new(big.Int).SetString("1122334455667788990011223344556677889900112233445566778899AABB", 16)
	if !ok {
		t.Fatal("bad fixture scalar")
	}
	priv, err := keys.NewPrivKey(d)
	if err != nil {
		t.Fatalf("NewPrivKey: %v", err)
	}
	pub := priv.PubKey()
	addr := keys.PubKeyToAddress(pub.SerializeCompressed(), keys.VersionP2PKH)

	c, err := MakeChallenge("nonce42", "https://example.com/cb", true)
	if err != nil {
		t.Fatalf("MakeChallenge: %v", err)
	}
	uri, err := GenerateURI(c)
	if err != nil {
		t.Fatalf("GenerateURI: %v", err)
	}

	wif := priv.WIF(keys.VersionP2PKH, true)
	signature, err := ecdsa.SignMessage(uri, wif, keys.VersionP2PKH)
	if err != nil {
		t.Fatalf("SignMessage: %v", err)
	}

	tampered := uri[:len(uri)-1] + "9"
	if SignatureValid(tampered, addr, signature) {
		t.Fatal("SignatureValid accepted a signature over a tampered URI")
	}
}

func TestQRURLEscapesURI(t *testing.T) {
	got := QRURL("digiid://example.com/cb?x=abc123&u=1")
	if got == "" {
		t.Fatal("QRURL returned an empty string")
	}
	if want := "chl=digiid%3A%2F%2Fexample.com%2Fcb%3Fx%3Dabc123%26u%3D1&"; !strings.Contains(got, want) {
		t.Fatalf("QRURL = %q, want it to contain the escaped URI %q", got, want)
	}
}
