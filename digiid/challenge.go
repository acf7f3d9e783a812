package digiid

import (
	"fmt"
	"net/url"
)

// Challenge is an immutable DigiID login challenge: a single-use nonce
// paired with the callback URL the wallet should sign, and whether that
// callback is reachable over HTTPS.
type Challenge struct {
	Nonce    string
	Callback *url.URL
	Secure   bool
}

// MakeChallenge parses callback as an absolute URL and returns the
// corresponding Challenge.
func MakeChallenge(nonce, callback string, secure bool) (Challenge, error) {
	u, err := url.ParseRequestURI(callback)
	if err != nil || !u.IsAbs() {
		return Challenge{}, makeError(ErrInvalidCallback, "callback is not a parseable absolute URL")
	}
	return Challenge{Nonce: nonce, Callback: u, Secure: secure}, nil
}

// GenerateURI builds the digiid:// URI a wallet signs to answer c,
// replacing the callback's scheme with "digiid" and appending the nonce
// (and, when the callback is insecure, "u=1") as query parameters in a
// fixed x-then-u order.
func GenerateURI(c Challenge) (string, error) {
	if c.Callback == nil {
		return "", makeError(ErrInvalidCallback, "challenge has no callback URL")
	}
	u := *c.Callback
	u.Scheme = "digiid"

	query := "x=" + c.Nonce
	if !c.Secure {
		query += "&u=1"
	}
	u.RawQuery = query

	return u.String(), nil
}

// URIValid reports whether uri is the exact URI GenerateURI would have
// produced for c. Equality is a raw string comparison rather than a
// parsed multi-map comparison, matching GenerateURI's own determinism in
// parameter order.
func URIValid(c Challenge, uri string) bool {
	want, err := GenerateURI(c)
	if err != nil {
		return false
	}
	return uri == want
}

// QRURL returns a QR-code rendering service URL for uri. It only formats
// a string; no request is made.
func QRURL(uri string) string {
	return fmt.Sprintf("https://chart.googleapis.com/chart?chs=280x280&cht=qr&chl=%s&choe=UTF-8", url.QueryEscape(uri))
}
