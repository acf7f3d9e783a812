package keys

import (
	"regexp"

	"github.com/digibyte-org/digiid/b58"
	"github.com/digibyte-org/digiid/digihash"
)

// Mainnet P2PKH and P2SH version bytes.
const (
	VersionP2PKH = 0x1e
	VersionP2SH  = 0x3f
)

// AddressRegex recognizes DigiByte addresses. Note the lead character is
// matched as a character class rather than an alternation: it tolerates
// Bech32-like leads ("dgb1") even though the Base58Check path below only
// ever produces D/S/3-leading addresses.
var AddressRegex = regexp.MustCompile(`^[D|3|dgb1|S][a-km-zA-HJ-NP-Z0-9]{26,33}$`)

// LooksLikeAddress reports whether s matches the address recognition
// pattern, without validating its Base58Check checksum.
func LooksLikeAddress(s string) bool {
	return AddressRegex.MatchString(s)
}

// PubKeyToAddress derives a Base58Check address under versionByte from the
// raw serialized public key bytes underlying whichever format the key was
// presented in (e.g. 33 bytes for bin_compressed, 65 for bin).
func PubKeyToAddress(serializedPubKey []byte, versionByte byte) string {
	h := digihash.Hash160(serializedPubKey)
	return b58.BinToB58Check(h[:], int(versionByte))
}
