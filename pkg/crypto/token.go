package crypto

// Verification proof material. One random token yields two presentation
// formats: a DNS TXT record value and a bio-insertable marker. Legacy
// record prefixes remain accepted by the DNS checker for records
// published before the rename.
const (
	// TXTRecordPrefix is the current DNS TXT value prefix
	TXTRecordPrefix = "aeobro-site-verify="
	// LegacyTXTRecordPrefix is the pre-rename DNS TXT value prefix
	LegacyTXTRecordPrefix = "aeobro-verification="
	// BioMarkerPrefix is the prefix of the code-in-bio marker
	BioMarkerPrefix = "aeobro-verify-"

	// VerifyTokenBytes is the entropy of a verification token (hex doubles it)
	VerifyTokenBytes = 16
)

// MintVerifyToken generates a fresh opaque verification token.
// Each verification start mints a new one, superseding any prior
// challenge so a stale token cannot stay valid indefinitely.
func MintVerifyToken() (string, error) {
	return GenerateRandomToken(VerifyTokenBytes)
}

// TXTRecordValue formats a token as the expected DNS TXT record value
func TXTRecordValue(token string) string {
	return TXTRecordPrefix + token
}

// LegacyTXTRecordValues returns the older accepted record formats
func LegacyTXTRecordValues(token string) []string {
	return []string{LegacyTXTRecordPrefix + token, token}
}

// BioMarker formats a token as the marker the user pastes into a bio
func BioMarker(token string) string {
	return BioMarkerPrefix + token
}
