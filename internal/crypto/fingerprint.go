package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns a short hex fingerprint of a token.
//
// It hashes with SHA-256 and truncates to 10 bytes (20 hex chars), so the
// token itself never has to be printed.
func Fingerprint(token []byte) string {
	if len(token) == 0 {
		return ""
	}
	sum := sha256.Sum256(token)
	return hex.EncodeToString(sum[:10])
}
