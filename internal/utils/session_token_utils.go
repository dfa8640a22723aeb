package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashSessionToken generates a SHA256 hash of a session token. The raw token
// already carries full entropy, so a plain fast hash is sufficient here; this
// is a lookup fingerprint, not a password hash.
func HashSessionToken(token string) string {
	hasher := sha256.New()
	hasher.Write([]byte(token))
	return hex.EncodeToString(hasher.Sum(nil))
}
