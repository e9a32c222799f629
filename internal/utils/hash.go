package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashToken returns the hex SHA-256 digest of a bearer-style random token.
// Only the digest is persisted, so a database leak does not expose usable
// tokens. Tokens carry 256 bits of entropy, so no salt or key is needed.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
