package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword computes the single-round SHA-256 digest of password and
// returns it hex-encoded.
//
// The digest is unsalted: verification recomputes the digest of the supplied
// password and compares it to the stored value.
//
// Example usage:
//
//	stored := utils.HashPassword("s3cret")
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
