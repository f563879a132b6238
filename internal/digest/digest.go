// Package digest implements the one-way hashing and key-derivation
// primitives of the security core: SHA-256 content digests, PBKDF2 key
// derivation, and password hashing behind a small interface with one strong
// default and clearly labeled compatibility variants.
package digest

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

// DefaultIterations is the PBKDF2 work factor used for key derivation and
// password hashing. Deliberately slow; tune it, do not hardcode call sites.
const DefaultIterations = 100_000

// KeySize is the derived key length in bytes (256-bit keys).
const KeySize = 32

// Sum256Hex returns the lowercase hex SHA-256 digest of the UTF-8 input.
// Deterministic; used for device fingerprints and content hashes.
func Sum256Hex(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// DeriveKey derives keyLen bytes of key material from the secret and salt
// using PBKDF2-SHA256 with the given iteration count. The salt must be
// unique per derivation context. Output is suitable as a symmetric cipher
// key.
func DeriveKey(secret, salt []byte, iterations, keyLen int) []byte {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	if keyLen <= 0 {
		keyLen = KeySize
	}
	return pbkdf2.Key(secret, salt, iterations, keyLen, sha256.New)
}
