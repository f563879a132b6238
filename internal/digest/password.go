package digest

import (
	"crypto/subtle"
	"encoding/hex"
	"strconv"

	"golang.org/x/crypto/argon2"

	"github.com/exebots/secstore/internal/randx"
)

// HashedPassword carries a password hash together with the salt it was
// derived with, so the salt can be persisted alongside the hash.
type HashedPassword struct {
	Hash string
	Salt string
}

// PasswordHasher hashes and verifies passwords. Implementations must be
// deterministic given the same (password, salt) pair.
//
// PBKDF2Hasher is the default; Argon2Hasher is the modern alternative;
// LegacyHasher exists only to verify records written by the old auth flow.
type PasswordHasher interface {
	// Hash derives a hash for the password. When salt is empty a fresh
	// random salt is generated; the returned value always includes the salt
	// actually used.
	Hash(password, salt string) (*HashedPassword, error)

	// Verify recomputes the hash for (password, salt) and compares it to
	// the stored hash in constant time.
	Verify(password, hash, salt string) (bool, error)
}

const saltBytes = 16

// PBKDF2Hasher hashes passwords with PBKDF2-SHA256. This is the strong
// default scheme.
type PBKDF2Hasher struct {
	Iterations int
}

// NewPBKDF2Hasher returns a PBKDF2Hasher with the default work factor.
func NewPBKDF2Hasher() *PBKDF2Hasher {
	return &PBKDF2Hasher{Iterations: DefaultIterations}
}

func (h *PBKDF2Hasher) Hash(password, salt string) (*HashedPassword, error) {
	if salt == "" {
		s, err := randx.HexString(saltBytes)
		if err != nil {
			return nil, err
		}
		salt = s
	}
	key := DeriveKey([]byte(password), []byte(salt), h.Iterations, KeySize)
	return &HashedPassword{Hash: hex.EncodeToString(key), Salt: salt}, nil
}

func (h *PBKDF2Hasher) Verify(password, hash, salt string) (bool, error) {
	candidate, err := h.Hash(password, salt)
	if err != nil {
		return false, err
	}
	return constantTimeEqual(candidate.Hash, hash), nil
}

// Argon2Hasher hashes passwords with Argon2id. Parameters follow the
// project-wide key-derivation settings (t=1, m=64MiB, p=4, 32 bytes).
type Argon2Hasher struct{}

func NewArgon2Hasher() *Argon2Hasher { return &Argon2Hasher{} }

func (h *Argon2Hasher) Hash(password, salt string) (*HashedPassword, error) {
	if salt == "" {
		s, err := randx.HexString(saltBytes)
		if err != nil {
			return nil, err
		}
		salt = s
	}
	key := argon2.IDKey([]byte(password), []byte(salt), 1, 64*1024, 4, KeySize)
	return &HashedPassword{Hash: hex.EncodeToString(key), Salt: salt}, nil
}

func (h *Argon2Hasher) Verify(password, hash, salt string) (bool, error) {
	candidate, err := h.Hash(password, salt)
	if err != nil {
		return false, err
	}
	return constantTimeEqual(candidate.Hash, hash), nil
}

// LegacyHasher reproduces the old auth flow's 32-bit shift hash rendered in
// base 36. It ignores the salt, collides trivially and must never be a
// default; it is kept so records written by that flow remain verifiable.
type LegacyHasher struct{}

func NewLegacyHasher() *LegacyHasher { return &LegacyHasher{} }

func (h *LegacyHasher) Hash(password, _ string) (*HashedPassword, error) {
	var hash int32
	for _, r := range password {
		hash = (hash << 5) - hash + int32(r)
	}
	return &HashedPassword{Hash: strconv.FormatInt(int64(hash), 36)}, nil
}

func (h *LegacyHasher) Verify(password, hash, _ string) (bool, error) {
	candidate, err := h.Hash(password, "")
	if err != nil {
		return false, err
	}
	return constantTimeEqual(candidate.Hash, hash), nil
}

func constantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
