package security

import (
	"context"
	"fmt"

	"github.com/exebots/secstore/internal/common"
	"github.com/exebots/secstore/internal/digest"
	"github.com/exebots/secstore/internal/randx"
	"github.com/exebots/secstore/internal/storage"
)

const saltSize = 16

// LoadOrCreateInstallSalt returns the per-install salt, creating and
// persisting it on first run. The salt lives on the raw substrate, outside
// the encrypted facade, because it participates in deriving the key the
// facade uses.
func LoadOrCreateInstallSalt(ctx context.Context, kv storage.KV) (string, error) {
	salt, ok, err := kv.Get(ctx, common.KeyInstallSalt)
	if err != nil {
		return "", fmt.Errorf("failed to read install salt: %w", err)
	}
	if ok && salt != "" {
		return salt, nil
	}

	salt, err = randx.HexString(saltSize)
	if err != nil {
		return "", fmt.Errorf("failed to generate install salt: %w", err)
	}
	if err := kv.Set(ctx, common.KeyInstallSalt, salt); err != nil {
		return "", fmt.Errorf("failed to persist install salt: %w", err)
	}
	return salt, nil
}

// DeriveMasterKey stretches the device fingerprint and the install salt
// into the 32-byte master key. Deterministic: the same machine and salt
// always yield the same key, so data written in one run decrypts in the
// next.
func DeriveMasterKey(fingerprint, salt string, iterations int) []byte {
	return digest.DeriveKey([]byte(fingerprint+salt), []byte(salt), iterations, digest.KeySize)
}
