package cryptox

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/exebots/secstore/internal/common"
)

// LegacyXOR is the pre-rewrite storage cipher: the JSON plaintext combined
// byte-wise with a repeating key, then base64-encoded. It is reversible and
// carries no integrity tag, so tampering cannot be detected — a decode that
// happens to produce valid JSON is accepted.
//
// Deprecated: kept only so blobs written by the old storage facade remain
// readable during migration. Never use it for new writes.
type LegacyXOR struct{}

func NewLegacyXOR() *LegacyXOR { return &LegacyXOR{} }

func (c *LegacyXOR) Encrypt(key []byte, v any) (string, error) {
	if len(key) == 0 {
		return "", fmt.Errorf("%w: empty key", common.ErrorIntegrity)
	}
	plaintext, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: unserializable value: %v", common.ErrorValidation, err)
	}
	return base64.StdEncoding.EncodeToString(keystream(key, plaintext)), nil
}

func (c *LegacyXOR) Decrypt(key []byte, blob string, v any) error {
	if len(key) == 0 {
		return fmt.Errorf("%w: empty key", common.ErrorIntegrity)
	}
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorIntegrity, err)
	}
	plaintext := keystream(key, raw)
	if err := json.Unmarshal(plaintext, v); err != nil {
		// no tag to check; a garbage key surfaces here
		return fmt.Errorf("%w: %v", common.ErrorDecode, err)
	}
	return nil
}

// keystream XORs data with the key repeated; its own inverse.
func keystream(key, data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ key[i%len(key)]
	}
	return out
}
