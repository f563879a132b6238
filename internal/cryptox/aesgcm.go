package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/exebots/secstore/internal/common"
)

// NonceSize is the AES-GCM nonce length in bytes (96-bit).
const NonceSize = 12

// AESGCM is the primary authenticated codec: AES-256-GCM over JSON.
//
// The key must be a valid AES key length (16, 24, or 32 bytes). A new random
// 12-byte nonce is generated for each encryption and prepended to the
// ciphertext; the whole frame is base64-encoded:
//
//	blob = base64( nonce || ciphertext+tag )
type AESGCM struct{}

func NewAESGCM() *AESGCM { return &AESGCM{} }

func (c *AESGCM) Encrypt(key []byte, v any) (string, error) {

	// serializing JSON
	plaintext, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: unserializable value: %v", common.ErrorValidation, err)
	}

	aesgcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	// nonce
	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	// encrypting; frame is nonce || ciphertext
	ciphertext := aesgcm.Seal(nonce, nonce, plaintext, nil)

	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

func (c *AESGCM) Decrypt(key []byte, blob string, v any) error {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorIntegrity, err)
	}
	if len(raw) < NonceSize {
		return fmt.Errorf("%w: blob too short", common.ErrorIntegrity)
	}

	aesgcm, err := newGCM(key)
	if err != nil {
		return err
	}

	nonce, ciphertext := raw[:NonceSize], raw[NonceSize:]
	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		// tag mismatch: tampered, corrupted, or wrong key
		return fmt.Errorf("%w: %v", common.ErrorIntegrity, err)
	}

	if err := json.Unmarshal(plaintext, v); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorDecode, err)
	}
	return nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
