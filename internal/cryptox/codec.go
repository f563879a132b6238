// Package cryptox implements the authenticated cipher used for everything
// the core persists. The primary scheme is AES-256-GCM over canonical JSON
// with a nonce||ciphertext framing; a legacy XOR scheme exists only so blobs
// written before the rewrite stay readable.
package cryptox

// Codec encrypts and decrypts arbitrary JSON-serializable values under a
// symmetric key, producing a self-contained text blob.
type Codec interface {
	// Encrypt serializes v and encrypts it under key, returning a
	// text-encoded blob. Each call draws a fresh nonce.
	Encrypt(key []byte, v any) (string, error)

	// Decrypt parses the blob, decrypts it under key and deserializes the
	// plaintext into v. A failed integrity check yields
	// common.ErrorIntegrity; a deserialization failure after successful
	// decryption yields common.ErrorDecode. Callers must treat both as
	// "value unavailable".
	Decrypt(key []byte, blob string, v any) error
}
