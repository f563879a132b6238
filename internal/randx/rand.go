// Package randx provides cryptographically strong random material in the
// encodings the rest of the project needs: raw bytes, hex strings, URL-safe
// tokens and alphanumeric strings.
package randx

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Bytes returns size cryptographically secure random bytes.
func Bytes(size int) ([]byte, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// HexString generates a random hexadecimal string of the given size.
// The size parameter specifies the number of random bytes to generate before
// encoding them as a hexadecimal string, so the final string length will be
// twice the size (each byte expands to two hex characters).
func HexString(size int) (string, error) {
	b, err := Bytes(size)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Token returns a URL-safe opaque token built from size random bytes,
// encoded with unpadded base64url. Suitable for session and anti-forgery
// tokens.
func Token(size int) (string, error) {
	b, err := Bytes(size)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// AlphaString returns a random string of length characters drawn from
// [A-Za-z0-9]. The 62-character alphabet does not divide 256 evenly, so the
// modulo below introduces a slight bias; acceptable for identifiers, do not
// use for keys.
func AlphaString(length int) (string, error) {
	b, err := Bytes(length)
	if err != nil {
		return "", err
	}
	out := make([]byte, length)
	for i, v := range b {
		out[i] = alphanumeric[int(v)%len(alphanumeric)]
	}
	return string(out), nil
}

// Wipe overwrites the contents of the provided byte slice with zeros.
// This is useful for removing sensitive data such as passwords or
// cryptographic keys from memory after use.
//
// If the slice is nil, the function does nothing.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
