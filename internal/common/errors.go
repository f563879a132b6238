// Package common defines shared constants and sentinel errors used across
// secstore components. Callers should use errors.Is to match these values.
package common

import "errors"

var (

	// storage / record lookup errors
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")
	ErrorStorage       = errors.New("storage failure")

	// validation / credential errors
	ErrorValidation         = errors.New("validation error")
	ErrorInvalidCredentials = errors.New("invalid email or password")

	// Cipher errors. ErrorIntegrity means the blob failed its integrity
	// check (tampered or corrupted); ErrorDecode means decryption succeeded
	// but the plaintext could not be deserialized. Callers must treat both
	// as "value unavailable".
	ErrorIntegrity = errors.New("integrity check failed")
	ErrorDecode    = errors.New("decode failed")

	// session lifecycle errors
	ErrorSessionExpired = errors.New("session expired")
	ErrInvalidToken     = errors.New("invalid token")
)
