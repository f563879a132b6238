package digest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum256Hex_KnownVector(t *testing.T) {
	// SHA-256("abc")
	const want = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	assert.Equal(t, want, Sum256Hex("abc"))
}

func TestSum256Hex_Deterministic(t *testing.T) {
	assert.Equal(t, Sum256Hex("fingerprint|data"), Sum256Hex("fingerprint|data"))
	assert.NotEqual(t, Sum256Hex("a"), Sum256Hex("b"))
}

func TestDeriveKey_Deterministic(t *testing.T) {
	secret := []byte("secret-password")
	salt := []byte("fixed-salt")

	key1 := DeriveKey(secret, salt, 1000, 32)
	key2 := DeriveKey(secret, salt, 1000, 32)

	require.Len(t, key1, 32)
	assert.Equal(t, key1, key2)
}

func TestDeriveKey_DifferentInputs(t *testing.T) {
	secret := []byte("secret-password")

	key1 := DeriveKey(secret, []byte("salt-1"), 1000, 32)
	key2 := DeriveKey(secret, []byte("salt-2"), 1000, 32)

	assert.NotEqual(t, key1, key2)
}

func TestDeriveKey_IterationCountChangesOutput(t *testing.T) {
	secret := []byte("secret-password")
	salt := []byte("salt")

	assert.NotEqual(t,
		DeriveKey(secret, salt, 1000, 32),
		DeriveKey(secret, salt, 2000, 32))
}

func TestDeriveKey_Defaults(t *testing.T) {
	key := DeriveKey([]byte("s"), []byte("salt"), 0, 0)
	assert.Len(t, key, KeySize)
}
