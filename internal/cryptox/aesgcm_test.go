package cryptox

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exebots/secstore/internal/common"
)

func testKey(b byte) []byte {
	key := make([]byte, 32)
	for i := range key {
		key[i] = b
	}
	return key
}

type payload struct {
	Email string         `json:"email"`
	Count int            `json:"count"`
	Tags  []string       `json:"tags"`
	Meta  map[string]any `json:"meta"`
}

func TestAESGCM_RoundTrip(t *testing.T) {
	c := NewAESGCM()
	key := testKey(0x42)

	in := payload{
		Email: "a@b.com",
		Count: 3,
		Tags:  []string{"x", "y"},
		Meta:  map[string]any{"k": "v"},
	}

	blob, err := c.Encrypt(key, in)
	require.NoError(t, err)

	var out payload
	require.NoError(t, c.Decrypt(key, blob, &out))
	assert.Equal(t, in, out)
}

func TestAESGCM_FreshNoncePerEncryption(t *testing.T) {
	c := NewAESGCM()
	key := testKey(0x42)

	a, err := c.Encrypt(key, "same value")
	require.NoError(t, err)
	b, err := c.Encrypt(key, "same value")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestAESGCM_WrongKeyFailsIntegrity(t *testing.T) {
	c := NewAESGCM()

	blob, err := c.Encrypt(testKey(0x42), "secret")
	require.NoError(t, err)

	var out string
	err = c.Decrypt(testKey(0x43), blob, &out)
	require.ErrorIs(t, err, common.ErrorIntegrity)
	assert.Empty(t, out)
}

func TestAESGCM_TamperedBlobFailsIntegrity(t *testing.T) {
	c := NewAESGCM()
	key := testKey(0x42)

	blob, err := c.Encrypt(key, map[string]string{"a": "b"})
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(blob)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0xFF
	tampered := base64.StdEncoding.EncodeToString(raw)

	var out map[string]string
	err = c.Decrypt(key, tampered, &out)
	require.ErrorIs(t, err, common.ErrorIntegrity)
}

func TestAESGCM_TruncatedBlobFailsIntegrity(t *testing.T) {
	c := NewAESGCM()

	var out any
	err := c.Decrypt(testKey(0x42), base64.StdEncoding.EncodeToString([]byte("short")), &out)
	require.ErrorIs(t, err, common.ErrorIntegrity)
}

func TestAESGCM_NotBase64FailsIntegrity(t *testing.T) {
	c := NewAESGCM()

	var out any
	err := c.Decrypt(testKey(0x42), "%%% not base64 %%%", &out)
	require.ErrorIs(t, err, common.ErrorIntegrity)
}

func TestAESGCM_TypeMismatchFailsDecode(t *testing.T) {
	c := NewAESGCM()
	key := testKey(0x42)

	blob, err := c.Encrypt(key, "just a string")
	require.NoError(t, err)

	var out struct{ N int }
	err = c.Decrypt(key, blob, &out)
	require.ErrorIs(t, err, common.ErrorDecode)
}

func TestAESGCM_UnserializableValueFailsValidation(t *testing.T) {
	c := NewAESGCM()

	_, err := c.Encrypt(testKey(0x42), make(chan int))
	require.ErrorIs(t, err, common.ErrorValidation)
	assert.NotErrorIs(t, err, common.ErrorDecode)
}
