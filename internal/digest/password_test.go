package digest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fast work factor for tests; production uses DefaultIterations
func testHasher() *PBKDF2Hasher {
	return &PBKDF2Hasher{Iterations: 1000}
}

func TestPBKDF2Hasher_HashGeneratesSaltWhenOmitted(t *testing.T) {
	h := testHasher()

	hp, err := h.Hash("StrongP@ss1", "")
	require.NoError(t, err)

	assert.NotEmpty(t, hp.Hash)
	assert.Len(t, hp.Salt, saltBytes*2) // hex-encoded
	assert.NotEqual(t, "StrongP@ss1", hp.Hash)
}

func TestPBKDF2Hasher_DeterministicGivenSalt(t *testing.T) {
	h := testHasher()

	a, err := h.Hash("StrongP@ss1", "fixedsalt")
	require.NoError(t, err)
	b, err := h.Hash("StrongP@ss1", "fixedsalt")
	require.NoError(t, err)

	assert.Equal(t, a.Hash, b.Hash)
	assert.Equal(t, "fixedsalt", a.Salt)
}

func TestPBKDF2Hasher_VerifyRoundTrip(t *testing.T) {
	h := testHasher()

	hp, err := h.Hash("StrongP@ss1", "")
	require.NoError(t, err)

	ok, err := h.Verify("StrongP@ss1", hp.Hash, hp.Salt)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("StrongP@ss2", hp.Hash, hp.Salt)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPBKDF2Hasher_WrongSaltFails(t *testing.T) {
	h := testHasher()

	hp, err := h.Hash("StrongP@ss1", "salt-a")
	require.NoError(t, err)

	ok, err := h.Verify("StrongP@ss1", hp.Hash, "salt-b")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArgon2Hasher_VerifyRoundTrip(t *testing.T) {
	h := NewArgon2Hasher()

	hp, err := h.Hash("StrongP@ss1", "")
	require.NoError(t, err)

	ok, err := h.Verify("StrongP@ss1", hp.Hash, hp.Salt)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("wrong", hp.Hash, hp.Salt)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLegacyHasher_KnownValue(t *testing.T) {
	h := NewLegacyHasher()

	// the old flow's shift hash for "password", base 36
	hp, err := h.Hash("password", "")
	require.NoError(t, err)
	assert.Equal(t, "k4k87v", hp.Hash)
}

func TestLegacyHasher_VerifyIgnoresSalt(t *testing.T) {
	h := NewLegacyHasher()

	hp, err := h.Hash("secret123", "")
	require.NoError(t, err)

	ok, err := h.Verify("secret123", hp.Hash, "whatever")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("secret124", hp.Hash, "")
	require.NoError(t, err)
	assert.False(t, ok)
}
