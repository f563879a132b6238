package security

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exebots/secstore/internal/common"
	"github.com/exebots/secstore/internal/storage"
)

func TestLoadOrCreateInstallSalt(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()

	first, err := LoadOrCreateInstallSalt(ctx, kv)
	require.NoError(t, err)
	require.Len(t, first, saltSize*2) // hex-encoded

	// second call returns the persisted value, not a fresh one
	second, err := LoadOrCreateInstallSalt(ctx, kv)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	stored, ok, err := kv.Get(ctx, common.KeyInstallSalt)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, first, stored)
}

func TestDeriveMasterKey(t *testing.T) {
	key := DeriveMasterKey("fingerprint", "salt", 1000)
	require.Len(t, key, 32)

	assert.Equal(t, key, DeriveMasterKey("fingerprint", "salt", 1000))
	assert.NotEqual(t, key, DeriveMasterKey("fingerprint", "other", 1000))
	assert.NotEqual(t, key, DeriveMasterKey("other", "salt", 1000))
}
