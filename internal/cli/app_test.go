package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exebots/secstore/internal/config"
)

func testAppConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.DatabasePath = ":memory:"
	c.KeyIterations = 1000
	return c
}

func TestNewApp(t *testing.T) {
	ctx := context.Background()

	app, err := NewApp(ctx, testAppConfig())
	require.NoError(t, err)
	t.Cleanup(func() { app.db.Close() })

	assert.False(t, app.isLoggedIn())
	assert.Equal(t, "logged out", app.status())

	// the wired suite is fully usable end to end
	_, err = app.suite.Users.Register(ctx, "a@b.com", "Ana", "StrongP@ss1")
	require.NoError(t, err)
	_, token, err := app.suite.Login(ctx, "a@b.com", "StrongP@ss1")
	require.NoError(t, err)

	app.token = token
	assert.Equal(t, "logged in", app.status())
}

func TestNewApp_RejectsBadConfig(t *testing.T) {
	c := testAppConfig()
	c.SessionPreset = "forever"

	_, err := NewApp(context.Background(), c)
	require.Error(t, err)
}

func TestNewApp_ResumesSessionAcrossRestart(t *testing.T) {
	ctx := context.Background()
	c := testAppConfig()
	c.DatabasePath = filepath.Join(t.TempDir(), "secstore.db")
	c.SessionPreset = "remember"

	first, err := NewApp(ctx, c)
	require.NoError(t, err)
	_, err = first.suite.Users.Register(ctx, "a@b.com", "Ana", "StrongP@ss1")
	require.NoError(t, err)
	_, _, err = first.suite.Login(ctx, "a@b.com", "StrongP@ss1")
	require.NoError(t, err)
	require.NoError(t, first.db.Close())

	// a second App over the same database file models a restart: the
	// persisted 24h session is picked up without the old token
	second, err := NewApp(ctx, c)
	require.NoError(t, err)
	t.Cleanup(func() { second.db.Close() })

	assert.True(t, second.isLoggedIn())
	sess, err := second.suite.Sessions.Current(ctx, second.token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", sess.Email)
}
