// Package cli implements the interactive shell over the security suite:
// registration, login, session inspection and the audit trail.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/exebots/secstore/internal/config"
	"github.com/exebots/secstore/internal/logging"
	"github.com/exebots/secstore/internal/security"
	"github.com/exebots/secstore/internal/storage"
)

type App struct {
	config *config.Config
	suite  *security.Suite
	db     *sql.DB
	token  string
	reader *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	preset, err := c.Preset()
	if err != nil {
		return nil, err
	}
	policy, err := c.Policy()
	if err != nil {
		return nil, err
	}

	kv, db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		return nil, err
	}

	suite, err := security.New(ctx, security.Config{
		Storage:          kv,
		Log:              log,
		PasswordPolicy:   policy,
		SessionPreset:    preset,
		KeyIterations:    c.KeyIterations,
		EventLogCapacity: c.EventLogCapacity,
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	app := &App{
		config: c,
		suite:  suite,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
	}

	// pick up a session left by a previous run; absent or expired is normal
	if sess, token, err := suite.Resume(ctx); err == nil {
		app.token = token
		log.Info(ctx, "session resumed", "email", sess.Email)
	}

	return app, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}
