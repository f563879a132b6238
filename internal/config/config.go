// Package config handles configuration for the CLI, including defaults,
// environment overlay (.env supported), JSON overlay, and command-line
// flags. Later sources take precedence.
package config

import (
	"fmt"
	"time"

	"github.com/exebots/secstore/internal/digest"
	"github.com/exebots/secstore/internal/events"
	"github.com/exebots/secstore/internal/sanitize"
	"github.com/exebots/secstore/internal/session"
)

// Config holds runtime settings for the secstore CLI.
//
// Fields:
//   - DatabasePath: SQLite database file, or ":memory:" for an ephemeral store.
//   - SessionPreset: "short" (sliding 30m) or "remember" (fixed 24h).
//   - SessionTTL: overrides the preset's lifetime when non-zero.
//   - PasswordPolicy: "strict" or "relaxed".
//   - KeyIterations: PBKDF2 work factor for master key derivation.
//   - EventLogCapacity: bound on the retained audit events.
type Config struct {
	DatabasePath     string
	SessionPreset    string
	SessionTTL       time.Duration
	PasswordPolicy   string
	KeyIterations    int
	EventLogCapacity int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "secstore.db"
	c.SessionPreset = "short"
	c.SessionTTL = 0
	c.PasswordPolicy = "strict"
	c.KeyIterations = digest.DefaultIterations
	c.EventLogCapacity = events.DefaultCapacity
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if present) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// Preset resolves the configured session preset, applying the TTL
// override when set.
func (c *Config) Preset() (session.Preset, error) {
	var p session.Preset
	switch c.SessionPreset {
	case "short":
		p = session.SessionShort
	case "remember":
		p = session.SessionRemember
	default:
		return p, fmt.Errorf("unknown session preset %q", c.SessionPreset)
	}
	if c.SessionTTL > 0 {
		p.TTL = c.SessionTTL
	}
	return p, nil
}

// Policy resolves the configured password policy.
func (c *Config) Policy() (sanitize.PasswordPolicy, error) {
	switch c.PasswordPolicy {
	case "strict":
		return sanitize.PolicyStrict, nil
	case "relaxed":
		return sanitize.PolicyRelaxed, nil
	default:
		return 0, fmt.Errorf("unknown password policy %q", c.PasswordPolicy)
	}
}
