package config

import (
	"flag"
	"os"
	"time"

	"github.com/exebots/secstore/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   SQLite database path (or ":memory:")
//	-s string   session preset: "short" or "remember"
//	-t int      session lifetime override, minutes (0 keeps the preset)
//	-p string   password policy: "strict" or "relaxed"
//	-i int      PBKDF2 work factor for key derivation
//	-l int      audit log capacity
//
// The function first filters os.Args to only the flags it recognizes
// using flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s", "-t", "-p", "-i", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "database path")
	fs.StringVar(&cfg.SessionPreset, "s", cfg.SessionPreset, "session preset (short|remember)")
	sessionTTL := fs.Int("t", int(cfg.SessionTTL.Minutes()), "session lifetime override (in minutes)")
	fs.StringVar(&cfg.PasswordPolicy, "p", cfg.PasswordPolicy, "password policy (strict|relaxed)")
	fs.IntVar(&cfg.KeyIterations, "i", cfg.KeyIterations, "key derivation iterations")
	fs.IntVar(&cfg.EventLogCapacity, "l", cfg.EventLogCapacity, "audit log capacity")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SessionTTL = time.Duration(*sessionTTL) * time.Minute
}
