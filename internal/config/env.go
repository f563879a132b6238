package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. A
// .env file in the working directory is loaded first, if present; real
// environment variables win over it.
//
// Recognized variables:
//
//	SECSTORE_DATABASE_PATH      string
//	SECSTORE_SESSION_PRESET     "short" | "remember"
//	SECSTORE_SESSION_TTL        Go duration, e.g. "45m"
//	SECSTORE_PASSWORD_POLICY    "strict" | "relaxed"
//	SECSTORE_KEY_ITERATIONS     int
//	SECSTORE_EVENT_LOG_CAPACITY int
//
// Malformed numeric or duration values are ignored rather than fatal.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("SECSTORE_DATABASE_PATH"); ok {
		cfg.DatabasePath = v
	}
	if v, ok := os.LookupEnv("SECSTORE_SESSION_PRESET"); ok {
		cfg.SessionPreset = v
	}
	if v, ok := os.LookupEnv("SECSTORE_SESSION_TTL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.SessionTTL = d
		}
	}
	if v, ok := os.LookupEnv("SECSTORE_PASSWORD_POLICY"); ok {
		cfg.PasswordPolicy = v
	}
	if v, ok := os.LookupEnv("SECSTORE_KEY_ITERATIONS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.KeyIterations = n
		}
	}
	if v, ok := os.LookupEnv("SECSTORE_EVENT_LOG_CAPACITY"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.EventLogCapacity = n
		}
	}
}
