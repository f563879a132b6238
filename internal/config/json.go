package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/exebots/secstore/internal/flagx"
	"github.com/exebots/secstore/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies
// on timex.Duration so JSON can specify the session lifetime either as a
// string like "30m" or as integer nanoseconds. After parsing, values are
// copied into the runtime Config.
type JsonConfig struct {
	DatabasePath     string         `json:"database_path"`
	SessionPreset    string         `json:"session_preset"`
	SessionTTL       timex.Duration `json:"session_ttl"`
	PasswordPolicy   string         `json:"password_policy"`
	KeyIterations    int            `json:"key_iterations"`
	EventLogCapacity int            `json:"event_log_capacity"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Absent JSON fields keep the value the earlier layers produced. Panics
// on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	jc := JsonConfig{
		DatabasePath:     cfg.DatabasePath,
		SessionPreset:    cfg.SessionPreset,
		SessionTTL:       timex.Duration{Duration: cfg.SessionTTL},
		PasswordPolicy:   cfg.PasswordPolicy,
		KeyIterations:    cfg.KeyIterations,
		EventLogCapacity: cfg.EventLogCapacity,
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.DatabasePath = jc.DatabasePath
	cfg.SessionPreset = jc.SessionPreset
	cfg.SessionTTL = time.Duration(jc.SessionTTL.Duration)
	cfg.PasswordPolicy = jc.PasswordPolicy
	cfg.KeyIterations = jc.KeyIterations
	cfg.EventLogCapacity = jc.EventLogCapacity
}
