// Package device builds a stable per-device fingerprint used to derive the
// local master key. The fingerprint is advisory: it ties stored data to the
// machine that wrote it, nothing more.
package device

import (
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/exebots/secstore/internal/digest"
)

// Components returns the raw fingerprint components in a fixed order.
// Separated from Fingerprint so tests can inspect them.
func Components() []string {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	return []string{
		hostname,
		runtime.GOOS,
		runtime.GOARCH,
		strconv.Itoa(runtime.NumCPU()),
		os.Getenv("LANG"),
	}
}

// Fingerprint returns the hex SHA-256 digest of the pipe-joined components.
// Deterministic on a given machine.
func Fingerprint() string {
	return digest.Sum256Hex(strings.Join(Components(), "|"))
}
