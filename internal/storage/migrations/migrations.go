// Package migrations embeds the SQL migrations for the SQLite substrate.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
