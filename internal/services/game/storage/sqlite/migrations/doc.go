// Package migrations embeds the SQL migrations for the game store.
package migrations

import "embed"

// GamesFS holds the games/*.sql migrations.
//
//go:embed games/*.sql
var GamesFS embed.FS
