// Package migrations embeds the goose SQL migrations that define the chat
// board schema. Running them is idempotent: goose tracks applied versions, so
// existing tables and their data are never touched.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
