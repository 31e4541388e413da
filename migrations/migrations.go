// Package migrations embeds the SQL schema migrations consumed by the
// migrate:* commands.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
