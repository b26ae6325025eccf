// Package migrations embeds the goose SQL migrations for both storage
// backends. Each backend applies its own dialect sub-tree.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
