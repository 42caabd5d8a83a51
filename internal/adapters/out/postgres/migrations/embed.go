// Package migrations holds the goose SQL migrations owning the warehouse schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
