package migrations

import "embed"

// FS holds the goose migrations applied by the server, courtctl and the e2e suite.
//
//go:embed *.sql
var FS embed.FS
