package postgres

import "embed"

// MigrationsFS holds the SQL schema migrations applied by cmd/migrate and the
// integration tests.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS
