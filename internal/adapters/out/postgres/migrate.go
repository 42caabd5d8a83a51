package postgres

import (
	"context"
	"fmt"

	"warehouse/internal/adapters/out/postgres/migrations"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

// Migrate applies every pending schema migration. It opens its own lib/pq connection so
// the application pool never runs DDL.
func Migrate(ctx context.Context, dsn string) error {
	sqlDB, err := goose.OpenDBWithDriver("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer func() { _ = sqlDB.Close() }()

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, migrations.FS)
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	if _, err = provider.Up(ctx); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}
