// Package pgtest starts a disposable PostgreSQL container with the warehouse schema for
// integration suites.
package pgtest

import (
	"context"
	"time"

	"warehouse/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database is a migrated PostgreSQL instance.
type Database struct {
	Container *tcpostgres.PostgresContainer
	DB        *gorm.DB
	DSN       string
}

func Start(ctx context.Context) (*Database, error) {
	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	d := &Database{Container: container}

	d.DSN, err = container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = d.Terminate(ctx)
		return nil, err
	}

	if err = postgres.Migrate(ctx, d.DSN); err != nil {
		_ = d.Terminate(ctx)
		return nil, err
	}

	d.DB, err = gorm.Open(gormpostgres.Open(d.DSN), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		_ = d.Terminate(ctx)
		return nil, err
	}

	return d, nil
}

// Truncate empties every table, keeping the schema.
func (d *Database) Truncate(ctx context.Context) error {
	return d.DB.WithContext(ctx).
		Exec("TRUNCATE TABLE cell_placements, order_lines, orders, cells, picking_tables, items CASCADE").
		Error
}

func (d *Database) Terminate(ctx context.Context) error {
	if d.DB != nil {
		if sqlDB, err := d.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}
