package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/slotswapper-backend/migrations"
)

// Migrate applies all pending migrations embedded in the binary.
func Migrate(ctx context.Context, dsn string, log *slog.Logger) error {
	return withProvider(ctx, dsn, func(p *goose.Provider) error {
		results, err := p.Up(ctx)
		if err != nil {
			return fmt.Errorf("goose up: %w", err)
		}
		for _, r := range results {
			log.InfoContext(ctx, "migration applied",
				slog.Int64("version", r.Source.Version),
				slog.Duration("duration", r.Duration),
			)
		}
		return nil
	})
}

// MigrateDown rolls back the most recently applied migration.
func MigrateDown(ctx context.Context, dsn string, log *slog.Logger) error {
	return withProvider(ctx, dsn, func(p *goose.Provider) error {
		r, err := p.Down(ctx)
		if err != nil {
			return fmt.Errorf("goose down: %w", err)
		}
		log.InfoContext(ctx, "migration rolled back", slog.Int64("version", r.Source.Version))
		return nil
	})
}

// MigrationStatus returns the current schema version.
func MigrationStatus(ctx context.Context, dsn string) (int64, error) {
	var version int64
	err := withProvider(ctx, dsn, func(p *goose.Provider) error {
		v, err := p.GetDBVersion(ctx)
		if err != nil {
			return fmt.Errorf("goose version: %w", err)
		}
		version = v
		return nil
	})
	return version, err
}

// withProvider opens a database/sql handle (goose requires *sql.DB) and
// hands a goose provider over the embedded migrations to fn.
func withProvider(ctx context.Context, dsn string, fn func(p *goose.Provider) error) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}

	// The provider handles $$-delimited bodies, unlike the legacy goose.Up.
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	return fn(provider)
}
