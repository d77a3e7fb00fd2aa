package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/jobtechradar/radar/internal/client/migrations"
	"github.com/jobtechradar/radar/internal/client/repositories/metadata"
)

// Repositories bundles the local storage handles used by the services.
type Repositories struct {
	Metadata metadata.Repository
	DB       *sql.DB
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the local sqlite database, migrates it, and returns
// the repositories bound to it.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repositories{
		Metadata: metadata.NewSQLiteRepository(db),
		DB:       db,
	}, nil
}
