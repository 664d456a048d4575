// Package repomanager vends repository implementations for a SQL dialect
// and runs the embedded goose migrations for it.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/reportkeeper/internal/dbx"
	"github.com/dmitrijs2005/reportkeeper/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/reportkeeper/internal/server/repositories/reports"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Reports(db dbx.DBTX) reports.Repository
	Dialect() dbx.Dialect
}

// New returns the manager for d.
func New(d dbx.Dialect) (RepositoryManager, error) {
	switch d {
	case dbx.Postgres:
		return &PostgresRepositoryManager{}, nil
	case dbx.SQLite:
		return &SQLiteRepositoryManager{}, nil
	default:
		return nil, fmt.Errorf("unsupported dialect %q", d)
	}
}

// sqlOpen is a seam for testing sql.Open.
var sqlOpen = sql.Open

// Open opens and pings a database handle for d. SQLite handles are limited
// to a single connection so that writers never see SQLITE_BUSY.
func Open(ctx context.Context, d dbx.Dialect, dsn string) (*sql.DB, error) {
	db, err := sqlOpen(d.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", d, err)
	}
	if d == dbx.SQLite {
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", d, err)
	}
	return db, nil
}
