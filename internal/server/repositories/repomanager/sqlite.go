package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/reportkeeper/internal/dbx"
	"github.com/dmitrijs2005/reportkeeper/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/reportkeeper/internal/server/repositories/reports"
	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager is the embedded single-file variant, used for
// local runs and integration tests.
type SQLiteRepositoryManager struct{}

func (m *SQLiteRepositoryManager) Accounts(db dbx.DBTX) accounts.Repository {
	return accounts.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Reports(db dbx.DBTX) reports.Repository {
	return reports.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Dialect() dbx.Dialect { return dbx.SQLite }

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, db, dbx.SQLite)
}
