package dbx

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// pgUniqueViolation is SQLSTATE unique_violation.
const pgUniqueViolation = "23505"

// UniqueViolation reports whether err was caused by a unique constraint.
// The returned detail names the violated constraint: the constraint name for
// Postgres, the driver message ("UNIQUE constraint failed: table.column")
// for SQLite.
func UniqueViolation(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgUniqueViolation {
			return pgErr.ConstraintName, true
		}
		return "", false
	}

	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_UNIQUE, sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY:
			return sqliteErr.Error(), true
		case sqlite3lib.SQLITE_CONSTRAINT:
			msg := sqliteErr.Error()
			if strings.Contains(msg, "UNIQUE constraint failed") {
				return msg, true
			}
		}
	}

	return "", false
}
