package dbx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRebind(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		in      string
		want    string
	}{
		{"postgres untouched", Postgres, `SELECT * FROM a WHERE x=$1 AND y=$2`, `SELECT * FROM a WHERE x=$1 AND y=$2`},
		{"sqlite single", SQLite, `SELECT * FROM a WHERE x=$1`, `SELECT * FROM a WHERE x=?`},
		{"sqlite multi digit", SQLite, `VALUES ($1, $2, $10)`, `VALUES (?, ?, ?)`},
		{"sqlite bare dollar kept", SQLite, `SELECT '$' || $1`, `SELECT '$' || ?`},
		{"sqlite no placeholders", SQLite, `SELECT 1`, `SELECT 1`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rebind(tt.dialect, tt.in))
		})
	}
}

func TestDialectNames(t *testing.T) {
	assert.True(t, Postgres.Valid())
	assert.True(t, SQLite.Valid())
	assert.False(t, Dialect("mysql").Valid())

	assert.Equal(t, "pgx", Postgres.GooseDialect())
	assert.Equal(t, "sqlite3", SQLite.GooseDialect())
	assert.Equal(t, "pgx", Postgres.DriverName())
	assert.Equal(t, "sqlite", SQLite.DriverName())
}
