package dbx

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestUniqueViolation_Postgres(t *testing.T) {
	err := fmt.Errorf("db error: %w", &pgconn.PgError{Code: "23505", ConstraintName: "accounts_phone_key"})

	detail, ok := UniqueViolation(err)
	assert.True(t, ok)
	assert.Equal(t, "accounts_phone_key", detail)
}

func TestUniqueViolation_PostgresOtherCode(t *testing.T) {
	err := fmt.Errorf("db error: %w", &pgconn.PgError{Code: "23503", ConstraintName: "reports_account_id_fkey"})

	_, ok := UniqueViolation(err)
	assert.False(t, ok)
}
