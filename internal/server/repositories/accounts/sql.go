// Package accounts persists the accounts relation: group primaries and
// their linked members.
package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/reportkeeper/internal/common"
	"github.com/dmitrijs2005/reportkeeper/internal/dbx"
	"github.com/dmitrijs2005/reportkeeper/internal/server/models"
)

const accountColumns = `id, username, phone, password, recovery_id, linked_phone`

// SQLRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

// NewPostgresRepository constructs a repository bound to a Postgres handle.
func NewPostgresRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, dialect: dbx.Postgres}
}

// NewSQLiteRepository constructs a repository bound to a SQLite handle.
func NewSQLiteRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, dialect: dbx.SQLite}
}

func (r *SQLRepository) q(query string) string {
	return dbx.Rebind(r.dialect, query)
}

// CreatePrimary inserts the credential-holding account of a new group.
// Phone and primary recovery id uniqueness are enforced by the schema;
// violations come back as common.ErrorDuplicatePhone or ErrRecoveryIDTaken.
func (r *SQLRepository) CreatePrimary(ctx context.Context, phone, password, recoveryID string) (*models.Account, error) {
	query := `INSERT INTO accounts (phone, password, recovery_id, linked_phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	account := &models.Account{
		Credentials: &models.Credentials{Phone: phone, Password: password},
		RecoveryID:  recoveryID,
		LinkedPhone: phone,
	}

	err := r.db.QueryRowContext(ctx, r.q(query), phone, password, recoveryID, phone).Scan(&account.ID)
	if err != nil {
		if detail, ok := dbx.UniqueViolation(err); ok {
			if strings.Contains(detail, "recovery_id") {
				return nil, ErrRecoveryIDTaken
			}
			return nil, common.ErrorDuplicatePhone
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

// CreateMember inserts a credential-less account into an existing group.
func (r *SQLRepository) CreateMember(ctx context.Context, username, recoveryID, linkedPhone string) (*models.Account, error) {
	query := `INSERT INTO accounts (username, recovery_id, linked_phone)
		VALUES ($1, $2, $3)
		RETURNING id`

	account := &models.Account{
		Username:    username,
		RecoveryID:  recoveryID,
		LinkedPhone: linkedPhone,
	}

	err := r.db.QueryRowContext(ctx, r.q(query), username, recoveryID, linkedPhone).Scan(&account.ID)
	if err != nil {
		if _, ok := dbx.UniqueViolation(err); ok {
			return nil, common.ErrorDuplicateMember
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

func (r *SQLRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts
		WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByPhone resolves a primary account by its login phone.
func (r *SQLRepository) GetByPhone(ctx context.Context, phone string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts
		WHERE phone = $1`
	return r.getOne(ctx, query, phone)
}

func (r *SQLRepository) GetPrimaryByRecoveryID(ctx context.Context, recoveryID string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts
		WHERE recovery_id = $1 AND phone IS NOT NULL`
	return r.getOne(ctx, query, recoveryID)
}

// GetGroupMember resolves id only if it belongs to the group keyed by linkedPhone.
func (r *SQLRepository) GetGroupMember(ctx context.Context, id int64, linkedPhone string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts
		WHERE id = $1 AND linked_phone = $2`
	return r.getOne(ctx, query, id, linkedPhone)
}

// ListByLinkedPhone returns the whole group in creation order.
func (r *SQLRepository) ListByLinkedPhone(ctx context.Context, linkedPhone string) ([]*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts
		WHERE linked_phone = $1
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, r.q(query), linkedPhone)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// DeleteMember removes a member account. Primaries never match, so a
// primary id yields common.ErrorNotFound here.
func (r *SQLRepository) DeleteMember(ctx context.Context, id int64) error {
	query := `DELETE FROM accounts WHERE id = $1 AND phone IS NULL`

	res, err := r.db.ExecContext(ctx, r.q(query), id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

func (r *SQLRepository) getOne(ctx context.Context, query string, args ...any) (*models.Account, error) {
	account, err := scanAccount(r.db.QueryRowContext(ctx, r.q(query), args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return account, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(s scanner) (*models.Account, error) {
	var (
		account  models.Account
		username sql.NullString
		phone    sql.NullString
		password sql.NullString
	)
	if err := s.Scan(&account.ID, &username, &phone, &password, &account.RecoveryID, &account.LinkedPhone); err != nil {
		return nil, err
	}
	account.Username = username.String
	if phone.Valid {
		account.Credentials = &models.Credentials{Phone: phone.String, Password: password.String}
	}
	return &account, nil
}
