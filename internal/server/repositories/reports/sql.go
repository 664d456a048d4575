// Package reports persists report metadata. Report bytes live in the
// artifact store; rows only carry the artifact reference.
package reports

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/reportkeeper/internal/common"
	"github.com/dmitrijs2005/reportkeeper/internal/dbx"
	"github.com/dmitrijs2005/reportkeeper/internal/server/models"
)

type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewPostgresRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, dialect: dbx.Postgres}
}

func NewSQLiteRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, dialect: dbx.SQLite}
}

func (r *SQLRepository) q(query string) string {
	return dbx.Rebind(r.dialect, query)
}

// Create inserts the row and returns a copy carrying the assigned id.
func (r *SQLRepository) Create(ctx context.Context, report *models.Report) (*models.Report, error) {
	query := `INSERT INTO reports (account_id, artifact_ref, file_name, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	created := *report
	err := r.db.QueryRowContext(ctx, r.q(query),
		report.AccountID, report.ArtifactRef, report.FileName, report.Description).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &created, nil
}

func (r *SQLRepository) GetByID(ctx context.Context, id int64) (*models.Report, error) {
	query := `SELECT id, account_id, artifact_ref, file_name, description FROM reports
		WHERE id = $1`

	var rep models.Report
	err := r.db.QueryRowContext(ctx, r.q(query), id).
		Scan(&rep.ID, &rep.AccountID, &rep.ArtifactRef, &rep.FileName, &rep.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &rep, nil
}

// ListByAccount returns the account's reports in creation order.
func (r *SQLRepository) ListByAccount(ctx context.Context, accountID int64) ([]*models.Report, error) {
	query := `SELECT id, account_id, artifact_ref, file_name, description FROM reports
		WHERE account_id = $1
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, r.q(query), accountID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Report
	for rows.Next() {
		var rep models.Report
		if err := rows.Scan(&rep.ID, &rep.AccountID, &rep.ArtifactRef, &rep.FileName, &rep.Description); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, &rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM reports WHERE id = $1`

	res, err := r.db.ExecContext(ctx, r.q(query), id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
