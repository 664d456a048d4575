package accounts

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/reportkeeper/internal/common"
	"github.com/dmitrijs2005/reportkeeper/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cols = []string{"id", "username", "phone", "password", "recovery_id", "linked_phone"}

func newRepoWithMock(t *testing.T) (*SQLRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const insertPrimaryQ = `(?s)^INSERT\s+INTO\s+accounts\s*\(phone,\s*password,\s*recovery_id,\s*linked_phone\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*RETURNING\s+id$`

func TestCreatePrimary_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertPrimaryQ).
		WithArgs("5551234", "abc", "a1b2c3d4", "5551234").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	got, err := repo.CreatePrimary(context.Background(), "5551234", "abc", "a1b2c3d4")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.True(t, got.IsPrimary())
	assert.Equal(t, "5551234", got.LinkedPhone)
	assert.Equal(t, "5551234", got.Credentials.Phone)
	assert.Empty(t, got.Username)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePrimary_UniqueViolations(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		want       error
	}{
		{"phone", "accounts_phone_key", common.ErrorDuplicatePhone},
		{"recovery id", "accounts_recovery_id_uidx", ErrRecoveryIDTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newRepoWithMock(t)
			defer db.Close()

			mock.ExpectQuery(insertPrimaryQ).
				WithArgs("5551234", "abc", "a1b2c3d4", "5551234").
				WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: tt.constraint})

			_, err := repo.CreatePrimary(context.Background(), "5551234", "abc", "a1b2c3d4")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCreatePrimary_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertPrimaryQ).WillReturnError(errors.New("db down"))

	_, err := repo.CreatePrimary(context.Background(), "5551234", "abc", "a1b2c3d4")
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

const insertMemberQ = `(?s)^INSERT\s+INTO\s+accounts\s*\(username,\s*recovery_id,\s*linked_phone\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+id$`

func TestCreateMember_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertMemberQ).
		WithArgs("Alice", "a1b2c3d4", "5551234").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(2)))

	got, err := repo.CreateMember(context.Background(), "Alice", "a1b2c3d4", "5551234")
	require.NoError(t, err)
	assert.Equal(t, &models.Account{ID: 2, Username: "Alice", RecoveryID: "a1b2c3d4", LinkedPhone: "5551234"}, got)
}

func TestCreateMember_Duplicate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertMemberQ).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_member_username_uidx"})

	_, err := repo.CreateMember(context.Background(), "Alice", "a1b2c3d4", "5551234")
	assert.ErrorIs(t, err, common.ErrorDuplicateMember)
}

func TestGetByID_FoundPrimaryAndMember(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*username,\s*phone,\s*password,\s*recovery_id,\s*linked_phone\s+FROM\s+accounts\s+WHERE\s+id\s*=\s*\$1$`

	mock.ExpectQuery(q).WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(int64(1), nil, "5551234", "abc", "a1b2c3d4", "5551234"))
	mock.ExpectQuery(q).WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(int64(2), "Alice", nil, nil, "a1b2c3d4", "5551234"))

	primary, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, primary.IsPrimary())
	assert.Equal(t, &models.Credentials{Phone: "5551234", Password: "abc"}, primary.Credentials)

	member, err := repo.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, member.IsPrimary())
	assert.Equal(t, "Alice", member.Username)
	assert.Equal(t, "5551234", member.LinkedPhone)
}

func TestGetByPhone_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.*\s+FROM\s+accounts\s+WHERE\s+phone\s*=\s*\$1$`
	mock.ExpectQuery(q).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByPhone(context.Background(), "ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGetPrimaryByRecoveryID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.*\s+FROM\s+accounts\s+WHERE\s+recovery_id\s*=\s*\$1\s+AND\s+phone\s+IS\s+NOT\s+NULL$`
	mock.ExpectQuery(q).WithArgs("a1b2c3d4").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(int64(1), nil, "5551234", "abc", "a1b2c3d4", "5551234"))

	got, err := repo.GetPrimaryByRecoveryID(context.Background(), "a1b2c3d4")
	require.NoError(t, err)
	assert.Equal(t, "abc", got.Credentials.Password)
}

func TestGetGroupMember_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.*\s+FROM\s+accounts\s+WHERE\s+id\s*=\s*\$1\s+AND\s+linked_phone\s*=\s*\$2$`
	mock.ExpectQuery(q).WithArgs(int64(5), "5551234").WillReturnError(errors.New("db err"))

	_, err := repo.GetGroupMember(context.Background(), 5, "5551234")
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestListByLinkedPhone_OrderedRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.*\s+FROM\s+accounts\s+WHERE\s+linked_phone\s*=\s*\$1\s+ORDER\s+BY\s+id$`
	mock.ExpectQuery(q).WithArgs("5551234").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int64(1), nil, "5551234", "abc", "a1b2c3d4", "5551234").
			AddRow(int64(2), "Alice", nil, nil, "a1b2c3d4", "5551234"))

	got, err := repo.ListByLinkedPhone(context.Background(), "5551234")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].IsPrimary())
	assert.Equal(t, "Alice", got[1].Username)
}

func TestListByLinkedPhone_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT`).WithArgs("nobody").WillReturnRows(sqlmock.NewRows(cols))

	got, err := repo.ListByLinkedPhone(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDeleteMember(t *testing.T) {
	q := `(?s)^DELETE\s+FROM\s+accounts\s+WHERE\s+id\s*=\s*\$1\s+AND\s+phone\s+IS\s+NULL$`

	tests := []struct {
		name     string
		affected int64
		want     error
	}{
		{"deleted", 1, nil},
		{"missing or primary", 0, common.ErrorNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newRepoWithMock(t)
			defer db.Close()

			mock.ExpectExec(q).WithArgs(int64(2)).WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.DeleteMember(context.Background(), 2)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestSQLiteRepository_RebindsPlaceholders(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	repo := NewSQLiteRepository(db)

	mock.ExpectExec(`DELETE FROM accounts WHERE id = ? AND phone IS NULL`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteMember(context.Background(), 3))
	require.NoError(t, mock.ExpectationsWereMet())
}
