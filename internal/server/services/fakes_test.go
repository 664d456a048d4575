package services

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"sort"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/reportkeeper/internal/common"
	"github.com/dmitrijs2005/reportkeeper/internal/dbx"
	"github.com/dmitrijs2005/reportkeeper/internal/server/models"
	"github.com/dmitrijs2005/reportkeeper/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/reportkeeper/internal/server/repositories/reports"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func expectTx(mock sqlmock.Sqlmock, commit bool) {
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

// memAccounts mimics the accounts table including its unique indexes.
type memAccounts struct {
	mu     sync.Mutex
	nextID int64
	rows   []*models.Account
}

func clone(a *models.Account) *models.Account {
	c := *a
	if a.Credentials != nil {
		creds := *a.Credentials
		c.Credentials = &creds
	}
	return &c
}

func (m *memAccounts) CreatePrimary(ctx context.Context, phone, password, recoveryID string) (*models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.IsPrimary() && r.Credentials.Phone == phone {
			return nil, common.ErrorDuplicatePhone
		}
		if r.IsPrimary() && r.RecoveryID == recoveryID {
			return nil, accounts.ErrRecoveryIDTaken
		}
	}
	m.nextID++
	a := &models.Account{
		ID:          m.nextID,
		Credentials: &models.Credentials{Phone: phone, Password: password},
		RecoveryID:  recoveryID,
		LinkedPhone: phone,
	}
	m.rows = append(m.rows, a)
	return clone(a), nil
}

func (m *memAccounts) CreateMember(ctx context.Context, username, recoveryID, linkedPhone string) (*models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.LinkedPhone == linkedPhone && r.Username == username {
			return nil, common.ErrorDuplicateMember
		}
	}
	m.nextID++
	a := &models.Account{ID: m.nextID, Username: username, RecoveryID: recoveryID, LinkedPhone: linkedPhone}
	m.rows = append(m.rows, a)
	return clone(a), nil
}

func (m *memAccounts) find(pred func(*models.Account) bool) (*models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if pred(r) {
			return clone(r), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (m *memAccounts) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	return m.find(func(a *models.Account) bool { return a.ID == id })
}

func (m *memAccounts) GetByPhone(ctx context.Context, phone string) (*models.Account, error) {
	return m.find(func(a *models.Account) bool { return a.IsPrimary() && a.Credentials.Phone == phone })
}

func (m *memAccounts) GetPrimaryByRecoveryID(ctx context.Context, recoveryID string) (*models.Account, error) {
	return m.find(func(a *models.Account) bool { return a.IsPrimary() && a.RecoveryID == recoveryID })
}

func (m *memAccounts) GetGroupMember(ctx context.Context, id int64, linkedPhone string) (*models.Account, error) {
	return m.find(func(a *models.Account) bool { return a.ID == id && a.LinkedPhone == linkedPhone })
}

func (m *memAccounts) ListByLinkedPhone(ctx context.Context, linkedPhone string) ([]*models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Account
	for _, r := range m.rows {
		if r.LinkedPhone == linkedPhone {
			out = append(out, clone(r))
		}
	}
	return out, nil
}

func (m *memAccounts) DeleteMember(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.rows {
		if r.ID == id && !r.IsPrimary() {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

type memReports struct {
	mu        sync.Mutex
	nextID    int64
	rows      map[int64]*models.Report
	createErr error
}

func newMemReports() *memReports { return &memReports{rows: map[int64]*models.Report{}} }

func (m *memReports) Create(ctx context.Context, r *models.Report) (*models.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.nextID++
	c := *r
	c.ID = m.nextID
	m.rows[c.ID] = &c
	out := c
	return &out, nil
}

func (m *memReports) GetByID(ctx context.Context, id int64) (*models.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *r
	return &c, nil
}

func (m *memReports) ListByAccount(ctx context.Context, accountID int64) ([]*models.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Report
	for _, r := range m.rows {
		if r.AccountID == accountID {
			c := *r
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memReports) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return common.ErrorNotFound
	}
	delete(m.rows, id)
	return nil
}

type fakeRepoManager struct {
	accounts *memAccounts
	reports  *memReports
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{accounts: &memAccounts{}, reports: newMemReports()}
}

func (f *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (f *fakeRepoManager) Accounts(dbx.DBTX) accounts.Repository     { return f.accounts }
func (f *fakeRepoManager) Reports(dbx.DBTX) reports.Repository       { return f.reports }
func (f *fakeRepoManager) Dialect() dbx.Dialect                      { return dbx.Postgres }

// memStore is an ArtifactStore kept in memory.
type memStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	saveErr   error
	delErr    error
	openErr   error
	existsErr error
}

func newMemStore() *memStore { return &memStore{objects: map[string][]byte{}} }

func (s *memStore) Save(ctx context.Context, ref string, r io.Reader, size int64) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[ref] = b
	return nil
}

func (s *memStore) Exists(ctx context.Context, ref string) (bool, error) {
	if s.existsErr != nil {
		return false, s.existsErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[ref]
	return ok, nil
}

func (s *memStore) Delete(ctx context.Context, ref string) error {
	if s.delErr != nil {
		return s.delErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, ref)
	return nil
}

func (s *memStore) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	if s.openErr != nil {
		return nil, s.openErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.objects[ref]
	if !ok {
		return nil, common.ErrorArtifactMissing
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}
