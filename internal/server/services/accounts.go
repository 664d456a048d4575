// Package services contains server-side business logic. AccountService owns
// the identity and linking rules; ReportService owns report ownership and
// the artifact lifecycle.
package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/reportkeeper/internal/common"
	"github.com/dmitrijs2005/reportkeeper/internal/dbx"
	"github.com/dmitrijs2005/reportkeeper/internal/logging"
	"github.com/dmitrijs2005/reportkeeper/internal/server/models"
	"github.com/dmitrijs2005/reportkeeper/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/reportkeeper/internal/server/repositories/repomanager"
)

// recoveryIDAttempts bounds how often RegisterPrimary redraws a recovery id
// that collided with another group's.
const recoveryIDAttempts = 5

// newRecoveryID is a seam for forcing collisions in tests.
var newRecoveryID = common.NewRecoveryID

// AccountService registers groups, authenticates primaries and manages
// linked members.
type AccountService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *AccountService {
	return &AccountService{
		db:          db,
		repomanager: m,
		logger:      logger.With("module", "accounts"),
	}
}

// RegisterPrimary creates a new group whose primary holds phone/password.
// The returned account carries the group's fresh recovery id.
func (s *AccountService) RegisterPrimary(ctx context.Context, phone, password string) (*models.Account, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" || password == "" {
		return nil, common.ErrorInvalidInput
	}

	repo := s.repomanager.Accounts(s.db)

	for attempt := 1; attempt <= recoveryIDAttempts; attempt++ {
		recoveryID, err := newRecoveryID()
		if err != nil {
			return nil, fmt.Errorf("generate recovery id: %w", err)
		}

		account, err := repo.CreatePrimary(ctx, phone, password, recoveryID)
		if err == nil {
			s.logger.Info(ctx, "primary registered", "account_id", account.ID)
			return account, nil
		}
		if !errors.Is(err, accounts.ErrRecoveryIDTaken) {
			return nil, err
		}
		s.logger.Warn(ctx, "recovery id collision", "attempt", attempt)
	}

	return nil, common.ErrorRecoveryIDExhausted
}

// Authenticate returns the primary's id when phone and password match.
func (s *AccountService) Authenticate(ctx context.Context, phone, password string) (int64, error) {
	repo := s.repomanager.Accounts(s.db)

	account, err := repo.GetByPhone(ctx, strings.TrimSpace(phone))
	if err != nil {
		return 0, err
	}
	if !s.checkPassword(account.Credentials, password) {
		return 0, common.ErrorBadCredentials
	}
	return account.ID, nil
}

// RecoverCredentials returns the primary credentials of the group that owns
// recoveryID.
func (s *AccountService) RecoverCredentials(ctx context.Context, recoveryID string) (*models.Credentials, error) {
	recoveryID = strings.TrimSpace(recoveryID)
	if recoveryID == "" {
		return nil, common.ErrorNotFound
	}

	account, err := s.repomanager.Accounts(s.db).GetPrimaryByRecoveryID(ctx, recoveryID)
	if err != nil {
		return nil, err
	}
	creds := *account.Credentials
	return &creds, nil
}

// ListGroup returns every account linked with accountID, primary included,
// in creation order.
func (s *AccountService) ListGroup(ctx context.Context, accountID int64) (*models.Group, error) {
	repo := s.repomanager.Accounts(s.db)

	anchor, err := repo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	members, err := repo.ListByLinkedPhone(ctx, anchor.LinkedPhone)
	if err != nil {
		return nil, err
	}
	return &models.Group{
		LinkedPhone: anchor.LinkedPhone,
		RecoveryID:  anchor.RecoveryID,
		Members:     members,
	}, nil
}

// AddMember links a new credential-less account named username into the
// group of accountID.
func (s *AccountService) AddMember(ctx context.Context, accountID int64, username string) (*models.Account, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, common.ErrorInvalidInput
	}

	var member *models.Account
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Accounts(tx)

		anchor, err := repo.GetByID(ctx, accountID)
		if err != nil {
			return err
		}
		member, err = repo.CreateMember(ctx, username, anchor.RecoveryID, anchor.LinkedPhone)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "member added", "account_id", accountID, "member_id", member.ID)
	return member, nil
}

// RemoveMember deletes memberID from the group of accountID. The primary
// can never be removed; ids outside the group are reported as not found.
func (s *AccountService) RemoveMember(ctx context.Context, accountID, memberID int64) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Accounts(tx)

		anchor, err := repo.GetByID(ctx, accountID)
		if err != nil {
			return err
		}
		member, err := repo.GetGroupMember(ctx, memberID, anchor.LinkedPhone)
		if err != nil {
			return err
		}
		if member.IsPrimary() {
			return common.ErrorCannotRemovePrimary
		}
		return repo.DeleteMember(ctx, member.ID)
	})
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "member removed", "account_id", accountID, "member_id", memberID)
	return nil
}

// InGroup succeeds when accountID shares a group with anchorID.
func (s *AccountService) InGroup(ctx context.Context, anchorID, accountID int64) error {
	repo := s.repomanager.Accounts(s.db)

	anchor, err := repo.GetByID(ctx, anchorID)
	if err != nil {
		return err
	}
	if anchorID == accountID {
		return nil
	}
	_, err = repo.GetGroupMember(ctx, accountID, anchor.LinkedPhone)
	return err
}

func (s *AccountService) checkPassword(c *models.Credentials, candidate string) bool {
	if c == nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(c.Password), []byte(candidate)) == 1
}
