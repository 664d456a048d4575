package accounts

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/reportkeeper/internal/server/models"
)

// ErrRecoveryIDTaken means another group already owns the recovery id
// passed to CreatePrimary. Callers generate a new one and retry.
var ErrRecoveryIDTaken = errors.New("recovery id already taken")

type Repository interface {
	CreatePrimary(ctx context.Context, phone, password, recoveryID string) (*models.Account, error)
	CreateMember(ctx context.Context, username, recoveryID, linkedPhone string) (*models.Account, error)
	GetByID(ctx context.Context, id int64) (*models.Account, error)
	GetByPhone(ctx context.Context, phone string) (*models.Account, error)
	GetPrimaryByRecoveryID(ctx context.Context, recoveryID string) (*models.Account, error)
	GetGroupMember(ctx context.Context, id int64, linkedPhone string) (*models.Account, error)
	ListByLinkedPhone(ctx context.Context, linkedPhone string) ([]*models.Account, error)
	DeleteMember(ctx context.Context, id int64) error
}
