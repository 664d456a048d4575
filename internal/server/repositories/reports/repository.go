package reports

import (
	"context"

	"github.com/dmitrijs2005/reportkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, r *models.Report) (*models.Report, error)
	GetByID(ctx context.Context, id int64) (*models.Report, error)
	ListByAccount(ctx context.Context, accountID int64) ([]*models.Report, error)
	Delete(ctx context.Context, id int64) error
}
