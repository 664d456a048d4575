package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/reportkeeper/internal/common"
	"github.com/dmitrijs2005/reportkeeper/internal/logging"
	"github.com/dmitrijs2005/reportkeeper/internal/server/models"
	"github.com/dmitrijs2005/reportkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/reportkeeper/internal/server/storage"
)

// DownloadURLValidity is how long a presigned download link stays usable.
const DownloadURLValidity = 15 * time.Minute

// ReportService ties report rows to their artifacts.
type ReportService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       storage.ArtifactStore
	logger      logging.Logger
}

func NewReportService(db *sql.DB, m repomanager.RepositoryManager, store storage.ArtifactStore, logger logging.Logger) *ReportService {
	return &ReportService{
		db:          db,
		repomanager: m,
		store:       store,
		logger:      logger.With("module", "reports"),
	}
}

// Attach stores content as a new report owned by accountID. The artifact is
// written first; if the row cannot be inserted the artifact is removed again.
func (s *ReportService) Attach(ctx context.Context, accountID int64, fileName string, content io.Reader, size int64, description string) (*models.Report, error) {
	if content == nil {
		return nil, common.ErrorInvalidInput
	}

	if _, err := s.repomanager.Accounts(s.db).GetByID(ctx, accountID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidInput
		}
		return nil, err
	}

	ref := storage.NewArtifactRef(accountID, fileName)
	if err := s.store.Save(ctx, ref, content, size); err != nil {
		return nil, fmt.Errorf("save artifact: %w", err)
	}

	report, err := s.repomanager.Reports(s.db).Create(ctx, &models.Report{
		AccountID:   accountID,
		ArtifactRef: ref,
		FileName:    storage.SafeFilename(fileName),
		Description: description,
	})
	if err != nil {
		if delErr := s.store.Delete(ctx, ref); delErr != nil {
			s.logger.Warn(ctx, "orphaned artifact", "ref", ref, "error", delErr)
		}
		return nil, err
	}

	s.logger.Info(ctx, "report attached", "account_id", accountID, "report_id", report.ID)
	return report, nil
}

// ListForAccount returns the account's reports in creation order.
func (s *ReportService) ListForAccount(ctx context.Context, accountID int64) ([]*models.Report, error) {
	return s.repomanager.Reports(s.db).ListByAccount(ctx, accountID)
}

func (s *ReportService) Fetch(ctx context.Context, reportID int64) (*models.Report, error) {
	return s.repomanager.Reports(s.db).GetByID(ctx, reportID)
}

// Remove deletes the artifact and then the row, returning the id of the
// account that owned the report. A missing artifact does not block removal.
func (s *ReportService) Remove(ctx context.Context, reportID int64) (int64, error) {
	repo := s.repomanager.Reports(s.db)

	report, err := repo.GetByID(ctx, reportID)
	if err != nil {
		return 0, err
	}
	if err := s.store.Delete(ctx, report.ArtifactRef); err != nil {
		return 0, fmt.Errorf("delete artifact: %w", err)
	}
	if err := repo.Delete(ctx, reportID); err != nil {
		return 0, err
	}

	s.logger.Info(ctx, "report removed", "account_id", report.AccountID, "report_id", reportID)
	return report.AccountID, nil
}

// Download opens the report's artifact. The caller closes the reader.
func (s *ReportService) Download(ctx context.Context, reportID int64) (*models.Report, io.ReadCloser, error) {
	report, err := s.Fetch(ctx, reportID)
	if err != nil {
		return nil, nil, err
	}
	rc, err := s.store.Open(ctx, report.ArtifactRef)
	if err != nil {
		if errors.Is(err, common.ErrorArtifactMissing) {
			s.logger.Warn(ctx, "artifact missing", "report_id", reportID, "ref", report.ArtifactRef)
		}
		return nil, nil, err
	}
	return report, rc, nil
}

// DownloadURL returns a presigned link to the artifact when the store
// supports it.
func (s *ReportService) DownloadURL(ctx context.Context, reportID int64) (string, error) {
	p, ok := s.store.(storage.Presigner)
	if !ok {
		return "", common.ErrorUnsupported
	}
	report, err := s.Fetch(ctx, reportID)
	if err != nil {
		return "", err
	}

	// presigning succeeds for any key, so check the object first
	ok, err = s.store.Exists(ctx, report.ArtifactRef)
	if err != nil {
		return "", err
	}
	if !ok {
		s.logger.Warn(ctx, "artifact missing", "report_id", reportID, "ref", report.ArtifactRef)
		return "", common.ErrorArtifactMissing
	}

	return p.PresignGet(ctx, report.ArtifactRef, DownloadURLValidity)
}
