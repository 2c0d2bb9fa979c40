package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/logging"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/repomanager"
)

type InventoryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewInventoryService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *InventoryService {
	return &InventoryService{db: db, repomanager: m, logger: logger}
}

// GetDoses returns the stock of vaccine; common.ErrVaccineUnavailable if the
// vaccine was never stocked.
func (s *InventoryService) GetDoses(ctx context.Context, vaccine string) (int, error) {
	v, err := s.repomanager.Vaccines(s.db).Get(ctx, vaccine)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return 0, common.ErrVaccineUnavailable
		}
		return 0, storageErr(err)
	}
	return v.Doses, nil
}

// AddDoses increases the stock of vaccine by delta, creating the entry if needed.
func (s *InventoryService) AddDoses(ctx context.Context, vaccine string, delta int) error {
	if vaccine == "" || delta <= 0 {
		return common.ErrInvalidInput
	}

	if err := s.repomanager.Vaccines(s.db).AddDoses(ctx, vaccine, delta); err != nil {
		return storageErr(err)
	}

	s.logger.Info(ctx, "doses added", "vaccine", vaccine, "delta", delta)
	return nil
}
