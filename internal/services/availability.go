package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/logging"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/repomanager"
)

type AvailabilityService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewAvailabilityService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *AvailabilityService {
	return &AvailabilityService{db: db, repomanager: m, logger: logger}
}

// Publish records that caregiver works on date (YYYY-MM-DD).
func (s *AvailabilityService) Publish(ctx context.Context, caregiver, date string) error {
	d, err := models.ParseDate(date)
	if err != nil {
		return common.ErrInvalidInput
	}

	a := &models.Availability{CaregiverName: caregiver, Date: d}
	if err := s.repomanager.Availabilities(s.db).Create(ctx, a); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return common.ErrDuplicateAvailability
		}
		return storageErr(err)
	}

	s.logger.Info(ctx, "availability published", "caregiver", caregiver, "date", date)
	return nil
}

// Search lists caregivers available on date, each paired with every vaccine
// in the inventory. The result grows with caregivers times vaccines.
func (s *AvailabilityService) Search(ctx context.Context, date string) ([]models.ScheduleRow, error) {
	d, err := models.ParseDate(date)
	if err != nil {
		return nil, common.ErrInvalidInput
	}

	rows, err := s.repomanager.Availabilities(s.db).ListSchedule(ctx, d)
	if err != nil {
		return nil, storageErr(err)
	}
	return rows, nil
}
