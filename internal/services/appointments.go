package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/repomanager"
)

type AppointmentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewAppointmentService(db *sql.DB, m repomanager.RepositoryManager) *AppointmentService {
	return &AppointmentService{db: db, repomanager: m}
}

// List returns the appointments of userName seen as a principal of kind,
// oldest first.
func (s *AppointmentService) List(ctx context.Context, kind models.Kind, userName string) ([]models.Appointment, error) {
	repo := s.repomanager.Appointments(s.db)

	var (
		list []models.Appointment
		err  error
	)
	switch kind {
	case models.KindPatient:
		list, err = repo.ListByPatient(ctx, userName)
	case models.KindCaregiver:
		list, err = repo.ListByCaregiver(ctx, userName)
	default:
		return nil, common.ErrInvalidInput
	}
	if err != nil {
		return nil, storageErr(err)
	}
	return list, nil
}

// Cancel is reserved; appointments cannot be cancelled yet.
func (s *AppointmentService) Cancel(ctx context.Context, id int64) error {
	return common.ErrNotSupported
}
