package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/dbx"
	"github.com/dmitrijs2005/vaxscheduler/internal/logging"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/repomanager"
)

// Allocator books appointments. The stock check, caregiver choice,
// appointment insert and dose decrement run in one transaction, which is
// retried when it loses a race against a concurrent reservation.
type Allocator struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
	maxRetries  uint64
}

func NewAllocator(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger, maxRetries int) *Allocator {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &Allocator{db: db, repomanager: m, logger: logger, maxRetries: uint64(maxRetries)}
}

// Reserve books vaccine for patient on date (YYYY-MM-DD) with the free
// caregiver whose username sorts first.
func (a *Allocator) Reserve(ctx context.Context, patient, date, vaccine string) (*models.Appointment, error) {
	d, err := models.ParseDate(date)
	if err != nil || vaccine == "" || patient == "" {
		return nil, common.ErrInvalidInput
	}

	var appt *models.Appointment
	attempt := 0

	err = dbx.WithRetryTx(ctx, a.db, a.repomanager.TxOptions(), a.maxRetries, a.repomanager.IsRetryable,
		func(ctx context.Context, tx dbx.DBTX) error {
			attempt++
			if attempt > 1 {
				a.logger.Debug(ctx, "retrying reservation", "attempt", attempt, "patient", patient)
			}

			var err error
			appt, err = a.reserve(ctx, tx, patient, d, vaccine)
			return err
		})
	if err != nil {
		if isDomainErr(err) {
			return nil, err
		}
		a.logger.Error(ctx, "reservation failed", "patient", patient, "date", date, "vaccine", vaccine,
			"attempts", attempt, "error", err)
		return nil, storageErr(err)
	}

	a.logger.Info(ctx, "appointment booked", "id", appt.ID, "patient", patient,
		"caregiver", appt.CaregiverName, "date", date, "vaccine", vaccine)
	return appt, nil
}

func (a *Allocator) reserve(ctx context.Context, tx dbx.DBTX, patient string, date time.Time, vaccine string) (*models.Appointment, error) {
	v, err := a.repomanager.Vaccines(tx).GetForUpdate(ctx, vaccine)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrVaccineUnavailable
		}
		return nil, err
	}
	if v.Doses <= 0 {
		return nil, common.ErrVaccineUnavailable
	}

	caregiver, err := a.repomanager.Availabilities(tx).FirstFreeCaregiver(ctx, date)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrNoCaregiverAvailable
		}
		return nil, err
	}

	appt := &models.Appointment{Date: date, CaregiverName: caregiver, PatientName: patient, VaccineName: v.Name}
	if appt.ID, err = a.repomanager.Appointments(tx).Create(ctx, appt); err != nil {
		return nil, err
	}

	if err := a.repomanager.Vaccines(tx).ConsumeDose(ctx, v.Name); err != nil {
		return nil, err
	}
	return appt, nil
}

func isDomainErr(err error) bool {
	return errors.Is(err, common.ErrVaccineUnavailable) ||
		errors.Is(err, common.ErrNoCaregiverAvailable) ||
		errors.Is(err, common.ErrInsufficientStock)
}
