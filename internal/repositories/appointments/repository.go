// Package appointments is the append-only ledger of booked slots.
package appointments

import (
	"context"

	"github.com/dmitrijs2005/vaxscheduler/internal/models"
)

type Repository interface {
	// Create inserts a and returns the id assigned by the store.
	Create(ctx context.Context, a *models.Appointment) (int64, error)
	ListByPatient(ctx context.Context, patient string) ([]models.Appointment, error)
	ListByCaregiver(ctx context.Context, caregiver string) ([]models.Appointment, error)
}
