// Package availabilities stores the dates on which caregivers accept
// appointments.
package availabilities

import (
	"context"
	"time"

	"github.com/dmitrijs2005/vaxscheduler/internal/models"
)

type Repository interface {
	// Create stores a. Returns common.ErrorAlreadyExists for a repeated
	// (caregiver, date).
	Create(ctx context.Context, a *models.Availability) error
	// ListSchedule pairs every caregiver available on date with every vaccine
	// in the inventory, ordered by caregiver then vaccine.
	ListSchedule(ctx context.Context, date time.Time) ([]models.ScheduleRow, error)
	// FirstFreeCaregiver returns the lexicographically smallest caregiver
	// available on date who has no appointment that day, or common.ErrorNotFound.
	FirstFreeCaregiver(ctx context.Context, date time.Time) (string, error)
}
