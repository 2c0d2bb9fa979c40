// Package vaccines is the dose inventory.
package vaccines

import (
	"context"

	"github.com/dmitrijs2005/vaxscheduler/internal/models"
)

type Repository interface {
	// Get returns the vaccine or common.ErrorNotFound.
	Get(ctx context.Context, name string) (*models.Vaccine, error)
	// GetForUpdate is Get that also locks the row for the rest of the
	// transaction where the store supports row locks.
	GetForUpdate(ctx context.Context, name string) (*models.Vaccine, error)
	// AddDoses creates the vaccine with delta doses or increments an existing one.
	AddDoses(ctx context.Context, name string, delta int) error
	// ConsumeDose takes one dose; common.ErrInsufficientStock when none are left.
	ConsumeDose(ctx context.Context, name string) error
}
