// Package principals is the credential store: one table per principal kind
// holding the salted password hash of every account.
package principals

import (
	"context"

	"github.com/dmitrijs2005/vaxscheduler/internal/models"
)

type Repository interface {
	// Exists reports whether username is registered for this kind.
	Exists(ctx context.Context, userName string) (bool, error)
	// Create stores a new principal; common.ErrorAlreadyExists if the username is taken.
	Create(ctx context.Context, p *models.Principal) error
	// GetByUserName returns the principal or common.ErrorNotFound.
	GetByUserName(ctx context.Context, userName string) (*models.Principal, error)
}

func tableFor(kind models.Kind) string {
	if kind == models.KindCaregiver {
		return "caregivers"
	}
	return "patients"
}
