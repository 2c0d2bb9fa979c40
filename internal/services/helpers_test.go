package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/vaxscheduler/internal/dbtest"
	"github.com/dmitrijs2005/vaxscheduler/internal/logging"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/repomanager"
	"github.com/stretchr/testify/require"
)

const strongPassword = "Passw0rd!"

type env struct {
	db           *sql.DB
	credentials  *CredentialService
	availability *AvailabilityService
	inventory    *InventoryService
	appointments *AppointmentService
	allocator    *Allocator
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db := dbtest.NewSQLite(t)
	m := repomanager.NewSQLiteRepositoryManager()
	log := logging.NewNop()

	return &env{
		db:           db,
		credentials:  NewCredentialService(db, m, log),
		availability: NewAvailabilityService(db, m, log),
		inventory:    NewInventoryService(db, m, log),
		appointments: NewAppointmentService(db, m),
		allocator:    NewAllocator(db, m, log, 5),
	}
}

func (e *env) patient(t *testing.T, name string) {
	t.Helper()
	require.NoError(t, e.credentials.Create(context.Background(), models.KindPatient, name, []byte(strongPassword)))
}

func (e *env) caregiverAvailable(t *testing.T, name string, dates ...string) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, e.credentials.Create(ctx, models.KindCaregiver, name, []byte(strongPassword)))
	for _, d := range dates {
		require.NoError(t, e.availability.Publish(ctx, name, d))
	}
}

func (e *env) doses(t *testing.T, vaccine string) int {
	t.Helper()
	n, err := e.inventory.GetDoses(context.Background(), vaccine)
	require.NoError(t, err)
	return n
}
