package vaccines

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/dbtest"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
	"github.com/stretchr/testify/require"
)

func TestSQLite_AddDosesUpsert(t *testing.T) {
	db := dbtest.NewSQLite(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := r.Get(ctx, "Pfizer")
	require.ErrorIs(t, err, common.ErrorNotFound)

	require.NoError(t, r.AddDoses(ctx, "Pfizer", 2))
	require.NoError(t, r.AddDoses(ctx, "Pfizer", 3))

	v, err := r.Get(ctx, "Pfizer")
	require.NoError(t, err)
	require.Equal(t, &models.Vaccine{Name: "Pfizer", Doses: 5}, v)
	require.Equal(t, 1, dbtest.Count(t, db, "vaccines"))
}

func TestSQLite_ConsumeDoseNeverNegative(t *testing.T) {
	db := dbtest.NewSQLite(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.AddDoses(ctx, "Moderna", 1))
	require.NoError(t, r.ConsumeDose(ctx, "Moderna"))
	require.ErrorIs(t, r.ConsumeDose(ctx, "Moderna"), common.ErrInsufficientStock)
	require.ErrorIs(t, r.ConsumeDose(ctx, "Unknown"), common.ErrInsufficientStock)

	v, err := r.GetForUpdate(ctx, "Moderna")
	require.NoError(t, err)
	require.Equal(t, 0, v.Doses)
}

func TestSQLite_CheckConstraintRejectsNegative(t *testing.T) {
	db := dbtest.NewSQLite(t)
	r := NewSQLiteRepository(db)

	require.Error(t, r.AddDoses(context.Background(), "Pfizer", -1))
}
