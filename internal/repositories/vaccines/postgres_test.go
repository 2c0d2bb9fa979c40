package vaccines

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock, db
}

func TestPostgresGetForUpdate_Locks(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	q := `(?s)^SELECT\s+name,\s*doses\s+FROM\s+vaccines\s+WHERE\s+name\s*=\s*\$1\s+FOR\s+UPDATE$`
	mock.ExpectQuery(q).WithArgs("Pfizer").
		WillReturnRows(sqlmock.NewRows([]string{"name", "doses"}).AddRow("Pfizer", 4))

	v, err := repo.GetForUpdate(context.Background(), "Pfizer")
	require.NoError(t, err)
	require.Equal(t, &models.Vaccine{Name: "Pfizer", Doses: 4}, v)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGet_NotFound(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)^SELECT\s+name,\s*doses\s+FROM\s+vaccines\s+WHERE\s+name\s*=\s*\$1$`).
		WithArgs("Nope").WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "Nope")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestPostgresAddDoses(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	q := `(?s)^INSERT\s+INTO\s+vaccines\s*\(name,\s*doses\)\s*VALUES\s*\(\$1,\s*\$2\)\s*ON\s+CONFLICT\s*\(name\)\s*DO\s+UPDATE\s+SET\s+doses\s*=\s*vaccines\.doses\s*\+\s*excluded\.doses$`
	mock.ExpectExec(q).WithArgs("Pfizer", 3).WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.AddDoses(context.Background(), "Pfizer", 3))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresConsumeDose(t *testing.T) {
	q := `(?s)^UPDATE\s+vaccines\s+SET\s+doses\s*=\s*doses\s*-\s*1\s+WHERE\s+name\s*=\s*\$1\s+AND\s+doses\s*>\s*0$`

	t.Run("consumed", func(t *testing.T) {
		repo, mock, _ := newRepoWithMock(t)
		mock.ExpectExec(q).WithArgs("Pfizer").WillReturnResult(sqlmock.NewResult(0, 1))
		require.NoError(t, repo.ConsumeDose(context.Background(), "Pfizer"))
	})

	t.Run("empty", func(t *testing.T) {
		repo, mock, _ := newRepoWithMock(t)
		mock.ExpectExec(q).WithArgs("Pfizer").WillReturnResult(sqlmock.NewResult(0, 0))
		require.ErrorIs(t, repo.ConsumeDose(context.Background(), "Pfizer"), common.ErrInsufficientStock)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock, _ := newRepoWithMock(t)
		boom := errors.New("boom")
		mock.ExpectExec(q).WithArgs("Pfizer").WillReturnError(boom)
		require.ErrorIs(t, repo.ConsumeDose(context.Background(), "Pfizer"), boom)
	})
}
