package principals

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
)

func newRepoWithMock(t *testing.T, kind models.Kind) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db, kind), mock, db
}

const insertCaregiverQ = `(?s)^INSERT\s+INTO\s+caregivers\s*\(username,\s*salt,\s*hash\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*ON\s+CONFLICT\s*\(username\)\s*DO\s+NOTHING\s*$`

func TestPostgresCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t, models.KindCaregiver)
	defer db.Close()

	mock.ExpectExec(insertCaregiverQ).
		WithArgs("carol", []byte("salt"), []byte("hash")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &models.Principal{UserName: "carol", Salt: []byte("salt"), Hash: []byte("hash")})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestPostgresCreate_Taken(t *testing.T) {
	repo, mock, db := newRepoWithMock(t, models.KindCaregiver)
	defer db.Close()

	mock.ExpectExec(insertCaregiverQ).
		WithArgs("carol", []byte("salt"), []byte("hash")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Create(context.Background(), &models.Principal{UserName: "carol", Salt: []byte("salt"), Hash: []byte("hash")})
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want ErrorAlreadyExists, got %v", err)
	}
}

func TestPostgresCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t, models.KindCaregiver)
	defer db.Close()

	mock.ExpectExec(insertCaregiverQ).
		WillReturnError(errors.New("db down"))

	err := repo.Create(context.Background(), &models.Principal{UserName: "carol"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestPostgresGetByUserName_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t, models.KindPatient)
	defer db.Close()

	q := `(?s)^SELECT\s+username,\s*salt,\s*hash\s+FROM\s+patients\s+WHERE\s+username\s*=\s*\$1$`
	rows := sqlmock.NewRows([]string{"username", "salt", "hash"}).
		AddRow("pete", []byte("salt"), []byte("hash"))
	mock.ExpectQuery(q).WithArgs("pete").WillReturnRows(rows)

	got, err := repo.GetByUserName(context.Background(), "pete")
	if err != nil {
		t.Fatalf("GetByUserName error: %v", err)
	}
	if got.UserName != "pete" || got.Kind != models.KindPatient || string(got.Hash) != "hash" {
		t.Fatalf("unexpected principal: %+v", got)
	}
}

func TestPostgresGetByUserName_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t, models.KindPatient)
	defer db.Close()

	q := `(?s)^SELECT\s+username,\s*salt,\s*hash\s+FROM\s+patients`
	mock.ExpectQuery(q).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUserName(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestPostgresExists(t *testing.T) {
	repo, mock, db := newRepoWithMock(t, models.KindPatient)
	defer db.Close()

	q := `(?s)^SELECT\s+EXISTS\s*\(SELECT\s+1\s+FROM\s+patients\s+WHERE\s+username\s*=\s*\$1\)$`
	mock.ExpectQuery(q).WithArgs("pete").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.Exists(context.Background(), "pete")
	if err != nil || !ok {
		t.Fatalf("Exists: got (%v, %v)", ok, err)
	}
}
