package repomanager

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/vaxscheduler/internal/dbx"
	"github.com/dmitrijs2005/vaxscheduler/internal/migrations"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/appointments"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/availabilities"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/principals"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/vaccines"
	"github.com/pressly/goose/v3"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const DialectSQLite = "sqlite"

// SQLiteRepositoryManager vends SQLite-backed repositories.
type SQLiteRepositoryManager struct{}

func NewSQLiteRepositoryManager() *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{}
}

func (m *SQLiteRepositoryManager) Dialect() string { return DialectSQLite }

func (m *SQLiteRepositoryManager) Principals(db dbx.DBTX, kind models.Kind) principals.Repository {
	return principals.NewSQLiteRepository(db, kind)
}

func (m *SQLiteRepositoryManager) Availabilities(db dbx.DBTX) availabilities.Repository {
	return availabilities.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Vaccines(db dbx.DBTX) vaccines.Repository {
	return vaccines.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Appointments(db dbx.DBTX) appointments.Repository {
	return appointments.NewSQLiteRepository(db)
}

// TxOptions returns nil: the DSN already makes every transaction BEGIN IMMEDIATE.
func (m *SQLiteRepositoryManager) TxOptions() *sql.TxOptions { return nil }

// IsRetryable matches SQLITE_BUSY and SQLITE_LOCKED, including their
// extended codes.
func (m *SQLiteRepositoryManager) IsRetryable(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() & 0xff {
	case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
		return true
	}
	return false
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.SQLite())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}
