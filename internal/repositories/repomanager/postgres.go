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
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

const DialectPostgres = "postgres"

const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgUniqueViolation      = "23505"

	appointmentSlotIndex = "appointments_caregiver_date_uidx"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) Dialect() string { return DialectPostgres }

func (m *PostgresRepositoryManager) Principals(db dbx.DBTX, kind models.Kind) principals.Repository {
	return principals.NewPostgresRepository(db, kind)
}

func (m *PostgresRepositoryManager) Availabilities(db dbx.DBTX) availabilities.Repository {
	return availabilities.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Vaccines(db dbx.DBTX) vaccines.Repository {
	return vaccines.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Appointments(db dbx.DBTX) appointments.Repository {
	return appointments.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) TxOptions() *sql.TxOptions {
	return &sql.TxOptions{Isolation: sql.LevelSerializable}
}

// IsRetryable matches serialization failures, deadlocks and a concurrent
// insert into the same (caregiver, date) slot.
func (m *PostgresRepositoryManager) IsRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgSerializationFailure, pgDeadlockDetected:
		return true
	case pgUniqueViolation:
		return pgErr.ConstraintName == appointmentSlotIndex
	}
	return false
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Postgres())
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}
