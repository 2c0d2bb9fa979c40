// Package repomanager vends dialect-specific repositories bound to a DBTX
// and knows how to migrate the schema and open transactions for its store.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/vaxscheduler/internal/dbx"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/appointments"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/availabilities"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/principals"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/vaccines"
	"github.com/pressly/goose/v3"
)

type RepositoryManager interface {
	Dialect() string
	RunMigrations(context.Context, *sql.DB) error
	Principals(db dbx.DBTX, kind models.Kind) principals.Repository
	Availabilities(db dbx.DBTX) availabilities.Repository
	Vaccines(db dbx.DBTX) vaccines.Repository
	Appointments(db dbx.DBTX) appointments.Repository
	// TxOptions are used for the reservation transaction.
	TxOptions() *sql.TxOptions
	// IsRetryable reports whether err means the transaction lost a race with
	// a concurrent one and can simply be run again.
	IsRetryable(err error) bool
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}
