// Package services contains the scheduler's business logic: account
// management, the availability, inventory and appointment ledgers, and the
// reservation allocator that ties them together.
//
// Every service works against a *sql.DB through a repomanager.RepositoryManager,
// so the same code runs on SQLite and PostgreSQL. Failures of the store are
// returned wrapped in common.ErrStorage; everything else is a sentinel from
// package common.
package services

import (
	"fmt"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
)

func storageErr(err error) error {
	return fmt.Errorf("%w: %w", common.ErrStorage, err)
}
