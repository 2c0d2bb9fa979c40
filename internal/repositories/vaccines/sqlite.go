package vaccines

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/dbx"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, name string) (*models.Vaccine, error) {
	v := &models.Vaccine{}
	err := r.db.QueryRowContext(ctx, `SELECT name, doses FROM vaccines WHERE name = ?`, name).Scan(&v.Name, &v.Doses)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return v, nil
}

// GetForUpdate is a plain read: transactions are opened with BEGIN IMMEDIATE,
// so the whole database is already write-locked.
func (r *SQLiteRepository) GetForUpdate(ctx context.Context, name string) (*models.Vaccine, error) {
	return r.Get(ctx, name)
}

func (r *SQLiteRepository) AddDoses(ctx context.Context, name string, delta int) error {
	query := `INSERT INTO vaccines (name, doses) VALUES (?, ?)
		ON CONFLICT (name) DO UPDATE SET doses = vaccines.doses + excluded.doses`

	if _, err := r.db.ExecContext(ctx, query, name, delta); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) ConsumeDose(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE vaccines SET doses = doses - 1 WHERE name = ? AND doses > 0`, name)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrInsufficientStock
	}
	return nil
}
