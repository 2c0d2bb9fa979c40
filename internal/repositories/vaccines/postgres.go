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

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, name string) (*models.Vaccine, error) {
	return r.get(ctx, `SELECT name, doses FROM vaccines WHERE name = $1`, name)
}

func (r *PostgresRepository) GetForUpdate(ctx context.Context, name string) (*models.Vaccine, error) {
	return r.get(ctx, `SELECT name, doses FROM vaccines WHERE name = $1 FOR UPDATE`, name)
}

func (r *PostgresRepository) get(ctx context.Context, query, name string) (*models.Vaccine, error) {
	v := &models.Vaccine{}
	err := r.db.QueryRowContext(ctx, query, name).Scan(&v.Name, &v.Doses)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return v, nil
}

func (r *PostgresRepository) AddDoses(ctx context.Context, name string, delta int) error {
	query := `INSERT INTO vaccines (name, doses) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET doses = vaccines.doses + excluded.doses`

	if _, err := r.db.ExecContext(ctx, query, name, delta); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ConsumeDose(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE vaccines SET doses = doses - 1 WHERE name = $1 AND doses > 0`, name)
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
