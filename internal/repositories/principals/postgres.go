package principals

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
	db    dbx.DBTX
	kind  models.Kind
	table string
}

func NewPostgresRepository(db dbx.DBTX, kind models.Kind) *PostgresRepository {
	return &PostgresRepository{db: db, kind: kind, table: tableFor(kind)}
}

func (r *PostgresRepository) Exists(ctx context.Context, userName string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE username = $1)`, r.table)

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, userName).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Principal) error {
	query := fmt.Sprintf(
		`INSERT INTO %s (username, salt, hash) VALUES ($1, $2, $3)
		 ON CONFLICT (username) DO NOTHING`, r.table)

	res, err := r.db.ExecContext(ctx, query, p.UserName, p.Salt, p.Hash)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorAlreadyExists
	}
	return nil
}

func (r *PostgresRepository) GetByUserName(ctx context.Context, userName string) (*models.Principal, error) {
	query := fmt.Sprintf(`SELECT username, salt, hash FROM %s WHERE username = $1`, r.table)

	p := &models.Principal{Kind: r.kind}
	err := r.db.QueryRowContext(ctx, query, userName).Scan(&p.UserName, &p.Salt, &p.Hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}
