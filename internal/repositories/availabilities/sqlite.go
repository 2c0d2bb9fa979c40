package availabilities

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/dbx"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
)

// SQLiteRepository keeps dates as TEXT in models.DateLayout.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, a *models.Availability) error {
	query := `INSERT INTO availabilities (username, available_date) VALUES (?, ?)
		ON CONFLICT (username, available_date) DO NOTHING`

	res, err := r.db.ExecContext(ctx, query, a.CaregiverName, models.FormatDate(a.Date))
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

func (r *SQLiteRepository) ListSchedule(ctx context.Context, date time.Time) ([]models.ScheduleRow, error) {
	query := `SELECT a.username, v.name, v.doses
		FROM availabilities a
		LEFT JOIN vaccines v ON 1 = 1
		WHERE a.available_date = ?
		ORDER BY a.username, v.name`

	rows, err := r.db.QueryContext(ctx, query, models.FormatDate(date))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanSchedule(rows)
}

func (r *SQLiteRepository) FirstFreeCaregiver(ctx context.Context, date time.Time) (string, error) {
	query := `SELECT a.username
		FROM availabilities a
		WHERE a.available_date = ?
		  AND NOT EXISTS (
		    SELECT 1 FROM appointments ap
		    WHERE ap.caregiver_username = a.username
		      AND ap.appointment_date = a.available_date)
		ORDER BY a.username
		LIMIT 1`

	var name string
	err := r.db.QueryRowContext(ctx, query, models.FormatDate(date)).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}
	return name, nil
}

func scanSchedule(rows *sql.Rows) ([]models.ScheduleRow, error) {
	var result []models.ScheduleRow
	for rows.Next() {
		var (
			caregiver string
			vaccine   sql.NullString
			doses     sql.NullInt64
		)
		if err := rows.Scan(&caregiver, &vaccine, &doses); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, models.ScheduleRow{
			CaregiverName: caregiver,
			Vaccine:       vaccine.String,
			Doses:         int(doses.Int64),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
