package appointments

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/vaxscheduler/internal/dbx"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, a *models.Appointment) (int64, error) {
	query := `INSERT INTO appointments (appointment_date, caregiver_username, patient_username, vaccine_name)
		VALUES (?, ?, ?, ?)
		RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		models.FormatDate(a.Date), a.CaregiverName, a.PatientName, a.VaccineName).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) ListByPatient(ctx context.Context, patient string) ([]models.Appointment, error) {
	return r.list(ctx, `SELECT id, appointment_date, caregiver_username, patient_username, vaccine_name
		FROM appointments WHERE patient_username = ? ORDER BY id`, patient)
}

func (r *SQLiteRepository) ListByCaregiver(ctx context.Context, caregiver string) ([]models.Appointment, error) {
	return r.list(ctx, `SELECT id, appointment_date, caregiver_username, patient_username, vaccine_name
		FROM appointments WHERE caregiver_username = ? ORDER BY id`, caregiver)
}

func (r *SQLiteRepository) list(ctx context.Context, query, userName string) ([]models.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, query, userName)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Appointment
	for rows.Next() {
		var (
			a    models.Appointment
			date string
		)
		if err := rows.Scan(&a.ID, &date, &a.CaregiverName, &a.PatientName, &a.VaccineName); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if a.Date, err = models.ParseDate(date); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
