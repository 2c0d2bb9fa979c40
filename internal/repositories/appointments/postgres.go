package appointments

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/vaxscheduler/internal/dbx"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, a *models.Appointment) (int64, error) {
	query := `INSERT INTO appointments (appointment_date, caregiver_username, patient_username, vaccine_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	if err := r.db.QueryRowContext(ctx, query, a.Date, a.CaregiverName, a.PatientName, a.VaccineName).Scan(&id); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

func (r *PostgresRepository) ListByPatient(ctx context.Context, patient string) ([]models.Appointment, error) {
	return r.list(ctx, `SELECT id, appointment_date, caregiver_username, patient_username, vaccine_name
		FROM appointments WHERE patient_username = $1 ORDER BY id`, patient)
}

func (r *PostgresRepository) ListByCaregiver(ctx context.Context, caregiver string) ([]models.Appointment, error) {
	return r.list(ctx, `SELECT id, appointment_date, caregiver_username, patient_username, vaccine_name
		FROM appointments WHERE caregiver_username = $1 ORDER BY id`, caregiver)
}

func (r *PostgresRepository) list(ctx context.Context, query, userName string) ([]models.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, query, userName)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Appointment
	for rows.Next() {
		var a models.Appointment
		if err := rows.Scan(&a.ID, &a.Date, &a.CaregiverName, &a.PatientName, &a.VaccineName); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
