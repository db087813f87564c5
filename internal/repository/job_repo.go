package repository

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/lib/pq"

	"odontia/internal/entities"
)

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(database *sql.DB) *JobRepository {
	return &JobRepository{DB: database}
}

// GetScheduledAppointmentIDsPastEnd returns IDs of scheduled appointments
// whose slot already ended.
func (r *JobRepository) GetScheduledAppointmentIDsPastEnd() ([]int, error) {
	query := `
		SELECT id FROM appointments
		WHERE status = 'scheduled'
		AND start_time + duration_minutes * interval '1 minute' < NOW()`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying scheduled appointments past end: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning appointment ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}
	return ids, nil
}

func (r *JobRepository) UpdateAppointmentStatuses(ids []int, newStatus string) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE appointments SET status = $1, updated_at = NOW() WHERE id = ANY($2)`
	result, err := r.DB.Exec(query, newStatus, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("error updating appointment statuses: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Could not get rows affected: %v", err)
	} else {
		log.Printf("Updated status for %d appointments to '%s'", rowsAffected, newStatus)
	}
	return nil
}

// ListAppointmentsBetween returns every scheduled appointment starting inside
// [from, to), joined with patient contact data for reminder sends.
func (r *JobRepository) ListAppointmentsBetween(from, to time.Time) ([]entities.AppointmentResponse, error) {
	query := `
		SELECT
			a.code, a.patient_id, p.full_name, p.email, p.phone,
			COALESCE(a.professional_id, 0), COALESCE(pr.full_name, ''),
			a.start_time, a.duration_minutes, a.reason, a.status, a.language, a.created_at, a.updated_at
		FROM appointments a
		JOIN patients p ON p.id = a.patient_id
		LEFT JOIN professionals pr ON pr.id = a.professional_id
		WHERE a.status = 'scheduled' AND a.start_time >= $1 AND a.start_time < $2
		ORDER BY a.start_time`
	rows, err := r.DB.Query(query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying appointments for reminders: %w", err)
	}
	defer rows.Close()

	var appointments []entities.AppointmentResponse
	for rows.Next() {
		var res entities.AppointmentResponse
		err := rows.Scan(
			&res.Code, &res.PatientID, &res.PatientName, &res.PatientEmail, &res.PatientPhone,
			&res.ProfessionalID, &res.ProfessionalName,
			&res.StartTime, &res.DurationMinutes, &res.Reason, &res.Status, &res.Language, &res.CreatedAt, &res.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning reminder appointment: %w", err)
		}
		appointments = append(appointments, res)
	}
	return appointments, rows.Err()
}

// DeleteCanceledAppointmentsOlderThan deletes canceled appointments created
// before the given time.
func (r *JobRepository) DeleteCanceledAppointmentsOlderThan(before time.Time) (int64, error) {
	result, err := r.DB.Exec(`DELETE FROM appointments WHERE status = 'canceled' AND created_at < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("error deleting old canceled appointments: %w", err)
	}
	return result.RowsAffected()
}
