package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"odontia/internal/db"
	"odontia/internal/entities"
)

type AppointmentRepository struct {
	DB *sql.DB
}

func NewAppointmentRepository(database *sql.DB) *AppointmentRepository {
	return &AppointmentRepository{DB: database}
}

func (r *AppointmentRepository) Create(a *db.Appointment) error {
	query := `
		INSERT INTO appointments
		(clinic_id, code, patient_id, professional_id, start_time, duration_minutes, reason, status, language, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`
	return r.DB.QueryRow(query,
		a.ClinicID,
		a.Code,
		a.PatientID,
		a.ProfessionalID,
		a.StartTime,
		a.DurationMinutes,
		a.Reason,
		a.Status,
		a.Language,
		a.CreatedAt,
		a.UpdatedAt,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

// GetByCode returns the appointment joined with patient and professional
// data, ready to be rendered or fed into notifications.
func (r *AppointmentRepository) GetByCode(clinicID int, code string) (*entities.AppointmentResponse, error) {
	var res entities.AppointmentResponse
	var professionalID sql.NullInt64
	var professionalName sql.NullString

	query := `
		SELECT
			a.code, a.patient_id, p.full_name, p.email, p.phone,
			a.professional_id, pr.full_name,
			a.start_time, a.duration_minutes, a.reason, a.status, a.language, a.created_at, a.updated_at
		FROM appointments a
		JOIN patients p ON p.id = a.patient_id
		LEFT JOIN professionals pr ON pr.id = a.professional_id
		WHERE a.clinic_id = $1 AND a.code = $2`

	err := r.DB.QueryRow(query, clinicID, code).Scan(
		&res.Code, &res.PatientID, &res.PatientName, &res.PatientEmail, &res.PatientPhone,
		&professionalID, &professionalName,
		&res.StartTime, &res.DurationMinutes, &res.Reason, &res.Status, &res.Language, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("appointment with code '%s' not found: %w", code, err)
		}
		return nil, fmt.Errorf("error querying appointment: %w", err)
	}
	if professionalID.Valid {
		res.ProfessionalID = int(professionalID.Int64)
	}
	if professionalName.Valid {
		res.ProfessionalName = professionalName.String
	}
	return &res, nil
}

// List returns one page of the clinic's appointments, newest start first.
func (r *AppointmentRepository) List(clinicID int, date, status string, professionalID, limit, offset int) ([]entities.AppointmentResponse, int64, error) {
	query := `
		SELECT
			a.code, a.patient_id, p.full_name, p.email, p.phone,
			a.professional_id, pr.full_name,
			a.start_time, a.duration_minutes, a.reason, a.status, a.language, a.created_at, a.updated_at,
			COUNT(*) OVER() AS total
		FROM appointments a
		JOIN patients p ON p.id = a.patient_id
		LEFT JOIN professionals pr ON pr.id = a.professional_id
		WHERE a.clinic_id = $1`
	args := []interface{}{clinicID}
	idx := 2

	if date != "" {
		query += " AND DATE(a.start_time) = $" + strconv.Itoa(idx)
		args = append(args, date)
		idx++
	}
	if status != "" {
		query += " AND a.status = $" + strconv.Itoa(idx)
		args = append(args, status)
		idx++
	}
	if professionalID != 0 {
		query += " AND a.professional_id = $" + strconv.Itoa(idx)
		args = append(args, professionalID)
		idx++
	}
	query += " ORDER BY a.start_time DESC LIMIT $" + strconv.Itoa(idx) + " OFFSET $" + strconv.Itoa(idx+1)
	args = append(args, limit, offset)

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying appointments: %w", err)
	}
	defer rows.Close()

	var appointments []entities.AppointmentResponse
	var total int64
	for rows.Next() {
		var res entities.AppointmentResponse
		var pID sql.NullInt64
		var pName sql.NullString
		err := rows.Scan(
			&res.Code, &res.PatientID, &res.PatientName, &res.PatientEmail, &res.PatientPhone,
			&pID, &pName,
			&res.StartTime, &res.DurationMinutes, &res.Reason, &res.Status, &res.Language, &res.CreatedAt, &res.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning appointment: %w", err)
		}
		if pID.Valid {
			res.ProfessionalID = int(pID.Int64)
		}
		if pName.Valid {
			res.ProfessionalName = pName.String
		}
		appointments = append(appointments, res)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error after iterating appointments: %w", err)
	}
	return appointments, total, nil
}

// Reschedule moves the appointment to a new slot.
func (r *AppointmentRepository) Reschedule(clinicID int, code string, startTime time.Time, durationMinutes int, professionalID *int) error {
	query := `
		UPDATE appointments
		SET start_time = $3, duration_minutes = $4, professional_id = $5, updated_at = NOW()
		WHERE clinic_id = $1 AND code = $2 AND status = 'scheduled'`
	result, err := r.DB.Exec(query, clinicID, code, startTime, durationMinutes, professionalID)
	if err != nil {
		return fmt.Errorf("error rescheduling appointment '%s': %w", code, err)
	}
	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("no scheduled appointment with code '%s'", code)
	}
	return nil
}

func (r *AppointmentRepository) UpdateStatus(clinicID int, code, status string) error {
	query := `UPDATE appointments SET status = $3, updated_at = NOW() WHERE clinic_id = $1 AND code = $2 RETURNING id`
	var id int
	err := r.DB.QueryRow(query, clinicID, code, status).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("appointment with code '%s' not found: %w", code, err)
		}
		return fmt.Errorf("error updating appointment status: %w", err)
	}
	return nil
}
