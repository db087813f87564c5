package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"odontia/internal/db"
)

type PatientRepository struct {
	DB *sql.DB
}

func NewPatientRepository(database *sql.DB) *PatientRepository {
	return &PatientRepository{DB: database}
}

func (r *PatientRepository) Create(p *db.Patient) error {
	query := `
		INSERT INTO patients (clinic_id, full_name, document, email, phone, birth_date, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at`
	return r.DB.QueryRow(query,
		p.ClinicID,
		p.FullName,
		p.Document,
		p.Email,
		p.Phone,
		p.BirthDate,
		p.Notes,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PatientRepository) GetByID(clinicID, id int) (*db.Patient, error) {
	var p db.Patient
	query := `
		SELECT id, clinic_id, full_name, document, email, phone, birth_date, notes, created_at, updated_at
		FROM patients WHERE clinic_id = $1 AND id = $2`
	err := r.DB.QueryRow(query, clinicID, id).Scan(
		&p.ID, &p.ClinicID, &p.FullName, &p.Document, &p.Email, &p.Phone, &p.BirthDate, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("patient %d not found: %w", id, err)
		}
		return nil, fmt.Errorf("error querying patient: %w", err)
	}
	return &p, nil
}

// List returns one page of the clinic's patients, optionally filtered by a
// case-insensitive name fragment or exact document number.
func (r *PatientRepository) List(clinicID int, name, document string, limit, offset int) ([]db.Patient, int64, error) {
	query := `
		SELECT id, clinic_id, full_name, document, email, phone, birth_date, notes, created_at, updated_at,
			COUNT(*) OVER() AS total
		FROM patients
		WHERE clinic_id = $1`
	args := []interface{}{clinicID}
	idx := 2

	if name != "" {
		query += " AND full_name ILIKE '%' || $" + strconv.Itoa(idx) + " || '%'"
		args = append(args, name)
		idx++
	}
	if document != "" {
		query += " AND document = $" + strconv.Itoa(idx)
		args = append(args, document)
		idx++
	}
	query += " ORDER BY full_name LIMIT $" + strconv.Itoa(idx) + " OFFSET $" + strconv.Itoa(idx+1)
	args = append(args, limit, offset)

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying patients: %w", err)
	}
	defer rows.Close()

	var patients []db.Patient
	var total int64
	for rows.Next() {
		var p db.Patient
		if err := rows.Scan(&p.ID, &p.ClinicID, &p.FullName, &p.Document, &p.Email, &p.Phone, &p.BirthDate, &p.Notes, &p.CreatedAt, &p.UpdatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("error scanning patient: %w", err)
		}
		patients = append(patients, p)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error after iterating patients: %w", err)
	}
	return patients, total, nil
}

func (r *PatientRepository) Update(p *db.Patient) error {
	query := `
		UPDATE patients
		SET full_name = $3, document = $4, email = $5, phone = $6, birth_date = $7, notes = $8, updated_at = NOW()
		WHERE clinic_id = $1 AND id = $2
		RETURNING updated_at`
	err := r.DB.QueryRow(query,
		p.ClinicID, p.ID, p.FullName, p.Document, p.Email, p.Phone, p.BirthDate, p.Notes,
	).Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("patient %d not found: %w", p.ID, err)
		}
		return fmt.Errorf("error updating patient: %w", err)
	}
	return nil
}

func (r *PatientRepository) Delete(clinicID, id int) error {
	result, err := r.DB.Exec(`DELETE FROM patients WHERE clinic_id = $1 AND id = $2`, clinicID, id)
	if err != nil {
		return fmt.Errorf("error deleting patient %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("patient %d not found", id)
	}
	return nil
}
