package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"odontia/internal/db"
)

type ProfessionalRepository struct {
	DB *sql.DB
}

func NewProfessionalRepository(database *sql.DB) *ProfessionalRepository {
	return &ProfessionalRepository{DB: database}
}

func (r *ProfessionalRepository) Create(p *db.Professional) error {
	query := `
		INSERT INTO professionals (clinic_id, full_name, specialty, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at`
	return r.DB.QueryRow(query,
		p.ClinicID, p.FullName, p.Specialty, p.Email, p.Phone,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProfessionalRepository) GetByID(clinicID, id int) (*db.Professional, error) {
	var p db.Professional
	query := `
		SELECT id, clinic_id, full_name, specialty, email, phone, created_at, updated_at
		FROM professionals WHERE clinic_id = $1 AND id = $2`
	err := r.DB.QueryRow(query, clinicID, id).Scan(
		&p.ID, &p.ClinicID, &p.FullName, &p.Specialty, &p.Email, &p.Phone, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("professional %d not found: %w", id, err)
		}
		return nil, fmt.Errorf("error querying professional: %w", err)
	}
	return &p, nil
}

func (r *ProfessionalRepository) List(clinicID int) ([]db.Professional, error) {
	query := `
		SELECT id, clinic_id, full_name, specialty, email, phone, created_at, updated_at
		FROM professionals WHERE clinic_id = $1 ORDER BY full_name`
	rows, err := r.DB.Query(query, clinicID)
	if err != nil {
		return nil, fmt.Errorf("error querying professionals: %w", err)
	}
	defer rows.Close()

	var professionals []db.Professional
	for rows.Next() {
		var p db.Professional
		if err := rows.Scan(&p.ID, &p.ClinicID, &p.FullName, &p.Specialty, &p.Email, &p.Phone, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning professional: %w", err)
		}
		professionals = append(professionals, p)
	}
	return professionals, rows.Err()
}
