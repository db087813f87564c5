package repository

import (
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"odontia/internal/db"
)

type StaffAuthRepository interface {
	GetByEmail(email string) (*db.StaffUser, error)
	CreateUser(clinicID int, name, email, password string) error
}

type staffAuthRepository struct {
	db *sql.DB
}

func NewStaffAuthRepository(database *sql.DB) StaffAuthRepository {
	return &staffAuthRepository{db: database}
}

func (r *staffAuthRepository) GetByEmail(email string) (*db.StaffUser, error) {
	var user db.StaffUser
	err := r.db.QueryRow(
		"SELECT id, clinic_id, name, email, password_hash FROM staff_users WHERE email = $1", email,
	).Scan(&user.ID, &user.ClinicID, &user.Name, &user.Email, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *staffAuthRepository) CreateUser(clinicID int, name, email, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	query := "INSERT INTO staff_users (clinic_id, name, email, password_hash, created_at) VALUES ($1, $2, $3, $4, NOW())"
	_, err = r.db.Exec(query, clinicID, name, email, hashedPassword)
	return err
}
