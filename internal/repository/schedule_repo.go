package repository

import (
	"database/sql"
	"fmt"

	"odontia/internal/db"
)

const (
	OwnerClinic       = "clinic"
	OwnerProfessional = "professional"
)

type ScheduleRepository struct {
	DB *sql.DB
}

func NewScheduleRepository(database *sql.DB) *ScheduleRepository {
	return &ScheduleRepository{DB: database}
}

// ListWindowsForClinic returns every weekly window configured at clinic
// level, unfiltered by day.
func (r *ScheduleRepository) ListWindowsForClinic(clinicID int) ([]db.WorkingWindow, error) {
	return r.listWindows(clinicID, OwnerClinic, clinicID)
}

// ListWindowsForProfessional returns every weekly window configured for one
// professional of the clinic, unfiltered by day.
func (r *ScheduleRepository) ListWindowsForProfessional(clinicID, professionalID int) ([]db.WorkingWindow, error) {
	return r.listWindows(clinicID, OwnerProfessional, professionalID)
}

func (r *ScheduleRepository) listWindows(clinicID int, ownerType string, ownerID int) ([]db.WorkingWindow, error) {
	query := `
		SELECT id, clinic_id, owner_type, owner_id, day_of_week, start_time, end_time, is_working_day, created_at, updated_at
		FROM working_windows
		WHERE clinic_id = $1 AND owner_type = $2 AND owner_id = $3
		ORDER BY day_of_week`

	rows, err := r.DB.Query(query, clinicID, ownerType, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error querying working windows: %w", err)
	}
	defer rows.Close()

	var windows []db.WorkingWindow
	for rows.Next() {
		var w db.WorkingWindow
		if err := rows.Scan(&w.ID, &w.ClinicID, &w.OwnerType, &w.OwnerID, &w.DayOfWeek, &w.StartTime, &w.EndTime, &w.IsWorkingDay, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning working window: %w", err)
		}
		windows = append(windows, w)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating working windows: %w", err)
	}
	return windows, nil
}

// UpsertWindow creates or replaces the single window for an owner and day.
// The unique index on (owner_type, owner_id, day_of_week) enforces the
// one-window-per-day invariant.
func (r *ScheduleRepository) UpsertWindow(w *db.WorkingWindow) error {
	query := `
		INSERT INTO working_windows
		(clinic_id, owner_type, owner_id, day_of_week, start_time, end_time, is_working_day, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (owner_type, owner_id, day_of_week)
		DO UPDATE SET start_time = $5, end_time = $6, is_working_day = $7, updated_at = NOW()
		RETURNING id`
	err := r.DB.QueryRow(query,
		w.ClinicID,
		w.OwnerType,
		w.OwnerID,
		w.DayOfWeek,
		w.StartTime,
		w.EndTime,
		w.IsWorkingDay,
	).Scan(&w.ID)
	if err != nil {
		return fmt.Errorf("error upserting working window for day %d: %w", w.DayOfWeek, err)
	}
	return nil
}
