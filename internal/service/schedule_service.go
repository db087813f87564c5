package service

import (
	"fmt"
	"time"

	"odontia/internal/availability"
	"odontia/internal/db"
	"odontia/internal/entities"
	"odontia/internal/repository"
)

type ScheduleService struct {
	Repo *repository.ScheduleRepository
}

func NewScheduleService(repo *repository.ScheduleRepository) *ScheduleService {
	return &ScheduleService{Repo: repo}
}

func (s *ScheduleService) GetClinicSchedule(clinicID int) ([]entities.WorkingWindowResponse, error) {
	windows, err := s.Repo.ListWindowsForClinic(clinicID)
	if err != nil {
		return nil, err
	}
	return toScheduleResponse(windows), nil
}

func (s *ScheduleService) GetProfessionalSchedule(clinicID, professionalID int) ([]entities.WorkingWindowResponse, error) {
	windows, err := s.Repo.ListWindowsForProfessional(clinicID, professionalID)
	if err != nil {
		return nil, err
	}
	return toScheduleResponse(windows), nil
}

func (s *ScheduleService) UpdateClinicSchedule(clinicID int, req entities.ScheduleUpdateRequest) error {
	return s.upsertWindows(clinicID, repository.OwnerClinic, clinicID, req.Windows)
}

func (s *ScheduleService) UpdateProfessionalSchedule(clinicID, professionalID int, req entities.ScheduleUpdateRequest) error {
	return s.upsertWindows(clinicID, repository.OwnerProfessional, professionalID, req.Windows)
}

func (s *ScheduleService) upsertWindows(clinicID int, ownerType string, ownerID int, windows []entities.WorkingWindowRequest) error {
	for _, w := range windows {
		if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
			return fmt.Errorf("day_of_week %d out of range", w.DayOfWeek)
		}
		// Times are validated here, at the settings boundary, so the
		// validator can assume well-formed HH:MM values.
		if _, err := availability.ParseTimeOfDay(w.StartTime); err != nil {
			return err
		}
		if _, err := availability.ParseTimeOfDay(w.EndTime); err != nil {
			return err
		}
		row := &db.WorkingWindow{
			ClinicID:     clinicID,
			OwnerType:    ownerType,
			OwnerID:      ownerID,
			DayOfWeek:    w.DayOfWeek,
			StartTime:    w.StartTime,
			EndTime:      w.EndTime,
			IsWorkingDay: w.IsWorkingDay,
		}
		if err := s.Repo.UpsertWindow(row); err != nil {
			return err
		}
	}
	return nil
}

// CheckSlot validates the candidate slot against the configured working
// hours and returns at most one warning. A nil warning means the slot is
// acceptable. Malformed date or time input is an error, not a warning.
func (s *ScheduleService) CheckSlot(clinicID int, req entities.AvailabilityCheckRequest) (*availability.Warning, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", req.Date)
	}
	timeOfDay, err := availability.ParseTimeOfDay(req.Time)
	if err != nil {
		return nil, err
	}

	var professionalWindows []availability.WorkingWindow
	if req.ProfessionalID != 0 {
		rows, err := s.Repo.ListWindowsForProfessional(clinicID, req.ProfessionalID)
		if err != nil {
			return nil, err
		}
		professionalWindows, err = toDomainWindows(rows)
		if err != nil {
			return nil, err
		}
	}

	clinicRows, err := s.Repo.ListWindowsForClinic(clinicID)
	if err != nil {
		return nil, err
	}
	clinicWindows, err := toDomainWindows(clinicRows)
	if err != nil {
		return nil, err
	}

	slot := availability.CandidateSlot{
		Date:           date,
		Time:           timeOfDay,
		ProfessionalID: req.ProfessionalID,
	}
	return availability.Validate(slot, professionalWindows, clinicWindows), nil
}

func toDomainWindows(rows []db.WorkingWindow) ([]availability.WorkingWindow, error) {
	var windows []availability.WorkingWindow
	for _, row := range rows {
		start, err := availability.ParseTimeOfDay(row.StartTime)
		if err != nil {
			return nil, fmt.Errorf("stored window %d has invalid start time: %w", row.ID, err)
		}
		end, err := availability.ParseTimeOfDay(row.EndTime)
		if err != nil {
			return nil, fmt.Errorf("stored window %d has invalid end time: %w", row.ID, err)
		}
		windows = append(windows, availability.WorkingWindow{
			OwnerID:      row.OwnerID,
			DayOfWeek:    time.Weekday(row.DayOfWeek),
			Start:        start,
			End:          end,
			IsWorkingDay: row.IsWorkingDay,
		})
	}
	return windows, nil
}

func toScheduleResponse(windows []db.WorkingWindow) []entities.WorkingWindowResponse {
	var out []entities.WorkingWindowResponse
	for _, w := range windows {
		out = append(out, entities.WorkingWindowResponse{
			DayOfWeek:    w.DayOfWeek,
			StartTime:    w.StartTime,
			EndTime:      w.EndTime,
			IsWorkingDay: w.IsWorkingDay,
		})
	}
	return out
}
