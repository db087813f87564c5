package service

import (
	"fmt"
	"log"
	"time"

	"odontia/internal/availability"
	"odontia/internal/db"
	"odontia/internal/entities"
	httperrors "odontia/internal/errors"
	"odontia/internal/repository"
)

const (
	statusScheduled = "scheduled"
	statusCompleted = "completed"
	statusCanceled  = "canceled"

	defaultDurationMinutes = 30
)

type AppointmentService struct {
	Repo     *repository.AppointmentRepository
	Schedule *ScheduleService
	Notifier *NotifyService
}

func NewAppointmentService(repo *repository.AppointmentRepository, schedule *ScheduleService, notifier *NotifyService) *AppointmentService {
	return &AppointmentService{Repo: repo, Schedule: schedule, Notifier: notifier}
}

// CheckAvailability runs the working-hours validation without persisting
// anything. The booking form calls this on every slot change.
func (s *AppointmentService) CheckAvailability(clinicID int, req entities.AvailabilityCheckRequest) (*availability.Warning, error) {
	return s.Schedule.CheckSlot(clinicID, req)
}

// CreateAppointment re-validates the slot at submit time and inserts the
// appointment. A non-nil warning blocks creation.
func (s *AppointmentService) CreateAppointment(clinicID int, req *entities.AppointmentRequest) (*entities.AppointmentResponse, *availability.Warning, error) {
	slot := entities.AvailabilityCheckRequest{Date: req.Date, Time: req.Time, ProfessionalID: req.ProfessionalID}
	warning, err := s.Schedule.CheckSlot(clinicID, slot)
	if err != nil {
		return nil, nil, err
	}
	if warning != nil {
		return nil, warning, nil
	}

	startTime, err := slotStartTime(req.Date, req.Time)
	if err != nil {
		return nil, nil, err
	}
	duration := req.DurationMinutes
	if duration <= 0 {
		duration = defaultDurationMinutes
	}
	var professionalID *int
	if req.ProfessionalID != 0 {
		professionalID = &req.ProfessionalID
	}

	code := fmt.Sprintf("%08X", time.Now().UnixNano()%100000000)
	appointment := &db.Appointment{
		ClinicID:        clinicID,
		Code:            code,
		PatientID:       req.PatientID,
		ProfessionalID:  professionalID,
		StartTime:       startTime,
		DurationMinutes: duration,
		Reason:          req.Reason,
		Status:          statusScheduled,
		Language:        req.Language,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}
	if err := s.Repo.Create(appointment); err != nil {
		log.Printf("Error creating appointment in repository: %v", err)
		return nil, nil, err
	}

	res, err := s.Repo.GetByCode(clinicID, code)
	if err != nil {
		return nil, nil, err
	}
	s.Notifier.SendAppointmentNotifications(*res, notifyConfirmed)
	return res, nil, nil
}

func (s *AppointmentService) GetAppointment(clinicID int, code string) (*entities.AppointmentResponse, error) {
	return s.Repo.GetByCode(clinicID, code)
}

func (s *AppointmentService) ListAppointments(clinicID int, date, status string, professionalID, limit, offset int) (*entities.AppointmentsList, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	appointments, total, err := s.Repo.List(clinicID, date, status, professionalID, limit, offset)
	if err != nil {
		return nil, err
	}
	return &entities.AppointmentsList{
		Total:        total,
		Limit:        limit,
		Offset:       offset,
		Appointments: appointments,
	}, nil
}

// RescheduleAppointment moves a scheduled appointment to a new slot, subject
// to the same working-hours validation as creation.
func (s *AppointmentService) RescheduleAppointment(clinicID int, code string, req *entities.AppointmentRequest) (*entities.AppointmentResponse, *availability.Warning, error) {
	slot := entities.AvailabilityCheckRequest{Date: req.Date, Time: req.Time, ProfessionalID: req.ProfessionalID}
	warning, err := s.Schedule.CheckSlot(clinicID, slot)
	if err != nil {
		return nil, nil, err
	}
	if warning != nil {
		return nil, warning, nil
	}

	startTime, err := slotStartTime(req.Date, req.Time)
	if err != nil {
		return nil, nil, err
	}
	duration := req.DurationMinutes
	if duration <= 0 {
		duration = defaultDurationMinutes
	}
	var professionalID *int
	if req.ProfessionalID != 0 {
		professionalID = &req.ProfessionalID
	}

	if err := s.Repo.Reschedule(clinicID, code, startTime, duration, professionalID); err != nil {
		return nil, nil, err
	}

	res, err := s.Repo.GetByCode(clinicID, code)
	if err != nil {
		return nil, nil, err
	}
	s.Notifier.SendAppointmentNotifications(*res, notifyRescheduled)
	return res, nil, nil
}

func (s *AppointmentService) CancelAppointment(clinicID int, code string) error {
	res, err := s.Repo.GetByCode(clinicID, code)
	if err != nil {
		return httperrors.ErrNotFound(fmt.Sprintf("appointment '%s' not found", code))
	}
	if res.Status != statusScheduled {
		return httperrors.ErrConflict(fmt.Sprintf("appointment '%s' is already %s", code, res.Status))
	}
	if err := s.Repo.UpdateStatus(clinicID, code, statusCanceled); err != nil {
		return err
	}
	res.Status = statusCanceled
	s.Notifier.SendAppointmentNotifications(*res, notifyCanceled)
	return nil
}

// slotStartTime combines the booking form's date and HH:MM strings into a
// timestamp in the clinic's timezone.
func slotStartTime(date, timeOfDay string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}
	tod, err := availability.ParseTimeOfDay(timeOfDay)
	if err != nil {
		return time.Time{}, err
	}
	loc := clinicLocation()
	return time.Date(d.Year(), d.Month(), d.Day(), int(tod)/60, int(tod)%60, 0, 0, loc), nil
}
