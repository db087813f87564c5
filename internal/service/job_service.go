package service

import (
	"fmt"
	"log"
	"time"

	"odontia/internal/repository"
)

type JobService struct {
	Repo     *repository.JobRepository
	Notifier *NotifyService
}

func NewJobService(repo *repository.JobRepository, notifier *NotifyService) *JobService {
	return &JobService{Repo: repo, Notifier: notifier}
}

// CompletePastAppointments finds scheduled appointments whose slot already
// ended and marks them completed.
func (s *JobService) CompletePastAppointments() error {
	log.Println("Cron Job: Checking for appointments to mark as 'completed'...")

	ids, err := s.Repo.GetScheduledAppointmentIDsPastEnd()
	if err != nil {
		return fmt.Errorf("cron job: failed to get scheduled appointments past end time: %w", err)
	}
	if len(ids) == 0 {
		log.Println("Cron Job: No scheduled appointments found past their end time.")
		return nil
	}

	log.Printf("Cron Job: Found %d appointments to mark as 'completed'. IDs: %v", len(ids), ids)
	if err := s.Repo.UpdateAppointmentStatuses(ids, statusCompleted); err != nil {
		return fmt.Errorf("cron job: failed to update appointment statuses: %w", err)
	}
	return nil
}

// SendReminders notifies patients with an appointment scheduled for
// tomorrow, by email and WhatsApp.
func (s *JobService) SendReminders() error {
	log.Println("Cron Job: Sending reminders for tomorrow's appointments...")

	loc := clinicLocation()
	now := time.Now().In(loc)
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1)
	to := from.AddDate(0, 0, 1)

	appointments, err := s.Repo.ListAppointmentsBetween(from, to)
	if err != nil {
		return fmt.Errorf("cron job: failed to list appointments for reminders: %w", err)
	}

	log.Printf("Cron Job: Sending %d appointment reminders.", len(appointments))
	for _, appointment := range appointments {
		s.Notifier.SendAppointmentNotifications(appointment, notifyReminder)
	}
	return nil
}

// PurgeOldCanceledAppointments deletes canceled appointments created before
// the given time.
func (s *JobService) PurgeOldCanceledAppointments(before time.Time) (int64, error) {
	return s.Repo.DeleteCanceledAppointmentsOlderThan(before)
}
