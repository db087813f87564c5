package entities

import "time"

type AppointmentRequest struct {
	PatientID       int    `json:"patient_id"`
	ProfessionalID  int    `json:"professional_id,omitempty"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"duration_minutes"`
	Reason          string `json:"reason"`
	Language        string `json:"language"`
}

type AppointmentResponse struct {
	Code             string    `json:"code"`
	PatientID        int       `json:"patient_id"`
	PatientName      string    `json:"patient_name"`
	PatientEmail     string    `json:"patient_email"`
	PatientPhone     string    `json:"patient_phone"`
	ProfessionalID   int       `json:"professional_id,omitempty"`
	ProfessionalName string    `json:"professional_name,omitempty"`
	StartTime        time.Time `json:"start_time"`
	DurationMinutes  int       `json:"duration_minutes"`
	Reason           string    `json:"reason"`
	Status           string    `json:"status"`
	Language         string    `json:"language"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type AppointmentsList struct {
	Total        int64                 `json:"total"`
	Limit        int                   `json:"limit"`
	Offset       int                   `json:"offset"`
	Appointments []AppointmentResponse `json:"appointments"`
}
