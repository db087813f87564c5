package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"odontia/internal/entities"
)

func emailData(lang, status string) entities.AppointmentEmailData {
	return entities.AppointmentEmailData{
		PatientName:        "Ana García",
		AppointmentCode:    "0A1B2C3D",
		ProfessionalName:   "Dr. Pérez",
		ClinicName:         "Odontia",
		StartTimeFormatted: "12 Sep 2026 14:30",
		Reason:             "Control",
		CurrentYear:        2026,
		Language:           lang,
		Status:             statusTranslation(status, lang),
	}
}

func TestStatusTranslation(t *testing.T) {
	assert.Equal(t, "confirmado", statusTranslation(notifyConfirmed, "es"))
	assert.Equal(t, "cancelado", statusTranslation(notifyCanceled, "es"))
	assert.Equal(t, "remarcado", statusTranslation(notifyRescheduled, "pt"))
	assert.Equal(t, "coming up", statusTranslation(notifyReminder, "en"))
	// Unknown languages fall back to English.
	assert.Equal(t, "confirmed", statusTranslation(notifyConfirmed, "fr"))
}

func TestBuildAppointmentEmailSpanish(t *testing.T) {
	subject, body := buildAppointmentEmail(emailData("es", notifyConfirmed))

	assert.Contains(t, subject, "Tu turno en Odontia está confirmado")
	assert.Contains(t, subject, "0A1B2C3D")
	assert.Contains(t, body, "Hola Ana García")
	assert.Contains(t, body, "Dr. Pérez")
	assert.Contains(t, body, "12 Sep 2026 14:30")
}

func TestBuildAppointmentEmailDefaultsToEnglish(t *testing.T) {
	subject, body := buildAppointmentEmail(emailData("", notifyCanceled))

	assert.Contains(t, subject, "Your Odontia appointment is canceled")
	assert.Contains(t, body, "Hello Ana García")
}

func TestBuildAppointmentEmailWithoutProfessional(t *testing.T) {
	data := emailData("en", notifyConfirmed)
	data.ProfessionalName = ""
	_, body := buildAppointmentEmail(data)

	// Falls back to the clinic name when no professional is assigned.
	assert.Contains(t, body, "Professional: Odontia")
}

func TestBuildAppointmentWhatsApp(t *testing.T) {
	start := time.Date(2026, 9, 12, 14, 30, 0, 0, clinicLocation())

	msg := buildAppointmentWhatsApp(emailData("pt", notifyConfirmed), start)
	assert.Contains(t, msg, "Sua consulta 0A1B2C3D")
	assert.Contains(t, msg, "12/09 14:30")

	msg = buildAppointmentWhatsApp(emailData("en", notifyReminder), start)
	assert.Contains(t, msg, "Appointment 0A1B2C3D is coming up")
}
