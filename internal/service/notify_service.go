package service

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"path/filepath"
	"time"

	"odontia/internal/entities"
)

const (
	notifyConfirmed   = "confirmed"
	notifyRescheduled = "rescheduled"
	notifyCanceled    = "canceled"
	notifyReminder    = "reminder"
)

// clinicLocation is the timezone appointments are displayed in for messages.
func clinicLocation() *time.Location {
	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	if err != nil {
		return time.FixedZone("-03", -3*60*60)
	}
	return loc
}

type NotifyService struct {
}

func NewNotifyService() *NotifyService {
	return &NotifyService{}
}

// SendAppointmentNotifications fires the email and WhatsApp message for a
// status change. Sends run asynchronously; failures are logged and never
// surfaced to the request that triggered them.
func (s *NotifyService) SendAppointmentNotifications(appointment entities.AppointmentResponse, kind string) {
	data := emailDataFor(appointment, kind)

	emailSubject, plainTextBody := buildAppointmentEmail(data)
	whatsappMessage := buildAppointmentWhatsApp(data, appointment.StartTime)

	tmplPath := filepath.Join("internal", "templates", "appointment_email.html")
	var htmlBody string
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		log.Printf("ALERT: failed to parse email template (%s): %v", tmplPath, err)
	} else {
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			log.Printf("ALERT: failed to execute email template for appointment %s: %v", data.AppointmentCode, err)
		}
		htmlBody = buf.String()
	}

	if appointment.PatientEmail != "" {
		go func(toEmail, toName, subject, plainBody, htmlBodyContent string) {
			if err := SendEmailWithSendGrid(toEmail, toName, subject, plainBody, htmlBodyContent); err != nil {
				log.Printf("ALERT (async): email send failed for appointment %s: %v", data.AppointmentCode, err)
			}
		}(appointment.PatientEmail, appointment.PatientName, emailSubject, plainTextBody, htmlBody)
	}

	if appointment.PatientPhone != "" {
		go func(toPhone, message string) {
			if err := SendWhatsApp(toPhone, message); err != nil {
				log.Printf("ALERT (async): WhatsApp send failed for appointment %s: %v", data.AppointmentCode, err)
			}
		}(appointment.PatientPhone, whatsappMessage)
	}
}

func emailDataFor(appointment entities.AppointmentResponse, kind string) entities.AppointmentEmailData {
	loc := clinicLocation()
	return entities.AppointmentEmailData{
		PatientName:        appointment.PatientName,
		AppointmentCode:    appointment.Code,
		ProfessionalName:   appointment.ProfessionalName,
		ClinicName:         "Odontia",
		StartTimeFormatted: appointment.StartTime.In(loc).Format("02 Jan 2006 15:04"),
		Reason:             appointment.Reason,
		CurrentYear:        time.Now().In(loc).Year(),
		Language:           appointment.Language,
		Status:             statusTranslation(kind, appointment.Language),
	}
}

// statusTranslation translates the notification kind for the message body.
func statusTranslation(status, lang string) string {
	switch lang {
	case "es":
		switch status {
		case notifyConfirmed:
			return "confirmado"
		case notifyRescheduled:
			return "reprogramado"
		case notifyCanceled:
			return "cancelado"
		case notifyReminder:
			return "próximo"
		}
	case "pt":
		switch status {
		case notifyConfirmed:
			return "confirmado"
		case notifyRescheduled:
			return "remarcado"
		case notifyCanceled:
			return "cancelado"
		case notifyReminder:
			return "próximo"
		}
	}
	// Default: English
	switch status {
	case notifyReminder:
		return "coming up"
	}
	return status
}

func buildAppointmentEmail(data entities.AppointmentEmailData) (subject, plainTextBody string) {
	professional := data.ProfessionalName
	if professional == "" {
		professional = data.ClinicName
	}

	switch data.Language {
	case "es":
		subject = fmt.Sprintf("Tu turno en %s está %s - Código: %s", data.ClinicName, data.Status, data.AppointmentCode)
		plainTextBody = fmt.Sprintf(
			"Hola %s,\n\nTu turno en %s está %s.\n\n"+
				"Detalles del turno:\n"+
				"Código: %s\n"+
				"Profesional: %s\n"+
				"Fecha y hora: %s\n"+
				"Motivo: %s\n\n"+
				"Gracias por elegir %s.\n\n"+
				"%s %d. Todos los derechos reservados.",
			data.PatientName, data.ClinicName, data.Status,
			data.AppointmentCode, professional, data.StartTimeFormatted, data.Reason,
			data.ClinicName, data.ClinicName, data.CurrentYear,
		)
	case "pt":
		subject = fmt.Sprintf("Sua consulta na %s está %s - Código: %s", data.ClinicName, data.Status, data.AppointmentCode)
		plainTextBody = fmt.Sprintf(
			"Olá %s,\n\nSua consulta na %s está %s.\n\n"+
				"Detalhes da consulta:\n"+
				"Código: %s\n"+
				"Profissional: %s\n"+
				"Data e hora: %s\n"+
				"Motivo: %s\n\n"+
				"Obrigado por escolher a %s.\n\n"+
				"%s %d. Todos os direitos reservados.",
			data.PatientName, data.ClinicName, data.Status,
			data.AppointmentCode, professional, data.StartTimeFormatted, data.Reason,
			data.ClinicName, data.ClinicName, data.CurrentYear,
		)
	default:
		subject = fmt.Sprintf("Your %s appointment is %s - Code: %s", data.ClinicName, data.Status, data.AppointmentCode)
		plainTextBody = fmt.Sprintf(
			"Hello %s,\n\nYour appointment at %s is %s.\n\n"+
				"Appointment Details:\n"+
				"Code: %s\n"+
				"Professional: %s\n"+
				"Date and time: %s\n"+
				"Reason: %s\n\n"+
				"Thank you for choosing %s.\n\n"+
				"%s %d. All rights reserved.",
			data.PatientName, data.ClinicName, data.Status,
			data.AppointmentCode, professional, data.StartTimeFormatted, data.Reason,
			data.ClinicName, data.ClinicName, data.CurrentYear,
		)
	}
	return subject, plainTextBody
}

func buildAppointmentWhatsApp(data entities.AppointmentEmailData, startTime time.Time) string {
	loc := clinicLocation()
	when := startTime.In(loc).Format("02/01 15:04")

	switch data.Language {
	case "es":
		return fmt.Sprintf("%s: ¡Tu turno %s está %s!\nFecha: %s.\nMás detalles en tu correo.",
			data.ClinicName, data.AppointmentCode, data.Status, when)
	case "pt":
		return fmt.Sprintf("%s: Sua consulta %s está %s!\nData: %s.\nMais detalhes no seu e-mail.",
			data.ClinicName, data.AppointmentCode, data.Status, when)
	default:
		return fmt.Sprintf("%s: Appointment %s is %s!\nDate: %s.\nMore details in your email.",
			data.ClinicName, data.AppointmentCode, data.Status, when)
	}
}
