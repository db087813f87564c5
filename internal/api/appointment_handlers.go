package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"odontia/internal/auth"
	"odontia/internal/entities"
	"odontia/internal/service"
)

type AppointmentHandler struct {
	Service *service.AppointmentService
}

func NewAppointmentHandler(svc *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// CheckAvailability validates a candidate slot against working hours without
// creating anything. The booking form calls this while the user picks a
// date, time and professional.
func (h *AppointmentHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	var req entities.AvailabilityCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	clinicID := auth.ClinicIDFromContext(r.Context())
	warning, err := h.Service.CheckAvailability(clinicID, req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res := entities.AvailabilityCheckResponse{Allowed: warning == nil}
	if warning != nil {
		res.Warning = warning.Message
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req entities.AppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	clinicID := auth.ClinicIDFromContext(r.Context())
	appointment, warning, err := h.Service.CreateAppointment(clinicID, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if warning != nil {
		// A warning is a hard block at submit time.
		writeJSON(w, http.StatusConflict, entities.AvailabilityCheckResponse{Allowed: false, Warning: warning.Message})
		return
	}
	writeJSON(w, http.StatusCreated, appointment)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	clinicID := auth.ClinicIDFromContext(r.Context())
	appointment, err := h.Service.GetAppointment(clinicID, code)
	if err != nil {
		http.Error(w, "Appointment not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, appointment)
}

func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	status := r.URL.Query().Get("status")
	professionalID, _ := strconv.Atoi(r.URL.Query().Get("professional_id"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	clinicID := auth.ClinicIDFromContext(r.Context())
	list, err := h.Service.ListAppointments(clinicID, date, status, professionalID, limit, offset)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *AppointmentHandler) RescheduleAppointment(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	var req entities.AppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	clinicID := auth.ClinicIDFromContext(r.Context())
	appointment, warning, err := h.Service.RescheduleAppointment(clinicID, code, &req)
	if err != nil {
		http.Error(w, "Could not reschedule appointment", http.StatusInternalServerError)
		return
	}
	if warning != nil {
		writeJSON(w, http.StatusConflict, entities.AvailabilityCheckResponse{Allowed: false, Warning: warning.Message})
		return
	}
	writeJSON(w, http.StatusOK, appointment)
}

func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	clinicID := auth.ClinicIDFromContext(r.Context())
	if err := h.Service.CancelAppointment(clinicID, code); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Appointment canceled"})
}
