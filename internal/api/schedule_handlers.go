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

type ScheduleHandler struct {
	Service *service.ScheduleService
}

func NewScheduleHandler(svc *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

func (h *ScheduleHandler) GetClinicSchedule(w http.ResponseWriter, r *http.Request) {
	clinicID := auth.ClinicIDFromContext(r.Context())
	windows, err := h.Service.GetClinicSchedule(clinicID)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, windows)
}

func (h *ScheduleHandler) UpdateClinicSchedule(w http.ResponseWriter, r *http.Request) {
	var req entities.ScheduleUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	clinicID := auth.ClinicIDFromContext(r.Context())
	if err := h.Service.UpdateClinicSchedule(clinicID, req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Clinic schedule updated"})
}

func (h *ScheduleHandler) GetProfessionalSchedule(w http.ResponseWriter, r *http.Request) {
	professionalID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	clinicID := auth.ClinicIDFromContext(r.Context())
	windows, err := h.Service.GetProfessionalSchedule(clinicID, professionalID)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, windows)
}

func (h *ScheduleHandler) UpdateProfessionalSchedule(w http.ResponseWriter, r *http.Request) {
	professionalID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	var req entities.ScheduleUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	clinicID := auth.ClinicIDFromContext(r.Context())
	if err := h.Service.UpdateProfessionalSchedule(clinicID, professionalID, req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Professional schedule updated"})
}
