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

type ProfessionalHandler struct {
	Service *service.ProfessionalService
}

func NewProfessionalHandler(svc *service.ProfessionalService) *ProfessionalHandler {
	return &ProfessionalHandler{Service: svc}
}

func (h *ProfessionalHandler) CreateProfessional(w http.ResponseWriter, r *http.Request) {
	var req entities.ProfessionalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	clinicID := auth.ClinicIDFromContext(r.Context())
	professional, err := h.Service.CreateProfessional(clinicID, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, professional)
}

func (h *ProfessionalHandler) GetProfessional(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	clinicID := auth.ClinicIDFromContext(r.Context())
	professional, err := h.Service.GetProfessional(clinicID, id)
	if err != nil {
		http.Error(w, "Professional not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, professional)
}

func (h *ProfessionalHandler) ListProfessionals(w http.ResponseWriter, r *http.Request) {
	clinicID := auth.ClinicIDFromContext(r.Context())
	professionals, err := h.Service.ListProfessionals(clinicID)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, professionals)
}
