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

type PatientHandler struct {
	Service *service.PatientService
}

func NewPatientHandler(svc *service.PatientService) *PatientHandler {
	return &PatientHandler{Service: svc}
}

func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req entities.PatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	clinicID := auth.ClinicIDFromContext(r.Context())
	patient, err := h.Service.CreatePatient(clinicID, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, patient)
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	clinicID := auth.ClinicIDFromContext(r.Context())
	patient, err := h.Service.GetPatient(clinicID, id)
	if err != nil {
		http.Error(w, "Patient not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, patient)
}

func (h *PatientHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	document := r.URL.Query().Get("document")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	clinicID := auth.ClinicIDFromContext(r.Context())
	list, err := h.Service.ListPatients(clinicID, name, document, limit, offset)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	var req entities.PatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	clinicID := auth.ClinicIDFromContext(r.Context())
	patient, err := h.Service.UpdatePatient(clinicID, id, &req)
	if err != nil {
		http.Error(w, "Could not update patient", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, patient)
}

func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	clinicID := auth.ClinicIDFromContext(r.Context())
	if err := h.Service.DeletePatient(clinicID, id); err != nil {
		http.Error(w, "Could not delete patient", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Patient deleted"})
}
