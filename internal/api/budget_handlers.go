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

type BudgetHandler struct {
	Service *service.BudgetService
}

func NewBudgetHandler(svc *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{Service: svc}
}

func (h *BudgetHandler) CreateBudget(w http.ResponseWriter, r *http.Request) {
	var req entities.BudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	clinicID := auth.ClinicIDFromContext(r.Context())
	budget, err := h.Service.CreateBudget(clinicID, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, budget)
}

func (h *BudgetHandler) GetBudget(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	clinicID := auth.ClinicIDFromContext(r.Context())
	budget, err := h.Service.GetBudget(clinicID, id)
	if err != nil {
		http.Error(w, "Budget not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, budget)
}

func (h *BudgetHandler) ListBudgets(w http.ResponseWriter, r *http.Request) {
	patientID, _ := strconv.Atoi(r.URL.Query().Get("patient_id"))
	clinicID := auth.ClinicIDFromContext(r.Context())
	budgets, err := h.Service.ListBudgets(clinicID, patientID)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, budgets)
}

func (h *BudgetHandler) ApproveBudget(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	clinicID := auth.ClinicIDFromContext(r.Context())
	if err := h.Service.ApproveBudget(clinicID, id); err != nil {
		http.Error(w, "Could not approve budget", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Budget approved"})
}

func (h *BudgetHandler) AddPayment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	var req entities.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	clinicID := auth.ClinicIDFromContext(r.Context())
	payment, err := h.Service.AddPayment(clinicID, id, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, payment)
}

func (h *BudgetHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	clinicID := auth.ClinicIDFromContext(r.Context())
	balance, err := h.Service.GetBalance(clinicID, id)
	if err != nil {
		http.Error(w, "Budget not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, balance)
}
