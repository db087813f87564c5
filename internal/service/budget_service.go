package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"odontia/internal/db"
	"odontia/internal/entities"
	"odontia/internal/repository"
)

const (
	budgetDraft    = "draft"
	budgetApproved = "approved"
)

type BudgetService struct {
	Repo *repository.BudgetRepository
}

func NewBudgetService(repo *repository.BudgetRepository) *BudgetService {
	return &BudgetService{Repo: repo}
}

// BudgetTotalCents sums the line items of a budget: unit price times
// quantity, minus the per-line discount.
func BudgetTotalCents(items []db.BudgetItem) int {
	total := 0
	for _, it := range items {
		total += it.UnitPriceCents*it.Quantity - it.DiscountCents
	}
	return total
}

// PaidCents sums the recorded partial payments of a budget.
func PaidCents(payments []db.Payment) int {
	paid := 0
	for _, p := range payments {
		paid += p.AmountCents
	}
	return paid
}

func (s *BudgetService) CreateBudget(clinicID int, req *entities.BudgetRequest) (*entities.BudgetResponse, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("budget must have at least one item")
	}
	for _, it := range req.Items {
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("item %q must have a positive quantity", it.Treatment)
		}
		if it.UnitPriceCents < 0 || it.DiscountCents < 0 {
			return nil, fmt.Errorf("item %q has a negative amount", it.Treatment)
		}
	}

	budget := &db.Budget{
		ClinicID:    clinicID,
		PatientID:   req.PatientID,
		Description: req.Description,
		Status:      budgetDraft,
	}
	items := make([]db.BudgetItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = db.BudgetItem{
			Treatment:      it.Treatment,
			Tooth:          it.Tooth,
			UnitPriceCents: it.UnitPriceCents,
			Quantity:       it.Quantity,
			DiscountCents:  it.DiscountCents,
		}
	}

	if err := s.Repo.CreateBudget(budget, items); err != nil {
		return nil, err
	}
	return toBudgetResponse(budget, items), nil
}

func (s *BudgetService) GetBudget(clinicID, id int) (*entities.BudgetResponse, error) {
	budget, items, err := s.Repo.GetBudget(clinicID, id)
	if err != nil {
		return nil, err
	}
	return toBudgetResponse(budget, items), nil
}

func (s *BudgetService) ListBudgets(clinicID, patientID int) ([]db.Budget, error) {
	return s.Repo.ListBudgets(clinicID, patientID)
}

func (s *BudgetService) ApproveBudget(clinicID, id int) error {
	return s.Repo.UpdateBudgetStatus(clinicID, id, budgetApproved)
}

// AddPayment records a partial payment against a budget. The payment date
// defaults to now when the request omits it.
func (s *BudgetService) AddPayment(clinicID, budgetID int, req *entities.PaymentRequest) (*entities.PaymentResponse, error) {
	if req.AmountCents <= 0 {
		return nil, fmt.Errorf("payment amount must be positive")
	}
	// Ensure the budget belongs to this clinic.
	if _, _, err := s.Repo.GetBudget(clinicID, budgetID); err != nil {
		return nil, err
	}

	paidAt := time.Now().UTC()
	if req.PaidAt != "" {
		parsed, err := time.Parse("2006-01-02", req.PaidAt)
		if err != nil {
			return nil, fmt.Errorf("invalid paid_at %q, expected YYYY-MM-DD", req.PaidAt)
		}
		paidAt = parsed
	}

	payment := &db.Payment{
		BudgetID:    budgetID,
		Reference:   uuid.NewString(),
		AmountCents: req.AmountCents,
		Method:      req.Method,
		PaidAt:      paidAt,
	}
	if err := s.Repo.AddPayment(payment); err != nil {
		return nil, err
	}
	return &entities.PaymentResponse{
		Reference:   payment.Reference,
		AmountCents: payment.AmountCents,
		Method:      payment.Method,
		PaidAt:      payment.PaidAt,
	}, nil
}

// GetBalance reconciles a budget: line-item total against the sum of its
// partial payments.
func (s *BudgetService) GetBalance(clinicID, budgetID int) (*entities.BalanceResponse, error) {
	_, items, err := s.Repo.GetBudget(clinicID, budgetID)
	if err != nil {
		return nil, err
	}
	payments, err := s.Repo.ListPayments(budgetID)
	if err != nil {
		return nil, err
	}

	total := BudgetTotalCents(items)
	paid := PaidCents(payments)

	res := &entities.BalanceResponse{
		BudgetID:     budgetID,
		TotalCents:   total,
		PaidCents:    paid,
		PendingCents: total - paid,
	}
	for _, p := range payments {
		res.Payments = append(res.Payments, entities.PaymentResponse{
			Reference:   p.Reference,
			AmountCents: p.AmountCents,
			Method:      p.Method,
			PaidAt:      p.PaidAt,
		})
	}
	return res, nil
}

func toBudgetResponse(budget *db.Budget, items []db.BudgetItem) *entities.BudgetResponse {
	res := &entities.BudgetResponse{
		ID:          budget.ID,
		PatientID:   budget.PatientID,
		Description: budget.Description,
		Status:      budget.Status,
		TotalCents:  BudgetTotalCents(items),
		CreatedAt:   budget.CreatedAt,
		UpdatedAt:   budget.UpdatedAt,
	}
	for _, it := range items {
		res.Items = append(res.Items, entities.BudgetItemResponse{
			ID:             it.ID,
			Treatment:      it.Treatment,
			Tooth:          it.Tooth,
			UnitPriceCents: it.UnitPriceCents,
			Quantity:       it.Quantity,
			DiscountCents:  it.DiscountCents,
		})
	}
	return res
}
