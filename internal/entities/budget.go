package entities

import "time"

type BudgetItemRequest struct {
	Treatment      string `json:"treatment"`
	Tooth          string `json:"tooth,omitempty"`
	UnitPriceCents int    `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
	DiscountCents  int    `json:"discount_cents"`
}

type BudgetRequest struct {
	PatientID   int                 `json:"patient_id"`
	Description string              `json:"description"`
	Items       []BudgetItemRequest `json:"items"`
}

type BudgetItemResponse struct {
	ID             int    `json:"id"`
	Treatment      string `json:"treatment"`
	Tooth          string `json:"tooth,omitempty"`
	UnitPriceCents int    `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
	DiscountCents  int    `json:"discount_cents"`
}

type BudgetResponse struct {
	ID          int                  `json:"id"`
	PatientID   int                  `json:"patient_id"`
	Description string               `json:"description"`
	Status      string               `json:"status"`
	Items       []BudgetItemResponse `json:"items"`
	TotalCents  int                  `json:"total_cents"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

type PaymentRequest struct {
	AmountCents int    `json:"amount_cents"`
	Method      string `json:"method"`
	PaidAt      string `json:"paid_at,omitempty"`
}

type PaymentResponse struct {
	Reference   string    `json:"reference"`
	AmountCents int       `json:"amount_cents"`
	Method      string    `json:"method"`
	PaidAt      time.Time `json:"paid_at"`
}

// BalanceResponse is the reconciliation of a budget: the sum of its line
// items against the sum of its recorded partial payments.
type BalanceResponse struct {
	BudgetID     int               `json:"budget_id"`
	TotalCents   int               `json:"total_cents"`
	PaidCents    int               `json:"paid_cents"`
	PendingCents int               `json:"pending_cents"`
	Payments     []PaymentResponse `json:"payments"`
}
