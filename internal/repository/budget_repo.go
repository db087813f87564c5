package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"odontia/internal/db"
)

type BudgetRepository struct {
	DB *sql.DB
}

func NewBudgetRepository(database *sql.DB) *BudgetRepository {
	return &BudgetRepository{DB: database}
}

// CreateBudget inserts the budget header and its line items in one
// transaction.
func (r *BudgetRepository) CreateBudget(b *db.Budget, items []db.BudgetItem) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting budget transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO budgets (clinic_id, patient_id, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at`
	err = tx.QueryRow(query, b.ClinicID, b.PatientID, b.Description, b.Status).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error inserting budget: %w", err)
	}

	itemQuery := `
		INSERT INTO budget_items (budget_id, treatment, tooth, unit_price_cents, quantity, discount_cents)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	for i := range items {
		items[i].BudgetID = b.ID
		err = tx.QueryRow(itemQuery,
			b.ID, items[i].Treatment, items[i].Tooth, items[i].UnitPriceCents, items[i].Quantity, items[i].DiscountCents,
		).Scan(&items[i].ID)
		if err != nil {
			return fmt.Errorf("error inserting budget item: %w", err)
		}
	}

	return tx.Commit()
}

func (r *BudgetRepository) GetBudget(clinicID, id int) (*db.Budget, []db.BudgetItem, error) {
	var b db.Budget
	query := `
		SELECT id, clinic_id, patient_id, description, status, created_at, updated_at
		FROM budgets WHERE clinic_id = $1 AND id = $2`
	err := r.DB.QueryRow(query, clinicID, id).Scan(
		&b.ID, &b.ClinicID, &b.PatientID, &b.Description, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, fmt.Errorf("budget %d not found: %w", id, err)
		}
		return nil, nil, fmt.Errorf("error querying budget: %w", err)
	}

	items, err := r.listItems(b.ID)
	if err != nil {
		return nil, nil, err
	}
	return &b, items, nil
}

func (r *BudgetRepository) listItems(budgetID int) ([]db.BudgetItem, error) {
	query := `
		SELECT id, budget_id, treatment, tooth, unit_price_cents, quantity, discount_cents
		FROM budget_items WHERE budget_id = $1 ORDER BY id`
	rows, err := r.DB.Query(query, budgetID)
	if err != nil {
		return nil, fmt.Errorf("error querying budget items: %w", err)
	}
	defer rows.Close()

	var items []db.BudgetItem
	for rows.Next() {
		var it db.BudgetItem
		if err := rows.Scan(&it.ID, &it.BudgetID, &it.Treatment, &it.Tooth, &it.UnitPriceCents, &it.Quantity, &it.DiscountCents); err != nil {
			return nil, fmt.Errorf("error scanning budget item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *BudgetRepository) ListBudgets(clinicID, patientID int) ([]db.Budget, error) {
	query := `
		SELECT id, clinic_id, patient_id, description, status, created_at, updated_at
		FROM budgets WHERE clinic_id = $1`
	args := []interface{}{clinicID}
	if patientID != 0 {
		query += " AND patient_id = $2"
		args = append(args, patientID)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying budgets: %w", err)
	}
	defer rows.Close()

	var budgets []db.Budget
	for rows.Next() {
		var b db.Budget
		if err := rows.Scan(&b.ID, &b.ClinicID, &b.PatientID, &b.Description, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning budget: %w", err)
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

func (r *BudgetRepository) UpdateBudgetStatus(clinicID, id int, status string) error {
	query := `UPDATE budgets SET status = $3, updated_at = NOW() WHERE clinic_id = $1 AND id = $2 RETURNING id`
	var got int
	err := r.DB.QueryRow(query, clinicID, id, status).Scan(&got)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("budget %d not found: %w", id, err)
		}
		return fmt.Errorf("error updating budget status: %w", err)
	}
	return nil
}

func (r *BudgetRepository) AddPayment(p *db.Payment) error {
	query := `
		INSERT INTO payments (budget_id, reference, amount_cents, method, paid_at, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at`
	return r.DB.QueryRow(query,
		p.BudgetID, p.Reference, p.AmountCents, p.Method, p.PaidAt,
	).Scan(&p.ID, &p.CreatedAt)
}

func (r *BudgetRepository) ListPayments(budgetID int) ([]db.Payment, error) {
	query := `
		SELECT id, budget_id, reference, amount_cents, method, paid_at, created_at
		FROM payments WHERE budget_id = $1 ORDER BY paid_at`
	rows, err := r.DB.Query(query, budgetID)
	if err != nil {
		return nil, fmt.Errorf("error querying payments: %w", err)
	}
	defer rows.Close()

	var payments []db.Payment
	for rows.Next() {
		var p db.Payment
		if err := rows.Scan(&p.ID, &p.BudgetID, &p.Reference, &p.AmountCents, &p.Method, &p.PaidAt, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
