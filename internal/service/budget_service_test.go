package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"odontia/internal/db"
)

func TestBudgetTotalCents(t *testing.T) {
	items := []db.BudgetItem{
		{Treatment: "Cleaning", UnitPriceCents: 15000, Quantity: 1},
		{Treatment: "Filling", Tooth: "26", UnitPriceCents: 30000, Quantity: 2, DiscountCents: 5000},
		{Treatment: "X-ray", UnitPriceCents: 8000, Quantity: 1},
	}
	// 15000 + (30000*2 - 5000) + 8000
	assert.Equal(t, 78000, BudgetTotalCents(items))
}

func TestBudgetTotalCentsEmpty(t *testing.T) {
	assert.Equal(t, 0, BudgetTotalCents(nil))
}

func TestPaidCents(t *testing.T) {
	now := time.Now()
	payments := []db.Payment{
		{AmountCents: 20000, Method: "cash", PaidAt: now},
		{AmountCents: 15000, Method: "card", PaidAt: now},
	}
	assert.Equal(t, 35000, PaidCents(payments))
	assert.Equal(t, 0, PaidCents(nil))
}

func TestBalanceReconciliation(t *testing.T) {
	items := []db.BudgetItem{
		{Treatment: "Implant", UnitPriceCents: 250000, Quantity: 1},
		{Treatment: "Crown", UnitPriceCents: 120000, Quantity: 1, DiscountCents: 20000},
	}
	payments := []db.Payment{
		{AmountCents: 100000},
		{AmountCents: 50000},
	}

	total := BudgetTotalCents(items)
	paid := PaidCents(payments)

	assert.Equal(t, 350000, total)
	assert.Equal(t, 150000, paid)
	assert.Equal(t, 200000, total-paid, "pending balance")
}
