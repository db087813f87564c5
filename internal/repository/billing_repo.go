package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"odontia/internal/db"
)

type BillingRepository struct {
	DB *sql.DB
}

func NewBillingRepository(database *sql.DB) *BillingRepository {
	return &BillingRepository{DB: database}
}

func (r *BillingRepository) GetClinic(clinicID int) (*db.Clinic, error) {
	var c db.Clinic
	query := `
		SELECT id, name, email, phone, subscription_status, stripe_customer_id, stripe_subscription_id, created_at, updated_at
		FROM clinics WHERE id = $1`
	err := r.DB.QueryRow(query, clinicID).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.SubscriptionStatus, &c.StripeCustomerID, &c.StripeSubscriptionID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("clinic %d not found: %w", clinicID, err)
		}
		return nil, fmt.Errorf("error querying clinic: %w", err)
	}
	return &c, nil
}

// ActivateSubscription records the Stripe identifiers delivered by the
// checkout.session.completed webhook.
func (r *BillingRepository) ActivateSubscription(clinicID int, customerID, subscriptionID string) error {
	query := `
		UPDATE clinics
		SET subscription_status = 'active', stripe_customer_id = $2, stripe_subscription_id = $3, updated_at = NOW()
		WHERE id = $1`
	_, err := r.DB.Exec(query, clinicID, customerID, subscriptionID)
	if err != nil {
		return fmt.Errorf("error activating subscription for clinic %d: %w", clinicID, err)
	}
	return nil
}

func (r *BillingRepository) UpdateSubscriptionStatusBySubscriptionID(subscriptionID, status string) error {
	query := `UPDATE clinics SET subscription_status = $2, updated_at = NOW() WHERE stripe_subscription_id = $1 RETURNING id`
	var id int
	err := r.DB.QueryRow(query, subscriptionID, status).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("no clinic with subscription '%s': %w", subscriptionID, err)
		}
		return fmt.Errorf("error updating subscription status: %w", err)
	}
	return nil
}
