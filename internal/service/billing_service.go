package service

import (
	"fmt"
	"os"
	"strconv"

	"github.com/stripe/stripe-go/v82"

	"odontia/internal/entities"
	"odontia/internal/repository"
)

type BillingService struct {
	stripeService *StripeService
	Repo          *repository.BillingRepository
}

func NewBillingService(repo *repository.BillingRepository, stripeService *StripeService) *BillingService {
	return &BillingService{Repo: repo, stripeService: stripeService}
}

// CreateSubscriptionCheckout starts the subscription purchase flow for a
// clinic and returns the hosted checkout URL.
func (s *BillingService) CreateSubscriptionCheckout(clinicID int) (*entities.StripeSessionResponse, error) {
	clinic, err := s.Repo.GetClinic(clinicID)
	if err != nil {
		return nil, err
	}

	priceID := os.Getenv("STRIPE_SUBSCRIPTION_PRICE_ID")
	if priceID == "" {
		return nil, fmt.Errorf("STRIPE_SUBSCRIPTION_PRICE_ID not set")
	}

	url, sessionID, err := s.stripeService.CreateSubscriptionCheckoutSession(priceID, strconv.Itoa(clinic.ID), clinic.Email)
	if err != nil {
		return nil, err
	}
	return &entities.StripeSessionResponse{URL: url, SessionID: sessionID}, nil
}

// HandleCheckoutCompleted activates the clinic subscription referenced by a
// completed checkout session.
func (s *BillingService) HandleCheckoutCompleted(sess *stripe.CheckoutSession) error {
	clinicID, err := strconv.Atoi(sess.ClientReferenceID)
	if err != nil {
		return fmt.Errorf("invalid client_reference_id %q: %w", sess.ClientReferenceID, err)
	}
	customerID := ""
	if sess.Customer != nil {
		customerID = sess.Customer.ID
	}
	subscriptionID := ""
	if sess.Subscription != nil {
		subscriptionID = sess.Subscription.ID
	}
	return s.Repo.ActivateSubscription(clinicID, customerID, subscriptionID)
}

// HandleSubscriptionDeleted marks the clinic's subscription canceled when
// Stripe reports the subscription gone.
func (s *BillingService) HandleSubscriptionDeleted(subscriptionID string) error {
	return s.Repo.UpdateSubscriptionStatusBySubscriptionID(subscriptionID, "canceled")
}

// SubscriptionStatus returns the clinic's current billing state.
func (s *BillingService) SubscriptionStatus(clinicID int) (string, error) {
	clinic, err := s.Repo.GetClinic(clinicID)
	if err != nil {
		return "", err
	}
	return clinic.SubscriptionStatus, nil
}
