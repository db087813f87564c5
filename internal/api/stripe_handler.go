package api

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"odontia/internal/auth"
	"odontia/internal/service"
)

type StripeWebhookHandler struct {
	StripeSecret   string
	billingService *service.BillingService
}

func NewStripeWebhookHandler(stripeSecret string, billingService *service.BillingService) *StripeWebhookHandler {
	return &StripeWebhookHandler{
		StripeSecret:   stripeSecret,
		billingService: billingService,
	}
}

// CreateCheckout starts the subscription purchase flow for the
// authenticated clinic.
func (h *StripeWebhookHandler) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	clinicID := auth.ClinicIDFromContext(r.Context())
	session, err := h.billingService.CreateSubscriptionCheckout(clinicID)
	if err != nil {
		log.Printf("Error creating subscription checkout: %v", err)
		http.Error(w, "Could not create checkout session", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// SubscriptionStatus reports the clinic's current billing state.
func (h *StripeWebhookHandler) SubscriptionStatus(w http.ResponseWriter, r *http.Request) {
	clinicID := auth.ClinicIDFromContext(r.Context())
	status, err := h.billingService.SubscriptionStatus(clinicID)
	if err != nil {
		http.Error(w, "Clinic not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"subscription_status": status})
}

func (h *StripeWebhookHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	const maxBodyBytes = int64(65536)
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("Error reading body: %v", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	sigHeader := r.Header.Get("Stripe-Signature")
	event, err := webhook.ConstructEvent(payload, sigHeader, h.StripeSecret)
	if err != nil {
		log.Printf("Webhook signature verification failed: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			log.Printf("Error parsing checkout.session: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if err := h.billingService.HandleCheckoutCompleted(&sess); err != nil {
			log.Printf("DB error: %v", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

	case "customer.subscription.deleted":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			log.Printf("Error parsing subscription: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if err := h.billingService.HandleSubscriptionDeleted(sub.ID); err != nil {
			log.Printf("DB error: %v", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

	default:
		log.Printf("Unhandled event type: %s", event.Type)
	}

	w.WriteHeader(http.StatusOK)
}
