package entities

type StripeSessionResponse struct {
	URL       string `json:"url"`
	SessionID string `json:"session_id"`
}
