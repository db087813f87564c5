package entities

// AvailabilityCheckRequest is the candidate slot as the booking form sends
// it: a calendar date, an "HH:MM" start time and an optional professional.
type AvailabilityCheckRequest struct {
	Date           string `json:"date"`
	Time           string `json:"time"`
	ProfessionalID int    `json:"professional_id,omitempty"`
}

// AvailabilityCheckResponse carries at most one warning. Allowed is false
// whenever a warning is present; callers block submission on it.
type AvailabilityCheckResponse struct {
	Allowed bool   `json:"allowed"`
	Warning string `json:"warning,omitempty"`
}
