package db

import "time"

type Clinic struct {
	ID                   int
	Name                 string
	Email                string
	Phone                string
	SubscriptionStatus   string
	StripeCustomerID     string
	StripeSubscriptionID string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type StaffUser struct {
	ID           int
	ClinicID     int
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type Patient struct {
	ID        int
	ClinicID  int
	FullName  string
	Document  string
	Email     string
	Phone     string
	BirthDate *time.Time
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Professional struct {
	ID        int
	ClinicID  int
	FullName  string
	Specialty string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WorkingWindow is one row of the weekly schedule settings. OwnerType is
// either "clinic" or "professional"; for the clinic scope OwnerID equals the
// clinic ID. Times are stored as "HH:MM" strings and parsed at the service
// boundary. At most one row exists per (owner_type, owner_id, day_of_week).
type WorkingWindow struct {
	ID           int
	ClinicID     int
	OwnerType    string
	OwnerID      int
	DayOfWeek    int
	StartTime    string
	EndTime      string
	IsWorkingDay bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Appointment struct {
	ID              int
	ClinicID        int
	Code            string
	PatientID       int
	ProfessionalID  *int
	StartTime       time.Time
	DurationMinutes int
	Reason          string
	Status          string
	Language        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Budget struct {
	ID          int
	ClinicID    int
	PatientID   int
	Description string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type BudgetItem struct {
	ID             int
	BudgetID       int
	Treatment      string
	Tooth          string
	UnitPriceCents int
	Quantity       int
	DiscountCents  int
}

type Payment struct {
	ID          int
	BudgetID    int
	Reference   string
	AmountCents int
	Method      string
	PaidAt      time.Time
	CreatedAt   time.Time
}
