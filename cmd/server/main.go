package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/stripe/stripe-go/v82"

	"odontia/internal/api"
	"odontia/internal/auth"
	"odontia/internal/repository"
	"odontia/internal/service"
)

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	stripeWebhookSecret := os.Getenv("STRIPE_WEBHOOK_SECRET")

	patientRepo := repository.NewPatientRepository(db)
	professionalRepo := repository.NewProfessionalRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	budgetRepo := repository.NewBudgetRepository(db)
	billingRepo := repository.NewBillingRepository(db)
	staffAuthRepo := repository.NewStaffAuthRepository(db)
	jobRepo := repository.NewJobRepository(db)

	notifySvc := service.NewNotifyService()
	stripeSvc := service.NewStripeService()
	scheduleSvc := service.NewScheduleService(scheduleRepo)
	patientSvc := service.NewPatientService(patientRepo)
	professionalSvc := service.NewProfessionalService(professionalRepo)
	appointmentSvc := service.NewAppointmentService(appointmentRepo, scheduleSvc, notifySvc)
	budgetSvc := service.NewBudgetService(budgetRepo)
	billingSvc := service.NewBillingService(billingRepo, stripeSvc)
	staffAuthSvc := service.NewStaffAuthService(staffAuthRepo)
	jobSvc := service.NewJobService(jobRepo, notifySvc)

	authHandler := api.NewAuthHandler(staffAuthSvc)
	patientHandler := api.NewPatientHandler(patientSvc)
	professionalHandler := api.NewProfessionalHandler(professionalSvc)
	scheduleHandler := api.NewScheduleHandler(scheduleSvc)
	appointmentHandler := api.NewAppointmentHandler(appointmentSvc)
	budgetHandler := api.NewBudgetHandler(budgetSvc)
	stripeHandler := api.NewStripeWebhookHandler(stripeWebhookSecret, billingSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/stripe/webhook", stripeHandler.HandleWebhook).Methods("POST")

	// Tenant endpoints (protected)
	app := r.PathPrefix("/api").Subrouter()
	app.Use(auth.Middleware)
	app.HandleFunc("/auth/register", authHandler.Register).Methods("POST")

	app.HandleFunc("/patients", patientHandler.CreatePatient).Methods("POST")
	app.HandleFunc("/patients", patientHandler.ListPatients).Methods("GET")
	app.HandleFunc("/patients/{id}", patientHandler.GetPatient).Methods("GET")
	app.HandleFunc("/patients/{id}", patientHandler.UpdatePatient).Methods("PUT")
	app.HandleFunc("/patients/{id}", patientHandler.DeletePatient).Methods("DELETE")

	app.HandleFunc("/professionals", professionalHandler.CreateProfessional).Methods("POST")
	app.HandleFunc("/professionals", professionalHandler.ListProfessionals).Methods("GET")
	app.HandleFunc("/professionals/{id}", professionalHandler.GetProfessional).Methods("GET")

	app.HandleFunc("/schedule/clinic", scheduleHandler.GetClinicSchedule).Methods("GET")
	app.HandleFunc("/schedule/clinic", scheduleHandler.UpdateClinicSchedule).Methods("PUT")
	app.HandleFunc("/schedule/professionals/{id}", scheduleHandler.GetProfessionalSchedule).Methods("GET")
	app.HandleFunc("/schedule/professionals/{id}", scheduleHandler.UpdateProfessionalSchedule).Methods("PUT")

	app.HandleFunc("/appointments/check", appointmentHandler.CheckAvailability).Methods("POST")
	app.HandleFunc("/appointments", appointmentHandler.CreateAppointment).Methods("POST")
	app.HandleFunc("/appointments", appointmentHandler.ListAppointments).Methods("GET")
	app.HandleFunc("/appointments/{code}", appointmentHandler.GetAppointment).Methods("GET")
	app.HandleFunc("/appointments/{code}", appointmentHandler.RescheduleAppointment).Methods("PUT")
	app.HandleFunc("/appointments/{code}", appointmentHandler.CancelAppointment).Methods("DELETE")

	app.HandleFunc("/budgets", budgetHandler.CreateBudget).Methods("POST")
	app.HandleFunc("/budgets", budgetHandler.ListBudgets).Methods("GET")
	app.HandleFunc("/budgets/{id}", budgetHandler.GetBudget).Methods("GET")
	app.HandleFunc("/budgets/{id}/approve", budgetHandler.ApproveBudget).Methods("POST")
	app.HandleFunc("/budgets/{id}/payments", budgetHandler.AddPayment).Methods("POST")
	app.HandleFunc("/budgets/{id}/balance", budgetHandler.GetBalance).Methods("GET")

	app.HandleFunc("/billing/checkout", stripeHandler.CreateCheckout).Methods("POST")
	app.HandleFunc("/billing/status", stripeHandler.SubscriptionStatus).Methods("GET")

	c := cron.New()
	c.AddFunc("@hourly", func() {
		if err := jobSvc.CompletePastAppointments(); err != nil {
			log.Printf("Cron Job error: %v", err)
		}
	})
	c.AddFunc("0 9 * * *", func() {
		if err := jobSvc.SendReminders(); err != nil {
			log.Printf("Cron Job error: %v", err)
		}
	})
	c.AddFunc("@daily", func() {
		if _, err := jobSvc.PurgeOldCanceledAppointments(time.Now().AddDate(-1, 0, 0)); err != nil {
			log.Printf("Cron Job error: %v", err)
		}
	})
	c.Start()
	defer c.Stop()

	corsHandler := gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins([]string{os.Getenv("CORS_ALLOWED_ORIGIN")}),
		gorillahandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorillahandlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, gorillahandlers.LoggingHandler(os.Stdout, corsHandler(r))))
}
