package http

import (
	"net/http"

	"medicare-plus/internal/delivery/http/handler"
	"medicare-plus/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                *mux.Router
	authHandler           *handler.AuthHandler
	doctorHandler         *handler.DoctorHandler
	patientHandler        *handler.PatientHandler
	appointmentHandler    *handler.AppointmentHandler
	specializationHandler *handler.SpecializationHandler
	paymentHandler        *handler.PaymentHandler
	reportHandler         *handler.ReportHandler
	auditLogHandler       *handler.AuditLogHandler
	authMiddleware        *middleware.AuthMiddleware
	corsMiddleware        *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	specializationHandler *handler.SpecializationHandler,
	paymentHandler *handler.PaymentHandler,
	reportHandler *handler.ReportHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		authHandler:           authHandler,
		doctorHandler:         doctorHandler,
		patientHandler:        patientHandler,
		appointmentHandler:    appointmentHandler,
		specializationHandler: specializationHandler,
		paymentHandler:        paymentHandler,
		reportHandler:         reportHandler,
		auditLogHandler:       auditLogHandler,
		authMiddleware:        authMiddleware,
		corsMiddleware:        corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/register/doctor", r.authHandler.RegisterDoctor).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Public catalogue browsing
	api.HandleFunc("/specializations", r.specializationHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/doctors", r.doctorHandler.List).Methods(http.MethodGet)

	// Protected doctor browsing (occupancy and the doctor's own surface
	// share the /doctors prefix, so "me" routes are registered first)
	doctors := api.PathPrefix("/doctors").Subrouter()
	doctors.Use(r.authMiddleware.Authenticate)
	doctors.Handle("/me", middleware.RequireDoctor(http.HandlerFunc(r.doctorHandler.GetProfile))).Methods(http.MethodGet)
	doctors.Handle("/me", middleware.RequireDoctor(http.HandlerFunc(r.doctorHandler.UpdateProfile))).Methods(http.MethodPut)
	doctors.HandleFunc("/{id}", r.doctorHandler.GetByID).Methods(http.MethodGet)
	doctors.HandleFunc("/{id}/slots", r.doctorHandler.GetSlots).Methods(http.MethodGet)
	doctors.HandleFunc("/{id}/occupancy", r.appointmentHandler.GetOccupancy).Methods(http.MethodGet)

	// Patient routes (protected - patient only)
	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.Use(middleware.RequirePatient)
	patients.HandleFunc("/me", r.patientHandler.GetProfile).Methods(http.MethodGet)
	patients.HandleFunc("/me", r.patientHandler.UpdateProfile).Methods(http.MethodPut)

	// Appointment routes (protected, role-split per route)
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.Handle("", middleware.RequirePatient(http.HandlerFunc(r.appointmentHandler.Book))).Methods(http.MethodPost)
	appointments.Handle("/me", middleware.RequirePatient(http.HandlerFunc(r.appointmentHandler.GetMine))).Methods(http.MethodGet)
	appointments.Handle("/schedule", middleware.RequireDoctor(http.HandlerFunc(r.appointmentHandler.GetSchedule))).Methods(http.MethodGet)
	appointments.Handle("/{id}", middleware.RequirePatient(http.HandlerFunc(r.appointmentHandler.Cancel))).Methods(http.MethodDelete)

	// Payment routes (protected - patient only)
	payments := api.PathPrefix("/payments").Subrouter()
	payments.Use(r.authMiddleware.Authenticate)
	payments.Use(middleware.RequirePatient)
	payments.HandleFunc("/order", r.paymentHandler.CreateOrder).Methods(http.MethodPost)
	payments.HandleFunc("/verify", r.paymentHandler.Verify).Methods(http.MethodPost)

	// Report routes (protected, role-split per route)
	reports := api.PathPrefix("/reports").Subrouter()
	reports.Use(r.authMiddleware.Authenticate)
	reports.Handle("", middleware.RequireDoctor(http.HandlerFunc(r.reportHandler.Create))).Methods(http.MethodPost)
	reports.Handle("/me", middleware.RequirePatient(http.HandlerFunc(r.reportHandler.GetMine))).Methods(http.MethodGet)
	reports.Handle("/filed", middleware.RequireDoctor(http.HandlerFunc(r.reportHandler.GetFiled))).Methods(http.MethodGet)
	reports.HandleFunc("/appointment/{id}", r.reportHandler.GetByAppointment).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.List).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
