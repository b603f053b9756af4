package http

import (
	"net/http"

	"github.com/LaCsoN00/medapp-sub000/internal/delivery/http/handler"
	"github.com/LaCsoN00/medapp-sub000/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	medecinHandler      *handler.MedecinHandler
	workingHourHandler  *handler.WorkingHourHandler
	appointmentHandler  *handler.AppointmentHandler
	availabilityHandler *handler.AvailabilityHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	medecinHandler *handler.MedecinHandler,
	workingHourHandler *handler.WorkingHourHandler,
	appointmentHandler *handler.AppointmentHandler,
	availabilityHandler *handler.AvailabilityHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		medecinHandler:      medecinHandler,
		workingHourHandler:  workingHourHandler,
		appointmentHandler:  appointmentHandler,
		availabilityHandler: availabilityHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
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
	auth.HandleFunc("/register/medecin", r.authHandler.RegisterMedecin).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Medecin directory and booking surface (public)
	api.HandleFunc("/medecins", r.medecinHandler.GetAllMedecins).Methods(http.MethodGet)
	api.HandleFunc("/medecins/{id}", r.medecinHandler.GetMedecin).Methods(http.MethodGet)
	api.HandleFunc("/medecins/{id}/status", r.medecinHandler.GetStatus).Methods(http.MethodGet)
	api.HandleFunc("/medecins/{id}/working-hours", r.workingHourHandler.GetByMedecin).Methods(http.MethodGet)
	api.HandleFunc("/medecins/{id}/availability/dates", r.availabilityHandler.GetAvailableDates).Methods(http.MethodGet)
	api.HandleFunc("/medecins/{id}/availability/slots", r.availabilityHandler.GetAvailableSlots).Methods(http.MethodGet)

	// Medecin routes (protected - medecin only)
	medecin := api.PathPrefix("/medecin").Subrouter()
	medecin.Use(r.authMiddleware.Authenticate)
	medecin.Use(middleware.RequireMedecin)
	medecin.HandleFunc("/profile", r.medecinHandler.UpdateSelfProfile).Methods(http.MethodPut)
	medecin.HandleFunc("/status", r.medecinHandler.SetStatus).Methods(http.MethodPut)
	medecin.HandleFunc("/working-hours", r.workingHourHandler.Create).Methods(http.MethodPost)
	medecin.HandleFunc("/working-hours", r.workingHourHandler.GetMine).Methods(http.MethodGet)
	medecin.HandleFunc("/working-hours/{id}", r.workingHourHandler.Update).Methods(http.MethodPut)
	medecin.HandleFunc("/working-hours/{id}", r.workingHourHandler.Delete).Methods(http.MethodDelete)
	medecin.HandleFunc("/appointments", r.appointmentHandler.GetMedecinAppointments).Methods(http.MethodGet)
	medecin.HandleFunc("/appointments/{id}/confirm", r.appointmentHandler.Confirm).Methods(http.MethodPut)
	medecin.HandleFunc("/appointments/{id}/complete", r.appointmentHandler.Complete).Methods(http.MethodPut)
	medecin.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.Cancel).Methods(http.MethodPut)

	// Patient routes (protected - patient only)
	patient := api.PathPrefix("/patient").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)
	patient.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	patient.HandleFunc("/appointments", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	patient.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.Cancel).Methods(http.MethodPut)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/medecins", r.medecinHandler.CreateMedecin).Methods(http.MethodPost)
	admin.HandleFunc("/medecins/{id}", r.medecinHandler.UpdateMedecin).Methods(http.MethodPut)
	admin.HandleFunc("/medecins/{id}", r.medecinHandler.DeleteMedecin).Methods(http.MethodDelete)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAll).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
