package http

import (
	"net/http"

	"backend-clinica/internal/delivery/http/handler"
	"backend-clinica/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	doctorHandler       *handler.DoctorHandler
	specialtyHandler    *handler.SpecialtyHandler
	bookingHandler      *handler.BookingHandler
	consultationHandler *handler.ConsultationHandler
	reportHandler       *handler.ReportHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	specialtyHandler *handler.SpecialtyHandler,
	bookingHandler *handler.BookingHandler,
	consultationHandler *handler.ConsultationHandler,
	reportHandler *handler.ReportHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		doctorHandler:       doctorHandler,
		specialtyHandler:    specialtyHandler,
		bookingHandler:      bookingHandler,
		consultationHandler: consultationHandler,
		reportHandler:       reportHandler,
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
	auth.HandleFunc("/register", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Doctor catalog (any authenticated user)
	doctors := api.PathPrefix("/medicos").Subrouter()
	doctors.Use(r.authMiddleware.Authenticate)
	doctors.HandleFunc("", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	doctors.HandleFunc("/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)

	// Doctor management (admin only)
	doctorsAdmin := api.PathPrefix("/medicos").Subrouter()
	doctorsAdmin.Use(r.authMiddleware.Authenticate)
	doctorsAdmin.Use(middleware.RequireAdmin)
	doctorsAdmin.HandleFunc("", r.doctorHandler.RegisterDoctor).Methods(http.MethodPost)
	doctorsAdmin.HandleFunc("/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	doctorsAdmin.HandleFunc("/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	// Specialty catalog (any authenticated user)
	specialties := api.PathPrefix("/especialidades").Subrouter()
	specialties.Use(r.authMiddleware.Authenticate)
	specialties.HandleFunc("", r.specialtyHandler.GetAllSpecialties).Methods(http.MethodGet)
	specialties.HandleFunc("/{id}", r.specialtyHandler.GetSpecialty).Methods(http.MethodGet)

	// Specialty management (admin only)
	specialtiesAdmin := api.PathPrefix("/especialidades").Subrouter()
	specialtiesAdmin.Use(r.authMiddleware.Authenticate)
	specialtiesAdmin.Use(middleware.RequireAdmin)
	specialtiesAdmin.HandleFunc("", r.specialtyHandler.CreateSpecialty).Methods(http.MethodPost)
	specialtiesAdmin.HandleFunc("/{id}", r.specialtyHandler.UpdateSpecialty).Methods(http.MethodPut)
	specialtiesAdmin.HandleFunc("/{id}", r.specialtyHandler.DeleteSpecialty).Methods(http.MethodDelete)

	// Bookings (any authenticated user)
	bookings := api.PathPrefix("/reservas").Subrouter()
	bookings.Use(r.authMiddleware.Authenticate)
	bookings.HandleFunc("", r.bookingHandler.CreateBooking).Methods(http.MethodPost)
	bookings.HandleFunc("/dialibre", r.bookingHandler.GetFreeSlots).Methods(http.MethodPost)
	bookings.HandleFunc("", r.bookingHandler.GetAllBookings).Methods(http.MethodGet)
	bookings.HandleFunc("/{id}", r.bookingHandler.GetBooking).Methods(http.MethodGet)
	bookings.HandleFunc("/{id}", r.bookingHandler.UpdateBookingStatus).Methods(http.MethodPut)
	bookings.HandleFunc("/{id}", r.bookingHandler.DeleteBooking).Methods(http.MethodDelete)

	// Consultations (doctor or admin)
	consultations := api.PathPrefix("/consultas").Subrouter()
	consultations.Use(r.authMiddleware.Authenticate)
	consultations.Use(middleware.RequireAdminOrDoctor)
	consultations.HandleFunc("", r.consultationHandler.CreateConsultation).Methods(http.MethodPost)
	consultations.HandleFunc("", r.consultationHandler.GetAllConsultations).Methods(http.MethodGet)
	consultations.HandleFunc("/{id}", r.consultationHandler.GetConsultation).Methods(http.MethodGet)
	consultations.HandleFunc("/{id}", r.consultationHandler.UpdateConsultation).Methods(http.MethodPut)

	// Reports (admin only)
	reports := api.PathPrefix("/reportes").Subrouter()
	reports.Use(r.authMiddleware.Authenticate)
	reports.Use(middleware.RequireAdmin)
	reports.HandleFunc("/reservas", r.reportHandler.GetBookingReport).Methods(http.MethodGet)
	reports.HandleFunc("/reservas/pdf", r.reportHandler.GetAgendaPDF).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
