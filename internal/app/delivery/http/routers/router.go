package routers

import (
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/lakshana011/HealUp/internal/app/config"
	"github.com/lakshana011/HealUp/internal/app/delivery/http/controllers"
	"github.com/lakshana011/HealUp/internal/app/delivery/http/middlewares"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	mw *middlewares.Middlewares,
	searchLimiter *middlewares.RateLimiter,
	authController *controllers.AuthController,
	doctorController *controllers.DoctorController,
	patientController *controllers.PatientController,
	appointmentController *controllers.AppointmentController,
	bookingController *controllers.BookingController,
	adminController *controllers.AdminController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Use(mw.RequestIDMiddleware)
	router.Use(mw.Logging)
	router.Use(mw.ErrorHandler)
	router.Use(mw.ResolveSession)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, mw, authController)
		})

		r.Route("/doctors", func(r chi.Router) {
			attachDoctorRoutes(r, mw, searchLimiter, doctorController)
		})

		r.Route("/patients", func(r chi.Router) {
			attachPatientRoutes(r, mw, patientController)
		})

		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, mw, appointmentController)
		})

		r.Route("/patient", func(r chi.Router) {
			attachBookingRoutes(r, mw, bookingController)
		})

		r.Route("/dashboard", func(r chi.Router) {
			attachDashboardRoutes(r, mw, patientController, doctorController, adminController)
		})
	})
}
