package routers

import (
	"github.com/go-chi/chi/v5"
	"github.com/lakshana011/HealUp/internal/app/delivery/http/controllers"
	"github.com/lakshana011/HealUp/internal/app/delivery/http/middlewares"
	"github.com/lakshana011/HealUp/internal/pkg/constvars"
)

// Browsing a doctor's profile and the booking summary are open; everything
// from submission onward requires the patient role.
func attachBookingRoutes(router chi.Router, mw *middlewares.Middlewares, bookingController *controllers.BookingController) {
	router.Get("/doctors/{doctorID}/profile", bookingController.ProfileStep)
	router.Get("/book/{doctorID}", bookingController.Summary)

	router.With(mw.RequireRole(constvars.RolePatient)).Post("/book/{doctorID}", bookingController.Submit)
	router.With(mw.RequireRole(constvars.RolePatient)).Get("/payment/{appointmentID}", bookingController.PaymentStep)
	router.With(mw.RequireRole(constvars.RolePatient)).Post("/payment/{appointmentID}", bookingController.Pay)
	router.With(mw.RequireRole(constvars.RolePatient)).Get("/confirmation/{appointmentID}", bookingController.Confirmation)
}
