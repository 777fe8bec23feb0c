package routers

import (
	"github.com/go-chi/chi/v5"
	"github.com/lakshana011/HealUp/internal/app/delivery/http/controllers"
	"github.com/lakshana011/HealUp/internal/app/delivery/http/middlewares"
	"github.com/lakshana011/HealUp/internal/pkg/constvars"
)

func attachAppointmentRoutes(router chi.Router, mw *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Use(mw.RequireAuthenticated)

	router.With(mw.RequireRole(constvars.RoleAdmin)).Get("/", appointmentController.ListAll)
	router.Get("/me", appointmentController.ListMine)
	router.Get("/{appointmentID}", appointmentController.FindByID)
	router.Put("/{appointmentID}/cancel", appointmentController.Cancel)
	router.Put("/{appointmentID}/complete", appointmentController.Complete)
}
