package routers

import (
	"github.com/go-chi/chi/v5"
	"github.com/lakshana011/HealUp/internal/app/delivery/http/controllers"
	"github.com/lakshana011/HealUp/internal/app/delivery/http/middlewares"
	"github.com/lakshana011/HealUp/internal/pkg/constvars"
)

func attachDoctorRoutes(router chi.Router, mw *middlewares.Middlewares, searchLimiter *middlewares.RateLimiter, doctorController *controllers.DoctorController) {
	router.With(searchLimiter.Limit).Get("/", doctorController.Search)

	router.With(mw.RequireRole(constvars.RoleDoctor)).Get("/me", doctorController.SelfProfile)
	router.With(mw.RequireRole(constvars.RoleDoctor)).Put("/me", doctorController.UpdateSelfProfile)
	router.With(mw.RequireRole(constvars.RoleDoctor)).Put("/me/availability", doctorController.ReplaceAvailability)

	router.Get("/{doctorID}", doctorController.FindByID)
	router.Get("/{doctorID}/slots", doctorController.Slots)
}
