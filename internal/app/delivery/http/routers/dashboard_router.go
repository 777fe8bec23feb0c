package routers

import (
	"github.com/go-chi/chi/v5"
	"github.com/lakshana011/HealUp/internal/app/delivery/http/controllers"
	"github.com/lakshana011/HealUp/internal/app/delivery/http/middlewares"
	"github.com/lakshana011/HealUp/internal/pkg/constvars"
)

func attachDashboardRoutes(
	router chi.Router,
	mw *middlewares.Middlewares,
	patientController *controllers.PatientController,
	doctorController *controllers.DoctorController,
	adminController *controllers.AdminController,
) {
	router.With(mw.RequireRole(constvars.RolePatient)).Get("/patient", patientController.Dashboard)
	router.With(mw.RequireRole(constvars.RoleDoctor)).Get("/doctor", doctorController.Dashboard)
	router.With(mw.RequireRole(constvars.RoleAdmin)).Get("/admin", adminController.Dashboard)
}
