package routers

import (
	"github.com/go-chi/chi/v5"
	"github.com/lakshana011/HealUp/internal/app/delivery/http/controllers"
	"github.com/lakshana011/HealUp/internal/app/delivery/http/middlewares"
)

func attachPatientRoutes(router chi.Router, mw *middlewares.Middlewares, patientController *controllers.PatientController) {
	router.Use(mw.RequireAuthenticated)

	router.Get("/", patientController.FindAll)
	router.Get("/{patientID}", patientController.FindByID)
	router.Put("/{patientID}", patientController.Update)
}
