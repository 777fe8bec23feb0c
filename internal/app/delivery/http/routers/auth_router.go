package routers

import (
	"github.com/go-chi/chi/v5"
	"github.com/lakshana011/HealUp/internal/app/delivery/http/controllers"
	"github.com/lakshana011/HealUp/internal/app/delivery/http/middlewares"
)

func attachAuthRoutes(router chi.Router, mw *middlewares.Middlewares, authController *controllers.AuthController) {
	router.With(mw.CredentialRateLimit).Post("/login", authController.Login)
	router.With(mw.CredentialRateLimit).Post("/signup", authController.Signup)
	router.Post("/logout", authController.Logout)
	router.Get("/me", authController.Me)
}
