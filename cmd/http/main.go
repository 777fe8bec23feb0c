package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lakshana011/HealUp/internal/app/config"
	"github.com/lakshana011/HealUp/internal/app/delivery/http/controllers"
	"github.com/lakshana011/HealUp/internal/app/delivery/http/middlewares"
	"github.com/lakshana011/HealUp/internal/app/delivery/http/routers"
	"github.com/lakshana011/HealUp/internal/app/drivers/database"
	"github.com/lakshana011/HealUp/internal/app/drivers/logger"
	"github.com/lakshana011/HealUp/internal/app/services/core/admin"
	"github.com/lakshana011/HealUp/internal/app/services/core/appointments"
	"github.com/lakshana011/HealUp/internal/app/services/core/auth"
	"github.com/lakshana011/HealUp/internal/app/services/core/booking"
	"github.com/lakshana011/HealUp/internal/app/services/core/doctors"
	"github.com/lakshana011/HealUp/internal/app/services/core/patients"
	"github.com/lakshana011/HealUp/internal/app/services/core/session"
	"github.com/lakshana011/HealUp/internal/app/services/healupapi"
	appointmentapi "github.com/lakshana011/HealUp/internal/app/services/healupapi/appointments"
	authapi "github.com/lakshana011/HealUp/internal/app/services/healupapi/auth"
	doctorapi "github.com/lakshana011/HealUp/internal/app/services/healupapi/doctors"
	patientapi "github.com/lakshana011/HealUp/internal/app/services/healupapi/patients"
	"github.com/lakshana011/HealUp/internal/app/services/shared/payment_gateway"
	"github.com/lakshana011/HealUp/internal/app/services/shared/ratelimiter"
	"github.com/lakshana011/HealUp/internal/app/services/shared/redis"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrus.Printf("Error during shutdown: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Remote HealUp API clients
	restClient := healupapi.NewRestClient(
		bootstrap.InternalConfig.HealUpAPI.BaseUrl,
		time.Duration(bootstrap.InternalConfig.HealUpAPI.RequestTimeoutInSeconds)*time.Second,
	)
	authApiClient := authapi.NewAuthApiClient(restClient)
	doctorApiClient := doctorapi.NewDoctorApiClient(restClient)
	patientApiClient := patientapi.NewPatientApiClient(restClient)
	appointmentApiClient := appointmentapi.NewAppointmentApiClient(restClient)

	// Shared services
	credentialLimiter := ratelimiter.NewCredentialLimiter(redisRepository, bootstrap.Logger, bootstrap.InternalConfig)
	paymentGateway := payment_gateway.NewStubGateway()
	searchLimiter := middlewares.NewRateLimiter(
		bootstrap.Logger,
		bootstrap.InternalConfig.Limiter.SearchRequestsPerSecond,
		time.Second,
		time.Duration(bootstrap.InternalConfig.Limiter.SearchBlockTimeInSeconds)*time.Second,
	)

	// Session
	sessionService := session.NewSessionService(authApiClient, redisRepository, bootstrap.Logger, bootstrap.InternalConfig)

	// Middlewares
	mw := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, credentialLimiter, bootstrap.InternalConfig)

	// Auth
	authUsecase := auth.NewAuthUsecase(authApiClient, bootstrap.Logger)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase, sessionService, bootstrap.InternalConfig)

	// Doctors
	doctorUsecase := doctors.NewDoctorUsecase(doctorApiClient, appointmentApiClient, bootstrap.Logger)
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctorUsecase)

	// Patients
	patientUsecase := patients.NewPatientUsecase(patientApiClient, appointmentApiClient, bootstrap.Logger)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientUsecase)

	// Appointments
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentApiClient, bootstrap.Logger)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// Booking workflow
	bookingUsecase := booking.NewBookingUsecase(doctorApiClient, appointmentApiClient, paymentGateway, bootstrap.InternalConfig, bootstrap.Logger)
	bookingController := controllers.NewBookingController(bootstrap.Logger, bookingUsecase)

	// Admin
	adminUsecase := admin.NewAdminUsecase(doctorApiClient, patientApiClient, appointmentApiClient, bootstrap.Logger)
	adminController := controllers.NewAdminController(bootstrap.Logger, adminUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		mw,
		searchLimiter,
		authController,
		doctorController,
		patientController,
		appointmentController,
		bookingController,
		adminController,
	)
}
