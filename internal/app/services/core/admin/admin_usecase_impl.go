package admin

import (
	"context"
	"sync"

	"github.com/lakshana011/HealUp/internal/app/contracts"
	"github.com/lakshana011/HealUp/internal/app/models"
	"github.com/lakshana011/HealUp/internal/pkg/constvars"
	"github.com/lakshana011/HealUp/internal/pkg/dto/responses"
	"github.com/lakshana011/HealUp/internal/pkg/exceptions"
	"go.uber.org/zap"
)

type adminUsecase struct {
	DoctorApiClient      contracts.DoctorApiClient
	PatientApiClient     contracts.PatientApiClient
	AppointmentApiClient contracts.AppointmentApiClient
	Log                  *zap.Logger
}

var (
	adminUsecaseInstance contracts.AdminUsecase
	onceAdminUsecase     sync.Once
)

func NewAdminUsecase(
	doctorApiClient contracts.DoctorApiClient,
	patientApiClient contracts.PatientApiClient,
	appointmentApiClient contracts.AppointmentApiClient,
	logger *zap.Logger,
) contracts.AdminUsecase {
	onceAdminUsecase.Do(func() {
		adminUsecaseInstance = &adminUsecase{
			DoctorApiClient:      doctorApiClient,
			PatientApiClient:     patientApiClient,
			AppointmentApiClient: appointmentApiClient,
			Log:                  logger,
		}
	})
	return adminUsecaseInstance
}

func (uc *adminUsecase) Dashboard(ctx context.Context, session *models.SessionData) (*responses.AdminDashboard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("adminUsecase.Dashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if !session.IsAdmin() {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	doctors, err := uc.DoctorApiClient.FindAll(ctx, nil)
	if err != nil {
		return nil, err
	}
	patients, err := uc.PatientApiClient.FindAll(ctx, session.Token)
	if err != nil {
		return nil, err
	}
	appointments, err := uc.AppointmentApiClient.FindAll(ctx, session.Token)
	if err != nil {
		return nil, err
	}

	dashboard := &responses.AdminDashboard{
		TotalDoctors:      len(doctors),
		TotalPatients:     len(patients),
		TotalAppointments: len(appointments),
	}
	for _, appointment := range appointments {
		switch appointment.Status {
		case constvars.AppointmentStatusUpcoming:
			dashboard.UpcomingCount++
		case constvars.AppointmentStatusCompleted:
			dashboard.CompletedCount++
		case constvars.AppointmentStatusCancelled:
			dashboard.CancelledCount++
		}
	}
	return dashboard, nil
}
