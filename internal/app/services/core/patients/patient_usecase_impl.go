package patients

import (
	"context"
	"sync"

	"github.com/lakshana011/HealUp/internal/app/contracts"
	"github.com/lakshana011/HealUp/internal/app/models"
	"github.com/lakshana011/HealUp/internal/pkg/constvars"
	"github.com/lakshana011/HealUp/internal/pkg/dto/requests"
	"github.com/lakshana011/HealUp/internal/pkg/dto/responses"
	"github.com/lakshana011/HealUp/internal/pkg/exceptions"
	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientApiClient     contracts.PatientApiClient
	AppointmentApiClient contracts.AppointmentApiClient
	Log                  *zap.Logger
}

var (
	patientUsecaseInstance contracts.PatientUsecase
	oncePatientUsecase     sync.Once
)

func NewPatientUsecase(
	patientApiClient contracts.PatientApiClient,
	appointmentApiClient contracts.AppointmentApiClient,
	logger *zap.Logger,
) contracts.PatientUsecase {
	oncePatientUsecase.Do(func() {
		patientUsecaseInstance = &patientUsecase{
			PatientApiClient:     patientApiClient,
			AppointmentApiClient: appointmentApiClient,
			Log:                  logger,
		}
	})
	return patientUsecaseInstance
}

func (uc *patientUsecase) FindAll(ctx context.Context, session *models.SessionData) ([]models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if !session.IsAdmin() && !session.IsDoctor() {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}
	return uc.PatientApiClient.FindAll(ctx, session.Token)
}

// FindByID returns the patient record, with the patient's booking history
// attached for doctor and admin viewers.
func (uc *patientUsecase) FindByID(ctx context.Context, session *models.SessionData, patientID string) (*responses.PatientDetail, error) {
	if session.IsAnonymous() {
		return nil, exceptions.ErrSessionTokenMissing(nil)
	}

	patient, err := uc.PatientApiClient.FindByID(ctx, session.Token, patientID)
	if err != nil {
		return nil, err
	}

	detail := &responses.PatientDetail{
		Patient:      *patient,
		Appointments: make([]responses.AppointmentView, 0),
	}
	if session.IsAdmin() || session.IsDoctor() {
		appointments, err := uc.AppointmentApiClient.FindByPatientID(ctx, session.Token, patientID)
		if err != nil {
			return nil, err
		}
		for _, appointment := range appointments {
			detail.Appointments = append(detail.Appointments, responses.NewAppointmentView(appointment))
		}
	}
	return detail, nil
}

// Update lets a patient edit their own record; admins may edit anyone.
func (uc *patientUsecase) Update(ctx context.Context, session *models.SessionData, patientID string, request *requests.UpdatePatient) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if !uc.canMutate(session, patientID) {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	patient, err := uc.PatientApiClient.Update(ctx, session.Token, patientID, request)
	if err != nil {
		uc.Log.Error("patientUsecase.Update upstream call failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if patient == nil {
		patient, err = uc.PatientApiClient.FindByID(ctx, session.Token, patientID)
		if err != nil {
			return nil, err
		}
	}
	return patient, nil
}

// Dashboard summarizes the patient's bookings. Upcoming keeps the upstream
// ordering.
func (uc *patientUsecase) Dashboard(ctx context.Context, session *models.SessionData) (*responses.PatientDashboard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.Dashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if !session.IsPatient() {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	appointments, err := uc.AppointmentApiClient.FindMine(ctx, session.Token)
	if err != nil {
		return nil, err
	}

	dashboard := &responses.PatientDashboard{Upcoming: make([]responses.AppointmentView, 0)}
	for _, appointment := range appointments {
		dashboard.Stats.TotalAppointments++
		switch appointment.Status {
		case constvars.AppointmentStatusUpcoming:
			dashboard.Stats.UpcomingAppointments++
			dashboard.Upcoming = append(dashboard.Upcoming, responses.NewAppointmentView(appointment))
		case constvars.AppointmentStatusCompleted:
			dashboard.Stats.CompletedAppointments++
		}
	}
	return dashboard, nil
}

func (uc *patientUsecase) canMutate(session *models.SessionData, patientID string) bool {
	if session.IsAdmin() {
		return true
	}
	return session.IsPatient() && session.PatientProfile != nil && session.PatientProfile.ID == patientID
}
