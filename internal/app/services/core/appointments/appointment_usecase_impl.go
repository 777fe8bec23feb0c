package appointments

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

type appointmentUsecase struct {
	AppointmentApiClient contracts.AppointmentApiClient
	Log                  *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(appointmentApiClient contracts.AppointmentApiClient, logger *zap.Logger) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentApiClient: appointmentApiClient,
			Log:                  logger,
		}
	})
	return appointmentUsecaseInstance
}

// ListMine scopes the listing to the caller: patients see their own bookings,
// doctors their schedule. Status filtering happens after the fetch and keeps
// the upstream ordering.
func (uc *appointmentUsecase) ListMine(ctx context.Context, session *models.SessionData, queryParams *requests.AppointmentQueryParams) (*responses.AppointmentListView, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.ListMine called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if session.IsAnonymous() {
		return nil, exceptions.ErrSessionTokenMissing(nil)
	}

	var (
		appointments []models.Appointment
		err          error
	)
	switch {
	case session.IsDoctor() && session.DoctorProfile != nil:
		appointments, err = uc.AppointmentApiClient.FindByDoctorID(ctx, session.Token, session.DoctorProfile.ID)
	case session.IsAdmin():
		appointments, err = uc.AppointmentApiClient.FindAll(ctx, session.Token)
	default:
		appointments, err = uc.AppointmentApiClient.FindMine(ctx, session.Token)
	}
	if err != nil {
		uc.Log.Error("appointmentUsecase.ListMine upstream call failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return buildListView(appointments, queryParams), nil
}

func (uc *appointmentUsecase) ListAll(ctx context.Context, session *models.SessionData, queryParams *requests.AppointmentQueryParams) (*responses.AppointmentListView, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.ListAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if !session.IsAdmin() {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	appointments, err := uc.AppointmentApiClient.FindAll(ctx, session.Token)
	if err != nil {
		return nil, err
	}
	return buildListView(appointments, queryParams), nil
}

func (uc *appointmentUsecase) FindByID(ctx context.Context, session *models.SessionData, appointmentID string) (*responses.AppointmentView, error) {
	appointment, err := uc.AppointmentApiClient.FindByID(ctx, session.Token, appointmentID)
	if err != nil {
		return nil, err
	}
	view := responses.NewAppointmentView(*appointment)
	return &view, nil
}

func (uc *appointmentUsecase) Cancel(ctx context.Context, session *models.SessionData, appointmentID string) error {
	return uc.transition(ctx, session, appointmentID, uc.AppointmentApiClient.Cancel)
}

func (uc *appointmentUsecase) Complete(ctx context.Context, session *models.SessionData, appointmentID string) error {
	return uc.transition(ctx, session, appointmentID, uc.AppointmentApiClient.Complete)
}

// transition re-reads the appointment before mutating so a terminal one is
// rejected here instead of round-tripping a doomed request.
func (uc *appointmentUsecase) transition(
	ctx context.Context,
	session *models.SessionData,
	appointmentID string,
	action func(ctx context.Context, token, appointmentID string) error,
) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	appointment, err := uc.AppointmentApiClient.FindByID(ctx, session.Token, appointmentID)
	if err != nil {
		return err
	}
	if appointment.IsTerminal() {
		uc.Log.Warn("appointmentUsecase.transition blocked on terminal status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("appointment_id", appointmentID),
			zap.String("status", appointment.Status),
		)
		return exceptions.ErrAppointmentTerminalState(nil)
	}
	return action(ctx, session.Token, appointmentID)
}

func buildListView(appointments []models.Appointment, queryParams *requests.AppointmentQueryParams) *responses.AppointmentListView {
	status := ""
	if queryParams != nil {
		status = queryParams.Status
	}

	views := make([]responses.AppointmentView, 0, len(appointments))
	for _, appointment := range appointments {
		if status != "" && appointment.Status != status {
			continue
		}
		views = append(views, responses.NewAppointmentView(appointment))
	}
	return &responses.AppointmentListView{
		Appointments: views,
		Total:        len(views),
		StatusFilter: status,
	}
}
