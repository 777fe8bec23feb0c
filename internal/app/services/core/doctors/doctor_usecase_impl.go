package doctors

import (
	"context"
	"sync"
	"time"

	"github.com/lakshana011/HealUp/internal/app/contracts"
	"github.com/lakshana011/HealUp/internal/app/models"
	"github.com/lakshana011/HealUp/internal/pkg/constvars"
	"github.com/lakshana011/HealUp/internal/pkg/dto/requests"
	"github.com/lakshana011/HealUp/internal/pkg/dto/responses"
	"github.com/lakshana011/HealUp/internal/pkg/exceptions"
	"github.com/lakshana011/HealUp/internal/pkg/utils"
	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorApiClient      contracts.DoctorApiClient
	AppointmentApiClient contracts.AppointmentApiClient
	Log                  *zap.Logger
	now                  func() time.Time
}

var (
	doctorUsecaseInstance contracts.DoctorUsecase
	onceDoctorUsecase     sync.Once
)

func NewDoctorUsecase(
	doctorApiClient contracts.DoctorApiClient,
	appointmentApiClient contracts.AppointmentApiClient,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	onceDoctorUsecase.Do(func() {
		doctorUsecaseInstance = &doctorUsecase{
			DoctorApiClient:      doctorApiClient,
			AppointmentApiClient: appointmentApiClient,
			Log:                  logger,
			now:                  time.Now,
		}
	})
	return doctorUsecaseInstance
}

func (uc *doctorUsecase) Search(ctx context.Context, queryParams *requests.DoctorQueryParams) (*responses.DoctorListView, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.Search called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, queryParams),
	)

	doctors, err := uc.DoctorApiClient.FindAll(ctx, queryParams)
	if err != nil {
		uc.Log.Error("doctorUsecase.Search upstream call failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	views := make([]responses.DoctorView, 0, len(doctors))
	for _, doctor := range doctors {
		views = append(views, responses.NewDoctorView(doctor))
	}
	return &responses.DoctorListView{Doctors: views, Total: len(views)}, nil
}

func (uc *doctorUsecase) FindByID(ctx context.Context, doctorID string) (*responses.DoctorView, error) {
	doctor, err := uc.DoctorApiClient.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	view := responses.NewDoctorView(*doctor)
	return &view, nil
}

// Slots returns the bookable labels for one date as a picker with nothing
// selected. Each call replaces whatever list the caller held before.
func (uc *doctorUsecase) Slots(ctx context.Context, doctorID, date string) (*responses.SlotPickerView, error) {
	if _, err := utils.ParseCalendarDate(date); err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	slots, err := uc.DoctorApiClient.FindSlots(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}

	picker := &responses.SlotPickerView{Slots: make([]responses.SlotOption, 0, len(slots))}
	for _, slot := range slots {
		picker.Slots = append(picker.Slots, responses.SlotOption{Label: slot})
	}
	if len(picker.Slots) == 0 {
		picker.Empty = true
		picker.EmptyMessage = constvars.NoSlotsAvailableMessage
	}
	return picker, nil
}

func (uc *doctorUsecase) SelfProfile(ctx context.Context, session *models.SessionData) (*responses.DoctorView, error) {
	if !session.IsDoctor() {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}
	doctor, err := uc.DoctorApiClient.FindSelf(ctx, session.Token)
	if err != nil {
		return nil, err
	}
	view := responses.NewDoctorView(*doctor)
	return &view, nil
}

func (uc *doctorUsecase) UpdateSelfProfile(ctx context.Context, session *models.SessionData, request *requests.UpdateDoctorProfile) (*responses.DoctorView, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.UpdateSelfProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if !session.IsDoctor() {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	doctor, err := uc.DoctorApiClient.UpdateSelf(ctx, session.Token, request)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		doctor, err = uc.DoctorApiClient.FindSelf(ctx, session.Token)
		if err != nil {
			return nil, err
		}
	}
	view := responses.NewDoctorView(*doctor)
	return &view, nil
}

func (uc *doctorUsecase) ReplaceAvailability(ctx context.Context, session *models.SessionData, request *requests.ReplaceAvailability) error {
	if !session.IsDoctor() || session.DoctorProfile == nil {
		return exceptions.ErrRoleNotAllowed(nil)
	}
	return uc.DoctorApiClient.ReplaceAvailability(ctx, session.Token, session.DoctorProfile.ID, request)
}

// Dashboard summarizes the doctor's schedule. Today's list keeps the upstream
// ordering.
func (uc *doctorUsecase) Dashboard(ctx context.Context, session *models.SessionData) (*responses.DoctorDashboard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.Dashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if !session.IsDoctor() || session.DoctorProfile == nil {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	appointments, err := uc.AppointmentApiClient.FindByDoctorID(ctx, session.Token, session.DoctorProfile.ID)
	if err != nil {
		return nil, err
	}

	today := utils.FormatCalendarDate(uc.now())
	dashboard := &responses.DoctorDashboard{Today: make([]responses.AppointmentView, 0)}
	for _, appointment := range appointments {
		dashboard.Stats.TotalAppointments++
		switch appointment.Status {
		case constvars.AppointmentStatusCompleted:
			dashboard.Stats.CompletedAppointments++
		case constvars.AppointmentStatusUpcoming:
			dashboard.Stats.PendingAppointments++
		}
		if appointment.Date == today {
			dashboard.Stats.TodayAppointments++
			dashboard.Today = append(dashboard.Today, responses.NewAppointmentView(appointment))
		}
	}
	return dashboard, nil
}
