package booking

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/lakshana011/HealUp/internal/app/config"
	"github.com/lakshana011/HealUp/internal/app/contracts"
	"github.com/lakshana011/HealUp/internal/app/models"
	"github.com/lakshana011/HealUp/internal/app/services/core/calendar"
	"github.com/lakshana011/HealUp/internal/pkg/constvars"
	"github.com/lakshana011/HealUp/internal/pkg/dto/requests"
	"github.com/lakshana011/HealUp/internal/pkg/dto/responses"
	"github.com/lakshana011/HealUp/internal/pkg/exceptions"
	"go.uber.org/zap"
)

type bookingUsecase struct {
	DoctorApiClient      contracts.DoctorApiClient
	AppointmentApiClient contracts.AppointmentApiClient
	PaymentGateway       contracts.PaymentGatewayService
	InternalConfig       *config.InternalConfig
	Log                  *zap.Logger
	now                  func() time.Time
}

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
)

func NewBookingUsecase(
	doctorApiClient contracts.DoctorApiClient,
	appointmentApiClient contracts.AppointmentApiClient,
	paymentGateway contracts.PaymentGatewayService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BookingUsecase {
	onceBookingUsecase.Do(func() {
		bookingUsecaseInstance = &bookingUsecase{
			DoctorApiClient:      doctorApiClient,
			AppointmentApiClient: appointmentApiClient,
			PaymentGateway:       paymentGateway,
			InternalConfig:       internalConfig,
			Log:                  logger,
			now:                  time.Now,
		}
	})
	return bookingUsecaseInstance
}

// ProfileStep assembles the slot-selection view. The slot list is fetched
// fresh on every request and replaces whatever the client held; a past or
// malformed selected date behaves as if nothing were selected.
func (uc *bookingUsecase) ProfileStep(ctx context.Context, input *contracts.BookingProfileInput) (*responses.DoctorProfileView, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.ProfileStep called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("doctor_id", input.DoctorID),
	)

	doctor, err := uc.DoctorApiClient.FindByID(ctx, input.DoctorID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	selectedDate := calendar.NormalizeSelectedDate(input.SelectedDate, now)
	month, err := calendar.ResolveMonth(input.Month, selectedDate, now)
	if err != nil {
		return nil, err
	}

	view := &responses.DoctorProfileView{
		Doctor:   responses.NewDoctorView(*doctor),
		Calendar: calendar.BuildMonthView(month, selectedDate, now),
	}
	if selectedDate == "" {
		return view, nil
	}

	slots, err := uc.DoctorApiClient.FindSlots(ctx, input.DoctorID, selectedDate)
	if err != nil {
		return nil, err
	}

	picker := &responses.SlotPickerView{Slots: make([]responses.SlotOption, 0, len(slots))}
	selectedSlot := ""
	for _, slot := range slots {
		selected := slot == input.SelectedSlot
		if selected {
			selectedSlot = slot
		}
		picker.Slots = append(picker.Slots, responses.SlotOption{Label: slot, Selected: selected})
	}
	if len(picker.Slots) == 0 {
		picker.Empty = true
		picker.EmptyMessage = constvars.NoSlotsAvailableMessage
	}

	view.SelectedDate = selectedDate
	view.SelectedSlot = selectedSlot
	view.SlotPicker = picker
	if selectedSlot != "" {
		view.ContinueURL = fmt.Sprintf("/patient/book/%s?%s=%s&%s=%s",
			url.PathEscape(input.DoctorID),
			constvars.QueryParamDate, url.QueryEscape(selectedDate),
			constvars.QueryParamTime, url.QueryEscape(selectedSlot),
		)
	}
	return view, nil
}

// Summary renders the booking step even when date or slot are missing; only
// submission enforces presence.
func (uc *bookingUsecase) Summary(ctx context.Context, doctorID, date, slot string) (*responses.BookingSummaryView, error) {
	doctor, err := uc.DoctorApiClient.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return &responses.BookingSummaryView{
		Doctor: responses.NewDoctorView(*doctor),
		Date:   date,
		Time:   slot,
		Types:  []string{constvars.AppointmentTypeInPerson, constvars.AppointmentTypeVideo},
	}, nil
}

func (uc *bookingUsecase) Submit(ctx context.Context, session *models.SessionData, doctorID string, request *requests.BookAppointment) (*responses.BookingResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("doctor_id", doctorID),
	)

	patientID := ""
	if session.IsPatient() && session.PatientProfile != nil {
		patientID = session.PatientProfile.ID
	}
	if patientID == "" || doctorID == "" || request.Date == "" || request.Time == "" {
		return nil, exceptions.ErrBookingFieldsMissing(nil)
	}
	if err := calendar.ValidateBookingDate(request.Date, uc.now()); err != nil {
		return nil, err
	}

	appointmentType := request.Type
	if appointmentType == "" {
		appointmentType = constvars.AppointmentTypeInPerson
	}

	result, err := uc.AppointmentApiClient.Create(ctx, session.Token, &requests.CreateAppointment{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      request.Date,
		Time:      request.Time,
		Type:      appointmentType,
		Notes:     request.Notes,
	})
	if err != nil {
		uc.Log.Error("bookingUsecase.Submit upstream call failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !result.Success || result.Appointment == nil {
		return nil, exceptions.ErrUpstreamRejected(constvars.StatusBadGateway, result.Message, "appointment")
	}

	return &responses.BookingResult{
		Appointment: result.Appointment,
		PaymentURL:  fmt.Sprintf("/patient/payment/%s", url.PathEscape(result.Appointment.ID)),
	}, nil
}

// PaymentStep re-fetches everything from the appointment id, so a reload or a
// direct link lands on a fully populated page instead of a dead end.
func (uc *bookingUsecase) PaymentStep(ctx context.Context, session *models.SessionData, appointmentID string) (*responses.PaymentView, error) {
	appointment, doctor, err := uc.loadAppointmentContext(ctx, session, appointmentID)
	if err != nil {
		return nil, err
	}

	serviceFee := uc.InternalConfig.Payment.ServiceFee
	return &responses.PaymentView{
		Appointment:     appointment,
		Doctor:          responses.NewDoctorView(*doctor),
		ConsultationFee: doctor.ConsultationFee,
		ServiceFee:      serviceFee,
		Total:           doctor.ConsultationFee + serviceFee,
		Methods:         []string{constvars.PaymentMethodCard, constvars.PaymentMethodPayPal},
	}, nil
}

func (uc *bookingUsecase) Pay(ctx context.Context, session *models.SessionData, appointmentID string, request *requests.SubmitPayment) (*responses.PaymentResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.Pay called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("appointment_id", appointmentID),
	)

	appointment, doctor, err := uc.loadAppointmentContext(ctx, session, appointmentID)
	if err != nil {
		return nil, err
	}
	if request.Method == constvars.PaymentMethodCard && !request.HasCompleteCardDetails() {
		return nil, exceptions.ErrCardDetailsMissing(nil)
	}

	total := doctor.ConsultationFee + uc.InternalConfig.Payment.ServiceFee
	transactionID, err := uc.PaymentGateway.Authorize(ctx, total, request.Method)
	if err != nil {
		uc.Log.Error("bookingUsecase.Pay authorization failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPaymentAuthorize(err)
	}

	return &responses.PaymentResult{
		TransactionID:   transactionID,
		ConfirmationURL: fmt.Sprintf("/patient/confirmation/%s", url.PathEscape(appointment.ID)),
	}, nil
}

func (uc *bookingUsecase) Confirmation(ctx context.Context, session *models.SessionData, appointmentID string) (*responses.ConfirmationView, error) {
	appointment, doctor, err := uc.loadAppointmentContext(ctx, session, appointmentID)
	if err != nil {
		return nil, err
	}
	return &responses.ConfirmationView{
		Appointment: appointment,
		Doctor:      responses.NewDoctorView(*doctor),
	}, nil
}

func (uc *bookingUsecase) loadAppointmentContext(ctx context.Context, session *models.SessionData, appointmentID string) (*models.Appointment, *models.Doctor, error) {
	appointment, err := uc.AppointmentApiClient.FindByID(ctx, session.Token, appointmentID)
	if err != nil {
		return nil, nil, err
	}
	doctor, err := uc.DoctorApiClient.FindByID(ctx, appointment.DoctorID)
	if err != nil {
		return nil, nil, err
	}
	return appointment, doctor, nil
}
