package contracts

import (
	"context"

	"github.com/lakshana011/HealUp/internal/app/models"
	"github.com/lakshana011/HealUp/internal/pkg/dto/requests"
	"github.com/lakshana011/HealUp/internal/pkg/dto/responses"
)

// BookingUsecase drives the four-step booking workflow. Steps after
// submission carry only the appointment id and re-fetch their data, so a
// reload can never strand the user mid-flow.
type BookingUsecase interface {
	ProfileStep(ctx context.Context, input *BookingProfileInput) (*responses.DoctorProfileView, error)
	Summary(ctx context.Context, doctorID, date, slot string) (*responses.BookingSummaryView, error)
	Submit(ctx context.Context, session *models.SessionData, doctorID string, request *requests.BookAppointment) (*responses.BookingResult, error)
	PaymentStep(ctx context.Context, session *models.SessionData, appointmentID string) (*responses.PaymentView, error)
	Pay(ctx context.Context, session *models.SessionData, appointmentID string, request *requests.SubmitPayment) (*responses.PaymentResult, error)
	Confirmation(ctx context.Context, session *models.SessionData, appointmentID string) (*responses.ConfirmationView, error)
}

// BookingProfileInput selects what the slot-selection step displays. Month
// falls back to the month of SelectedDate, then to the current month.
type BookingProfileInput struct {
	DoctorID     string
	Month        string
	SelectedDate string
	SelectedSlot string
}
