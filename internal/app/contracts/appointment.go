package contracts

import (
	"context"

	"github.com/lakshana011/HealUp/internal/app/models"
	"github.com/lakshana011/HealUp/internal/pkg/dto/requests"
	"github.com/lakshana011/HealUp/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	ListMine(ctx context.Context, session *models.SessionData, queryParams *requests.AppointmentQueryParams) (*responses.AppointmentListView, error)
	ListAll(ctx context.Context, session *models.SessionData, queryParams *requests.AppointmentQueryParams) (*responses.AppointmentListView, error)
	FindByID(ctx context.Context, session *models.SessionData, appointmentID string) (*responses.AppointmentView, error)
	Cancel(ctx context.Context, session *models.SessionData, appointmentID string) error
	Complete(ctx context.Context, session *models.SessionData, appointmentID string) error
}

// AppointmentApiClient talks to the upstream /appointments endpoints.
type AppointmentApiClient interface {
	FindAll(ctx context.Context, token string) ([]models.Appointment, error)
	FindByID(ctx context.Context, token, appointmentID string) (*models.Appointment, error)
	FindMine(ctx context.Context, token string) ([]models.Appointment, error)
	FindByPatientID(ctx context.Context, token, patientID string) ([]models.Appointment, error)
	FindByDoctorID(ctx context.Context, token, doctorID string) ([]models.Appointment, error)
	Create(ctx context.Context, token string, request *requests.CreateAppointment) (*responses.UpstreamBooking, error)
	Cancel(ctx context.Context, token, appointmentID string) error
	Complete(ctx context.Context, token, appointmentID string) error
}
