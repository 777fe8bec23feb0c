package contracts

import (
	"context"

	"github.com/lakshana011/HealUp/internal/app/models"
	"github.com/lakshana011/HealUp/internal/pkg/dto/requests"
	"github.com/lakshana011/HealUp/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	Search(ctx context.Context, queryParams *requests.DoctorQueryParams) (*responses.DoctorListView, error)
	FindByID(ctx context.Context, doctorID string) (*responses.DoctorView, error)
	Slots(ctx context.Context, doctorID, date string) (*responses.SlotPickerView, error)
	SelfProfile(ctx context.Context, session *models.SessionData) (*responses.DoctorView, error)
	UpdateSelfProfile(ctx context.Context, session *models.SessionData, request *requests.UpdateDoctorProfile) (*responses.DoctorView, error)
	ReplaceAvailability(ctx context.Context, session *models.SessionData, request *requests.ReplaceAvailability) error
	Dashboard(ctx context.Context, session *models.SessionData) (*responses.DoctorDashboard, error)
}

// DoctorApiClient talks to the upstream /doctors endpoints.
type DoctorApiClient interface {
	FindAll(ctx context.Context, queryParams *requests.DoctorQueryParams) ([]models.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindSlots(ctx context.Context, doctorID, date string) ([]string, error)
	ReplaceAvailability(ctx context.Context, token, doctorID string, request *requests.ReplaceAvailability) error
	FindSelf(ctx context.Context, token string) (*models.Doctor, error)
	UpdateSelf(ctx context.Context, token string, request *requests.UpdateDoctorProfile) (*models.Doctor, error)
}
