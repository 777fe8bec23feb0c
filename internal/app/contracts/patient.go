package contracts

import (
	"context"

	"github.com/lakshana011/HealUp/internal/app/models"
	"github.com/lakshana011/HealUp/internal/pkg/dto/requests"
	"github.com/lakshana011/HealUp/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	FindAll(ctx context.Context, session *models.SessionData) ([]models.Patient, error)
	FindByID(ctx context.Context, session *models.SessionData, patientID string) (*responses.PatientDetail, error)
	Update(ctx context.Context, session *models.SessionData, patientID string, request *requests.UpdatePatient) (*models.Patient, error)
	Dashboard(ctx context.Context, session *models.SessionData) (*responses.PatientDashboard, error)
}

// PatientApiClient talks to the upstream /patients endpoints.
type PatientApiClient interface {
	FindAll(ctx context.Context, token string) ([]models.Patient, error)
	FindByID(ctx context.Context, token, patientID string) (*models.Patient, error)
	Update(ctx context.Context, token, patientID string, request *requests.UpdatePatient) (*models.Patient, error)
}
