package patients

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/lakshana011/HealUp/internal/app/contracts"
	"github.com/lakshana011/HealUp/internal/app/models"
	"github.com/lakshana011/HealUp/internal/app/services/healupapi"
	"github.com/lakshana011/HealUp/internal/pkg/constvars"
	"github.com/lakshana011/HealUp/internal/pkg/dto/requests"
	"github.com/lakshana011/HealUp/internal/pkg/dto/responses"
	"github.com/lakshana011/HealUp/internal/pkg/exceptions"
)

const resourceName = "patient"

type patientApiClient struct {
	restClient *healupapi.RestClient
}

func NewPatientApiClient(restClient *healupapi.RestClient) contracts.PatientApiClient {
	return &patientApiClient{restClient: restClient}
}

func (c *patientApiClient) FindAll(ctx context.Context, token string) ([]models.Patient, error) {
	patients := make([]models.Patient, 0)
	if err := c.restClient.Get(ctx, "/patients", token, resourceName, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

func (c *patientApiClient) FindByID(ctx context.Context, token, patientID string) (*models.Patient, error) {
	patient := new(models.Patient)
	err := c.restClient.Get(ctx, fmt.Sprintf("/patients/%s", url.PathEscape(patientID)), token, resourceName, patient)
	if err != nil {
		return nil, asPatientNotFound(err)
	}
	return patient, nil
}

func (c *patientApiClient) Update(ctx context.Context, token, patientID string, request *requests.UpdatePatient) (*models.Patient, error) {
	result := new(responses.UpstreamPatientUpdate)
	path := fmt.Sprintf("/patients/%s", url.PathEscape(patientID))
	if err := c.restClient.Put(ctx, path, token, resourceName, request, result); err != nil {
		return nil, asPatientNotFound(err)
	}
	return result.Patient, nil
}

func asPatientNotFound(err error) error {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusNotFound {
		return exceptions.ErrPatientNotFound(err)
	}
	return err
}
