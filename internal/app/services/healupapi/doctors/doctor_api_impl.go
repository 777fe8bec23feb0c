package doctors

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

const resourceName = "doctor"

type doctorApiClient struct {
	restClient *healupapi.RestClient
}

func NewDoctorApiClient(restClient *healupapi.RestClient) contracts.DoctorApiClient {
	return &doctorApiClient{restClient: restClient}
}

func (c *doctorApiClient) FindAll(ctx context.Context, queryParams *requests.DoctorQueryParams) ([]models.Doctor, error) {
	path := "/doctors"
	if queryParams != nil {
		query := url.Values{}
		if queryParams.Specialty != "" {
			query.Set(constvars.QueryParamSpecialty, queryParams.Specialty)
		}
		if queryParams.Search != "" {
			query.Set(constvars.QueryParamSearch, queryParams.Search)
		}
		if encoded := query.Encode(); encoded != "" {
			path += "?" + encoded
		}
	}

	doctors := make([]models.Doctor, 0)
	if err := c.restClient.Get(ctx, path, "", resourceName, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (c *doctorApiClient) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	doctor := new(models.Doctor)
	err := c.restClient.Get(ctx, fmt.Sprintf("/doctors/%s", url.PathEscape(doctorID)), "", resourceName, doctor)
	if err != nil {
		return nil, asDoctorNotFound(err)
	}
	return doctor, nil
}

// FindSlots returns the bookable labels for one doctor on one date. The
// upstream response is a bare string array; an empty day decodes to an empty
// slice, never nil.
func (c *doctorApiClient) FindSlots(ctx context.Context, doctorID, date string) ([]string, error) {
	query := url.Values{}
	query.Set(constvars.QueryParamDate, date)

	slots := make([]string, 0)
	path := fmt.Sprintf("/doctors/%s/slots?%s", url.PathEscape(doctorID), query.Encode())
	if err := c.restClient.Get(ctx, path, "", resourceName, &slots); err != nil {
		return nil, asDoctorNotFound(err)
	}
	return slots, nil
}

func (c *doctorApiClient) ReplaceAvailability(ctx context.Context, token, doctorID string, request *requests.ReplaceAvailability) error {
	result := new(responses.UpstreamStatus)
	path := fmt.Sprintf("/doctors/%s/availability", url.PathEscape(doctorID))
	if err := c.restClient.Put(ctx, path, token, resourceName, request, result); err != nil {
		return asDoctorNotFound(err)
	}
	return nil
}

func (c *doctorApiClient) FindSelf(ctx context.Context, token string) (*models.Doctor, error) {
	doctor := new(models.Doctor)
	if err := c.restClient.Get(ctx, "/doctors/me", token, resourceName, doctor); err != nil {
		return nil, asDoctorNotFound(err)
	}
	return doctor, nil
}

func (c *doctorApiClient) UpdateSelf(ctx context.Context, token string, request *requests.UpdateDoctorProfile) (*models.Doctor, error) {
	result := new(responses.UpstreamDoctorUpdate)
	if err := c.restClient.Put(ctx, "/doctors/me", token, resourceName, request, result); err != nil {
		return nil, asDoctorNotFound(err)
	}
	return result.Doctor, nil
}

func asDoctorNotFound(err error) error {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusNotFound {
		return exceptions.ErrDoctorNotFound(err)
	}
	return err
}
