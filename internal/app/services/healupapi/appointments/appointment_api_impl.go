package appointments

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

const resourceName = "appointment"

type appointmentApiClient struct {
	restClient *healupapi.RestClient
}

func NewAppointmentApiClient(restClient *healupapi.RestClient) contracts.AppointmentApiClient {
	return &appointmentApiClient{restClient: restClient}
}

func (c *appointmentApiClient) FindAll(ctx context.Context, token string) ([]models.Appointment, error) {
	return c.list(ctx, "/appointments", token)
}

func (c *appointmentApiClient) FindMine(ctx context.Context, token string) ([]models.Appointment, error) {
	return c.list(ctx, "/appointments/me", token)
}

func (c *appointmentApiClient) FindByPatientID(ctx context.Context, token, patientID string) ([]models.Appointment, error) {
	return c.list(ctx, fmt.Sprintf("/appointments/patient/%s", url.PathEscape(patientID)), token)
}

func (c *appointmentApiClient) FindByDoctorID(ctx context.Context, token, doctorID string) ([]models.Appointment, error) {
	return c.list(ctx, fmt.Sprintf("/appointments/doctor/%s", url.PathEscape(doctorID)), token)
}

func (c *appointmentApiClient) FindByID(ctx context.Context, token, appointmentID string) (*models.Appointment, error) {
	appointment := new(models.Appointment)
	path := fmt.Sprintf("/appointments/%s", url.PathEscape(appointmentID))
	if err := c.restClient.Get(ctx, path, token, resourceName, appointment); err != nil {
		return nil, asAppointmentNotFound(err)
	}
	return appointment, nil
}

func (c *appointmentApiClient) Create(ctx context.Context, token string, request *requests.CreateAppointment) (*responses.UpstreamBooking, error) {
	result := new(responses.UpstreamBooking)
	if err := c.restClient.Post(ctx, "/appointments", token, resourceName, request, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *appointmentApiClient) Cancel(ctx context.Context, token, appointmentID string) error {
	return c.transition(ctx, token, appointmentID, "cancel")
}

func (c *appointmentApiClient) Complete(ctx context.Context, token, appointmentID string) error {
	return c.transition(ctx, token, appointmentID, "complete")
}

func (c *appointmentApiClient) list(ctx context.Context, path, token string) ([]models.Appointment, error) {
	appointments := make([]models.Appointment, 0)
	if err := c.restClient.Get(ctx, path, token, resourceName, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (c *appointmentApiClient) transition(ctx context.Context, token, appointmentID, action string) error {
	result := new(responses.UpstreamStatus)
	path := fmt.Sprintf("/appointments/%s/%s", url.PathEscape(appointmentID), action)
	if err := c.restClient.Put(ctx, path, token, resourceName, nil, result); err != nil {
		return asAppointmentNotFound(err)
	}
	return nil
}

func asAppointmentNotFound(err error) error {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusNotFound {
		return exceptions.ErrAppointmentNotFound(err)
	}
	return err
}
