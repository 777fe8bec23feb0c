package patients

import (
	"context"
	"testing"

	"github.com/lakshana011/HealUp/internal/app/models"
	"github.com/lakshana011/HealUp/internal/pkg/constvars"
	"github.com/lakshana011/HealUp/internal/pkg/dto/requests"
	"github.com/lakshana011/HealUp/internal/pkg/dto/responses"
	"github.com/lakshana011/HealUp/internal/pkg/exceptions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockPatientApiClient struct {
	mock.Mock
}

func (m *MockPatientApiClient) FindAll(ctx context.Context, token string) ([]models.Patient, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Patient), args.Error(1)
}

func (m *MockPatientApiClient) FindByID(ctx context.Context, token, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, token, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientApiClient) Update(ctx context.Context, token, patientID string, request *requests.UpdatePatient) (*models.Patient, error) {
	args := m.Called(ctx, token, patientID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

type MockAppointmentApiClient struct {
	mock.Mock
}

func (m *MockAppointmentApiClient) FindAll(ctx context.Context, token string) ([]models.Appointment, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentApiClient) FindByID(ctx context.Context, token, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, token, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentApiClient) FindMine(ctx context.Context, token string) ([]models.Appointment, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentApiClient) FindByPatientID(ctx context.Context, token, patientID string) ([]models.Appointment, error) {
	args := m.Called(ctx, token, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentApiClient) FindByDoctorID(ctx context.Context, token, doctorID string) ([]models.Appointment, error) {
	args := m.Called(ctx, token, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentApiClient) Create(ctx context.Context, token string, request *requests.CreateAppointment) (*responses.UpstreamBooking, error) {
	args := m.Called(ctx, token, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.UpstreamBooking), args.Error(1)
}

func (m *MockAppointmentApiClient) Cancel(ctx context.Context, token, appointmentID string) error {
	args := m.Called(ctx, token, appointmentID)
	return args.Error(0)
}

func (m *MockAppointmentApiClient) Complete(ctx context.Context, token, appointmentID string) error {
	args := m.Called(ctx, token, appointmentID)
	return args.Error(0)
}

func newTestPatientUsecase(patientApi *MockPatientApiClient, appointmentApi *MockAppointmentApiClient) *patientUsecase {
	return &patientUsecase{
		PatientApiClient:     patientApi,
		AppointmentApiClient: appointmentApi,
		Log:                  zap.NewNop(),
	}
}

func patientSession() *models.SessionData {
	return &models.SessionData{
		Token:          "patient-token",
		Authenticated:  true,
		User:           &models.User{ID: "U1", Role: constvars.RolePatient},
		PatientProfile: &models.Patient{ID: "P1"},
	}
}

func doctorSession() *models.SessionData {
	return &models.SessionData{
		Token:         "doctor-token",
		Authenticated: true,
		User:          &models.User{ID: "U2", Role: constvars.RoleDoctor},
		DoctorProfile: &models.Doctor{ID: "D1"},
	}
}

func TestPatientUsecase_FindByID(t *testing.T) {
	t.Run("Anonymous Viewer Rejected", func(t *testing.T) {
		mockPatientApi := new(MockPatientApiClient)
		uc := newTestPatientUsecase(mockPatientApi, new(MockAppointmentApiClient))

		_, err := uc.FindByID(context.Background(), models.AnonymousSession(), "P1")
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
		mockPatientApi.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Doctor Viewer Gets Booking History", func(t *testing.T) {
		mockPatientApi := new(MockPatientApiClient)
		mockAppointmentApi := new(MockAppointmentApiClient)
		uc := newTestPatientUsecase(mockPatientApi, mockAppointmentApi)

		mockPatientApi.On("FindByID", mock.Anything, "doctor-token", "P1").
			Return(&models.Patient{ID: "P1", Name: "John Doe"}, nil)
		mockAppointmentApi.On("FindByPatientID", mock.Anything, "doctor-token", "P1").
			Return([]models.Appointment{
				{ID: "A1", Status: constvars.AppointmentStatusUpcoming},
				{ID: "A2", Status: constvars.AppointmentStatusCompleted},
			}, nil)

		detail, err := uc.FindByID(context.Background(), doctorSession(), "P1")
		require.NoError(t, err)

		assert.Equal(t, "P1", detail.Patient.ID)
		require.Len(t, detail.Appointments, 2)
		assert.Equal(t, "A1", detail.Appointments[0].ID)
		assert.True(t, detail.Appointments[0].CanCancel)
		assert.False(t, detail.Appointments[1].CanCancel)
	})

	t.Run("Patient Viewer Gets Record Without History Fetch", func(t *testing.T) {
		mockPatientApi := new(MockPatientApiClient)
		mockAppointmentApi := new(MockAppointmentApiClient)
		uc := newTestPatientUsecase(mockPatientApi, mockAppointmentApi)

		mockPatientApi.On("FindByID", mock.Anything, "patient-token", "P1").
			Return(&models.Patient{ID: "P1"}, nil)

		detail, err := uc.FindByID(context.Background(), patientSession(), "P1")
		require.NoError(t, err)

		assert.Equal(t, "P1", detail.Patient.ID)
		assert.Empty(t, detail.Appointments)
		mockAppointmentApi.AssertNotCalled(t, "FindByPatientID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown Patient Propagates Not Found", func(t *testing.T) {
		mockPatientApi := new(MockPatientApiClient)
		uc := newTestPatientUsecase(mockPatientApi, new(MockAppointmentApiClient))

		mockPatientApi.On("FindByID", mock.Anything, "doctor-token", "P9").
			Return(nil, exceptions.ErrPatientNotFound(nil))

		_, err := uc.FindByID(context.Background(), doctorSession(), "P9")
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestPatientUsecase_Update(t *testing.T) {
	t.Run("Patient Cannot Edit Another Record", func(t *testing.T) {
		mockPatientApi := new(MockPatientApiClient)
		uc := newTestPatientUsecase(mockPatientApi, new(MockAppointmentApiClient))

		_, err := uc.Update(context.Background(), patientSession(), "P2", &requests.UpdatePatient{})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
		mockPatientApi.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Patient Edits Own Record", func(t *testing.T) {
		mockPatientApi := new(MockPatientApiClient)
		uc := newTestPatientUsecase(mockPatientApi, new(MockAppointmentApiClient))

		request := &requests.UpdatePatient{}
		mockPatientApi.On("Update", mock.Anything, "patient-token", "P1", request).
			Return(&models.Patient{ID: "P1", Phone: "555-0100"}, nil)

		patient, err := uc.Update(context.Background(), patientSession(), "P1", request)
		require.NoError(t, err)
		assert.Equal(t, "555-0100", patient.Phone)
	})
}
