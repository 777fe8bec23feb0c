package doctors

import (
	"context"
	"testing"
	"time"

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

type MockDoctorApiClient struct {
	mock.Mock
}

func (m *MockDoctorApiClient) FindAll(ctx context.Context, queryParams *requests.DoctorQueryParams) ([]models.Doctor, error) {
	args := m.Called(ctx, queryParams)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorApiClient) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorApiClient) FindSlots(ctx context.Context, doctorID, date string) ([]string, error) {
	args := m.Called(ctx, doctorID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockDoctorApiClient) ReplaceAvailability(ctx context.Context, token, doctorID string, request *requests.ReplaceAvailability) error {
	args := m.Called(ctx, token, doctorID, request)
	return args.Error(0)
}

func (m *MockDoctorApiClient) FindSelf(ctx context.Context, token string) (*models.Doctor, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorApiClient) UpdateSelf(ctx context.Context, token string, request *requests.UpdateDoctorProfile) (*models.Doctor, error) {
	args := m.Called(ctx, token, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
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

func newTestDoctorUsecase(doctorApi *MockDoctorApiClient, appointmentApi *MockAppointmentApiClient) *doctorUsecase {
	return &doctorUsecase{
		DoctorApiClient:      doctorApi,
		AppointmentApiClient: appointmentApi,
		Log:                  zap.NewNop(),
		now:                  func() time.Time { return time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC) },
	}
}

func doctorSession() *models.SessionData {
	return &models.SessionData{
		Token:         "doctor-token",
		Authenticated: true,
		User:          &models.User{ID: "U2", Role: constvars.RoleDoctor},
		DoctorProfile: &models.Doctor{ID: "D1", Name: "Dr. Sarah Johnson"},
	}
}

func TestDoctorUsecase_Search(t *testing.T) {
	mockDoctorApi := new(MockDoctorApiClient)
	uc := newTestDoctorUsecase(mockDoctorApi, new(MockAppointmentApiClient))

	mockDoctorApi.On("FindAll", mock.Anything, mock.Anything).Return([]models.Doctor{
		{ID: "D1", Rating: 4.8},
		{ID: "D2", Rating: 3.2},
	}, nil)

	view, err := uc.Search(context.Background(), &requests.DoctorQueryParams{Specialty: "Cardiologist"})
	require.NoError(t, err)

	assert.Equal(t, 2, view.Total)
	assert.Equal(t, 4, view.Doctors[0].Stars)
	assert.Equal(t, 3, view.Doctors[1].Stars)
}

func TestDoctorUsecase_Slots(t *testing.T) {
	t.Run("Malformed Date Rejected Before Upstream Call", func(t *testing.T) {
		mockDoctorApi := new(MockDoctorApiClient)
		uc := newTestDoctorUsecase(mockDoctorApi, new(MockAppointmentApiClient))

		_, err := uc.Slots(context.Background(), "D1", "next tuesday")
		require.Error(t, err)
		mockDoctorApi.AssertNotCalled(t, "FindSlots", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Empty Day Gets Placeholder", func(t *testing.T) {
		mockDoctorApi := new(MockDoctorApiClient)
		uc := newTestDoctorUsecase(mockDoctorApi, new(MockAppointmentApiClient))

		mockDoctorApi.On("FindSlots", mock.Anything, "D1", "2025-03-10").Return([]string{}, nil)

		picker, err := uc.Slots(context.Background(), "D1", "2025-03-10")
		require.NoError(t, err)
		assert.True(t, picker.Empty)
		assert.Equal(t, constvars.NoSlotsAvailableMessage, picker.EmptyMessage)
	})
}

func TestDoctorUsecase_SelfProfile(t *testing.T) {
	t.Run("Patient Role Rejected", func(t *testing.T) {
		uc := newTestDoctorUsecase(new(MockDoctorApiClient), new(MockAppointmentApiClient))

		patient := &models.SessionData{
			Authenticated: true,
			User:          &models.User{ID: "U1", Role: constvars.RolePatient},
		}
		_, err := uc.SelfProfile(context.Background(), patient)
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("Doctor Gets Own Record", func(t *testing.T) {
		mockDoctorApi := new(MockDoctorApiClient)
		uc := newTestDoctorUsecase(mockDoctorApi, new(MockAppointmentApiClient))

		mockDoctorApi.On("FindSelf", mock.Anything, "doctor-token").
			Return(&models.Doctor{ID: "D1", Name: "Dr. Sarah Johnson"}, nil)

		view, err := uc.SelfProfile(context.Background(), doctorSession())
		require.NoError(t, err)
		assert.Equal(t, "D1", view.ID)
	})
}

func TestDoctorUsecase_ReplaceAvailability(t *testing.T) {
	mockDoctorApi := new(MockDoctorApiClient)
	uc := newTestDoctorUsecase(mockDoctorApi, new(MockAppointmentApiClient))

	request := &requests.ReplaceAvailability{Slots: []string{"09:00", "10:00"}}
	mockDoctorApi.On("ReplaceAvailability", mock.Anything, "doctor-token", "D1", request).Return(nil)

	require.NoError(t, uc.ReplaceAvailability(context.Background(), doctorSession(), request))
	mockDoctorApi.AssertExpectations(t)
}

func TestDoctorUsecase_Dashboard(t *testing.T) {
	mockAppointmentApi := new(MockAppointmentApiClient)
	uc := newTestDoctorUsecase(new(MockDoctorApiClient), mockAppointmentApi)

	// now is pinned to 2025-03-10 in newTestDoctorUsecase.
	mockAppointmentApi.On("FindByDoctorID", mock.Anything, "doctor-token", "D1").Return([]models.Appointment{
		{ID: "A1", Date: "2025-03-10", Status: constvars.AppointmentStatusUpcoming},
		{ID: "A2", Date: "2025-03-10", Status: constvars.AppointmentStatusCompleted},
		{ID: "A3", Date: "2025-03-12", Status: constvars.AppointmentStatusUpcoming},
		{ID: "A4", Date: "2025-02-01", Status: constvars.AppointmentStatusCancelled},
	}, nil)

	dashboard, err := uc.Dashboard(context.Background(), doctorSession())
	require.NoError(t, err)

	assert.Equal(t, 4, dashboard.Stats.TotalAppointments)
	assert.Equal(t, 2, dashboard.Stats.TodayAppointments)
	assert.Equal(t, 1, dashboard.Stats.CompletedAppointments)
	assert.Equal(t, 2, dashboard.Stats.PendingAppointments)

	require.Len(t, dashboard.Today, 2)
	assert.Equal(t, "A1", dashboard.Today[0].ID)
	assert.Equal(t, "A2", dashboard.Today[1].ID)
}
