package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/lakshana011/HealUp/internal/app/models"
	"github.com/lakshana011/HealUp/internal/app/services/shared/redis"
	"github.com/lakshana011/HealUp/internal/pkg/constvars"
	"github.com/lakshana011/HealUp/internal/pkg/dto/requests"
	"github.com/lakshana011/HealUp/internal/pkg/dto/responses"
	"github.com/lakshana011/HealUp/internal/pkg/exceptions"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAuthApiClient struct {
	mock.Mock
}

func (m *MockAuthApiClient) Login(ctx context.Context, request *requests.Login) (*responses.UpstreamAuth, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.UpstreamAuth), args.Error(1)
}

func (m *MockAuthApiClient) Signup(ctx context.Context, request *requests.Signup) (*responses.UpstreamAuth, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.UpstreamAuth), args.Error(1)
}

func (m *MockAuthApiClient) CurrentUser(ctx context.Context, token string) (*responses.UpstreamAuth, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.UpstreamAuth), args.Error(1)
}

func newTestSessionService(api *MockAuthApiClient) *sessionService {
	return &sessionService{AuthApiClient: api, Log: zap.NewNop()}
}

func newCachedSessionService(t *testing.T, api *MockAuthApiClient) *sessionService {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return &sessionService{
		AuthApiClient: api,
		Redis:         redis.NewRedisRepository(client),
		Log:           zap.NewNop(),
		CacheTTL:      time.Minute,
	}
}

func TestSessionService_Resolve(t *testing.T) {
	t.Run("Empty Token Is Anonymous Without Upstream Call", func(t *testing.T) {
		mockApi := new(MockAuthApiClient)
		svc := newTestSessionService(mockApi)

		session := svc.Resolve(context.Background(), "")

		assert.True(t, session.IsAnonymous())
		mockApi.AssertNotCalled(t, "CurrentUser", mock.Anything, mock.Anything)
	})

	t.Run("Valid Token Resolves Full Session", func(t *testing.T) {
		mockApi := new(MockAuthApiClient)
		svc := newTestSessionService(mockApi)

		mockApi.On("CurrentUser", mock.Anything, "good-token").Return(&responses.UpstreamAuth{
			Success:        true,
			User:           &models.User{ID: "U1", Role: constvars.RolePatient},
			PatientProfile: &models.Patient{ID: "P1"},
		}, nil)

		session := svc.Resolve(context.Background(), "good-token")

		require.False(t, session.IsAnonymous())
		assert.Equal(t, "good-token", session.Token)
		assert.True(t, session.IsPatient())
		require.NotNil(t, session.PatientProfile)
		assert.Equal(t, "P1", session.PatientProfile.ID)
	})

	t.Run("Rejected Token Degrades To Anonymous", func(t *testing.T) {
		mockApi := new(MockAuthApiClient)
		svc := newTestSessionService(mockApi)

		mockApi.On("CurrentUser", mock.Anything, "stale-token").
			Return(nil, exceptions.ErrUpstreamRejected(constvars.StatusUnauthorized, "Invalid token", "auth"))

		session := svc.Resolve(context.Background(), "stale-token")

		assert.True(t, session.IsAnonymous())
	})

	t.Run("Success Without User Degrades To Anonymous", func(t *testing.T) {
		mockApi := new(MockAuthApiClient)
		svc := newTestSessionService(mockApi)

		mockApi.On("CurrentUser", mock.Anything, "odd-token").
			Return(&responses.UpstreamAuth{Success: true}, nil)

		session := svc.Resolve(context.Background(), "odd-token")

		assert.True(t, session.IsAnonymous())
	})
}

func TestSessionService_Cache(t *testing.T) {
	upstreamSession := &responses.UpstreamAuth{
		Success:        true,
		User:           &models.User{ID: "U1", Role: constvars.RolePatient},
		PatientProfile: &models.Patient{ID: "P1"},
	}

	t.Run("Second Resolve Within TTL Skips Upstream", func(t *testing.T) {
		mockApi := new(MockAuthApiClient)
		svc := newCachedSessionService(t, mockApi)

		mockApi.On("CurrentUser", mock.Anything, "good-token").Return(upstreamSession, nil)

		first := svc.Resolve(context.Background(), "good-token")
		second := svc.Resolve(context.Background(), "good-token")

		require.False(t, second.IsAnonymous())
		assert.Equal(t, first.User.ID, second.User.ID)
		assert.Equal(t, "good-token", second.Token)
		require.NotNil(t, second.PatientProfile)
		assert.Equal(t, "P1", second.PatientProfile.ID)
		mockApi.AssertNumberOfCalls(t, "CurrentUser", 1)
	})

	t.Run("Anonymous Resolution Is Not Cached", func(t *testing.T) {
		mockApi := new(MockAuthApiClient)
		svc := newCachedSessionService(t, mockApi)

		mockApi.On("CurrentUser", mock.Anything, "flaky-token").
			Return(nil, exceptions.ErrSendHTTPRequest(nil)).Once()
		mockApi.On("CurrentUser", mock.Anything, "flaky-token").Return(upstreamSession, nil)

		assert.True(t, svc.Resolve(context.Background(), "flaky-token").IsAnonymous())
		assert.False(t, svc.Resolve(context.Background(), "flaky-token").IsAnonymous())
		mockApi.AssertNumberOfCalls(t, "CurrentUser", 2)
	})

	t.Run("Invalidate Forces A Fresh Resolution", func(t *testing.T) {
		mockApi := new(MockAuthApiClient)
		svc := newCachedSessionService(t, mockApi)

		mockApi.On("CurrentUser", mock.Anything, "good-token").Return(upstreamSession, nil)

		svc.Resolve(context.Background(), "good-token")
		svc.Invalidate(context.Background(), "good-token")
		svc.Resolve(context.Background(), "good-token")

		mockApi.AssertNumberOfCalls(t, "CurrentUser", 2)
	})
}
