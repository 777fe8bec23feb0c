package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/lakshana011/HealUp/internal/app/config"
	"github.com/lakshana011/HealUp/internal/app/contracts"
	"github.com/lakshana011/HealUp/internal/app/models"
	"github.com/lakshana011/HealUp/internal/pkg/constvars"
	"go.uber.org/zap"
)

type sessionService struct {
	AuthApiClient contracts.AuthApiClient
	Redis         contracts.RedisRepository
	Log           *zap.Logger
	CacheTTL      time.Duration
}

var (
	sessionServiceInstance contracts.SessionService
	onceSessionService     sync.Once
)

func NewSessionService(
	authApiClient contracts.AuthApiClient,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
) contracts.SessionService {
	onceSessionService.Do(func() {
		sessionServiceInstance = &sessionService{
			AuthApiClient: authApiClient,
			Redis:         redisRepository,
			Log:           logger,
			CacheTTL:      time.Duration(internalConfig.Session.CacheTTLInSeconds) * time.Second,
		}
	})
	return sessionServiceInstance
}

// Resolve exchanges a stored token for the session it represents, consulting
// the cache first so a burst of requests does not hammer /auth/me. Any
// failure, transport or otherwise, degrades to anonymous so a stale cookie
// can never take a page down. Only authenticated sessions are cached; a
// transient upstream failure must not pin a user to anonymous.
func (s *sessionService) Resolve(ctx context.Context, token string) *models.SessionData {
	if token == "" {
		return models.AnonymousSession()
	}

	if cached := s.cachedSession(ctx, token); cached != nil {
		return cached
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	result, err := s.AuthApiClient.CurrentUser(ctx, token)
	if err != nil {
		s.Log.Warn("sessionService.Resolve falling back to anonymous",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return models.AnonymousSession()
	}
	if !result.Success || result.User == nil {
		return models.AnonymousSession()
	}

	sessionData := &models.SessionData{
		Token:          token,
		Authenticated:  true,
		User:           result.User,
		DoctorProfile:  result.DoctorProfile,
		PatientProfile: result.PatientProfile,
	}
	s.cacheSession(ctx, token, sessionData)
	return sessionData
}

// Invalidate drops the cached session so a logged-out token stops resolving
// before its cache entry would expire.
func (s *sessionService) Invalidate(ctx context.Context, token string) {
	if token == "" || !s.cacheEnabled() {
		return
	}
	if err := s.Redis.Delete(ctx, sessionCacheKey(token)); err != nil {
		s.Log.Warn("sessionService.Invalidate failed", zap.Error(err))
	}
}

func (s *sessionService) cacheEnabled() bool {
	return s.Redis != nil && s.CacheTTL > 0
}

func (s *sessionService) cachedSession(ctx context.Context, token string) *models.SessionData {
	if !s.cacheEnabled() {
		return nil
	}
	raw, err := s.Redis.Get(ctx, sessionCacheKey(token))
	if err != nil || raw == "" {
		return nil
	}
	cached := new(models.SessionData)
	if err := json.Unmarshal([]byte(raw), cached); err != nil {
		return nil
	}
	cached.Token = token
	return cached
}

func (s *sessionService) cacheSession(ctx context.Context, token string, sessionData *models.SessionData) {
	if !s.cacheEnabled() {
		return
	}
	if err := s.Redis.Set(ctx, sessionCacheKey(token), sessionData, s.CacheTTL); err != nil {
		s.Log.Warn("sessionService failed to cache session", zap.Error(err))
	}
}

func sessionCacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return constvars.SessionCacheKeyPrefix + hex.EncodeToString(sum[:])
}
