package middlewares

import (
	"github.com/lakshana011/HealUp/internal/app/config"
	"github.com/lakshana011/HealUp/internal/app/contracts"
	"github.com/lakshana011/HealUp/internal/app/services/shared/ratelimiter"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log               *zap.Logger
	SessionService    contracts.SessionService
	CredentialLimiter *ratelimiter.CredentialLimiter
	InternalConfig    *config.InternalConfig
}

func NewMiddlewares(
	logger *zap.Logger,
	sessionService contracts.SessionService,
	credentialLimiter *ratelimiter.CredentialLimiter,
	internalConfig *config.InternalConfig,
) *Middlewares {
	return &Middlewares{
		Log:               logger,
		SessionService:    sessionService,
		CredentialLimiter: credentialLimiter,
		InternalConfig:    internalConfig,
	}
}
