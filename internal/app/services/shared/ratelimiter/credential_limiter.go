package ratelimiter

import (
	"context"
	"fmt"
	"time"

	"github.com/lakshana011/HealUp/internal/app/config"
	"github.com/lakshana011/HealUp/internal/app/contracts"
	"github.com/lakshana011/HealUp/internal/pkg/constvars"
	"go.uber.org/zap"
)

// CredentialLimiter throttles login/signup attempts per client IP with a
// fixed window in Redis, so the counter survives restarts and is shared
// across instances.
type CredentialLimiter struct {
	redis       contracts.RedisRepository
	log         *zap.Logger
	window      time.Duration
	maxAttempts int
}

func NewCredentialLimiter(redis contracts.RedisRepository, log *zap.Logger, cfg *config.InternalConfig) *CredentialLimiter {
	return &CredentialLimiter{
		redis:       redis,
		log:         log,
		window:      time.Duration(cfg.Limiter.CredentialWindowSeconds) * time.Second,
		maxAttempts: cfg.Limiter.CredentialMaxAttempts,
	}
}

// EvaluateInput identifies one attempt against the window.
type EvaluateInput struct {
	Identifier string
	NowUTC     time.Time
}

// EvaluateOutput carries the allow flag and the Retry-After seconds when denied.
type EvaluateOutput struct {
	Allowed        bool
	RetryAfterSecs int
}

func (l *CredentialLimiter) Evaluate(ctx context.Context, in *EvaluateInput) (*EvaluateOutput, error) {
	if l.maxAttempts <= 0 {
		return &EvaluateOutput{Allowed: true}, nil
	}

	windowStart := in.NowUTC.Truncate(l.window)
	key := fmt.Sprintf("RATE:%s:%d:%s", constvars.LimiterGroupCredentials, windowStart.Unix(), in.Identifier)

	count, err := l.redis.IncrementWithTTL(ctx, key, l.window)
	if err != nil {
		return nil, err
	}

	if count > l.maxAttempts {
		retryAfter := int(time.Until(windowStart.Add(l.window)).Seconds()) + 1
		l.log.Warn("credential attempt limit reached",
			zap.String("identifier", in.Identifier),
			zap.Int("attempts", count),
		)
		return &EvaluateOutput{Allowed: false, RetryAfterSecs: retryAfter}, nil
	}
	return &EvaluateOutput{Allowed: true}, nil
}
