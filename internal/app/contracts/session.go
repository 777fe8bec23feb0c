package contracts

import (
	"context"

	"github.com/lakshana011/HealUp/internal/app/models"
)

// SessionService resolves a stored token into a session exactly once per
// request, consulting a short-lived cache before the upstream API. Any
// failure resolves to the anonymous session; resolution itself never errors
// out a request.
type SessionService interface {
	Resolve(ctx context.Context, token string) *models.SessionData
	// Invalidate drops the cached session for a token, best effort.
	Invalidate(ctx context.Context, token string)
}
