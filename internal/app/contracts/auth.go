package contracts

import (
	"context"

	"github.com/lakshana011/HealUp/internal/pkg/dto/requests"
	"github.com/lakshana011/HealUp/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.UpstreamAuth, error)
	Signup(ctx context.Context, request *requests.Signup) (*responses.UpstreamAuth, error)
}

// AuthApiClient talks to the upstream /auth endpoints.
type AuthApiClient interface {
	Login(ctx context.Context, request *requests.Login) (*responses.UpstreamAuth, error)
	Signup(ctx context.Context, request *requests.Signup) (*responses.UpstreamAuth, error)
	CurrentUser(ctx context.Context, token string) (*responses.UpstreamAuth, error)
}
