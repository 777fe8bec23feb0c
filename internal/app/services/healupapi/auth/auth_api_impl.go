package auth

import (
	"context"

	"github.com/lakshana011/HealUp/internal/app/contracts"
	"github.com/lakshana011/HealUp/internal/app/services/healupapi"
	"github.com/lakshana011/HealUp/internal/pkg/dto/requests"
	"github.com/lakshana011/HealUp/internal/pkg/dto/responses"
)

const resourceName = "auth"

type authApiClient struct {
	restClient *healupapi.RestClient
}

func NewAuthApiClient(restClient *healupapi.RestClient) contracts.AuthApiClient {
	return &authApiClient{restClient: restClient}
}

func (c *authApiClient) Login(ctx context.Context, request *requests.Login) (*responses.UpstreamAuth, error) {
	result := new(responses.UpstreamAuth)
	if err := c.restClient.Post(ctx, "/auth/login", "", resourceName, request, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *authApiClient) Signup(ctx context.Context, request *requests.Signup) (*responses.UpstreamAuth, error) {
	result := new(responses.UpstreamAuth)
	if err := c.restClient.Post(ctx, "/auth/signup", "", resourceName, request, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *authApiClient) CurrentUser(ctx context.Context, token string) (*responses.UpstreamAuth, error) {
	result := new(responses.UpstreamAuth)
	if err := c.restClient.Get(ctx, "/auth/me", token, resourceName, result); err != nil {
		return nil, err
	}
	return result, nil
}
