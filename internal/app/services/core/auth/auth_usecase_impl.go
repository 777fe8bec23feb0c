package auth

import (
	"context"
	"sync"

	"github.com/lakshana011/HealUp/internal/app/contracts"
	"github.com/lakshana011/HealUp/internal/pkg/constvars"
	"github.com/lakshana011/HealUp/internal/pkg/dto/requests"
	"github.com/lakshana011/HealUp/internal/pkg/dto/responses"
	"github.com/lakshana011/HealUp/internal/pkg/exceptions"
	"go.uber.org/zap"
)

type authUsecase struct {
	AuthApiClient contracts.AuthApiClient
	Log           *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(authApiClient contracts.AuthApiClient, logger *zap.Logger) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			AuthApiClient: authApiClient,
			Log:           logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.UpstreamAuth, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	result, err := uc.AuthApiClient.Login(ctx, request)
	if err != nil {
		uc.Log.Error("authUsecase.Login upstream call failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !result.Success || result.Token == "" {
		return nil, exceptions.ErrUpstreamRejected(constvars.StatusUnauthorized, result.Message, "auth")
	}
	return result, nil
}

func (uc *authUsecase) Signup(ctx context.Context, request *requests.Signup) (*responses.UpstreamAuth, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Signup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	result, err := uc.AuthApiClient.Signup(ctx, request)
	if err != nil {
		uc.Log.Error("authUsecase.Signup upstream call failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !result.Success || result.Token == "" {
		return nil, exceptions.ErrUpstreamRejected(constvars.StatusBadRequest, result.Message, "auth")
	}
	return result, nil
}
