package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/lakshana011/HealUp/internal/app/config"
	"github.com/lakshana011/HealUp/internal/app/contracts"
	"github.com/lakshana011/HealUp/internal/pkg/constvars"
	"github.com/lakshana011/HealUp/internal/pkg/dto/requests"
	"github.com/lakshana011/HealUp/internal/pkg/dto/responses"
	"github.com/lakshana011/HealUp/internal/pkg/exceptions"
	"github.com/lakshana011/HealUp/internal/pkg/utils"
	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
}

func NewAuthController(
	logger *zap.Logger,
	authUsecase contracts.AuthUsecase,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
) *AuthController {
	return &AuthController{
		Log:            logger,
		AuthUsecase:    authUsecase,
		SessionService: sessionService,
		InternalConfig: internalConfig,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)
	ctrl.Log.Info("AuthController.Login called",
		zap.String(constvars.LoggingRequestIDKey, reqID))

	request := new(requests.Login)
	if err := parseAndValidateBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AuthUsecase.Login(ctx, request)
	if err != nil {
		ctrl.Log.Error("Error in AuthUsecase.Login",
			zap.String(constvars.LoggingRequestIDKey, reqID),
			zap.Error(err))
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.setSessionCookie(w, result.Token)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, responses.AuthResult{User: result.User})
}

func (ctrl *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)
	ctrl.Log.Info("AuthController.Signup called",
		zap.String(constvars.LoggingRequestIDKey, reqID))

	request := new(requests.Signup)
	if err := parseAndValidateBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AuthUsecase.Signup(ctx, request)
	if err != nil {
		ctrl.Log.Error("Error in AuthUsecase.Signup",
			zap.String(constvars.LoggingRequestIDKey, reqID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.setSessionCookie(w, result.Token)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SignupSuccessMessage, responses.AuthResult{User: result.User})
}

// Logout clears the cookie and the cached session. The upstream API holds no
// server-side session to invalidate.
func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("AuthController.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID(r)))

	if cookie, err := r.Cookie(constvars.SessionCookieName); err == nil && cookie.Value != "" {
		ctrl.SessionService.Invalidate(r.Context(), cookie.Value)
	}
	ctrl.clearSessionCookie(w)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccessMessage, nil)
}

func (ctrl *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	session := sessionData(r)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SessionResolvedMessage, responses.Session{
		Authenticated:  session.Authenticated,
		User:           session.User,
		DoctorProfile:  session.DoctorProfile,
		PatientProfile: session.PatientProfile,
	})
}

// setSessionCookie aligns the cookie lifetime with the token's exp claim when
// one is readable, falling back to the configured default.
func (ctrl *AuthController) setSessionCookie(w http.ResponseWriter, token string) {
	expiry, ok := utils.TokenExpiry(token)
	if !ok {
		expiry = time.Now().Add(time.Duration(ctrl.InternalConfig.Session.DefaultExpiryTimeInHours) * time.Hour)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     constvars.SessionCookieName,
		Value:    token,
		Path:     "/",
		Domain:   ctrl.InternalConfig.Session.CookieDomain,
		Expires:  expiry,
		HttpOnly: true,
		Secure:   ctrl.InternalConfig.Session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (ctrl *AuthController) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     constvars.SessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   ctrl.InternalConfig.Session.CookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   ctrl.InternalConfig.Session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
