package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lakshana011/HealUp/internal/app/contracts"
	"github.com/lakshana011/HealUp/internal/app/models"
	"github.com/lakshana011/HealUp/internal/pkg/constvars"
	"github.com/lakshana011/HealUp/internal/pkg/dto/requests"
	"github.com/lakshana011/HealUp/internal/pkg/exceptions"
	"github.com/lakshana011/HealUp/internal/pkg/utils"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
	}
}

func (ctrl *AppointmentController) ListMine(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)
	queryParams := &requests.AppointmentQueryParams{
		Status: r.URL.Query().Get(constvars.QueryParamStatus),
	}
	ctrl.Log.Info("AppointmentController.ListMine called",
		zap.String(constvars.LoggingRequestIDKey, reqID),
		zap.Any(constvars.LoggingQueryParamsKey, queryParams))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.ListMine(ctx, sessionData(r), queryParams)
	if err != nil {
		ctrl.Log.Error("Error in AppointmentUsecase.ListMine",
			zap.String(constvars.LoggingRequestIDKey, reqID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentsListMessage, response)
}

func (ctrl *AppointmentController) ListAll(w http.ResponseWriter, r *http.Request) {
	queryParams := &requests.AppointmentQueryParams{
		Status: r.URL.Query().Get(constvars.QueryParamStatus),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.ListAll(ctx, sessionData(r), queryParams)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentsListMessage, response)
}

func (ctrl *AppointmentController) FindByID(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	if appointmentID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(constvars.URLParamAppointmentID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.FindByID(ctx, sessionData(r), appointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentsListMessage, response)
}

func (ctrl *AppointmentController) Cancel(w http.ResponseWriter, r *http.Request) {
	ctrl.transition(w, r, ctrl.AppointmentUsecase.Cancel, constvars.AppointmentCancelMessage)
}

func (ctrl *AppointmentController) Complete(w http.ResponseWriter, r *http.Request) {
	ctrl.transition(w, r, ctrl.AppointmentUsecase.Complete, constvars.AppointmentDoneMessage)
}

func (ctrl *AppointmentController) transition(
	w http.ResponseWriter,
	r *http.Request,
	action func(ctx context.Context, session *models.SessionData, appointmentID string) error,
	successMessage string,
) {
	reqID := requestID(r)
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	if appointmentID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(constvars.URLParamAppointmentID))
		return
	}
	ctrl.Log.Info("AppointmentController.transition called",
		zap.String(constvars.LoggingRequestIDKey, reqID),
		zap.String("appointment_id", appointmentID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := action(ctx, sessionData(r), appointmentID); err != nil {
		ctrl.Log.Error("Error in appointment status transition",
			zap.String(constvars.LoggingRequestIDKey, reqID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, successMessage, nil)
}
