package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lakshana011/HealUp/internal/app/contracts"
	"github.com/lakshana011/HealUp/internal/pkg/constvars"
	"github.com/lakshana011/HealUp/internal/pkg/dto/requests"
	"github.com/lakshana011/HealUp/internal/pkg/exceptions"
	"github.com/lakshana011/HealUp/internal/pkg/utils"
	"go.uber.org/zap"
)

type DoctorController struct {
	Log           *zap.Logger
	DoctorUsecase contracts.DoctorUsecase
}

func NewDoctorController(logger *zap.Logger, doctorUsecase contracts.DoctorUsecase) *DoctorController {
	return &DoctorController{
		Log:           logger,
		DoctorUsecase: doctorUsecase,
	}
}

func (ctrl *DoctorController) Search(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)
	queryParams := &requests.DoctorQueryParams{
		Specialty: r.URL.Query().Get(constvars.QueryParamSpecialty),
		Search:    r.URL.Query().Get(constvars.QueryParamSearch),
	}
	ctrl.Log.Info("DoctorController.Search called",
		zap.String(constvars.LoggingRequestIDKey, reqID),
		zap.Any(constvars.LoggingQueryParamsKey, queryParams))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DoctorUsecase.Search(ctx, queryParams)
	if err != nil {
		ctrl.Log.Error("Error in DoctorUsecase.Search",
			zap.String(constvars.LoggingRequestIDKey, reqID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorsRetrievedMessage, response)
}

func (ctrl *DoctorController) FindByID(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	if doctorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(constvars.URLParamDoctorID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DoctorUsecase.FindByID(ctx, doctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorRetrievedMessage, response)
}

func (ctrl *DoctorController) Slots(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	if doctorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(constvars.URLParamDoctorID))
		return
	}
	date := r.URL.Query().Get(constvars.QueryParamDate)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DoctorUsecase.Slots(ctx, doctorID, date)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorRetrievedMessage, response)
}

func (ctrl *DoctorController) SelfProfile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DoctorUsecase.SelfProfile(ctx, sessionData(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorRetrievedMessage, response)
}

func (ctrl *DoctorController) UpdateSelfProfile(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)
	ctrl.Log.Info("DoctorController.UpdateSelfProfile called",
		zap.String(constvars.LoggingRequestIDKey, reqID))

	request := new(requests.UpdateDoctorProfile)
	if err := parseAndValidateBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DoctorUsecase.UpdateSelfProfile(ctx, sessionData(r), request)
	if err != nil {
		ctrl.Log.Error("Error in DoctorUsecase.UpdateSelfProfile",
			zap.String(constvars.LoggingRequestIDKey, reqID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorUpdatedMessage, response)
}

func (ctrl *DoctorController) ReplaceAvailability(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)
	ctrl.Log.Info("DoctorController.ReplaceAvailability called",
		zap.String(constvars.LoggingRequestIDKey, reqID))

	request := new(requests.ReplaceAvailability)
	if err := parseAndValidateBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.DoctorUsecase.ReplaceAvailability(ctx, sessionData(r), request); err != nil {
		ctrl.Log.Error("Error in DoctorUsecase.ReplaceAvailability",
			zap.String(constvars.LoggingRequestIDKey, reqID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AvailabilityUpdateMessage, nil)
}

func (ctrl *DoctorController) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DoctorUsecase.Dashboard(ctx, sessionData(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DashboardMessage, response)
}
