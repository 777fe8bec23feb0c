package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/lakshana011/HealUp/internal/app/contracts"
	"github.com/lakshana011/HealUp/internal/pkg/constvars"
	"github.com/lakshana011/HealUp/internal/pkg/dto/requests"
	"github.com/lakshana011/HealUp/internal/pkg/dto/responses"
	"github.com/lakshana011/HealUp/internal/pkg/exceptions"
	"github.com/lakshana011/HealUp/internal/pkg/utils"
	"go.uber.org/zap"
)

// BookingController serves the four-step booking workflow. Steps after
// submission address the appointment by id only; every GET re-fetches what it
// shows.
type BookingController struct {
	Log            *zap.Logger
	BookingUsecase contracts.BookingUsecase
}

func NewBookingController(logger *zap.Logger, bookingUsecase contracts.BookingUsecase) *BookingController {
	return &BookingController{
		Log:            logger,
		BookingUsecase: bookingUsecase,
	}
}

func (ctrl *BookingController) ProfileStep(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	if doctorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(constvars.URLParamDoctorID))
		return
	}

	query := r.URL.Query()
	input := &contracts.BookingProfileInput{
		DoctorID:     doctorID,
		Month:        query.Get(constvars.QueryParamMonth),
		SelectedDate: query.Get(constvars.QueryParamDate),
		SelectedSlot: query.Get(constvars.QueryParamSlot),
	}
	ctrl.Log.Info("BookingController.ProfileStep called",
		zap.String(constvars.LoggingRequestIDKey, reqID),
		zap.Any(constvars.LoggingQueryParamsKey, input))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.ProfileStep(ctx, input)
	if err != nil {
		ctrl.Log.Error("Error in BookingUsecase.ProfileStep",
			zap.String(constvars.LoggingRequestIDKey, reqID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingProfileMessage, response)
}

func (ctrl *BookingController) Summary(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	if doctorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(constvars.URLParamDoctorID))
		return
	}

	query := r.URL.Query()

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.Summary(ctx, doctorID,
		query.Get(constvars.QueryParamDate), query.Get(constvars.QueryParamTime))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingSummaryMessage, response)
}

func (ctrl *BookingController) Submit(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	if doctorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(constvars.URLParamDoctorID))
		return
	}
	ctrl.Log.Info("BookingController.Submit called",
		zap.String(constvars.LoggingRequestIDKey, reqID),
		zap.String("doctor_id", doctorID))

	request := new(requests.BookAppointment)
	if err := parseAndValidateBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.Submit(ctx, sessionData(r), doctorID, request)
	if err != nil {
		ctrl.Log.Error("Error in BookingUsecase.Submit",
			zap.String(constvars.LoggingRequestIDKey, reqID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.BookingCreatedMessage, response)
}

func (ctrl *BookingController) PaymentStep(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	if appointmentID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(constvars.URLParamAppointmentID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.PaymentStep(ctx, sessionData(r), appointmentID)
	if err != nil {
		if ctrl.deadEnd(w, err) {
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PaymentViewMessage, response)
}

func (ctrl *BookingController) Pay(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	if appointmentID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(constvars.URLParamAppointmentID))
		return
	}
	ctrl.Log.Info("BookingController.Pay called",
		zap.String(constvars.LoggingRequestIDKey, reqID),
		zap.String("appointment_id", appointmentID))

	request := new(requests.SubmitPayment)
	if err := parseAndValidateBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.Pay(ctx, sessionData(r), appointmentID, request)
	if err != nil {
		ctrl.Log.Error("Error in BookingUsecase.Pay",
			zap.String(constvars.LoggingRequestIDKey, reqID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PaymentSuccessMessage, response)
}

func (ctrl *BookingController) Confirmation(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	if appointmentID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(constvars.URLParamAppointmentID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.Confirmation(ctx, sessionData(r), appointmentID)
	if err != nil {
		if ctrl.deadEnd(w, err) {
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConfirmationMessage, response)
}

// deadEnd renders the recovery view for an appointment the API no longer
// returns, so a stale payment or confirmation link lands on a page with a way
// back instead of a bare error.
func (ctrl *BookingController) deadEnd(w http.ResponseWriter, err error) bool {
	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) || customErr.StatusCode != constvars.StatusNotFound {
		return false
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(constvars.StatusNotFound)
	json.NewEncoder(w).Encode(responses.DeadEndView{
		Message: constvars.ErrClientAppointmentNotFound,
		BackURL: "/doctors",
	})
	return true
}
