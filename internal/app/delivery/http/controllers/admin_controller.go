package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/lakshana011/HealUp/internal/app/contracts"
	"github.com/lakshana011/HealUp/internal/pkg/constvars"
	"github.com/lakshana011/HealUp/internal/pkg/utils"
	"go.uber.org/zap"
)

type AdminController struct {
	Log          *zap.Logger
	AdminUsecase contracts.AdminUsecase
}

func NewAdminController(logger *zap.Logger, adminUsecase contracts.AdminUsecase) *AdminController {
	return &AdminController{
		Log:          logger,
		AdminUsecase: adminUsecase,
	}
}

func (ctrl *AdminController) Dashboard(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)
	ctrl.Log.Info("AdminController.Dashboard called",
		zap.String(constvars.LoggingRequestIDKey, reqID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AdminUsecase.Dashboard(ctx, sessionData(r))
	if err != nil {
		ctrl.Log.Error("Error in AdminUsecase.Dashboard",
			zap.String(constvars.LoggingRequestIDKey, reqID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DashboardMessage, response)
}
