package contracts

import (
	"context"

	"github.com/lakshana011/HealUp/internal/app/models"
	"github.com/lakshana011/HealUp/internal/pkg/dto/responses"
)

type AdminUsecase interface {
	Dashboard(ctx context.Context, session *models.SessionData) (*responses.AdminDashboard, error)
}
