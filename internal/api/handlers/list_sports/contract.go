package list_sports

import (
	"context"

	"github.com/playgrid/facility-booking/internal/service/facilities/models"
)

type FacilityService interface {
	ListSports(ctx context.Context) (*models.SportListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
