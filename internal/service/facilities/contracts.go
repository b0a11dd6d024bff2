package facilities

import (
	"context"

	"github.com/playgrid/facility-booking/internal/domain"
)

// FacilityRepository интерфейс репозитория справочных данных
type FacilityRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Facility, error)
	ListActive(ctx context.Context) ([]*domain.Facility, error)
	ListSports(ctx context.Context) ([]*domain.Sport, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
