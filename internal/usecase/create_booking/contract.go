package create_booking

import (
	"context"
	"time"

	"github.com/playgrid/facility-booking/internal/domain"
	"github.com/playgrid/facility-booking/internal/integrations/authservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetOverlapping(ctx context.Context, facilityID int64, start, end time.Time) ([]*domain.Booking, error)
}

// FacilityRepository интерфейс репозитория справочных данных
type FacilityRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Facility, error)
	GetScheduleByID(ctx context.Context, scheduleID, facilityID int64) (*domain.WeeklySchedule, error)
}

// AuthServiceClient интерфейс клиента для AuthService
type AuthServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*authservice.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
