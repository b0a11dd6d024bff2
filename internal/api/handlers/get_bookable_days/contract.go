package get_bookable_days

import (
	"context"

	getBookableDays "github.com/playgrid/facility-booking/internal/usecase/get_bookable_days"
)

type GetBookableDaysUseCase interface {
	Execute(ctx context.Context, req *getBookableDays.Request) (*getBookableDays.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
