package get_bookable_days

import (
	"context"
	"errors"
	"fmt"

	"github.com/playgrid/facility-booking/internal/domain"
	facilityRepo "github.com/playgrid/facility-booking/internal/infra/storage/facility"
)

// UseCase use case для получения дат, доступных для бронирования
// Чистое чтение по справочным данным - бронирования не затрагиваются
type UseCase struct {
	facilityRepo FacilityRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(facilityRepo FacilityRepository, logger Logger) *UseCase {
	return &UseCase{
		facilityRepo: facilityRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения дат для бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.FacilityID <= 0 {
		return nil, fmt.Errorf("%w: facilityID must be positive", ErrInvalidInput)
	}

	days := req.Days
	if days == 0 {
		days = domain.DefaultBookableDays
	}
	if days < 0 || days > domain.MaxBookableDays {
		return nil, fmt.Errorf("%w: days must be in range [1, %d]", ErrInvalidInput, domain.MaxBookableDays)
	}

	startDate := req.StartDate
	if startDate.IsZero() {
		startDate = uc.timeProvider.Now()
	}
	startDate = truncateToDate(startDate)

	uc.logger.Info("GetBookableDays: facility=%d, start=%s, days=%d",
		req.FacilityID, startDate.Format(domain.DateFormat), days)

	facility, err := uc.facilityRepo.GetByID(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			uc.logger.Warn("GetBookableDays: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("GetBookableDays: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	resp := &Response{
		FacilityID:   facility.ID,
		StartDate:    startDate,
		Days:         days,
		SlotMinutes:  facility.Sport.DefaultSlotMinutes,
		BookableDays: make([]Day, 0),
	}

	for day := range bookableDays(facility.Schedules, startDate, days) {
		slots := make([]ScheduleSlot, 0, len(day.Schedules))
		for _, schedule := range day.Schedules {
			slots = append(slots, ScheduleSlot{
				ID:        schedule.ID,
				StartTime: schedule.StartTime,
				EndTime:   schedule.EndTime,
			})
		}

		resp.BookableDays = append(resp.BookableDays, Day{
			Date:      day.Date,
			DayOfWeek: int(day.Date.Weekday()),
			Schedules: slots,
		})
	}

	uc.logger.Info("GetBookableDays: facility=%d has %d bookable days in window",
		req.FacilityID, len(resp.BookableDays))

	return resp, nil
}
