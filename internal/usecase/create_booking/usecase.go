package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/playgrid/facility-booking/internal/domain"
	facilityRepo "github.com/playgrid/facility-booking/internal/infra/storage/facility"
	authClient "github.com/playgrid/facility-booking/internal/integrations/authservice"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	facilityRepo FacilityRepository
	authClient   AuthServiceClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	facilityRepo FacilityRepository,
	authClient AuthServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		facilityRepo: facilityRepo,
		authClient:   authClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка пересечений и вставка идут одной сериализуемой транзакцией -
// при двух одновременных запросах на один слот пройдет ровно один
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, facility=%d, schedule=%d, date=%s, seats=%d",
		req.UserID, req.FacilityID, req.ScheduleID, req.Date.Format(domain.DateFormat), req.Seats)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем принципала через AuthService
	if _, err := uc.authClient.GetUser(ctx, req.UserID); err != nil {
		if errors.Is(err, authClient.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateBooking: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// 4. Получаем объект со спортом и расписаниями
	facility, err := uc.facilityRepo.GetByID(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			uc.logger.Warn("CreateBooking: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("CreateBooking: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	if !facility.IsActive {
		uc.logger.Warn("CreateBooking: facility id=%d is not active", req.FacilityID)
		return nil, ErrFacilityInactive
	}

	// 5. Проверяем вместимость
	if !facility.CanAccommodate(req.Seats) {
		uc.logger.Warn("CreateBooking: seats=%d exceed capacity=%d of facility id=%d",
			req.Seats, facility.MaxCapacity, req.FacilityID)
		return nil, fmt.Errorf("%w: maximum capacity is %d", ErrCapacityExceeded, facility.MaxCapacity)
	}

	// 6. Валидация даты
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 7. Получаем расписание с проверкой принадлежности объекту
	schedule, err := uc.facilityRepo.GetScheduleByID(ctx, req.ScheduleID, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrScheduleNotFound) {
			uc.logger.Warn("CreateBooking: schedule id=%d not found for facility id=%d",
				req.ScheduleID, req.FacilityID)
			return nil, ErrInvalidSchedule
		}
		uc.logger.Error("CreateBooking: failed to get schedule id=%d: %v", req.ScheduleID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// 8. Вычисляем конкретный слот
	// Длительность берется из вида спорта, а не из конца расписания - расписание
	// задает только момент начала повторяющегося слота
	start, err := schedule.StartTime.On(req.Date)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid schedule start time %s: %v", schedule.StartTime, err)
		return nil, fmt.Errorf("%w: invalid schedule start time: %v", ErrInvalidInput, err)
	}
	end := start.Add(time.Duration(facility.Sport.DefaultSlotMinutes) * time.Minute)

	var result *domain.Booking

	// 9. Проверка пересечений и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 9.1. Читаем пересекающиеся бронирования с блокировкой (FOR UPDATE)
		overlapping, err := uc.bookingRepo.GetOverlapping(txCtx, req.FacilityID, start, end)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to get overlapping bookings: %v", ErrInternal, err)
		}

		// 9.2. Один объект - одно бронирование на окно, независимо от мест
		if hasConflict(overlapping, start, end) {
			uc.logger.Warn("CreateBooking: slot %s-%s is already booked for facility id=%d",
				start.Format(time.RFC3339), end.Format(time.RFC3339), req.FacilityID)
			return ErrSlotUnavailable
		}

		// 9.3. Считаем цену: (минуты/60) * цена за час * места
		price := facility.SlotPrice(req.Seats)

		// 9.4. Создаем бронирование со статусом confirmed
		booking := &domain.Booking{
			UserID:     req.UserID,
			FacilityID: req.FacilityID,
			StartAt:    start,
			EndAt:      end,
			Seats:      req.Seats,
			Price:      price,
			Status:     domain.StatusConfirmed,
			// Денормализация для истории
			FacilityName: facility.Name,
			SportName:    facility.Sport.Name,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, price=%.2f", result.ID, result.Price)

	return &Response{
		ID:           result.ID,
		UserID:       result.UserID,
		FacilityID:   result.FacilityID,
		StartAt:      result.StartAt,
		EndAt:        result.EndAt,
		Seats:        result.Seats,
		Price:        result.Price,
		Status:       string(result.Status),
		FacilityName: result.FacilityName,
		SportName:    result.SportName,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}
