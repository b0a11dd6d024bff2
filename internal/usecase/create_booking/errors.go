package create_booking

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден в AuthService
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrFacilityNotFound возвращается, когда объект не найден
	ErrFacilityNotFound = errors.New("create_booking: facility not found")

	// ErrFacilityInactive возвращается, когда объект закрыт для бронирования
	ErrFacilityInactive = errors.New("create_booking: facility is not active")

	// ErrInvalidSchedule возвращается, когда расписание не принадлежит объекту
	ErrInvalidSchedule = errors.New("create_booking: invalid schedule selection")

	// ErrCapacityExceeded возвращается, когда запрошено больше мест, чем вмещает объект
	ErrCapacityExceeded = errors.New("create_booking: seats exceed facility capacity")

	// ErrSlotUnavailable возвращается, когда слот пересекается с существующим бронированием
	ErrSlotUnavailable = errors.New("create_booking: time slot is already booked")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
