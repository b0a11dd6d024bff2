package domain

// Default values for the booking window
const (
	// DefaultBookableDays длина окна предстоящих дат для бронирования
	DefaultBookableDays = 7

	// MaxBookableDays верхняя граница окна, защищает от запросов на годы вперед
	MaxBookableDays = 31
)

// DateFormat формат календарной даты YYYY-MM-DD
const DateFormat = "2006-01-02"

// ActiveStatuses список статусов, при которых бронирование занимает свой слот
// Используется при проверке пересечений
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
