package create_booking

import (
	"time"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID     int64     // ID аутентифицированного пользователя
	FacilityID int64     // ID объекта
	ScheduleID int64     // ID недельного расписания объекта
	Date       time.Time // Дата бронирования (без времени)
	Seats      int       // Количество мест/игроков
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64     // ID созданного бронирования
	UserID     int64     // ID пользователя
	FacilityID int64     // ID объекта
	StartAt    time.Time // Начало слота
	EndAt      time.Time // Конец слота
	Seats      int       // Количество мест
	Price      float64   // Итоговая цена
	Status     string    // Статус бронирования

	// Денормализованные данные
	FacilityName string // Название объекта
	SportName    string // Вид спорта

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
