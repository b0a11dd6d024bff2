package get_bookable_days

import (
	"time"

	"github.com/playgrid/facility-booking/pkg/types"
)

// Request модель запроса на получение дат, доступных для бронирования
type Request struct {
	FacilityID int64     // ID объекта
	StartDate  time.Time // Начало окна; нулевое значение - сегодня
	Days       int       // Длина окна в днях; 0 - значение по умолчанию (7)
}

// Response модель ответа со списком дат и подходящих расписаний
type Response struct {
	FacilityID   int64     // ID объекта
	StartDate    time.Time // Начало окна
	Days         int       // Длина окна в днях
	SlotMinutes  int       // Длительность слота (из вида спорта объекта)
	BookableDays []Day     // Даты, на которые есть хотя бы одно расписание
}

// Day конкретная дата с подходящими недельными расписаниями
type Day struct {
	Date      time.Time      // Календарная дата
	DayOfWeek int            // День недели, Sunday=0
	Schedules []ScheduleSlot // Расписания, повторяющиеся в этот день недели
}

// ScheduleSlot недельное расписание в ответе
type ScheduleSlot struct {
	ID        int64            // ID расписания
	StartTime types.TimeString // Время начала слота
	EndTime   types.TimeString // Время конца окна расписания
}
