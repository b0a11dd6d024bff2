package get_bookable_days

import (
	"iter"
	"time"

	"github.com/playgrid/facility-booking/internal/domain"
)

// BookableDay конкретная дата окна с расписаниями, повторяющимися в этот день недели
type BookableDay struct {
	Date      time.Time
	Schedules []domain.WeeklySchedule
}

// bookableDays ленивая последовательность дат окна [start, start+days),
// у которых есть хотя бы одно подходящее недельное расписание
// Дни без расписаний опускаются; последовательность конечна и может обходиться повторно
//
// Сопоставление идет по дню недели: int(time.Weekday) уже Sunday=0, как и
// domain.WeeklySchedule.DayOfWeek
func bookableDays(schedules []domain.WeeklySchedule, start time.Time, days int) iter.Seq[BookableDay] {
	return func(yield func(BookableDay) bool) {
		for offset := 0; offset < days; offset++ {
			date := start.AddDate(0, 0, offset)

			var matched []domain.WeeklySchedule
			for _, schedule := range schedules {
				if schedule.MatchesDate(date) {
					matched = append(matched, schedule)
				}
			}

			if len(matched) == 0 {
				continue
			}

			if !yield(BookableDay{Date: date, Schedules: matched}) {
				return
			}
		}
	}
}

// truncateToDate обнуляет время, оставляя только календарную дату
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
