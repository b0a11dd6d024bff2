package get_bookable_days

import (
	"github.com/playgrid/facility-booking/internal/domain"
	getBookableDays "github.com/playgrid/facility-booking/internal/usecase/get_bookable_days"
)

// BookableDaysResponse HTTP response model
type BookableDaysResponse struct {
	FacilityID   int64         `json:"facilityId"`
	StartDate    string        `json:"startDate"` // "2025-10-15"
	Days         int           `json:"days"`
	SlotMinutes  int           `json:"slotMinutes"`
	BookableDays []DayResponse `json:"bookableDays"`
}

// DayResponse конкретная дата с расписаниями
type DayResponse struct {
	Date      string         `json:"date"`
	DayOfWeek int            `json:"dayOfWeek"` // Sunday=0 ... Saturday=6
	Schedules []SlotResponse `json:"schedules"`
}

// SlotResponse расписание, доступное в эту дату
type SlotResponse struct {
	ID        int64  `json:"scheduleId"`
	StartTime string `json:"startTime"` // "08:00"
	EndTime   string `json:"endTime"`   // "10:00"
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBookableDays.Response) *BookableDaysResponse {
	result := &BookableDaysResponse{
		FacilityID:   resp.FacilityID,
		StartDate:    resp.StartDate.Format(domain.DateFormat),
		Days:         resp.Days,
		SlotMinutes:  resp.SlotMinutes,
		BookableDays: make([]DayResponse, 0, len(resp.BookableDays)),
	}

	for _, day := range resp.BookableDays {
		slots := make([]SlotResponse, 0, len(day.Schedules))
		for _, schedule := range day.Schedules {
			slots = append(slots, SlotResponse{
				ID:        schedule.ID,
				StartTime: schedule.StartTime.String(),
				EndTime:   schedule.EndTime.String(),
			})
		}

		result.BookableDays = append(result.BookableDays, DayResponse{
			Date:      day.Date.Format(domain.DateFormat),
			DayOfWeek: day.DayOfWeek,
			Schedules: slots,
		})
	}

	return result
}
