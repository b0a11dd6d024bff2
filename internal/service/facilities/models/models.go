package models

import (
	"github.com/playgrid/facility-booking/internal/domain"
)

// SportResponse вид спорта в ответе
type SportResponse struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	MaxPlayers         int    `json:"maxPlayers"`
	DefaultSlotMinutes int    `json:"defaultSlotMinutes"`
}

// ScheduleResponse недельное расписание в ответе
type ScheduleResponse struct {
	ID        int64  `json:"id"`
	DayOfWeek int    `json:"dayOfWeek"` // Sunday=0 ... Saturday=6
	StartTime string `json:"startTime"` // "08:00"
	EndTime   string `json:"endTime"`   // "10:00"
}

// FacilityResponse ответ с данными объекта
type FacilityResponse struct {
	ID           int64              `json:"id"`
	Name         string             `json:"name"`
	Location     string             `json:"location"`
	PricePerHour float64            `json:"pricePerHour"`
	MaxCapacity  int                `json:"maxCapacity"`
	IsActive     bool               `json:"isActive"`
	Sport        SportResponse      `json:"sport"`
	Schedules    []ScheduleResponse `json:"schedules,omitempty"`
}

// FacilityListResponse ответ со списком объектов
type FacilityListResponse struct {
	Facilities []FacilityResponse `json:"facilities"`
}

// SportListResponse ответ со справочником видов спорта
type SportListResponse struct {
	Sports []SportResponse `json:"sports"`
}

// FromDomainFacility конвертирует domain модель в DTO
func FromDomainFacility(f *domain.Facility) *FacilityResponse {
	if f == nil {
		return nil
	}

	resp := &FacilityResponse{
		ID:           f.ID,
		Name:         f.Name,
		Location:     f.Location,
		PricePerHour: f.PricePerHour,
		MaxCapacity:  f.MaxCapacity,
		IsActive:     f.IsActive,
		Sport: SportResponse{
			ID:                 f.Sport.ID,
			Name:               f.Sport.Name,
			MaxPlayers:         f.Sport.MaxPlayers,
			DefaultSlotMinutes: f.Sport.DefaultSlotMinutes,
		},
	}

	for _, schedule := range f.Schedules {
		resp.Schedules = append(resp.Schedules, ScheduleResponse{
			ID:        schedule.ID,
			DayOfWeek: schedule.DayOfWeek,
			StartTime: schedule.StartTime.String(),
			EndTime:   schedule.EndTime.String(),
		})
	}

	return resp
}

// FromDomainFacilityList конвертирует список domain моделей в DTO
func FromDomainFacilityList(facilities []*domain.Facility) *FacilityListResponse {
	resp := &FacilityListResponse{
		Facilities: make([]FacilityResponse, 0, len(facilities)),
	}
	for _, f := range facilities {
		resp.Facilities = append(resp.Facilities, *FromDomainFacility(f))
	}
	return resp
}

// FromDomainSportList конвертирует список видов спорта в DTO
func FromDomainSportList(sports []*domain.Sport) *SportListResponse {
	resp := &SportListResponse{
		Sports: make([]SportResponse, 0, len(sports)),
	}
	for _, s := range sports {
		resp.Sports = append(resp.Sports, SportResponse{
			ID:                 s.ID,
			Name:               s.Name,
			MaxPlayers:         s.MaxPlayers,
			DefaultSlotMinutes: s.DefaultSlotMinutes,
		})
	}
	return resp
}
