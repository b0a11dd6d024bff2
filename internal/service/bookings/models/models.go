package models

import (
	"time"

	"github.com/playgrid/facility-booking/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         int64   `json:"id"`
	UserID     int64   `json:"userId"`
	FacilityID int64   `json:"facilityId"`
	StartAt    string  `json:"startAt"` // ISO 8601
	EndAt      string  `json:"endAt"`   // ISO 8601
	Seats      int     `json:"seats"`
	Price      float64 `json:"price"`
	Status     string  `json:"status"`

	// Денормализованные данные
	FacilityName string `json:"facilityName"`
	SportName    string `json:"sportName"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:           b.ID,
		UserID:       b.UserID,
		FacilityID:   b.FacilityID,
		StartAt:      b.StartAt.Format(time.RFC3339),
		EndAt:        b.EndAt.Format(time.RFC3339),
		Seats:        b.Seats,
		Price:        b.Price,
		Status:       string(b.Status),
		FacilityName: b.FacilityName,
		SportName:    b.SportName,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}
	return resp
}
