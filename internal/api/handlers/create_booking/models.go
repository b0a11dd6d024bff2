package create_booking

import (
	"time"

	"github.com/playgrid/facility-booking/internal/domain"
	createBooking "github.com/playgrid/facility-booking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	FacilityID  int64  `json:"facilityId"`
	ScheduleID  int64  `json:"scheduleId"`
	BookingDate string `json:"bookingDate"` // "2025-10-15"
	Seats       int    `json:"seats,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64   `json:"id"`
	UserID       int64   `json:"userId"`
	FacilityID   int64   `json:"facilityId"`
	StartAt      string  `json:"startAt"`
	EndAt        string  `json:"endAt"`
	Seats        int     `json:"seats"`
	Price        float64 `json:"price"`
	Status       string  `json:"status"`
	FacilityName string  `json:"facilityName"`
	SportName    string  `json:"sportName"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Если места не указаны, бронируется одно
	seats := r.Seats
	if seats == 0 {
		seats = 1
	}

	return &createBooking.Request{
		UserID:     userID,
		FacilityID: r.FacilityID,
		ScheduleID: r.ScheduleID,
		Date:       bookingDate,
		Seats:      seats,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		UserID:       resp.UserID,
		FacilityID:   resp.FacilityID,
		StartAt:      resp.StartAt.Format(time.RFC3339),
		EndAt:        resp.EndAt.Format(time.RFC3339),
		Seats:        resp.Seats,
		Price:        resp.Price,
		Status:       resp.Status,
		FacilityName: resp.FacilityName,
		SportName:    resp.SportName,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
