package domain

import (
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	// StatusPending is declared for forward compatibility with flows that
	// confirm a reservation in a second step. The current booking flow
	// never assigns it: bookings are created as StatusConfirmed directly.
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a concrete reservation of a facility for a time range
type Booking struct {
	ID         int64
	UserID     int64
	FacilityID int64
	StartAt    time.Time
	EndAt      time.Time
	Seats      int
	Price      float64
	Status     BookingStatus

	// Denormalized data for history
	FacilityName string
	SportName    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its time window
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// HasStarted returns true if the booking's start time has already passed
func (b *Booking) HasStarted(now time.Time) bool {
	return b.StartAt.Before(now)
}

// Overlaps reports whether the booking's [StartAt, EndAt) interval overlaps
// the given half-open interval. Touching endpoints do not overlap: a booking
// ending exactly at start (or starting exactly at end) is not a conflict.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartAt.Before(end) && b.EndAt.After(start)
}
