package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playgrid/facility-booking/internal/domain"
	bookingRepo "github.com/playgrid/facility-booking/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *booking
	return &copied, nil
}

func (r *fakeBookingRepo) GetByUserID(_ context.Context, userID int64) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			copied := *b
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	booking, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	booking.Status = status
	return nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2025, 10, 12, 12, 0, 0, 0, time.UTC)

func newTestService(bookings ...*domain.Booking) (*Service, *fakeBookingRepo) {
	repo := &fakeBookingRepo{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}

	svc := NewService(repo, noopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: testNow}
	return svc, repo
}

func futureBooking() *domain.Booking {
	return &domain.Booking{
		ID:         1,
		UserID:     42,
		FacilityID: 1,
		StartAt:    testNow.Add(24 * time.Hour),
		EndAt:      testNow.Add(25 * time.Hour),
		Seats:      2,
		Price:      40.0,
		Status:     domain.StatusConfirmed,
	}
}

func TestGetByID_Success(t *testing.T) {
	svc, _ := newTestService(futureBooking())

	resp, err := svc.GetByID(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetByID(context.Background(), 999, 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID_AccessDenied(t *testing.T) {
	svc, _ := newTestService(futureBooking())

	_, err := svc.GetByID(context.Background(), 1, 7)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetUserBookings(t *testing.T) {
	other := futureBooking()
	other.ID = 2
	other.UserID = 7

	svc, _ := newTestService(futureBooking(), other)

	resp, err := svc.GetUserBookings(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)
}

func TestGetUserBookings_Empty(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.GetUserBookings(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, resp.Bookings)
}

func TestCancel_Success(t *testing.T) {
	svc, repo := newTestService(futureBooking())

	err := svc.Cancel(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, repo.bookings[1].Status)
}

func TestCancel_NotFound(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Cancel(context.Background(), 999, 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_AccessDenied(t *testing.T) {
	svc, repo := newTestService(futureBooking())

	err := svc.Cancel(context.Background(), 1, 7)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, domain.StatusConfirmed, repo.bookings[1].Status)
}

func TestCancel_PastBooking(t *testing.T) {
	started := futureBooking()
	started.StartAt = testNow.Add(-time.Hour)
	started.EndAt = testNow.Add(time.Hour)

	svc, repo := newTestService(started)

	err := svc.Cancel(context.Background(), 1, 42)
	assert.ErrorIs(t, err, ErrPastBooking)
	assert.Equal(t, domain.StatusConfirmed, repo.bookings[1].Status)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	cancelled := futureBooking()
	cancelled.Status = domain.StatusCancelled

	svc, _ := newTestService(cancelled)

	err := svc.Cancel(context.Background(), 1, 42)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

// У чужого отмененного бронирования приоритет у проверки владельца
func TestCancel_AccessDeniedBeforeAlreadyCancelled(t *testing.T) {
	cancelled := futureBooking()
	cancelled.Status = domain.StatusCancelled

	svc, _ := newTestService(cancelled)

	err := svc.Cancel(context.Background(), 1, 7)
	assert.ErrorIs(t, err, ErrAccessDenied)
}
