package get_bookable_days

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playgrid/facility-booking/internal/domain"
	facilityRepo "github.com/playgrid/facility-booking/internal/infra/storage/facility"
	"github.com/playgrid/facility-booking/pkg/types"
)

type fakeFacilityRepo struct {
	facility *domain.Facility
}

func (r *fakeFacilityRepo) GetByID(_ context.Context, id int64) (*domain.Facility, error) {
	if r.facility == nil || r.facility.ID != id {
		return nil, facilityRepo.ErrFacilityNotFound
	}
	return r.facility, nil
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

// Объект с расписаниями: понедельник 08:00 и 09:00, среда 18:00
func testFacility() *domain.Facility {
	return &domain.Facility{
		ID:           1,
		Name:         "Большой зал",
		PricePerHour: 30.0,
		MaxCapacity:  10,
		IsActive:     true,
		Sport: domain.Sport{
			ID:                 2,
			Name:               "Баскетбол",
			MaxPlayers:         10,
			DefaultSlotMinutes: 90,
		},
		Schedules: []domain.WeeklySchedule{
			{ID: 1, FacilityID: 1, DayOfWeek: 1, StartTime: types.TimeString("08:00"), EndTime: types.TimeString("10:00")},
			{ID: 2, FacilityID: 1, DayOfWeek: 1, StartTime: types.TimeString("09:00"), EndTime: types.TimeString("11:00")},
			{ID: 3, FacilityID: 1, DayOfWeek: 3, StartTime: types.TimeString("18:00"), EndTime: types.TimeString("20:00")},
		},
	}
}

func newTestUseCase(facility *domain.Facility, now time.Time) *UseCase {
	uc := NewUseCase(&fakeFacilityRepo{facility: facility}, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

// 2025-10-12 - воскресенье
var testNow = time.Date(2025, 10, 12, 15, 30, 0, 0, time.UTC)

func TestExecute_WeekWindow(t *testing.T) {
	uc := newTestUseCase(testFacility(), testNow)

	resp, err := uc.Execute(context.Background(), &Request{FacilityID: 1})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.FacilityID)
	assert.Equal(t, domain.DefaultBookableDays, resp.Days)
	assert.Equal(t, 90, resp.SlotMinutes)
	// Время начала окна обнуляется до даты
	assert.Equal(t, time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC), resp.StartDate)

	// В окне вс 12.10 - сб 18.10: понедельник 13.10 и среда 15.10
	require.Len(t, resp.BookableDays, 2)

	monday := resp.BookableDays[0]
	assert.Equal(t, time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC), monday.Date)
	assert.Equal(t, 1, monday.DayOfWeek)
	require.Len(t, monday.Schedules, 2)
	assert.Equal(t, int64(1), monday.Schedules[0].ID)
	assert.Equal(t, "08:00", monday.Schedules[0].StartTime.String())
	assert.Equal(t, int64(2), monday.Schedules[1].ID)

	wednesday := resp.BookableDays[1]
	assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), wednesday.Date)
	assert.Equal(t, 3, wednesday.DayOfWeek)
	require.Len(t, wednesday.Schedules, 1)
	assert.Equal(t, "18:00", wednesday.Schedules[0].StartTime.String())
}

func TestExecute_ExplicitStartAndDays(t *testing.T) {
	uc := newTestUseCase(testFacility(), testNow)

	// Окно пн 13.10 - вт 14.10: только понедельник попадает
	resp, err := uc.Execute(context.Background(), &Request{
		FacilityID: 1,
		StartDate:  time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
		Days:       2,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Days)
	require.Len(t, resp.BookableDays, 1)
	assert.Equal(t, 1, resp.BookableDays[0].DayOfWeek)
}

func TestExecute_NoSchedulesInWindow(t *testing.T) {
	uc := newTestUseCase(testFacility(), testNow)

	// Окно чт 16.10 - сб 18.10: расписаний нет
	resp, err := uc.Execute(context.Background(), &Request{
		FacilityID: 1,
		StartDate:  time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC),
		Days:       3,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.BookableDays)
}

func TestExecute_FacilityNotFound(t *testing.T) {
	uc := newTestUseCase(testFacility(), testNow)

	_, err := uc.Execute(context.Background(), &Request{FacilityID: 999})
	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{name: "zero facility id", req: &Request{FacilityID: 0}},
		{name: "negative days", req: &Request{FacilityID: 1, Days: -1}},
		{name: "days above maximum", req: &Request{FacilityID: 1, Days: domain.MaxBookableDays + 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(testFacility(), testNow)

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
