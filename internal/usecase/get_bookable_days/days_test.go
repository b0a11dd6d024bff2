package get_bookable_days

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playgrid/facility-booking/internal/domain"
	"github.com/playgrid/facility-booking/pkg/types"
)

func TestBookableDays_SkipsDaysWithoutSchedules(t *testing.T) {
	schedules := []domain.WeeklySchedule{
		{ID: 1, DayOfWeek: 0, StartTime: types.TimeString("10:00"), EndTime: types.TimeString("12:00")},
	}

	// 2025-10-12 - воскресенье; в 7-дневном окне ровно одно воскресенье
	start := time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC)

	var collected []BookableDay
	for day := range bookableDays(schedules, start, 7) {
		collected = append(collected, day)
	}

	require.Len(t, collected, 1)
	assert.Equal(t, start, collected[0].Date)
	assert.Equal(t, time.Sunday, collected[0].Date.Weekday())
}

func TestBookableDays_EmptySchedules(t *testing.T) {
	start := time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC)

	count := 0
	for range bookableDays(nil, start, 7) {
		count++
	}
	assert.Zero(t, count)
}

// Последовательность должна допускать повторный обход с тем же результатом
func TestBookableDays_Restartable(t *testing.T) {
	schedules := []domain.WeeklySchedule{
		{ID: 1, DayOfWeek: 1, StartTime: types.TimeString("08:00"), EndTime: types.TimeString("10:00")},
		{ID: 2, DayOfWeek: 3, StartTime: types.TimeString("18:00"), EndTime: types.TimeString("20:00")},
	}
	start := time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC)

	seq := bookableDays(schedules, start, 14)

	var first, second []time.Time
	for day := range seq {
		first = append(first, day.Date)
	}
	for day := range seq {
		second = append(second, day.Date)
	}

	assert.Equal(t, first, second)
	assert.Len(t, first, 4)
}

func TestBookableDays_EarlyBreak(t *testing.T) {
	schedules := []domain.WeeklySchedule{
		{ID: 1, DayOfWeek: 1, StartTime: types.TimeString("08:00"), EndTime: types.TimeString("10:00")},
	}
	start := time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC)

	count := 0
	for range bookableDays(schedules, start, 31) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestTruncateToDate(t *testing.T) {
	moment := time.Date(2025, 10, 12, 15, 30, 45, 123, time.UTC)
	assert.Equal(t, time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC), truncateToDate(moment))
}
