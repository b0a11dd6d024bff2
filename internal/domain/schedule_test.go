package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/playgrid/facility-booking/pkg/types"
)

func TestWeeklySchedule_Validate(t *testing.T) {
	tests := []struct {
		name     string
		schedule WeeklySchedule
		wantErr  bool
	}{
		{
			name:     "valid schedule",
			schedule: WeeklySchedule{DayOfWeek: 1, StartTime: "08:00", EndTime: "10:00"},
		},
		{
			name:     "sunday is zero",
			schedule: WeeklySchedule{DayOfWeek: 0, StartTime: "08:00", EndTime: "10:00"},
		},
		{
			name:     "day out of range",
			schedule: WeeklySchedule{DayOfWeek: 7, StartTime: "08:00", EndTime: "10:00"},
			wantErr:  true,
		},
		{
			name:     "negative day",
			schedule: WeeklySchedule{DayOfWeek: -1, StartTime: "08:00", EndTime: "10:00"},
			wantErr:  true,
		},
		{
			name:     "start equals end",
			schedule: WeeklySchedule{DayOfWeek: 1, StartTime: "08:00", EndTime: "08:00"},
			wantErr:  true,
		},
		{
			name:     "start after end",
			schedule: WeeklySchedule{DayOfWeek: 1, StartTime: "10:00", EndTime: "08:00"},
			wantErr:  true,
		},
		{
			name:     "invalid start time",
			schedule: WeeklySchedule{DayOfWeek: 1, StartTime: "25:00", EndTime: "10:00"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schedule.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWeeklySchedule_MatchesDate(t *testing.T) {
	sunday := WeeklySchedule{DayOfWeek: 0, StartTime: types.TimeString("10:00"), EndTime: types.TimeString("12:00")}
	monday := WeeklySchedule{DayOfWeek: 1, StartTime: types.TimeString("08:00"), EndTime: types.TimeString("10:00")}

	// 2025-10-12 - воскресенье, 2025-10-13 - понедельник
	sundayDate := time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC)
	mondayDate := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

	assert.True(t, sunday.MatchesDate(sundayDate))
	assert.False(t, sunday.MatchesDate(mondayDate))
	assert.True(t, monday.MatchesDate(mondayDate))
	assert.False(t, monday.MatchesDate(sundayDate))
}
