package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFacility_CanAccommodate(t *testing.T) {
	facility := &Facility{MaxCapacity: 4}

	assert.True(t, facility.CanAccommodate(1))
	assert.True(t, facility.CanAccommodate(4))
	assert.False(t, facility.CanAccommodate(5))
	assert.False(t, facility.CanAccommodate(0))
	assert.False(t, facility.CanAccommodate(-1))
}

func TestFacility_SlotPrice(t *testing.T) {
	tests := []struct {
		name         string
		slotMinutes  int
		pricePerHour float64
		seats        int
		expected     float64
	}{
		{name: "hour slot two seats", slotMinutes: 60, pricePerHour: 20.0, seats: 2, expected: 40.0},
		{name: "hour slot one seat", slotMinutes: 60, pricePerHour: 20.0, seats: 1, expected: 20.0},
		{name: "half hour slot", slotMinutes: 30, pricePerHour: 20.0, seats: 2, expected: 20.0},
		{name: "ninety minutes", slotMinutes: 90, pricePerHour: 30.0, seats: 3, expected: 135.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facility := &Facility{
				PricePerHour: tt.pricePerHour,
				Sport:        Sport{DefaultSlotMinutes: tt.slotMinutes},
			}
			assert.InDelta(t, tt.expected, facility.SlotPrice(tt.seats), 0.001)
		})
	}
}

func TestFacility_ScheduleByID(t *testing.T) {
	facility := &Facility{
		Schedules: []WeeklySchedule{
			{ID: 10, DayOfWeek: 1},
			{ID: 20, DayOfWeek: 3},
		},
	}

	schedule := facility.ScheduleByID(20)
	assert.NotNil(t, schedule)
	assert.Equal(t, 3, schedule.DayOfWeek)

	assert.Nil(t, facility.ScheduleByID(999))
}
