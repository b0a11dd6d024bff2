package domain

import (
	"fmt"
	"time"

	"github.com/playgrid/facility-booking/pkg/types"
)

// WeeklySchedule represents a recurring weekly opening window for a facility.
// DayOfWeek is Sunday-based: Sunday=0 ... Saturday=6, matching time.Weekday.
// An off-by-one in this convention silently hides every schedule, so the
// mapping goes through time.Weekday only.
type WeeklySchedule struct {
	ID         int64
	FacilityID int64
	DayOfWeek  int
	StartTime  types.TimeString
	EndTime    types.TimeString
}

// Validate checks the schedule invariants: a valid day and start before end
func (s *WeeklySchedule) Validate() error {
	if s.DayOfWeek < int(time.Sunday) || s.DayOfWeek > int(time.Saturday) {
		return fmt.Errorf("weekly schedule: day_of_week %d out of range [0,6]", s.DayOfWeek)
	}
	if err := s.StartTime.Validate(); err != nil {
		return fmt.Errorf("weekly schedule: %w", err)
	}
	if err := s.EndTime.Validate(); err != nil {
		return fmt.Errorf("weekly schedule: %w", err)
	}
	if !s.StartTime.IsBefore(s.EndTime) {
		return fmt.Errorf("weekly schedule: start_time %s must be before end_time %s", s.StartTime, s.EndTime)
	}
	return nil
}

// MatchesDate returns true if the schedule recurs on the given calendar date
func (s *WeeklySchedule) MatchesDate(date time.Time) bool {
	return s.DayOfWeek == int(date.Weekday())
}
