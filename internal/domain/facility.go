package domain

// Sport is immutable reference data describing a sport discipline
type Sport struct {
	ID                 int64
	Name               string
	MaxPlayers         int
	DefaultSlotMinutes int
}

// Facility represents a bookable physical resource (court, field, pool) tied to one sport
type Facility struct {
	ID           int64
	Name         string
	Location     string
	PricePerHour float64
	MaxCapacity  int
	IsActive     bool

	Sport     Sport
	Schedules []WeeklySchedule
}

// CanAccommodate returns true if the requested number of seats fits the facility capacity
func (f *Facility) CanAccommodate(seats int) bool {
	return seats > 0 && seats <= f.MaxCapacity
}

// SlotPrice computes the price of one booked slot:
// (slot duration in hours) * price per hour * seats
func (f *Facility) SlotPrice(seats int) float64 {
	durationHours := float64(f.Sport.DefaultSlotMinutes) / 60.0
	return durationHours * f.PricePerHour * float64(seats)
}

// ScheduleByID returns the facility's weekly schedule with the given id, or nil
func (f *Facility) ScheduleByID(scheduleID int64) *WeeklySchedule {
	for i := range f.Schedules {
		if f.Schedules[i].ID == scheduleID {
			return &f.Schedules[i]
		}
	}
	return nil
}
