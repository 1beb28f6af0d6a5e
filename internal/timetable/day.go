// Package timetable generates candidate time slots for meetings on a
// repeating multi-week calendar. A recurrence cadence expands into the
// possible (day, week) combinations over the schedule horizon, and a
// meeting spec combines a cadence, a duration, and a start-time
// constraint into concrete TimeSlot candidates for the solver.
package timetable

// Day is a day of the work week.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday

	// DaysPerWeek is the number of schedulable days in a week.
	DaysPerWeek = 5
)

var dayNames = [DaysPerWeek]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

func (d Day) String() string {
	if d < Monday || d > Friday {
		return "Day(?)"
	}

	return dayNames[d]
}

// Valid reports whether d names a work day.
func (d Day) Valid() bool {
	return d >= Monday && d <= Friday
}

// DayWeek is a specific day in a specific week of the schedule.
type DayWeek struct {
	Day  Day
	Week int
}
