package timetable

import (
	"fmt"
	"iter"
)

// Window is the daily window in which meetings may be placed and the
// overall schedule horizon.
type Window struct {
	StartHour int
	EndHour   int
	Increment int // minutes between candidate start times
	Weeks     int
}

func (w Window) Validate() error {
	if w.StartHour < 0 || w.EndHour > 24 || w.StartHour >= w.EndHour {
		return fmt.Errorf("invalid daily window %d:00-%d:00", w.StartHour, w.EndHour)
	}
	if w.Increment < 1 || w.Increment > 60 {
		return fmt.Errorf("increment must be between 1 and 60 minutes, got %d", w.Increment)
	}

	return validateHorizon(w.Weeks)
}

// MeetingSpec describes when a meeting can happen: how often, for how
// long, and any constraint on its start time.
type MeetingSpec struct {
	Cadence    Cadence
	Duration   int // minutes
	Constraint TimeConstraint
}

// PossibleSlots enumerates every candidate TimeSlot for the spec
// within the window: each start time on the increment grid whose end
// still fits in the day, crossed with each day set the cadence allows.
func (ms MeetingSpec) PossibleSlots(w Window) (iter.Seq[TimeSlot], error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if ms.Duration < 1 {
		return nil, fmt.Errorf("duration must be positive, got %d", ms.Duration)
	}
	if ms.Cadence == nil {
		return nil, fmt.Errorf("cadence is required")
	}
	if err := ms.Cadence.Validate(w.Weeks); err != nil {
		return nil, err
	}

	constraint := ms.Constraint
	if constraint == nil {
		constraint = AnyTime{}
	}
	dayEnd := w.EndHour * 60

	return func(yield func(TimeSlot) bool) {
		for h := w.StartHour; h < w.EndHour; h++ {
			for m := 0; m < 60; m += w.Increment {
				for days := range ms.Cadence.DaysAndWeeks(w.Weeks) {
					slot := TimeSlot{Hour: h, Minute: m, Duration: ms.Duration, Days: days}
					if _, end := slot.Interval(); end > dayEnd {
						continue
					}
					if !constraint.TimeOK(slot) {
						continue
					}
					if !yield(slot) {
						return
					}
				}
			}
		}
	}, nil
}

// LCM returns the least common multiple, used to pick a schedule
// horizon covering several weekly cadences.
func LCM(a, b int) int {
	return a / gcd(a, b) * b
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
