package timetable

import (
	"fmt"
	"iter"
)

// Cadence is a recurrence pattern. Given the total schedule horizon in
// weeks (which should be the least common multiple of all the weekly
// cadences being scheduled together), it generates the candidate day
// sets a meeting could occupy to satisfy that cadence.
type Cadence interface {
	// Validate checks the cadence against the horizon. DaysAndWeeks
	// assumes a validated horizon.
	Validate(weeks int) error

	DaysAndWeeks(weeks int) iter.Seq[DaySet]
}

func validateHorizon(weeks int) error {
	if weeks < 1 || weeks > MaxWeeks {
		return fmt.Errorf("schedule horizon must be between 1 and %d weeks, got %d", MaxWeeks, weeks)
	}

	return nil
}

// Daily recurs every day at the same time.
type Daily struct{}

func (Daily) Validate(weeks int) error {
	return validateHorizon(weeks)
}

// DaysAndWeeks yields the single way to schedule a daily meeting:
// every day of every week.
func (Daily) DaysAndWeeks(weeks int) iter.Seq[DaySet] {
	return func(yield func(DaySet) bool) {
		yield(EveryDay(weeks))
	}
}

// Weekly recurs once every Every weeks, on any day.
type Weekly struct {
	Every int
}

func (c Weekly) Validate(weeks int) error {
	if err := validateHorizon(weeks); err != nil {
		return err
	}
	if c.Every < 1 {
		return fmt.Errorf("weekly cadence must be at least 1, got %d", c.Every)
	}
	if weeks%c.Every != 0 {
		return fmt.Errorf("weekly cadence %d does not divide %d-week horizon", c.Every, weeks)
	}

	return nil
}

// DaysAndWeeks yields one day set per (day, week offset) pair: a
// meeting every other week, say, can land on any day with either week
// parity.
func (c Weekly) DaysAndWeeks(weeks int) iter.Seq[DaySet] {
	return func(yield func(DaySet) bool) {
		for offset := 0; offset < c.Every; offset++ {
			for d := Monday; d <= Friday; d++ {
				var s DaySet
				for w := 0; w < weeks; w += c.Every {
					s = s.Add(d, w+offset)
				}
				if !yield(s) {
					return
				}
			}
		}
	}
}

// WeeklyOn recurs every Every weeks, but only on the given days.
type WeeklyOn struct {
	Every int
	Days  []Day
}

func (c WeeklyOn) Validate(weeks int) error {
	if err := (Weekly{Every: c.Every}).Validate(weeks); err != nil {
		return err
	}
	if len(c.Days) == 0 {
		return fmt.Errorf("weekly cadence needs at least one day")
	}
	for _, d := range c.Days {
		if !d.Valid() {
			return fmt.Errorf("invalid day %d", d)
		}
	}

	return nil
}

// DaysAndWeeks yields one day set per week offset, each covering all
// of the cadence's days in the matching weeks.
func (c WeeklyOn) DaysAndWeeks(weeks int) iter.Seq[DaySet] {
	return func(yield func(DaySet) bool) {
		for offset := 0; offset < c.Every; offset++ {
			var s DaySet
			for _, d := range c.Days {
				for w := 0; w < weeks; w += c.Every {
					s = s.Add(d, w+offset)
				}
			}
			if !yield(s) {
				return
			}
		}
	}
}

// Sprint recurs on a specific day in a specific week (first or second)
// of a repeating two-week sprint.
type Sprint struct {
	Day  Day
	Week int // 0 or 1: which week of the sprint
}

func (c Sprint) Validate(weeks int) error {
	if err := validateHorizon(weeks); err != nil {
		return err
	}
	if weeks%2 != 0 {
		return fmt.Errorf("sprint cadence needs an even horizon, got %d weeks", weeks)
	}
	if !c.Day.Valid() {
		return fmt.Errorf("invalid day %d", c.Day)
	}
	if c.Week != 0 && c.Week != 1 {
		return fmt.Errorf("sprint week must be 0 or 1, got %d", c.Week)
	}

	return nil
}

func (c Sprint) DaysAndWeeks(weeks int) iter.Seq[DaySet] {
	return func(yield func(DaySet) bool) {
		var s DaySet
		for w := 0; w < weeks; w += 2 {
			s = s.Add(c.Day, w+c.Week)
		}
		yield(s)
	}
}

// DailyExcept recurs daily except on specific sprint-relative days:
// each excluded DayWeek names a day and a week (0 or 1) within the
// repeating two-week sprint.
type DailyExcept struct {
	Except []DayWeek
}

func (c DailyExcept) Validate(weeks int) error {
	if err := validateHorizon(weeks); err != nil {
		return err
	}
	if weeks%2 != 0 {
		return fmt.Errorf("sprint cadence needs an even horizon, got %d weeks", weeks)
	}
	for _, dw := range c.Except {
		if !dw.Day.Valid() {
			return fmt.Errorf("invalid day %d", dw.Day)
		}
		if dw.Week != 0 && dw.Week != 1 {
			return fmt.Errorf("sprint week must be 0 or 1, got %d", dw.Week)
		}
	}

	return nil
}

func (c DailyExcept) DaysAndWeeks(weeks int) iter.Seq[DaySet] {
	return func(yield func(DaySet) bool) {
		var excluded DaySet
		for _, dw := range c.Except {
			for w := 0; w < weeks; w += 2 {
				excluded = excluded.Add(dw.Day, w+dw.Week)
			}
		}
		yield(EveryDay(weeks).Diff(excluded))
	}
}
