package timetable

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// MaxWeeks is the longest supported schedule horizon. Day sets are
// packed into a single 64-bit word, one bit per (day, week), which
// keeps TimeSlot a comparable value type.
const MaxWeeks = 64 / DaysPerWeek

// DaySet is a set of (day, week) pairs over the schedule horizon.
type DaySet uint64

// NewDaySet builds a set from explicit (day, week) pairs.
func NewDaySet(pairs ...DayWeek) DaySet {
	var s DaySet
	for _, p := range pairs {
		s = s.Add(p.Day, p.Week)
	}

	return s
}

// EveryDay is the set of all days across the given number of weeks.
func EveryDay(weeks int) DaySet {
	var s DaySet
	for w := 0; w < weeks; w++ {
		for d := Monday; d <= Friday; d++ {
			s = s.Add(d, w)
		}
	}

	return s
}

func dayBit(d Day, week int) DaySet {
	if !d.Valid() || week < 0 || week >= MaxWeeks {
		panic(fmt.Sprintf("day/week out of range: %v week %d", d, week))
	}

	return 1 << (uint(week)*DaysPerWeek + uint(d))
}

func (s DaySet) Add(d Day, week int) DaySet    { return s | dayBit(d, week) }
func (s DaySet) Remove(d Day, week int) DaySet { return s &^ dayBit(d, week) }
func (s DaySet) Has(d Day, week int) bool      { return s&dayBit(d, week) != 0 }

// Intersects reports whether the two sets share any (day, week).
func (s DaySet) Intersects(other DaySet) bool { return s&other != 0 }

// Union returns all (day, week) pairs in either set.
func (s DaySet) Union(other DaySet) DaySet { return s | other }

// Diff returns the pairs in s that are not in other.
func (s DaySet) Diff(other DaySet) DaySet { return s &^ other }

// Count is the number of (day, week) pairs in the set.
func (s DaySet) Count() int { return bits.OnesCount64(uint64(s)) }

func (s DaySet) Empty() bool { return s == 0 }

// String groups the weeks per day, e.g. "Monday weeks 0,2,4; Friday weeks 1,3,5".
func (s DaySet) String() string {
	if s.Empty() {
		return "no days"
	}

	parts := make([]string, 0, DaysPerWeek)
	for d := Monday; d <= Friday; d++ {
		weeks := make([]string, 0, MaxWeeks)
		for w := 0; w < MaxWeeks; w++ {
			if s.Has(d, w) {
				weeks = append(weeks, strconv.Itoa(w))
			}
		}
		if len(weeks) > 0 {
			parts = append(parts, fmt.Sprintf("%s weeks %s", d, strings.Join(weeks, ",")))
		}
	}

	return strings.Join(parts, "; ")
}
