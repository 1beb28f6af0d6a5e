package timetable

import (
	"fmt"

	"github.com/gigamonkey/scheduler/internal/domain"
)

// TimeSlot is a slot on the repeating n-week calendar: a start time
// and duration on a particular set of (day, week) pairs. A daily
// meeting on a six-week calendar has Days covering all thirty days; a
// biweekly one covers three.
type TimeSlot struct {
	Hour     int
	Minute   int
	Duration int // minutes
	Days     DaySet
}

var _ domain.Slot = TimeSlot{}

// Interval returns the start and end of the slot in minutes from
// midnight.
func (t TimeSlot) Interval() (start, end int) {
	start = t.Hour*60 + t.Minute
	return start, start + t.Duration
}

// Overlaps reports whether the two slots conflict: their time
// intervals intersect and they share at least one (day, week). Only
// time slots can be compared with time slots; any other slot kind is a
// contract violation and panics.
func (t TimeSlot) Overlaps(other domain.Slot) bool {
	o, ok := other.(TimeSlot)
	if !ok {
		panic(fmt.Sprintf("timetable: cannot compare TimeSlot with %T", other))
	}

	return t.timeOverlaps(o) && t.Days.Intersects(o.Days)
}

func (t TimeSlot) timeOverlaps(o TimeSlot) bool {
	tStart, tEnd := t.Interval()
	oStart, oEnd := o.Interval()
	return tStart < oEnd && oStart < tEnd
}

// Priority orders trial slots: duration times breadth of recurrence.
// Slots that eat less calendar are tried first.
func (t TimeSlot) Priority() int {
	return t.Duration * t.Days.Count()
}

func (t TimeSlot) String() string {
	return fmt.Sprintf("%02d:%02d (%d minutes) %s", t.Hour, t.Minute, t.Duration, t.Days)
}
