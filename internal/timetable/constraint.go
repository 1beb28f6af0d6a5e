package timetable

// TimeConstraint narrows the start times a meeting (or a participant)
// will accept.
type TimeConstraint interface {
	TimeOK(slot TimeSlot) bool
}

func startMinute(hour, minute int) int { return hour*60 + minute }

// At requires the meeting to start at exactly the given time.
type At struct {
	Hour   int
	Minute int
}

func (c At) TimeOK(slot TimeSlot) bool {
	return c.Hour == slot.Hour && c.Minute == slot.Minute
}

// AtOrBefore requires the meeting to start at or before the given time.
type AtOrBefore struct {
	Hour   int
	Minute int
}

func (c AtOrBefore) TimeOK(slot TimeSlot) bool {
	return startMinute(slot.Hour, slot.Minute) <= startMinute(c.Hour, c.Minute)
}

// AtOrAfter requires the meeting to start at or after the given time.
type AtOrAfter struct {
	Hour   int
	Minute int
}

func (c AtOrAfter) TimeOK(slot TimeSlot) bool {
	return startMinute(slot.Hour, slot.Minute) >= startMinute(c.Hour, c.Minute)
}

// AnyTime accepts every start time.
type AnyTime struct{}

func (AnyTime) TimeOK(TimeSlot) bool { return true }
