package timetable

// MeetingDefinition names a meeting, its participants, and the spec
// that generates its candidate slots.
type MeetingDefinition struct {
	Name         string
	Participants []string
	Spec         MeetingSpec
}

// Definition is a complete schedule definition as loaded from
// configuration: the placement window plus every meeting to schedule,
// and any per-participant availability constraints keyed by
// participant name.
type Definition struct {
	Window       Window
	Meetings     []MeetingDefinition
	Availability map[string][]TimeConstraint
}
