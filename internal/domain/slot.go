// Package domain holds the core scheduling model: slots, participants,
// and meetings. A schedule places every meeting into exactly one slot
// such that no two meetings with a shared participant occupy
// overlapping slots.
package domain

// Slot is a time a thing can be scheduled. Slots are somewhat
// abstract: a concrete time on a calendar, a recurring window ("60
// minutes every Monday at 9am"), or another dimension entirely such as
// a room. Implementations must be comparable value types so that two
// slots can be checked for identity with ==.
type Slot interface {
	// Overlaps reports whether the two slots conflict. Equal slots
	// always overlap. Implementations must panic when given a slot of
	// an incompatible concrete type: silently treating incomparable
	// slots as non-overlapping would corrupt propagation.
	Overlaps(other Slot) bool

	// Priority is a search-order hint. Lower-priority slots are tried
	// first. It has no bearing on which schedules are valid, only on
	// the order in which they are found.
	Priority() int
}

// Predicate selects slots, typically for removal from a meeting's
// candidate set.
type Predicate func(Slot) bool
