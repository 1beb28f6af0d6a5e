package domain

// Participant is someone (or something, e.g. a room) that can attend
// at most one meeting per overlapping slot. A participant may carry a
// constraint narrowing which slots work for them, for instance a
// working-hours window.
type Participant struct {
	Name       string
	Constraint Predicate
}

// SlotOK reports whether the given slot works for this participant.
// Participants without a constraint accept every slot.
func (p Participant) SlotOK(s Slot) bool {
	if p.Constraint == nil {
		return true
	}

	return p.Constraint(s)
}
