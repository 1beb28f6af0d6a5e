package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Meeting is a thing to be scheduled: a named unit of work with a set
// of participants and a shrinking list of candidate slots. During
// search a meeting is always in exactly one of three states:
// impossible (no candidates left), scheduled (exactly one), or
// unscheduled (more than one).
type Meeting struct {
	Name         string
	Participants []Participant
	Slots        []Slot
}

// NewMeeting builds a meeting from its full initial candidate set. A
// meeting with no candidate slots is unconstructable rather than
// merely impossible, so an empty slot list is rejected here instead of
// being discovered deep inside search. Participants are deduplicated
// by name; blank names are dropped.
func NewMeeting(name string, participants []Participant, slots []Slot) (*Meeting, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNoName
	}
	if len(slots) == 0 {
		return nil, fmt.Errorf("meeting %q: %w", name, ErrNoCandidateSlots)
	}

	return &Meeting{
		Name:         name,
		Participants: normalizeParticipants(participants),
		Slots:        slices.Clone(slots),
	}, nil
}

func normalizeParticipants(participants []Participant) []Participant {
	normalized := make([]Participant, 0, len(participants))
	seen := make(map[string]struct{}, len(participants))
	for _, p := range participants {
		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" {
			continue
		}
		if _, ok := seen[p.Name]; ok {
			continue
		}
		seen[p.Name] = struct{}{}
		normalized = append(normalized, p)
	}

	return normalized
}

// Clone returns an independent copy. Search branches clone the whole
// meeting list before committing a trial assignment so that a failed
// branch never corrupts its siblings.
func (m *Meeting) Clone() *Meeting {
	return &Meeting{
		Name:         m.Name,
		Participants: slices.Clone(m.Participants),
		Slots:        slices.Clone(m.Slots),
	}
}

// RemoveSlots drops every candidate slot matching the predicate,
// preserving the order of the survivors, and reports whether the
// candidate set actually shrank. A no-op removal must not look like a
// change: the scheduler uses the return value to decide whether to
// re-propagate.
func (m *Meeting) RemoveSlots(fn Predicate) bool {
	kept := m.Slots[:0:len(m.Slots)]
	for _, s := range m.Slots {
		if !fn(s) {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(m.Slots) {
		return false
	}

	m.Slots = kept
	return true
}

// Impossible reports that every candidate slot has been eliminated.
func (m *Meeting) Impossible() bool { return len(m.Slots) == 0 }

// Scheduled reports that exactly one candidate slot remains.
func (m *Meeting) Scheduled() bool { return len(m.Slots) == 1 }

// Unscheduled reports that more than one candidate slot remains.
func (m *Meeting) Unscheduled() bool { return len(m.Slots) > 1 }

// Slot returns the committed slot of a scheduled meeting. It is only
// meaningful once Scheduled reports true.
func (m *Meeting) Slot() Slot { return m.Slots[0] }

// OverlappingParticipants reports whether the two meetings share at
// least one participant, i.e. whether committing one of them to a slot
// constrains the other.
func (m *Meeting) OverlappingParticipants(other *Meeting) bool {
	for _, p := range m.Participants {
		for _, q := range other.Participants {
			if p.Name == q.Name {
				return true
			}
		}
	}

	return false
}

// SlotOK reports whether the slot works for every participant. This
// aggregate check belongs to slot generation: candidates should be
// filtered through it before they ever reach a meeting, so the search
// itself never needs to re-ask.
func (m *Meeting) SlotOK(s Slot) bool {
	for _, p := range m.Participants {
		if !p.SlotOK(s) {
			return false
		}
	}

	return true
}

func (m *Meeting) String() string {
	names := make([]string, len(m.Participants))
	for i, p := range m.Participants {
		names[i] = p.Name
	}
	slices.Sort(names)

	switch {
	case m.Impossible():
		return fmt.Sprintf("%s (%s): impossible", m.Name, strings.Join(names, ", "))
	case m.Scheduled():
		return fmt.Sprintf("%s (%s): slot: %v", m.Name, strings.Join(names, ", "), m.Slot())
	default:
		return fmt.Sprintf("%s (%s): %d candidate slots", m.Name, strings.Join(names, ", "), len(m.Slots))
	}
}
