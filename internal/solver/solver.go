// Package solver finds complete schedules by constraint propagation
// and backtracking search. Committing a meeting to a slot eliminates
// every overlapping slot from meetings that share a participant;
// eliminations that force further commitments cascade. Candidate sets
// only ever shrink, so propagation terminates, and a branch whose
// propagation empties any candidate set is abandoned without
// disturbing its siblings.
package solver

import (
	"iter"
	"slices"

	"github.com/gigamonkey/scheduler/internal/domain"
)

// Eliminate removes the slots matching fn from meetings[idx] and
// propagates the consequences, mutating the list in place. Callers
// must pass a list that is safe to mutate, i.e. a branch-local clone.
// The second return value is false when propagation ran into a
// contradiction (some meeting's candidate set became empty). That is a
// normal search outcome, not an error.
func Eliminate(meetings []*domain.Meeting, idx int, fn domain.Predicate) ([]*domain.Meeting, bool) {
	m := meetings[idx]

	if !m.RemoveSlots(fn) {
		return meetings, true
	}

	if m.Impossible() {
		return nil, false
	}

	if m.Scheduled() {
		// The meeting just committed to its last remaining slot. Every
		// meeting sharing a participant loses all slots overlapping it.
		s := m.Slot()
		for i, other := range meetings {
			if i == idx || !m.OverlappingParticipants(other) {
				continue
			}
			if _, ok := Eliminate(meetings, i, s.Overlaps); !ok {
				return nil, false
			}
		}
	}

	return meetings, true
}

// Assign commits meetings[idx] to slot s on a fresh copy of the whole
// list and propagates, leaving the original untouched for sibling
// branches. Returns the fully propagated copy, or ok=false when the
// assignment is contradictory.
func Assign(meetings []*domain.Meeting, idx int, s domain.Slot) ([]*domain.Meeting, bool) {
	branch := make([]*domain.Meeting, len(meetings))
	for i, m := range meetings {
		branch[i] = m.Clone()
	}

	return Eliminate(branch, idx, func(x domain.Slot) bool { return x != s })
}

// Schedules returns a lazy sequence of complete schedules: meeting
// lists in which every meeting is scheduled and no two meetings with a
// shared participant overlap. The sequence is finite and restartable;
// callers bound exploration by simply not consuming further values.
func Schedules(meetings []*domain.Meeting) iter.Seq[[]*domain.Meeting] {
	return func(yield func([]*domain.Meeting) bool) {
		branch, ok := normalize(meetings)
		if !ok {
			return
		}
		search(branch, yield)
	}
}

// normalize clones the input and propagates the commitments of any
// meetings that arrive already scheduled. Without this a pair of
// conflicting single-candidate meetings would be yielded as a complete
// schedule instead of detected as infeasible.
func normalize(meetings []*domain.Meeting) ([]*domain.Meeting, bool) {
	branch := make([]*domain.Meeting, len(meetings))
	for i, m := range meetings {
		branch[i] = m.Clone()
	}

	for i, m := range branch {
		if m.Impossible() {
			return nil, false
		}
		if !m.Scheduled() {
			continue
		}
		s := m.Slot()
		for j, other := range branch {
			if j == i || !m.OverlappingParticipants(other) {
				continue
			}
			if _, ok := Eliminate(branch, j, s.Overlaps); !ok {
				return nil, false
			}
		}
	}

	return branch, true
}

// search is depth-first over trial assignments. It returns false when
// the consumer has stopped taking values, which unwinds the whole
// recursion.
func search(meetings []*domain.Meeting, yield func([]*domain.Meeting) bool) bool {
	idx, ok := mostConstrained(meetings)
	if !ok {
		return yield(meetings)
	}

	for _, s := range trialOrder(meetings[idx].Slots) {
		assigned, ok := Assign(meetings, idx, s)
		if !ok {
			continue
		}
		if !search(assigned, yield) {
			return false
		}
	}

	return true
}

// mostConstrained returns the index of the unscheduled meeting with
// the fewest remaining candidates, or ok=false when every meeting is
// scheduled. The meeting closest to becoming impossible is resolved
// first, pruning the search tree earliest. Branching on exactly one
// meeting per node keeps the enumeration duplicate-free: every
// complete schedule is reachable through any branching meeting, so
// trying alternatives at the same node would only re-find the same
// schedules.
func mostConstrained(meetings []*domain.Meeting) (int, bool) {
	best := -1
	for i, m := range meetings {
		if !m.Unscheduled() {
			continue
		}
		if best < 0 || len(m.Slots) < len(meetings[best].Slots) {
			best = i
		}
	}

	return best, best >= 0
}

// trialOrder sorts candidate slots by ascending priority. The order is
// a search-quality heuristic only; any consistent order yields the
// same set of schedules.
func trialOrder(candidates []domain.Slot) []domain.Slot {
	ordered := slices.Clone(candidates)
	slices.SortStableFunc(ordered, func(a, b domain.Slot) int {
		return a.Priority() - b.Priority()
	})

	return ordered
}
