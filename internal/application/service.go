package application

import (
	"context"
	"fmt"

	"github.com/gigamonkey/scheduler/internal/domain"
	"github.com/gigamonkey/scheduler/internal/ports"
	"github.com/gigamonkey/scheduler/internal/solver"
	"github.com/gigamonkey/scheduler/internal/timetable"
)

// Service turns a schedule definition into solved schedules: it
// expands each meeting's cadence into candidate slots, applies
// participant availability, and runs the solver.
type Service struct {
	schedules ports.ScheduleRepository
	clock     ports.Clock
}

func NewService(schedules ports.ScheduleRepository, clock ports.Clock) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Service{schedules: schedules, clock: clock}
}

// Plan loads the schedule definition and returns up to limit complete
// schedules. A limit of zero or less means all of them, which can be
// combinatorially many; callers wanting a bound should pass one. An
// empty result with a nil error means the definition is infeasible.
func (s *Service) Plan(ctx context.Context, limit int) ([]Solution, error) {
	meetings, err := s.loadMeetings(ctx)
	if err != nil {
		return nil, err
	}

	var solutions []Solution
	for schedule := range solver.Schedules(meetings) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		solutions = append(solutions, Solution{
			Meetings:    schedule,
			GeneratedAt: s.clock.Now(),
		})
		if limit > 0 && len(solutions) >= limit {
			break
		}
	}

	return solutions, nil
}

// Feasible reports whether at least one complete schedule exists. It
// stops the search after the first solution.
func (s *Service) Feasible(ctx context.Context) (bool, error) {
	solutions, err := s.Plan(ctx, 1)
	if err != nil {
		return false, err
	}

	return len(solutions) > 0, nil
}

func (s *Service) loadMeetings(ctx context.Context) ([]*domain.Meeting, error) {
	def, err := s.schedules.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load schedule definition: %w", err)
	}

	return buildMeetings(def)
}

// buildMeetings expands every meeting definition into a domain Meeting
// with its full candidate slot list, already filtered through each
// participant's availability. The solver itself never re-checks
// eligibility.
func buildMeetings(def timetable.Definition) ([]*domain.Meeting, error) {
	meetings := make([]*domain.Meeting, 0, len(def.Meetings))
	seen := make(map[string]struct{}, len(def.Meetings))

	for _, md := range def.Meetings {
		if _, ok := seen[md.Name]; ok {
			return nil, fmt.Errorf("duplicate meeting %q", md.Name)
		}
		seen[md.Name] = struct{}{}

		participants := make([]domain.Participant, 0, len(md.Participants))
		for _, name := range md.Participants {
			participants = append(participants, domain.Participant{
				Name:       name,
				Constraint: availabilityPredicate(def.Availability[name]),
			})
		}

		possible, err := md.Spec.PossibleSlots(def.Window)
		if err != nil {
			return nil, fmt.Errorf("meeting %q: %w", md.Name, err)
		}

		var candidates []domain.Slot
		for slot := range possible {
			if participantsOK(participants, slot) {
				candidates = append(candidates, slot)
			}
		}

		meeting, err := domain.NewMeeting(md.Name, participants, candidates)
		if err != nil {
			return nil, err
		}
		meetings = append(meetings, meeting)
	}

	return meetings, nil
}

func participantsOK(participants []domain.Participant, slot domain.Slot) bool {
	for _, p := range participants {
		if !p.SlotOK(slot) {
			return false
		}
	}

	return true
}

func availabilityPredicate(constraints []timetable.TimeConstraint) domain.Predicate {
	if len(constraints) == 0 {
		return nil
	}

	return func(s domain.Slot) bool {
		slot := s.(timetable.TimeSlot)
		for _, c := range constraints {
			if !c.TimeOK(slot) {
				return false
			}
		}

		return true
	}
}
