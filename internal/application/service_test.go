package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigamonkey/scheduler/internal/domain"
	"github.com/gigamonkey/scheduler/internal/timetable"
)

type fakeScheduleRepository struct {
	def timetable.Definition
	err error
}

func (f fakeScheduleRepository) Load(context.Context) (timetable.Definition, error) {
	return f.def, f.err
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func testWindow() timetable.Window {
	return timetable.Window{StartHour: 12, EndHour: 14, Increment: 60, Weeks: 2}
}

func TestPlanFindsSoundSchedules(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	def := timetable.Definition{
		Window: testWindow(),
		Meetings: []timetable.MeetingDefinition{
			{
				Name:         "standup",
				Participants: []string{"alice", "bob"},
				Spec:         timetable.MeetingSpec{Cadence: timetable.Daily{}, Duration: 60},
			},
			{
				Name:         "one-on-one",
				Participants: []string{"alice", "carol"},
				Spec:         timetable.MeetingSpec{Cadence: timetable.Daily{}, Duration: 60},
			},
		},
	}

	service := NewService(fakeScheduleRepository{def: def}, fixedClock{now: now})

	solutions, err := service.Plan(context.Background(), 5)
	require.NoError(t, err)
	require.NotEmpty(t, solutions)

	for _, solution := range solutions {
		assert.Equal(t, now, solution.GeneratedAt)
		require.Len(t, solution.Meetings, 2)
		a, b := solution.Meetings[0], solution.Meetings[1]
		assert.True(t, a.Scheduled())
		assert.True(t, b.Scheduled())
		// Both meetings include alice, so their slots must not clash.
		assert.False(t, a.Slot().Overlaps(b.Slot()))
	}
}

func TestPlanHonorsLimit(t *testing.T) {
	t.Parallel()

	def := timetable.Definition{
		Window: testWindow(),
		Meetings: []timetable.MeetingDefinition{
			{
				Name:         "standup",
				Participants: []string{"alice"},
				Spec:         timetable.MeetingSpec{Cadence: timetable.Daily{}, Duration: 60},
			},
		},
	}

	service := NewService(fakeScheduleRepository{def: def}, nil)

	one, err := service.Plan(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, one, 1)

	all, err := service.Plan(context.Background(), 0)
	require.NoError(t, err)
	assert.Greater(t, len(all), 1)
}

func TestPlanAppliesParticipantAvailability(t *testing.T) {
	t.Parallel()

	def := timetable.Definition{
		Window: testWindow(),
		Meetings: []timetable.MeetingDefinition{
			{
				Name:         "review",
				Participants: []string{"alice"},
				Spec:         timetable.MeetingSpec{Cadence: timetable.Daily{}, Duration: 60},
			},
		},
		Availability: map[string][]timetable.TimeConstraint{
			"alice": {timetable.AtOrAfter{Hour: 13}},
		},
	}

	service := NewService(fakeScheduleRepository{def: def}, nil)

	solutions, err := service.Plan(context.Background(), 0)
	require.NoError(t, err)
	require.NotEmpty(t, solutions)

	for _, solution := range solutions {
		slot := solution.Meetings[0].Slot().(timetable.TimeSlot)
		assert.GreaterOrEqual(t, slot.Hour, 13)
	}
}

func TestPlanRejectsFullyUnavailableParticipant(t *testing.T) {
	t.Parallel()

	def := timetable.Definition{
		Window: testWindow(),
		Meetings: []timetable.MeetingDefinition{
			{
				Name:         "review",
				Participants: []string{"alice"},
				Spec:         timetable.MeetingSpec{Cadence: timetable.Daily{}, Duration: 60},
			},
		},
		Availability: map[string][]timetable.TimeConstraint{
			// Nothing before 14:00 exists in a 12:00-14:00 window for
			// a 60 minute meeting.
			"alice": {timetable.AtOrAfter{Hour: 14}},
		},
	}

	service := NewService(fakeScheduleRepository{def: def}, nil)

	_, err := service.Plan(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrNoCandidateSlots)
}

func TestPlanRejectsDuplicateMeetingNames(t *testing.T) {
	t.Parallel()

	md := timetable.MeetingDefinition{
		Name:         "standup",
		Participants: []string{"alice"},
		Spec:         timetable.MeetingSpec{Cadence: timetable.Daily{}, Duration: 60},
	}
	def := timetable.Definition{Window: testWindow(), Meetings: []timetable.MeetingDefinition{md, md}}

	service := NewService(fakeScheduleRepository{def: def}, nil)

	_, err := service.Plan(context.Background(), 1)
	assert.ErrorContains(t, err, `duplicate meeting "standup"`)
}

func TestPlanWrapsRepositoryError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("boom")
	service := NewService(fakeScheduleRepository{err: wantErr}, nil)

	_, err := service.Plan(context.Background(), 1)
	assert.ErrorIs(t, err, wantErr)
}

func TestPlanStopsOnCancelledContext(t *testing.T) {
	t.Parallel()

	def := timetable.Definition{
		Window: testWindow(),
		Meetings: []timetable.MeetingDefinition{
			{
				Name:         "standup",
				Participants: []string{"alice"},
				Spec:         timetable.MeetingSpec{Cadence: timetable.Daily{}, Duration: 60},
			},
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	service := NewService(fakeScheduleRepository{def: def}, nil)

	_, err := service.Plan(ctx, 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFeasible(t *testing.T) {
	t.Parallel()

	feasible := timetable.Definition{
		Window: testWindow(),
		Meetings: []timetable.MeetingDefinition{
			{
				Name:         "standup",
				Participants: []string{"alice"},
				Spec:         timetable.MeetingSpec{Cadence: timetable.Daily{}, Duration: 60},
			},
		},
	}

	// Two meetings that share a participant and are both pinned to the
	// single 12:00 daily slot cannot coexist.
	infeasible := timetable.Definition{
		Window: timetable.Window{StartHour: 12, EndHour: 13, Increment: 60, Weeks: 2},
		Meetings: []timetable.MeetingDefinition{
			{
				Name:         "a",
				Participants: []string{"alice"},
				Spec:         timetable.MeetingSpec{Cadence: timetable.Daily{}, Duration: 60},
			},
			{
				Name:         "b",
				Participants: []string{"alice"},
				Spec:         timetable.MeetingSpec{Cadence: timetable.Daily{}, Duration: 60},
			},
		},
	}

	service := NewService(fakeScheduleRepository{def: feasible}, nil)
	ok, err := service.Feasible(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)

	service = NewService(fakeScheduleRepository{def: infeasible}, nil)
	ok, err = service.Feasible(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}
