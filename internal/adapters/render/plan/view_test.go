package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigamonkey/scheduler/internal/application"
	"github.com/gigamonkey/scheduler/internal/domain"
	"github.com/gigamonkey/scheduler/internal/timetable"
)

func solvedMeeting(t *testing.T, name string, participants []string, slot timetable.TimeSlot) *domain.Meeting {
	t.Helper()

	people := make([]domain.Participant, len(participants))
	for i, p := range participants {
		people[i] = domain.Participant{Name: p}
	}

	meeting, err := domain.NewMeeting(name, people, []domain.Slot{slot})
	require.NoError(t, err)

	return meeting
}

func TestRenderSingleSchedule(t *testing.T) {
	slot := timetable.TimeSlot{
		Hour:     9,
		Minute:   30,
		Duration: 15,
		Days:     timetable.EveryDay(2),
	}

	output, err := Render([]application.Solution{
		{
			Meetings: []*domain.Meeting{
				solvedMeeting(t, "standup", []string{"alice", "bob"}, slot),
			},
			GeneratedAt: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		},
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "Meeting Schedule")
	assert.Contains(t, output, "schedules: 1")
	assert.Contains(t, output, "Schedule 1")
	assert.Contains(t, output, "standup")
	assert.Contains(t, output, "09:30 (15 minutes)")
	assert.NotContains(t, output, "alice")
}

func TestRenderShowsParticipantsWhenRequested(t *testing.T) {
	slot := timetable.TimeSlot{Hour: 14, Duration: 60, Days: timetable.EveryDay(1)}

	output, err := Render([]application.Solution{
		{
			Meetings: []*domain.Meeting{
				solvedMeeting(t, "retro", []string{"alice", "bob"}, slot),
			},
		},
	}, RenderOptions{ShowParticipants: true})

	require.NoError(t, err)
	assert.Contains(t, output, "retro")
	assert.Contains(t, output, "(alice, bob)")
}

func TestRenderMultipleSchedules(t *testing.T) {
	morning := timetable.TimeSlot{Hour: 9, Duration: 30, Days: timetable.EveryDay(1)}
	afternoon := timetable.TimeSlot{Hour: 15, Duration: 30, Days: timetable.EveryDay(1)}

	output, err := Render([]application.Solution{
		{Meetings: []*domain.Meeting{solvedMeeting(t, "standup", []string{"alice"}, morning)}},
		{Meetings: []*domain.Meeting{solvedMeeting(t, "standup", []string{"alice"}, afternoon)}},
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "schedules: 2")
	assert.Contains(t, output, "Schedule 1")
	assert.Contains(t, output, "Schedule 2")
	assert.Contains(t, output, "09:00 (30 minutes)")
	assert.Contains(t, output, "15:00 (30 minutes)")
}

func TestRenderEmptyResult(t *testing.T) {
	output, err := Render(nil, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "schedules: 0")
	assert.Contains(t, output, "No feasible schedule.")
}
