package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSlot is the simplest possible slot: identity-only overlap, a
// fixed priority.
type stubSlot struct {
	name string
	pri  int
}

func (s stubSlot) Overlaps(other Slot) bool { return s == other.(stubSlot) }
func (s stubSlot) Priority() int            { return s.pri }
func (s stubSlot) String() string           { return s.name }

func slots(names ...string) []Slot {
	out := make([]Slot, len(names))
	for i, n := range names {
		out[i] = stubSlot{name: n}
	}
	return out
}

func participants(names ...string) []Participant {
	out := make([]Participant, len(names))
	for i, n := range names {
		out[i] = Participant{Name: n}
	}
	return out
}

func TestNewMeetingValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		meetingName string
		slots       []Slot
		wantErr     error
	}{
		{name: "valid", meetingName: "standup", slots: slots("1")},
		{name: "empty slots", meetingName: "standup", slots: nil, wantErr: ErrNoCandidateSlots},
		{name: "blank name", meetingName: "  ", slots: slots("1"), wantErr: ErrNoName},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := NewMeeting(tc.meetingName, participants("x"), tc.slots)
			if tc.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tc.meetingName, m.Name)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestNewMeetingDeduplicatesParticipants(t *testing.T) {
	t.Parallel()

	m, err := NewMeeting("standup", participants("x", "", "y", "x", " y "), slots("1"))
	require.NoError(t, err)

	names := make([]string, len(m.Participants))
	for i, p := range m.Participants {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"x", "y"}, names)
}

func TestRemoveSlotsReportsShrinkAndPreservesOrder(t *testing.T) {
	t.Parallel()

	m, err := NewMeeting("standup", participants("x"), slots("1", "2", "3", "4"))
	require.NoError(t, err)

	changed := m.RemoveSlots(func(s Slot) bool { return s.(stubSlot).name == "2" })
	assert.True(t, changed)
	assert.Equal(t, slots("1", "3", "4"), m.Slots)
}

func TestRemoveSlotsMatchingNothingIsANoOp(t *testing.T) {
	t.Parallel()

	m, err := NewMeeting("standup", participants("x"), slots("1", "2", "3"))
	require.NoError(t, err)

	changed := m.RemoveSlots(func(Slot) bool { return false })
	assert.False(t, changed)
	assert.Equal(t, slots("1", "2", "3"), m.Slots)
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	original, err := NewMeeting("standup", participants("x", "y"), slots("1", "2"))
	require.NoError(t, err)

	clone := original.Clone()
	clone.RemoveSlots(func(s Slot) bool { return s.(stubSlot).name == "1" })
	clone.Participants[0].Name = "z"

	assert.Equal(t, slots("1", "2"), original.Slots)
	assert.Equal(t, "x", original.Participants[0].Name)
	assert.Equal(t, slots("2"), clone.Slots)
}

func TestStatePredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		slots       []Slot
		impossible  bool
		scheduled   bool
		unscheduled bool
	}{
		{name: "impossible", slots: nil, impossible: true},
		{name: "scheduled", slots: slots("1"), scheduled: true},
		{name: "unscheduled", slots: slots("1", "2"), unscheduled: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := &Meeting{Name: "m", Slots: tc.slots}
			assert.Equal(t, tc.impossible, m.Impossible())
			assert.Equal(t, tc.scheduled, m.Scheduled())
			assert.Equal(t, tc.unscheduled, m.Unscheduled())
		})
	}
}

func TestOverlappingParticipants(t *testing.T) {
	t.Parallel()

	a, err := NewMeeting("a", participants("x", "y"), slots("1"))
	require.NoError(t, err)
	b, err := NewMeeting("b", participants("y", "z"), slots("1"))
	require.NoError(t, err)
	c, err := NewMeeting("c", participants("w"), slots("1"))
	require.NoError(t, err)

	assert.True(t, a.OverlappingParticipants(b))
	assert.True(t, b.OverlappingParticipants(a))
	assert.False(t, a.OverlappingParticipants(c))
}

func TestMeetingSlotOKCombinesParticipantConstraints(t *testing.T) {
	t.Parallel()

	onlyOne := func(s Slot) bool { return s.(stubSlot).name == "1" }
	m, err := NewMeeting("m", []Participant{
		{Name: "x"},
		{Name: "y", Constraint: onlyOne},
	}, slots("1", "2"))
	require.NoError(t, err)

	assert.True(t, m.SlotOK(stubSlot{name: "1"}))
	assert.False(t, m.SlotOK(stubSlot{name: "2"}))
}

func TestParticipantWithoutConstraintAcceptsEverySlot(t *testing.T) {
	t.Parallel()

	p := Participant{Name: "x"}
	assert.True(t, p.SlotOK(stubSlot{name: "anything"}))
}

func TestMeetingString(t *testing.T) {
	t.Parallel()

	m, err := NewMeeting("standup", participants("y", "x"), slots("1"))
	require.NoError(t, err)

	assert.Equal(t, "standup (x, y): slot: 1", m.String())
}
