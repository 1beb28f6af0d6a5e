package plan

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gigamonkey/scheduler/internal/application"
	"github.com/gigamonkey/scheduler/internal/domain"
)

type RenderOptions struct {
	// ShowParticipants includes each meeting's participant list.
	ShowParticipants bool
}

func renderView(solutions []application.Solution, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Meeting Schedule"),
		s.header.Render(fmt.Sprintf("schedules: %d", len(solutions))),
	}

	if len(solutions) == 0 {
		lines = append(lines, s.empty.Render("No feasible schedule."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for i, solution := range solutions {
		lines = append(lines, s.section.Render(renderSolution(i+1, solution, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderSolution(n int, solution application.Solution, opts RenderOptions, s styles) string {
	parts := []string{
		s.label.Render(fmt.Sprintf("Schedule %d", n)),
	}

	for _, meeting := range solution.Meetings {
		parts = append(parts, meetingLine(meeting, opts, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func meetingLine(meeting *domain.Meeting, opts RenderOptions, s styles) string {
	name := s.meeting.Render(meeting.Name)
	slot := s.slot.Render(fmt.Sprintf("%v", meeting.Slot()))

	if !opts.ShowParticipants {
		return fmt.Sprintf("%s  %s", name, slot)
	}

	return fmt.Sprintf("%s %s  %s", name, s.detail.Render("("+participantList(meeting)+")"), slot)
}

func participantList(meeting *domain.Meeting) string {
	names := make([]string, len(meeting.Participants))
	for i, p := range meeting.Participants {
		names[i] = p.Name
	}

	return strings.Join(names, ", ")
}
