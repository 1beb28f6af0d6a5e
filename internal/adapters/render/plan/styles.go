package plan

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	section lipgloss.Style
	label   lipgloss.Style
	meeting lipgloss.Style
	detail  lipgloss.Style
	slot    lipgloss.Style
	empty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		section: lipgloss.NewStyle().MarginTop(1),
		label:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		meeting: lipgloss.NewStyle().Bold(true),
		detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		slot:    lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		empty:   lipgloss.NewStyle().Faint(true),
	}
}
