package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type searchDoneMsg struct {
	err error
}

type searchSpinnerModel struct {
	spinner spinner.Model
	label   string
	search  tea.Cmd
	err     error
	done    bool
}

func newSearchSpinnerModel(label string, search tea.Cmd) searchSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return searchSpinnerModel{
		spinner: s,
		label:   label,
		search:  search,
	}
}

func (m searchSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.search)
}

func (m searchSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case searchDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m searchSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

// runSearchSpinner shows a spinner while the solver explores the
// search space, which for a loose schedule definition can take a
// while.
func runSearchSpinner(ctx context.Context, output io.Writer, search func() error) error {
	searchCmd := func() tea.Msg {
		return searchDoneMsg{err: search()}
	}

	p := tea.NewProgram(
		newSearchSpinnerModel("Searching for schedules...", searchCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(searchSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
