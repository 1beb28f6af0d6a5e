package plan

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gigamonkey/scheduler/internal/application"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	solutions []application.Solution
	opts      RenderOptions
	styles    styles
	output    string
}

func newModel(solutions []application.Solution, opts RenderOptions) model {
	return model{
		solutions: solutions,
		opts:      opts,
		styles:    newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.solutions, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

func Render(solutions []application.Solution, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(solutions, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
