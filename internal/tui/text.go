package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"commitfmt/internal/prompt"
)

type textModel struct {
	req       prompt.TextRequest
	input     textinput.Model
	err       error
	value     string
	done      bool
	cancelled bool
	keys      keyMap
	help      help.Model
	style     *Styles
}

func newTextModel(req prompt.TextRequest, s *Styles) textModel {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = req.Default
	input.Focus()

	return textModel{
		req:   req,
		input: input,
		keys:  textKeyMap(),
		help:  help.New(),
		style: s,
	}
}

func (m textModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Enter):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit accepts the current input unless the validator rejects it, in which
// case the rejection is shown and the prompt stays open.
func (m textModel) submit() (tea.Model, tea.Cmd) {
	value := m.input.Value()
	if value == "" {
		value = m.req.Default
	}

	if m.req.Validate != nil {
		if err := m.req.Validate(value); err != nil {
			m.err = err
			return m, nil
		}
	}

	m.err = nil
	m.value = value
	m.done = true
	return m, tea.Quit
}

func (m textModel) View() string {
	s := m.style
	title := s.prompt.Render("? " + m.req.Title)

	if m.done {
		return title + " " + s.answer.Render(m.value) + "\n"
	}
	if m.cancelled {
		return title + "\n"
	}

	view := title + "\n" + m.input.View() + "\n"
	switch {
	case m.err != nil:
		view += s.err.Render("✗ "+m.err.Error()) + "\n"
	case m.req.Help != "":
		view += s.label.Render(m.req.Help) + "\n"
	}
	return view + m.help.View(m.keys) + "\n"
}
