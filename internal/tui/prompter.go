package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"commitfmt/internal/prompt"
)

// Prompter implements prompt.Prompter with one inline bubbletea program per
// question.
type Prompter struct {
	style *Styles
	opts  []tea.ProgramOption
}

func NewPrompter(s *Styles, opts ...tea.ProgramOption) *Prompter {
	return &Prompter{style: s, opts: opts}
}

func (p *Prompter) run(m tea.Model) (tea.Model, error) {
	final, err := tea.NewProgram(m, p.opts...).Run()
	if errors.Is(err, tea.ErrInterrupted) || errors.Is(err, tea.ErrProgramKilled) {
		return nil, prompt.ErrCancelled
	}
	if err != nil {
		return nil, fmt.Errorf("failed to run prompt: %w", err)
	}
	return final, nil
}

func (p *Prompter) Select(title string, choices []prompt.Choice) (string, error) {
	if len(choices) == 0 {
		return "", fmt.Errorf("no choices for %q", title)
	}

	final, err := p.run(newSelectModel(title, choices, p.style))
	if err != nil {
		return "", err
	}

	m := final.(selectModel)
	if m.cancelled || !m.done {
		return "", prompt.ErrCancelled
	}
	return m.value(), nil
}

func (p *Prompter) Text(req prompt.TextRequest) (string, error) {
	final, err := p.run(newTextModel(req, p.style))
	if err != nil {
		return "", err
	}

	m := final.(textModel)
	if m.cancelled || !m.done {
		return "", prompt.ErrCancelled
	}
	return m.value, nil
}

func (p *Prompter) Confirm(title string, def bool) (bool, error) {
	final, err := p.run(newConfirmModel(title, def, p.style))
	if err != nil {
		return false, err
	}

	m := final.(confirmModel)
	if m.cancelled || !m.done {
		return false, prompt.ErrCancelled
	}
	return m.value, nil
}
