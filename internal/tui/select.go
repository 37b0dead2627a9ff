package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"commitfmt/internal/prompt"
)

type selectModel struct {
	title     string
	choices   []prompt.Choice
	cursor    int
	done      bool
	cancelled bool
	keys      keyMap
	help      help.Model
	style     *Styles
}

func newSelectModel(title string, choices []prompt.Choice, s *Styles) selectModel {
	return selectModel{
		title:   title,
		choices: choices,
		keys:    selectKeyMap(),
		help:    help.New(),
		style:   s,
	}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Cancel):
		m.cancelled = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Enter):
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m selectModel) value() string {
	return m.choices[m.cursor].Value
}

func (m selectModel) View() string {
	s := m.style
	title := s.prompt.Render("? " + m.title)

	if m.done {
		return title + " " + s.answer.Render(m.value()) + "\n"
	}
	if m.cancelled {
		return title + "\n"
	}

	width := 0
	for _, c := range m.choices {
		width = max(width, len(c.Value))
	}

	var b strings.Builder
	b.WriteString(title + "\n")
	for i, c := range m.choices {
		line := fmt.Sprintf("%-*s  %s", width, c.Value, c.Description)
		if i == m.cursor {
			b.WriteString(s.cursor.Render("> ") + s.selected.Render(line) + "\n")
		} else {
			b.WriteString("  " + s.choice.Render(line) + "\n")
		}
	}
	b.WriteString(m.help.View(m.keys) + "\n")
	return b.String()
}
