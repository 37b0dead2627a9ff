package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type confirmModel struct {
	title     string
	def       bool
	value     bool
	done      bool
	cancelled bool
	keys      keyMap
	help      help.Model
	style     *Styles
}

func newConfirmModel(title string, def bool, s *Styles) confirmModel {
	return confirmModel{
		title: title,
		def:   def,
		keys:  confirmKeyMap(),
		help:  help.New(),
		style: s,
	}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Cancel):
		m.cancelled = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Yes):
		m.value = true
	case key.Matches(keyMsg, m.keys.No):
		m.value = false
	case key.Matches(keyMsg, m.keys.Enter):
		m.value = m.def
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

func (m confirmModel) View() string {
	s := m.style
	title := s.prompt.Render("? " + m.title)

	if m.done {
		answer := "No"
		if m.value {
			answer = "Yes"
		}
		return title + " " + s.answer.Render(answer) + "\n"
	}
	if m.cancelled {
		return title + "\n"
	}

	hint := "(y/N)"
	if m.def {
		hint = "(Y/n)"
	}
	return title + " " + s.label.Render(hint) + "\n" + m.help.View(m.keys) + "\n"
}
