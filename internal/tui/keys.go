package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding a prompt may use. Prompts disable the ones they
// don't need, which also hides them from the help line.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Yes    key.Binding
	No     key.Binding
	Cancel key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Yes, k.No, k.Enter, k.Cancel}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Yes, k.No, k.Enter, k.Cancel},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n", "no"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

func selectKeyMap() keyMap {
	k := defaultKeyMap()
	k.Yes.SetEnabled(false)
	k.No.SetEnabled(false)
	k.Enter.SetHelp("enter", "select")
	return k
}

func textKeyMap() keyMap {
	k := defaultKeyMap()
	k.Up.SetEnabled(false)
	k.Down.SetEnabled(false)
	k.Yes.SetEnabled(false)
	k.No.SetEnabled(false)
	k.Enter.SetHelp("enter", "submit")
	return k
}

func confirmKeyMap() keyMap {
	k := defaultKeyMap()
	k.Up.SetEnabled(false)
	k.Down.SetEnabled(false)
	k.Enter.SetHelp("enter", "default")
	return k
}
