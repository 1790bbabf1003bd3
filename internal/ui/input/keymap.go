package input

import "github.com/charmbracelet/bubbles/key"

type Map struct {
	Quit   key.Binding
	Help   key.Binding
	Reload key.Binding
}

func (m Map) ShortHelp() []key.Binding {
	return []key.Binding{m.Help, m.Quit}
}

func (m Map) FullHelp() [][]key.Binding {
	return [][]key.Binding{{m.Help, m.Reload, m.Quit}}
}

// TODO make configurable.
var Default = Map{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "Quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "Help"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "Reload config"),
	),
}
