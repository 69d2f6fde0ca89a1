package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Tap      key.Binding
	Expand   key.Binding
	AddGroup key.Binding
	AddFood  key.Binding
	Rename   key.Binding
	Delete   key.Binding
	Pick     key.Binding
	Open     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Tap:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select (twice: expand)")),
	Expand:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "expand")),
	AddGroup: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add list")),
	AddFood:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "add food")),
	Rename:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "rename")),
	Delete:   key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
	Pick:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "pick for me")),
	Open:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open in maps")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp returns keybindings to be shown in the mini help view. It's part
// of the key.Map interface.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tap, k.Pick, k.Open, k.Quit, k.Help}
}

// FullHelp returns keybindings for the expanded help view. It's part of the
// key.Map interface.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Tap, k.Expand},
		{k.AddGroup, k.AddFood, k.Rename, k.Delete},
		{k.Pick, k.Open},
		{k.Help, k.Quit},
	}
}
