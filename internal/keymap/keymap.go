package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

type KeyMap struct {
	Bottom key.Binding
	Copy   key.Binding
	Down   key.Binding
	Help   key.Binding
	Quit   key.Binding
	Save   key.Binding
	Top    key.Binding
	Up     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last block"),
		),
		Copy: key.NewBinding(
			key.WithKeys("enter", "ctrl+y", "y"),
			key.WithHelp("enter/y", "copy block"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "next block"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "show/hide help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save block to file"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first block"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "previous block"),
		),
	}
}

func HelpKeyBindings(km KeyMap) []key.Binding {
	return []key.Binding{
		km.Up,
		km.Down,
		km.Top,
		km.Bottom,
		km.Copy,
		km.Save,
		km.Help,
		km.Quit,
	}
}
