package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/SeamusWaldron/cubestate"
)

// KeyMap defines the key bindings for the play screen.
type KeyMap struct {
	Turn     key.Binding
	Prime    key.Binding
	Double   key.Binding
	Undo     key.Binding
	Redo     key.Binding
	Scramble key.Binding
	Reset    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Turn, k.Undo, k.Redo, k.Scramble, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Turn, k.Prime, k.Double},
		{k.Undo, k.Redo, k.Scramble, k.Reset},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Turn: key.NewBinding(
			key.WithKeys("f", "b", "l", "r", "u", "d"),
			key.WithHelp("f/b/l/r/u/d", "turn clockwise"),
		),
		Prime: key.NewBinding(
			key.WithKeys("F", "B", "L", "R", "U", "D"),
			key.WithHelp("F/B/L/R/U/D", "turn counter-clockwise"),
		),
		Double: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "next turn is a half turn"),
		),
		Undo: key.NewBinding(
			key.WithKeys("z", "ctrl+z"),
			key.WithHelp("z", "undo"),
		),
		Redo: key.NewBinding(
			key.WithKeys("y", "ctrl+y"),
			key.WithHelp("y", "redo"),
		),
		Scramble: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "scramble"),
		),
		Reset: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// moveForKey maps a face key to a move. Lowercase turns clockwise,
// uppercase counter-clockwise; double overrides both.
func moveForKey(k string, double bool) (cubestate.Move, bool) {
	if len(k) != 1 {
		return cubestate.Move{}, false
	}
	m, err := cubestate.ParseMove(k)
	if err != nil {
		return cubestate.Move{}, false
	}
	switch {
	case double:
		m.Turn = cubestate.Double
	case k[0] >= 'A' && k[0] <= 'Z':
		m.Turn = cubestate.CCW
	}
	return m, true
}
