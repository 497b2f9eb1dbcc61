// Package tui provides the interactive cube screen and its SSH server.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubestate"
	"github.com/SeamusWaldron/cubestate/internal/render"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// recentMoves is how many moves the move line shows.
const recentMoves = 20

// Cube is the command surface the play screen drives.
// *session.Session implements it with persistence; NewLocal wraps a bare
// tracker.
type Cube interface {
	Tracker() *cubestate.Tracker
	Apply(notation string) ([]cubestate.Move, error)
	Scramble(n int) ([]cubestate.Move, error)
	Undo() (cubestate.Move, error)
	Redo() (cubestate.Move, error)
	Reset()
	Save() error
}

// Local is an in-memory Cube.
type Local struct {
	tracker *cubestate.Tracker
}

// NewLocal wraps a tracker as a Cube that is never persisted.
func NewLocal(t *cubestate.Tracker) *Local {
	return &Local{tracker: t}
}

func (l *Local) Tracker() *cubestate.Tracker { return l.tracker }

func (l *Local) Apply(notation string) ([]cubestate.Move, error) {
	moves, err := cubestate.ParseMoves(notation)
	if err != nil {
		return nil, err
	}
	l.tracker.Apply(moves...)
	return moves, nil
}

func (l *Local) Scramble(n int) ([]cubestate.Move, error) { return l.tracker.Scramble(n) }
func (l *Local) Undo() (cubestate.Move, error)            { return l.tracker.Undo() }
func (l *Local) Redo() (cubestate.Move, error)            { return l.tracker.Redo() }
func (l *Local) Reset()                                   { l.tracker.Reset() }
func (l *Local) Save() error                              { return nil }

// Model is the Bubble Tea model for the play screen.
type Model struct {
	cube           Cube
	theme          render.Theme
	scrambleLength int
	keys           KeyMap
	help           help.Model

	double   bool
	status   string
	err      error
	quitting bool
}

// NewModel creates a play screen over cube.
func NewModel(cube Cube, theme render.Theme, scrambleLength int) *Model {
	if theme == nil {
		theme = render.DefaultTheme()
	}
	return &Model{
		cube:           cube,
		theme:          theme,
		scrambleLength: scrambleLength,
		keys:           DefaultKeyMap(),
		help:           help.New(),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.Double):
			m.double = !m.double

		case key.Matches(msg, m.keys.Turn), key.Matches(msg, m.keys.Prime):
			mv, ok := moveForKey(msg.String(), m.double)
			if ok {
				m.double = false
				_, err := m.cube.Apply(mv.Notation())
				m.finish(mv.Notation(), err)
			}

		case key.Matches(msg, m.keys.Undo):
			mv, err := m.cube.Undo()
			m.finish("undo "+mv.Notation(), err)

		case key.Matches(msg, m.keys.Redo):
			mv, err := m.cube.Redo()
			m.finish("redo "+mv.Notation(), err)

		case key.Matches(msg, m.keys.Scramble):
			moves, err := m.cube.Scramble(m.scrambleLength)
			m.finish("scramble "+cubestate.FormatMoves(moves), err)

		case key.Matches(msg, m.keys.Reset):
			m.cube.Reset()
			m.finish("reset", nil)
		}
	}

	return m, nil
}

// finish persists after a command and sets the status line.
func (m *Model) finish(status string, err error) {
	if err == nil {
		err = m.cube.Save()
	}
	m.err = err
	m.status = status
	if errors.Is(err, cubestate.ErrEmptyHistory) {
		m.status = "nothing to " + strings.Fields(status)[0]
		m.err = nil
	}
}

func (m *Model) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	t := m.cube.Tracker()
	var b strings.Builder

	b.WriteString(titleStyle.Render("Cube"))
	b.WriteString("\n\n")
	b.WriteString(render.Net(t.Cube(), m.theme))
	b.WriteString("\n")

	if t.IsSolved() {
		b.WriteString(solvedStyle.Render("SOLVED"))
	} else {
		b.WriteString(statusStyle.Render("scrambled"))
	}
	b.WriteString(statusStyle.Render(fmt.Sprintf("  undo %d  redo %d", t.UndoDepth(), t.RedoDepth())))
	if m.double {
		b.WriteString(statusStyle.Render("  [half turn]"))
	}
	b.WriteString("\n")

	if moves := t.UndoStack(); len(moves) > 0 {
		b.WriteString("Moves: ")
		if len(moves) > recentMoves {
			moves = moves[len(moves)-recentMoves:]
			b.WriteString("... ")
		}
		b.WriteString(moveStyle.Render(cubestate.FormatMoves(moves)))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}
