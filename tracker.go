package cubestate

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
)

// Tracker wraps a Cube with move history, undo/redo and scrambling.
//
// A Tracker is not safe for concurrent use. The cube and its history form a
// single unit; callers that share a Tracker across goroutines must serialize
// every call, reads included.
type Tracker struct {
	cube    *Cube
	history *History
	rng     *rand.Rand
	logger  *log.Logger

	moveCallback func(Move)
}

// NewTracker creates a new tracker starting from a solved cube.
func NewTracker(opts ...Option) *Tracker {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.finish()

	return &Tracker{
		cube:    New(),
		history: NewHistory(cfg.moveHistory),
		rng:     cfg.rng,
		logger:  cfg.logger,
	}
}

// SetMoveCallback sets a callback fired for every move applied to the cube,
// including the inverse applied by Undo.
func (t *Tracker) SetMoveCallback(cb func(Move)) {
	t.moveCallback = cb
}

func (t *Tracker) turn(m Move) {
	t.cube.turn(m)
	if t.moveCallback != nil {
		t.moveCallback(m)
	}
}

// Apply applies moves and records each one in history.
// Invalid moves are skipped.
func (t *Tracker) Apply(moves ...Move) {
	for _, m := range moves {
		if !m.Valid() {
			t.logger.Debug("skipping invalid move", "face", int(m.Face), "turn", int(m.Turn))
			continue
		}
		t.turn(m)
		t.history.Record(m)
	}
}

// ApplyNotation parses and applies a space-separated move sequence.
// Nothing is applied if any token is invalid.
func (t *Tracker) ApplyNotation(notation string) error {
	moves, err := ParseMoves(notation)
	if err != nil {
		return err
	}
	t.Apply(moves...)
	return nil
}

// Undo reverts the most recent move and returns it.
// It reports ErrEmptyHistory when there is nothing to undo.
func (t *Tracker) Undo() (Move, error) {
	m, err := t.history.popUndo()
	if err != nil {
		return Move{}, fmt.Errorf("undo: %w", err)
	}
	t.turn(m.Inverse())
	t.logger.Debug("undo", "move", m.Notation(), "undo", t.history.UndoDepth(), "redo", t.history.RedoDepth())
	return m, nil
}

// Redo re-applies the most recently undone move and returns it.
// It reports ErrEmptyHistory when there is nothing to redo.
func (t *Tracker) Redo() (Move, error) {
	m, err := t.history.popRedo()
	if err != nil {
		return Move{}, fmt.Errorf("redo: %w", err)
	}
	t.turn(m)
	t.logger.Debug("redo", "move", m.Notation(), "undo", t.history.UndoDepth(), "redo", t.history.RedoDepth())
	return m, nil
}

// Scramble applies n random moves from the tracker's random source.
// Each move becomes its own history entry.
func (t *Tracker) Scramble(n int) ([]Move, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidScrambleLength, n)
	}
	moves := Scramble(t.rng, n)
	t.Apply(moves...)
	return moves, nil
}

// ScrambleSeed applies n random moves drawn from a source seeded with seed.
// The same seed and starting state always produce the same result.
func (t *Tracker) ScrambleSeed(n int, seed int64) ([]Move, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidScrambleLength, n)
	}
	moves := ScrambleSeed(seed, n)
	t.Apply(moves...)
	return moves, nil
}

// Facelet returns the color at (face, row, col).
func (t *Tracker) Facelet(face Face, row, col int) (Color, error) {
	return t.cube.Facelet(face, row, col)
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// State returns the 54-symbol state string.
func (t *Tracker) State() string {
	return t.cube.State()
}

// SetState replaces the cube state. History is cleared because the recorded
// moves no longer lead to the new state. On error nothing changes.
func (t *Tracker) SetState(state string) error {
	if err := t.cube.SetState(state); err != nil {
		t.logger.Debug("rejected state", "error", err)
		return err
	}
	t.history.Clear()
	return nil
}

// Restore replaces the cube state and the history in one step.
// It is used to resume a persisted session. On error nothing changes.
func (t *Tracker) Restore(state string, applied, undo, redo []Move) error {
	parsed, err := ParseState(state)
	if err != nil {
		return err
	}
	for _, list := range [][]Move{applied, undo, redo} {
		for _, m := range list {
			if !m.Valid() {
				return fmt.Errorf("%w: history holds invalid move %d/%d", ErrInvalidState, m.Face, m.Turn)
			}
		}
	}

	t.cube = parsed
	t.history.Clear()
	if t.history.keepLog {
		t.history.log = append([]Move(nil), applied...)
	}
	t.history.undo = append([]Move(nil), undo...)
	t.history.redo = append([]Move(nil), redo...)
	return nil
}

// Reset returns to a solved cube with empty history.
func (t *Tracker) Reset() {
	t.cube.reset()
	t.history.Clear()
}

// Moves returns the applied-move log.
func (t *Tracker) Moves() []Move {
	return t.history.Log()
}

// UndoStack returns the moves that can be undone, oldest first.
func (t *Tracker) UndoStack() []Move {
	return t.history.UndoStack()
}

// RedoStack returns the moves that can be redone, oldest first.
func (t *Tracker) RedoStack() []Move {
	return t.history.RedoStack()
}

// UndoDepth returns the number of moves that can be undone.
func (t *Tracker) UndoDepth() int {
	return t.history.UndoDepth()
}

// RedoDepth returns the number of moves that can be redone.
func (t *Tracker) RedoDepth() int {
	return t.history.RedoDepth()
}

// CanUndo reports whether Undo would succeed.
func (t *Tracker) CanUndo() bool {
	return t.history.UndoDepth() > 0
}

// CanRedo reports whether Redo would succeed.
func (t *Tracker) CanRedo() bool {
	return t.history.RedoDepth() > 0
}

// Cube returns a copy of the current cube.
func (t *Tracker) Cube() *Cube {
	return t.cube.Clone()
}

// CubeString returns a string representation of the cube.
func (t *Tracker) CubeString() string {
	return t.cube.String()
}
