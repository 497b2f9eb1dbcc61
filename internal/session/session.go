// Package session binds a cube tracker to persistent storage.
package session

import (
	"errors"
	"fmt"

	"github.com/SeamusWaldron/cubestate"
	"github.com/SeamusWaldron/cubestate/internal/storage"
)

// ErrNoSession is returned when a session ID is not in the database.
var ErrNoSession = errors.New("session: not found")

// Session is a stored cube session loaded into a Tracker.
//
// Commands mutate the tracker immediately and queue journal entries; Save
// writes the new state, the history stacks and the journal together.
type Session struct {
	id       string
	repo     *storage.SessionRepository
	tracker  *cubestate.Tracker
	pending  []storage.JournalEntry
	scramble string
}

// Create stores a new solved session and returns it.
func Create(db *storage.DB, name string, opts ...cubestate.Option) (*Session, error) {
	repo := storage.NewSessionRepository(db)
	tracker := cubestate.NewTracker(opts...)

	id, err := repo.Create(name, tracker.State())
	if err != nil {
		return nil, err
	}

	return &Session{id: id, repo: repo, tracker: tracker}, nil
}

// Open loads a stored session.
func Open(db *storage.DB, sessionID string, opts ...cubestate.Option) (*Session, error) {
	repo := storage.NewSessionRepository(db)

	rec, err := repo.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoSession, sessionID)
	}

	stacks, err := repo.LoadStacks(sessionID)
	if err != nil {
		return nil, err
	}

	tracker := cubestate.NewTracker(opts...)
	if err := tracker.Restore(rec.State, stacks.Log, stacks.Undo, stacks.Redo); err != nil {
		return nil, fmt.Errorf("failed to restore session %s: %w", sessionID, err)
	}

	return &Session{id: sessionID, repo: repo, tracker: tracker}, nil
}

// Resume opens the state file's active session, or creates and activates a
// new one when there is none or it no longer exists.
func Resume(db *storage.DB, sf *StateFile, opts ...cubestate.Option) (*Session, error) {
	if id := sf.ActiveSessionID(); id != "" {
		s, err := Open(db, id, opts...)
		if err == nil {
			return s, nil
		}
		if !errors.Is(err, ErrNoSession) {
			return nil, err
		}
	}

	s, err := Create(db, "", opts...)
	if err != nil {
		return nil, err
	}
	if err := sf.SetActiveSession(s.ID()); err != nil {
		return nil, err
	}
	return s, nil
}

// ID returns the session ID.
func (s *Session) ID() string {
	return s.id
}

// Tracker returns the session's tracker.
func (s *Session) Tracker() *cubestate.Tracker {
	return s.tracker
}

func (s *Session) record(kind storage.Kind, notation string) {
	s.pending = append(s.pending, storage.JournalEntry{Kind: kind, Notation: notation})
}

// Apply applies a move sequence in notation.
func (s *Session) Apply(notation string) ([]cubestate.Move, error) {
	moves, err := cubestate.ParseMoves(notation)
	if err != nil {
		return nil, err
	}
	s.tracker.Apply(moves...)
	s.record(storage.KindApply, cubestate.FormatMoves(moves))
	return moves, nil
}

// Scramble applies n random moves from the tracker's source.
func (s *Session) Scramble(n int) ([]cubestate.Move, error) {
	moves, err := s.tracker.Scramble(n)
	if err != nil {
		return nil, err
	}
	s.recordScramble(moves)
	return moves, nil
}

// ScrambleSeed applies n random moves from a source seeded with seed.
func (s *Session) ScrambleSeed(n int, seed int64) ([]cubestate.Move, error) {
	moves, err := s.tracker.ScrambleSeed(n, seed)
	if err != nil {
		return nil, err
	}
	s.recordScramble(moves)
	return moves, nil
}

func (s *Session) recordScramble(moves []cubestate.Move) {
	s.scramble = cubestate.FormatMoves(moves)
	s.record(storage.KindScramble, s.scramble)
}

// Undo reverts the most recent move.
func (s *Session) Undo() (cubestate.Move, error) {
	m, err := s.tracker.Undo()
	if err != nil {
		return cubestate.Move{}, err
	}
	s.record(storage.KindUndo, m.Notation())
	return m, nil
}

// Redo re-applies the most recently undone move.
func (s *Session) Redo() (cubestate.Move, error) {
	m, err := s.tracker.Redo()
	if err != nil {
		return cubestate.Move{}, err
	}
	s.record(storage.KindRedo, m.Notation())
	return m, nil
}

// Load replaces the cube state. On error nothing changes.
func (s *Session) Load(state string) error {
	if err := s.tracker.SetState(state); err != nil {
		return err
	}
	s.record(storage.KindLoad, state)
	return nil
}

// Reset returns the session to a solved cube with empty history.
func (s *Session) Reset() {
	s.tracker.Reset()
	s.record(storage.KindReset, "")
}

// Save persists the state, history stacks and queued journal entries.
func (s *Session) Save() error {
	err := s.repo.Save(storage.Snapshot{
		SessionID:    s.id,
		State:        s.tracker.State(),
		ScrambleText: s.scramble,
		Stacks: storage.Stacks{
			Log:  s.tracker.Moves(),
			Undo: s.tracker.UndoStack(),
			Redo: s.tracker.RedoStack(),
		},
		Journal: s.pending,
	})
	if err != nil {
		return fmt.Errorf("failed to save session %s: %w", s.id, err)
	}
	s.pending = nil
	s.scramble = ""
	return nil
}
