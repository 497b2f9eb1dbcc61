package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/cubestate"
)

// Session represents a stored cube session.
type Session struct {
	SessionID    string
	Name         *string
	State        string
	ScrambleText *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Stacks holds a session's persisted history, oldest entry first.
type Stacks struct {
	Log  []cubestate.Move
	Undo []cubestate.Move
	Redo []cubestate.Move
}

// Snapshot is everything written after one command on a session.
type Snapshot struct {
	SessionID    string
	State        string
	ScrambleText string
	Stacks       Stacks
	Journal      []JournalEntry
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session holding state and returns its ID.
func (r *SessionRepository) Create(name, state string) (string, error) {
	id := uuid.New().String()
	now := time.Now().UTC().Format(timeFormat)

	var namePtr *string
	if name != "" {
		namePtr = &name
	}

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, name, state, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, id, namePtr, state, now, now)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// Get retrieves a session by ID. It returns nil, nil when none exists.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	row := r.db.QueryRow(`
		SELECT session_id, name, state, scramble_text, created_at, updated_at
		FROM sessions
		WHERE session_id = ?
	`, sessionID)

	s, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// GetLast retrieves the most recently updated session.
func (r *SessionRepository) GetLast() (*Session, error) {
	row := r.db.QueryRow(`
		SELECT session_id, name, state, scramble_text, created_at, updated_at
		FROM sessions
		ORDER BY updated_at DESC
		LIMIT 1
	`)

	s, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last session: %w", err)
	}
	return s, nil
}

// List retrieves recent sessions, most recently updated first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT session_id, name, state, scramble_text, created_at, updated_at
		FROM sessions
		ORDER BY updated_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}

	return sessions, rows.Err()
}

// Delete deletes a session with its journal and stacks.
func (r *SessionRepository) Delete(sessionID string) error {
	_, err := r.db.Exec("DELETE FROM sessions WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// LoadStacks retrieves the persisted history of a session.
func (r *SessionRepository) LoadStacks(sessionID string) (Stacks, error) {
	rows, err := r.db.Query(`
		SELECT stack, notation
		FROM session_stacks
		WHERE session_id = ?
		ORDER BY stack, position
	`, sessionID)
	if err != nil {
		return Stacks{}, fmt.Errorf("failed to load stacks: %w", err)
	}
	defer rows.Close()

	var stacks Stacks
	for rows.Next() {
		var stack, notation string
		if err := rows.Scan(&stack, &notation); err != nil {
			return Stacks{}, fmt.Errorf("failed to scan stack entry: %w", err)
		}
		m, err := cubestate.ParseMove(notation)
		if err != nil {
			return Stacks{}, fmt.Errorf("stack %s: %w", stack, err)
		}
		switch stack {
		case "log":
			stacks.Log = append(stacks.Log, m)
		case "undo":
			stacks.Undo = append(stacks.Undo, m)
		case "redo":
			stacks.Redo = append(stacks.Redo, m)
		}
	}

	return stacks, rows.Err()
}

// Save writes a snapshot in a single transaction: the new state, the
// replaced history stacks and the appended journal entries.
func (r *SessionRepository) Save(snap Snapshot) error {
	now := time.Now().UTC().Format(timeFormat)

	return r.db.Transaction(func(tx *sql.Tx) error {
		var scramblePtr *string
		if snap.ScrambleText != "" {
			scramblePtr = &snap.ScrambleText
		}

		res, err := tx.Exec(`
			UPDATE sessions
			SET state = ?, scramble_text = COALESCE(?, scramble_text), updated_at = ?
			WHERE session_id = ?
		`, snap.State, scramblePtr, now, snap.SessionID)
		if err != nil {
			return fmt.Errorf("failed to update session: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return fmt.Errorf("session %s not found", snap.SessionID)
		}

		if _, err := tx.Exec("DELETE FROM session_stacks WHERE session_id = ?", snap.SessionID); err != nil {
			return fmt.Errorf("failed to clear stacks: %w", err)
		}
		for name, moves := range map[string][]cubestate.Move{
			"log":  snap.Stacks.Log,
			"undo": snap.Stacks.Undo,
			"redo": snap.Stacks.Redo,
		} {
			for i, m := range moves {
				_, err := tx.Exec(`
					INSERT INTO session_stacks (session_id, stack, position, notation)
					VALUES (?, ?, ?, ?)
				`, snap.SessionID, name, i, m.Notation())
				if err != nil {
					return fmt.Errorf("failed to save %s stack: %w", name, err)
				}
			}
		}

		return appendJournal(tx, snap.SessionID, snap.Journal, now)
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*Session, error) {
	var s Session
	var createdAt, updatedAt string
	err := row.Scan(&s.SessionID, &s.Name, &s.State, &s.ScrambleText, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	s.CreatedAt, _ = time.Parse(timeFormat, createdAt)
	s.UpdatedAt, _ = time.Parse(timeFormat, updatedAt)
	return &s, nil
}
