package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// Kind labels a journal entry.
type Kind string

const (
	KindApply    Kind = "apply"
	KindUndo     Kind = "undo"
	KindRedo     Kind = "redo"
	KindScramble Kind = "scramble"
	KindLoad     Kind = "load"
	KindReset    Kind = "reset"
)

// JournalEntry is one command recorded against a session.
// Notation holds the moves involved, or the state string for KindLoad.
type JournalEntry struct {
	ID        int64
	SessionID string
	Seq       int
	Kind      Kind
	Notation  string
	CreatedAt time.Time
}

// JournalRepository reads a session's command journal.
type JournalRepository struct {
	db *DB
}

// NewJournalRepository creates a new journal repository.
func NewJournalRepository(db *DB) *JournalRepository {
	return &JournalRepository{db: db}
}

// GetBySession retrieves all journal entries for a session in order.
func (r *JournalRepository) GetBySession(sessionID string) ([]JournalEntry, error) {
	rows, err := r.db.Query(`
		SELECT id, session_id, seq, kind, notation, created_at
		FROM session_moves
		WHERE session_id = ?
		ORDER BY seq
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get journal: %w", err)
	}
	defer rows.Close()

	var entries []JournalEntry
	for rows.Next() {
		var e JournalEntry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Seq, &e.Kind, &e.Notation, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		e.CreatedAt, _ = time.Parse(timeFormat, createdAt)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Count returns the number of journal entries for a session.
func (r *JournalRepository) Count(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM session_moves WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count journal entries: %w", err)
	}
	return count, nil
}

// appendJournal adds entries after the session's last sequence number.
func appendJournal(tx *sql.Tx, sessionID string, entries []JournalEntry, createdAt string) error {
	if len(entries) == 0 {
		return nil
	}

	var maxSeq int
	err := tx.QueryRow(`
		SELECT COALESCE(MAX(seq), -1) FROM session_moves WHERE session_id = ?
	`, sessionID).Scan(&maxSeq)
	if err != nil {
		return fmt.Errorf("failed to get max journal seq: %w", err)
	}

	for i, e := range entries {
		_, err := tx.Exec(`
			INSERT INTO session_moves (session_id, seq, kind, notation, created_at)
			VALUES (?, ?, ?, ?, ?)
		`, sessionID, maxSeq+1+i, string(e.Kind), e.Notation, createdAt)
		if err != nil {
			return fmt.Errorf("failed to append journal entry %d: %w", maxSeq+1+i, err)
		}
	}

	return nil
}
