package session

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubestate"
	"github.com/SeamusWaldron/cubestate/internal/storage"
)

func openTestDB(t *testing.T) *storage.DB {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSessionPersistsAcrossOpen(t *testing.T) {
	db := openTestDB(t)

	s, err := Create(db, "practice")
	require.NoError(t, err)
	_, err = s.Apply("R U R' U'")
	require.NoError(t, err)
	_, err = s.Undo()
	require.NoError(t, err)
	require.NoError(t, s.Save())
	state := s.Tracker().State()

	reopened, err := Open(db, s.ID())
	require.NoError(t, err)
	assert.Equal(t, state, reopened.Tracker().State())

	// History survives: redo the undone U', then undo everything.
	m, err := reopened.Redo()
	require.NoError(t, err)
	assert.Equal(t, cubestate.UPrime, m)
	for reopened.Tracker().CanUndo() {
		_, err := reopened.Undo()
		require.NoError(t, err)
	}
	assert.True(t, reopened.Tracker().IsSolved())
	require.NoError(t, reopened.Save())

	entries, err := storage.NewJournalRepository(db).GetBySession(s.ID())
	require.NoError(t, err)
	kinds := make([]storage.Kind, len(entries))
	for i, e := range entries {
		kinds[i] = e.Kind
	}
	assert.Equal(t, []storage.Kind{
		storage.KindApply, storage.KindUndo,
		storage.KindRedo, storage.KindUndo, storage.KindUndo, storage.KindUndo, storage.KindUndo,
	}, kinds)
}

func TestSessionScrambleRecordsText(t *testing.T) {
	db := openTestDB(t)

	s, err := Create(db, "")
	require.NoError(t, err)
	moves, err := s.ScrambleSeed(15, 8)
	require.NoError(t, err)
	require.NoError(t, s.Save())

	rec, err := storage.NewSessionRepository(db).Get(s.ID())
	require.NoError(t, err)
	require.NotNil(t, rec.ScrambleText)
	assert.Equal(t, cubestate.FormatMoves(moves), *rec.ScrambleText)
}

func TestSessionLoadRejectsInvalidState(t *testing.T) {
	db := openTestDB(t)

	s, err := Create(db, "")
	require.NoError(t, err)
	_, err = s.Apply("F")
	require.NoError(t, err)
	before := s.Tracker().State()

	err = s.Load("GGG")
	assert.ErrorIs(t, err, cubestate.ErrInvalidState)
	assert.Equal(t, before, s.Tracker().State())
}

func TestSessionApplyRejectsBadNotation(t *testing.T) {
	db := openTestDB(t)
	s, err := Create(db, "")
	require.NoError(t, err)

	_, err = s.Apply("R Q")
	assert.ErrorIs(t, err, cubestate.ErrInvalidNotation)
	assert.True(t, s.Tracker().IsSolved())
}

func TestOpenMissingSession(t *testing.T) {
	_, err := Open(openTestDB(t), "missing")
	assert.True(t, errors.Is(err, ErrNoSession))
}

func TestResumeCreatesAndReuses(t *testing.T) {
	db := openTestDB(t)
	sf, err := NewStateFile(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	first, err := Resume(db, sf)
	require.NoError(t, err)
	assert.Equal(t, first.ID(), sf.ActiveSessionID())

	second, err := Resume(db, sf)
	require.NoError(t, err)
	assert.Equal(t, first.ID(), second.ID())

	require.NoError(t, sf.SetActiveSession("gone"))
	third, err := Resume(db, sf)
	require.NoError(t, err)
	assert.NotEqual(t, "gone", third.ID())
}

func TestStateFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	sf, err := NewStateFile(path)
	require.NoError(t, err)
	require.NoError(t, sf.SetActiveSession("abc"))
	require.NoError(t, sf.SetDBPath("/tmp/c.db"))

	loaded, err := NewStateFile(path)
	require.NoError(t, err)
	assert.Equal(t, "abc", loaded.ActiveSessionID())
	assert.Equal(t, "/tmp/c.db", loaded.DBPath())

	require.NoError(t, loaded.ClearActiveSession())
	assert.Empty(t, loaded.ActiveSessionID())
}
