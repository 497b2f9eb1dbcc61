package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubestate"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenAppliesMigrations(t *testing.T) {
	db := openTestDB(t)
	version, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, version)

	// Re-running is a no-op.
	require.NoError(t, applyMigrations(db.DB))
}

func TestSessionCreateGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepository(db)

	state := cubestate.New().State()
	id, err := repo.Create("practice", state)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	s, err := repo.Get(id)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, state, s.State)
	require.NotNil(t, s.Name)
	assert.Equal(t, "practice", *s.Name)
	assert.Nil(t, s.ScrambleText)

	missing, err := repo.Get("nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSessionRejectsShortState(t *testing.T) {
	repo := NewSessionRepository(openTestDB(t))
	_, err := repo.Create("", "GGG")
	assert.Error(t, err)
}

func TestSessionSaveAndLoadStacks(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepository(db)
	journal := NewJournalRepository(db)

	id, err := repo.Create("", cubestate.New().State())
	require.NoError(t, err)

	tr := cubestate.NewTracker()
	tr.Apply(cubestate.R, cubestate.U, cubestate.F2)
	_, err = tr.Undo()
	require.NoError(t, err)

	err = repo.Save(Snapshot{
		SessionID: id,
		State:     tr.State(),
		Stacks:    Stacks{Log: tr.Moves(), Undo: tr.UndoStack(), Redo: tr.RedoStack()},
		Journal: []JournalEntry{
			{Kind: KindApply, Notation: "R U F2"},
			{Kind: KindUndo, Notation: "F2"},
		},
	})
	require.NoError(t, err)

	s, err := repo.Get(id)
	require.NoError(t, err)
	assert.Equal(t, tr.State(), s.State)

	stacks, err := repo.LoadStacks(id)
	require.NoError(t, err)
	assert.Equal(t, tr.Moves(), stacks.Log)
	assert.Equal(t, []cubestate.Move{cubestate.R, cubestate.U}, stacks.Undo)
	assert.Equal(t, []cubestate.Move{cubestate.F2}, stacks.Redo)

	entries, err := journal.GetBySession(id)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 0, entries[0].Seq)
	assert.Equal(t, KindUndo, entries[1].Kind)

	// A second save replaces the stacks and extends the journal.
	err = repo.Save(Snapshot{
		SessionID: id,
		State:     cubestate.New().State(),
		Journal:   []JournalEntry{{Kind: KindReset}},
	})
	require.NoError(t, err)

	stacks, err = repo.LoadStacks(id)
	require.NoError(t, err)
	assert.Empty(t, stacks.Undo)

	count, err := journal.Count(id)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestSessionSaveUnknownSession(t *testing.T) {
	repo := NewSessionRepository(openTestDB(t))
	err := repo.Save(Snapshot{SessionID: "missing", State: cubestate.New().State()})
	assert.Error(t, err)
}

func TestSessionListAndDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepository(db)

	first, err := repo.Create("a", cubestate.New().State())
	require.NoError(t, err)
	second, err := repo.Create("b", cubestate.New().State())
	require.NoError(t, err)

	require.NoError(t, repo.Save(Snapshot{SessionID: first, State: cubestate.New().State(), Journal: []JournalEntry{{Kind: KindApply, Notation: "R"}}}))

	sessions, err := repo.List(10)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, first, sessions[0].SessionID)

	last, err := repo.GetLast()
	require.NoError(t, err)
	assert.Equal(t, first, last.SessionID)

	require.NoError(t, repo.Delete(first))
	count, err := NewJournalRepository(db).Count(first)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	sessions, err = repo.List(10)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, second, sessions[0].SessionID)
}
