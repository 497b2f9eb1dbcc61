package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubestate"
	"github.com/SeamusWaldron/cubestate/internal/session"
	"github.com/SeamusWaldron/cubestate/internal/storage"
)

// setup points HOME and --db at a temp directory.
func setup(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return filepath.Join(home, "test.db")
}

func run(t *testing.T, db string, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(append([]string{"--db", db}, args...))
	return rootCmd.Execute()
}

func activeState(t *testing.T, db string) (string, *cubestate.Tracker) {
	t.Helper()
	sf, err := session.NewDefaultStateFile()
	require.NoError(t, err)
	require.NotEmpty(t, sf.ActiveSessionID())

	d, err := storage.Open(db)
	require.NoError(t, err)
	defer d.Close()

	s, err := session.Open(d, sf.ActiveSessionID())
	require.NoError(t, err)
	return s.ID(), s.Tracker()
}

func TestApplyUndoRedoAcrossRuns(t *testing.T) {
	db := setup(t)

	require.NoError(t, run(t, db, "apply", "R", "U"))
	require.NoError(t, run(t, db, "undo"))

	want := cubestate.New()
	want.Apply(cubestate.R)

	_, tr := activeState(t, db)
	assert.Equal(t, want.State(), tr.State())
	assert.Equal(t, "U", cubestate.FormatMoves(tr.RedoStack()))

	require.NoError(t, run(t, db, "redo"))
	require.NoError(t, run(t, db, "undo"))
	require.NoError(t, run(t, db, "undo"))
	_, tr = activeState(t, db)
	assert.True(t, tr.IsSolved())

	err := run(t, db, "undo")
	assert.ErrorIs(t, err, cubestate.ErrEmptyHistory)
}

func TestApplyRejectsBadNotation(t *testing.T) {
	db := setup(t)

	err := run(t, db, "apply", "R Q")
	assert.ErrorIs(t, err, cubestate.ErrInvalidNotation)

	_, tr := activeState(t, db)
	assert.True(t, tr.IsSolved())
	assert.False(t, tr.CanUndo())
}

func TestLoadAndNew(t *testing.T) {
	db := setup(t)

	require.NoError(t, run(t, db, "apply", "F"))
	first, _ := activeState(t, db)

	err := run(t, db, "load", "GGG")
	assert.ErrorIs(t, err, cubestate.ErrInvalidState)

	require.NoError(t, run(t, db, "new", "second"))
	second, tr := activeState(t, db)
	assert.NotEqual(t, first, second)
	assert.True(t, tr.IsSolved())

	loaded := "GGGGGGGGGBBBBBBBBBOOYOOYOOYWRRWRRWRRWWWWWWOOORRRYYYYYY"
	require.NoError(t, run(t, db, "load", loaded))
	_, tr = activeState(t, db)
	assert.Equal(t, loaded, tr.State())
	assert.False(t, tr.CanUndo())
}

func TestScrambleWithSeed(t *testing.T) {
	db := setup(t)

	require.NoError(t, run(t, db, "scramble", "-n", "12", "--seed", "7"))
	_, tr := activeState(t, db)

	want := cubestate.New()
	want.Apply(cubestate.ScrambleSeed(7, 12)...)
	assert.Equal(t, want.State(), tr.State())
	assert.Equal(t, 12, tr.UndoDepth())

	require.NoError(t, run(t, db, "reset"))
	_, tr = activeState(t, db)
	assert.True(t, tr.IsSolved())
}
