package cubestate

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerUndoRestoresSolved(t *testing.T) {
	for _, m := range AllMoves() {
		tr := NewTracker()
		tr.Apply(m)
		require.False(t, tr.IsSolved())

		undone, err := tr.Undo()
		require.NoError(t, err)
		assert.Equal(t, m, undone)
		assert.True(t, tr.IsSolved(), "undo of %s should restore solved", m)
	}
}

func TestTrackerUndoRedo(t *testing.T) {
	tr := NewTracker()
	tr.Apply(R)
	after := tr.State()

	_, err := tr.Undo()
	require.NoError(t, err)
	assert.True(t, tr.IsSolved())
	assert.True(t, tr.CanRedo())

	redone, err := tr.Redo()
	require.NoError(t, err)
	assert.Equal(t, R, redone)
	assert.Equal(t, after, tr.State())
	assert.False(t, tr.CanRedo())
	assert.True(t, tr.CanUndo())
}

func TestTrackerEmptyHistory(t *testing.T) {
	tr := NewTracker()
	tr.Apply(U)
	require.NoError(t, tr.SetState(tr.State()))
	before := tr.State()

	_, err := tr.Undo()
	assert.True(t, errors.Is(err, ErrEmptyHistory))
	assert.Equal(t, before, tr.State())

	_, err = tr.Redo()
	assert.True(t, errors.Is(err, ErrEmptyHistory))
	assert.Equal(t, before, tr.State())
}

func TestTrackerNewMoveClearsRedo(t *testing.T) {
	tr := NewTracker()
	tr.Apply(R, U)
	_, err := tr.Undo()
	require.NoError(t, err)
	require.True(t, tr.CanRedo())

	tr.Apply(F)
	assert.False(t, tr.CanRedo())
	assert.Equal(t, []Move{R, F}, tr.UndoStack())

	_, err = tr.Redo()
	assert.ErrorIs(t, err, ErrEmptyHistory)
}

func TestTrackerUndoAllAfterScramble(t *testing.T) {
	tr := NewTracker(WithSeed(1))
	moves, err := tr.Scramble(25)
	require.NoError(t, err)
	require.Len(t, moves, 25)
	assert.Equal(t, moves, tr.UndoStack())

	for tr.CanUndo() {
		_, err := tr.Undo()
		require.NoError(t, err)
	}
	assert.True(t, tr.IsSolved())
	assert.Len(t, tr.RedoStack(), 25)

	for tr.CanRedo() {
		_, err := tr.Redo()
		require.NoError(t, err)
	}
	expected := New()
	expected.Apply(moves...)
	assert.Equal(t, expected.State(), tr.State())
}

func TestTrackerScrambleDeterminism(t *testing.T) {
	a := NewTracker()
	b := NewTracker()
	a.Apply(F)
	b.Apply(F)

	_, err := a.ScrambleSeed(30, 1234)
	require.NoError(t, err)
	_, err = b.ScrambleSeed(30, 1234)
	require.NoError(t, err)
	assert.Equal(t, a.State(), b.State())

	c := NewTracker(WithRand(rand.New(rand.NewSource(77))))
	d := NewTracker(WithSeed(77))
	_, err = c.Scramble(30)
	require.NoError(t, err)
	_, err = d.Scramble(30)
	require.NoError(t, err)
	assert.Equal(t, c.State(), d.State())
}

func TestTrackerScrambleRejectsNonPositive(t *testing.T) {
	tr := NewTracker()
	_, err := tr.Scramble(0)
	assert.ErrorIs(t, err, ErrInvalidScrambleLength)
	_, err = tr.ScrambleSeed(-3, 1)
	assert.ErrorIs(t, err, ErrInvalidScrambleLength)
	assert.True(t, tr.IsSolved())
	assert.False(t, tr.CanUndo())
}

func TestTrackerLogReplaysToCurrentState(t *testing.T) {
	tr := NewTracker(WithSeed(9))
	_, err := tr.Scramble(10)
	require.NoError(t, err)
	_, err = tr.Undo()
	require.NoError(t, err)
	_, err = tr.Undo()
	require.NoError(t, err)
	_, err = tr.Redo()
	require.NoError(t, err)
	tr.Apply(L2)

	replay := New()
	replay.Apply(tr.Moves()...)
	assert.Equal(t, tr.State(), replay.State())
	assert.Len(t, tr.Moves(), 14)
}

func TestTrackerWithoutMoveHistory(t *testing.T) {
	tr := NewTracker(WithMoveHistory(false))
	tr.Apply(R, U)
	assert.Empty(t, tr.Moves())

	_, err := tr.Undo()
	require.NoError(t, err)
	_, err = tr.Undo()
	require.NoError(t, err)
	assert.True(t, tr.IsSolved())
}

func TestTrackerSetState(t *testing.T) {
	source := New()
	source.Apply(TPerm...)

	tr := NewTracker()
	tr.Apply(R)
	require.NoError(t, tr.SetState(source.State()))
	assert.Equal(t, source.State(), tr.State())
	assert.False(t, tr.CanUndo())
	assert.Empty(t, tr.Moves())
}

func TestTrackerSetStateRejectKeepsHistory(t *testing.T) {
	tr := NewTracker()
	tr.Apply(R)
	before := tr.State()

	err := tr.SetState(solvedState[:53])
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Equal(t, before, tr.State())
	assert.True(t, tr.CanUndo())
}

func TestTrackerRestore(t *testing.T) {
	src := NewTracker(WithSeed(4))
	_, err := src.Scramble(6)
	require.NoError(t, err)
	_, err = src.Undo()
	require.NoError(t, err)

	dst := NewTracker()
	require.NoError(t, dst.Restore(src.State(), src.Moves(), src.UndoStack(), src.RedoStack()))
	assert.Equal(t, src.State(), dst.State())

	for dst.CanUndo() {
		_, err := dst.Undo()
		require.NoError(t, err)
	}
	assert.True(t, dst.IsSolved())

	err = dst.Restore(src.State(), nil, []Move{{Face: 9, Turn: CW}}, nil)
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.True(t, dst.IsSolved())
}

func TestTrackerMoveCallback(t *testing.T) {
	tr := NewTracker()
	var seen []Move
	tr.SetMoveCallback(func(m Move) {
		seen = append(seen, m)
	})

	tr.Apply(R, U2)
	_, err := tr.Undo()
	require.NoError(t, err)
	assert.Equal(t, []Move{R, U2, U2}, seen)
}

func TestTrackerSkipsInvalidMoves(t *testing.T) {
	tr := NewTracker()
	tr.Apply(Move{Face: FaceR, Turn: 3}, Move{Face: 7, Turn: CW})
	assert.True(t, tr.IsSolved())
	assert.False(t, tr.CanUndo())
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker()
	tr.Apply(SexyMove...)
	tr.Reset()
	assert.True(t, tr.IsSolved())
	assert.False(t, tr.CanUndo())
	assert.Empty(t, tr.Moves())
}

func TestTrackerCubeIsCopy(t *testing.T) {
	tr := NewTracker()
	c := tr.Cube()
	c.Apply(R)
	assert.True(t, tr.IsSolved())
}
