package cubestate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRoundTrip(t *testing.T) {
	c := New()
	c.Apply(ScrambleSeed(5, 40)...)

	state := c.State()
	require.Len(t, state, FaceletCount)
	for i := 0; i < len(state); i++ {
		_, ok := ParseColor(state[i])
		assert.True(t, ok, "symbol %q at %d", state[i], i)
	}

	other := New()
	require.NoError(t, other.SetState(state))
	assert.True(t, other.Equal(c))
	assert.Equal(t, state, other.State())
}

func TestStateOrderIsFaceRowCol(t *testing.T) {
	c := New()
	c.Apply(R)
	state := c.State()
	for _, face := range Faces {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				got, err := c.Facelet(face, row, col)
				require.NoError(t, err)
				assert.Equal(t, got.String(), string(state[index(face, row, col)]))
			}
		}
	}
}

func TestSetStateRejectsBadInput(t *testing.T) {
	wrongCenter := []byte(solvedState)
	wrongCenter[4] = 'B'

	tests := map[string]string{
		"too short":    solvedState[:53],
		"too long":     solvedState + "G",
		"empty":        "",
		"bad symbol":   "X" + solvedState[1:],
		"lowercase":    strings.ToLower(solvedState),
		"wrong center": string(wrongCenter),
	}

	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			c := New()
			c.Apply(F)
			before := c.State()

			err := c.SetState(in)
			assert.ErrorIs(t, err, ErrInvalidState)
			assert.Equal(t, before, c.State())
		})
	}
}

func TestSetStateAcceptsUnreachableConfiguration(t *testing.T) {
	// Two corner stickers swapped: not reachable, but shape-valid.
	state := []byte(solvedState)
	state[0], state[9] = state[9], state[0]

	c := New()
	require.NoError(t, c.SetState(string(state)))
	assert.False(t, c.IsSolved())
}
