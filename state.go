package cubestate

import (
	"fmt"
	"strings"
)

// State encodes all 54 facelets as color symbols, face by face in
// F B L R U D order, each face row-major.
func (c *Cube) State() string {
	var b strings.Builder
	b.Grow(FaceletCount)
	for _, face := range c.facelets {
		for _, color := range face {
			b.WriteString(color.String())
		}
	}
	return b.String()
}

// ParseState decodes a State string into a new cube.
//
// The string must hold exactly 54 symbols from "GBORWY" and every face center
// must carry that face's color. Whether the configuration is reachable by
// legal moves is not checked.
func ParseState(state string) (*Cube, error) {
	if len(state) != FaceletCount {
		return nil, fmt.Errorf("%w: want %d symbols, got %d", ErrInvalidState, FaceletCount, len(state))
	}

	c := &Cube{}
	for i := 0; i < FaceletCount; i++ {
		color, ok := ParseColor(state[i])
		if !ok {
			return nil, fmt.Errorf("%w: unknown symbol %q at %d", ErrInvalidState, state[i], i)
		}
		*c.at(i) = color
	}

	for _, face := range Faces {
		if got := c.facelets[face][centerSlot]; got != face.SolvedColor() {
			return nil, fmt.Errorf("%w: %s center is %s, want %s", ErrInvalidState, face, got, face.SolvedColor())
		}
	}

	return c, nil
}

// SetState replaces every facelet from a State string.
// On error the cube is left unchanged.
func (c *Cube) SetState(state string) error {
	parsed, err := ParseState(state)
	if err != nil {
		return err
	}
	c.facelets = parsed.facelets
	return nil
}
