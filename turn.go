package cubestate

// rotateFaceCW rotates a face's own facelets 90 degrees clockwise.
func (c *Cube) rotateFaceCW(face Face) {
	f := &c.facelets[face]
	t := *f

	// Corners: 0<-6, 2<-0, 8<-2, 6<-8
	f[0], f[2], f[8], f[6] = t[6], t[0], t[2], t[8]
	// Edges: 1<-3, 5<-1, 7<-5, 3<-7
	f[1], f[5], f[7], f[3] = t[3], t[1], t[5], t[7]
}

// rotateFaceCCW rotates a face's own facelets 90 degrees counter-clockwise.
func (c *Cube) rotateFaceCCW(face Face) {
	f := &c.facelets[face]
	t := *f

	f[0], f[2], f[8], f[6] = t[2], t[8], t[6], t[0]
	f[1], f[5], f[7], f[3] = t[5], t[7], t[3], t[1]
}

// moveCW applies a clockwise quarter turn.
func (c *Cube) moveCW(face Face) {
	c.rotateFaceCW(face)
	c.applyRing(&rings[face][clockwise])
}

// moveCCW applies a counter-clockwise quarter turn.
func (c *Cube) moveCCW(face Face) {
	c.rotateFaceCCW(face)
	c.applyRing(&rings[face][counterClockwise])
}

// turn applies a single move. Unknown faces or turns are ignored.
func (c *Cube) turn(m Move) {
	if m.Face < 0 || m.Face >= faceCount {
		return
	}
	switch m.Turn {
	case CW:
		c.moveCW(m.Face)
	case CCW:
		c.moveCCW(m.Face)
	case Double:
		c.moveCW(m.Face)
		c.moveCW(m.Face)
	}
}

// Apply applies moves to the cube in order.
func (c *Cube) Apply(moves ...Move) {
	for _, m := range moves {
		c.turn(m)
	}
}

// ApplyNotation parses and applies a space-separated move sequence.
// Nothing is applied if any token is invalid.
func (c *Cube) ApplyNotation(notation string) error {
	moves, err := ParseMoves(notation)
	if err != nil {
		return err
	}
	c.Apply(moves...)
	return nil
}

// MoveFace applies a turn to a face.
// turn: 1 = CW, -1 = CCW, 2 = 180 degrees
func (c *Cube) MoveFace(face Face, turn int) {
	c.turn(Move{Face: face, Turn: Turn(turn)})
}
