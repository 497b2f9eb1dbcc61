package cubestate

// direction selects a ring table for a quarter turn.
type direction int

const (
	clockwise        direction = 0
	counterClockwise direction = 1
)

// strip returns the flat indices of three facelets on one face.
func strip(face Face, a, b, c int) [3]int {
	base := int(face) * faceSize
	return [3]int{base + a, base + b, base + c}
}

// ring joins four strips into the 12-facelet cycle around a turning face.
// Applying it moves each strip into the slot of the strip before it.
func ring(s0, s1, s2, s3 [3]int) [12]int {
	var r [12]int
	for i, s := range [4][3]int{s0, s1, s2, s3} {
		copy(r[i*3:], s[:])
	}
	return r
}

// rings holds the edge-transfer tables, [face][direction].
var rings = [faceCount][2][12]int{
	FaceF: {
		clockwise: ring(
			strip(FaceR, 0, 3, 6), // right, left column
			strip(FaceU, 6, 7, 8), // up, bottom row
			strip(FaceL, 8, 5, 2), // left, right column
			strip(FaceD, 2, 1, 0), // down, top row
		),
		counterClockwise: ring(
			strip(FaceD, 2, 1, 0),
			strip(FaceL, 8, 5, 2),
			strip(FaceU, 6, 7, 8),
			strip(FaceR, 0, 3, 6),
		),
	},
	FaceB: {
		clockwise: ring(
			strip(FaceL, 0, 3, 6), // left, left column
			strip(FaceU, 2, 1, 0), // up, top row
			strip(FaceR, 8, 5, 2), // right, right column
			strip(FaceD, 6, 7, 8), // down, bottom row
		),
		counterClockwise: ring(
			strip(FaceL, 0, 3, 6),
			strip(FaceD, 6, 7, 8),
			strip(FaceR, 8, 5, 2),
			strip(FaceU, 2, 1, 0),
		),
	},
	FaceL: {
		clockwise: ring(
			strip(FaceF, 0, 3, 6), // front, left column
			strip(FaceU, 0, 3, 6), // up, left column
			strip(FaceB, 8, 5, 2), // back, right column
			strip(FaceD, 0, 3, 6), // down, left column
		),
		counterClockwise: ring(
			strip(FaceD, 0, 3, 6),
			strip(FaceB, 8, 5, 2),
			strip(FaceU, 0, 3, 6),
			strip(FaceF, 0, 3, 6),
		),
	},
	FaceR: {
		clockwise: ring(
			strip(FaceF, 8, 5, 2), // front, right column
			strip(FaceD, 8, 5, 2), // down, right column
			strip(FaceB, 0, 3, 6), // back, left column
			strip(FaceU, 8, 5, 2), // up, right column
		),
		counterClockwise: ring(
			strip(FaceF, 8, 5, 2),
			strip(FaceU, 8, 5, 2),
			strip(FaceB, 0, 3, 6),
			strip(FaceD, 8, 5, 2),
		),
	},
	FaceU: {
		clockwise: ring(
			strip(FaceR, 0, 1, 2), // top rows
			strip(FaceB, 0, 1, 2),
			strip(FaceL, 0, 1, 2),
			strip(FaceF, 0, 1, 2),
		),
		counterClockwise: ring(
			strip(FaceF, 0, 1, 2),
			strip(FaceL, 0, 1, 2),
			strip(FaceB, 0, 1, 2),
			strip(FaceR, 0, 1, 2),
		),
	},
	FaceD: {
		clockwise: ring(
			strip(FaceF, 6, 7, 8), // bottom rows
			strip(FaceL, 6, 7, 8),
			strip(FaceB, 6, 7, 8),
			strip(FaceR, 6, 7, 8),
		),
		counterClockwise: ring(
			strip(FaceL, 6, 7, 8),
			strip(FaceF, 6, 7, 8),
			strip(FaceR, 6, 7, 8),
			strip(FaceB, 6, 7, 8),
		),
	},
}

// applyRing slides the ring one strip: ring[i] takes the old ring[i+3],
// and the last strip takes the old first strip.
func (c *Cube) applyRing(r *[12]int) {
	var snapshot [12]Color
	for i, idx := range r {
		snapshot[i] = *c.at(idx)
	}
	for i, idx := range r {
		*c.at(idx) = snapshot[(i+3)%12]
	}
}
