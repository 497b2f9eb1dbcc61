package cubestate

import (
	"fmt"
	"strings"
)

// Color represents a facelet color.
type Color byte

const (
	Green  Color = 0 // Front face when solved
	Blue   Color = 1 // Back face when solved
	Orange Color = 2 // Left face when solved
	Red    Color = 3 // Right face when solved
	White  Color = 4 // Up face when solved
	Yellow Color = 5 // Down face when solved
)

// colorSymbols is the serialization alphabet, indexed by Color.
const colorSymbols = "GBORWY"

// String returns the single-letter symbol used in state strings.
func (c Color) String() string {
	if int(c) < len(colorSymbols) {
		return colorSymbols[c : c+1]
	}
	return "?"
}

// Name returns the full color name.
func (c Color) Name() string {
	switch c {
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Orange:
		return "orange"
	case Red:
		return "red"
	case White:
		return "white"
	case Yellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// ParseColor converts a state-string symbol to a Color.
func ParseColor(symbol byte) (Color, bool) {
	i := strings.IndexByte(colorSymbols, symbol)
	if i < 0 {
		return 0, false
	}
	return Color(i), true
}

// Face identifies one side of the cube.
type Face int

const (
	FaceF Face = 0 // Front (Green)
	FaceB Face = 1 // Back (Blue)
	FaceL Face = 2 // Left (Orange)
	FaceR Face = 3 // Right (Red)
	FaceU Face = 4 // Up (White)
	FaceD Face = 5 // Down (Yellow)
)

// Faces lists all faces in index order.
var Faces = [6]Face{FaceF, FaceB, FaceL, FaceR, FaceU, FaceD}

func (f Face) String() string {
	if f >= 0 && f < 6 {
		return "FBLRUD"[f : f+1]
	}
	return "?"
}

// SolvedColor returns the color a face carries when the cube is solved.
// It is also the color of the face's center for the cube's lifetime.
func (f Face) SolvedColor() Color {
	return Color(f)
}

const (
	faceCount  = 6
	faceSize   = 9
	centerSlot = 4

	// FaceletCount is the number of facelets on the cube.
	FaceletCount = faceCount * faceSize
)

// Cube represents a 3x3x3 cube as 54 facelets.
// Each face has 9 facelets indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// Side faces are viewed from outside with Up on top. Up is viewed from above
// with Back on top, Down from below with Front on top.
// The center (index 4) defines the face color and never moves.
type Cube struct {
	facelets [faceCount][faceSize]Color
}

// New creates a solved cube.
func New() *Cube {
	c := &Cube{}
	c.reset()
	return c
}

func (c *Cube) reset() {
	for _, face := range Faces {
		color := face.SolvedColor()
		for i := 0; i < faceSize; i++ {
			c.facelets[face][i] = color
		}
	}
}

// index returns the flat facelet index face*9+row*3+col.
func index(face Face, row, col int) int {
	return int(face)*faceSize + row*3 + col
}

// at returns the facelet at a flat index.
func (c *Cube) at(i int) *Color {
	return &c.facelets[i/faceSize][i%faceSize]
}

// Facelet returns the color at (face, row, col).
// Out-of-range coordinates report ErrInvalidIndex.
func (c *Cube) Facelet(face Face, row, col int) (Color, error) {
	if face < 0 || face >= faceCount || row < 0 || row >= 3 || col < 0 || col >= 3 {
		return 0, fmt.Errorf("%w: face=%d row=%d col=%d", ErrInvalidIndex, face, row, col)
	}
	return c.facelets[face][row*3+col], nil
}

// Faces returns a copy of all facelets, indexed [face][row*3+col].
func (c *Cube) Faces() [faceCount][faceSize]Color {
	return c.facelets
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// Equal reports whether both cubes hold identical facelets.
func (c *Cube) Equal(other *Cube) bool {
	return other != nil && c.facelets == other.facelets
}

// IsSolved returns true if every face is uniformly its center color.
func (c *Cube) IsSolved() bool {
	for _, face := range Faces {
		center := c.facelets[face][centerSlot]
		for i := 0; i < faceSize; i++ {
			if c.facelets[face][i] != center {
				return false
			}
		}
	}
	return true
}

// ColorCounts returns how many facelets carry each color.
// Moves never change these counts.
func (c *Cube) ColorCounts() [faceCount]int {
	var counts [faceCount]int
	for _, face := range c.facelets {
		for _, color := range face {
			if int(color) < faceCount {
				counts[color]++
			}
		}
	}
	return counts
}

// String returns the unfolded net of the cube.
func (c *Cube) String() string {
	var b strings.Builder

	writeRow := func(face Face, row int) {
		for col := 0; col < 3; col++ {
			b.WriteString(c.facelets[face][row*3+col].String())
			b.WriteByte(' ')
		}
	}

	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(FaceU, row)
		b.WriteByte('\n')
	}

	// L, F, R, B side by side
	for row := 0; row < 3; row++ {
		for _, face := range []Face{FaceL, FaceF, FaceR, FaceB} {
			writeRow(face, row)
		}
		b.WriteByte('\n')
	}

	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(FaceD, row)
		b.WriteByte('\n')
	}

	return b.String()
}

// Debug returns a short summary line.
func (c *Cube) Debug() string {
	return fmt.Sprintf("Solved: %v State: %s", c.IsSolved(), c.State())
}
