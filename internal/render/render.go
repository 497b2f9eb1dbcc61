// Package render draws a cube net for the terminal.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubestate"
)

// Theme maps each facelet color to a terminal color.
type Theme map[cubestate.Color]lipgloss.Color

// DefaultTheme returns the standard sticker colors.
func DefaultTheme() Theme {
	return Theme{
		cubestate.Green:  lipgloss.Color("#00A651"),
		cubestate.Blue:   lipgloss.Color("#0046AD"),
		cubestate.Orange: lipgloss.Color("#FF5800"),
		cubestate.Red:    lipgloss.Color("#C41E3A"),
		cubestate.White:  lipgloss.Color("#FFFFFF"),
		cubestate.Yellow: lipgloss.Color("#FFD500"),
	}
}

// ThemeFromConfig builds a theme from symbol -> color strings, falling back
// to the default for symbols the map leaves out.
func ThemeFromConfig(colors map[string]string) Theme {
	theme := DefaultTheme()
	for symbol, value := range colors {
		if len(symbol) != 1 {
			continue
		}
		if c, ok := cubestate.ParseColor(symbol[0]); ok {
			theme[c] = lipgloss.Color(value)
		}
	}
	return theme
}

// netLayout places faces on a 4x3 grid of 3x3 blocks:
//
//	  U
//	L F R B
//	  D
var netLayout = [3][4]int{
	{-1, int(cubestate.FaceU), -1, -1},
	{int(cubestate.FaceL), int(cubestate.FaceF), int(cubestate.FaceR), int(cubestate.FaceB)},
	{-1, int(cubestate.FaceD), -1, -1},
}

// Net renders the unfolded cube with colored stickers.
func Net(c *cubestate.Cube, theme Theme) string {
	faces := c.Faces()
	styles := make(map[cubestate.Color]lipgloss.Style, len(theme))
	for color, bg := range theme {
		styles[color] = lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color("#000000"))
	}

	var b strings.Builder
	for _, band := range netLayout {
		for row := 0; row < 3; row++ {
			for _, face := range band {
				if face < 0 {
					b.WriteString(strings.Repeat(" ", 7))
					continue
				}
				for col := 0; col < 3; col++ {
					color := faces[face][row*3+col]
					b.WriteString(styles[color].Render(" " + color.String()))
				}
				b.WriteByte(' ')
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), " \n") + "\n"
}

// Plain renders the net as letters only.
func Plain(c *cubestate.Cube) string {
	return c.String()
}
