// cubestate - CLI application for tracking the state of a 3x3x3 cube.
package main

import (
	"github.com/SeamusWaldron/cubestate/internal/cli"
)

func main() {
	cli.Execute()
}
