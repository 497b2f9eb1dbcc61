// Package cubestate models the state of a 3x3x3 cube as 54 colored facelets
// and the 18 face turns that permute them.
//
// # Features
//
//   - Solved-state construction and facelet queries
//   - Table-driven face turns (F, F', F2 ... D, D', D2)
//   - Undo/redo history through Tracker
//   - Seedable scrambles
//   - Compact 54-symbol state strings
//
// # Quick Start
//
//	cube := cubestate.New()
//	cube.Apply(cubestate.R, cubestate.U, cubestate.RPrime, cubestate.UPrime)
//	fmt.Println(cube.State())
//
// # History
//
// A Tracker records moves so they can be undone and redone:
//
//	t := cubestate.NewTracker(cubestate.WithSeed(42))
//	t.Scramble(20)
//	for t.CanUndo() {
//	    t.Undo()
//	}
//	fmt.Println("Solved:", t.IsSolved())
//
// # State Strings
//
// State returns one symbol per facelet from the alphabet "GBORWY", faces in
// F B L R U D order, each face row by row. SetState accepts any such string
// whose centers match the fixed face colors; it does not check that the
// configuration is reachable.
package cubestate
