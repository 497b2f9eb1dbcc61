package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubestate"
	"github.com/SeamusWaldron/cubestate/internal/session"
)

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Start a new session with a solved cube",
	Long:  `Create a new session holding a solved cube and make it the active session.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runNew,
}

var applyCmd = &cobra.Command{
	Use:   "apply <moves>",
	Short: "Apply moves in standard notation",
	Long: `Apply a move sequence to the active cube.

Moves are face letters F B L R U D, optionally followed by ' (counter-clockwise)
or 2 (half turn). Nothing is applied if any move is invalid.

Examples:
  cubestate apply "R U R' U'"
  cubestate apply F2 B L`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Apply random moves",
	Long:  `Apply random face turns to the active cube. Each move can be undone on its own.`,
	RunE:  runScramble,
}

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Revert the most recent move",
	RunE:  runUndo,
}

var redoCmd = &cobra.Command{
	Use:   "redo",
	Short: "Re-apply the most recently undone move",
	RunE:  runRedo,
}

var loadCmd = &cobra.Command{
	Use:   "load <state>",
	Short: "Replace the cube with a 54-symbol state",
	Long: `Replace the active cube with a state string.

The state is 54 symbols from G B O R W Y, faces in the order F B L R U D,
each face row by row. Centers must match their face. Loading clears the
undo and redo history.`,
	Args: cobra.ExactArgs(1),
	RunE: runLoad,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Return the active cube to solved and clear its history",
	RunE:  runReset,
}

var (
	scrambleLength int
	scrambleSeed   int64
)

func init() {
	scrambleCmd.Flags().IntVarP(&scrambleLength, "moves", "n", 0, "Number of moves (default from config)")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed for a reproducible scramble")

	rootCmd.AddCommand(newCmd, applyCmd, scrambleCmd, undoCmd, redoCmd, loadCmd, resetCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	name := ""
	if len(args) > 0 {
		name = args[0]
	}

	s, err := session.Create(e.db, name, e.trackerOptions()...)
	if err != nil {
		return err
	}
	if err := e.stateFile.SetActiveSession(s.ID()); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	fmt.Printf("Session started: %s\n", s.ID())
	return nil
}

func runApply(cmd *cobra.Command, args []string) error {
	return withSession(func(e *env) error {
		moves, err := e.session.Apply(strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Printf("Applied: %s\n", cubestate.FormatMoves(moves))
		printSolved(e)
		return nil
	})
}

func runScramble(cmd *cobra.Command, args []string) error {
	return withSession(func(e *env) error {
		n := scrambleLength
		if !cmd.Flags().Changed("moves") {
			n = e.cfg.ScrambleLength
		}

		var moves []cubestate.Move
		var err error
		if cmd.Flags().Changed("seed") {
			moves, err = e.session.ScrambleSeed(n, scrambleSeed)
		} else {
			moves, err = e.session.Scramble(n)
		}
		if err != nil {
			return err
		}

		fmt.Printf("Scramble: %s\n", cubestate.FormatMoves(moves))
		return nil
	})
}

func runUndo(cmd *cobra.Command, args []string) error {
	return withSession(func(e *env) error {
		m, err := e.session.Undo()
		if err != nil {
			return err
		}
		fmt.Printf("Undid %s (%d more)\n", m, e.session.Tracker().UndoDepth())
		printSolved(e)
		return nil
	})
}

func runRedo(cmd *cobra.Command, args []string) error {
	return withSession(func(e *env) error {
		m, err := e.session.Redo()
		if err != nil {
			return err
		}
		fmt.Printf("Redid %s (%d more)\n", m, e.session.Tracker().RedoDepth())
		printSolved(e)
		return nil
	})
}

func runLoad(cmd *cobra.Command, args []string) error {
	return withSession(func(e *env) error {
		if err := e.session.Load(args[0]); err != nil {
			return err
		}
		fmt.Println("State loaded")
		printSolved(e)
		return nil
	})
}

func runReset(cmd *cobra.Command, args []string) error {
	return withSession(func(e *env) error {
		e.session.Reset()
		fmt.Println("Cube reset")
		return nil
	})
}

func printSolved(e *env) {
	if e.session.Tracker().IsSolved() {
		fmt.Println("Solved!")
	}
}
