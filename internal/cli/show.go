package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubestate"
	"github.com/SeamusWaldron/cubestate/internal/render"
	"github.com/SeamusWaldron/cubestate/internal/storage"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Draw the active cube",
	RunE:  runShow,
}

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Print the active cube's 54-symbol state",
	RunE:  runState,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the active session's moves and journal",
	RunE:  runHistory,
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recent sessions",
	RunE:  runSessions,
}

var (
	showPlain     bool
	sessionsLimit int
)

func init() {
	showCmd.Flags().BoolVar(&showPlain, "plain", false, "Print letters without colors")
	sessionsCmd.Flags().IntVarP(&sessionsLimit, "limit", "l", 20, "Maximum sessions to list")

	rootCmd.AddCommand(showCmd, stateCmd, historyCmd, sessionsCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	e, err := openActive()
	if err != nil {
		return err
	}
	defer e.close()

	t := e.session.Tracker()
	if showPlain {
		fmt.Print(render.Plain(t.Cube()))
	} else {
		fmt.Print(render.Net(t.Cube(), render.ThemeFromConfig(e.cfg.Theme)))
	}
	fmt.Println()
	if t.IsSolved() {
		fmt.Println("Solved")
	}
	fmt.Printf("Undo: %d  Redo: %d\n", t.UndoDepth(), t.RedoDepth())
	return nil
}

func runState(cmd *cobra.Command, args []string) error {
	e, err := openActive()
	if err != nil {
		return err
	}
	defer e.close()

	fmt.Println(e.session.Tracker().State())
	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	e, err := openActive()
	if err != nil {
		return err
	}
	defer e.close()

	t := e.session.Tracker()
	fmt.Printf("Session: %s\n\n", e.session.ID())
	fmt.Printf("Moves (%d): %s\n", len(t.Moves()), cubestate.FormatMoves(t.Moves()))
	fmt.Printf("Undo  (%d): %s\n", t.UndoDepth(), cubestate.FormatMoves(t.UndoStack()))
	fmt.Printf("Redo  (%d): %s\n", t.RedoDepth(), cubestate.FormatMoves(t.RedoStack()))
	net := cubestate.Simplify(t.UndoStack())
	fmt.Printf("Net   (%d): %s\n", len(net), cubestate.FormatMoves(net))

	entries, err := storage.NewJournalRepository(e.db).GetBySession(e.session.ID())
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Printf("%-5s %-20s %-9s %s\n", "SEQ", "TIME", "KIND", "MOVES")
	for _, entry := range entries {
		fmt.Printf("%-5d %-20s %-9s %s\n",
			entry.Seq,
			entry.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			entry.Kind,
			entry.Notation,
		)
	}
	return nil
}

func runSessions(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	sessions, err := storage.NewSessionRepository(e.db).List(sessionsLimit)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions found")
		return nil
	}

	active := e.stateFile.ActiveSessionID()
	fmt.Printf("  %-36s %-16s %-20s %s\n", "ID", "NAME", "UPDATED", "SOLVED")
	for _, s := range sessions {
		marker := " "
		if s.SessionID == active {
			marker = "*"
		}
		name := "-"
		if s.Name != nil {
			name = *s.Name
		}
		solved := "no"
		if c, err := cubestate.ParseState(s.State); err == nil && c.IsSolved() {
			solved = "yes"
		}
		fmt.Printf("%s %-36s %-16s %-20s %s\n",
			marker, s.SessionID, name, s.UpdatedAt.Local().Format(time.DateTime), solved)
	}
	return nil
}
