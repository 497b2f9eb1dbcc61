package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubestate/internal/render"
	"github.com/SeamusWaldron/cubestate/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Turn the active cube interactively",
	Long: `Open an interactive view of the active cube.

Keys:
  f b l r u d    Turn clockwise
  F B L R U D    Turn counter-clockwise
  2              Make the next turn a half turn
  z / y          Undo / redo
  s              Scramble
  x              Reset
  q              Quit

Every change is saved to the active session as it happens.`,
	RunE: runPlay,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive cube over SSH",
	Long: `Start an SSH server hosting the interactive cube.

Each connection gets its own cube, stored as a session named after the SSH user.
Connect with: ssh -p 23235 localhost`,
	RunE: runServe,
}

var serveAddress string

func init() {
	serveCmd.Flags().StringVarP(&serveAddress, "address", "a", "", "Listen address (default from config)")

	rootCmd.AddCommand(playCmd, serveCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	e, err := openActive()
	if err != nil {
		return err
	}
	defer e.close()

	model := tui.NewModel(e.session, render.ThemeFromConfig(e.cfg.Theme), e.cfg.ScrambleLength)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	cfg := tui.SSHServerConfigFrom(e.cfg)
	if serveAddress != "" {
		cfg.Address = serveAddress
	}

	logger := e.logger.WithPrefix("cubestate-ssh")
	if !verbose {
		logger.SetLevel(log.InfoLevel)
		logger.SetReportTimestamp(true)
	}

	srv, err := tui.NewSSHServer(cfg, e.db, logger)
	if err != nil {
		return err
	}
	return srv.ListenAndServe()
}
