// Package cli implements the command-line interface for cubestate.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubestate"
	"github.com/SeamusWaldron/cubestate/internal/config"
	"github.com/SeamusWaldron/cubestate/internal/session"
	"github.com/SeamusWaldron/cubestate/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath     string
	configPath string
	verbose    bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubestate",
	Short: "3x3x3 cube state tracker",
	Long: `cubestate - Track the state of a 3x3x3 cube from the command line.

Turn faces in standard notation, scramble, undo and redo. The cube and its
history are stored in a local SQLite database, so every command continues
where the last one left off. Use 'cubestate play' for an interactive view.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubestate/cubestate.db)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.cubestate/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// newLogger builds the command logger. --verbose enables debug output.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "cubestate",
		Level:  log.WarnLevel,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
		logger.SetReportTimestamp(true)
	}
	return logger
}

// env is what most commands need: settings, the database and the active
// session, opened together and released with close.
type env struct {
	cfg       config.Config
	logger    *log.Logger
	db        *storage.DB
	stateFile *session.StateFile
	session   *session.Session
}

func (e *env) close() {
	if e.db != nil {
		e.db.Close()
	}
}

// getDBPath returns the database path: --db, then the state file, then config.
func getDBPath(cfg config.Config, sf *session.StateFile) string {
	if dbPath != "" {
		return dbPath
	}
	if sf != nil && sf.DBPath() != "" {
		return sf.DBPath()
	}
	return cfg.DBPath
}

// openEnv loads settings and opens the database without touching sessions.
func openEnv() (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger := newLogger()

	sf, err := session.NewDefaultStateFile()
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	path := getDBPath(cfg, sf)
	db, err := storage.Open(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("database opened", "path", db.Path())

	return &env{cfg: cfg, logger: logger, db: db, stateFile: sf}, nil
}

// openActive opens the environment and resumes the active session,
// creating one if needed.
func openActive() (*env, error) {
	e, err := openEnv()
	if err != nil {
		return nil, err
	}
	s, err := session.Resume(e.db, e.stateFile, e.trackerOptions()...)
	if err != nil {
		e.close()
		return nil, err
	}
	e.logger.Debug("session resumed", "session", s.ID())
	e.session = s
	return e, nil
}

func (e *env) trackerOptions() []cubestate.Option {
	return []cubestate.Option{cubestate.WithLogger(e.logger)}
}

// withSession runs fn on the active session and saves it afterwards.
func withSession(fn func(e *env) error) error {
	e, err := openActive()
	if err != nil {
		return err
	}
	defer e.close()

	if err := fn(e); err != nil {
		return err
	}
	return e.session.Save()
}
