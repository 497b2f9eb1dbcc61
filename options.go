package cubestate

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Option configures Tracker behavior.
type Option func(*config)

type config struct {
	moveHistory bool
	rng         *rand.Rand
	logger      *log.Logger
}

func defaultConfig() *config {
	return &config{
		moveHistory: true,
	}
}

// WithMoveHistory enables or disables the applied-move log.
// When enabled (default), every applied move is available via Moves().
// Undo and redo work either way.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// WithRand sets the random source used by Scramble.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		c.rng = rng
	}
}

// WithSeed seeds the random source used by Scramble.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger for history and state events.
// Trackers are silent by default.
func WithLogger(logger *log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func (c *config) finish() {
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
}
