package morph

import "github.com/JCGoran/data-morph/pkg/errors"

// Default configuration values shared by the CLI and library callers.
const (
	DefaultIterations = 100000
	DefaultDecimals   = 2
	DefaultNumFrames  = 100
	DefaultFreezeFor  = 0
)

// Config is the immutable configuration for one morph run.
type Config struct {
	// Iterations is the number of perturbation iterations (> 0).
	Iterations int

	// Decimals is the rounding precision at which summary statistics
	// must stay identical (0-9).
	Decimals int

	// FreezeFor is the number of trailing iterations during which no
	// mutation occurs, letting the animation settle on the final shape.
	// Must be non-negative and smaller than Iterations.
	FreezeFor int

	// RampIn and RampOut ease the perturbation magnitude at the start
	// and end of the run instead of starting/stopping abruptly.
	RampIn  bool
	RampOut bool

	// ForwardOnly skips the reverse (loop-closing) frame pass.
	ForwardOnly bool

	// NumFrames caps how many forward snapshots are recorded (>= 1).
	NumFrames int

	// Seed seeds the run's random generator when Seeded is true.
	// Unseeded runs draw fresh entropy and are not reproducible.
	Seed   uint64
	Seeded bool

	// Hooks receives run progress events. Nil means no instrumentation.
	Hooks Hooks
}

// Validate checks the configuration before any engine work starts.
func (c Config) Validate() error {
	if c.Iterations <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "iterations must be positive, got %d", c.Iterations)
	}
	if c.Decimals < 0 || c.Decimals > 9 {
		return errors.New(errors.ErrCodeInvalidConfig, "decimals must be between 0 and 9, got %d", c.Decimals)
	}
	if c.FreezeFor < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "freeze must be non-negative, got %d", c.FreezeFor)
	}
	if c.FreezeFor >= c.Iterations {
		return errors.New(errors.ErrCodeInvalidConfig,
			"freeze (%d) must be smaller than iterations (%d)", c.FreezeFor, c.Iterations)
	}
	if c.NumFrames < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "num-frames must be at least 1, got %d", c.NumFrames)
	}
	return nil
}

// hooks returns the configured hooks or the no-op default.
func (c Config) hooks() Hooks {
	if c.Hooks == nil {
		return NoopHooks{}
	}
	return c.Hooks
}
