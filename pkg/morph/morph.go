// Package morph implements the perturbation engine at the heart of
// data-morph: it walks a point cloud toward a target shape one small
// move at a time while keeping the cloud's summary statistics, rounded
// to a configured precision, identical to the original's.
//
// The engine is sequential by construction: each iteration's
// acceptance decision depends on the statistics of the previous
// iteration's dataset, so a single run cannot be parallelized. Runs
// for different target shapes are fully independent and may execute
// concurrently, each with its own state.
//
// Randomness comes from a single generator owned by the run. Given the
// same start dataset, target shape, and seeded Config, the sequence of
// chosen indices, displacements, and accept/reject outcomes is
// reproducible bit-for-bit, and so are the final dataset and every
// frame.
package morph

import (
	"context"
	"math"
	"math/rand/v2"
	"time"

	"github.com/JCGoran/data-morph/pkg/dataset"
	"github.com/JCGoran/data-morph/pkg/errors"
	"github.com/JCGoran/data-morph/pkg/geometry"
	"github.com/JCGoran/data-morph/pkg/shapes"
)

const (
	// maxAttempts bounds candidate proposals per iteration; when it is
	// exhausted the iteration is a no-op, never an error.
	maxAttempts = 200

	// stepFraction sizes the base perturbation magnitude relative to
	// the larger bounds dimension.
	stepFraction = 0.01

	// rampFloor is the minimum ramp factor at the eased ends of a run.
	rampFloor = 0.1

	// rampFraction is the share of iterations spent in each ramp window.
	rampFraction = 0.1

	// stagnationChance is the probability, scaled by the ramp factor,
	// of accepting a distance-worsening move to break local stagnation.
	stagnationChance = 0.01
)

// RunStats summarizes a completed run.
type RunStats struct {
	Accepted int           // iterations that applied a move
	NoOps    int           // iterations that exhausted their attempts
	Frozen   int           // iterations spent in the freeze period
	Elapsed  time.Duration // wall-clock duration of the loop
}

// Result is the outcome of a morph run.
type Result struct {
	// Final is the dataset after the last iteration.
	Final *dataset.Dataset

	// Frames is the animation-ordered frame sequence: the sampled
	// forward trajectory, followed by its reversed interior unless the
	// run was forward-only.
	Frames []Frame

	// Stats describes the run.
	Stats RunStats
}

// state is the engine's mutable run-time bookkeeping. It is created at
// run start, mutated only by the run that owns it, and discarded when
// Morph returns.
type state struct {
	current  *dataset.Dataset
	original dataset.SummaryStatistics
	rng      *rand.Rand
	phase    State
	maxStep  float64
}

// Morph transforms start toward target under cfg and returns the final
// dataset plus the recorded frame sequence. The start dataset is never
// mutated; the engine works on a private clone.
//
// Morph fails fast, before the loop, on an invalid configuration, a
// start dataset with fewer than 2 points, or a target that cannot
// produce a finite distance within the start bounds. Once running it
// only stops early through ctx; cancellation is honored between
// iterations and returns ctx's error alongside a nil Result.
func Morph(ctx context.Context, start *dataset.Dataset, target shapes.Shape, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if start.Len() < 2 {
		return nil, errors.New(errors.ErrCodeDatasetTooSmall,
			"dataset %q has %d points, need at least 2", start.Name, start.Len())
	}
	if err := probeTarget(target, start.Bounds); err != nil {
		return nil, err
	}

	original, err := dataset.Describe(start, cfg.Decimals)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if !cfg.Seeded {
		seed = rand.Uint64()
	}

	st := &state{
		current:  start.Clone(),
		original: original,
		rng:      rand.New(rand.NewPCG(seed, seed^0xdeadbeef)),
		phase:    StateInitializing,
		maxStep:  stepFraction * math.Max(start.Bounds.Width(), start.Bounds.Height()),
	}

	hooks := cfg.hooks()
	hooks.OnStart(target.Name(), cfg.Iterations)

	frameAt := make(map[int]int, cfg.NumFrames)
	for i, idx := range SampleIndices(cfg.Iterations, cfg.NumFrames) {
		frameAt[idx] = i
	}

	var (
		stats     RunStats
		frames    = make([]Frame, 0, len(frameAt))
		freezeAt  = cfg.Iterations - cfg.FreezeFor
		startTime = time.Now()
	)

	st.transition(StatePerturbing, 0, hooks)
	for i := range cfg.Iterations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if i >= freezeAt {
			if st.phase != StateFrozen {
				st.transition(StateFrozen, i, hooks)
			}
			stats.Frozen++
		} else if st.perturb(i, freezeAt, target, cfg) {
			stats.Accepted++
		} else {
			stats.NoOps++
		}

		if frame, ok := frameAt[i]; ok {
			frames = append(frames, Frame{Iteration: i, Snapshot: st.current.Clone()})
			hooks.OnFrame(i, frame)
		}
	}
	st.transition(StateDone, cfg.Iterations, hooks)

	stats.Elapsed = time.Since(startTime)
	hooks.OnDone(stats)

	return &Result{
		Final:  st.current.Clone(),
		Frames: Loop(frames, cfg.ForwardOnly),
		Stats:  stats,
	}, nil
}

// perturb runs one iteration's bounded-attempt proposal loop and
// reports whether a move was applied.
func (st *state) perturb(i, freezeAt int, target shapes.Shape, cfg Config) bool {
	step := st.maxStep * rampFactor(i, freezeAt, cfg)
	allowWorse := stagnationChance * rampFactor(i, freezeAt, cfg)

	for range maxAttempts {
		idx := st.rng.IntN(st.current.Len())
		before := st.current.Points[idx]
		candidate := geometry.Point{
			X: before.X + (st.rng.Float64()*2-1)*step,
			Y: before.Y + (st.rng.Float64()*2-1)*step,
		}
		if !st.current.Bounds.Contains(candidate) {
			continue
		}
		if target.Distance(candidate) > target.Distance(before) && st.rng.Float64() >= allowWorse {
			continue
		}

		// The statistics check is the expensive gate, so it runs last:
		// apply the move, recompute, and revert on violation.
		st.current.Points[idx] = candidate
		after, err := dataset.Describe(st.current, cfg.Decimals)
		if err != nil || !after.Equal(st.original) {
			st.current.Points[idx] = before
			continue
		}
		return true
	}
	return false
}

// rampFactor returns the magnitude scale r(i) in [rampFloor, 1]. The
// eased windows cover the first rampFraction of the run when RampIn is
// set and the last rampFraction before the freeze period when RampOut
// is set; everywhere else r is 1.
func rampFactor(i, freezeAt int, cfg Config) float64 {
	window := max(1, int(float64(cfg.Iterations)*rampFraction))
	r := 1.0
	if cfg.RampIn && i < window {
		r = min(r, smoothstep(float64(i)/float64(window)))
	}
	if cfg.RampOut && i >= freezeAt-window {
		r = min(r, smoothstep(float64(freezeAt-i)/float64(window)))
	}
	return rampFloor + (1-rampFloor)*r
}

// smoothstep is the cubic ease 3t² - 2t³ clamped to [0, 1].
func smoothstep(t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	return t * t * (3 - 2*t)
}

// transition advances the state machine and notifies hooks.
func (st *state) transition(to State, iteration int, hooks Hooks) {
	hooks.OnTransition(st.phase, to, iteration)
	st.phase = to
}

// probeTarget verifies the target produces finite, non-negative
// distances across the start bounds before the run commits to it.
func probeTarget(target shapes.Shape, bounds geometry.Bounds) error {
	probes := bounds.Corners()
	for _, p := range append(probes[:], bounds.Center()) {
		d := target.Distance(p)
		if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
			return errors.New(errors.ErrCodeInvalidConfig,
				"target shape %q produced distance %v at (%g, %g)", target.Name(), d, p.X, p.Y)
		}
	}
	return nil
}
