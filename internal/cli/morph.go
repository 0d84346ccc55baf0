package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/JCGoran/data-morph/pkg/dataset"
	"github.com/JCGoran/data-morph/pkg/errors"
	"github.com/JCGoran/data-morph/pkg/export"
	"github.com/JCGoran/data-morph/pkg/morph"
	"github.com/JCGoran/data-morph/pkg/shapes"
)

// morphOpts holds the command-line flags for the morph command.
type morphOpts struct {
	targets     []string  // target shape names; empty means the full catalog
	iterations  int       // perturbation iterations per run
	decimals    int       // statistics rounding precision (0-9)
	freeze      int       // trailing no-mutation iterations
	seed        int64     // RNG seed; only used when seeded is true
	seeded      bool      // whether --seed was given
	numFrames   int       // maximum forward frames per animation
	rampIn      bool      // ease perturbation magnitude in at the start
	rampOut     bool      // ease perturbation magnitude out at the end
	forwardOnly bool      // skip the reverse (loop-closing) frame pass
	writeData   bool      // write the final dataset as CSV
	keepFrames  bool      // keep per-frame PNGs next to the GIF
	outputDir   string    // directory for GIFs and data files
	bounds      []float64 // symmetric bounds applied to both axes (2 floats)
	xyBounds    []float64 // per-axis bounds: xmin xmax ymin ymax (4 floats)
	parallel    bool      // run independent target shapes concurrently
	configPath  string    // optional TOML defaults file
}

// morphCommand creates the morph command, the tool's main entry point.
//
// Default settings:
//   - iterations: 100000, decimals: 2, num-frames: 100
//   - all catalog shapes when no --target-shape is given
//   - morph bounds derived from the data extent unless --bounds or
//     --xy-bounds overrides them (the two are mutually exclusive)
func (c *CLI) morphCommand() *cobra.Command {
	opts := morphOpts{
		iterations: morph.DefaultIterations,
		decimals:   morph.DefaultDecimals,
		numFrames:  morph.DefaultNumFrames,
		outputDir:  ".",
	}

	cmd := &cobra.Command{
		Use:   "morph [start-shape]",
		Short: "Morph a start shape into target shapes while preserving statistics",
		Long: `Morph a start shape into one or more target shapes.

The start shape is either a built-in dataset name (see 'datamorph
datasets') or a path to a CSV file of x,y points. Each target shape
produces an independent run and an animated GIF whose every frame
reports the same summary statistics as the start dataset, rounded to
--decimals places.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.seeded = cmd.Flags().Changed("seed")
			if err := applyDefaults(cmd, &opts); err != nil {
				return err
			}
			return c.runMorph(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.targets, "target-shape", "t", nil, "target shape(s); repeatable or comma-separated (default: all shapes)")
	cmd.Flags().IntVar(&opts.iterations, "iterations", opts.iterations, "number of perturbation iterations")
	cmd.Flags().IntVar(&opts.decimals, "decimals", opts.decimals, "statistics precision in decimal places (0-9)")
	cmd.Flags().IntVar(&opts.freeze, "freeze", 0, "trailing iterations with no movement")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed for reproducible runs")
	cmd.Flags().IntVar(&opts.numFrames, "num-frames", opts.numFrames, "maximum forward frames in the animation")
	cmd.Flags().BoolVar(&opts.rampIn, "ramp-in", false, "ease movement in at the start of the run")
	cmd.Flags().BoolVar(&opts.rampOut, "ramp-out", false, "ease movement out at the end of the run")
	cmd.Flags().BoolVar(&opts.forwardOnly, "forward-only", false, "do not append the reverse pass to the animation")
	cmd.Flags().BoolVar(&opts.writeData, "write-data", false, "write the final dataset as CSV")
	cmd.Flags().BoolVar(&opts.keepFrames, "keep-frames", false, "keep per-frame PNGs next to the GIF")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", opts.outputDir, "directory for generated files")
	cmd.Flags().Float64SliceVar(&opts.bounds, "bounds", nil, "symmetric min,max bounds applied to both axes")
	cmd.Flags().Float64SliceVar(&opts.xyBounds, "xy-bounds", nil, "per-axis bounds: xmin,xmax,ymin,ymax")
	cmd.Flags().BoolVar(&opts.parallel, "parallel", false, "morph target shapes concurrently")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "TOML file with default settings")
	cmd.MarkFlagsMutuallyExclusive("bounds", "xy-bounds")

	return cmd
}

// applyDefaults overlays config-file defaults onto flags the user did
// not set explicitly.
func applyDefaults(cmd *cobra.Command, opts *morphOpts) error {
	d, err := loadDefaults(opts.configPath)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "load config file")
	}
	flags := cmd.Flags()
	if !flags.Changed("iterations") && d.Iterations > 0 {
		opts.iterations = d.Iterations
	}
	if !flags.Changed("decimals") && d.Decimals != nil {
		opts.decimals = *d.Decimals
	}
	if !flags.Changed("freeze") && d.Freeze > 0 {
		opts.freeze = d.Freeze
	}
	if !flags.Changed("num-frames") && d.NumFrames > 0 {
		opts.numFrames = d.NumFrames
	}
	if !flags.Changed("output-dir") && d.OutputDir != "" {
		opts.outputDir = d.OutputDir
	}
	if !flags.Changed("ramp-in") && d.RampIn != nil {
		opts.rampIn = *d.RampIn
	}
	if !flags.Changed("ramp-out") && d.RampOut != nil {
		opts.rampOut = *d.RampOut
	}
	if !flags.Changed("forward-only") && d.ForwardOnly != nil {
		opts.forwardOnly = *d.ForwardOnly
	}
	return nil
}

// parseBounds converts the bounds flags into per-axis pairs. Both nil
// means the loader derives bounds from the data.
func parseBounds(opts *morphOpts) (xb, yb *[2]float64, err error) {
	switch {
	case len(opts.bounds) > 0:
		if len(opts.bounds) != 2 {
			return nil, nil, errors.New(errors.ErrCodeInvalidBounds,
				"--bounds expects 2 values, got %d", len(opts.bounds))
		}
		pair := [2]float64{opts.bounds[0], opts.bounds[1]}
		return &pair, &pair, nil
	case len(opts.xyBounds) > 0:
		if len(opts.xyBounds) != 4 {
			return nil, nil, errors.New(errors.ErrCodeInvalidBounds,
				"--xy-bounds expects 4 values, got %d", len(opts.xyBounds))
		}
		x := [2]float64{opts.xyBounds[0], opts.xyBounds[1]}
		y := [2]float64{opts.xyBounds[2], opts.xyBounds[3]}
		return &x, &y, nil
	}
	return nil, nil, nil
}

// runMorph validates everything eagerly, resolves the dataset and the
// target shapes, then executes one independent run per shape. No run
// starts if any part of the configuration is invalid.
func (c *CLI) runMorph(ctx context.Context, startShape string, opts *morphOpts) error {
	cfg := morph.Config{
		Iterations:  opts.iterations,
		Decimals:    opts.decimals,
		FreezeFor:   opts.freeze,
		RampIn:      opts.rampIn,
		RampOut:     opts.rampOut,
		ForwardOnly: opts.forwardOnly,
		NumFrames:   opts.numFrames,
		Seed:        uint64(opts.seed),
		Seeded:      opts.seeded,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	xb, yb, err := parseBounds(opts)
	if err != nil {
		return err
	}
	start, err := dataset.Load(startShape, xb, yb)
	if err != nil {
		return err
	}

	targets, err := shapes.Default().Resolve(opts.targets, start)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.outputDir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "create output directory %s", opts.outputDir)
	}

	loggerFromContext(ctx).Debugf("Loaded %q: %d points, bounds [%g, %g] x [%g, %g]",
		start.Name, start.Len(),
		start.Bounds.XMin, start.Bounds.XMax, start.Bounds.YMin, start.Bounds.YMax)

	if opts.parallel {
		return c.morphParallel(ctx, start, targets, cfg, opts)
	}
	return c.morphSequential(ctx, start, targets, cfg, opts)
}

// morphSequential runs the shapes one after another, announcing each
// before its run starts.
func (c *CLI) morphSequential(ctx context.Context, start *dataset.Dataset, targets []shapes.Shape, cfg morph.Config, opts *morphOpts) error {
	for i, target := range targets {
		fmt.Fprintf(os.Stderr, "Morphing shape %d of %d\n", i+1, len(targets))
		if err := c.morphOne(ctx, start, target, cfg, opts, true); err != nil {
			return err
		}
	}
	return nil
}

// morphParallel announces every shape up front in request order, then
// runs them concurrently. Each run owns its dataset clone and state;
// nothing is shared between goroutines.
func (c *CLI) morphParallel(ctx context.Context, start *dataset.Dataset, targets []shapes.Shape, cfg morph.Config, opts *morphOpts) error {
	for i := range targets {
		fmt.Fprintf(os.Stderr, "Morphing shape %d of %d\n", i+1, len(targets))
	}
	g, ctx := errgroup.WithContext(ctx)
	for _, target := range targets {
		g.Go(func() error {
			return c.morphOne(ctx, start, target, cfg, opts, false)
		})
	}
	return g.Wait()
}

// morphOne executes one run and writes its outputs.
func (c *CLI) morphOne(ctx context.Context, start *dataset.Dataset, target shapes.Shape, cfg morph.Config, opts *morphOpts, interactive bool) error {
	logger := loggerFromContext(ctx)
	cfg.Hooks = &logHooks{logger: logger, target: target.Name()}

	p := newProgress(logger)
	var sp *Spinner
	if interactive {
		sp = newSpinnerWithContext(ctx, fmt.Sprintf("Morphing %s into %s...", start.Name, target.Name()))
		sp.Start()
	}

	result, err := morph.Morph(ctx, start, target, cfg)
	if sp != nil {
		sp.Stop()
	}
	if err != nil {
		return fmt.Errorf("morph %s into %s: %w", start.Name, target.Name(), err)
	}
	p.done(fmt.Sprintf("Morphed %s into %s", start.Name, target.Name()))

	name := fmt.Sprintf("%s-to-%s", start.Name, target.Name())
	writer := &export.FrameWriter{
		OutputDir:  opts.outputDir,
		KeepFrames: opts.keepFrames,
		Decimals:   opts.decimals,
	}
	gifPath, err := writer.Write(name, result.Frames)
	if err != nil {
		return fmt.Errorf("write animation for %s: %w", name, err)
	}

	printSuccess("%s", name)
	printRunStats(result.Final.Len(), len(result.Frames), result.Stats.Accepted)
	printFile(gifPath)

	if opts.writeData {
		dataPath := filepath.Join(opts.outputDir, name+"-data.csv")
		if err := export.ExportCSV(result.Final, dataPath); err != nil {
			return fmt.Errorf("write data for %s: %w", name, err)
		}
		printFile(dataPath)
	}
	return nil
}

// logHooks forwards engine events to the CLI logger at debug level.
type logHooks struct {
	logger interface {
		Debugf(format string, args ...any)
	}
	target string
}

func (h *logHooks) OnStart(target string, iterations int) {
	h.logger.Debugf("[%s] starting %d iterations", target, iterations)
}

func (h *logHooks) OnTransition(from, to morph.State, iteration int) {
	h.logger.Debugf("[%s] %s -> %s at iteration %d", h.target, from, to, iteration)
}

func (h *logHooks) OnFrame(iteration, frame int) {
	h.logger.Debugf("[%s] recorded frame %d at iteration %d", h.target, frame, iteration)
}

func (h *logHooks) OnDone(stats morph.RunStats) {
	h.logger.Debugf("[%s] done: %d accepted, %d no-ops, %d frozen (%s)",
		h.target, stats.Accepted, stats.NoOps, stats.Frozen, stats.Elapsed)
}
