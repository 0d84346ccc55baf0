// Package plot renders dataset snapshots as scatter-plot images and
// assembles them into an animated GIF. It performs no statistical or
// geometric computation; everything visual lives here, outside the
// morph engine.
package plot

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"

	"github.com/fogleman/gg"

	"github.com/JCGoran/data-morph/pkg/dataset"
)

// Canvas and style defaults, chosen to keep frames readable at GIF
// sizes without dwarfing the point markers.
const (
	Width       = 600
	Height      = 600
	margin      = 50.0
	pointRadius = 3.5
)

// Options controls scatter rendering.
type Options struct {
	// Caption is drawn under the plot; WithStats builds one from
	// summary statistics.
	Caption string
}

// WithStats formats a caption from summary statistics at the given
// precision.
func WithStats(s dataset.SummaryStatistics, decimals int) Options {
	f := func(v float64) string { return fmt.Sprintf("%.*f", decimals, v) }
	return Options{Caption: fmt.Sprintf(
		"x mean: %s  y mean: %s  x sd: %s  y sd: %s  corr: %s",
		f(s.MeanX), f(s.MeanY), f(s.StdX), f(s.StdY), f(s.Correlation),
	)}
}

// Scatter renders the dataset into a fixed-size image. The dataset's
// bounds map to the drawable area so every frame of a run shares one
// coordinate system and the animation does not jitter.
func Scatter(ds *dataset.Dataset, opts Options) image.Image {
	dc := gg.NewContext(Width, Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	scaleX := (Width - 2*margin) / ds.Bounds.Width()
	scaleY := (Height - 2*margin) / ds.Bounds.Height()

	dc.SetRGB255(31, 119, 180)
	for _, p := range ds.Points {
		px := margin + (p.X-ds.Bounds.XMin)*scaleX
		// Image y grows downward; data y grows upward.
		py := Height - margin - (p.Y-ds.Bounds.YMin)*scaleY
		dc.DrawCircle(px, py, pointRadius)
		dc.Fill()
	}

	if opts.Caption != "" {
		dc.SetRGB(0.2, 0.2, 0.2)
		dc.DrawStringAnchored(opts.Caption, Width/2, Height-margin/2, 0.5, 0.5)
	}
	return dc.Image()
}

// EncodePNG writes a rendered frame as PNG.
func EncodePNG(img image.Image, w io.Writer) error {
	dc := gg.NewContextForImage(img)
	return dc.EncodePNG(w)
}

// GIF assembles frames into a looping animation. delay is per-frame in
// hundredths of a second.
func GIF(frames []image.Image, delay int, w io.Writer) error {
	out := &gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		bounds := frame.Bounds()
		paletted := image.NewPaletted(bounds, palette.Plan9)
		draw.FloydSteinberg.Draw(paletted, bounds, frame, bounds.Min)
		out.Image = append(out.Image, paletted)
		out.Delay = append(out.Delay, delay)
	}
	return gif.EncodeAll(w, out)
}
