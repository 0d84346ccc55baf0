// Package export persists morph outputs: dataset CSVs, per-frame PNG
// images, and the assembled GIF animation. The morph engine never does
// I/O; everything written to disk goes through this package.
package export

import (
	"encoding/csv"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"github.com/JCGoran/data-morph/pkg/dataset"
	"github.com/JCGoran/data-morph/pkg/morph"
	"github.com/JCGoran/data-morph/pkg/plot"
)

// gifDelay is the per-frame GIF delay in hundredths of a second.
const gifDelay = 5

// WriteCSV encodes a dataset as x,y records with a header row.
// The output can be re-loaded with dataset.Load for round-trip runs.
func WriteCSV(ds *dataset.Dataset, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, p := range ds.Points {
		record := []string{
			strconv.FormatFloat(p.X, 'f', -1, 64),
			strconv.FormatFloat(p.Y, 'f', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write point: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSV writes a dataset to a CSV file at path.
// This is a convenience wrapper around [WriteCSV] for file-based output.
func ExportCSV(ds *dataset.Dataset, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteCSV(ds, f)
}

// FrameWriter renders and persists the frames of one morph run.
type FrameWriter struct {
	// OutputDir receives the GIF and any kept data files.
	OutputDir string

	// KeepFrames stores per-frame PNGs in OutputDir instead of a
	// throwaway scratch directory.
	KeepFrames bool

	// Decimals is the precision used for the stats caption.
	Decimals int
}

// Write renders every frame, writes the PNGs, and assembles the GIF at
// OutputDir/<name>.gif. When KeepFrames is false the PNGs live in a
// uuid-named scratch directory that is removed afterwards, so
// concurrent runs never collide.
func (fw *FrameWriter) Write(name string, frames []morph.Frame) (string, error) {
	frameDir := filepath.Join(fw.OutputDir, name+"-frames")
	if !fw.KeepFrames {
		frameDir = filepath.Join(os.TempDir(), "datamorph-"+uuid.NewString())
		defer os.RemoveAll(frameDir)
	}
	if err := os.MkdirAll(frameDir, 0o755); err != nil {
		return "", fmt.Errorf("create frame dir: %w", err)
	}

	images := make([]image.Image, 0, len(frames))
	for i, frame := range frames {
		opts := plot.Options{}
		if stats, err := dataset.Describe(frame.Snapshot, fw.Decimals); err == nil {
			opts = plot.WithStats(stats, fw.Decimals)
		}
		img := plot.Scatter(frame.Snapshot, opts)
		images = append(images, img)

		path := filepath.Join(frameDir, fmt.Sprintf("frame-%04d.png", i))
		if err := savePNG(img, path); err != nil {
			return "", err
		}
	}

	gifPath := filepath.Join(fw.OutputDir, name+".gif")
	f, err := os.Create(gifPath)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", gifPath, err)
	}
	defer f.Close()
	if err := plot.GIF(images, gifDelay, f); err != nil {
		return "", fmt.Errorf("encode %s: %w", gifPath, err)
	}
	return gifPath, nil
}

func savePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := plot.EncodePNG(img, f); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
