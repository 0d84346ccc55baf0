package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/JCGoran/data-morph/pkg/dataset"
	"github.com/JCGoran/data-morph/pkg/errors"
)

func newTestRoot() *cobra.Command {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root
}

// captureStderr redirects os.Stderr for the duration of fn so tests can
// assert on the progress lines the morph command writes there.
func captureStderr(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	old := os.Stderr
	os.Stderr = w
	runErr := fn()
	os.Stderr = old
	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(out), runErr
}

func TestMorphValidationErrors(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	tests := []struct {
		name     string
		args     []string
		wantCode errors.Code
		wantMsg  string
	}{
		{
			name:     "DecimalsOutOfRange",
			args:     []string{"morph", "dino", "--decimals", "10"},
			wantCode: errors.ErrCodeInvalidConfig,
		},
		{
			name:     "ZeroIterations",
			args:     []string{"morph", "dino", "--iterations", "0"},
			wantCode: errors.ErrCodeInvalidConfig,
		},
		{
			name:     "FreezeNotShorterThanIterations",
			args:     []string{"morph", "dino", "--iterations", "100", "--freeze", "100"},
			wantCode: errors.ErrCodeInvalidConfig,
		},
		{
			name:     "BoundsWrongCount",
			args:     []string{"morph", "dino", "--bounds", "1,2,3"},
			wantCode: errors.ErrCodeInvalidBounds,
		},
		{
			name:     "XYBoundsWrongCount",
			args:     []string{"morph", "dino", "--xy-bounds", "1,2"},
			wantCode: errors.ErrCodeInvalidBounds,
		},
		{
			name: "BoundsFlagsMutuallyExclusive",
			args: []string{"morph", "dino", "--bounds", "0,100", "--xy-bounds", "0,100,0,100"},
		},
		{
			name:     "UnknownTargets",
			args:     []string{"morph", "dino", "--target-shape", "not-a-shape"},
			wantCode: errors.ErrCodeShapeNotFound,
			wantMsg:  "No valid target shapes were provided.",
		},
		{
			name:     "UnknownDataset",
			args:     []string{"morph", "definitely-not-a-dataset"},
			wantCode: errors.ErrCodeDatasetLoad,
		},
		{
			name: "MissingStartShape",
			args: []string{"morph"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newTestRoot()
			root.SetArgs(tt.args)

			err := root.ExecuteContext(context.Background())
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.wantCode != "" && !errors.Is(err, tt.wantCode) {
				t.Errorf("error = %v, want code %s", err, tt.wantCode)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestMorphProgressAndOutputs(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()

	root := newTestRoot()
	root.SetArgs([]string{
		"morph", "dino",
		"--target-shape", "circle,star",
		"--iterations", "30",
		"--num-frames", "5",
		"--decimals", "1",
		"--seed", "1",
		"--forward-only",
		"-o", dir,
	})

	stderr, err := captureStderr(t, func() error {
		return root.ExecuteContext(context.Background())
	})
	if err != nil {
		t.Fatalf("morph failed: %v", err)
	}

	for _, want := range []string{"Morphing shape 1 of 2", "Morphing shape 2 of 2"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr)
		}
	}
	for _, name := range []string{"dino-to-circle.gif", "dino-to-star.gif"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing output %s: %v", name, err)
		}
	}
}

func TestMorphWriteData(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()

	root := newTestRoot()
	root.SetArgs([]string{
		"morph", "dino",
		"--target-shape", "circle",
		"--iterations", "20",
		"--num-frames", "2",
		"--decimals", "1",
		"--seed", "1",
		"--forward-only",
		"--write-data",
		"-o", dir,
	})

	if _, err := captureStderr(t, func() error {
		return root.ExecuteContext(context.Background())
	}); err != nil {
		t.Fatalf("morph failed: %v", err)
	}

	written, err := dataset.Load(filepath.Join(dir, "dino-to-circle-data.csv"), nil, nil)
	if err != nil {
		t.Fatalf("reloading written data: %v", err)
	}
	original, err := dataset.Load("dino", nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if written.Len() != original.Len() {
		t.Errorf("written data has %d points, want %d", written.Len(), original.Len())
	}
}

func TestMorphParallel(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()

	root := newTestRoot()
	root.SetArgs([]string{
		"morph", "dino",
		"--target-shape", "circle,bullseye",
		"--iterations", "20",
		"--num-frames", "2",
		"--decimals", "1",
		"--seed", "1",
		"--forward-only",
		"--parallel",
		"-o", dir,
	})

	stderr, err := captureStderr(t, func() error {
		return root.ExecuteContext(context.Background())
	})
	if err != nil {
		t.Fatalf("morph failed: %v", err)
	}

	for _, want := range []string{"Morphing shape 1 of 2", "Morphing shape 2 of 2"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q", want)
		}
	}
	for _, name := range []string{"dino-to-circle.gif", "dino-to-bullseye.gif"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing output %s: %v", name, err)
		}
	}
}

func TestParseBounds(t *testing.T) {
	tests := []struct {
		name    string
		opts    morphOpts
		wantX   *[2]float64
		wantY   *[2]float64
		wantErr bool
	}{
		{
			name: "NoneGiven",
		},
		{
			name:  "Symmetric",
			opts:  morphOpts{bounds: []float64{-10, 10}},
			wantX: &[2]float64{-10, 10},
			wantY: &[2]float64{-10, 10},
		},
		{
			name:  "PerAxis",
			opts:  morphOpts{xyBounds: []float64{0, 100, -50, 50}},
			wantX: &[2]float64{0, 100},
			wantY: &[2]float64{-50, 50},
		},
		{
			name:    "SymmetricWrongCount",
			opts:    morphOpts{bounds: []float64{1}},
			wantErr: true,
		},
		{
			name:    "PerAxisWrongCount",
			opts:    morphOpts{xyBounds: []float64{1, 2, 3}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xb, yb, err := parseBounds(&tt.opts)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidBounds) {
					t.Fatalf("parseBounds() error = %v, want INVALID_BOUNDS", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseBounds() error = %v", err)
			}
			if (xb == nil) != (tt.wantX == nil) || (yb == nil) != (tt.wantY == nil) {
				t.Fatalf("parseBounds() = %v, %v; want %v, %v", xb, yb, tt.wantX, tt.wantY)
			}
			if xb != nil && (*xb != *tt.wantX || *yb != *tt.wantY) {
				t.Errorf("parseBounds() = %v, %v; want %v, %v", *xb, *yb, *tt.wantX, *tt.wantY)
			}
		})
	}
}
