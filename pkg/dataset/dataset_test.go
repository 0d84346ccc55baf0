package dataset

import (
	"math"
	"testing"

	"github.com/JCGoran/data-morph/pkg/errors"
	"github.com/JCGoran/data-morph/pkg/geometry"
)

func square() []geometry.Point {
	return []geometry.Point{
		{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 0}, {X: 10, Y: 10},
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		points   []geometry.Point
		bounds   geometry.Bounds
		wantCode errors.Code
	}{
		{
			name:   "DerivedBounds",
			points: square(),
		},
		{
			name:   "ExplicitBounds",
			points: square(),
			bounds: geometry.NewBounds(-10, 20, -10, 20),
		},
		{
			name:     "TooFewPoints",
			points:   []geometry.Point{{X: 1, Y: 1}},
			wantCode: errors.ErrCodeDatasetTooSmall,
		},
		{
			name:     "PointOutsideBounds",
			points:   square(),
			bounds:   geometry.NewBounds(0, 5, 0, 5),
			wantCode: errors.ErrCodeInvalidBounds,
		},
		{
			name:     "EmptyBoundsArea",
			points:   []geometry.Point{{X: 1, Y: 1}, {X: 1, Y: 1}},
			bounds:   geometry.NewBounds(1, 1, 0, 2),
			wantCode: errors.ErrCodeInvalidBounds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := New("test", tt.points, tt.bounds)
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Fatalf("New() error = %v, want code %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			for i, p := range ds.Points {
				if !ds.Bounds.Contains(p) {
					t.Errorf("point %d outside bounds", i)
				}
			}
		})
	}
}

func TestNewDerivedBoundsPadded(t *testing.T) {
	ds, err := New("test", square(), geometry.Bounds{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	// Derived bounds pad the extent, so the tight hull must sit strictly
	// inside them.
	if ds.Bounds.XMin >= 0 || ds.Bounds.XMax <= 10 || ds.Bounds.YMin >= 0 || ds.Bounds.YMax <= 10 {
		t.Errorf("derived bounds %+v do not pad the data extent", ds.Bounds)
	}
}

func TestClone(t *testing.T) {
	ds, err := New("test", square(), geometry.Bounds{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	clone := ds.Clone()
	clone.Points[0].X = 99

	if ds.Points[0].X == 99 {
		t.Error("mutating a clone changed the original")
	}
	if clone.Name != ds.Name || clone.Bounds != ds.Bounds {
		t.Error("clone lost name or bounds")
	}
}

func TestDescribe(t *testing.T) {
	points := []geometry.Point{
		{X: 1, Y: 2}, {X: 2, Y: 4}, {X: 3, Y: 6},
	}
	ds, err := New("line", points, geometry.Bounds{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	stats, err := Describe(ds, 3)
	if err != nil {
		t.Fatalf("Describe() error = %v", err)
	}

	if stats.MeanX != 2 {
		t.Errorf("MeanX = %v, want 2", stats.MeanX)
	}
	if stats.MeanY != 4 {
		t.Errorf("MeanY = %v, want 4", stats.MeanY)
	}
	if stats.StdX != 1 {
		t.Errorf("StdX = %v, want 1 (sample)", stats.StdX)
	}
	if stats.StdY != 2 {
		t.Errorf("StdY = %v, want 2 (sample)", stats.StdY)
	}
	if stats.Correlation != 1 {
		t.Errorf("Correlation = %v, want 1", stats.Correlation)
	}
}

func TestDescribeRounding(t *testing.T) {
	points := []geometry.Point{
		{X: 1.11111, Y: 1}, {X: 2.22222, Y: 2}, {X: 3.33333, Y: 4},
	}
	ds, err := New("test", points, geometry.Bounds{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	coarse, err := Describe(ds, 1)
	if err != nil {
		t.Fatalf("Describe() error = %v", err)
	}
	fine, err := Describe(ds, 5)
	if err != nil {
		t.Fatalf("Describe() error = %v", err)
	}

	if coarse.MeanX != 2.2 {
		t.Errorf("MeanX at 1 decimal = %v, want 2.2", coarse.MeanX)
	}
	if math.Abs(fine.MeanX-2.22222) > 1e-9 {
		t.Errorf("MeanX at 5 decimals = %v, want 2.22222", fine.MeanX)
	}
	if coarse.Equal(fine) {
		t.Error("statistics at different precisions should differ")
	}
}

func TestDescribeTooSmall(t *testing.T) {
	ds := &Dataset{Name: "tiny", Points: []geometry.Point{{X: 1, Y: 1}}}
	if _, err := Describe(ds, 2); !errors.Is(err, errors.ErrCodeDatasetTooSmall) {
		t.Errorf("Describe() error = %v, want DATASET_TOO_SMALL", err)
	}
}

func TestSummaryStatisticsEqual(t *testing.T) {
	a := SummaryStatistics{MeanX: 1.23, MeanY: 4.56, StdX: 0.5, StdY: 0.7, Correlation: -0.1}
	b := a
	if !a.Equal(b) {
		t.Error("identical statistics should be equal")
	}
	b.Correlation = -0.2
	if a.Equal(b) {
		t.Error("differing statistics should not be equal")
	}
}
