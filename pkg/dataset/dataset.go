// Package dataset provides the point-cloud model the morph engine
// operates on: a named, bounded set of 2D points plus the summary
// statistics that must survive morphing.
//
// Datasets come from two sources: built-in clouds embedded in the
// binary (see Builtins) and external CSV files. Both are resolved once
// by Load into a Dataset; the engine never re-reads the source.
package dataset

import (
	"github.com/JCGoran/data-morph/pkg/errors"
	"github.com/JCGoran/data-morph/pkg/geometry"
)

// boundsPadding is the fraction of the data extent added on every side
// when morph bounds are derived from the data instead of supplied.
const boundsPadding = 0.2

// Dataset is an ordered 2D point cloud with a name and domain bounds.
// Point order is stable and meaningful only for indexing. Every point
// lies within Bounds whenever the Dataset is observed from outside the
// engine.
type Dataset struct {
	Name   string
	Points []geometry.Point
	Bounds geometry.Bounds
}

// New constructs a Dataset and validates it against the given bounds.
// If bounds is the zero value, bounds are derived from the data extent
// padded by 20% per side.
func New(name string, points []geometry.Point, bounds geometry.Bounds) (*Dataset, error) {
	if len(points) < 2 {
		return nil, errors.New(errors.ErrCodeDatasetTooSmall, "dataset %q has %d points, need at least 2", name, len(points))
	}
	if bounds == (geometry.Bounds{}) {
		bounds = extent(points).Pad(boundsPadding)
	}
	if !bounds.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidBounds, "bounds for %q span no area", name)
	}
	for i, p := range points {
		if !bounds.Contains(p) {
			return nil, errors.New(errors.ErrCodeInvalidBounds,
				"point %d of %q at (%g, %g) lies outside bounds", i, name, p.X, p.Y)
		}
	}
	ds := &Dataset{Name: name, Points: make([]geometry.Point, len(points)), Bounds: bounds}
	copy(ds.Points, points)
	return ds, nil
}

// Clone returns a deep copy sharing no point storage with the receiver.
func (d *Dataset) Clone() *Dataset {
	points := make([]geometry.Point, len(d.Points))
	copy(points, d.Points)
	return &Dataset{Name: d.Name, Points: points, Bounds: d.Bounds}
}

// Len returns the number of points.
func (d *Dataset) Len() int { return len(d.Points) }

// extent returns the tight bounding box of points.
func extent(points []geometry.Point) geometry.Bounds {
	b := geometry.Bounds{
		XMin: points[0].X, XMax: points[0].X,
		YMin: points[0].Y, YMax: points[0].Y,
	}
	for _, p := range points[1:] {
		b.XMin = min(b.XMin, p.X)
		b.XMax = max(b.XMax, p.X)
		b.YMin = min(b.YMin, p.Y)
		b.YMax = max(b.YMax, p.Y)
	}
	return b
}
