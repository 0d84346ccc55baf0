// Package geometry provides the 2D primitives shared by datasets and
// target shapes: points, axis-aligned bounds, and distance helpers.
package geometry

import "math"

// Point is a position in the 2D plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the Euclidean distance to q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Bounds is an axis-aligned rectangle describing the domain a point
// cloud is allowed to occupy.
type Bounds struct {
	XMin float64 `json:"xmin"`
	XMax float64 `json:"xmax"`
	YMin float64 `json:"ymin"`
	YMax float64 `json:"ymax"`
}

// NewBounds returns bounds spanning the given extents.
func NewBounds(xmin, xmax, ymin, ymax float64) Bounds {
	return Bounds{XMin: xmin, XMax: xmax, YMin: ymin, YMax: ymax}
}

// Valid reports whether the bounds span a non-empty area.
func (b Bounds) Valid() bool {
	return b.XMax > b.XMin && b.YMax > b.YMin
}

// Contains reports whether p lies inside the bounds (edges included).
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.XMin && p.X <= b.XMax && p.Y >= b.YMin && p.Y <= b.YMax
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 { return b.XMax - b.XMin }

// Height returns the vertical extent.
func (b Bounds) Height() float64 { return b.YMax - b.YMin }

// Center returns the midpoint of the bounds.
func (b Bounds) Center() Point {
	return Point{X: (b.XMin + b.XMax) / 2, Y: (b.YMin + b.YMax) / 2}
}

// Pad grows the bounds on every side by fraction of the respective
// extent. A fraction of 0 returns the bounds unchanged.
func (b Bounds) Pad(fraction float64) Bounds {
	dx := b.Width() * fraction
	dy := b.Height() * fraction
	return Bounds{XMin: b.XMin - dx, XMax: b.XMax + dx, YMin: b.YMin - dy, YMax: b.YMax + dy}
}

// Corners returns the four corner points of the bounds.
func (b Bounds) Corners() [4]Point {
	return [4]Point{
		{X: b.XMin, Y: b.YMin},
		{X: b.XMin, Y: b.YMax},
		{X: b.XMax, Y: b.YMin},
		{X: b.XMax, Y: b.YMax},
	}
}

// DistanceToSegment returns the distance from p to the segment ab.
// Degenerate segments (a == b) collapse to point distance.
func DistanceToSegment(p, a, b Point) float64 {
	abx, aby := b.X-a.X, b.Y-a.Y
	length2 := abx*abx + aby*aby
	if length2 == 0 {
		return p.Distance(a)
	}
	t := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / length2
	t = math.Max(0, math.Min(1, t))
	return p.Distance(Point{X: a.X + t*abx, Y: a.Y + t*aby})
}
