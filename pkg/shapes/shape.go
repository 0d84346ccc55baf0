// Package shapes provides the target-shape catalog for morphing.
//
// A target shape is anything that can report a point-to-shape distance;
// the morph engine depends on nothing else. Shapes come in four
// families, one concrete type each:
//
//   - Circle: a single closed curve
//   - Rings: concentric closed curves (bullseye, rings)
//   - PointCollection: discrete point sets, including sampled curves
//     (dots, scatter, heart, parabolas)
//   - LineCollection: straight segments (line grids, x, star, rectangle)
//
// Shapes are built by a Registry of factories. Each factory sizes and
// positions its shape from the dataset it will morph, so a circle fit
// to the dino cloud and one fit to a file-loaded cloud differ.
package shapes

import (
	"math"

	"github.com/JCGoran/data-morph/pkg/geometry"
)

// Shape is a morph target. Distance must be non-negative, pure, and
// deterministic; the engine treats every shape family uniformly
// through it.
type Shape interface {
	// Name returns the registry name the shape was built under.
	Name() string

	// Distance returns how far p is from the shape. Zero means p lies
	// on the shape.
	Distance(p geometry.Point) float64
}

// Circle is a closed curve at a fixed center and radius. Distance is
// measured to the curve, not the disk.
type Circle struct {
	name   string
	Center geometry.Point
	Radius float64
}

// NewCircle builds a named circle.
func NewCircle(name string, center geometry.Point, radius float64) *Circle {
	return &Circle{name: name, Center: center, Radius: radius}
}

func (c *Circle) Name() string { return c.name }

// Distance returns |dist(p, center) - radius|.
func (c *Circle) Distance(p geometry.Point) float64 {
	return math.Abs(p.Distance(c.Center) - c.Radius)
}

// Rings is a set of concentric circles; distance is the minimum over
// the member curves.
type Rings struct {
	name    string
	Circles []*Circle
}

// NewRings builds concentric circles at the given radii.
func NewRings(name string, center geometry.Point, radii ...float64) *Rings {
	circles := make([]*Circle, len(radii))
	for i, r := range radii {
		circles[i] = NewCircle(name, center, r)
	}
	return &Rings{name: name, Circles: circles}
}

func (r *Rings) Name() string { return r.name }

func (r *Rings) Distance(p geometry.Point) float64 {
	best := math.Inf(1)
	for _, c := range r.Circles {
		best = min(best, c.Distance(p))
	}
	return best
}

// PointCollection is a discrete set of anchor points; distance is the
// minimum point distance, minus an optional slack radius around each
// anchor (used by scatter to tolerate spread).
type PointCollection struct {
	name   string
	Anchor []geometry.Point
	Slack  float64
}

// NewPointCollection builds a point-set shape with no slack.
func NewPointCollection(name string, anchors []geometry.Point) *PointCollection {
	return &PointCollection{name: name, Anchor: anchors}
}

// NewScatter builds a point-set shape where anything within slack of an
// anchor counts as on-shape.
func NewScatter(name string, anchors []geometry.Point, slack float64) *PointCollection {
	return &PointCollection{name: name, Anchor: anchors, Slack: slack}
}

func (pc *PointCollection) Name() string { return pc.name }

func (pc *PointCollection) Distance(p geometry.Point) float64 {
	best := math.Inf(1)
	for _, a := range pc.Anchor {
		best = min(best, p.Distance(a))
	}
	return math.Max(0, best-pc.Slack)
}

// Segment is a straight line segment.
type Segment struct {
	A, B geometry.Point
}

// LineCollection is a set of segments; distance is the minimum segment
// distance.
type LineCollection struct {
	name     string
	Segments []Segment
}

// NewLineCollection builds a segment-set shape.
func NewLineCollection(name string, segments []Segment) *LineCollection {
	return &LineCollection{name: name, Segments: segments}
}

func (lc *LineCollection) Name() string { return lc.name }

func (lc *LineCollection) Distance(p geometry.Point) float64 {
	best := math.Inf(1)
	for _, s := range lc.Segments {
		best = min(best, geometry.DistanceToSegment(p, s.A, s.B))
	}
	return best
}
