package shapes

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/JCGoran/data-morph/pkg/dataset"
	"github.com/JCGoran/data-morph/pkg/geometry"
)

// curveSamples is how many points parametric curves are sampled at.
const curveSamples = 80

// Default returns the built-in shape catalog.
func Default() *Registry {
	r := NewRegistry()
	r.Register("circle", func(name string, ds *dataset.Dataset) Shape {
		f := frameOf(ds)
		return NewCircle(name, f.center, f.radius)
	})
	r.Register("bullseye", func(name string, ds *dataset.Dataset) Shape {
		f := frameOf(ds)
		return NewRings(name, f.center, f.radius, f.radius/2)
	})
	r.Register("rings", func(name string, ds *dataset.Dataset) Shape {
		f := frameOf(ds)
		return NewRings(name, f.center, f.radius/4, f.radius/2, 3*f.radius/4, f.radius)
	})
	r.Register("dots", func(name string, ds *dataset.Dataset) Shape {
		return NewPointCollection(name, frameOf(ds).grid3x3())
	})
	r.Register("scatter", func(name string, ds *dataset.Dataset) Shape {
		f := frameOf(ds)
		return NewScatter(name, f.grid3x3(), f.radius/3)
	})
	r.Register("h_lines", func(name string, ds *dataset.Dataset) Shape {
		return NewLineCollection(name, frameOf(ds).horizontalLines(5))
	})
	r.Register("v_lines", func(name string, ds *dataset.Dataset) Shape {
		return NewLineCollection(name, frameOf(ds).verticalLines(5))
	})
	r.Register("high_lines", func(name string, ds *dataset.Dataset) Shape {
		f := frameOf(ds)
		return NewLineCollection(name, []Segment{
			{A: geometry.Point{X: f.xlo, Y: f.yAt(0.2)}, B: geometry.Point{X: f.xhi, Y: f.yAt(0.2)}},
			{A: geometry.Point{X: f.xlo, Y: f.yAt(0.8)}, B: geometry.Point{X: f.xhi, Y: f.yAt(0.8)}},
		})
	})
	r.Register("wide_lines", func(name string, ds *dataset.Dataset) Shape {
		f := frameOf(ds)
		return NewLineCollection(name, []Segment{
			{A: geometry.Point{X: f.xAt(0.2), Y: f.ylo}, B: geometry.Point{X: f.xAt(0.2), Y: f.yhi}},
			{A: geometry.Point{X: f.xAt(0.8), Y: f.ylo}, B: geometry.Point{X: f.xAt(0.8), Y: f.yhi}},
		})
	})
	r.Register("slant_up", func(name string, ds *dataset.Dataset) Shape {
		return NewLineCollection(name, frameOf(ds).slantedLines(5, +1))
	})
	r.Register("slant_down", func(name string, ds *dataset.Dataset) Shape {
		return NewLineCollection(name, frameOf(ds).slantedLines(5, -1))
	})
	r.Register("x", func(name string, ds *dataset.Dataset) Shape {
		f := frameOf(ds)
		return NewLineCollection(name, []Segment{
			{A: geometry.Point{X: f.xlo, Y: f.ylo}, B: geometry.Point{X: f.xhi, Y: f.yhi}},
			{A: geometry.Point{X: f.xlo, Y: f.yhi}, B: geometry.Point{X: f.xhi, Y: f.ylo}},
		})
	})
	r.Register("rectangle", func(name string, ds *dataset.Dataset) Shape {
		f := frameOf(ds)
		corners := []geometry.Point{
			{X: f.xlo, Y: f.ylo}, {X: f.xhi, Y: f.ylo},
			{X: f.xhi, Y: f.yhi}, {X: f.xlo, Y: f.yhi},
		}
		return NewLineCollection(name, closedPolygon(corners))
	})
	r.Register("diamond", func(name string, ds *dataset.Dataset) Shape {
		f := frameOf(ds)
		corners := []geometry.Point{
			{X: f.center.X, Y: f.ylo}, {X: f.xhi, Y: f.center.Y},
			{X: f.center.X, Y: f.yhi}, {X: f.xlo, Y: f.center.Y},
		}
		return NewLineCollection(name, closedPolygon(corners))
	})
	r.Register("star", func(name string, ds *dataset.Dataset) Shape {
		return NewLineCollection(name, frameOf(ds).star(5))
	})
	r.Register("heart", func(name string, ds *dataset.Dataset) Shape {
		return NewPointCollection(name, frameOf(ds).heart())
	})
	r.Register("down_parab", func(name string, ds *dataset.Dataset) Shape {
		f := frameOf(ds)
		return NewPointCollection(name, f.parabola(false, false))
	})
	r.Register("up_parab", func(name string, ds *dataset.Dataset) Shape {
		f := frameOf(ds)
		return NewPointCollection(name, f.parabola(false, true))
	})
	r.Register("left_parab", func(name string, ds *dataset.Dataset) Shape {
		f := frameOf(ds)
		return NewPointCollection(name, f.parabola(true, true))
	})
	r.Register("right_parab", func(name string, ds *dataset.Dataset) Shape {
		f := frameOf(ds)
		return NewPointCollection(name, f.parabola(true, false))
	})
	return r
}

// frame describes where a shape should live relative to a dataset: the
// central data region between the 5th and 95th percentile on each axis.
// Using percentiles instead of the raw extent keeps outliers from
// inflating the shapes.
type frame struct {
	xlo, xhi float64
	ylo, yhi float64
	center   geometry.Point
	radius   float64
}

func frameOf(ds *dataset.Dataset) frame {
	xs := make(stats.Float64Data, ds.Len())
	ys := make(stats.Float64Data, ds.Len())
	for i, p := range ds.Points {
		xs[i] = p.X
		ys[i] = p.Y
	}
	// Percentile only fails on empty input, which New rules out.
	xlo, _ := stats.Percentile(xs, 5)
	xhi, _ := stats.Percentile(xs, 95)
	ylo, _ := stats.Percentile(ys, 5)
	yhi, _ := stats.Percentile(ys, 95)

	f := frame{xlo: xlo, xhi: xhi, ylo: ylo, yhi: yhi}
	f.center = geometry.Point{X: (xlo + xhi) / 2, Y: (ylo + yhi) / 2}
	f.radius = min(xhi-xlo, yhi-ylo) / 2
	return f
}

// xAt returns the x coordinate at fraction t across the frame.
func (f frame) xAt(t float64) float64 { return f.xlo + t*(f.xhi-f.xlo) }

// yAt returns the y coordinate at fraction t up the frame.
func (f frame) yAt(t float64) float64 { return f.ylo + t*(f.yhi-f.ylo) }

func (f frame) grid3x3() []geometry.Point {
	var anchors []geometry.Point
	for _, tx := range []float64{0.1, 0.5, 0.9} {
		for _, ty := range []float64{0.1, 0.5, 0.9} {
			anchors = append(anchors, geometry.Point{X: f.xAt(tx), Y: f.yAt(ty)})
		}
	}
	return anchors
}

func (f frame) horizontalLines(n int) []Segment {
	segments := make([]Segment, n)
	for i := range n {
		y := f.yAt(float64(i) / float64(n-1))
		segments[i] = Segment{A: geometry.Point{X: f.xlo, Y: y}, B: geometry.Point{X: f.xhi, Y: y}}
	}
	return segments
}

func (f frame) verticalLines(n int) []Segment {
	segments := make([]Segment, n)
	for i := range n {
		x := f.xAt(float64(i) / float64(n-1))
		segments[i] = Segment{A: geometry.Point{X: x, Y: f.ylo}, B: geometry.Point{X: x, Y: f.yhi}}
	}
	return segments
}

// slantedLines builds n parallel diagonals covering the frame; sign
// picks rising (+1) or falling (-1) slope.
func (f frame) slantedLines(n int, sign float64) []Segment {
	segments := make([]Segment, n)
	for i := range n {
		t := float64(i) / float64(n-1)
		// Slide each diagonal along the x axis by up to half a frame
		// width in both directions.
		shift := (t - 0.5) * (f.xhi - f.xlo)
		a := geometry.Point{X: f.xlo + shift, Y: f.ylo}
		b := geometry.Point{X: f.xhi + shift, Y: f.yhi}
		if sign < 0 {
			a.Y, b.Y = f.yhi, f.ylo
		}
		segments[i] = Segment{A: a, B: b}
	}
	return segments
}

// star builds the outline of an n-pointed star inscribed in the frame
// circle, inner radius at 40% of the outer.
func (f frame) star(n int) []Segment {
	vertices := make([]geometry.Point, 0, 2*n)
	for i := range 2 * n {
		r := f.radius
		if i%2 == 1 {
			r *= 0.4
		}
		angle := math.Pi/2 + float64(i)*math.Pi/float64(n)
		vertices = append(vertices, geometry.Point{
			X: f.center.X + r*math.Cos(angle),
			Y: f.center.Y + r*math.Sin(angle),
		})
	}
	return closedPolygon(vertices)
}

// heart samples the classic parametric heart curve, scaled to the frame.
func (f frame) heart() []geometry.Point {
	points := make([]geometry.Point, curveSamples)
	scale := f.radius / 17
	for i := range curveSamples {
		t := 2 * math.Pi * float64(i) / float64(curveSamples)
		x := 16 * math.Pow(math.Sin(t), 3)
		y := 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)
		points[i] = geometry.Point{X: f.center.X + scale*x, Y: f.center.Y + scale*y}
	}
	return points
}

// parabola samples a parabola spanning the frame. sideways rotates the
// axis of symmetry to horizontal; flip mirrors the opening direction.
func (f frame) parabola(sideways, flip bool) []geometry.Point {
	points := make([]geometry.Point, curveSamples)
	for i := range curveSamples {
		t := float64(i)/float64(curveSamples-1)*2 - 1 // [-1, 1]
		along, across := t, t*t
		if flip {
			across = 1 - across
		}
		if sideways {
			points[i] = geometry.Point{X: f.xAt(across), Y: f.ylo + (along+1)/2*(f.yhi-f.ylo)}
		} else {
			points[i] = geometry.Point{X: f.xlo + (along+1)/2*(f.xhi-f.xlo), Y: f.yAt(across)}
		}
	}
	return points
}

// closedPolygon connects consecutive vertices and closes the loop.
func closedPolygon(vertices []geometry.Point) []Segment {
	segments := make([]Segment, len(vertices))
	for i, v := range vertices {
		segments[i] = Segment{A: v, B: vertices[(i+1)%len(vertices)]}
	}
	return segments
}
