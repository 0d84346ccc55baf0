package geometry

import (
	"math"
	"testing"
)

func TestBoundsContains(t *testing.T) {
	b := NewBounds(0, 10, 0, 20)

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"Inside", Point{X: 5, Y: 10}, true},
		{"OnEdge", Point{X: 0, Y: 20}, true},
		{"OnCorner", Point{X: 10, Y: 20}, true},
		{"LeftOf", Point{X: -0.001, Y: 10}, false},
		{"Above", Point{X: 5, Y: 20.5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestBoundsPad(t *testing.T) {
	b := NewBounds(0, 10, 0, 20).Pad(0.1)

	want := NewBounds(-1, 11, -2, 22)
	if b != want {
		t.Errorf("Pad(0.1) = %+v, want %+v", b, want)
	}
}

func TestBoundsCenter(t *testing.T) {
	c := NewBounds(0, 10, 10, 30).Center()
	if c != (Point{X: 5, Y: 20}) {
		t.Errorf("Center() = %v, want (5, 20)", c)
	}
}

func TestBoundsValid(t *testing.T) {
	if !NewBounds(0, 1, 0, 1).Valid() {
		t.Error("unit bounds should be valid")
	}
	if NewBounds(1, 1, 0, 1).Valid() {
		t.Error("zero-width bounds should be invalid")
	}
	if NewBounds(0, 1, 2, 1).Valid() {
		t.Error("inverted bounds should be invalid")
	}
}

func TestDistanceToSegment(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 10, Y: 0}

	tests := []struct {
		name string
		p    Point
		want float64
	}{
		{"OnSegment", Point{X: 5, Y: 0}, 0},
		{"Above", Point{X: 5, Y: 3}, 3},
		{"PastEnd", Point{X: 13, Y: 4}, 5},
		{"BeforeStart", Point{X: -3, Y: 4}, 5},
		{"AtEndpoint", Point{X: 10, Y: 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceToSegment(tt.p, a, b)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("DistanceToSegment(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestDistanceToSegmentDegenerate(t *testing.T) {
	a := Point{X: 2, Y: 2}
	got := DistanceToSegment(Point{X: 2, Y: 5}, a, a)
	if math.Abs(got-3) > 1e-12 {
		t.Errorf("distance to degenerate segment = %v, want 3", got)
	}
}
