package render

import (
	"math"

	"github.com/agustin-d-martinez/spectrum-graphics/spectral/component"
	"github.com/agustin-d-martinez/spectrum-graphics/spectral/core"
)

// Point is one polyline vertex: a frequency and the complex value there.
type Point struct {
	Freq  float64
	Value complex128
}

// Segments returns the exact breakpoint polyline for c over its whole
// support. Impulses have no polyline; draw them with Markers.
func Segments(c component.Component) []Point {
	return SegmentsIn(c, math.Inf(-1), math.Inf(1))
}

// SegmentsIn returns the polyline for the part of c visible in [lo, hi].
//
// Unlike Filter.Clip this never re-fits a shape: the end vertices carry the
// exact evaluation of c at the clamped edges, so a view cut mid flank starts
// at the true height. Repeated frequencies mark vertical edges. Blocks close
// both sides; ramps gain a vertical edge only when the cut lands exactly on
// the peak edge. The result is nil when nothing of c is visible.
func SegmentsIn(c component.Component, lo, hi float64) []Point {
	if c.IsImpulse() {
		return nil
	}

	slo, shi := c.Support()
	a, b, ok := core.IntersectInterval(lo, hi, slo, shi)
	if !ok {
		return nil
	}

	switch c.Shape() {
	case component.ShapeBlock:
		amp := c.Amplitude()
		return []Point{{a, 0}, {a, amp}, {b, amp}, {b, 0}}

	case component.ShapeTriangle:
		if c.HalfWidth() == 0 {
			return nil
		}
		pts := make([]Point, 0, 3)
		pts = append(pts, Point{a, c.Evaluate(a)})
		if f0 := c.Center(); a <= f0 && f0 <= b {
			pts = append(pts, Point{f0, c.Amplitude()})
		}
		pts = append(pts, Point{b, c.Evaluate(b)})
		return pts

	case component.ShapeLeftTriangle:
		if c.HalfWidth() == 0 {
			return nil
		}
		pts := make([]Point, 0, 3)
		pts = append(pts, Point{a, c.Evaluate(a)}, Point{b, c.Evaluate(b)})
		if b == c.Center() {
			pts = append(pts, Point{b, 0})
		}
		return pts

	case component.ShapeRightTriangle:
		if c.HalfWidth() == 0 {
			return nil
		}
		pts := make([]Point, 0, 3)
		if a == c.Center() {
			pts = append(pts, Point{a, 0})
		}
		pts = append(pts, Point{a, c.Evaluate(a)}, Point{b, c.Evaluate(b)})
		return pts
	}

	return nil
}
