// Package footprint derives the 2D outline of enclosure parts: either a
// fixed parametric shape family, or a "wrapper" outline computed from the
// true union of component footprints. Outlines are simple closed polygons
// handed to the solid kernel for extrusion.
package footprint

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// ErrDegenerate is returned when an outline has fewer than 3 vertices or
// encloses no area. A degenerate footprint is fatal for the part that
// needs it.
var ErrDegenerate = errors.New("footprint: degenerate polygon")

// Polygon is a closed 2D outline as an ordered vertex list. The closing
// edge from the last vertex back to the first is implicit.
type Polygon []r2.Vec

// Validate rejects outlines the kernel cannot extrude: too few vertices,
// or a vertex list collapsed onto a point or line.
func (p Polygon) Validate() error {
	if len(p) < 3 {
		return ErrDegenerate
	}
	if p.Area() < 1e-9 {
		return ErrDegenerate
	}
	return nil
}

// signedArea is positive for counter-clockwise winding.
func (p Polygon) signedArea() float64 {
	var sum float64
	for i, a := range p {
		b := p[(i+1)%len(p)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Area returns the enclosed area regardless of winding.
func (p Polygon) Area() float64 {
	return math.Abs(p.signedArea())
}

// CCW returns the polygon in counter-clockwise winding.
func (p Polygon) CCW() Polygon {
	if p.signedArea() >= 0 {
		return p
	}
	out := make(Polygon, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}
	return out
}

// Bounds returns the axis-aligned bounding rectangle of the outline.
func (p Polygon) Bounds() (min, max r2.Vec) {
	if len(p) == 0 {
		return r2.Vec{}, r2.Vec{}
	}
	min, max = p[0], p[0]
	for _, v := range p[1:] {
		min.X = math.Min(min.X, v.X)
		min.Y = math.Min(min.Y, v.Y)
		max.X = math.Max(max.X, v.X)
		max.Y = math.Max(max.Y, v.Y)
	}
	return min, max
}

// Translate returns the outline shifted by (dx, dy).
func (p Polygon) Translate(dx, dy float64) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = r2.Vec{X: v.X + dx, Y: v.Y + dy}
	}
	return out
}

// Rotate returns the outline rotated about the origin by deg degrees.
func (p Polygon) Rotate(deg float64) Polygon {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = r2.Vec{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
	}
	return out
}

// Rect builds an axis-aligned w x d rectangle centered at the origin.
func Rect(w, d float64) Polygon {
	return Polygon{
		{X: -w / 2, Y: -d / 2},
		{X: w / 2, Y: -d / 2},
		{X: w / 2, Y: d / 2},
		{X: -w / 2, Y: d / 2},
	}
}

// Regular builds a regular n-gon inscribed in the given radius, centered at
// the origin. Vertices are offset by half an edge angle so an edge (not a
// vertex) faces each axis, which prints flatter walls.
func Regular(n int, radius float64) Polygon {
	out := make(Polygon, n)
	for i := 0; i < n; i++ {
		a := 2*math.Pi*float64(i)/float64(n) + math.Pi/float64(n)
		out[i] = r2.Vec{X: radius * math.Cos(a), Y: radius * math.Sin(a)}
	}
	return out
}
