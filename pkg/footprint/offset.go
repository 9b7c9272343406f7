package footprint

import (
	"math"
	"sort"

	polyclip "github.com/ctessum/polyclip-go"
	"gonum.org/v1/gonum/spatial/r2"
)

func toContour(p Polygon) polyclip.Contour {
	c := make(polyclip.Contour, len(p))
	for i, v := range p {
		c[i] = polyclip.Point{X: v.X, Y: v.Y}
	}
	return c
}

func fromContour(c polyclip.Contour) Polygon {
	p := make(Polygon, len(c))
	for i, pt := range c {
		p[i] = r2.Vec{X: pt.X, Y: pt.Y}
	}
	return p
}

// Union merges a set of outlines. The result may contain multiple contours
// when the inputs are disjoint; callers decide how to handle that.
func Union(polys []Polygon) []Polygon {
	if len(polys) == 0 {
		return nil
	}
	acc := polyclip.Polygon{toContour(polys[0])}
	for _, p := range polys[1:] {
		acc = acc.Construct(polyclip.UNION, polyclip.Polygon{toContour(p)})
	}
	out := make([]Polygon, 0, len(acc))
	for _, c := range acc {
		if poly := fromContour(c); poly.Area() > 1e-9 {
			out = append(out, poly)
		}
	}
	return out
}

// ConvexHull computes the convex hull of every vertex in the given
// outlines using the monotone chain construction. The result is a single
// counter-clockwise polygon.
func ConvexHull(polys []Polygon) Polygon {
	var pts []r2.Vec
	for _, p := range polys {
		pts = append(pts, p...)
	}
	if len(pts) < 3 {
		return Polygon(pts)
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})

	cross := func(o, a, b r2.Vec) float64 {
		return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
	}

	var hull []r2.Vec
	// Lower hull.
	for _, p := range pts {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	// Upper hull.
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return Polygon(hull[:len(hull)-1])
}

// Dilate offsets the outline outward by r with square joins. The offset is
// computed as the union of the original polygon, every edge swept along its
// normal, and an axis-aligned square at every vertex: a decomposition of
// the Minkowski sum that can only grow the region, never shrink it.
func Dilate(p Polygon, r float64) Polygon {
	if r <= 0 || len(p) < 3 {
		return p
	}

	acc := polyclip.Polygon{toContour(p)}
	add := func(q Polygon) {
		acc = acc.Construct(polyclip.UNION, polyclip.Polygon{toContour(q.CCW())})
	}

	for i, a := range p {
		b := p[(i+1)%len(p)]
		ex, ey := b.X-a.X, b.Y-a.Y
		l := math.Hypot(ex, ey)
		if l > 1e-12 {
			// Edge quad offset r to both sides of the edge.
			nx, ny := -ey/l*r, ex/l*r
			add(Polygon{
				{X: a.X + nx, Y: a.Y + ny},
				{X: b.X + nx, Y: b.Y + ny},
				{X: b.X - nx, Y: b.Y - ny},
				{X: a.X - nx, Y: a.Y - ny},
			})
		}
		// Corner square fills the join.
		add(Polygon{
			{X: a.X - r, Y: a.Y - r},
			{X: a.X + r, Y: a.Y - r},
			{X: a.X + r, Y: a.Y + r},
			{X: a.X - r, Y: a.Y + r},
		})
	}

	// The dilation of a connected polygon is one connected region; keep the
	// largest contour in case of numeric slivers.
	best := Polygon(nil)
	for _, c := range acc {
		if poly := fromContour(c); poly.Area() > best.Area() {
			best = poly
		}
	}
	return best.CCW()
}
