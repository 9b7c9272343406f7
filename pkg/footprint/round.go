package footprint

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const arcStep = 15 * math.Pi / 180

// RoundCorners replaces each convex corner of the outline with a circular
// arc of the given radius. The radius is clamped per corner so the tangent
// points never pass the midpoint of an adjacent edge; reflex corners are
// left untouched.
func RoundCorners(p Polygon, radius float64) Polygon {
	return treatCorners(p, radius, true)
}

// ChamferCorners replaces each convex corner with a straight cut between
// the two tangent points, using the same clamping rules as RoundCorners.
func ChamferCorners(p Polygon, size float64) Polygon {
	return treatCorners(p, size, false)
}

func treatCorners(p Polygon, r float64, round bool) Polygon {
	if r <= 0 || len(p) < 3 {
		return p
	}
	p = p.CCW()
	n := len(p)
	out := make(Polygon, 0, n*4)

	for i := 0; i < n; i++ {
		prev := p[(i-1+n)%n]
		b := p[i]
		next := p[(i+1)%n]

		u := r2.Vec{X: prev.X - b.X, Y: prev.Y - b.Y}
		v := r2.Vec{X: next.X - b.X, Y: next.Y - b.Y}
		lu := math.Hypot(u.X, u.Y)
		lv := math.Hypot(v.X, v.Y)
		if lu < 1e-12 || lv < 1e-12 {
			continue
		}
		u = r2.Vec{X: u.X / lu, Y: u.Y / lu}
		v = r2.Vec{X: v.X / lv, Y: v.Y / lv}

		// Convex corner in a CCW outline has cross(v, u) > 0.
		cross := v.X*u.Y - v.Y*u.X
		dot := u.X*v.X + u.Y*v.Y
		if cross <= 1e-9 {
			out = append(out, b)
			continue
		}
		phi := math.Acos(math.Max(-1, math.Min(1, dot)))
		if phi < 1e-6 || math.Pi-phi < 1e-6 {
			out = append(out, b)
			continue
		}

		// Tangent distance along each edge, clamped so neighbouring
		// corners cannot overlap.
		t := r / math.Tan(phi/2)
		maxT := 0.49 * math.Min(lu, lv)
		rEff := r
		if t > maxT {
			rEff = r * maxT / t
			t = maxT
		}

		p1 := r2.Vec{X: b.X + u.X*t, Y: b.Y + u.Y*t}
		p2 := r2.Vec{X: b.X + v.X*t, Y: b.Y + v.Y*t}

		if !round {
			out = append(out, p1, p2)
			continue
		}

		bis := r2.Vec{X: u.X + v.X, Y: u.Y + v.Y}
		lb := math.Hypot(bis.X, bis.Y)
		if lb < 1e-12 {
			out = append(out, b)
			continue
		}
		d := rEff / math.Sin(phi/2)
		c := r2.Vec{X: b.X + bis.X/lb*d, Y: b.Y + bis.Y/lb*d}

		a1 := math.Atan2(p1.Y-c.Y, p1.X-c.X)
		a2 := math.Atan2(p2.Y-c.Y, p2.X-c.X)
		sweep := a2 - a1
		// The arc around a convex corner of a CCW outline turns
		// counter-clockwise by pi minus the interior angle.
		for sweep <= 0 {
			sweep += 2 * math.Pi
		}
		steps := int(math.Ceil(sweep/arcStep)) + 1
		if steps < 2 {
			steps = 2
		}
		for s := 0; s < steps; s++ {
			a := a1 + sweep*float64(s)/float64(steps-1)
			out = append(out, r2.Vec{X: c.X + rEff*math.Cos(a), Y: c.Y + rEff*math.Sin(a)})
		}
	}
	if len(out) < 3 {
		return p
	}
	return out
}
