package footprint

import (
	"math"

	"github.com/chazu/shellforge/pkg/config"
	"gonum.org/v1/gonum/spatial/r2"
)

// defaultFraction sizes notches, tabs and arms when no explicit dimension
// is configured.
const defaultFraction = 0.4

// Fixed builds the configured parametric footprint for a w x d outer (or
// cavity) extent, centered at the origin. Unrecognized shapes fall back to
// a plain rectangle; a nil config is a rectangle too.
func Fixed(w, d float64, fc *config.FootprintConfig) (Polygon, error) {
	var p Polygon
	if fc == nil {
		p = Rect(w, d)
	} else {
		switch fc.Shape {
		case config.FootLShape:
			p = lShape(w, d, fc)
		case config.FootTShape:
			p = sided(w, d, fc.Side, func(fw, fd float64) Polygon {
				return tShapeFront(fw, fd, fc.TabWidth, fc.TabDepth)
			})
		case config.FootUShape:
			p = sided(w, d, fc.Side, func(fw, fd float64) Polygon {
				return uShapeFront(fw, fd, fc.NotchWidth, fc.NotchDepth)
			})
		case config.FootPlus:
			p = plusShape(w, d, fc.ArmWidth, fc.ArmDepth)
		case config.FootHexagon:
			p = Regular(6, math.Min(w, d)/2)
		case config.FootOctagon:
			p = Regular(8, math.Min(w, d)/2)
		default:
			// rectangle, empty, and anything unrecognized
			p = Rect(w, d)
		}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p.CCW(), nil
}

// lShape removes a notch from one corner of the rectangle. The base case
// is the front-right corner; the other corners mirror it.
func lShape(w, d float64, fc *config.FootprintConfig) Polygon {
	nw := fc.NotchWidth
	if nw <= 0 {
		nw = defaultFraction * w
	}
	nd := fc.NotchDepth
	if nd <= 0 {
		nd = defaultFraction * d
	}
	w2, d2 := w/2, d/2
	p := Polygon{
		{X: -w2, Y: -d2},
		{X: w2, Y: -d2},
		{X: w2, Y: d2 - nd},
		{X: w2 - nw, Y: d2 - nd},
		{X: w2 - nw, Y: d2},
		{X: -w2, Y: d2},
	}
	switch fc.Corner {
	case "front_left":
		p = mirrorX(p)
	case "back_right":
		p = mirrorY(p)
	case "back_left":
		p = mirrorX(mirrorY(p))
	}
	// default: front_right
	return p
}

// tShapeFront narrows the front edge to a centered tab.
func tShapeFront(w, d, tw, td float64) Polygon {
	if tw <= 0 {
		tw = defaultFraction * w
	}
	if td <= 0 {
		td = defaultFraction * d
	}
	w2, d2, tw2 := w/2, d/2, tw/2
	return Polygon{
		{X: -w2, Y: -d2},
		{X: w2, Y: -d2},
		{X: w2, Y: d2 - td},
		{X: tw2, Y: d2 - td},
		{X: tw2, Y: d2},
		{X: -tw2, Y: d2},
		{X: -tw2, Y: d2 - td},
		{X: -w2, Y: d2 - td},
	}
}

// uShapeFront cuts a centered notch into the front edge.
func uShapeFront(w, d, nw, nd float64) Polygon {
	if nw <= 0 {
		nw = defaultFraction * w
	}
	if nd <= 0 {
		nd = defaultFraction * d
	}
	w2, d2, nw2 := w/2, d/2, nw/2
	return Polygon{
		{X: -w2, Y: -d2},
		{X: w2, Y: -d2},
		{X: w2, Y: d2},
		{X: nw2, Y: d2},
		{X: nw2, Y: d2 - nd},
		{X: -nw2, Y: d2 - nd},
		{X: -nw2, Y: d2},
		{X: -w2, Y: d2},
	}
}

// plusShape crosses a vertical bar (width aw, full depth) with a horizontal
// bar (full width, height ad).
func plusShape(w, d, aw, ad float64) Polygon {
	if aw <= 0 {
		aw = defaultFraction * w
	}
	if ad <= 0 {
		ad = defaultFraction * d
	}
	w2, d2, aw2, ad2 := w/2, d/2, aw/2, ad/2
	return Polygon{
		{X: -aw2, Y: -d2},
		{X: aw2, Y: -d2},
		{X: aw2, Y: -ad2},
		{X: w2, Y: -ad2},
		{X: w2, Y: ad2},
		{X: aw2, Y: ad2},
		{X: aw2, Y: d2},
		{X: -aw2, Y: d2},
		{X: -aw2, Y: ad2},
		{X: -w2, Y: ad2},
		{X: -w2, Y: -ad2},
		{X: -aw2, Y: -ad2},
	}
}

// sided builds a front-facing shape in a rotated frame and turns it so the
// feature lands on the requested side. The frame swaps width and depth for
// the left/right sides so the feature still spans the correct dimension.
func sided(w, d float64, side string, build func(fw, fd float64) Polygon) Polygon {
	switch side {
	case "right":
		return rotCW(build(d, w))
	case "left":
		return rotCCW(build(d, w))
	case "back":
		p := build(w, d)
		return mirrorX(mirrorY(p))
	default: // front
		return build(w, d)
	}
}

func mirrorX(p Polygon) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = r2.Vec{X: -v.X, Y: v.Y}
	}
	return out
}

func mirrorY(p Polygon) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = r2.Vec{X: v.X, Y: -v.Y}
	}
	return out
}

// rotCW rotates 90 degrees clockwise: +Y becomes +X.
func rotCW(p Polygon) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = r2.Vec{X: v.Y, Y: -v.X}
	}
	return out
}

// rotCCW rotates 90 degrees counter-clockwise: +Y becomes -X.
func rotCCW(p Polygon) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = r2.Vec{X: -v.Y, Y: v.X}
	}
	return out
}
