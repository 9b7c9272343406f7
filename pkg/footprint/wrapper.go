package footprint

import (
	"math"

	"github.com/chazu/shellforge/pkg/config"
)

// Wrapper derives the outer and cavity outlines that hug an arbitrary
// component arrangement. Component footprints are taken in world
// coordinates, rotated about the vertical axis by the component's plan
// rotation, and unioned; a disconnected union collapses to its convex hull
// so the cavity is always a single region. The cavity outline is the union
// grown by the larger padding, the outer outline grows again by the wall
// thickness. A non-zero fillet rounds convex corners on both outlines,
// with the cavity getting half the radius.
func Wrapper(comps []config.Component, padX, padY, wall, fillet float64) (outer, cavity Polygon, err error) {
	if len(comps) == 0 {
		return nil, nil, ErrDegenerate
	}

	rects := make([]Polygon, 0, len(comps))
	for _, c := range comps {
		if c.Width <= 0 || c.Depth <= 0 {
			continue
		}
		r := Rect(c.Width, c.Depth).Rotate(c.RotY).Translate(c.X, c.Y)
		rects = append(rects, r)
	}
	if len(rects) == 0 {
		return nil, nil, ErrDegenerate
	}

	merged := Union(rects)
	var hull Polygon
	switch len(merged) {
	case 0:
		return nil, nil, ErrDegenerate
	case 1:
		hull = merged[0].CCW()
	default:
		hull = ConvexHull(merged)
	}
	if err := hull.Validate(); err != nil {
		return nil, nil, err
	}

	pad := math.Max(padX, padY)
	cavity = Dilate(hull, pad)
	outer = Dilate(cavity, wall)

	if fillet > 0 {
		outer = RoundCorners(outer, fillet)
		cavity = RoundCorners(cavity, fillet/2)
	}
	return outer, cavity, nil
}
