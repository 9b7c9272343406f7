// Package style computes the geometry additions of the enclosure style
// modifiers: ventilation slot volumes for vented shells and rib levels for
// ribbed shells. The minimal and rounded styles act purely through settings
// overrides during config resolution and need no geometry here.
package style

import (
	"github.com/chazu/shellforge/pkg/config"
	"github.com/chazu/shellforge/pkg/cutout"
)

// Vent slot geometry: thin vertical slots, vertically centered, covering
// 60% of the outer height, marching along each wall at a fixed pitch with
// a margin kept from both wall edges.
const (
	ventSlotWidth  = 2.0
	ventHeightFrac = 0.6
	ventPitch      = 8.0
	ventMargin     = 4.0
)

// Exterior rib geometry: horizontal rings around the full perimeter,
// stacked from the floor upward at a fixed pitch.
const (
	RibHeight = 3.0
	RibDepth  = 1.5
	ribPitch  = 15.0
)

// ventCenters returns the slot center positions along a wall of the given
// length, or nil when the wall is too short for even one slot.
func ventCenters(length float64) []float64 {
	var centers []float64
	x := -length/2 + ventMargin
	for x+ventSlotWidth <= length/2-ventMargin+1e-9 {
		centers = append(centers, x+ventSlotWidth/2)
		x += ventPitch
	}
	return centers
}

// Vents builds the cut volumes for a vented shell: one row of slots per
// wall, placed through the same face frame the cutout engine uses.
func Vents(f cutout.Frame, outerW, outerD float64) []cutout.Volume {
	slotH := ventHeightFrac * f.OuterH
	// Slots center on the outer height, not the cavity center the face
	// frame uses as its reference.
	offY := f.OuterH/2 - f.WallCenterZ()
	var out []cutout.Volume

	add := func(face config.Face, centers []float64) {
		for _, c := range centers {
			v, err := f.ResolveCustom(config.CustomCutout{
				Shape:   config.ShapeRectangle,
				Face:    face,
				Width:   ventSlotWidth,
				Height:  slotH,
				OffsetX: c,
				OffsetY: offY,
			})
			if err != nil {
				continue
			}
			v.Label = "vent"
			out = append(out, v)
		}
	}

	alongX := ventCenters(outerW)
	alongY := ventCenters(outerD)
	add(config.FaceFront, alongX)
	add(config.FaceBack, alongX)
	add(config.FaceLeft, alongY)
	add(config.FaceRight, alongY)
	return out
}

// RibLevels returns the floor-up Z levels of the exterior ribs for a shell
// of the given outer height, stopping before a rib would poke past the top.
func RibLevels(outerH float64) []float64 {
	var levels []float64
	for z := 0.0; z+RibHeight < outerH; z += ribPitch {
		levels = append(levels, z)
	}
	return levels
}
