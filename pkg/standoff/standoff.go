// Package standoff places PCB mounting bosses inside the cavity. Explicit
// board-local positions win; otherwise bosses auto-place at the board's
// corners with a fixed inset.
package standoff

import (
	"math"

	"github.com/chazu/shellforge/pkg/config"
)

// Mode selects the boss sizing rule. Wrapper enclosures hug the boards
// tightly and use slimmer bosses than bounding-box enclosures.
type Mode int

const (
	ModeBBox Mode = iota
	ModeWrapper
)

// Boss radius multipliers applied to the PCB screw diameter per mode.
const (
	bboxBossFactor    = 2.5
	wrapperBossFactor = 1.25
)

// cornerInset is the auto-placement margin from each board edge, clamped so
// tiny boards never produce inverted insets.
const (
	cornerInset   = 3.0
	minHalfExtent = 1.0
)

// Standoff is one placed boss: world XY position, outer boss radius,
// concentric drill radius, and height from the cavity floor.
type Standoff struct {
	X           float64
	Y           float64
	BossRadius  float64
	DrillRadius float64
	Height      float64
}

// Plan computes the standoffs for one component. Components that are not
// PCBs, or that sit on the floor (no ground clearance), get none.
func Plan(c config.Component, mode Mode) []Standoff {
	if !c.IsPCB || c.GroundZ <= 0 {
		return nil
	}

	screw := c.PCBScrewDiameter
	if screw <= 0 {
		screw = config.DefaultScrewDiameter
	}
	factor := bboxBossFactor
	if mode == ModeWrapper {
		factor = wrapperBossFactor
	}

	proto := Standoff{
		BossRadius:  factor * screw,
		DrillRadius: screw / 2,
		Height:      c.GroundZ,
	}

	var offsets []config.Offset2
	if len(c.StandoffPositions) > 0 {
		offsets = c.StandoffPositions
	} else {
		ix := math.Max(c.Width/2-cornerInset, minHalfExtent)
		iy := math.Max(c.Depth/2-cornerInset, minHalfExtent)
		offsets = []config.Offset2{
			{X: -ix, Y: -iy},
			{X: ix, Y: -iy},
			{X: ix, Y: iy},
			{X: -ix, Y: iy},
		}
	}

	out := make([]Standoff, len(offsets))
	for i, o := range offsets {
		s := proto
		s.X = c.X + o.X
		s.Y = c.Y + o.Y
		out[i] = s
	}
	return out
}

// PlanAll flattens the standoffs of every PCB component.
func PlanAll(comps []config.Component, mode Mode) []Standoff {
	var out []Standoff
	for _, c := range comps {
		out = append(out, Plan(c, mode)...)
	}
	return out
}
