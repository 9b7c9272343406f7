// Package compose drives enclosure construction: it resolves the request
// into per-part settings, sizes the cavity from the aggregated component
// bounds, and issues kernel operations in a fixed order to produce the
// base shell, lid, and optional accessory parts.
package compose

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/chazu/shellforge/pkg/config"
	"github.com/chazu/shellforge/pkg/cutout"
	"github.com/chazu/shellforge/pkg/footprint"
	"github.com/chazu/shellforge/pkg/kernel"
	"github.com/chazu/shellforge/pkg/spatial"
	"github.com/chazu/shellforge/pkg/standoff"
	"github.com/chazu/shellforge/pkg/style"
)

const (
	// Screw bosses never shrink below this height, however short the screw.
	bossMinHeight = 3.0

	// Countersunk lid holes: a wide head pocket from the top, a narrow
	// shaft from the bottom, and a minimum solid floor between them. Lids
	// too thin for all three fall back to a plain through-hole.
	pocketDepth  = 1.6
	shaftDepth   = 1.2
	minLidFloor  = 0.3
	pocketDiaMul = 2.0

	// Drill overrun past each end of a hole so boolean cuts never leave a
	// zero-thickness film.
	overrun = 1.0

	// Tray plates keep this clearance from each cavity wall.
	trayClearance = 2.0

	// Mounting bracket: back plate width, its share of the outer height,
	// and the forward reach of the perpendicular flange.
	bracketWidth      = 30.0
	bracketHeightFrac = 0.6
	bracketFlange     = 15.0
)

// Dimensions is a width/depth/height summary rounded to 2 decimals.
type Dimensions struct {
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
	Height float64 `json:"height"`
}

func dims(w, d, h float64) Dimensions {
	return Dimensions{Width: round2(w), Depth: round2(d), Height: round2(h)}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Skip records a non-fatal feature that was dropped during composition.
type Skip struct {
	Stage  string `json:"stage"`
	Detail string `json:"detail"`
	Reason string `json:"reason"`
}

// Result is a completed composition: solids per part name, the dimension
// summary, and any features skipped along the way.
type Result struct {
	Parts   map[string]kernel.Solid
	Inner   Dimensions
	Outer   Dimensions
	Skipped []Skip
}

// Composer builds enclosures through an injected kernel.
type Composer struct {
	k   kernel.Kernel
	log zerolog.Logger
}

// New returns a composer driving the given kernel.
func New(k kernel.Kernel, log zerolog.Logger) *Composer {
	return &Composer{k: k, log: log}
}

// Generate runs the full pipeline for one request. Validation failures and
// shell construction failures abort the run; cutouts, standoffs, edge
// treatments, and accessory parts degrade to diagnostics instead.
func (c *Composer) Generate(req *config.Request) (*Result, error) {
	req.ApplyDefaults()
	if errs := req.Validate(); len(errs) > 0 {
		return nil, errs[0]
	}

	placements := make([]spatial.Placement, len(req.Components))
	for i := range req.Components {
		placements[i] = req.Components[i].Placement()
	}
	box, err := spatial.Aggregate(placements)
	if err != nil {
		return nil, err
	}
	for i := range req.Components {
		b := spatial.ComponentBox(placements[i])
		min, max := b.Min, b.Max
		req.Components[i].BBoxMin = &min
		req.Components[i].BBoxMax = &max
	}

	parts := req.ResolveParts()
	wall := parts.Base.WallThickness
	floor := req.FloorThickness
	ext := box.Size()

	innerH := ext.Z + 2*req.PaddingZ
	outerH := innerH + floor

	var (
		outerOutline, cavityOutline footprint.Polygon
		innerW, innerD              float64
		outerW, outerD              float64
		center                      spatial.Point3
	)
	mode := standoff.ModeBBox

	if req.WrapperMode {
		mode = standoff.ModeWrapper
		outerOutline, cavityOutline, err = footprint.Wrapper(
			req.Components, req.PaddingX, req.PaddingY, wall, parts.Base.FilletRadius)
		if err != nil {
			return nil, err
		}
		omin, omax := outerOutline.Bounds()
		cmin, cmax := cavityOutline.Bounds()
		innerW, innerD = cmax.X-cmin.X, cmax.Y-cmin.Y
		outerW, outerD = omax.X-omin.X, omax.Y-omin.Y
		center = spatial.Point3{X: (omin.X + omax.X) / 2, Y: (omin.Y + omax.Y) / 2}
	} else {
		innerW = ext.X + 2*req.PaddingX
		innerD = ext.Y + 2*req.PaddingY
		outerW = innerW + 2*wall
		outerD = innerD + 2*wall
		ctr := box.Center()
		center = spatial.Point3{X: ctr.X, Y: ctr.Y}

		outerOutline, err = footprint.Fixed(outerW, outerD, req.Footprint)
		if err != nil {
			return nil, err
		}
		cavityOutline, err = footprint.Fixed(innerW, innerD, req.Footprint)
		if err != nil {
			return nil, err
		}
		outerOutline = outerOutline.Translate(center.X, center.Y)
		cavityOutline = cavityOutline.Translate(center.X, center.Y)
	}

	res := &Result{
		Parts: map[string]kernel.Solid{},
		Inner: dims(innerW, innerD, innerH),
		Outer: dims(outerW, outerD, outerH),
	}
	frame := cutout.Frame{
		Center: center,
		InnerW: innerW, InnerD: innerD,
		OuterH: outerH,
		Wall:   wall,
		Floor:  floor,
	}

	base, err := c.buildBase(req, parts, frame, outerOutline, cavityOutline, innerH, outerH, outerW, outerD, mode, res)
	if err != nil {
		return nil, err
	}
	res.Parts[config.PartBase] = base

	if parts.Lid.Enabled {
		lid, err := c.buildLid(req, parts.Lid, frame, outerOutline, res)
		if err != nil {
			c.skip(res, config.PartLid, "lid", err)
		} else {
			res.Parts[config.PartLid] = lid
		}
	}
	if parts.Tray.Enabled {
		tray, err := c.buildTray(parts.Tray, frame, cavityOutline)
		if err != nil {
			c.skip(res, config.PartTray, "tray", err)
		} else {
			res.Parts[config.PartTray] = tray
		}
	}
	if parts.Bracket.Enabled {
		bracket, err := c.buildBracket(parts.Bracket, outerH)
		if err != nil {
			c.skip(res, config.PartBracket, "bracket", err)
		} else {
			res.Parts[config.PartBracket] = bracket
		}
	}
	return res, nil
}

func (c *Composer) skip(res *Result, stage, detail string, err error) {
	c.log.Warn().Str("stage", stage).Str("detail", detail).Err(err).Msg("feature skipped")
	res.Skipped = append(res.Skipped, Skip{Stage: stage, Detail: detail, Reason: err.Error()})
}

// buildBase assembles the shell: outer extrusion, edge treatment, cavity
// subtraction, screw bosses, standoffs, cutouts, and the style modifier.
// Only the outer/cavity extrusions are fatal.
func (c *Composer) buildBase(
	req *config.Request,
	parts config.ResolvedParts,
	frame cutout.Frame,
	outerOutline, cavityOutline footprint.Polygon,
	innerH, outerH, outerW, outerD float64,
	mode standoff.Mode,
	res *Result,
) (kernel.Solid, error) {
	base, err := c.k.Extrude(outerOutline, outerH)
	if err != nil {
		return nil, err
	}
	// Wrapper outlines arrive pre-rounded; fixed-shape outlines take their
	// edge treatment on the solid.
	if !req.WrapperMode {
		base = c.edgeTreat(base, parts.Base, res)
	}

	cav, err := c.k.Extrude(cavityOutline, innerH)
	if err != nil {
		return nil, err
	}
	base = c.k.Difference(base, c.k.Translate(cav, 0, 0, frame.Floor))

	if req.LidStyle == config.LidScrews {
		bossR := req.BossDiameter / 2
		bossH := math.Max(req.ScrewLength-req.LidThickness, bossMinHeight)
		if bossH > innerH {
			bossH = innerH
		}
		for _, p := range bossPositions(frame, bossR+frame.Wall) {
			boss, err := c.k.Cylinder(bossH, bossR)
			if err != nil {
				c.skip(res, "boss", "screw boss", err)
				continue
			}
			base = c.k.Union(base, c.k.Translate(boss, p.X, p.Y, frame.Floor))
			drill, err := c.k.Cylinder(bossH+overrun, req.ScrewDiameter/2)
			if err != nil {
				c.skip(res, "boss", "screw drill", err)
				continue
			}
			base = c.k.Difference(base, c.k.Translate(drill, p.X, p.Y, frame.Floor))
		}
	}

	if req.PCBStandoffsEnabled {
		for _, s := range standoff.PlanAll(req.Components, mode) {
			boss, err := c.k.Cylinder(s.Height, s.BossRadius)
			if err != nil {
				c.skip(res, "standoff", "boss", err)
				continue
			}
			base = c.k.Union(base, c.k.Translate(boss, s.X, s.Y, frame.Floor))
			drill, err := c.k.Cylinder(s.Height+overrun, s.DrillRadius)
			if err != nil {
				c.skip(res, "standoff", "drill", err)
				continue
			}
			base = c.k.Difference(base, c.k.Translate(drill, s.X, s.Y, frame.Floor))
		}
	}

	for _, cc := range req.Cutouts {
		v, err := frame.ResolveConnector(cc)
		if err != nil {
			c.skip(res, "cutout", cc.ConnectorType, err)
			continue
		}
		base = c.applyCut(base, v, res)
	}
	for _, cc := range req.CustomCutouts {
		v, err := frame.ResolveCustom(cc)
		if err != nil {
			c.skip(res, "cutout", "custom "+cc.Shape, err)
			continue
		}
		base = c.applyCut(base, v, res)
	}

	switch parts.Base.Style {
	case config.StyleVented:
		for _, v := range style.Vents(frame, outerW, outerD) {
			base = c.applyCut(base, v, res)
		}
	case config.StyleRibbed:
		ribOutline := footprint.Dilate(outerOutline, style.RibDepth)
		for _, z := range style.RibLevels(outerH) {
			rib, err := c.k.Extrude(ribOutline, style.RibHeight)
			if err != nil {
				c.skip(res, "style", "rib", err)
				continue
			}
			base = c.k.Union(base, c.k.Translate(rib, 0, 0, z))
		}
	}
	return base, nil
}

// applyCut subtracts one resolved cut volume from a solid, skipping the
// cut when the kernel cannot realize it.
func (c *Composer) applyCut(s kernel.Solid, v cutout.Volume, res *Result) kernel.Solid {
	var cut kernel.Solid
	var err error
	if v.Shape == config.ShapeCircle {
		cut, err = c.k.Cylinder(v.Depth, v.Diameter/2)
	} else {
		var p footprint.Polygon
		p, err = v.Profile()
		if err == nil {
			cut, err = c.k.Extrude(p, v.Depth)
		}
	}
	if err != nil {
		c.skip(res, "cutout", v.Label, err)
		return s
	}
	cut = c.k.Translate(cut, 0, 0, -v.Depth/2)
	if v.Euler != (spatial.Point3{}) {
		cut = c.k.Rotate(cut, v.Euler.X, v.Euler.Y, v.Euler.Z)
	}
	cut = c.k.Translate(cut, v.Center.X, v.Center.Y, v.Center.Z)
	return c.k.Difference(s, cut)
}

// edgeTreat applies the part's fillet or chamfer, keeping the untreated
// solid when the kernel declines.
func (c *Composer) edgeTreat(s kernel.Solid, ps config.PartSettings, res *Result) kernel.Solid {
	var treated kernel.Solid
	var err error
	switch {
	case ps.EdgeStyle == config.EdgeFillet && ps.FilletRadius > 0:
		treated, err = c.k.Fillet(s, ps.FilletRadius)
	case ps.EdgeStyle == config.EdgeChamfer && ps.ChamferSize > 0:
		treated, err = c.k.Chamfer(s, ps.ChamferSize)
	default:
		return s
	}
	if err != nil {
		c.skip(res, "edge", ps.Name+" "+ps.EdgeStyle, err)
		return s
	}
	return treated
}

// bossPositions returns the four screw boss centers, inset from the cavity
// walls and symmetric about both axes of the enclosure center.
func bossPositions(f cutout.Frame, inset float64) []spatial.Point3 {
	dx := f.InnerW/2 - inset
	dy := f.InnerD/2 - inset
	return []spatial.Point3{
		{X: f.Center.X - dx, Y: f.Center.Y - dy},
		{X: f.Center.X + dx, Y: f.Center.Y - dy},
		{X: f.Center.X + dx, Y: f.Center.Y + dy},
		{X: f.Center.X - dx, Y: f.Center.Y + dy},
	}
}

// buildLid makes the flat lid plate and its hole or rim treatment.
func (c *Composer) buildLid(
	req *config.Request,
	ps config.PartSettings,
	frame cutout.Frame,
	outerOutline footprint.Polygon,
	res *Result,
) (kernel.Solid, error) {
	lidT := req.LidThickness
	lid, err := c.k.Extrude(outerOutline, lidT)
	if err != nil {
		return nil, err
	}
	if !req.WrapperMode {
		lid = c.edgeTreat(lid, ps, res)
	}

	switch req.LidStyle {
	case config.LidScrews:
		lid = c.lidScrewHoles(req, ps, frame, lid, res)
	case config.LidSnap:
		lid, err = c.lidSnapRim(req, frame, lid)
		if err != nil {
			return nil, err
		}
	}
	return lid, nil
}

// lidScrewHoles cuts the four boss-aligned holes per the lid hole style.
func (c *Composer) lidScrewHoles(
	req *config.Request,
	ps config.PartSettings,
	frame cutout.Frame,
	lid kernel.Solid,
	res *Result,
) kernel.Solid {
	if ps.LidHoleStyle == config.LidHoleClosed {
		return lid
	}
	lidT := req.LidThickness
	screwR := req.ScrewDiameter / 2
	countersink := ps.LidHoleStyle == config.LidHoleCountersunk &&
		lidT > pocketDepth+shaftDepth+minLidFloor

	for _, p := range bossPositions(frame, req.BossDiameter/2+frame.Wall) {
		if countersink {
			pocket, err := c.k.Cylinder(pocketDepth+overrun, pocketDiaMul*req.ScrewDiameter/2)
			if err != nil {
				c.skip(res, "lid", "countersink pocket", err)
				continue
			}
			lid = c.k.Difference(lid, c.k.Translate(pocket, p.X, p.Y, lidT-pocketDepth))
			shaft, err := c.k.Cylinder(shaftDepth+overrun, screwR)
			if err != nil {
				c.skip(res, "lid", "countersink shaft", err)
				continue
			}
			lid = c.k.Difference(lid, c.k.Translate(shaft, p.X, p.Y, -overrun))
			continue
		}
		hole, err := c.k.Cylinder(lidT+2*overrun, screwR)
		if err != nil {
			c.skip(res, "lid", "screw hole", err)
			continue
		}
		lid = c.k.Difference(lid, c.k.Translate(hole, p.X, p.Y, -overrun))
	}
	return lid
}

// lidSnapRim unions a cavity-sized rim onto the lid and hollows it so it
// grips the base opening as a friction lip.
func (c *Composer) lidSnapRim(req *config.Request, frame cutout.Frame, lid kernel.Solid) (kernel.Solid, error) {
	rimH := 2 * req.SnapDepth
	lidT := req.LidThickness

	outer := footprint.Rect(frame.InnerW, frame.InnerD).Translate(frame.Center.X, frame.Center.Y)
	rim, err := c.k.Extrude(outer, rimH)
	if err != nil {
		return nil, err
	}
	lid = c.k.Union(lid, c.k.Translate(rim, 0, 0, lidT))

	hollowW := frame.InnerW - 2*frame.Wall
	hollowD := frame.InnerD - 2*frame.Wall
	if hollowW <= 0 || hollowD <= 0 {
		return lid, nil
	}
	inner := footprint.Rect(hollowW, hollowD).Translate(frame.Center.X, frame.Center.Y)
	hollow, err := c.k.Extrude(inner, rimH+overrun)
	if err != nil {
		return nil, err
	}
	return c.k.Difference(lid, c.k.Translate(hollow, 0, 0, lidT)), nil
}

// buildTray makes a flat shelf sized to the cavity minus clearance,
// positioned at the configured height above the floor.
func (c *Composer) buildTray(ps config.PartSettings, frame cutout.Frame, cavityOutline footprint.Polygon) (kernel.Solid, error) {
	cmin, cmax := cavityOutline.Bounds()
	w := (cmax.X - cmin.X) - 2*trayClearance
	d := (cmax.Y - cmin.Y) - 2*trayClearance
	if w <= 0 || d <= 0 {
		return nil, footprint.ErrDegenerate
	}
	plate := footprint.Rect(w, d).Translate((cmin.X+cmax.X)/2, (cmin.Y+cmax.Y)/2)
	tray, err := c.k.Extrude(plate, ps.TrayThickness)
	if err != nil {
		return nil, err
	}
	return c.k.Translate(tray, 0, 0, frame.Floor+ps.TrayZ), nil
}

// buildBracket makes an L-shaped wall-mount: a vertical back plate with two
// mounting holes and a perpendicular flange the enclosure rests on. The
// bracket is its own part, built about the origin.
func (c *Composer) buildBracket(ps config.PartSettings, outerH float64) (kernel.Solid, error) {
	h := bracketHeightFrac * outerH
	t := ps.WallThickness

	back, err := c.k.Extrude(footprint.Rect(bracketWidth, t), h)
	if err != nil {
		return nil, err
	}
	flange, err := c.k.Extrude(
		footprint.Rect(bracketWidth, bracketFlange).Translate(0, (t+bracketFlange)/2), t)
	if err != nil {
		return nil, err
	}
	bracket := c.k.Union(back, flange)

	// Through-holes along Y at 25% and 75% of the plate height.
	holeR := ps.BracketHoleDiameter / 2
	for _, frac := range []float64{0.25, 0.75} {
		hole, err := c.k.Cylinder(t+2*overrun, holeR)
		if err != nil {
			return nil, err
		}
		hole = c.k.Translate(hole, 0, 0, -(t/2 + overrun))
		hole = c.k.Rotate(hole, 90, 0, 0)
		bracket = c.k.Difference(bracket, c.k.Translate(hole, 0, 0, frac*h))
	}
	return bracket, nil
}
