// Package config defines the declarative enclosure request: components,
// cutouts, footprint selection, per-part overrides, and global settings.
// It also owns pre-pipeline validation and the explicit per-part merge that
// produces fully-resolved settings before any geometry runs.
package config

import (
	"github.com/chazu/shellforge/pkg/spatial"
)

// Face names one of the six enclosure walls.
type Face string

const (
	FaceFront  Face = "front"  // +Y
	FaceBack   Face = "back"   // -Y
	FaceLeft   Face = "left"   // -X
	FaceRight  Face = "right"  // +X
	FaceTop    Face = "top"    // +Z
	FaceBottom Face = "bottom" // -Z
)

// Valid reports whether f names a real wall face.
func (f Face) Valid() bool {
	switch f {
	case FaceFront, FaceBack, FaceLeft, FaceRight, FaceTop, FaceBottom:
		return true
	}
	return false
}

// Lid styles.
const (
	LidScrews = "screws"
	LidSnap   = "snap"
	LidNone   = "none"
)

// Enclosure styles.
const (
	StyleClassic = "classic"
	StyleVented  = "vented"
	StyleRounded = "rounded"
	StyleRibbed  = "ribbed"
	StyleMinimal = "minimal"
)

// Edge treatments.
const (
	EdgeNone    = "none"
	EdgeFillet  = "fillet"
	EdgeChamfer = "chamfer"
)

// Lid hole treatments for screw-style lids.
const (
	LidHoleThrough     = "through"
	LidHoleCountersunk = "countersunk"
	LidHoleClosed      = "closed"
)

// Part names, in fixed construction order.
const (
	PartBase    = "base"
	PartLid     = "lid"
	PartTray    = "tray"
	PartBracket = "bracket"
)

// Offset2 is a 2D offset in millimeters.
type Offset2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Component is one item placed inside the enclosure, described by its local
// bounding dimensions and world pose. BBoxMin/BBoxMax are derived by the
// aggregator exactly once per run; they are not authoritative input.
type Component struct {
	Name   string  `json:"name"`
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
	Height float64 `json:"height"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      float64 `json:"z"`
	RotX   float64 `json:"rot_x,omitempty"`
	RotY   float64 `json:"rot_y,omitempty"` // plan rotation about the vertical axis
	RotZ   float64 `json:"rot_z,omitempty"`

	// PCB fields. GroundZ doubles as the standoff height.
	IsPCB             bool      `json:"is_pcb,omitempty"`
	PCBScrewDiameter  float64   `json:"pcb_screw_diameter,omitempty"`
	GroundZ           float64   `json:"ground_z,omitempty"`
	StandoffPositions []Offset2 `json:"standoff_positions,omitempty"` // empty means auto-placement

	BBoxMin *spatial.Point3 `json:"-"`
	BBoxMax *spatial.Point3 `json:"-"`
}

// Placement converts the component to the aggregator's input form.
func (c *Component) Placement() spatial.Placement {
	return spatial.Placement{
		Position: spatial.Point3{X: c.X, Y: c.Y, Z: c.Z},
		Rotation: spatial.Point3{X: c.RotX, Y: c.RotY, Z: c.RotZ},
		Width:    c.Width,
		Depth:    c.Depth,
		Height:   c.Height,
		GroundZ:  c.GroundZ,
	}
}

// ConnectorCutout is a catalog-profiled hole in one wall. Offsets are
// face-local millimeters from the face center.
type ConnectorCutout struct {
	ConnectorType string  `json:"connector_type"`
	Face          Face    `json:"face"`
	OffsetX       float64 `json:"offset_x"`
	OffsetY       float64 `json:"offset_y"`
	CustomWidth   float64 `json:"custom_width,omitempty"`  // only for connector_type = custom
	CustomHeight  float64 `json:"custom_height,omitempty"` // only for connector_type = custom
}

// Custom cutout shapes.
const (
	ShapeRectangle = "rectangle"
	ShapeCircle    = "circle"
	ShapeHexagon   = "hexagon"
	ShapeTriangle  = "triangle"
)

// CustomCutout is a free-form hole: a primitive shape with explicit
// dimensions, optionally rotated about the face normal.
type CustomCutout struct {
	Shape    string  `json:"shape"`
	Face     Face    `json:"face"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Depth    float64 `json:"depth,omitempty"` // 0 means auto (wall thickness + 2)
	OffsetX  float64 `json:"offset_x"`
	OffsetY  float64 `json:"offset_y"`
	Rotation float64 `json:"rotation,omitempty"` // degrees about the face normal
}

// Footprint shape families for the fixed-shape builder.
const (
	FootRectangle = "rectangle"
	FootLShape    = "l_shape"
	FootTShape    = "t_shape"
	FootUShape    = "u_shape"
	FootPlus      = "plus"
	FootHexagon   = "hexagon"
	FootOctagon   = "octagon"
)

// FootprintConfig selects a fixed parametric footprint shape. Notch, tab and
// arm dimensions default to 0.4 of the relevant outer dimension when zero.
type FootprintConfig struct {
	Shape      string  `json:"shape"`
	NotchWidth float64 `json:"notch_width,omitempty"` // l_shape, u_shape
	NotchDepth float64 `json:"notch_depth,omitempty"` // l_shape, u_shape
	TabWidth   float64 `json:"tab_width,omitempty"`   // t_shape
	TabDepth   float64 `json:"tab_depth,omitempty"`   // t_shape
	ArmWidth   float64 `json:"arm_width,omitempty"`   // plus: vertical bar width
	ArmDepth   float64 `json:"arm_depth,omitempty"`   // plus: horizontal bar height
	Corner     string  `json:"corner,omitempty"`      // l_shape: front_left, front_right, back_left, back_right
	Side       string  `json:"side,omitempty"`        // t_shape, u_shape: front, back, left, right
}

// PartConfig carries per-part overrides. Zero values fall back to the global
// configuration during resolution. Enabled is only consulted for the
// optional tray and bracket parts.
type PartConfig struct {
	Enabled       bool    `json:"enabled,omitempty"`
	Style         string  `json:"style,omitempty"`
	FilletRadius  float64 `json:"fillet_radius,omitempty"`
	WallThickness float64 `json:"wall_thickness,omitempty"`
	EdgeStyle     string  `json:"edge_style,omitempty"`
	ChamferSize   float64 `json:"chamfer_size,omitempty"`

	LidHoleStyle string `json:"lid_hole_style,omitempty"` // lid only

	TrayZ         float64 `json:"tray_z,omitempty"`         // tray only
	TrayThickness float64 `json:"tray_thickness,omitempty"` // tray only

	BracketHoleDiameter float64 `json:"bracket_hole_diameter,omitempty"` // bracket only
}

// PartsConfig groups the optional per-part overrides.
type PartsConfig struct {
	Base    PartConfig `json:"base,omitempty"`
	Lid     PartConfig `json:"lid,omitempty"`
	Tray    PartConfig `json:"tray,omitempty"`
	Bracket PartConfig `json:"bracket,omitempty"`
}

// Request is the full enclosure generation request, mirroring the JSON
// surface of the service API.
type Request struct {
	Components    []Component       `json:"components"`
	Cutouts       []ConnectorCutout `json:"cutouts,omitempty"`
	CustomCutouts []CustomCutout    `json:"custom_cutouts,omitempty"`

	PaddingX float64 `json:"padding_x"`
	PaddingY float64 `json:"padding_y"`
	PaddingZ float64 `json:"padding_z"`

	WallThickness  float64 `json:"wall_thickness"`
	FloorThickness float64 `json:"floor_thickness"`
	LidThickness   float64 `json:"lid_thickness"`

	LidStyle string `json:"lid_style"`

	ScrewDiameter float64 `json:"screw_diameter"`
	ScrewLength   float64 `json:"screw_length"`
	BossDiameter  float64 `json:"boss_diameter"`

	SnapDepth float64 `json:"snap_depth"`
	SnapWidth float64 `json:"snap_width"`

	FilletRadius   float64 `json:"fillet_radius"`
	EnclosureStyle string  `json:"enclosure_style"`

	PCBStandoffsEnabled bool `json:"pcb_standoffs_enabled,omitempty"`

	// WrapperMode derives the footprint from the true union of component
	// shapes instead of the fixed parametric family. Mutually exclusive
	// with Footprint.
	WrapperMode bool             `json:"wrapper_mode,omitempty"`
	Footprint   *FootprintConfig `json:"footprint,omitempty"`

	Parts PartsConfig `json:"parts,omitempty"`
}
