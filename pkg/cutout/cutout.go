// Package cutout resolves connector and free-form wall openings into
// oriented 3D cut volumes. Placement converts face-local offsets into world
// coordinates against the enclosure frame; the composer subtracts the
// resulting volumes from the shell.
package cutout

import (
	"fmt"

	"github.com/chazu/shellforge/pkg/config"
	"github.com/chazu/shellforge/pkg/connectors"
	"github.com/chazu/shellforge/pkg/footprint"
	"github.com/chazu/shellforge/pkg/spatial"
)

// penetration is the extra cut depth past the wall on each side so boolean
// subtraction never leaves a coincident-surface film.
const penetration = 2.0

// defaultCustomSize replaces missing dimensions on custom-type connector
// cutouts.
const defaultCustomSize = 10.0

// InvalidFaceError reports a cutout aimed at a face the enclosure does not
// have.
type InvalidFaceError struct {
	Face config.Face
}

func (e *InvalidFaceError) Error() string {
	return fmt.Sprintf("invalid cutout face %q", string(e.Face))
}

// Frame is the world-space context cut volumes are placed against: the
// enclosure center, cavity extents, wall thickness, and outer height.
type Frame struct {
	Center spatial.Point3 // XY center of the enclosure at the floor plane
	InnerW float64
	InnerD float64
	OuterH float64
	Wall   float64
	Floor  float64
}

// WallCenterZ is the vertical center of the cavity, the reference height
// for face-local offsetY on the four side faces.
func (f Frame) WallCenterZ() float64 {
	return f.Floor + (f.OuterH-f.Floor)/2
}

// Volume is one fully placed cut, ready for the kernel: a profile in its
// local XY plane, an extrusion depth along local Z, an in-plane rotation,
// a plane orientation, and the world-space center of the cut.
type Volume struct {
	Label    string
	Shape    string // rectangle, circle, hexagon, triangle
	Width    float64
	Height   float64
	Diameter float64 // circle only
	Depth    float64
	Rotation float64 // in-plane, degrees about the face normal
	Center   spatial.Point3
	Euler    spatial.Point3 // plane orientation, degrees, X then Y then Z
	Face     config.Face
}

// Profile returns the cut's outline in its local XY plane, already rotated
// in-plane. Circle volumes have no polygon profile; the composer builds a
// cylinder from Diameter instead.
func (v Volume) Profile() (footprint.Polygon, error) {
	var p footprint.Polygon
	switch v.Shape {
	case config.ShapeRectangle:
		p = footprint.Rect(v.Width, v.Height)
	case config.ShapeHexagon:
		p = footprint.Regular(6, v.Width/2)
	case config.ShapeTriangle:
		p = footprint.Regular(3, v.Width/2)
	case config.ShapeCircle:
		return nil, fmt.Errorf("cutout: circle volume has no polygon profile")
	default:
		return nil, fmt.Errorf("cutout: unknown profile shape %q", v.Shape)
	}
	if v.Rotation != 0 {
		p = p.Rotate(v.Rotation)
	}
	return p, nil
}

// place resolves the face-local offsets into a world-space center and the
// plane orientation for that face.
func (f Frame) place(face config.Face, offX, offY float64) (spatial.Point3, spatial.Point3, error) {
	wallMid := f.Wall / 2
	switch face {
	case config.FaceFront:
		return spatial.Point3{
			X: f.Center.X + offX,
			Y: f.Center.Y + f.InnerD/2 + wallMid,
			Z: f.WallCenterZ() + offY,
		}, spatial.Point3{X: 90}, nil
	case config.FaceBack:
		return spatial.Point3{
			X: f.Center.X + offX,
			Y: f.Center.Y - f.InnerD/2 - wallMid,
			Z: f.WallCenterZ() + offY,
		}, spatial.Point3{X: 90}, nil
	case config.FaceRight:
		return spatial.Point3{
			X: f.Center.X + f.InnerW/2 + wallMid,
			Y: f.Center.Y + offX,
			Z: f.WallCenterZ() + offY,
		}, spatial.Point3{X: 90, Z: 90}, nil
	case config.FaceLeft:
		return spatial.Point3{
			X: f.Center.X - f.InnerW/2 - wallMid,
			Y: f.Center.Y + offX,
			Z: f.WallCenterZ() + offY,
		}, spatial.Point3{X: 90, Z: 90}, nil
	case config.FaceTop:
		return spatial.Point3{
			X: f.Center.X + offX,
			Y: f.Center.Y + offY,
			Z: f.OuterH,
		}, spatial.Point3{}, nil
	case config.FaceBottom:
		return spatial.Point3{
			X: f.Center.X + offX,
			Y: f.Center.Y + offY,
			Z: 0,
		}, spatial.Point3{}, nil
	}
	return spatial.Point3{}, spatial.Point3{}, &InvalidFaceError{Face: face}
}

// ResolveConnector turns a catalog-profiled cutout into a placed cut
// volume. The reserved "custom" type takes its dimensions from the request
// instead of the catalog, defaulting each missing dimension to 10mm.
func (f Frame) ResolveConnector(c config.ConnectorCutout) (Volume, error) {
	var prof connectors.Profile
	if c.ConnectorType == connectors.TypeCustom {
		w, h := c.CustomWidth, c.CustomHeight
		if w <= 0 {
			w = defaultCustomSize
		}
		if h <= 0 {
			h = defaultCustomSize
		}
		prof = connectors.Profile{Width: w, Height: h, Label: "Custom"}
	} else {
		p, err := connectors.Lookup(c.ConnectorType)
		if err != nil {
			return Volume{}, err
		}
		prof = p
	}

	center, euler, err := f.place(c.Face, c.OffsetX, c.OffsetY)
	if err != nil {
		return Volume{}, err
	}

	v := Volume{
		Label:  c.ConnectorType,
		Shape:  config.ShapeRectangle,
		Width:  prof.Width,
		Height: prof.Height,
		Depth:  f.Wall + penetration,
		Center: center,
		Euler:  euler,
		Face:   c.Face,
	}
	if prof.IsRound {
		v.Shape = config.ShapeCircle
		v.Diameter = prof.Diameter
	}
	return v, nil
}

// ResolveCustom turns a free-form cutout into a placed cut volume. A zero
// depth means cut through the wall; explicit depths shallower than the wall
// are deepened so the opening always penetrates.
func (f Frame) ResolveCustom(c config.CustomCutout) (Volume, error) {
	switch c.Shape {
	case config.ShapeRectangle, config.ShapeCircle, config.ShapeHexagon, config.ShapeTriangle:
	default:
		return Volume{}, fmt.Errorf("cutout: unknown custom shape %q", c.Shape)
	}
	if c.Width <= 0 {
		return Volume{}, fmt.Errorf("cutout: custom cutout width must be positive, got %g", c.Width)
	}
	if c.Shape == config.ShapeRectangle && c.Height <= 0 {
		return Volume{}, fmt.Errorf("cutout: custom cutout height must be positive, got %g", c.Height)
	}

	depth := c.Depth
	if depth <= 0 {
		depth = f.Wall + penetration
	} else if depth < f.Wall {
		depth = f.Wall
	}

	center, euler, err := f.place(c.Face, c.OffsetX, c.OffsetY)
	if err != nil {
		return Volume{}, err
	}

	v := Volume{
		Label:    "custom_" + c.Shape,
		Shape:    c.Shape,
		Width:    c.Width,
		Height:   c.Height,
		Depth:    depth,
		Rotation: c.Rotation,
		Center:   center,
		Euler:    euler,
		Face:     c.Face,
	}
	if c.Shape == config.ShapeCircle {
		v.Diameter = c.Width
	}
	return v, nil
}
