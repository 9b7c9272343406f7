// Package spatial provides the core value types for the enclosure pipeline:
// 3D points, axis-aligned boxes, and the bounding-box aggregation that turns
// a list of placed components into the combined extent driving all sizing.
package spatial

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrEmptyInput is returned when aggregation is asked to combine an empty
// component list. It aborts the run before any geometry work.
var ErrEmptyInput = errors.New("spatial: no components provided")

// Point3 is an immutable 3D point in millimeters.
type Point3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add returns p+q.
func (p Point3) Add(q Point3) Point3 {
	return Point3{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Box3 is an axis-aligned box described by its min/max corners.
// Min must be component-wise less than Max; degenerate boxes are forbidden.
type Box3 struct {
	Min Point3
	Max Point3
}

// NewBox3 builds a Box3 and rejects degenerate extents.
func NewBox3(min, max Point3) (Box3, error) {
	if min.X >= max.X || min.Y >= max.Y || min.Z >= max.Z {
		return Box3{}, fmt.Errorf("spatial: degenerate box min=%+v max=%+v", min, max)
	}
	return Box3{Min: min, Max: max}, nil
}

// Size returns the extent of the box along each axis.
func (b Box3) Size() Point3 {
	return Point3{X: b.Max.X - b.Min.X, Y: b.Max.Y - b.Min.Y, Z: b.Max.Z - b.Min.Z}
}

// Center returns the geometric center of the box.
func (b Box3) Center() Point3 {
	return Point3{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
		Z: (b.Min.Z + b.Max.Z) / 2,
	}
}

// Union returns the smallest box containing both b and o.
func (b Box3) Union(o Box3) Box3 {
	return Box3{
		Min: Point3{
			X: math.Min(b.Min.X, o.Min.X),
			Y: math.Min(b.Min.Y, o.Min.Y),
			Z: math.Min(b.Min.Z, o.Min.Z),
		},
		Max: Point3{
			X: math.Max(b.Max.X, o.Max.X),
			Y: math.Max(b.Max.Y, o.Max.Y),
			Z: math.Max(b.Max.Z, o.Max.Z),
		},
	}
}

// Placement describes one component's local dimensions and world pose.
// It is the minimal input the aggregator needs; richer component records
// (PCB flags, standoff offsets) live in the config package.
type Placement struct {
	Position Point3
	Rotation Point3 // Euler angles in degrees, applied X then Y then Z
	Width    float64
	Depth    float64
	Height   float64
	GroundZ  float64 // floor clearance; when > 0 it replaces Position.Z as the Z anchor
}

// EffectiveDims returns the axis-aligned extents of a w x d x h box after
// rotating it by the given Euler angles (degrees, fixed X-then-Y-then-Z
// order). All 8 corners are rotated and projected per axis, so the result
// is conservative: never smaller than the true rotated box.
func EffectiveDims(w, d, h, rx, ry, rz float64) (ew, ed, eh float64) {
	if rx == 0 && ry == 0 && rz == 0 {
		return w, d, h
	}

	rotX := r3.NewRotation(rx*math.Pi/180, r3.Vec{X: 1})
	rotY := r3.NewRotation(ry*math.Pi/180, r3.Vec{Y: 1})
	rotZ := r3.NewRotation(rz*math.Pi/180, r3.Vec{Z: 1})

	var maxX, maxY, maxZ float64
	for _, sx := range []float64{-1, 1} {
		for _, sy := range []float64{-1, 1} {
			for _, sz := range []float64{-1, 1} {
				c := r3.Vec{X: sx * w / 2, Y: sy * d / 2, Z: sz * h / 2}
				c = rotZ.Rotate(rotY.Rotate(rotX.Rotate(c)))
				maxX = math.Max(maxX, math.Abs(c.X))
				maxY = math.Max(maxY, math.Abs(c.Y))
				maxZ = math.Max(maxZ, math.Abs(c.Z))
			}
		}
	}
	return 2 * maxX, 2 * maxY, 2 * maxZ
}

// ComponentBox computes the world-space AABB of a single placement.
// Unrotated components are position +/- half extents in XY with Z anchored
// at the ground clearance (or the raw Z position when no clearance is set).
// Rotated components use the enlarged effective box from EffectiveDims.
func ComponentBox(p Placement) Box3 {
	ew, ed, eh := EffectiveDims(p.Width, p.Depth, p.Height, p.Rotation.X, p.Rotation.Y, p.Rotation.Z)

	z0 := p.Position.Z
	if p.GroundZ > 0 {
		z0 = p.GroundZ
	}

	return Box3{
		Min: Point3{X: p.Position.X - ew/2, Y: p.Position.Y - ed/2, Z: z0},
		Max: Point3{X: p.Position.X + ew/2, Y: p.Position.Y + ed/2, Z: z0 + eh},
	}
}

// Aggregate reduces all placements to a single combined box via
// component-wise min/max. It fails with ErrEmptyInput for an empty list.
func Aggregate(ps []Placement) (Box3, error) {
	if len(ps) == 0 {
		return Box3{}, ErrEmptyInput
	}
	combined := ComponentBox(ps[0])
	for _, p := range ps[1:] {
		combined = combined.Union(ComponentBox(p))
	}
	return combined, nil
}
