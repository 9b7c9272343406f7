// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library.
package sdfx

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/shellforge/pkg/footprint"
	"github.com/chazu/shellforge/pkg/kernel"
)

// Compile-time interface check.
var _ kernel.Kernel = (*Kernel)(nil)

// defaultMeshCells controls marching cubes tessellation resolution.
const defaultMeshCells = 200

// solid wraps an sdf.SDF3 to implement kernel.Solid. Solids born as
// extrusions remember their outline so edge treatments can rebuild them
// from a corner-treated outline; booleans and rotations discard it.
type solid struct {
	s       sdf.SDF3
	outline footprint.Polygon // nil unless the solid is a pure extrusion
	height  float64
	zbase   float64
}

// BoundingBox returns the axis-aligned bounding box.
func (s *solid) BoundingBox() (min, max [3]float64) {
	bb := s.s.BoundingBox()
	min = [3]float64{bb.Min.X, bb.Min.Y, bb.Min.Z}
	max = [3]float64{bb.Max.X, bb.Max.Y, bb.Max.Z}
	return min, max
}

// Kernel implements kernel.Kernel using sdfx.
type Kernel struct{}

// New returns a new sdfx-backed kernel.
func New() *Kernel {
	return &Kernel{}
}

// unwrap extracts the underlying sdf.SDF3 from a kernel.Solid.
func unwrap(s kernel.Solid) sdf.SDF3 {
	return s.(*solid).s
}

// Extrude sweeps the outline from z=0 to the given height. sdf.Extrude3D
// extrudes symmetrically about z=0, so the result is lifted by half the
// height to put the base on the floor plane.
func (k *Kernel) Extrude(outline footprint.Polygon, height float64) (kernel.Solid, error) {
	if err := outline.Validate(); err != nil {
		return nil, err
	}
	if height <= 0 {
		return nil, fmt.Errorf("sdfx: extrusion height must be positive, got %g", height)
	}
	pts := make([]v2.Vec, len(outline))
	for i, p := range outline {
		pts[i] = v2.Vec{X: p.X, Y: p.Y}
	}
	s2, err := sdf.Polygon2D(pts)
	if err != nil {
		return nil, fmt.Errorf("sdfx: polygon: %w", err)
	}
	s3 := sdf.Extrude3D(s2, height)
	s3 = sdf.Transform3D(s3, sdf.Translate3d(v3.Vec{Z: height / 2}))
	return &solid{s: s3, outline: outline, height: height}, nil
}

// Cylinder builds a z-aligned cylinder with its base at z=0.
func (k *Kernel) Cylinder(height, radius float64) (kernel.Solid, error) {
	s, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		return nil, fmt.Errorf("sdfx: cylinder: %w", err)
	}
	s = sdf.Transform3D(s, sdf.Translate3d(v3.Vec{Z: height / 2}))
	return &solid{s: s}, nil
}

// Union returns the union of two solids.
func (k *Kernel) Union(a, b kernel.Solid) kernel.Solid {
	return &solid{s: sdf.Union3D(unwrap(a), unwrap(b))}
}

// Difference returns the difference a - b.
func (k *Kernel) Difference(a, b kernel.Solid) kernel.Solid {
	return &solid{s: sdf.Difference3D(unwrap(a), unwrap(b))}
}

// Translate moves a solid by (x, y, z). Extrusion outlines survive the
// move so a translated extrusion can still take an edge treatment.
func (k *Kernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	src := s.(*solid)
	m := sdf.Translate3d(v3.Vec{X: x, Y: y, Z: z})
	out := &solid{s: sdf.Transform3D(src.s, m)}
	if src.outline != nil {
		out.outline = src.outline.Translate(x, y)
		out.height = src.height
		out.zbase = src.zbase + z
	}
	return out
}

// Rotate rotates a solid by Euler angles (degrees) around X, Y, Z axes.
func (k *Kernel) Rotate(s kernel.Solid, x, y, z float64) kernel.Solid {
	xRad := x * math.Pi / 180.0
	yRad := y * math.Pi / 180.0
	zRad := z * math.Pi / 180.0

	m := sdf.RotateZ(zRad).Mul(sdf.RotateY(yRad)).Mul(sdf.RotateX(xRad))
	return &solid{s: sdf.Transform3D(unwrap(s), m)}
}

// Fillet rounds the vertical edges of an extrusion by rebuilding it from a
// corner-rounded outline. Solids that are not pure extrusions cannot be
// treated and return a recoverable OpError.
func (k *Kernel) Fillet(s kernel.Solid, radius float64) (kernel.Solid, error) {
	return k.retreat(s, "fillet", func(p footprint.Polygon) footprint.Polygon {
		return footprint.RoundCorners(p, radius)
	})
}

// Chamfer cuts the vertical edges of an extrusion by rebuilding it from a
// corner-chamfered outline.
func (k *Kernel) Chamfer(s kernel.Solid, size float64) (kernel.Solid, error) {
	return k.retreat(s, "chamfer", func(p footprint.Polygon) footprint.Polygon {
		return footprint.ChamferCorners(p, size)
	})
}

func (k *Kernel) retreat(s kernel.Solid, op string, treat func(footprint.Polygon) footprint.Polygon) (kernel.Solid, error) {
	src := s.(*solid)
	if src.outline == nil {
		return nil, &kernel.OpError{Op: op, Err: fmt.Errorf("solid is not a pure extrusion")}
	}
	out, err := k.Extrude(treat(src.outline), src.height)
	if err != nil {
		return nil, &kernel.OpError{Op: op, Err: err}
	}
	if src.zbase != 0 {
		out = k.Translate(out, 0, 0, src.zbase)
	}
	return out, nil
}

// ToMesh converts a solid to a triangle mesh using marching cubes.
func (k *Kernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	sdf3 := unwrap(s)

	renderer := render.NewMarchingCubesUniform(defaultMeshCells)
	triangles := render.ToTriangles(sdf3, renderer)

	numTri := len(triangles)
	numVerts := numTri * 3

	vertices := make([]float32, 0, numVerts*3)
	normals := make([]float32, 0, numVerts*3)
	indices := make([]uint32, 0, numVerts)

	for i, tri := range triangles {
		n := tri.Normal()
		nx := float32(n.X)
		ny := float32(n.Y)
		nz := float32(n.Z)

		for j := 0; j < 3; j++ {
			v := tri[j]
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, nx, ny, nz)
			indices = append(indices, uint32(i*3+j))
		}
	}

	return &kernel.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
	}, nil
}
