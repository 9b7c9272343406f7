// Package kerneltest provides a recording fake kernel for pipeline tests.
// Solids track bounding boxes analytically, every call is appended to an
// operation log, and individual operations can be made to fail on demand.
package kerneltest

import (
	"fmt"
	"math"

	"github.com/chazu/shellforge/pkg/footprint"
	"github.com/chazu/shellforge/pkg/kernel"
)

// Compile-time interface check.
var _ kernel.Kernel = (*Kernel)(nil)

// Op is one recorded kernel call.
type Op struct {
	Name string
	Args []float64
}

// Solid is the fake's bounding-box-only solid.
type Solid struct {
	Min [3]float64
	Max [3]float64
}

// BoundingBox returns the tracked box.
func (s *Solid) BoundingBox() (min, max [3]float64) {
	return s.Min, s.Max
}

// Kernel records every operation and returns box-tracked stub solids.
// Set FailOps entries to force an error from a named operation.
type Kernel struct {
	Ops     []Op
	FailOps map[string]error
}

// New returns an empty recording kernel.
func New() *Kernel {
	return &Kernel{FailOps: map[string]error{}}
}

// Count returns how many operations with the given name were recorded.
func (k *Kernel) Count(name string) int {
	n := 0
	for _, op := range k.Ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

func (k *Kernel) record(name string, args ...float64) {
	k.Ops = append(k.Ops, Op{Name: name, Args: args})
}

func (k *Kernel) fail(name string) error {
	if k.FailOps == nil {
		return nil
	}
	return k.FailOps[name]
}

// Extrude records the call and returns a solid spanning the outline's
// bounds from z=0 to height.
func (k *Kernel) Extrude(outline footprint.Polygon, height float64) (kernel.Solid, error) {
	k.record("extrude", height)
	if err := k.fail("extrude"); err != nil {
		return nil, err
	}
	if err := outline.Validate(); err != nil {
		return nil, err
	}
	if height <= 0 {
		return nil, fmt.Errorf("kerneltest: extrusion height must be positive, got %g", height)
	}
	min, max := outline.Bounds()
	return &Solid{
		Min: [3]float64{min.X, min.Y, 0},
		Max: [3]float64{max.X, max.Y, height},
	}, nil
}

// Cylinder records the call and returns the cylinder's bounding box.
func (k *Kernel) Cylinder(height, radius float64) (kernel.Solid, error) {
	k.record("cylinder", height, radius)
	if err := k.fail("cylinder"); err != nil {
		return nil, err
	}
	if height <= 0 || radius <= 0 {
		return nil, fmt.Errorf("kerneltest: bad cylinder %gx%g", height, radius)
	}
	return &Solid{
		Min: [3]float64{-radius, -radius, 0},
		Max: [3]float64{radius, radius, height},
	}, nil
}

// Union returns the combined bounding box.
func (k *Kernel) Union(a, b kernel.Solid) kernel.Solid {
	k.record("union")
	amin, amax := a.BoundingBox()
	bmin, bmax := b.BoundingBox()
	var s Solid
	for i := 0; i < 3; i++ {
		s.Min[i] = math.Min(amin[i], bmin[i])
		s.Max[i] = math.Max(amax[i], bmax[i])
	}
	return &s
}

// Difference keeps a's bounding box: subtraction never grows a solid.
func (k *Kernel) Difference(a, b kernel.Solid) kernel.Solid {
	k.record("difference")
	min, max := a.BoundingBox()
	return &Solid{Min: min, Max: max}
}

// Translate shifts the bounding box.
func (k *Kernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	k.record("translate", x, y, z)
	min, max := s.BoundingBox()
	d := [3]float64{x, y, z}
	var out Solid
	for i := 0; i < 3; i++ {
		out.Min[i] = min[i] + d[i]
		out.Max[i] = max[i] + d[i]
	}
	return &out
}

// Rotate records the call; the box is kept as-is, which is accurate for
// the axis-aligned 90-degree rotations the pipeline uses on symmetric
// profiles and close enough for everything tests assert on.
func (k *Kernel) Rotate(s kernel.Solid, x, y, z float64) kernel.Solid {
	k.record("rotate", x, y, z)
	min, max := s.BoundingBox()
	return &Solid{Min: min, Max: max}
}

// Fillet records the call and passes the solid through unchanged.
func (k *Kernel) Fillet(s kernel.Solid, radius float64) (kernel.Solid, error) {
	k.record("fillet", radius)
	if err := k.fail("fillet"); err != nil {
		return nil, err
	}
	min, max := s.BoundingBox()
	return &Solid{Min: min, Max: max}, nil
}

// Chamfer records the call and passes the solid through unchanged.
func (k *Kernel) Chamfer(s kernel.Solid, size float64) (kernel.Solid, error) {
	k.record("chamfer", size)
	if err := k.fail("chamfer"); err != nil {
		return nil, err
	}
	min, max := s.BoundingBox()
	return &Solid{Min: min, Max: max}, nil
}

// ToMesh returns a single placeholder triangle tagged with nothing.
func (k *Kernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	k.record("tomesh")
	if err := k.fail("tomesh"); err != nil {
		return nil, err
	}
	min, max := s.BoundingBox()
	return &kernel.Mesh{
		Vertices: []float32{
			float32(min[0]), float32(min[1]), float32(min[2]),
			float32(max[0]), float32(min[1]), float32(min[2]),
			float32(max[0]), float32(max[1]), float32(max[2]),
		},
		Normals: []float32{0, 0, 1, 0, 0, 1, 0, 0, 1},
		Indices: []uint32{0, 1, 2},
	}, nil
}
