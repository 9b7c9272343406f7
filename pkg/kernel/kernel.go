// Package kernel defines the abstract solid-modeling interface the
// enclosure composer drives. Implementations (sdfx, kerneltest) provide
// extrusion, booleans, transforms, and mesh output behind this interface,
// so backends can be swapped without touching the geometry pipeline.
package kernel

import (
	"fmt"

	"github.com/chazu/shellforge/pkg/footprint"
)

// Solid is an opaque handle to a kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract solid-modeling interface.
type Kernel interface {
	// Extrude sweeps a closed outline from z=0 up to the given height.
	Extrude(outline footprint.Polygon, height float64) (Solid, error)
	// Cylinder builds a z-aligned cylinder with its base at z=0.
	Cylinder(height, radius float64) (Solid, error)

	// Boolean operations
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid

	// Transforms
	Translate(s Solid, x, y, z float64) Solid
	Rotate(s Solid, x, y, z float64) Solid // Euler angles in degrees, X then Y then Z

	// Edge treatments. These are cosmetic and may fail on solids the
	// backend cannot treat; callers skip the treatment on error.
	Fillet(s Solid, radius float64) (Solid, error)
	Chamfer(s Solid, size float64) (Solid, error)

	// Mesh output
	ToMesh(s Solid) (*Mesh, error)
}

// OpError reports a kernel operation that could not be performed on the
// given solid. The composer treats these as recoverable: the operation is
// skipped with a diagnostic and composition continues.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("kernel: %s failed: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}
