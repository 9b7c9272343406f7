//go:build manifold

package manifold

import (
	"errors"
	"math"
	"testing"

	"github.com/chazu/shellforge/pkg/footprint"
	"github.com/chazu/shellforge/pkg/kernel"
)

func mustNew(t *testing.T) kernel.Kernel {
	t.Helper()
	k, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return k
}

func TestExtrude(t *testing.T) {
	k := mustNew(t)
	s, err := k.Extrude(footprint.Rect(10, 20), 30)
	if err != nil {
		t.Fatalf("Extrude() error = %v", err)
	}
	min, max := s.BoundingBox()

	// Outline is centered in XY; extrusion grows from z=0.
	wantMin := [3]float64{-5, -10, 0}
	wantMax := [3]float64{5, 10, 30}

	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-wantMin[i]) > 1e-6 {
			t.Errorf("Extrude min[%d] = %f, want %f", i, min[i], wantMin[i])
		}
		if math.Abs(max[i]-wantMax[i]) > 1e-6 {
			t.Errorf("Extrude max[%d] = %f, want %f", i, max[i], wantMax[i])
		}
	}
}

func TestExtrudeBadInput(t *testing.T) {
	k := mustNew(t)
	if _, err := k.Extrude(footprint.Rect(10, 20), 0); err == nil {
		t.Error("expected error for zero height")
	}
	if _, err := k.Extrude(footprint.Polygon{}, 10); err == nil {
		t.Error("expected error for empty outline")
	}
}

func TestCylinder(t *testing.T) {
	k := mustNew(t)
	s, err := k.Cylinder(20, 5)
	if err != nil {
		t.Fatalf("Cylinder() error = %v", err)
	}
	min, max := s.BoundingBox()

	// Base sits at z=0.
	if math.Abs(min[2]) > 1e-6 {
		t.Errorf("Cylinder min Z = %f, want 0", min[2])
	}
	if math.Abs(max[2]-20) > 1e-6 {
		t.Errorf("Cylinder max Z = %f, want 20", max[2])
	}

	// X/Y bounds approximate the radius (polygon inscribed in circle).
	for i := 0; i < 2; i++ {
		if min[i] > -4.5 {
			t.Errorf("Cylinder min[%d] = %f, want <= -4.5", i, min[i])
		}
		if max[i] < 4.5 {
			t.Errorf("Cylinder max[%d] = %f, want >= 4.5", i, max[i])
		}
	}
}

func TestDifference(t *testing.T) {
	k := mustNew(t)
	box, err := k.Extrude(footprint.Rect(10, 10), 10)
	if err != nil {
		t.Fatalf("Extrude() error = %v", err)
	}
	hole, err := k.Cylinder(20, 3)
	if err != nil {
		t.Fatalf("Cylinder() error = %v", err)
	}
	hole = k.Translate(hole, 0, 0, -5)

	result := k.Difference(box, hole)
	if result == nil {
		t.Fatal("Difference() returned nil")
	}

	mesh, err := k.ToMesh(result)
	if err != nil {
		t.Fatalf("ToMesh() error = %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("difference mesh is empty")
	}
}

func TestTranslateRotate(t *testing.T) {
	k := mustNew(t)
	s, err := k.Extrude(footprint.Rect(10, 20), 5)
	if err != nil {
		t.Fatalf("Extrude() error = %v", err)
	}

	moved := k.Translate(s, 1, 2, 3)
	min, _ := moved.BoundingBox()
	if math.Abs(min[0]+4) > 1e-6 || math.Abs(min[1]+8) > 1e-6 || math.Abs(min[2]-3) > 1e-6 {
		t.Errorf("Translate min = %v, want (-4, -8, 3)", min)
	}

	// 90 degrees about Z swaps width and depth.
	rotated := k.Rotate(s, 0, 0, 90)
	rmin, rmax := rotated.BoundingBox()
	if math.Abs(rmax[0]-10) > 1e-6 || math.Abs(rmax[1]-5) > 1e-6 {
		t.Errorf("Rotate bounds = %v..%v, want x to 10, y to 5", rmin, rmax)
	}
}

func TestEdgeTreatmentsUnsupported(t *testing.T) {
	k := mustNew(t)
	s, err := k.Extrude(footprint.Rect(10, 10), 5)
	if err != nil {
		t.Fatalf("Extrude() error = %v", err)
	}

	var opErr *kernel.OpError
	if _, err := k.Fillet(s, 2); !errors.As(err, &opErr) {
		t.Errorf("Fillet error = %v, want OpError", err)
	}
	if _, err := k.Chamfer(s, 1); !errors.As(err, &opErr) {
		t.Errorf("Chamfer error = %v, want OpError", err)
	}
}

func TestToMeshUnion(t *testing.T) {
	k := mustNew(t)
	a, _ := k.Extrude(footprint.Rect(10, 10), 10)
	b, _ := k.Cylinder(15, 4)
	u := k.Union(a, b)

	mesh, err := k.ToMesh(u)
	if err != nil {
		t.Fatalf("ToMesh() error = %v", err)
	}
	if mesh.VertexCount() == 0 || mesh.TriangleCount() == 0 {
		t.Fatal("union mesh has no geometry")
	}
	if len(mesh.Normals) != len(mesh.Vertices) {
		t.Errorf("normals length = %d, want %d", len(mesh.Normals), len(mesh.Vertices))
	}
}
