package export

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/hpinc/go3mf"
	"github.com/rs/zerolog"

	"github.com/chazu/shellforge/pkg/compose"
	"github.com/chazu/shellforge/pkg/config"
	"github.com/chazu/shellforge/pkg/kernel"
	"github.com/chazu/shellforge/pkg/kernel/kerneltest"
)

func quadMesh() *kernel.Mesh {
	return &kernel.Mesh{
		Vertices: []float32{
			0, 0, 0,
			10, 0, 0,
			10, 10, 0,
			0, 10, 0,
		},
		Normals: []float32{
			0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1,
		},
		Indices: []uint32{0, 1, 2, 2, 3, 0},
	}
}

func TestWriteSTL(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSTL(&buf, quadMesh()); err != nil {
		t.Fatalf("WriteSTL: %v", err)
	}
	data := buf.Bytes()
	if want := 80 + 4 + 2*50; len(data) != want {
		t.Fatalf("size = %d, want %d", len(data), want)
	}
	if got := binary.LittleEndian.Uint32(data[80:84]); got != 2 {
		t.Fatalf("triangle count = %d, want 2", got)
	}
	// First vertex of the first triangle is the origin.
	for i := 0; i < 3; i++ {
		off := 84 + 12 + i*4
		if got := binary.LittleEndian.Uint32(data[off : off+4]); got != 0 {
			t.Errorf("vertex coordinate %d = %#x, want 0", i, got)
		}
	}
}

func TestWriteSTLRejectsEmptyMesh(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSTL(&buf, &kernel.Mesh{}); err == nil {
		t.Fatal("empty mesh accepted")
	}
}

func TestJobWriteParts(t *testing.T) {
	dir := t.TempDir()
	k := kerneltest.New()
	c := compose.New(k, zerolog.Nop())
	res, err := c.Generate(&config.Request{
		Components: []config.Component{
			{Name: "pcb", Width: 28, Depth: 55, Height: 12},
		},
		PaddingX: 4, PaddingY: 4, PaddingZ: 5,
		LidStyle: config.LidScrews,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	job := NewJob(dir, "", zerolog.Nop())
	if job.ID == "" {
		t.Fatal("job id not generated")
	}
	artifacts, err := job.WriteParts(k, res)
	if err != nil {
		t.Fatalf("WriteParts: %v", err)
	}

	for _, part := range []string{config.PartBase, config.PartLid} {
		path, ok := artifacts[part]
		if !ok {
			t.Fatalf("artifact for %s missing: %v", part, artifacts)
		}
		if filepath.Dir(path) != job.Path() {
			t.Errorf("artifact %s outside job dir: %s", part, path)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat %s: %v", path, err)
		}
		if info.Size() <= 84 {
			t.Errorf("%s suspiciously small: %d bytes", path, info.Size())
		}
	}
}

func TestJobExplicitID(t *testing.T) {
	job := NewJob("/tmp/out", "run-7", zerolog.Nop())
	if job.ID != "run-7" {
		t.Errorf("id = %q", job.ID)
	}
	if job.Path() != filepath.Join("/tmp/out", "run-7") {
		t.Errorf("path = %q", job.Path())
	}
}

func TestWrite3MF(t *testing.T) {
	src := quadMesh()
	path := filepath.Join(t.TempDir(), "part.3mf")
	if err := Write3MF(path, src); err != nil {
		t.Fatalf("Write3MF: %v", err)
	}

	r, err := go3mf.OpenReader(path)
	if err != nil {
		t.Fatalf("open written package: %v", err)
	}
	defer r.Close()

	var model go3mf.Model
	if err := r.Decode(&model); err != nil {
		t.Fatalf("decode written package: %v", err)
	}
	if len(model.Resources.Objects) != 1 {
		t.Fatalf("objects = %d, want 1", len(model.Resources.Objects))
	}
	mesh := model.Resources.Objects[0].Mesh
	if mesh == nil {
		t.Fatal("decoded object has no mesh")
	}
	if got := len(mesh.Vertices.Vertex); got != src.VertexCount() {
		t.Errorf("vertices = %d, want %d", got, src.VertexCount())
	}
	if got := len(mesh.Triangles.Triangle); got != src.TriangleCount() {
		t.Fatalf("triangles = %d, want %d", got, src.TriangleCount())
	}
	for i, tri := range mesh.Triangles.Triangle {
		want := [3]uint32{src.Indices[i*3], src.Indices[i*3+1], src.Indices[i*3+2]}
		if tri.V1 != want[0] || tri.V2 != want[1] || tri.V3 != want[2] {
			t.Errorf("triangle %d = (%d, %d, %d), want %v", i, tri.V1, tri.V2, tri.V3, want)
		}
	}
}
