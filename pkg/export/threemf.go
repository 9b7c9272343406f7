package export

import (
	"fmt"

	"github.com/hpinc/go3mf"

	"github.com/chazu/shellforge/pkg/kernel"
)

// Write3MF serializes a mesh as a single-object 3MF package. 3MF output is
// best-effort: callers treat a failure here as a diagnostic, never as a
// job failure, since the STL alongside it is authoritative.
func Write3MF(path string, m *kernel.Mesh) error {
	if m.IsEmpty() {
		return fmt.Errorf("export: refusing to write empty mesh")
	}

	mesh := new(go3mf.Mesh)
	for i := 0; i < m.VertexCount(); i++ {
		mesh.Vertices.Vertex = append(mesh.Vertices.Vertex, go3mf.Point3D{
			m.Vertices[i*3], m.Vertices[i*3+1], m.Vertices[i*3+2],
		})
	}
	for t := 0; t < m.TriangleCount(); t++ {
		mesh.Triangles.Triangle = append(mesh.Triangles.Triangle, go3mf.Triangle{
			V1: m.Indices[t*3], V2: m.Indices[t*3+1], V3: m.Indices[t*3+2],
		})
	}

	model := new(go3mf.Model)
	model.Resources.Objects = []*go3mf.Object{{ID: 1, Mesh: mesh}}
	model.Build.Items = []*go3mf.Item{{ObjectID: 1}}

	w, err := go3mf.CreateWriter(path)
	if err != nil {
		return err
	}
	if err := w.Encode(model); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
