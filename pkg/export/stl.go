// Package export serializes composed parts to printable mesh files. STL is
// the primary format; 3MF is attempted alongside it and allowed to fail.
// Outputs are namespaced per job so concurrent generations never collide.
package export

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/chazu/shellforge/pkg/kernel"
)

// WriteSTL serializes a mesh in binary STL form: an 80-byte header, a
// little-endian triangle count, then 50 bytes per triangle.
func WriteSTL(w io.Writer, m *kernel.Mesh) error {
	if m.IsEmpty() {
		return fmt.Errorf("export: refusing to write empty mesh")
	}

	var header [80]byte
	copy(header[:], "shellforge binary STL")
	if _, err := w.Write(header[:]); err != nil {
		return err
	}

	triCount := uint32(m.TriangleCount())
	if err := binary.Write(w, binary.LittleEndian, triCount); err != nil {
		return err
	}

	var buf [50]byte
	for t := 0; t < int(triCount); t++ {
		i0, i1, i2 := m.Indices[t*3], m.Indices[t*3+1], m.Indices[t*3+2]

		// Face normal from the first vertex of the triangle.
		off := 0
		for _, c := range []float32{m.Normals[i0*3], m.Normals[i0*3+1], m.Normals[i0*3+2]} {
			binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(c))
			off += 4
		}
		for _, idx := range []uint32{i0, i1, i2} {
			for j := 0; j < 3; j++ {
				binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(m.Vertices[idx*3+uint32(j)]))
				off += 4
			}
		}
		// Attribute byte count, always zero.
		buf[48], buf[49] = 0, 0

		if _, err := w.Write(buf[:]); err != nil {
			return err
		}
	}
	return nil
}

// WriteSTLFile writes the mesh to the named file.
func WriteSTLFile(path string, m *kernel.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := WriteSTL(bw, m); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return f.Close()
}
