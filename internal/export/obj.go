// Package export writes generated terrain to inspectable files: Wavefront
// OBJ for the mesh and grayscale PNG for the raw height field.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hollowpine/terravale/internal/terrain"
)

// WriteOBJ writes the mesh as Wavefront OBJ: one v/vn/vt triple per vertex
// followed by triangle faces with 1-based v/vt/vn references.
func WriteOBJ(w io.Writer, m *terrain.Mesh) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# terravale terrain mesh: %d vertices, %d triangles\n",
		m.VertexCount, m.IndexCount/3)

	for i := 0; i < m.VertexCount; i++ {
		base := i * terrain.VertexStride
		fmt.Fprintf(bw, "v %g %g %g\n",
			m.Vertices[base], m.Vertices[base+1], m.Vertices[base+2])
	}
	for i := 0; i < m.VertexCount; i++ {
		base := i * terrain.VertexStride
		fmt.Fprintf(bw, "vn %g %g %g\n",
			m.Vertices[base+3], m.Vertices[base+4], m.Vertices[base+5])
	}
	for i := 0; i < m.VertexCount; i++ {
		base := i * terrain.VertexStride
		fmt.Fprintf(bw, "vt %g %g\n",
			m.Vertices[base+6], m.Vertices[base+7])
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := m.Indices[i] + 1
		b := m.Indices[i+1] + 1
		c := m.Indices[i+2] + 1
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}

	return bw.Flush()
}

// SaveOBJ writes the mesh to a file, creating parent directories as needed.
func SaveOBJ(path string, m *terrain.Mesh) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := WriteOBJ(f, m); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
