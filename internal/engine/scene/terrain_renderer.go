package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/hollowpine/terravale/internal/engine/scene/shaders"
	"github.com/hollowpine/terravale/internal/engine/shader"
	"github.com/hollowpine/terravale/internal/logger"
	"github.com/hollowpine/terravale/internal/terrain"
	"github.com/hollowpine/terravale/pkg/math"
)

// TerrainRenderer owns the GPU buffers for one terrain mesh and draws it.
type TerrainRenderer struct {
	program        uint32
	locViewProj    int32
	locHeightRange int32

	vao uint32
	vbo uint32
	ebo uint32

	indexCount  int32
	heightRange [2]float32
}

// NewTerrainRenderer compiles the terrain shader. Call after Setup.
func NewTerrainRenderer() (*TerrainRenderer, error) {
	program, err := shader.CompileProgram(shaders.TerrainVertexShader, shaders.TerrainFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}

	return &TerrainRenderer{
		program:        program,
		locViewProj:    shader.GetUniform(program, "uViewProj"),
		locHeightRange: shader.GetUniform(program, "uHeightRange"),
	}, nil
}

// Upload replaces the GPU-side mesh with m. The vertex buffer is the
// interleaved position/normal/uv layout produced by terrain.BuildMesh.
func (tr *TerrainRenderer) Upload(m *terrain.Mesh) {
	tr.releaseBuffers()

	tr.indexCount = int32(m.IndexCount)
	tr.heightRange = [2]float32{m.Bounds.Min.Y, m.Bounds.Max.Y}
	if m.VertexCount == 0 || m.IndexCount == 0 {
		logger.Warn("terrain mesh has no drawable geometry",
			zap.Int("vertices", m.VertexCount),
			zap.Int("indices", m.IndexCount),
		)
		return
	}

	gl.GenVertexArrays(1, &tr.vao)
	gl.BindVertexArray(tr.vao)

	gl.GenBuffers(1, &tr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	stride := int32(terrain.VertexStride * 4)
	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	// Texture coordinates
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &tr.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, tr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	logger.Info("terrain mesh uploaded",
		zap.Int("vertices", m.VertexCount),
		zap.Int("indices", m.IndexCount),
	)
}

// Render draws the uploaded mesh with the given view-projection matrix.
func (tr *TerrainRenderer) Render(viewProj math.Mat4) {
	if tr.vao == 0 || tr.indexCount == 0 {
		return
	}

	gl.UseProgram(tr.program)
	gl.UniformMatrix4fv(tr.locViewProj, 1, false, &viewProj[0])
	gl.Uniform2f(tr.locHeightRange, tr.heightRange[0], tr.heightRange[1])

	gl.BindVertexArray(tr.vao)
	gl.DrawElements(gl.TRIANGLES, tr.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Destroy releases all GPU resources.
func (tr *TerrainRenderer) Destroy() {
	tr.releaseBuffers()
	if tr.program != 0 {
		gl.DeleteProgram(tr.program)
		tr.program = 0
	}
}

func (tr *TerrainRenderer) releaseBuffers() {
	if tr.vao != 0 {
		gl.DeleteVertexArrays(1, &tr.vao)
		tr.vao = 0
	}
	if tr.vbo != 0 {
		gl.DeleteBuffers(1, &tr.vbo)
		tr.vbo = 0
	}
	if tr.ebo != 0 {
		gl.DeleteBuffers(1, &tr.ebo)
		tr.ebo = 0
	}
}
