package terrain

import (
	"github.com/hollowpine/terravale/pkg/math"
)

// VertexStride is the number of floats per vertex in the interleaved
// buffer: position (3), normal (3), texture coordinate (2).
const VertexStride = 8

// Mesh holds GPU-ready terrain buffers: one interleaved vertex buffer and a
// 32-bit triangle index buffer.
type Mesh struct {
	Vertices    []float32
	Indices     []uint32
	VertexCount int
	IndexCount  int
	Bounds      Bounds
}

// Bounds is the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// BuildMesh converts a height field into a triangulated grid mesh centered
// on the origin in the horizontal plane, with smoothed per-vertex normals.
// It is a pure function of its input: identical heights yield identical
// buffers. Fields too small to form a quad produce vertices but no indices.
func BuildMesh(hf *HeightField) *Mesh {
	w := hf.Width()
	h := hf.Height()
	vertexCount := w * h

	positions := make([]math.Vec3, 0, vertexCount)
	offsetX := float32(w) / 2
	offsetZ := float32(h) / 2

	bounds := Bounds{
		Min: math.Vec3{X: 1e10, Y: 1e10, Z: 1e10},
		Max: math.Vec3{X: -1e10, Y: -1e10, Z: -1e10},
	}

	// One vertex per sample, one world unit per grid cell.
	for z := 0; z < h; z++ {
		for x := 0; x < w; x++ {
			p := math.Vec3{
				X: float32(x) - offsetX,
				Y: hf.Get(x, z),
				Z: float32(z) - offsetZ,
			}
			positions = append(positions, p)
			bounds = extend(bounds, p)
		}
	}
	if vertexCount == 0 {
		bounds = Bounds{}
	}

	// Two triangles per interior quad: (TL, BL, TR) then (TR, BL, BR).
	// The winding is consistent across the grid; flipping it would invert
	// backface culling for the whole terrain.
	indexCount := 0
	if w >= 2 && h >= 2 {
		indexCount = 6 * (w - 1) * (h - 1)
	}
	indices := make([]uint32, 0, indexCount)
	for z := 0; z+1 < h; z++ {
		for x := 0; x+1 < w; x++ {
			topLeft := uint32(z*w + x)
			topRight := topLeft + 1
			bottomLeft := uint32((z+1)*w + x)
			bottomRight := bottomLeft + 1
			indices = append(indices,
				topLeft, bottomLeft, topRight,
				topRight, bottomLeft, bottomRight,
			)
		}
	}

	// Accumulate unnormalized face normals per vertex. Skipping the
	// per-face normalization area-weights larger triangles.
	normals := make([]math.Vec3, vertexCount)
	for i := 0; i+2 < len(indices); i += 3 {
		i0 := indices[i]
		i1 := indices[i+1]
		i2 := indices[i+2]
		e1 := positions[i1].Sub(positions[i0])
		e2 := positions[i2].Sub(positions[i0])
		face := e1.Cross(e2)
		normals[i0] = normals[i0].Add(face)
		normals[i1] = normals[i1].Add(face)
		normals[i2] = normals[i2].Add(face)
	}

	vertices := make([]float32, 0, vertexCount*VertexStride)
	for i, p := range positions {
		n := normalizeOrUp(normals[i])
		x := i % max(w, 1)
		z := i / max(w, 1)
		u := float32(x) / float32(w)
		v := float32(z) / float32(h)
		vertices = append(vertices,
			p.X, p.Y, p.Z,
			n.X, n.Y, n.Z,
			u, v,
		)
	}

	return &Mesh{
		Vertices:    vertices,
		Indices:     indices,
		VertexCount: vertexCount,
		IndexCount:  len(indices),
		Bounds:      bounds,
	}
}

// normalizeOrUp normalizes an accumulated normal, falling back to straight
// up for degenerate (zero-length) accumulations so no NaN reaches the GPU.
func normalizeOrUp(v math.Vec3) math.Vec3 {
	if v.Length() < 1e-6 {
		return math.Vec3{X: 0, Y: 1, Z: 0}
	}
	return v.Normalize()
}

func extend(b Bounds, p math.Vec3) Bounds {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Z < b.Min.Z {
		b.Min.Z = p.Z
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	if p.Z > b.Max.Z {
		b.Max.Z = p.Z
	}
	return b
}
