// Package terrain implements the procedural terrain pipeline: gradient
// noise, an editable height field, a deterministic generator and a mesh
// builder producing GPU-ready buffers.
package terrain

import (
	gomath "math"

	"github.com/hollowpine/terravale/pkg/math"
)

// NoiseField produces continuous, reproducible 2D gradient noise in the
// range roughly [-1, 1]. Corner gradients are derived by hashing the
// integer lattice coordinate together with the seed, so two fields with the
// same seed agree and a gradient never changes once observed. Samples are
// memoized per exact coordinate pair.
type NoiseField struct {
	seed      int64
	gradients map[int64]math.Vec2
	samples   map[[2]float32]float32
}

// NewNoiseField creates a noise field with an explicit seed.
func NewNoiseField(seed int64) *NoiseField {
	return &NoiseField{
		seed:      seed,
		gradients: make(map[int64]math.Vec2),
		samples:   make(map[[2]float32]float32),
	}
}

// packCorner packs a lattice coordinate into a single map key.
func packCorner(ix, iy int32) int64 {
	return int64(ix)<<32 | int64(uint32(iy))
}

// avalanche is a SplitMix64-style finalizer, stable across runs for the
// same input.
func avalanche(v uint64) uint64 {
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

// gradient returns the unit gradient for a lattice corner, generating and
// caching it on first use.
func (n *NoiseField) gradient(ix, iy int32) math.Vec2 {
	key := packCorner(ix, iy)
	if g, ok := n.gradients[key]; ok {
		return g
	}

	h := avalanche(uint64(key) ^ uint64(n.seed)*0x9E3779B97F4A7C15)
	angle := float64(h) / float64(^uint64(0)) * 2 * gomath.Pi
	g := math.Vec2{
		X: float32(gomath.Cos(angle)),
		Y: float32(gomath.Sin(angle)),
	}
	n.gradients[key] = g
	return g
}

// fade is the smootherstep interpolant 6t^5 - 15t^4 + 10t^3.
func fade(t float32) float32 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Sample returns the noise value at (x, y). Repeat calls with identical
// coordinates return the identical value.
func (n *NoiseField) Sample(x, y float32) float32 {
	key := [2]float32{x, y}
	if v, ok := n.samples[key]; ok {
		return v
	}

	x0 := int32(gomath.Floor(float64(x)))
	y0 := int32(gomath.Floor(float64(y)))
	fx := x - float32(x0)
	fy := y - float32(y0)

	// Dot product of each corner gradient with the corner-to-point offset.
	d00 := n.gradient(x0, y0).Dot(math.Vec2{X: fx, Y: fy})
	d10 := n.gradient(x0+1, y0).Dot(math.Vec2{X: fx - 1, Y: fy})
	d01 := n.gradient(x0, y0+1).Dot(math.Vec2{X: fx, Y: fy - 1})
	d11 := n.gradient(x0+1, y0+1).Dot(math.Vec2{X: fx - 1, Y: fy - 1})

	u := fade(fx)
	v := fade(fy)
	out := lerp(lerp(d00, d10, u), lerp(d01, d11, u), v)

	n.samples[key] = out
	return out
}

// Fractal sums octaves of Sample at doubling frequency and halving
// amplitude. This is the entry point used by the generator.
func (n *NoiseField) Fractal(x, y, baseFrequency, baseAmplitude float32, octaves int) float32 {
	freq := baseFrequency
	amp := baseAmplitude
	var sum float32
	for i := 0; i < octaves; i++ {
		sum += n.Sample(x*freq, y*freq) * amp
		freq *= 2
		amp *= 0.5
	}
	return sum
}
