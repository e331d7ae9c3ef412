package terrain

// PadKind selects the stamp shape of a flat pad.
type PadKind int

const (
	// PadRect stamps a filled axis-aligned rectangle.
	PadRect PadKind = iota
	// PadDisc stamps a filled disc (inclusive boundary).
	PadDisc
)

// Pad is one flat-pad edit. Rectangles use X, Y, W, H; discs use X, Y as
// the center and Radius. Pads are applied in order after the noise pass, so
// later pads win where they overlap and every pad ends up perfectly flat.
type Pad struct {
	Kind   PadKind
	X, Y   int
	W, H   int
	Radius int
	Height float32
}

// NoiseParams configures the fractal relief pass. Octaves == 0 or
// Amplitude == 0 disables noise entirely.
type NoiseParams struct {
	Frequency float32
	Amplitude float32
	Octaves   int
}

// GenParams drives one terrain-authoring pass: natural variation first,
// then artificial flat pads layered on top.
type GenParams struct {
	Seed  int64
	Noise NoiseParams
	Pads  []Pad
}

// DefaultGenParams returns the stock tile configuration: four octaves of
// relief plus the fixed building-pad layout.
func DefaultGenParams() GenParams {
	return GenParams{
		Seed: 1,
		Noise: NoiseParams{
			Frequency: 0.05,
			Amplitude: 8,
			Octaves:   4,
		},
		Pads: []Pad{
			{Kind: PadRect, X: 20, Y: 24, W: 14, H: 10, Height: 2},
			{Kind: PadRect, X: 70, Y: 42, W: 12, H: 12, Height: 2.5},
			{Kind: PadDisc, X: 96, Y: 96, Radius: 9, Height: 1.5},
		},
	}
}

// Generate produces one terrain tile. The output is fully deterministic for
// a given GenParams; any width/height is tolerated (all grid access is
// bounds-checked).
func Generate(p GenParams, width, height int) *HeightField {
	hf := NewHeightField(width, height)

	if p.Noise.Octaves > 0 && p.Noise.Amplitude != 0 {
		noise := NewNoiseField(p.Seed)
		for y := 0; y < hf.Height(); y++ {
			for x := 0; x < hf.Width(); x++ {
				hf.Add(x, y, noise.Fractal(float32(x), float32(y),
					p.Noise.Frequency, p.Noise.Amplitude, p.Noise.Octaves))
			}
		}
	}

	for _, pad := range p.Pads {
		switch pad.Kind {
		case PadRect:
			hf.FillRect(pad.X, pad.Y, pad.W, pad.H, pad.Height)
		case PadDisc:
			hf.FillDisc(pad.X, pad.Y, pad.Radius, pad.Height)
		}
	}

	return hf
}

// GenerateHeightField produces a tile with the default configuration.
func GenerateHeightField(width, height int) *HeightField {
	return Generate(DefaultGenParams(), width, height)
}
