package terrain

// HeightField is a dense W x H grid of height values, row-major, default 0.
// All accesses are bounds-checked: out-of-range reads return 0 and
// out-of-range writes are no-ops, so shape-stamp loops can run over edges
// without special casing.
type HeightField struct {
	width  int
	height int
	data   []float32
}

// NewHeightField creates a zeroed height field with the given dimensions.
func NewHeightField(width, height int) *HeightField {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &HeightField{
		width:  width,
		height: height,
		data:   make([]float32, width*height),
	}
}

// Width returns the grid width.
func (hf *HeightField) Width() int { return hf.width }

// Height returns the grid height.
func (hf *HeightField) Height() int { return hf.height }

func (hf *HeightField) inBounds(x, y int) bool {
	return x >= 0 && x < hf.width && y >= 0 && y < hf.height
}

// Get returns the stored value, or 0 for out-of-bounds coordinates.
func (hf *HeightField) Get(x, y int) float32 {
	if !hf.inBounds(x, y) {
		return 0
	}
	return hf.data[y*hf.width+x]
}

// Set overwrites the value at (x, y). Out-of-bounds writes are no-ops.
func (hf *HeightField) Set(x, y int, value float32) {
	if !hf.inBounds(x, y) {
		return
	}
	hf.data[y*hf.width+x] = value
}

// Add accumulates delta into the value at (x, y). Out-of-bounds is a no-op.
func (hf *HeightField) Add(x, y int, delta float32) {
	if !hf.inBounds(x, y) {
		return
	}
	hf.data[y*hf.width+x] += delta
}

// FillRect overwrites every in-bounds cell of the axis-aligned rectangle
// with origin (x, y) and size w x h.
func (hf *HeightField) FillRect(x, y, w, h int, value float32) {
	for cy := y; cy < y+h; cy++ {
		for cx := x; cx < x+w; cx++ {
			hf.Set(cx, cy, value)
		}
	}
}

// FillDisc overwrites every in-bounds cell whose center lies within radius
// of (cx, cy). The boundary is inclusive: cells at exactly the radius are
// filled.
func (hf *HeightField) FillDisc(cx, cy, radius int, value float32) {
	if radius < 0 {
		return
	}
	r2 := radius * radius
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			dx := x - cx
			dy := y - cy
			if dx*dx+dy*dy <= r2 {
				hf.Set(x, y, value)
			}
		}
	}
}
