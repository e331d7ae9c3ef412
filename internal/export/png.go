package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/hollowpine/terravale/internal/terrain"
)

// WriteHeightPNG writes the height field as a grayscale PNG with the
// observed min..max range remapped to 0..255. A uniform field renders as
// mid-gray.
func WriteHeightPNG(w io.Writer, hf *terrain.HeightField) error {
	width := hf.Width()
	height := hf.Height()
	if width == 0 || height == 0 {
		return fmt.Errorf("height field is empty (%dx%d)", width, height)
	}

	min := hf.Get(0, 0)
	max := min
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := hf.Get(x, y)
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	span := max - min
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			gray := uint8(127)
			if span > 0 {
				gray = uint8((hf.Get(x, y) - min) / span * 255)
			}
			img.Pix[y*img.Stride+x] = gray
		}
	}

	return png.Encode(w, img)
}

// SaveHeightPNG writes the height field to a file, creating parent
// directories as needed.
func SaveHeightPNG(path string, hf *terrain.HeightField) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := WriteHeightPNG(f, hf); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
