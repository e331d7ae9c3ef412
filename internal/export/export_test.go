package export

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/hollowpine/terravale/internal/terrain"
)

func TestWriteOBJCounts(t *testing.T) {
	hf := terrain.GenerateHeightField(8, 8)
	m := terrain.BuildMesh(hf)

	var buf bytes.Buffer
	if err := WriteOBJ(&buf, m); err != nil {
		t.Fatalf("WriteOBJ failed: %v", err)
	}

	counts := map[string]int{}
	for _, line := range strings.Split(buf.String(), "\n") {
		fields := strings.Fields(line)
		if len(fields) > 0 {
			counts[fields[0]]++
		}
	}

	if counts["v"] != 64 {
		t.Errorf("v lines = %d, want 64", counts["v"])
	}
	if counts["vn"] != 64 {
		t.Errorf("vn lines = %d, want 64", counts["vn"])
	}
	if counts["vt"] != 64 {
		t.Errorf("vt lines = %d, want 64", counts["vt"])
	}
	wantFaces := 2 * 7 * 7
	if counts["f"] != wantFaces {
		t.Errorf("f lines = %d, want %d", counts["f"], wantFaces)
	}
}

func TestWriteOBJIndicesOneBased(t *testing.T) {
	m := terrain.BuildMesh(terrain.NewHeightField(2, 2))
	var buf bytes.Buffer
	if err := WriteOBJ(&buf, m); err != nil {
		t.Fatalf("WriteOBJ failed: %v", err)
	}
	if strings.Contains(buf.String(), " 0/") {
		t.Error("OBJ faces reference index 0; OBJ is 1-based")
	}
}

func TestWriteHeightPNGDimensions(t *testing.T) {
	hf := terrain.GenerateHeightField(32, 16)
	var buf bytes.Buffer
	if err := WriteHeightPNG(&buf, hf); err != nil {
		t.Fatalf("WriteHeightPNG failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 32 || bounds.Dy() != 16 {
		t.Errorf("PNG size = %dx%d, want 32x16", bounds.Dx(), bounds.Dy())
	}
}

func TestWriteHeightPNGUniformField(t *testing.T) {
	hf := terrain.NewHeightField(4, 4)
	hf.FillRect(0, 0, 4, 4, 7)
	var buf bytes.Buffer
	if err := WriteHeightPNG(&buf, hf); err != nil {
		t.Fatalf("WriteHeightPNG failed on uniform field: %v", err)
	}
}

func TestWriteHeightPNGEmptyField(t *testing.T) {
	hf := terrain.NewHeightField(0, 0)
	var buf bytes.Buffer
	if err := WriteHeightPNG(&buf, hf); err == nil {
		t.Error("WriteHeightPNG on empty field succeeded, want error")
	}
}
