package config

import (
	"path/filepath"
	"testing"

	"github.com/hollowpine/terravale/internal/terrain"
)

func TestDefaultMatchesStockPipeline(t *testing.T) {
	cfg := Default()
	stock := terrain.DefaultGenParams()

	got := cfg.Terrain.GenParams()
	if got.Seed != stock.Seed {
		t.Errorf("default seed = %d, want %d", got.Seed, stock.Seed)
	}
	if got.Noise != stock.Noise {
		t.Errorf("default noise = %+v, want %+v", got.Noise, stock.Noise)
	}
	if len(got.Pads) != len(stock.Pads) {
		t.Fatalf("default pad count = %d, want %d", len(got.Pads), len(stock.Pads))
	}
	for i := range got.Pads {
		if got.Pads[i] != stock.Pads[i] {
			t.Errorf("pad %d = %+v, want %+v", i, got.Pads[i], stock.Pads[i])
		}
	}
}

func TestGenParamsSkipsUnknownShapes(t *testing.T) {
	tc := TerrainConfig{
		Pads: []PadConfig{
			{Shape: "rect", X: 1, Y: 2, Width: 3, Height: 4, Elevation: 5},
			{Shape: "hexagon", X: 9, Y: 9},
			{Shape: "disc", X: 6, Y: 7, Radius: 8, Elevation: 1},
		},
	}
	p := tc.GenParams()
	if len(p.Pads) != 2 {
		t.Fatalf("pad count = %d, want 2 (unknown shape skipped)", len(p.Pads))
	}
	if p.Pads[0].Kind != terrain.PadRect || p.Pads[1].Kind != terrain.PadDisc {
		t.Errorf("pad kinds = %v, %v, want rect then disc", p.Pads[0].Kind, p.Pads[1].Kind)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "terravale.yaml")

	orig := Default()
	orig.Terrain.Seed = 12345
	orig.Terrain.Width = 256
	orig.Graphics.VSync = false
	if err := orig.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}
	if loaded.Terrain.Seed != 12345 {
		t.Errorf("seed = %d, want 12345", loaded.Terrain.Seed)
	}
	if loaded.Terrain.Width != 256 {
		t.Errorf("width = %d, want 256", loaded.Terrain.Width)
	}
	if loaded.Graphics.VSync {
		t.Error("vsync = true, want false")
	}
}

func TestFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terravale.yaml")
	partial := Default()
	partial.Logging.Level = "debug"
	if err := partial.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Logging.Level)
	}
	// Untouched sections keep their defaults.
	if cfg.Graphics.Width != 1280 {
		t.Errorf("graphics width = %d, want default 1280", cfg.Graphics.Width)
	}
}
