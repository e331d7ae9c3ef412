// Package config handles configuration loading and management for the
// terrain prototype.
package config

import "github.com/hollowpine/terravale/internal/terrain"

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Export   ExportConfig   `yaml:"export"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings for the viewer.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// TerrainConfig holds the terrain-authoring settings shared by the viewer
// and the headless generator.
type TerrainConfig struct {
	Seed      int64       `yaml:"seed"`
	Width     int         `yaml:"width"`
	Height    int         `yaml:"height"`
	Frequency float32     `yaml:"frequency"`
	Amplitude float32     `yaml:"amplitude"`
	Octaves   int         `yaml:"octaves"`
	Pads      []PadConfig `yaml:"pads"`
}

// PadConfig describes one flat-pad stamp. Shape is "rect" or "disc".
type PadConfig struct {
	Shape     string  `yaml:"shape"`
	X         int     `yaml:"x"`
	Y         int     `yaml:"y"`
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Radius    int     `yaml:"radius"`
	Elevation float32 `yaml:"elevation"`
}

// ExportConfig holds headless export settings.
type ExportConfig struct {
	OutDir string `yaml:"out_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	stock := terrain.DefaultGenParams()
	var pads []PadConfig
	for _, p := range stock.Pads {
		pads = append(pads, padConfig(p))
	}

	return &Config{
		Graphics: GraphicsConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Terrain: TerrainConfig{
			Seed:      stock.Seed,
			Width:     128,
			Height:    128,
			Frequency: stock.Noise.Frequency,
			Amplitude: stock.Noise.Amplitude,
			Octaves:   stock.Noise.Octaves,
			Pads:      pads,
		},
		Export: ExportConfig{
			OutDir: "out",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// GenParams converts the terrain section into generator parameters.
// Unknown pad shapes are skipped.
func (tc TerrainConfig) GenParams() terrain.GenParams {
	p := terrain.GenParams{
		Seed: tc.Seed,
		Noise: terrain.NoiseParams{
			Frequency: tc.Frequency,
			Amplitude: tc.Amplitude,
			Octaves:   tc.Octaves,
		},
	}
	for _, pad := range tc.Pads {
		switch pad.Shape {
		case "rect":
			p.Pads = append(p.Pads, terrain.Pad{
				Kind: terrain.PadRect,
				X:    pad.X, Y: pad.Y,
				W: pad.Width, H: pad.Height,
				Height: pad.Elevation,
			})
		case "disc":
			p.Pads = append(p.Pads, terrain.Pad{
				Kind: terrain.PadDisc,
				X:    pad.X, Y: pad.Y,
				Radius: pad.Radius,
				Height: pad.Elevation,
			})
		}
	}
	return p
}

func padConfig(p terrain.Pad) PadConfig {
	out := PadConfig{
		X: p.X, Y: p.Y,
		Elevation: p.Height,
	}
	switch p.Kind {
	case terrain.PadRect:
		out.Shape = "rect"
		out.Width = p.W
		out.Height = p.H
	case terrain.PadDisc:
		out.Shape = "disc"
		out.Radius = p.Radius
	}
	return out
}
