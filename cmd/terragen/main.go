// Package main is the headless terrain generator: it runs the authoring
// pipeline and writes the mesh as OBJ plus the height field as PNG.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/hollowpine/terravale/internal/config"
	"github.com/hollowpine/terravale/internal/export"
	"github.com/hollowpine/terravale/internal/logger"
	"github.com/hollowpine/terravale/internal/terrain"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("export failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	tc := cfg.Terrain

	start := time.Now()
	hf := terrain.Generate(tc.GenParams(), tc.Width, tc.Height)
	mesh := terrain.BuildMesh(hf)
	logger.Info("terrain generated",
		zap.Int64("seed", tc.Seed),
		zap.Int("width", tc.Width),
		zap.Int("height", tc.Height),
		zap.Int("vertices", mesh.VertexCount),
		zap.Int("indices", mesh.IndexCount),
		zap.Duration("took", time.Since(start)),
	)

	objPath := filepath.Join(cfg.Export.OutDir, "terrain.obj")
	if err := export.SaveOBJ(objPath, mesh); err != nil {
		return err
	}
	logger.Info("mesh written", zap.String("path", objPath))

	pngPath := filepath.Join(cfg.Export.OutDir, "heightmap.png")
	if err := export.SaveHeightPNG(pngPath, hf); err != nil {
		return err
	}
	logger.Info("heightmap written", zap.String("path", pngPath))

	return nil
}
