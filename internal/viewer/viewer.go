// Package viewer implements the interactive terrain viewer: it generates a
// tile from the configuration, builds the mesh, and runs the render loop.
package viewer

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/hollowpine/terravale/internal/config"
	"github.com/hollowpine/terravale/internal/engine/camera"
	"github.com/hollowpine/terravale/internal/engine/input"
	"github.com/hollowpine/terravale/internal/engine/scene"
	"github.com/hollowpine/terravale/internal/engine/window"
	"github.com/hollowpine/terravale/internal/logger"
	"github.com/hollowpine/terravale/internal/terrain"
	"github.com/hollowpine/terravale/pkg/math"
)

const fieldOfView = 45.0 * 3.14159265 / 180.0

// Viewer is the interactive application.
type Viewer struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	input    *input.Input
	camera   *camera.OrbitCamera
	renderer *scene.TerrainRenderer

	width  int
	height int

	dragging bool
	keysHeld map[sdl.Scancode]bool
}

// New creates the viewer: window, GL state, camera, and the generated
// terrain uploaded to the GPU.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		cfg:      cfg,
		width:    cfg.Graphics.Width,
		height:   cfg.Graphics.Height,
		keysHeld: make(map[sdl.Scancode]bool),
	}

	var err error
	v.window, err = window.New(window.Config{
		Title:      "terravale",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	if err := scene.Setup(v.width, v.height); err != nil {
		v.window.Close()
		return nil, err
	}

	v.renderer, err = scene.NewTerrainRenderer()
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("creating terrain renderer: %w", err)
	}

	v.input = input.New()
	v.camera = camera.New()

	mesh := v.generate()
	v.renderer.Upload(mesh)
	v.camera.FitToBounds(mesh.Bounds.Min, mesh.Bounds.Max)

	return v, nil
}

// generate runs the terrain pipeline from the config.
func (v *Viewer) generate() *terrain.Mesh {
	tc := v.cfg.Terrain
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
	return mesh
}

// Run starts the render loop and blocks until quit.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	for v.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if v.input.Update() {
			break
		}
		v.handleEvents()
		v.applyHeldKeys(dt)

		scene.Clear()

		aspect := float32(v.width) / float32(max(v.height, 1))
		proj := math.Perspective(fieldOfView, aspect, 0.1, 4000)
		viewProj := proj.Mul(v.camera.ViewMatrix())
		v.renderer.Render(viewProj)

		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (v *Viewer) handleEvents() {
	for _, ev := range v.input.Events() {
		switch ev.Type {
		case input.EventQuit:
			v.running = false

		case input.EventWindowResize:
			v.width = ev.Width
			v.height = ev.Height
			scene.Resize(ev.Width, ev.Height)

		case input.EventKeyDown:
			if ev.Key == sdl.SCANCODE_ESCAPE {
				v.running = false
			}
			v.keysHeld[ev.Key] = true

		case input.EventKeyUp:
			delete(v.keysHeld, ev.Key)

		case input.EventMouseDown:
			if ev.Button == sdl.BUTTON_LEFT {
				v.dragging = true
			}

		case input.EventMouseUp:
			if ev.Button == sdl.BUTTON_LEFT {
				v.dragging = false
			}

		case input.EventMouseMove:
			if v.dragging {
				v.camera.HandleDrag(float32(ev.DeltaX), float32(ev.DeltaY))
			}

		case input.EventMouseWheel:
			v.camera.HandleZoom(ev.Wheel)
		}
	}
}

// applyHeldKeys pans the camera while WASD keys are down.
func (v *Viewer) applyHeldKeys(dt float32) {
	var forward, right float32
	if v.keysHeld[sdl.SCANCODE_W] {
		forward += 1
	}
	if v.keysHeld[sdl.SCANCODE_S] {
		forward -= 1
	}
	if v.keysHeld[sdl.SCANCODE_D] {
		right += 1
	}
	if v.keysHeld[sdl.SCANCODE_A] {
		right -= 1
	}
	if forward != 0 || right != 0 {
		// Scale to ~60 updates/sec worth of movement per second held.
		v.camera.HandlePan(forward*dt*60, right*dt*60)
	}
}

// Close releases all resources.
func (v *Viewer) Close() {
	if v.renderer != nil {
		v.renderer.Destroy()
	}
	if v.window != nil {
		v.window.Close()
	}
}
