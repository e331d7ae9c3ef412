// Package scene uploads terrain meshes to the GPU and draws them.
package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/hollowpine/terravale/internal/logger"
)

// Setup initializes OpenGL state. Must be called after the GL context
// exists and before any renderer is created.
func Setup(width, height int) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.ClearColor(0.45, 0.62, 0.78, 1.0)
	gl.Viewport(0, 0, int32(width), int32(height))

	return nil
}

// Resize updates the viewport after a window resize.
func Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Clear clears the color and depth buffers for a new frame.
func Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}
