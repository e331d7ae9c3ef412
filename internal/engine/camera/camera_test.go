package camera

import (
	"testing"

	"github.com/hollowpine/terravale/pkg/math"
)

func TestHandleZoomClamped(t *testing.T) {
	c := New()
	for i := 0; i < 1000; i++ {
		c.HandleZoom(10)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("Distance = %v after zooming in, want clamp at %v", c.Distance, c.MinDistance)
	}
	for i := 0; i < 1000; i++ {
		c.HandleZoom(-10)
	}
	if c.Distance != c.MaxDistance {
		t.Errorf("Distance = %v after zooming out, want clamp at %v", c.Distance, c.MaxDistance)
	}
}

func TestHandleDragClampsPitch(t *testing.T) {
	c := New()
	c.HandleDrag(0, 10000)
	if c.Pitch != c.MaxPitch {
		t.Errorf("Pitch = %v, want clamp at %v", c.Pitch, c.MaxPitch)
	}
	c.HandleDrag(0, -20000)
	if c.Pitch != c.MinPitch {
		t.Errorf("Pitch = %v, want clamp at %v", c.Pitch, c.MinPitch)
	}
}

func TestFitToBoundsCenters(t *testing.T) {
	c := New()
	c.FitToBounds(math.Vec3{X: -64, Y: 0, Z: -64}, math.Vec3{X: 64, Y: 10, Z: 64})
	if c.Center.X != 0 || c.Center.Z != 0 {
		t.Errorf("Center = %v, want centered on origin", c.Center)
	}
	if c.Center.Y != 5 {
		t.Errorf("Center.Y = %v, want 5", c.Center.Y)
	}
}

func TestPositionRespectsDistance(t *testing.T) {
	c := New()
	c.Center = math.Vec3{}
	pos := c.Position()
	d := pos.Length()
	if d < c.Distance*0.999 || d > c.Distance*1.001 {
		t.Errorf("|Position()| = %v, want %v", d, c.Distance)
	}
}
