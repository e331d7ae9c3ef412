package terrain

import "testing"

func TestSampleDeterministic(t *testing.T) {
	n := NewNoiseField(42)
	coords := [][2]float32{{0.5, 0.5}, {1.25, 3.75}, {-2.5, 7.1}, {100.01, -3.99}}
	for _, c := range coords {
		a := n.Sample(c[0], c[1])
		b := n.Sample(c[0], c[1])
		if a != b {
			t.Errorf("Sample(%v, %v) not idempotent: %v then %v", c[0], c[1], a, b)
		}
	}
}

func TestSampleSameSeedAgrees(t *testing.T) {
	a := NewNoiseField(7)
	b := NewNoiseField(7)
	for i := 0; i < 50; i++ {
		x := float32(i) * 0.37
		y := float32(i) * 0.91
		if a.Sample(x, y) != b.Sample(x, y) {
			t.Fatalf("same-seed fields disagree at (%v, %v)", x, y)
		}
	}
}

func TestSampleDifferentSeedsDiffer(t *testing.T) {
	a := NewNoiseField(1)
	b := NewNoiseField(2)
	differ := false
	for i := 0; i < 50; i++ {
		x := float32(i) * 0.37
		y := float32(i) * 0.91
		if a.Sample(x, y) != b.Sample(x, y) {
			differ = true
			break
		}
	}
	if !differ {
		t.Error("fields with different seeds produced identical samples everywhere")
	}
}

func TestSampleZeroAtLatticePoints(t *testing.T) {
	// At integer coordinates the corner-to-point offset is zero, so the
	// blended dot products vanish.
	n := NewNoiseField(3)
	for _, c := range [][2]float32{{0, 0}, {3, 7}, {-4, 2}} {
		if got := n.Sample(c[0], c[1]); got != 0 {
			t.Errorf("Sample(%v, %v) = %v, want 0", c[0], c[1], got)
		}
	}
}

func TestSampleRange(t *testing.T) {
	n := NewNoiseField(99)
	for i := 0; i < 500; i++ {
		x := float32(i) * 0.173
		y := float32(i) * 0.311
		v := n.Sample(x, y)
		if v < -1.5 || v > 1.5 {
			t.Fatalf("Sample(%v, %v) = %v, out of expected range", x, y, v)
		}
	}
}

func TestFractalZeroOctaves(t *testing.T) {
	n := NewNoiseField(5)
	if got := n.Fractal(1.5, 2.5, 0.05, 8, 0); got != 0 {
		t.Errorf("Fractal with 0 octaves = %v, want 0", got)
	}
}

func TestFractalAmplitudeBound(t *testing.T) {
	// Geometric amplitude decay bounds the octave sum by 2x the base
	// amplitude (times the per-octave range).
	n := NewNoiseField(11)
	const baseAmp = 8.0
	for i := 0; i < 200; i++ {
		x := float32(i) * 0.7
		y := float32(i) * 1.3
		v := n.Fractal(x, y, 0.05, baseAmp, 4)
		if v < -2*baseAmp*1.5 || v > 2*baseAmp*1.5 {
			t.Fatalf("Fractal(%v, %v) = %v, exceeds amplitude bound", x, y, v)
		}
	}
}

func TestGradientStable(t *testing.T) {
	n := NewNoiseField(13)
	g1 := n.gradient(4, -9)
	g2 := n.gradient(4, -9)
	if g1 != g2 {
		t.Errorf("gradient(4, -9) changed between calls: %v then %v", g1, g2)
	}
	l := g1.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("gradient length = %v, want ~1", l)
	}
}
