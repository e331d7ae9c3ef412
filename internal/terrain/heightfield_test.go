package terrain

import "testing"

func TestGetOutOfBounds(t *testing.T) {
	hf := NewHeightField(8, 6)
	cases := [][2]int{{-1, 0}, {8, 0}, {0, -1}, {0, 6}, {-100, -100}, {1000, 1000}}
	for _, c := range cases {
		if got := hf.Get(c[0], c[1]); got != 0 {
			t.Errorf("Get(%d, %d) = %v, want 0", c[0], c[1], got)
		}
	}
}

func TestSetAddOutOfBoundsNoOp(t *testing.T) {
	hf := NewHeightField(4, 4)
	hf.FillRect(0, 0, 4, 4, 1)

	hf.Set(-1, 2, 99)
	hf.Set(4, 2, 99)
	hf.Add(2, -1, 99)
	hf.Add(2, 4, 99)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := hf.Get(x, y); got != 1 {
				t.Errorf("Get(%d, %d) = %v after out-of-bounds writes, want 1", x, y, got)
			}
		}
	}
}

func TestAddAccumulates(t *testing.T) {
	hf := NewHeightField(3, 3)
	hf.Add(1, 1, 2.5)
	hf.Add(1, 1, -1.0)
	if got := hf.Get(1, 1); got != 1.5 {
		t.Errorf("Get(1, 1) = %v, want 1.5", got)
	}
}

func TestFillRectExact(t *testing.T) {
	hf := NewHeightField(64, 64)
	hf.FillRect(10, 10, 5, 5, 3)

	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			inside := x >= 10 && x < 15 && y >= 10 && y < 15
			want := float32(0)
			if inside {
				want = 3
			}
			if got := hf.Get(x, y); got != want {
				t.Errorf("Get(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestFillRectClipped(t *testing.T) {
	hf := NewHeightField(4, 4)
	hf.FillRect(2, 2, 10, 10, 1)
	if got := hf.Get(3, 3); got != 1 {
		t.Errorf("Get(3, 3) = %v, want 1", got)
	}
	if got := hf.Get(1, 1); got != 0 {
		t.Errorf("Get(1, 1) = %v, want 0", got)
	}
}

func TestFillDiscExact(t *testing.T) {
	hf := NewHeightField(128, 128)
	hf.FillDisc(50, 50, 10, 2)

	for y := 0; y < 128; y++ {
		for x := 0; x < 128; x++ {
			dx := x - 50
			dy := y - 50
			inside := dx*dx+dy*dy <= 100
			want := float32(0)
			if inside {
				want = 2
			}
			if got := hf.Get(x, y); got != want {
				t.Errorf("Get(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestFillDiscInclusiveBoundary(t *testing.T) {
	hf := NewHeightField(128, 128)
	hf.FillDisc(50, 50, 10, 2)

	// Cells at exactly the radius are included, in all four directions.
	boundary := [][2]int{{60, 50}, {40, 50}, {50, 60}, {50, 40}}
	for _, c := range boundary {
		if got := hf.Get(c[0], c[1]); got != 2 {
			t.Errorf("Get(%d, %d) = %v, want 2 (boundary cell)", c[0], c[1], got)
		}
	}
	// Just past the radius stays untouched.
	if got := hf.Get(61, 50); got != 0 {
		t.Errorf("Get(61, 50) = %v, want 0", got)
	}
}

func TestFillDiscOverEdge(t *testing.T) {
	hf := NewHeightField(8, 8)
	hf.FillDisc(0, 0, 3, 1)
	if got := hf.Get(0, 0); got != 1 {
		t.Errorf("Get(0, 0) = %v, want 1", got)
	}
	if got := hf.Get(7, 7); got != 0 {
		t.Errorf("Get(7, 7) = %v, want 0", got)
	}
}
