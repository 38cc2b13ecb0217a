package mask

import (
	"testing"
)

func TestRadius(t *testing.T) {
	tests := []struct {
		width, height int
		ratio         float64
		want          int
	}{
		{1024, 1024, 0.225, 230},
		{921, 921, 0.225, 207},
		{100, 60, 0.225, 13},
		{100, 100, 0, 0},
		{100, 100, -1, 0},
		{100, 100, 0.9, 50},
	}

	for _, tt := range tests {
		got := Radius(tt.width, tt.height, tt.ratio)
		if got != tt.want {
			t.Errorf("Radius(%d, %d, %g) = %d, want %d",
				tt.width, tt.height, tt.ratio, got, tt.want)
		}
	}
}

func TestSquircleDimensions(t *testing.T) {
	m := Squircle(200, 120, DefaultRadiusRatio)

	bounds := m.Bounds()
	if bounds.Dx() != 200 || bounds.Dy() != 120 {
		t.Errorf("mask dimensions = %dx%d, want 200x120", bounds.Dx(), bounds.Dy())
	}
}

func TestSquircleStraightEdgesOpaque(t *testing.T) {
	w, h := 200, 120
	m := Squircle(w, h, DefaultRadiusRatio)
	r := Radius(w, h, DefaultRadiusRatio)

	// Top and bottom edges between the corner arcs
	for x := r; x < w-r; x++ {
		if m.GrayAt(x, 0).Y != 255 {
			t.Fatalf("top edge pixel (%d, 0) = %d, want 255", x, m.GrayAt(x, 0).Y)
		}
		if m.GrayAt(x, h-1).Y != 255 {
			t.Fatalf("bottom edge pixel (%d, %d) = %d, want 255", x, h-1, m.GrayAt(x, h-1).Y)
		}
	}

	// Left and right edges between the corner arcs
	for y := r; y < h-r; y++ {
		if m.GrayAt(0, y).Y != 255 {
			t.Fatalf("left edge pixel (0, %d) = %d, want 255", y, m.GrayAt(0, y).Y)
		}
		if m.GrayAt(w-1, y).Y != 255 {
			t.Fatalf("right edge pixel (%d, %d) = %d, want 255", w-1, y, m.GrayAt(w-1, y).Y)
		}
	}
}

func TestSquircleInteriorOpaque(t *testing.T) {
	w, h := 200, 120
	m := Squircle(w, h, DefaultRadiusRatio)

	// Everything inside the radius inset is covered by the rectangles
	r := Radius(w, h, DefaultRadiusRatio)
	for y := r; y < h-r; y++ {
		for x := 0; x < w; x++ {
			if m.GrayAt(x, y).Y != 255 {
				t.Fatalf("interior pixel (%d, %d) = %d, want 255", x, y, m.GrayAt(x, y).Y)
			}
		}
	}
}

func TestSquircleCornersTransparent(t *testing.T) {
	w, h := 200, 120
	m := Squircle(w, h, DefaultRadiusRatio)

	corners := [][2]int{{0, 0}, {w - 1, 0}, {0, h - 1}, {w - 1, h - 1}}
	for _, c := range corners {
		if got := m.GrayAt(c[0], c[1]).Y; got != 0 {
			t.Errorf("corner pixel (%d, %d) = %d, want 0", c[0], c[1], got)
		}
	}
}

func TestSquircleArcBoundary(t *testing.T) {
	w, h := 921, 921
	m := Squircle(w, h, DefaultRadiusRatio)
	r := Radius(w, h, DefaultRadiusRatio) // 207

	// The arc touches the edges where the straight segments begin
	if m.GrayAt(r, 0).Y != 255 {
		t.Errorf("pixel (%d, 0) = %d, want 255", r, m.GrayAt(r, 0).Y)
	}
	if m.GrayAt(r-1, 0).Y != 255 {
		t.Errorf("pixel (%d, 0) = %d, want 255 (on the arc)", r-1, m.GrayAt(r-1, 0).Y)
	}

	// Pixels clearly beyond the arc stay transparent
	if m.GrayAt(r/4, r/4).Y != 0 {
		t.Errorf("pixel (%d, %d) = %d, want 0 (outside the arc)", r/4, r/4, m.GrayAt(r/4, r/4).Y)
	}
}

func TestSquircleClampedRatioCapsule(t *testing.T) {
	w, h := 100, 60
	m := Squircle(w, h, 0.9)
	r := Radius(w, h, 0.9) // clamped to 30, half the smaller side

	bounds := m.Bounds()
	if bounds.Dx() != w || bounds.Dy() != h {
		t.Fatalf("mask dimensions = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), w, h)
	}

	// Straight top and bottom segments survive the clamp
	for x := r; x < w-r; x++ {
		if m.GrayAt(x, 0).Y != 255 {
			t.Fatalf("top edge pixel (%d, 0) = %d, want 255", x, m.GrayAt(x, 0).Y)
		}
		if m.GrayAt(x, h-1).Y != 255 {
			t.Fatalf("bottom edge pixel (%d, %d) = %d, want 255", x, h-1, m.GrayAt(x, h-1).Y)
		}
	}

	// Capsule ends: fully rounded, opaque at mid-height, transparent corners
	if got := m.GrayAt(0, h/2).Y; got != 255 {
		t.Errorf("left end pixel (0, %d) = %d, want 255", h/2, got)
	}
	if got := m.GrayAt(w-1, h/2).Y; got != 255 {
		t.Errorf("right end pixel (%d, %d) = %d, want 255", w-1, h/2, got)
	}
	corners := [][2]int{{0, 0}, {w - 1, 0}, {0, h - 1}, {w - 1, h - 1}}
	for _, c := range corners {
		if got := m.GrayAt(c[0], c[1]).Y; got != 0 {
			t.Errorf("corner pixel (%d, %d) = %d, want 0", c[0], c[1], got)
		}
	}
}

func TestSquircleZeroRatioFillsRectangle(t *testing.T) {
	w, h := 50, 30
	m := Squircle(w, h, 0)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if m.GrayAt(x, y).Y != 255 {
				t.Fatalf("pixel (%d, %d) = %d, want 255 for zero ratio", x, y, m.GrayAt(x, y).Y)
			}
		}
	}
}

func TestSquircleEmpty(t *testing.T) {
	m := Squircle(0, 0, DefaultRadiusRatio)
	if !m.Bounds().Empty() {
		t.Errorf("expected empty mask for zero dimensions, got %v", m.Bounds())
	}
}
