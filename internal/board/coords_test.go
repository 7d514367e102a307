package board

import "testing"

func TestToPixelMapsCorners(t *testing.T) {
	cases := []struct {
		p      Point
		px, py float64
	}{
		{Point{0, 0}, 0, 0},
		{Point{1, 1}, 640, 360},
		{Point{0.5, 0.5}, 320, 180},
		{Point{0.25, 0.75}, 160, 270},
	}
	for _, c := range cases {
		px, py := ToPixel(c.p, 640, 360)
		if px != c.px || py != c.py {
			t.Fatalf("ToPixel(%v) = (%v, %v), want (%v, %v)", c.p, px, py, c.px, c.py)
		}
	}
}

func TestRelativePixelRoundTrip(t *testing.T) {
	pts := []Point{
		{0, 0}, {1, 1}, {0.25, 0.6}, {0.5, 0.75}, {0.013, 0.987},
	}
	for _, p := range pts {
		px, py := ToPixel(p, 640, 360)
		back, ok := ToRelative(px, py, 640, 360)
		if !ok {
			t.Fatalf("round trip of %v failed", p)
		}
		if absf(back.X-p.X) > 1e-9 || absf(back.Y-p.Y) > 1e-9 {
			t.Fatalf("round trip of %v drifted to %v", p, back)
		}
	}
}

func TestToRelativeClampsOutOfBounds(t *testing.T) {
	if p, ok := ToRelative(-50, -20, 640, 360); !ok || p.X != 0 || p.Y != 0 {
		t.Fatalf("negative pixels should clamp to origin, got %v ok=%v", p, ok)
	}
	if p, ok := ToRelative(700, 400, 640, 360); !ok || p.X != 1 || p.Y != 1 {
		t.Fatalf("oversized pixels should clamp to (1,1), got %v ok=%v", p, ok)
	}
}

func TestToRelativeRejectsZeroArea(t *testing.T) {
	if _, ok := ToRelative(10, 10, 0, 360); ok {
		t.Fatal("zero width should not convert")
	}
	if _, ok := ToRelative(10, 10, 640, 0); ok {
		t.Fatal("zero height should not convert")
	}
	if _, ok := ToRelative(10, 10, -640, 360); ok {
		t.Fatal("negative width should not convert")
	}
}
