package board

import "math"

// Point is a position in relative field coordinates: both axes in [0,1],
// origin top-left, independent of the rendering surface's pixel size.
// Every entity on the board stores its position this way so the same
// layout renders identically at any surface size or export scale.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ToPixel maps a relative point to surface pixels. No clamping: points
// outside [0,1] map outside the surface, which is what callers want when
// measuring distances to off-surface positions.
func ToPixel(p Point, w, h float64) (px, py float64) {
	return p.X * w, p.Y * h
}

// ToRelative maps a surface-pixel position back to relative coordinates,
// clamping each axis to [0,1] so wild pointer positions (outside the
// surface) still yield a legal on-field point. Returns ok=false when the
// surface has no usable area yet.
func ToRelative(px, py, w, h float64) (Point, bool) {
	if w <= 0 || h <= 0 {
		return Point{}, false
	}
	return Point{X: clamp01(px / w), Y: clamp01(py / h)}, true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// sqr avoids importing math.Pow for the hot squared-distance paths.
func sqr(v float64) float64 { return v * v }

// finitePoint reports whether both coordinates are real numbers. Entities
// carrying NaN or Inf positions are skipped by the renderer rather than
// poisoning an entire draw pass.
func finitePoint(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
