package board

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// strokeColour and strokeWidth are fixed: the drawing layer is a coaching
// scribble, not a paint tool.
var strokeColour = color.RGBA{R: 253, G: 216, B: 53, A: 235}

const strokeWidth = 3.0

// drawStrokes renders every freehand stroke oldest-first. Segments are
// joined with vertex dots to fake round joins and caps. A non-finite
// vertex splits the stroke: the bad point is dropped with a warning and
// drawing resumes from the next good one, so one corrupt coordinate
// cannot take down the whole layer.
func (b *Board) drawStrokes(dst *ebiten.Image, strokes []Stroke, w, h, scale float64) {
	lw := float32(strokeWidth * scale)
	r := lw / 2
	for si := range strokes {
		pts := strokes[si].Points
		havePrev := false
		var px, py float32
		for pi, p := range pts {
			if !finitePoint(p) {
				b.log.Warn("stroke point not finite, splitting stroke", "stroke", si, "point", pi)
				havePrev = false
				continue
			}
			x, y := ToPixel(p, w, h)
			fx, fy := float32(x*scale), float32(y*scale)
			vector.FillCircle(dst, fx, fy, r, strokeColour, true)
			if havePrev {
				vector.StrokeLine(dst, px, py, fx, fy, lw, strokeColour, true)
			}
			px, py = fx, fy
			havePrev = true
		}
	}
}
