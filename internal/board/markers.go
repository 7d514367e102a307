package board

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Marker palette.
var (
	defaultPlayerColour = color.RGBA{R: 126, G: 34, B: 206, A: 255} // purple
	goalieColour        = color.RGBA{R: 234, G: 138, B: 0, A: 255}  // orange
	opponentColour      = color.RGBA{R: 206, G: 55, B: 48, A: 255}  // red
	selectionColour     = color.RGBA{R: 250, G: 204, B: 21, A: 255} // yellow
)

// discColour maps a disc kind to its fill.
func discColour(k DiscKind) color.RGBA {
	switch k {
	case DiscOpponent:
		return opponentColour
	case DiscGoalie:
		return goalieColour
	}
	return defaultPlayerColour
}

// baseMarkerFrac sizes markers relative to the surface so a phone-sized
// board and a wall projection get proportionate discs.
const (
	baseMarkerFrac  = 0.045
	minMarkerRadius = 10.0

	// Opponents and tactical discs draw (and hit-test) slightly smaller
	// than players; the ball keeps the full base radius as its touch
	// target even though it draws smaller.
	smallMarkerMul = 0.9
	ballDrawMul    = 0.75
)

// markerRadius is the base marker radius in logical pixels for a surface.
func markerRadius(w, h float64) float64 {
	r := math.Min(w, h) * baseMarkerFrac
	if r < minMarkerRadius {
		r = minMarkerRadius
	}
	return r
}

// drawEnamelDisc renders the shared disc look: drop shadow, base fill, a
// top-left sheen, a bottom-right inner shade and a translucent outline.
// Radial gradients are approximated by offset translucent circles kept
// inside the disc radius. cx, cy and r are backing pixels.
func drawEnamelDisc(dst *ebiten.Image, cx, cy, r float64, fill color.RGBA, scale float64) {
	fx, fy, fr := float32(cx), float32(cy), float32(r)

	// Drop shadow, offset down-right.
	vector.FillCircle(dst, fx+float32(1.5*scale), fy+float32(2.5*scale), fr, color.RGBA{A: 70}, true)

	// Base.
	vector.FillCircle(dst, fx, fy, fr, fill, true)

	// Sheen: two offset circles towards the light.
	sx := fx - fr*0.32
	sy := fy - fr*0.32
	vector.FillCircle(dst, sx, sy, fr*0.55, color.RGBA{R: 255, G: 255, B: 255, A: 56}, true)
	vector.FillCircle(dst, sx, sy, fr*0.30, color.RGBA{R: 255, G: 255, B: 255, A: 44}, true)

	// Inner shade opposite the light.
	vector.FillCircle(dst, fx+fr*0.30, fy+fr*0.30, fr*0.58, color.RGBA{A: 40}, true)

	// Outline.
	vector.StrokeCircle(dst, fx, fy, fr, float32(1.5*scale), color.RGBA{R: 255, G: 255, B: 255, A: 115}, true)
}

// drawSelectionRing marks the player currently picked for a swap or move:
// a soft glow plus a crisp ring just outside the disc.
func drawSelectionRing(dst *ebiten.Image, cx, cy, r, scale float64) {
	fx, fy := float32(cx), float32(cy)
	glow := selectionColour
	glow.A = 70
	vector.StrokeCircle(dst, fx, fy, float32(r+6*scale), float32(5*scale), glow, true)
	vector.StrokeCircle(dst, fx, fy, float32(r+3*scale), float32(2*scale), selectionColour, true)
}

// playerFill picks the disc colour for a player: goalie colour overrides,
// an unset colour falls back to the default, and players parked in the
// sideline band render desaturated so benched-but-placed players read
// differently from active ones.
func playerFill(p *Player) color.RGBA {
	c := p.Color
	if c.A == 0 {
		c = defaultPlayerColour
	}
	if p.Goalie {
		c = goalieColour
	}
	if p.Pos != nil && p.Pos.X >= SidelineBandX {
		c = desaturate(c)
	}
	return c
}

// desaturate pulls a colour most of the way to its grey value and lifts
// it slightly, the washed-out look of an inactive marker.
func desaturate(c color.RGBA) color.RGBA {
	grey := 0.30*float64(c.R) + 0.59*float64(c.G) + 0.11*float64(c.B)
	mix := func(v uint8) uint8 {
		out := float64(v)*0.3 + grey*0.7 + 24
		if out > 255 {
			out = 255
		}
		return uint8(out)
	}
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}

// dashedRingSegments is how many on/off pairs make up a dashed circle.
const dashedRingSegments = 14

// drawDashedCircle approximates a dashed ring with alternating short arc
// segments, the same technique the markings use for arcs.
func drawDashedCircle(dst *ebiten.Image, cx, cy, r float64, lw float32, c color.Color) {
	step := 2 * math.Pi / float64(dashedRingSegments*2)
	for i := 0; i < dashedRingSegments*2; i += 2 {
		a0 := float64(i) * step
		strokeArcN(dst, cx, cy, r, a0, a0+step, 3, lw, c)
	}
}

// DrawPlayerChip renders a player as a roster chip: the enamel disc in
// the player's colour with the display name underneath. cx, cy and r
// are backing pixels on dst.
func DrawPlayerChip(dst *ebiten.Image, p *Player, cx, cy, r, scale float64) {
	drawEnamelDisc(dst, cx, cy, r, playerFill(p), scale)
	size := 8.0 * scale
	label := p.DisplayName()
	lx := int(cx) - labelWidth(label, size)/2
	drawOutlinedLabel(dst, label, lx, int(cy+r+size+1*scale), size, color.RGBA{R: 235, G: 240, B: 235, A: 255})
}

// strokeArcN is strokeArc with a caller-chosen segment count, for short
// arcs where the full marking resolution is wasted.
func strokeArcN(dst *ebiten.Image, cx, cy, r, a0, a1 float64, steps int, lw float32, c color.Color) {
	span := a1 - a0
	var px, py float32
	for i := 0; i <= steps; i++ {
		a := a0 + span*float64(i)/float64(steps)
		x := float32(cx + r*math.Cos(a))
		y := float32(cy + r*math.Sin(a))
		if i > 0 {
			vector.StrokeLine(dst, px, py, x, y, lw, c, true)
		}
		px, py = x, y
	}
}
