package board

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// tacticsGridSpacing is the alignment grid pitch in logical pixels.
const tacticsGridSpacing = 40.0

// renderScene composites background and entities back to front. w and h
// are logical pixels; scale maps them onto dst, which must be at least
// (w*scale, h*scale). overlays gates the tactics grid and border, which
// exports leave out.
func (b *Board) renderScene(dst *ebiten.Image, sc *Scene, bg *ebiten.Image, w, h, scale float64, overlays bool) {
	dst.Clear()
	dst.DrawImage(bg, nil)

	if sc.View == ViewTactics && overlays {
		b.drawTacticsOverlays(dst, w, h, scale)
	}

	b.drawStrokes(dst, sc.Strokes, w, h, scale)

	r := markerRadius(w, h)
	switch sc.View {
	case ViewTactics:
		b.drawDiscs(dst, sc, r*smallMarkerMul, w, h, scale)
		b.drawBallMarker(dst, sc, r, w, h, scale)
	default:
		b.drawOpponents(dst, sc, r*smallMarkerMul, w, h, scale)
		b.drawAnchors(dst, sc, r, w, h, scale)
		b.drawSubSlots(dst, sc, r, w, h, scale)
		b.drawPlayers(dst, sc, r, w, h, scale)
	}
}

// drawTacticsOverlays adds the alignment grid and a surface border, only
// on the live tactics view.
func (b *Board) drawTacticsOverlays(dst *ebiten.Image, w, h, scale float64) {
	gridCol := color.RGBA{R: 255, G: 255, B: 255, A: 26}
	for x := 0.0; x <= w; x += tacticsGridSpacing {
		fx := float32(x * scale)
		vector.StrokeLine(dst, fx, 0, fx, float32(h*scale), 1, gridCol, false)
	}
	for y := 0.0; y <= h; y += tacticsGridSpacing {
		fy := float32(y * scale)
		vector.StrokeLine(dst, 0, fy, float32(w*scale), fy, 1, gridCol, false)
	}
	bw := float32(3 * scale)
	vector.StrokeRect(dst, bw/2, bw/2, float32(w*scale)-bw, float32(h*scale)-bw, bw, color.RGBA{R: 255, G: 255, B: 255, A: 70}, false)
}

func (b *Board) drawOpponents(dst *ebiten.Image, sc *Scene, r, w, h, scale float64) {
	for i := range sc.Opponents {
		o := &sc.Opponents[i]
		if !finitePoint(o.Pos) {
			b.log.Warn("opponent position not finite, skipping", "id", o.ID)
			continue
		}
		x, y := ToPixel(o.Pos, w, h)
		drawEnamelDisc(dst, x*scale, y*scale, r*scale, opponentColour, scale)
	}
}

func (b *Board) drawDiscs(dst *ebiten.Image, sc *Scene, r, w, h, scale float64) {
	for i := range sc.Discs {
		d := &sc.Discs[i]
		if !finitePoint(d.Pos) {
			b.log.Warn("disc position not finite, skipping", "id", d.ID)
			continue
		}
		x, y := ToPixel(d.Pos, w, h)
		drawEnamelDisc(dst, x*scale, y*scale, r*scale, discColour(d.Kind), scale)
	}
}

func (b *Board) drawBallMarker(dst *ebiten.Image, sc *Scene, baseR, w, h, scale float64) {
	if sc.Ball == nil || sc.BallImage == nil {
		return
	}
	if !finitePoint(*sc.Ball) {
		b.log.Warn("ball position not finite, skipping")
		return
	}
	x, y := ToPixel(*sc.Ball, w, h)
	drawBall(dst, sc.BallImage, x*scale, y*scale, baseR*ballDrawMul*scale, scale)
}

// drawAnchors rings the formation positions still relevant to placement.
// The goalkeeper anchor and anchors inside the sideline band draw no
// indicator. Occupied anchors fade to signal taken.
func (b *Board) drawAnchors(dst *ebiten.Image, sc *Scene, r, w, h, scale float64) {
	for i := range sc.Anchors {
		a := &sc.Anchors[i]
		if a.Label == "GK" || a.Pos.X >= SidelineBandX {
			continue
		}
		alpha := uint8(110)
		if IsOccupied(sc.Players, a.Pos.X, a.Pos.Y, occupyThreshold, "") {
			alpha = 45
		}
		x, y := ToPixel(a.Pos, w, h)
		vector.StrokeCircle(dst, float32(x*scale), float32(y*scale), float32(r*0.85*scale), float32(2*scale),
			color.RGBA{R: 255, G: 255, B: 255, A: alpha}, true)
	}
}

// drawSubSlots rings each substitute slot with a dashed circle and its
// label to the left, fading like anchors when occupied.
func (b *Board) drawSubSlots(dst *ebiten.Image, sc *Scene, r, w, h, scale float64) {
	size := 9 * scale
	for i := range sc.SubSlots {
		s := &sc.SubSlots[i]
		alpha := uint8(110)
		if IsOccupied(sc.Players, s.Pos.X, s.Pos.Y, occupyThreshold, "") {
			alpha = 45
		}
		x, y := ToPixel(s.Pos, w, h)
		cx, cy := x*scale, y*scale
		drawDashedCircle(dst, cx, cy, r*0.85*scale, float32(2*scale), color.RGBA{R: 255, G: 255, B: 255, A: alpha})
		if s.Label != "" {
			lx := int(cx - r*scale - 8*scale - float64(labelWidth(s.Label, size)))
			ly := int(cy + size*0.35)
			drawOutlinedLabel(dst, s.Label, lx, ly, size, color.RGBA{R: 235, G: 240, B: 235, A: alpha + 100})
		}
	}
}

func (b *Board) drawPlayers(dst *ebiten.Image, sc *Scene, r, w, h, scale float64) {
	nameSize := 8.5 * scale
	roleSize := 9 * scale
	for i := range sc.Players {
		p := &sc.Players[i]
		if p.Pos == nil {
			continue
		}
		if !finitePoint(*p.Pos) {
			b.log.Warn("player position not finite, skipping", "id", p.ID)
			continue
		}
		x, y := ToPixel(*p.Pos, w, h)
		cx, cy := x*scale, y*scale

		if p.ID == b.gest.selectedPlayer {
			drawSelectionRing(dst, cx, cy, r*scale, scale)
		}
		drawEnamelDisc(dst, cx, cy, r*scale, playerFill(p), scale)

		if sc.ShowNames {
			name := p.DisplayName()
			if name != "" {
				lx := int(cx) - labelWidth(name, nameSize)/2
				ly := int(cy + nameSize*0.35)
				drawEngravedLabel(dst, name, lx, ly, nameSize, color.RGBA{R: 24, G: 26, B: 24, A: 240})
			}
		}

		if label := roleLabelFor(p, sc.Anchors, sc.SubSlots); label != "" {
			lw := labelWidth(label, roleSize)
			var lx, ly int
			if p.Pos.X >= SidelineBandX {
				// Sideline players get the label to their left.
				lx = int(cx - r*scale - 8*scale - float64(lw))
				ly = int(cy + roleSize*0.35)
			} else {
				lx = int(cx) - lw/2
				ly = int(cy + r*scale + roleSize + 2*scale)
			}
			drawOutlinedLabel(dst, label, lx, ly, roleSize, color.RGBA{R: 245, G: 245, B: 240, A: 235})
		}
	}
}

// roleLabelFor returns the position abbreviation to show under a player:
// the label of the formation anchor they sit on (keepers excluded), or
// failing that the label of their substitute slot.
func roleLabelFor(p *Player, anchors []Anchor, slots []SubSlot) string {
	if p.Pos == nil {
		return ""
	}
	if !p.Goalie {
		for i := range anchors {
			a := &anchors[i]
			if absf(p.Pos.X-a.Pos.X) < occupyThreshold && absf(p.Pos.Y-a.Pos.Y) < occupyThreshold {
				return a.Label
			}
		}
	}
	for i := range slots {
		s := &slots[i]
		if absf(p.Pos.X-s.Pos.X) < occupyThreshold && absf(p.Pos.Y-s.Pos.Y) < occupyThreshold {
			return s.Label
		}
	}
	return ""
}
