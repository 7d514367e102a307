package board

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Pitch palette. The tactics view uses a flatter, darker surface so disc
// colours and drawings read clearly over it.
var (
	grassBase        = color.RGBA{R: 72, G: 146, B: 66, A: 255}
	grassTacticsBase = color.RGBA{R: 47, G: 105, B: 58, A: 255}
	lineColour       = color.RGBA{R: 255, G: 255, B: 255, A: 235}
)

// fieldMarginFrac is the gap between the surface edge and the touchlines,
// as a fraction of the smaller surface dimension. The grass fills the
// whole surface; only the markings are inset.
const fieldMarginFrac = 0.05

// mowStripeCount is how many alternating mowing bands cross the pitch.
const mowStripeCount = 12

// pitchGeom is the marked field rectangle in backing pixels.
type pitchGeom struct {
	x, y, w, h float64
}

func (p pitchGeom) centre() (float64, float64) {
	return p.x + p.w/2, p.y + p.h/2
}

// fieldRect computes the marked area for a surface, keeping the margin
// equal on all sides.
func fieldRect(w, h float64) pitchGeom {
	m := math.Min(w, h) * fieldMarginFrac
	return pitchGeom{x: m, y: m, w: w - 2*m, h: h - 2*m}
}

// renderBackground draws a complete pitch background at backing-pixel size
// (w,h). scale is the backing-pixels-per-logical-pixel factor and drives
// stroke widths and texture cell sizes so the pitch looks the same at any
// device scale or export factor.
func renderBackground(w, h int, scale float64, view ViewMode, game GameType) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	fw, fh := float64(w), float64(h)

	if view == ViewTactics {
		img.Fill(grassTacticsBase)
		drawMarkings(img, fieldRect(fw, fh), scale, game)
		return img
	}

	img.Fill(grassBase)
	drawGrassNoise(img, w, h, scale)
	drawMowingStripes(img, fw, fh)
	drawPitchLighting(img, fw, fh)
	drawMarkings(img, fieldRect(fw, fh), scale, game)
	drawPitchVignette(img, fw, fh)
	return img
}

// drawGrassNoise lays two deterministic speckle layers over the base
// green: a coarse patchy one and a fine grain. Both come from the same
// integer hash so the texture is identical for identical sizes.
func drawGrassNoise(dst *ebiten.Image, w, h int, scale float64) {
	coarse := int(18 * scale)
	fine := int(5 * scale)
	if coarse < 2 {
		coarse = 2
	}
	if fine < 1 {
		fine = 1
	}
	drawNoiseLayer(dst, w, h, coarse, 0x9d2c5680, 10)
	drawNoiseLayer(dst, w, h, fine, 0x2545f491, 6)
}

// drawNoiseLayer renders one speckle layer at cell resolution and blits it
// scaled up. Positive shades lighten, negative shades darken.
func drawNoiseLayer(dst *ebiten.Image, w, h, cell int, seed uint64, maxAlpha uint8) {
	cols := (w + cell - 1) / cell
	rows := (h + cell - 1) / cell
	if cols <= 0 || rows <= 0 {
		return
	}
	pix := image.NewNRGBA(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			shade := noiseShade(x, y, seed)
			var c color.NRGBA
			if shade > 0 {
				c = color.NRGBA{R: 255, G: 255, B: 255, A: uint8(shade) * maxAlpha / 6}
			} else if shade < 0 {
				c = color.NRGBA{A: uint8(-shade) * maxAlpha / 6}
			}
			pix.SetNRGBA(x, y, c)
		}
	}
	layer := ebiten.NewImageFromImage(pix)
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(cell), float64(cell))
	dst.DrawImage(layer, opts)
	layer.Deallocate()
}

// noiseShade hashes a cell coordinate to a shade offset in [-6,6].
func noiseShade(x, y int, seed uint64) int {
	v := uint64(x)*73856093 ^ uint64(y)*19349663 ^ seed*83492791
	v ^= v >> 13
	v *= 0x9E3779B97F4A7C15
	v ^= v >> 31
	return int(v%13) - 6
}

// drawMowingStripes alternates faint light and dark horizontal bands, the
// classic mown-grass look. Bands span the full surface so the margin
// grass matches the pitch.
func drawMowingStripes(dst *ebiten.Image, w, h float64) {
	bandH := h / mowStripeCount
	light := color.RGBA{R: 255, G: 255, B: 255, A: 9}
	dark := color.RGBA{A: 9}
	for i := 0; i < mowStripeCount; i++ {
		c := light
		if i%2 == 1 {
			c = dark
		}
		vector.FillRect(dst, 0, float32(float64(i)*bandH), float32(w), float32(bandH)+1, c, false)
	}
}

// drawPitchLighting adds a directional wash from the top plus a soft
// radial bloom at the centre, both approximated with translucent layers.
func drawPitchLighting(dst *ebiten.Image, w, h float64) {
	// Directional: three bands fading from the top edge.
	for i, a := range []uint8{12, 7, 3} {
		bh := h * 0.12 * float64(i+1)
		vector.FillRect(dst, 0, 0, float32(w), float32(bh), color.RGBA{R: 255, G: 255, B: 240, A: a}, false)
	}
	// Radial: concentric circles of decreasing opacity at the centre.
	cx, cy := float32(w/2), float32(h/2)
	rMax := float32(math.Max(w, h))
	vector.FillCircle(dst, cx, cy, rMax*0.55, color.RGBA{R: 255, G: 255, B: 235, A: 4}, false)
	vector.FillCircle(dst, cx, cy, rMax*0.40, color.RGBA{R: 255, G: 255, B: 235, A: 6}, false)
	vector.FillCircle(dst, cx, cy, rMax*0.25, color.RGBA{R: 255, G: 255, B: 235, A: 8}, false)
}

// drawPitchVignette darkens the surface edges for depth. Two layers: a
// soft inner band and a harder strip at the absolute edge.
func drawPitchVignette(dst *ebiten.Image, w, h float64) {
	outer := float32(math.Min(w, h) * 0.025)
	outerDark := color.RGBA{A: 46}
	vector.FillRect(dst, 0, 0, float32(w), outer, outerDark, false)
	vector.FillRect(dst, 0, float32(h)-outer, float32(w), outer, outerDark, false)
	vector.FillRect(dst, 0, 0, outer, float32(h), outerDark, false)
	vector.FillRect(dst, float32(w)-outer, 0, outer, float32(h), outerDark, false)

	inner := outer * 3
	innerDark := color.RGBA{A: 18}
	vector.FillRect(dst, 0, 0, float32(w), inner, innerDark, false)
	vector.FillRect(dst, 0, float32(h)-inner, float32(w), inner, innerDark, false)
	vector.FillRect(dst, 0, 0, inner, float32(h), innerDark, false)
	vector.FillRect(dst, float32(w)-inner, 0, inner, float32(h), innerDark, false)
}

// drawMarkings strokes the field lines for the given game type. The board
// is portrait: goals at the top and bottom edges.
func drawMarkings(dst *ebiten.Image, g pitchGeom, scale float64, game GameType) {
	lw := float32(2 * scale)
	switch game {
	case GameFutsal:
		drawFutsalMarkings(dst, g, lw, scale)
	default:
		drawSoccerMarkings(dst, g, lw, scale)
	}
}

// Soccer marking proportions, derived from the 105m x 68m laws-of-the-game
// pitch mapped portrait (68 across, 105 down).
const (
	soccerCircleFrac   = 9.15 / 68.0  // centre circle radius / field width
	soccerPenWFrac     = 40.32 / 68.0 // penalty area width / field width
	soccerPenDFrac     = 16.5 / 105.0 // penalty area depth / field height
	soccerGoalAreaW    = 18.32 / 68.0
	soccerGoalAreaD    = 5.5 / 105.0
	soccerSpotFrac     = 11.0 / 105.0 // penalty spot distance from goal line
	soccerGoalWFrac    = 7.32 / 68.0
	soccerCornerRFrac  = 0.02 // corner arc radius / field width (exaggerated for legibility)
	markingArcSegments = 24
)

func drawSoccerMarkings(dst *ebiten.Image, g pitchGeom, lw float32, scale float64) {
	cx, cy := g.centre()
	spotR := float32(2.5 * scale)

	// Boundary and halfway line.
	vector.StrokeRect(dst, float32(g.x), float32(g.y), float32(g.w), float32(g.h), lw, lineColour, true)
	vector.StrokeLine(dst, float32(g.x), float32(cy), float32(g.x+g.w), float32(cy), lw, lineColour, true)

	// Centre circle and spot.
	circleR := g.w * soccerCircleFrac
	vector.StrokeCircle(dst, float32(cx), float32(cy), float32(circleR), lw, lineColour, true)
	vector.FillCircle(dst, float32(cx), float32(cy), spotR, lineColour, true)

	// Penalty and goal boxes plus spots and arcs, top then bottom.
	penW := g.w * soccerPenWFrac
	penD := g.h * soccerPenDFrac
	gaW := g.w * soccerGoalAreaW
	gaD := g.h * soccerGoalAreaD
	spotDist := g.h * soccerSpotFrac

	for _, top := range []bool{true, false} {
		goalLine := g.y
		dir := 1.0
		if !top {
			goalLine = g.y + g.h
			dir = -1.0
		}
		vector.StrokeRect(dst, float32(cx-penW/2), float32(boxY(goalLine, penD, dir)), float32(penW), float32(penD), lw, lineColour, true)
		vector.StrokeRect(dst, float32(cx-gaW/2), float32(boxY(goalLine, gaD, dir)), float32(gaW), float32(gaD), lw, lineColour, true)

		spotY := goalLine + dir*spotDist
		vector.FillCircle(dst, float32(cx), float32(spotY), spotR, lineColour, true)

		// Penalty arc: the part of the circle around the spot lying
		// outside the penalty area.
		d := penD - spotDist
		if r := circleR; r > math.Abs(d) {
			a := math.Asin(d / r)
			if top {
				strokeArc(dst, cx, spotY, r, a, math.Pi-a, lw, lineColour)
			} else {
				strokeArc(dst, cx, spotY, r, math.Pi+a, 2*math.Pi-a, lw, lineColour)
			}
		}

		// Goal mouth drawn just outside the goal line.
		goalW := g.w * soccerGoalWFrac
		goalD := 8 * scale
		vector.StrokeRect(dst, float32(cx-goalW/2), float32(boxY(goalLine, goalD, -dir)), float32(goalW), float32(goalD), lw, lineColour, true)
	}

	drawCornerArcs(dst, g, g.w*soccerCornerRFrac, lw)
}

// Futsal marking proportions from the 40m x 20m court mapped portrait.
const (
	futsalCircleFrac = 3.0 / 20.0 // centre circle radius / court width
	futsalPenRFrac   = 6.0 / 20.0 // penalty arc radius from each post
	futsalPostFrac   = 1.5 / 20.0 // half the goal mouth width
	futsalSpotFrac   = 6.0 / 40.0 // first penalty spot from goal line
	futsalSpot2Frac  = 10.0 / 40.0
	futsalGoalWFrac  = 3.0 / 20.0
	futsalCornerFrac = 0.015
)

func drawFutsalMarkings(dst *ebiten.Image, g pitchGeom, lw float32, scale float64) {
	cx, cy := g.centre()
	spotR := float32(2.5 * scale)

	vector.StrokeRect(dst, float32(g.x), float32(g.y), float32(g.w), float32(g.h), lw, lineColour, true)
	vector.StrokeLine(dst, float32(g.x), float32(cy), float32(g.x+g.w), float32(cy), lw, lineColour, true)
	vector.StrokeCircle(dst, float32(cx), float32(cy), float32(g.w*futsalCircleFrac), lw, lineColour, true)
	vector.FillCircle(dst, float32(cx), float32(cy), spotR, lineColour, true)

	r := g.w * futsalPenRFrac
	post := g.w * futsalPostFrac

	for _, top := range []bool{true, false} {
		goalLine := g.y
		dir := 1.0
		if !top {
			goalLine = g.y + g.h
			dir = -1.0
		}

		// Penalty area: a quarter arc from each post joined by a straight
		// segment parallel to the goal line.
		if top {
			strokeArc(dst, cx-post, goalLine, r, math.Pi/2, math.Pi, lw, lineColour)
			strokeArc(dst, cx+post, goalLine, r, 0, math.Pi/2, lw, lineColour)
		} else {
			strokeArc(dst, cx-post, goalLine, r, math.Pi, 3*math.Pi/2, lw, lineColour)
			strokeArc(dst, cx+post, goalLine, r, 3*math.Pi/2, 2*math.Pi, lw, lineColour)
		}
		joinY := goalLine + dir*r
		vector.StrokeLine(dst, float32(cx-post), float32(joinY), float32(cx+post), float32(joinY), lw, lineColour, true)

		// Penalty spots: 6m and 10m.
		vector.FillCircle(dst, float32(cx), float32(goalLine+dir*g.h*futsalSpotFrac), spotR, lineColour, true)
		vector.FillCircle(dst, float32(cx), float32(goalLine+dir*g.h*futsalSpot2Frac), spotR, lineColour, true)

		// Goal mouth.
		goalW := g.w * futsalGoalWFrac
		goalD := 7 * scale
		vector.StrokeRect(dst, float32(cx-goalW/2), float32(boxY(goalLine, goalD, -dir)), float32(goalW), float32(goalD), lw, lineColour, true)
	}

	drawCornerArcs(dst, g, g.w*futsalCornerFrac, lw)
}

// boxY returns the top edge of a box of the given depth extending from
// the goal line into (dir=1) or away from (dir=-1) the field.
func boxY(goalLine, depth, dir float64) float64 {
	if dir > 0 {
		return goalLine
	}
	return goalLine - depth
}

// drawCornerArcs strokes the four corner quarter-circles.
func drawCornerArcs(dst *ebiten.Image, g pitchGeom, r float64, lw float32) {
	strokeArc(dst, g.x, g.y, r, 0, math.Pi/2, lw, lineColour)
	strokeArc(dst, g.x+g.w, g.y, r, math.Pi/2, math.Pi, lw, lineColour)
	strokeArc(dst, g.x+g.w, g.y+g.h, r, math.Pi, 3*math.Pi/2, lw, lineColour)
	strokeArc(dst, g.x, g.y+g.h, r, 3*math.Pi/2, 2*math.Pi, lw, lineColour)
}

// strokeArc approximates a circular arc with short line segments. Angles
// are radians, measured clockwise from +x in screen space.
func strokeArc(dst *ebiten.Image, cx, cy, r, a0, a1 float64, lw float32, c color.Color) {
	span := a1 - a0
	steps := markingArcSegments
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
