package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Pitch-Sense/internal/board"
)

// The roster bar is a fixed strip under the board listing benched
// players. Pressing a chip arms that player; the next board press drops
// them there. All constants are logical pixels.
const (
	barHeight  = 64.0
	chipRadius = 14.0
	chipStep   = 52.0
	chipLeft   = 34.0
	chipTop    = 24.0
)

var (
	barFill = color.RGBA{R: 16, G: 24, B: 18, A: 255}
	barSeam = color.RGBA{R: 60, G: 78, B: 64, A: 255}
	barText = color.RGBA{R: 168, G: 182, B: 170, A: 255}
)

// BarHeight is the strip height in logical pixels; the host subtracts
// it from the window to size the board.
func BarHeight() float64 { return barHeight }

// DrawRosterBar paints the strip onto dst. barTop is the logical Y of
// the strip's top edge, w the logical window width, armed the ID of the
// chip awaiting placement.
func DrawRosterBar(dst *ebiten.Image, benched []board.Player, armed string, w, barTop, scale float64) {
	top := float32(barTop * scale)
	vector.FillRect(dst, 0, top, float32(w*scale), float32(barHeight*scale), barFill, false)
	vector.StrokeLine(dst, 0, top, float32(w*scale), top, float32(1.5*scale), barSeam, true)

	if len(benched) == 0 {
		size := 9.0 * scale
		board.DrawLabel(dst, "squad placed", int(8*scale), int((barTop+14)*scale), size, barText)
		return
	}
	for i := range benched {
		p := &benched[i]
		cx, cy := chipCentre(i, barTop)
		if p.ID == armed {
			vector.StrokeCircle(dst, float32(cx*scale), float32(cy*scale),
				float32((chipRadius+4)*scale), float32(2*scale), color.RGBA{R: 255, G: 214, B: 64, A: 230}, true)
		}
		board.DrawPlayerChip(dst, p, cx*scale, cy*scale, chipRadius*scale, scale)
	}
	if n := len(benched); n > 0 {
		size := 9.0 * scale
		s := fmt.Sprintf("bench %d", n)
		board.DrawLabel(dst, s, int((w-8)*scale)-board.LabelWidth(s, size), int((barTop+14)*scale), size, barText)
	}
}

func chipCentre(i int, barTop float64) (float64, float64) {
	return chipLeft + float64(i)*chipStep, barTop + chipTop
}

// ChipAt hit-tests a logical point against the bar's chips and reports
// the player it lands on. x, y are logical window coordinates.
func ChipAt(benched []board.Player, x, y, barTop float64) (string, bool) {
	if y < barTop {
		return "", false
	}
	for i := range benched {
		cx, cy := chipCentre(i, barTop)
		dx, dy := x-cx, y-cy
		r := chipRadius + 6
		if dx*dx+dy*dy < r*r {
			return benched[i].ID, true
		}
	}
	return "", false
}
