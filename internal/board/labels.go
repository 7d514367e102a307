package board

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Label faces come from the bundled Go Regular so the board needs no
// font files on disk. Faces are cached per size; sizes vary with the
// render scale so high-DPI and export surfaces get crisp glyphs instead
// of upscaled ones.
var (
	faceMu    sync.Mutex
	faceCache = map[float64]font.Face{}
	labelFont *opentype.Font
)

func labelFace(size float64) font.Face {
	faceMu.Lock()
	defer faceMu.Unlock()

	if f, ok := faceCache[size]; ok {
		return f
	}
	if labelFont == nil {
		ft, err := opentype.Parse(goregular.TTF)
		if err != nil {
			panic("board: parse label font: " + err.Error())
		}
		labelFont = ft
	}
	f, err := opentype.NewFace(labelFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		panic("board: label face: " + err.Error())
	}
	faceCache[size] = f
	return f
}

// labelWidth measures a string at a face size, for centring.
func labelWidth(s string, size float64) int {
	return text.BoundString(labelFace(size), s).Dx()
}

// drawEngravedLabel renders text with a pressed-into-the-surface look:
// a dark copy offset down-right, a light copy offset up-left, then the
// solid fill on top. x,y is the baseline-left position in backing pixels.
func drawEngravedLabel(dst *ebiten.Image, s string, x, y int, size float64, fill color.Color) {
	ff := labelFace(size)
	off := 1
	if size >= 22 {
		off = 2
	}
	text.Draw(dst, s, ff, x+off, y+off, color.RGBA{A: 170})
	text.Draw(dst, s, ff, x-off, y-off, color.RGBA{R: 255, G: 255, B: 255, A: 110})
	text.Draw(dst, s, ff, x, y, fill)
}

// DrawLabel renders an outlined UI label for host chrome such as the
// roster bar. x, y is the baseline-left position in backing pixels.
func DrawLabel(dst *ebiten.Image, s string, x, y int, size float64, fill color.Color) {
	drawOutlinedLabel(dst, s, x, y, size, fill)
}

// LabelWidth measures s at a face size, in backing pixels.
func LabelWidth(s string, size float64) int {
	return labelWidth(s, size)
}

// drawOutlinedLabel renders text with a contrasting halo so it stays
// legible over grass, lines and markers alike.
func drawOutlinedLabel(dst *ebiten.Image, s string, x, y int, size float64, fill color.Color) {
	ff := labelFace(size)
	halo := color.RGBA{R: 10, G: 24, B: 12, A: 200}
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(dst, s, ff, x+dx, y+dy, halo)
		}
	}
	text.Draw(dst, s, ff, x, y, fill)
}
