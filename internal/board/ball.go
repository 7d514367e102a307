package board

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// NewBallImage builds a stylised football texture: white base, grey
// shading towards the lower right, a ring of dark patches and a centre
// patch. The result already has a circular silhouette so drawBall can
// scale it straight into its clip circle.
func NewBallImage(size int) *ebiten.Image {
	if size < 16 {
		size = 16
	}
	img := ebiten.NewImage(size, size)
	c := float32(size) / 2
	r := c - 1

	vector.FillCircle(img, c, c, r, color.RGBA{R: 245, G: 245, B: 242, A: 255}, true)
	// Shading: offset translucent discs, as the markers do.
	vector.FillCircle(img, c+r*0.25, c+r*0.25, r*0.75, color.RGBA{R: 70, G: 70, B: 80, A: 38}, true)
	vector.FillCircle(img, c-r*0.3, c-r*0.3, r*0.5, color.RGBA{R: 255, G: 255, B: 255, A: 90}, true)

	// Pentagon-ish patches: one centred, five around.
	patch := color.RGBA{R: 32, G: 34, B: 38, A: 255}
	vector.FillCircle(img, c, c, r*0.22, patch, true)
	for i := 0; i < 5; i++ {
		a := float64(i)*2*math.Pi/5 - math.Pi/2
		px := c + float32(math.Cos(a))*r*0.72
		py := c + float32(math.Sin(a))*r*0.72
		vector.FillCircle(img, px, py, r*0.17, patch, true)
	}
	vector.StrokeCircle(img, c, c, r, 1.5, color.RGBA{R: 40, G: 44, B: 48, A: 200}, true)
	return img
}

// MaskCircle clips an arbitrary texture to a circle, for hosts that load
// the ball from a rectangular image file. The destination-in blend keeps
// source pixels only where the mask circle covers them.
func MaskCircle(src *ebiten.Image) *ebiten.Image {
	bw := src.Bounds().Dx()
	bh := src.Bounds().Dy()
	size := bw
	if bh < size {
		size = bh
	}
	out := ebiten.NewImage(size, size)
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(-float64(bw-size)/2, -float64(bh-size)/2)
	out.DrawImage(src, opts)

	mask := ebiten.NewImage(size, size)
	half := float32(size) / 2
	vector.FillCircle(mask, half, half, half, color.White, true)
	mopts := &ebiten.DrawImageOptions{}
	mopts.Blend = ebiten.BlendDestinationIn
	out.DrawImage(mask, mopts)
	mask.Deallocate()
	return out
}

// drawBall renders the ball texture into a circle of radius r at backing
// pixels (cx, cy). The texture is scaled slightly past the clip radius so
// any residual edge pixels from the source stay hidden, then a border
// ring is stroked on top.
func drawBall(dst *ebiten.Image, img *ebiten.Image, cx, cy, r, scale float64) {
	// Drop shadow first.
	vector.FillCircle(dst, float32(cx+1.5*scale), float32(cy+2.5*scale), float32(r), color.RGBA{A: 70}, true)

	over := r + 1.5*scale
	bw := img.Bounds().Dx()
	bh := img.Bounds().Dy()
	if bw <= 0 || bh <= 0 {
		return
	}
	opts := &ebiten.DrawImageOptions{}
	opts.Filter = ebiten.FilterLinear
	opts.GeoM.Scale(2*over/float64(bw), 2*over/float64(bh))
	opts.GeoM.Translate(cx-over, cy-over)
	dst.DrawImage(img, opts)

	vector.StrokeCircle(dst, float32(cx), float32(cy), float32(r), float32(1.5*scale), color.RGBA{R: 255, G: 255, B: 255, A: 140}, true)
}
