// Package board implements the interactive tactical field canvas: a
// resolution-independent pitch renderer with a cached background, plus
// hit-testing, gesture handling and formation snapping over host-owned
// entity lists. The board never mutates those lists; every proposed
// change goes back through Callbacks and the host remains the source of
// truth.
package board

import (
	"log/slog"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Callbacks is the contract back into the host. Every field is optional;
// nil callbacks are skipped. All are fire-and-forget.
type Callbacks struct {
	// Entity drags report each intermediate position, then exactly one
	// matching end signal however the gesture terminates.
	MovePlayer      func(id string, x, y float64)
	PlayerMoveEnd   func()
	MoveOpponent    func(id string, x, y float64)
	OpponentMoveEnd func()
	MoveDisc        func(id string, x, y float64)
	DiscMoveEnd     func()
	MoveBall        func(x, y float64)
	BallMoveEnd     func()

	// Double activations.
	RemovePlayer   func(id string)
	RemoveOpponent func(id string)
	RemoveDisc     func(id string)
	ToggleDisc     func(id string)

	// Freehand drawing lifecycle.
	StrokeStart    func(p Point)
	StrokeAddPoint func(p Point)
	StrokeEnd      func()

	// Tap-select workflow.
	SwapPlayers func(a, b string)

	// Placement arriving from outside the canvas (roster bar etc).
	DropFromExternal func(id string, x, y float64)
}

// Option configures a Board at construction.
type Option func(*Board)

// WithLogger routes the board's warnings somewhere other than
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.log = l
		}
	}
}

// WithClock substitutes the time source used for double-tap detection.
func WithClock(now func() time.Time) Option {
	return func(b *Board) {
		if now != nil {
			b.now = now
		}
	}
}

// Board owns the drawing surface and all ephemeral interaction state.
// It is confined to the game goroutine: ebiten delivers updates and
// draws there, and nothing here locks.
type Board struct {
	log *slog.Logger
	now func() time.Time

	cb Callbacks

	w, h  int     // logical surface size
	scale float64 // backing pixels per logical pixel

	surface *ebiten.Image
	cache   *backgroundCache

	// Gesture state, reset per gesture.
	gest gestureState

	// Previous-frame input for edge detection.
	prevMousePressed bool
	prevMouseInside  bool
	prevTouches      map[int]struct{}

	// Pending tap-to-place entity id from the host's roster surface.
	armedID string

	zeroAreaWarned bool
}

// New builds a Board wired to the given host callbacks.
func New(cb Callbacks, opts ...Option) *Board {
	b := &Board{
		log:         slog.Default(),
		now:         time.Now,
		cb:          cb,
		scale:       1,
		prevTouches: map[int]struct{}{},
	}
	for _, o := range opts {
		o(b)
	}
	b.cache = newBackgroundCache(b.log)
	b.gest.reset()
	return b
}

// SetLayout tells the board its logical size and backing scale. The
// surface is recreated (and therefore cleared) only when either of those
// actually changes, never on every frame.
func (b *Board) SetLayout(w, h int, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	if w == b.w && h == b.h && scale == b.scale && (b.surface != nil || w <= 0 || h <= 0) {
		return
	}
	b.w, b.h = w, h
	b.scale = scale
	if b.surface != nil {
		b.surface.Deallocate()
		b.surface = nil
	}
	if w > 0 && h > 0 {
		bw := int(math.Round(float64(w) * scale))
		bh := int(math.Round(float64(h) * scale))
		b.surface = ebiten.NewImage(bw, bh)
		b.zeroAreaWarned = false
	}
}

// Surface returns the live drawing surface for read access, e.g. to
// embed the board in a larger screenshot. Nil until a non-zero layout
// has been set.
func (b *Board) Surface() *ebiten.Image {
	return b.surface
}

// Render draws the full scene onto the live surface. A zero-area layout
// aborts the pass; the next layout change retries.
func (b *Board) Render(sc *Scene) {
	if b.w <= 0 || b.h <= 0 || b.surface == nil {
		if !b.zeroAreaWarned {
			b.log.Warn("surface has no area, skipping draw", "w", b.w, "h", b.h)
			b.zeroAreaWarned = true
		}
		return
	}
	bw := int(math.Round(float64(b.w) * b.scale))
	bh := int(math.Round(float64(b.h) * b.scale))
	key := backgroundKey{W: bw, H: bh, View: sc.View, Game: sc.Game}
	bg := b.cache.getOrRender(key, func() *ebiten.Image {
		return renderBackground(bw, bh, b.scale, sc.View, sc.Game)
	})
	b.renderScene(b.surface, sc, bg, float64(b.w), float64(b.h), b.scale, true)
}

// RenderForExport draws the scene onto a fresh surface at scale times
// the live logical size, bypassing the background cache (the export
// resolution rarely matches the screen one) and omitting the tactics
// grid and border overlays. Returns nil while the live surface has no
// layout area.
func (b *Board) RenderForExport(sc *Scene, scale int) *ebiten.Image {
	if b.w <= 0 || b.h <= 0 {
		b.log.Warn("export requested with no surface area")
		return nil
	}
	if scale < 1 {
		scale = 1
	}
	s := float64(scale)
	ew, eh := b.w*scale, b.h*scale
	out := ebiten.NewImage(ew, eh)
	bg := renderBackground(ew, eh, s, sc.View, sc.Game)
	b.renderScene(out, sc, bg, float64(b.w), float64(b.h), s, false)
	bg.Deallocate()
	return out
}

// PurgeBackgroundCache drops every cached background. Hosts call this
// when the application regains focus after being backgrounded, where a
// cached surface may refer to a lost rendering context.
func (b *Board) PurgeBackgroundCache() {
	b.cache.purge()
}
