// Package app hosts the board inside an ebiten window: it owns the
// session, translates window input into board input frames, renders the
// roster bar and HUD around the board surface and binds the keyboard
// shortcuts.
package app

import (
	"fmt"
	"image/color"
	"log/slog"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Pitch-Sense/internal/board"
)

const statusFlashFor = 2500 * time.Millisecond

// App implements ebiten.Game. The window splits into the board on top
// and the roster bar strip at the bottom; coordinates handed to the
// board are logical pixels with the device scale divided out.
type App struct {
	log     *slog.Logger
	cfg     Config
	session *Session
	board   *board.Board

	logicalW float64
	logicalH float64
	scale    float64

	prevKeys      map[ebiten.Key]bool
	prevMouseDown bool
	prevFocused   bool

	// Touches that began on the roster bar stay bar-owned for their
	// whole lifetime and never reach the board.
	liveTouches map[ebiten.TouchID]struct{}
	barOwned    map[ebiten.TouchID]struct{}

	touchIDs []ebiten.TouchID
	touches  []board.Touch

	status      string
	statusUntil time.Time
}

// New builds the app from config: formation library, session, board.
func New(cfg Config, log *slog.Logger) (*App, error) {
	if log == nil {
		log = slog.Default()
	}
	forms, err := LoadFormations(cfg.FormationFile)
	if err != nil {
		return nil, err
	}
	gt, err := ParseGameType(cfg.GameType)
	if err != nil {
		return nil, err
	}
	start, ok := FindFormation(forms, cfg.Formation, gt)
	if !ok {
		return nil, fmt.Errorf("unknown formation %q", cfg.Formation)
	}

	s := NewSession(forms, start, log)
	s.Scene().ShowNames = cfg.ShowNames
	s.Scene().BallImage = board.NewBallImage(48)

	a := &App{
		log:         log,
		cfg:         cfg,
		session:     s,
		scale:       1,
		prevKeys:    make(map[ebiten.Key]bool),
		liveTouches: make(map[ebiten.TouchID]struct{}),
		barOwned:    make(map[ebiten.TouchID]struct{}),
	}
	a.board = board.New(s.Callbacks(), board.WithLogger(log))
	return a, nil
}

// Layout maps the window to physical pixels so markers and labels render
// crisply on high-DPI displays. Input positions arrive in this space and
// are divided back down before they reach the board.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := ebiten.Monitor().DeviceScaleFactor()
	if s <= 0 {
		s = 1
	}
	a.scale = s
	a.logicalW = float64(outsideWidth)
	a.logicalH = float64(outsideHeight)
	return int(float64(outsideWidth) * s), int(float64(outsideHeight) * s)
}

func (a *App) barTop() float64 {
	return a.logicalH - barHeight
}

func (a *App) Update() error {
	bw := int(a.logicalW)
	bh := int(a.barTop())
	if bh < 0 {
		bh = 0
	}
	a.board.SetLayout(bw, bh, a.scale)

	a.handleFocus()
	a.handleKeys()
	a.routeInput()

	if a.status != "" && time.Now().After(a.statusUntil) {
		a.status = ""
	}
	return nil
}

// handleFocus purges the background cache when the window regains
// focus, so a stale GPU context after suspend never shows torn grass.
func (a *App) handleFocus() {
	focused := ebiten.IsFocused()
	if focused && !a.prevFocused {
		a.board.PurgeBackgroundCache()
	}
	a.prevFocused = focused
}

// handleKeys processes the shortcut keys (edge-triggered).
func (a *App) handleKeys() {
	currentKeys := map[ebiten.Key]bool{}
	edge := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !a.prevKeys[k]
	}

	// T: flip between the open-play and tactics views.
	if edge(ebiten.KeyT) {
		a.session.ToggleView()
		a.board.ClearSelection()
		a.flash("view: " + a.session.Scene().View.String())
	}

	// D: toggle the drawing tool (tactics view only).
	if edge(ebiten.KeyD) {
		a.session.ToggleDrawing()
		if a.session.Scene().Drawing {
			a.flash("drawing on")
		} else {
			a.flash("drawing off")
		}
	}

	// N: toggle name labels.
	if edge(ebiten.KeyN) {
		a.session.ToggleNames()
	}

	// F: next formation for the current game.
	if edge(ebiten.KeyF) {
		a.session.CycleFormation()
		a.flash("formation: " + a.session.Current().Name)
	}

	// G: switch soccer and futsal.
	if edge(ebiten.KeyG) {
		a.session.ToggleGameType()
		a.flash(GameTypeName(a.session.Scene().Game) + ": " + a.session.Current().Name)
	}

	// C: clear drawn strokes.
	if edge(ebiten.KeyC) {
		a.session.ClearStrokes()
		a.flash("strokes cleared")
	}

	// U: undo the last change.
	if edge(ebiten.KeyU) {
		if a.session.Undo() {
			a.flash("undo")
		} else {
			a.flash("nothing to undo")
		}
	}

	// S: copy the board summary to the clipboard.
	if edge(ebiten.KeyS) {
		a.flash(ShareBoard(a.session))
	}

	// E / Q: export the board at double resolution, PNG or QOI.
	if edge(ebiten.KeyE) {
		a.export(".png")
	}
	if edge(ebiten.KeyQ) {
		a.export(".qoi")
	}

	// Escape: drop selection and any armed chip.
	if edge(ebiten.KeyEscape) {
		a.board.ClearSelection()
		a.board.ArmPlacement("")
	}

	a.prevKeys = currentKeys
}

func (a *App) export(ext string) {
	img := a.board.RenderForExport(a.session.Scene(), 2)
	if img == nil {
		a.flash("nothing to export")
		return
	}
	defer img.Deallocate()
	path := ExportPath(".", ext, time.Now())
	if err := ExportImage(img, path); err != nil {
		a.log.Error("export failed", "path", path, "err", err)
		a.flash("export failed")
		return
	}
	a.flash("saved " + path)
}

// routeInput splits window input between the roster bar and the board.
// Presses landing on the bar arm a chip; everything else becomes the
// board's input frame, in logical pixels.
func (a *App) routeInput() {
	barTop := a.barTop()

	mx, my := ebiten.CursorPosition()
	lx, ly := float64(mx)/a.scale, float64(my)/a.scale
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if pressed && !a.prevMouseDown && ly >= barTop {
		a.pressBar(lx, ly, barTop)
	}
	a.prevMouseDown = pressed

	in := board.InputFrame{
		MouseX:       lx,
		MouseY:       ly,
		MousePressed: pressed,
		MouseInside:  lx >= 0 && ly >= 0 && lx < a.logicalW && ly < barTop,
	}

	a.touchIDs = ebiten.AppendTouchIDs(a.touchIDs[:0])
	a.touches = a.touches[:0]
	current := make(map[ebiten.TouchID]struct{}, len(a.touchIDs))
	for _, id := range a.touchIDs {
		px, py := ebiten.TouchPosition(id)
		tx, ty := float64(px)/a.scale, float64(py)/a.scale
		current[id] = struct{}{}
		if _, live := a.liveTouches[id]; !live && ty >= barTop {
			a.barOwned[id] = struct{}{}
			a.pressBar(tx, ty, barTop)
		}
		if _, owned := a.barOwned[id]; owned {
			continue
		}
		a.touches = append(a.touches, board.Touch{ID: int(id), X: tx, Y: ty})
	}
	for id := range a.barOwned {
		if _, ok := current[id]; !ok {
			delete(a.barOwned, id)
		}
	}
	a.liveTouches = current
	in.Touches = a.touches

	a.board.HandleInput(a.session.Scene(), in)
}

// pressBar arms the chip under a bar press, or disarms on empty strip.
func (a *App) pressBar(x, y, barTop float64) {
	benched := a.session.BenchedPlayers()
	id, ok := ChipAt(benched, x, y, barTop)
	if !ok {
		a.board.ArmPlacement("")
		return
	}
	a.board.ArmPlacement(id)
	for _, p := range benched {
		if p.ID == id {
			a.flash("tap the board to place " + p.DisplayName())
		}
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	a.board.Render(a.session.Scene())
	if surf := a.board.Surface(); surf != nil {
		screen.DrawImage(surf, nil)
	}
	DrawRosterBar(screen, a.session.BenchedPlayers(), a.board.ArmedID(), a.logicalW, a.barTop(), a.scale)

	hud := a.hudLine()
	board.DrawLabel(screen, hud, int(8*a.scale), int(16*a.scale), 10*a.scale, color.RGBA{R: 240, G: 244, B: 240, A: 255})
	if a.status != "" {
		board.DrawLabel(screen, a.status, int(8*a.scale), int(32*a.scale), 10*a.scale, color.RGBA{R: 255, G: 222, B: 120, A: 255})
	}
}

func (a *App) hudLine() string {
	sc := a.session.Scene()
	parts := []string{a.session.Current().Name, GameTypeName(sc.Game), sc.View.String()}
	if sc.View == board.ViewTactics && sc.Drawing {
		parts = append(parts, "draw")
	}
	return strings.Join(parts, " | ")
}

func (a *App) flash(s string) {
	a.status = s
	a.statusUntil = time.Now().Add(statusFlashFor)
}

// Run opens the window and drives the app until it is closed.
func Run(cfg Config, log *slog.Logger) error {
	a, err := New(cfg, log)
	if err != nil {
		return err
	}
	ebiten.SetWindowTitle("Pitch Sense")
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.Fullscreen {
		ebiten.SetFullscreen(true)
	}
	return ebiten.RunGame(a)
}
