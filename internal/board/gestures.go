package board

import "time"

// Gesture tuning, in logical pixels.
const (
	// doubleTapWindow and doubleTapRadius pair two presses on the same
	// entity into a double activation. Both comparisons are inclusive.
	doubleTapWindow = 300 * time.Millisecond
	doubleTapRadius = 15.0

	// touchDragThreshold2 is the squared distance a touch press must
	// travel before it counts as a drag rather than a tap. Mouse
	// presses drag immediately.
	touchDragThreshold2 = 100.0
)

// Touch is one active contact point in board-local logical pixels.
type Touch struct {
	ID   int
	X, Y float64
}

// InputFrame is one frame of pointer state in board-local logical
// pixels. The host samples ebiten once per update (or synthesises
// frames in tests) and feeds every frame through HandleInput, including
// contact-free ones, so releases and cancellations are observed.
type InputFrame struct {
	MouseX, MouseY float64
	MousePressed   bool
	// MouseInside is false while the cursor is outside the board
	// region; an active mouse drag then concludes without snapping.
	MouseInside bool
	Touches     []Touch
}

type dragKind int

const (
	dragNone dragKind = iota
	dragPlayer
	dragOpponent
	dragDisc
	dragBall
	dragStroke
)

// tapRecord remembers the previous press for double detection.
type tapRecord struct {
	at   time.Time
	x, y float64
	kind dragKind
	id   string
}

// gestureState tracks at most one pointer interaction at a time.
// touchID is -1 for mouse gestures. pending marks a touch press that
// has not yet travelled far enough to count as a drag. lastTap and
// selectedPlayer outlive individual gestures.
type gestureState struct {
	kind     dragKind
	targetID string
	touchID  int

	startX, startY float64
	lastX, lastY   float64
	moved          bool
	pending        bool

	lastTap        tapRecord
	selectedPlayer string
}

// reset clears the per-gesture fields while keeping the cross-gesture
// tap history and selection.
func (g *gestureState) reset() {
	sel := g.selectedPlayer
	tap := g.lastTap
	*g = gestureState{touchID: -1, lastTap: tap, selectedPlayer: sel}
}

// HandleInput advances the gesture machine by one frame. The scene
// provides hit-testing targets and mode flags; every proposed change
// flows back through the callbacks given to New. At most one pointer
// drives the board at a time: the first new touch claims it, and while
// any gesture is live, other touches and the mouse are ignored.
func (b *Board) HandleInput(sc *Scene, in InputFrame) {
	defer b.noteFrame(in)

	w, h := float64(b.w), float64(b.h)

	// Turning drawing off (or leaving the tactics view) mid-stroke
	// finalises the stroke immediately. The still-held pointer stays
	// claimed by nothing; a fresh press is needed to start over.
	if b.gest.kind == dragStroke && (!sc.Drawing || sc.View != ViewTactics) {
		b.finishStroke()
	}

	switch {
	case b.gest.kind != dragNone && b.gest.touchID >= 0:
		b.trackTouch(sc, in, w, h)
	case b.gest.kind != dragNone:
		b.trackMouse(sc, in, w, h)
	default:
		b.watchForPress(sc, in, w, h)
	}
}

func (b *Board) noteFrame(in InputFrame) {
	b.prevMousePressed = in.MousePressed
	b.prevMouseInside = in.MouseInside
	b.prevTouches = make(map[int]struct{}, len(in.Touches))
	for _, t := range in.Touches {
		b.prevTouches[t.ID] = struct{}{}
	}
}

func (b *Board) watchForPress(sc *Scene, in InputFrame, w, h float64) {
	for _, t := range in.Touches {
		if _, seen := b.prevTouches[t.ID]; seen {
			continue
		}
		b.beginPress(sc, t.X, t.Y, t.ID, w, h)
		return
	}
	if in.MousePressed && !b.prevMousePressed && in.MouseInside {
		b.beginPress(sc, in.MouseX, in.MouseY, -1, w, h)
	}
}

// beginPress classifies a fresh press: armed placement first, then
// double detection, then drag start, tap-to-place or stroke start.
func (b *Board) beginPress(sc *Scene, x, y float64, touchID int, w, h float64) {
	if b.armedID != "" {
		id := b.armedID
		b.armedID = ""
		if rel, ok := ToRelative(x, y, w, h); ok && b.cb.DropFromExternal != nil {
			b.cb.DropFromExternal(id, rel.X, rel.Y)
		}
		return
	}

	kind, id := b.classify(sc, x, y, w, h)

	// Every press overwrites the tap history, so an unrelated press in
	// between breaks a double chain.
	now := b.now()
	prev := b.gest.lastTap
	b.gest.lastTap = tapRecord{at: now, x: x, y: y, kind: kind, id: id}

	if kind == dragPlayer || kind == dragOpponent || kind == dragDisc {
		if prev.kind == kind && prev.id == id &&
			now.Sub(prev.at) <= doubleTapWindow &&
			sqr(x-prev.x)+sqr(y-prev.y) <= sqr(doubleTapRadius) {
			b.gest.lastTap = tapRecord{}
			b.doubleActivate(sc, kind, id)
			return
		}
	}

	switch kind {
	case dragNone:
		b.pressEmpty(sc, x, y, w, h)
		return
	case dragStroke:
		if rel, ok := ToRelative(x, y, w, h); ok && b.cb.StrokeStart != nil {
			b.cb.StrokeStart(rel)
		}
	}

	g := &b.gest
	g.kind = kind
	g.targetID = id
	g.touchID = touchID
	g.startX, g.startY = x, y
	g.lastX, g.lastY = x, y
	g.moved = false
	g.pending = touchID >= 0 && kind != dragStroke
}

// classify finds the topmost interactive entity under a press. Each
// view exposes its own layer set; drawing claims empty tactics space.
func (b *Board) classify(sc *Scene, x, y, w, h float64) (dragKind, string) {
	switch sc.View {
	case ViewTactics:
		if hitBall(sc, x, y, w, h) {
			return dragBall, ""
		}
		if id, ok := hitDisc(sc, x, y, w, h); ok {
			return dragDisc, id
		}
		if sc.Drawing {
			return dragStroke, ""
		}
	default:
		if id, ok := hitPlayer(sc, x, y, w, h); ok {
			return dragPlayer, id
		}
		if id, ok := hitOpponent(sc, x, y, w, h); ok {
			return dragOpponent, id
		}
	}
	return dragNone, ""
}

// pressEmpty handles a press that hit no entity. With a player selected
// on the normal view, a press on a free anchor or slot places them
// there; any empty press drops the selection.
func (b *Board) pressEmpty(sc *Scene, x, y, w, h float64) {
	if sc.View != ViewNormal || b.gest.selectedPlayer == "" {
		return
	}
	sel := b.gest.selectedPlayer
	b.gest.selectedPlayer = ""
	if at, ok := hitSlot(sc, x, y, w, h); ok && !IsOccupied(sc.Players, at.X, at.Y, occupyThreshold, "") {
		b.movePlayerTo(sel, at)
	}
}

func (b *Board) doubleActivate(sc *Scene, kind dragKind, id string) {
	switch kind {
	case dragPlayer:
		if b.gest.selectedPlayer == id {
			b.gest.selectedPlayer = ""
		}
		if b.cb.RemovePlayer != nil {
			b.cb.RemovePlayer(id)
		}
	case dragOpponent:
		if b.cb.RemoveOpponent != nil {
			b.cb.RemoveOpponent(id)
		}
	case dragDisc:
		if d := discByID(sc, id); d != nil && d.Kind == DiscHome {
			if b.cb.ToggleDisc != nil {
				b.cb.ToggleDisc(id)
			}
		} else if b.cb.RemoveDisc != nil {
			b.cb.RemoveDisc(id)
		}
	}
}

func (b *Board) trackMouse(sc *Scene, in InputFrame, w, h float64) {
	switch {
	case !in.MouseInside:
		b.concludeDrag(sc, w, h, false)
	case !in.MousePressed:
		b.dragTo(sc, in.MouseX, in.MouseY, w, h)
		b.concludeDrag(sc, w, h, true)
	default:
		b.dragTo(sc, in.MouseX, in.MouseY, w, h)
	}
}

func (b *Board) trackTouch(sc *Scene, in InputFrame, w, h float64) {
	for _, t := range in.Touches {
		if t.ID == b.gest.touchID {
			b.dragTo(sc, t.X, t.Y, w, h)
			return
		}
	}
	// The touch ended or the system cancelled it; ebiten reports both
	// as the id vanishing, so both resolve at the last seen position.
	b.concludeDrag(sc, w, h, true)
}

// dragTo feeds pointer movement into the active gesture. Pending touch
// presses promote to drags once they cross the threshold; until then no
// move callbacks fire and a release still counts as a tap.
func (b *Board) dragTo(sc *Scene, x, y, w, h float64) {
	g := &b.gest
	if g.pending {
		if sqr(x-g.startX)+sqr(y-g.startY) <= touchDragThreshold2 {
			g.lastX, g.lastY = x, y
			return
		}
		g.pending = false
	}
	if x == g.lastX && y == g.lastY {
		return
	}
	g.lastX, g.lastY = x, y
	g.moved = true
	rel, ok := ToRelative(x, y, w, h)
	if !ok {
		return
	}
	switch g.kind {
	case dragPlayer:
		if b.cb.MovePlayer != nil {
			b.cb.MovePlayer(g.targetID, rel.X, rel.Y)
		}
	case dragOpponent:
		if b.cb.MoveOpponent != nil {
			b.cb.MoveOpponent(g.targetID, rel.X, rel.Y)
		}
	case dragDisc:
		if b.cb.MoveDisc != nil {
			b.cb.MoveDisc(g.targetID, rel.X, rel.Y)
		}
	case dragBall:
		if b.cb.MoveBall != nil {
			b.cb.MoveBall(rel.X, rel.Y)
		}
	case dragStroke:
		if b.cb.StrokeAddPoint != nil {
			b.cb.StrokeAddPoint(rel)
		}
	}
}

// concludeDrag resolves the active gesture. released is false when the
// mouse left the board while pressed; the drag then ends in place with
// no snap and no tap semantics. Each started entity drag produces its
// end callback exactly once, and only when it actually dragged (or was
// cut off by leaving); unmoved releases are taps.
func (b *Board) concludeDrag(sc *Scene, w, h float64, released bool) {
	g := &b.gest
	kind, id := g.kind, g.targetID
	x, y := g.lastX, g.lastY
	moved := g.moved
	g.reset()
	if moved {
		// A drag is not a tap; its press must not pair into a double.
		g.lastTap = tapRecord{}
	}

	switch kind {
	case dragPlayer:
		if released && !moved {
			b.tapPlayer(id)
			return
		}
		if released && moved {
			if p, ok := snapPosition(sc, id, x, y, w, h); ok && b.cb.MovePlayer != nil {
				b.cb.MovePlayer(id, p.X, p.Y)
			}
		}
		if b.cb.PlayerMoveEnd != nil {
			b.cb.PlayerMoveEnd()
		}
	case dragOpponent:
		if released && !moved {
			return
		}
		if b.cb.OpponentMoveEnd != nil {
			b.cb.OpponentMoveEnd()
		}
	case dragDisc:
		if released && !moved {
			return
		}
		if b.cb.DiscMoveEnd != nil {
			b.cb.DiscMoveEnd()
		}
	case dragBall:
		if released && !moved {
			return
		}
		if b.cb.BallMoveEnd != nil {
			b.cb.BallMoveEnd()
		}
	case dragStroke:
		if b.cb.StrokeEnd != nil {
			b.cb.StrokeEnd()
		}
	}
}

func (b *Board) finishStroke() {
	b.gest.reset()
	if b.cb.StrokeEnd != nil {
		b.cb.StrokeEnd()
	}
}

// tapPlayer runs the select / swap / deselect cycle.
func (b *Board) tapPlayer(id string) {
	g := &b.gest
	switch {
	case g.selectedPlayer == "":
		g.selectedPlayer = id
	case g.selectedPlayer == id:
		g.selectedPlayer = ""
	default:
		a := g.selectedPlayer
		g.selectedPlayer = ""
		if b.cb.SwapPlayers != nil {
			b.cb.SwapPlayers(a, id)
		}
	}
}

func (b *Board) movePlayerTo(id string, p Point) {
	if b.cb.MovePlayer != nil {
		b.cb.MovePlayer(id, p.X, p.Y)
	}
	if b.cb.PlayerMoveEnd != nil {
		b.cb.PlayerMoveEnd()
	}
}

// SelectedPlayer returns the id highlighted by the tap-select workflow,
// or "" when none.
func (b *Board) SelectedPlayer() string {
	return b.gest.selectedPlayer
}

// ClearSelection drops any tap selection, e.g. when the host changes
// view.
func (b *Board) ClearSelection() {
	b.gest.selectedPlayer = ""
}

// ArmPlacement primes the next press to place entity id at the pressed
// point, reported through DropFromExternal. Arming replaces any earlier
// armed id; an empty id disarms.
func (b *Board) ArmPlacement(id string) {
	b.armedID = id
}

// ArmedID returns the id primed by ArmPlacement, or "" once a press has
// consumed it. Hosts use it to highlight the pending chip.
func (b *Board) ArmedID() string {
	return b.armedID
}

// DropAt places entity id at logical pixel (x, y) immediately, for
// hosts that track their own pointer while dragging from an external
// surface and only hand over at release.
func (b *Board) DropAt(id string, x, y float64) {
	if rel, ok := ToRelative(x, y, float64(b.w), float64(b.h)); ok && b.cb.DropFromExternal != nil {
		b.cb.DropFromExternal(id, rel.X, rel.Y)
	}
}
