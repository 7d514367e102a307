package app

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Garsondee/Pitch-Sense/internal/board"
)

const (
	// undoDepth bounds the undo history; the oldest state falls off.
	undoDepth = 32

	// slotThreshold matches the board's anchor occupancy band, used here
	// for goalie detection and summary role labels.
	slotThreshold = 0.04
)

func benchCountFor(g board.GameType) int {
	if g == board.GameFutsal {
		return 3
	}
	return 5
}

// undoState is one deep-copied scene checkpoint. Formation context is
// included so undoing a reseat also restores anchors and game type; the
// ball image is shared presentation state and is not part of history.
type undoState struct {
	players   []board.Player
	opponents []board.Opponent
	discs     []board.TacticalDisc
	strokes   []board.Stroke
	ball      *board.Point
	anchors   []board.Anchor
	slots     []board.SubSlot
	game      board.GameType
	formation Formation
}

// Session owns the scene the board renders and applies every board
// callback to it. All mutations run on the game goroutine, so no
// locking. Each user-visible change books a checkpoint: drags as one
// checkpoint per gesture (captured at the first move, committed at the
// end), taps and removals immediately.
type Session struct {
	log        *slog.Logger
	scene      *board.Scene
	formations []Formation
	current    Formation

	undo     []undoState
	baseline *undoState
}

// NewSession builds a session seated in the given formation, with a few
// opponents on the open-play view and a stock disc set on the tactics
// view.
func NewSession(formations []Formation, start Formation, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	s := &Session{
		log:        log,
		formations: formations,
		scene:      &board.Scene{},
	}
	s.applyFormation(start, false)

	s.scene.Opponents = []board.Opponent{
		{ID: "o1", Pos: board.Point{X: 0.3, Y: 0.18}},
		{ID: "o2", Pos: board.Point{X: 0.5, Y: 0.14}},
		{ID: "o3", Pos: board.Point{X: 0.7, Y: 0.18}},
	}
	s.scene.Discs = stockDiscs()
	s.scene.Ball = &board.Point{X: 0.5, Y: 0.5}
	s.scene.ShowNames = true
	return s
}

// stockDiscs is the tactics-view starting set: one home row, one
// opposition row and a keeper marker.
func stockDiscs() []board.TacticalDisc {
	var out []board.TacticalDisc
	for i := 0; i < 5; i++ {
		x := 0.2 + 0.15*float64(i)
		out = append(out, board.TacticalDisc{
			ID: fmt.Sprintf("dh%d", i+1), Pos: board.Point{X: x, Y: 0.65}, Kind: board.DiscHome,
		})
		out = append(out, board.TacticalDisc{
			ID: fmt.Sprintf("do%d", i+1), Pos: board.Point{X: x, Y: 0.35}, Kind: board.DiscOpponent,
		})
	}
	out = append(out, board.TacticalDisc{ID: "dg1", Pos: board.Point{X: 0.5, Y: 0.9}, Kind: board.DiscGoalie})
	return out
}

// Scene returns the scene the board should render. The board never
// mutates it; the session does, through the callbacks.
func (s *Session) Scene() *board.Scene { return s.scene }

// Formations returns the loaded library.
func (s *Session) Formations() []Formation { return s.formations }

// Current returns the formation the squad is seated in.
func (s *Session) Current() Formation { return s.current }

// applyFormation reseats the whole squad: one player per anchor, the
// bench filled onto sub slots. Opponents, discs, strokes and the ball
// carry over.
func (s *Session) applyFormation(f Formation, checkpoint bool) {
	gt, err := f.GameType()
	if err != nil {
		s.log.Warn("formation has unknown game type, keeping current", "formation", f.Name, "err", err)
		return
	}
	if checkpoint {
		s.pushUndo(s.snapshot())
	}
	subs := benchCountFor(gt)
	slots := BenchSlots(subs)

	players := make([]board.Player, 0, len(f.Anchors)+subs)
	for i := 0; i < len(f.Anchors)+subs; i++ {
		p := board.Player{
			ID:       fmt.Sprintf("p%d", i+1),
			Name:     fmt.Sprintf("Player %d", i+1),
			Nickname: fmt.Sprintf("P%d", i+1),
		}
		if i < len(f.Anchors) {
			a := f.Anchors[i]
			p.Pos = &board.Point{X: a.X, Y: a.Y}
		} else {
			sl := slots[i-len(f.Anchors)]
			p.Pos = &board.Point{X: sl.Pos.X, Y: sl.Pos.Y}
		}
		players = append(players, p)
	}

	s.current = f
	s.scene.Game = gt
	s.scene.Anchors = f.BoardAnchors()
	s.scene.SubSlots = slots
	s.scene.Players = players
	s.refreshGoalies()
}

// ApplyFormation reseats the squad with an undo checkpoint.
func (s *Session) ApplyFormation(f Formation) {
	s.applyFormation(f, true)
}

// CycleFormation advances to the next formation for the current game
// type.
func (s *Session) CycleFormation() {
	list := FormationsForGame(s.formations, s.scene.Game)
	if len(list) == 0 {
		return
	}
	next := list[0]
	for i, f := range list {
		if f.Name == s.current.Name {
			next = list[(i+1)%len(list)]
			break
		}
	}
	s.ApplyFormation(next)
}

// ToggleGameType flips between soccer and futsal, seating the squad in
// the first formation of the other game.
func (s *Session) ToggleGameType() {
	other := board.GameFutsal
	if s.scene.Game == board.GameFutsal {
		other = board.GameSoccer
	}
	list := FormationsForGame(s.formations, other)
	if len(list) == 0 {
		s.log.Warn("no formations for game type", "game", other.String())
		return
	}
	s.ApplyFormation(list[0])
}

func (s *Session) ToggleView() {
	if s.scene.View == board.ViewNormal {
		s.scene.View = board.ViewTactics
	} else {
		s.scene.View = board.ViewNormal
	}
}

func (s *Session) ToggleDrawing() {
	s.scene.Drawing = !s.scene.Drawing
}

func (s *Session) ToggleNames() {
	s.scene.ShowNames = !s.scene.ShowNames
}

// ClearStrokes drops every drawn stroke, with a checkpoint.
func (s *Session) ClearStrokes() {
	if len(s.scene.Strokes) == 0 {
		return
	}
	s.pushUndo(s.snapshot())
	s.scene.Strokes = nil
}

// BenchedPlayers lists squad members currently off the board, in roster
// order. These are what the roster bar offers for placement.
func (s *Session) BenchedPlayers() []board.Player {
	var out []board.Player
	for _, p := range s.scene.Players {
		if p.Pos == nil {
			out = append(out, p)
		}
	}
	return out
}

// Callbacks wires the session into a board.
func (s *Session) Callbacks() board.Callbacks {
	return board.Callbacks{
		MovePlayer:       s.movePlayer,
		PlayerMoveEnd:    s.moveEnded,
		MoveOpponent:     s.moveOpponent,
		OpponentMoveEnd:  s.commitBaseline,
		MoveDisc:         s.moveDisc,
		DiscMoveEnd:      s.commitBaseline,
		MoveBall:         s.moveBall,
		BallMoveEnd:      s.commitBaseline,
		RemovePlayer:     s.removePlayer,
		RemoveOpponent:   s.removeOpponent,
		RemoveDisc:       s.removeDisc,
		ToggleDisc:       s.toggleDisc,
		StrokeStart:      s.strokeStart,
		StrokeAddPoint:   s.strokeAddPoint,
		StrokeEnd:        s.commitBaseline,
		SwapPlayers:      s.swapPlayers,
		DropFromExternal: s.dropFromExternal,
	}
}

func (s *Session) playerByID(id string) *board.Player {
	for i := range s.scene.Players {
		if s.scene.Players[i].ID == id {
			return &s.scene.Players[i]
		}
	}
	return nil
}

func (s *Session) movePlayer(id string, x, y float64) {
	s.captureBaseline()
	if p := s.playerByID(id); p != nil {
		p.Pos = &board.Point{X: x, Y: y}
	}
}

func (s *Session) moveEnded() {
	s.commitBaseline()
	s.refreshGoalies()
}

func (s *Session) moveOpponent(id string, x, y float64) {
	s.captureBaseline()
	for i := range s.scene.Opponents {
		if s.scene.Opponents[i].ID == id {
			s.scene.Opponents[i].Pos = board.Point{X: x, Y: y}
		}
	}
}

func (s *Session) moveDisc(id string, x, y float64) {
	s.captureBaseline()
	for i := range s.scene.Discs {
		if s.scene.Discs[i].ID == id {
			s.scene.Discs[i].Pos = board.Point{X: x, Y: y}
		}
	}
}

func (s *Session) moveBall(x, y float64) {
	s.captureBaseline()
	s.scene.Ball = &board.Point{X: x, Y: y}
}

func (s *Session) removePlayer(id string) {
	if p := s.playerByID(id); p != nil && p.Pos != nil {
		s.pushUndo(s.snapshot())
		p.Pos = nil
		s.refreshGoalies()
	}
}

func (s *Session) removeOpponent(id string) {
	s.pushUndo(s.snapshot())
	kept := s.scene.Opponents[:0]
	for _, o := range s.scene.Opponents {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	s.scene.Opponents = kept
}

func (s *Session) removeDisc(id string) {
	s.pushUndo(s.snapshot())
	kept := s.scene.Discs[:0]
	for _, d := range s.scene.Discs {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	s.scene.Discs = kept
}

func (s *Session) toggleDisc(id string) {
	s.pushUndo(s.snapshot())
	for i := range s.scene.Discs {
		if s.scene.Discs[i].ID == id {
			if s.scene.Discs[i].Kind == board.DiscHome {
				s.scene.Discs[i].Kind = board.DiscGoalie
			} else {
				s.scene.Discs[i].Kind = board.DiscHome
			}
		}
	}
}

func (s *Session) strokeStart(p board.Point) {
	s.captureBaseline()
	s.scene.Strokes = append(s.scene.Strokes, board.Stroke{Points: []board.Point{p}})
}

func (s *Session) strokeAddPoint(p board.Point) {
	if n := len(s.scene.Strokes); n > 0 {
		st := &s.scene.Strokes[n-1]
		st.Points = append(st.Points, p)
	}
}

func (s *Session) swapPlayers(a, b string) {
	pa, pb := s.playerByID(a), s.playerByID(b)
	if pa == nil || pb == nil {
		return
	}
	s.pushUndo(s.snapshot())
	pa.Pos, pb.Pos = pb.Pos, pa.Pos
	s.refreshGoalies()
}

func (s *Session) dropFromExternal(id string, x, y float64) {
	if p := s.playerByID(id); p != nil {
		s.pushUndo(s.snapshot())
		p.Pos = &board.Point{X: x, Y: y}
		s.refreshGoalies()
	}
}

// refreshGoalies marks exactly the players parked on a GK anchor, so
// whoever sits there picks up the keeper colour.
func (s *Session) refreshGoalies() {
	for i := range s.scene.Players {
		p := &s.scene.Players[i]
		p.Goalie = false
		if p.Pos == nil {
			continue
		}
		for _, a := range s.scene.Anchors {
			if a.Label != "GK" {
				continue
			}
			if abs(p.Pos.X-a.Pos.X) < slotThreshold && abs(p.Pos.Y-a.Pos.Y) < slotThreshold {
				p.Goalie = true
				break
			}
		}
	}
}

// roleFor labels a placed player by the anchor or slot they occupy.
func (s *Session) roleFor(p *board.Player) string {
	if p.Pos == nil {
		return ""
	}
	for _, a := range s.scene.Anchors {
		if abs(p.Pos.X-a.Pos.X) < slotThreshold && abs(p.Pos.Y-a.Pos.Y) < slotThreshold {
			return a.Label
		}
	}
	for _, sl := range s.scene.SubSlots {
		if abs(p.Pos.X-sl.Pos.X) < slotThreshold && abs(p.Pos.Y-sl.Pos.Y) < slotThreshold {
			return sl.Label
		}
	}
	return ""
}

// SummaryText renders a plain-text board summary for sharing.
func (s *Session) SummaryText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Pitch-Sense board: %s (%s)\n", s.current.Name, GameTypeName(s.scene.Game))
	var benched []string
	for i := range s.scene.Players {
		p := &s.scene.Players[i]
		if p.Pos == nil {
			benched = append(benched, p.DisplayName())
			continue
		}
		role := s.roleFor(p)
		if role == "" {
			role = "--"
		}
		fmt.Fprintf(&b, "%-4s %-10s (%.2f, %.2f)\n", role, p.DisplayName(), p.Pos.X, p.Pos.Y)
	}
	if len(benched) > 0 {
		fmt.Fprintf(&b, "Bench: %s\n", strings.Join(benched, ", "))
	}
	return b.String()
}

// captureBaseline books the pre-gesture state once per drag; the
// matching end commits it as a single undo step.
func (s *Session) captureBaseline() {
	if s.baseline == nil {
		snap := s.snapshot()
		s.baseline = &snap
	}
}

func (s *Session) commitBaseline() {
	if s.baseline != nil {
		s.pushUndo(*s.baseline)
		s.baseline = nil
	}
}

func (s *Session) pushUndo(u undoState) {
	s.undo = append([]undoState{u}, s.undo...)
	if len(s.undo) > undoDepth {
		s.undo = s.undo[:undoDepth]
	}
}

// UndoDepth reports how many steps are available.
func (s *Session) UndoDepth() int { return len(s.undo) }

// Undo restores the most recent checkpoint. Returns false with nothing
// to undo.
func (s *Session) Undo() bool {
	s.baseline = nil
	if len(s.undo) == 0 {
		return false
	}
	u := s.undo[0]
	s.undo = s.undo[1:]
	s.scene.Players = u.players
	s.scene.Opponents = u.opponents
	s.scene.Discs = u.discs
	s.scene.Strokes = u.strokes
	s.scene.Ball = u.ball
	s.scene.Anchors = u.anchors
	s.scene.SubSlots = u.slots
	s.scene.Game = u.game
	s.current = u.formation
	s.refreshGoalies()
	return true
}

func (s *Session) snapshot() undoState {
	u := undoState{
		players:   make([]board.Player, len(s.scene.Players)),
		opponents: append([]board.Opponent(nil), s.scene.Opponents...),
		discs:     append([]board.TacticalDisc(nil), s.scene.Discs...),
		strokes:   make([]board.Stroke, len(s.scene.Strokes)),
		anchors:   append([]board.Anchor(nil), s.scene.Anchors...),
		slots:     append([]board.SubSlot(nil), s.scene.SubSlots...),
		game:      s.scene.Game,
		formation: s.current,
	}
	for i, p := range s.scene.Players {
		if p.Pos != nil {
			pos := *p.Pos
			p.Pos = &pos
		}
		u.players[i] = p
	}
	for i, st := range s.scene.Strokes {
		u.strokes[i] = board.Stroke{Points: append([]board.Point(nil), st.Points...)}
	}
	if s.scene.Ball != nil {
		ball := *s.scene.Ball
		u.ball = &ball
	}
	return u
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
