package app

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/Garsondee/Pitch-Sense/internal/board"
)

func quietLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	forms := BuiltinFormations()
	start, ok := FindFormation(forms, "4-4-2", board.GameSoccer)
	if !ok {
		t.Fatalf("expected builtin 4-4-2, got none")
	}
	return NewSession(forms, start, quietLog())
}

func sessionPlayer(t *testing.T, s *Session, id string) *board.Player {
	t.Helper()
	for i := range s.Scene().Players {
		if s.Scene().Players[i].ID == id {
			return &s.Scene().Players[i]
		}
	}
	t.Fatalf("expected player %s in scene, got none", id)
	return nil
}

func TestNewSessionSeatsFullSquad(t *testing.T) {
	s := newTestSession(t)
	sc := s.Scene()

	if len(sc.Players) != 16 {
		t.Fatalf("expected 16 players for eleven-a-side, got %d", len(sc.Players))
	}
	gk := sessionPlayer(t, s, "p1")
	if gk.Pos == nil || gk.Pos.X != 0.5 || gk.Pos.Y != 0.93 {
		t.Fatalf("expected p1 on the GK anchor, got %+v", gk.Pos)
	}
	if !gk.Goalie {
		t.Fatalf("expected the GK-anchor occupant flagged as goalie")
	}
	if sessionPlayer(t, s, "p2").Goalie {
		t.Fatalf("expected outfield player not flagged as goalie")
	}
	for _, id := range []string{"p12", "p16"} {
		p := sessionPlayer(t, s, id)
		if p.Pos == nil || p.Pos.X != 0.96 {
			t.Fatalf("expected %s seated on the sideline band, got %+v", id, p.Pos)
		}
	}
	if got := len(s.BenchedPlayers()); got != 0 {
		t.Fatalf("expected nobody off the board at start, got %d", got)
	}
	if len(sc.Opponents) != 3 {
		t.Fatalf("expected 3 seeded opponents, got %d", len(sc.Opponents))
	}
	if len(sc.Discs) != 11 {
		t.Fatalf("expected 11 stock discs, got %d", len(sc.Discs))
	}
	if sc.Ball == nil {
		t.Fatalf("expected a seeded ball")
	}
}

func TestMoveGestureCoalescesIntoOneUndoStep(t *testing.T) {
	s := newTestSession(t)
	cb := s.Callbacks()
	orig := *sessionPlayer(t, s, "p9").Pos

	cb.MovePlayer("p9", 0.30, 0.30)
	cb.MovePlayer("p9", 0.31, 0.32)
	cb.MovePlayer("p9", 0.33, 0.35)
	cb.PlayerMoveEnd()

	if got := s.UndoDepth(); got != 1 {
		t.Fatalf("expected a drag to book one undo step, got %d", got)
	}
	if p := sessionPlayer(t, s, "p9"); p.Pos.X != 0.33 || p.Pos.Y != 0.35 {
		t.Fatalf("expected p9 at the final drag point, got %+v", p.Pos)
	}
	if !s.Undo() {
		t.Fatalf("expected undo to succeed")
	}
	if p := sessionPlayer(t, s, "p9"); *p.Pos != orig {
		t.Fatalf("expected undo to restore %+v, got %+v", orig, p.Pos)
	}
	if got := s.UndoDepth(); got != 0 {
		t.Fatalf("expected history empty after undo, got %d", got)
	}
}

func TestRemovePlayerBenchesAndUndoRestores(t *testing.T) {
	s := newTestSession(t)
	cb := s.Callbacks()

	cb.RemovePlayer("p9")
	if p := sessionPlayer(t, s, "p9"); p.Pos != nil {
		t.Fatalf("expected removed player off the board, got %+v", p.Pos)
	}
	benched := s.BenchedPlayers()
	if len(benched) != 1 || benched[0].ID != "p9" {
		t.Fatalf("expected p9 on the bench, got %+v", benched)
	}

	if !s.Undo() {
		t.Fatalf("expected undo to succeed")
	}
	if p := sessionPlayer(t, s, "p9"); p.Pos == nil || p.Pos.X != 0.84 || p.Pos.Y != 0.55 {
		t.Fatalf("expected p9 back on the RM anchor, got %+v", p.Pos)
	}
}

func TestUndoHistoryIsCapped(t *testing.T) {
	s := newTestSession(t)
	cb := s.Callbacks()

	for i := 0; i < undoDepth+8; i++ {
		cb.MoveBall(0.1+float64(i)*0.01, 0.5)
		cb.BallMoveEnd()
	}
	if got := s.UndoDepth(); got != undoDepth {
		t.Fatalf("expected history capped at %d, got %d", undoDepth, got)
	}
}

func TestToggleDiscFlipsKindBothWays(t *testing.T) {
	s := newTestSession(t)
	cb := s.Callbacks()

	kindOf := func(id string) board.DiscKind {
		for _, d := range s.Scene().Discs {
			if d.ID == id {
				return d.Kind
			}
		}
		t.Fatalf("expected disc %s in scene, got none", id)
		return 0
	}

	if kindOf("dh1") != board.DiscHome {
		t.Fatalf("expected dh1 to start as a home disc")
	}
	cb.ToggleDisc("dh1")
	if kindOf("dh1") != board.DiscGoalie {
		t.Fatalf("expected toggle to flip dh1 to the goalie kind")
	}
	cb.ToggleDisc("dh1")
	if kindOf("dh1") != board.DiscHome {
		t.Fatalf("expected second toggle to flip dh1 back")
	}
	if got := s.UndoDepth(); got != 2 {
		t.Fatalf("expected each toggle to book one undo step, got %d", got)
	}
}

func TestSwapMovesGoalieFlag(t *testing.T) {
	s := newTestSession(t)
	cb := s.Callbacks()

	cb.SwapPlayers("p1", "p9")
	if p := sessionPlayer(t, s, "p9"); !p.Goalie {
		t.Fatalf("expected the player swapped onto the GK anchor to become goalie")
	}
	if p := sessionPlayer(t, s, "p1"); p.Goalie {
		t.Fatalf("expected the player swapped off the GK anchor to lose the flag")
	}
}

func TestApplyFormationReseatsEverySeat(t *testing.T) {
	s := newTestSession(t)
	forms := s.Formations()
	f433, ok := FindFormation(forms, "4-3-3", board.GameSoccer)
	if !ok {
		t.Fatalf("expected builtin 4-3-3, got none")
	}

	s.ApplyFormation(f433)
	if s.Current().Name != "4-3-3" {
		t.Fatalf("expected current formation 4-3-3, got %s", s.Current().Name)
	}
	if p := sessionPlayer(t, s, "p10"); p.Pos.X != 0.5 || p.Pos.Y != 0.30 {
		t.Fatalf("expected p10 on the 4-3-3 ST anchor, got %+v", p.Pos)
	}

	if !s.Undo() {
		t.Fatalf("expected undo to succeed")
	}
	if s.Current().Name != "4-4-2" {
		t.Fatalf("expected undo to restore the 4-4-2 shape, got %s", s.Current().Name)
	}
	if p := sessionPlayer(t, s, "p9"); p.Pos.X != 0.84 || p.Pos.Y != 0.55 {
		t.Fatalf("expected p9 back on the 4-4-2 RM anchor, got %+v", p.Pos)
	}
}

func TestToggleGameTypeSeatsFutsalSquad(t *testing.T) {
	s := newTestSession(t)

	s.ToggleGameType()
	sc := s.Scene()
	if sc.Game != board.GameFutsal {
		t.Fatalf("expected futsal after toggle, got %v", sc.Game)
	}
	if s.Current().Name != "2-2" {
		t.Fatalf("expected first futsal formation 2-2, got %s", s.Current().Name)
	}
	if len(sc.Players) != 8 {
		t.Fatalf("expected 8 players for futsal, got %d", len(sc.Players))
	}
	if len(sc.Anchors) != 5 || len(sc.SubSlots) != 3 {
		t.Fatalf("expected 5 anchors and 3 sub slots, got %d and %d", len(sc.Anchors), len(sc.SubSlots))
	}
	if p := sessionPlayer(t, s, "p1"); !p.Goalie {
		t.Fatalf("expected futsal keeper flagged as goalie")
	}

	if !s.Undo() {
		t.Fatalf("expected undo to succeed")
	}
	if sc.Game != board.GameSoccer || len(sc.Players) != 16 || len(sc.Anchors) != 11 {
		t.Fatalf("expected undo to restore the soccer squad, got game %v with %d players and %d anchors",
			sc.Game, len(sc.Players), len(sc.Anchors))
	}
}

func TestStrokesAccumulateAndClear(t *testing.T) {
	s := newTestSession(t)
	cb := s.Callbacks()

	cb.StrokeStart(board.Point{X: 0.1, Y: 0.1})
	cb.StrokeAddPoint(board.Point{X: 0.2, Y: 0.2})
	cb.StrokeEnd()

	sc := s.Scene()
	if len(sc.Strokes) != 1 || len(sc.Strokes[0].Points) != 2 {
		t.Fatalf("expected one stroke with two points, got %+v", sc.Strokes)
	}
	if got := s.UndoDepth(); got != 1 {
		t.Fatalf("expected the stroke to book one undo step, got %d", got)
	}

	s.ClearStrokes()
	if len(sc.Strokes) != 0 {
		t.Fatalf("expected strokes cleared, got %d", len(sc.Strokes))
	}
	if !s.Undo() {
		t.Fatalf("expected undo to succeed")
	}
	if len(s.Scene().Strokes) != 1 || len(s.Scene().Strokes[0].Points) != 2 {
		t.Fatalf("expected undo to bring the stroke back, got %+v", s.Scene().Strokes)
	}
}

func TestClearStrokesWithoutStrokesBooksNothing(t *testing.T) {
	s := newTestSession(t)
	s.ClearStrokes()
	if got := s.UndoDepth(); got != 0 {
		t.Fatalf("expected clearing an empty canvas to book no undo step, got %d", got)
	}
}

func TestDropFromExternalSeatsBenchedPlayer(t *testing.T) {
	s := newTestSession(t)
	cb := s.Callbacks()

	cb.RemovePlayer("p9")
	cb.DropFromExternal("p9", 0.4, 0.4)

	p := sessionPlayer(t, s, "p9")
	if p.Pos == nil || p.Pos.X != 0.4 || p.Pos.Y != 0.4 {
		t.Fatalf("expected p9 placed at the drop point, got %+v", p.Pos)
	}
	if got := len(s.BenchedPlayers()); got != 0 {
		t.Fatalf("expected an empty bench after the drop, got %d", got)
	}
}

func TestSummaryTextShowsRolesAndBench(t *testing.T) {
	s := newTestSession(t)
	s.Callbacks().RemovePlayer("p16")

	txt := s.SummaryText()
	if !strings.Contains(txt, "4-4-2 (soccer)") {
		t.Fatalf("expected the header to name the formation, got:\n%s", txt)
	}
	if !strings.Contains(txt, "GK") || !strings.Contains(txt, "RM") {
		t.Fatalf("expected role labels in the summary, got:\n%s", txt)
	}
	if !strings.Contains(txt, "Bench: P16") {
		t.Fatalf("expected the bench line to list P16, got:\n%s", txt)
	}
}

func TestUndoWithEmptyHistory(t *testing.T) {
	s := newTestSession(t)
	if s.Undo() {
		t.Fatalf("expected undo with no history to report false")
	}
}
