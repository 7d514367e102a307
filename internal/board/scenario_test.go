package board

import (
	"testing"
	"time"
)

// TestMatchdaySessionFlow drives one end-to-end coaching session through
// the gesture engine: reposition the striker, swap the wide players,
// clear an opponent marker, bring a substitute on, park a winger on the
// bench slot, then annotate the tactics view. Narrated with t.Log so a
// failure points at the phase that broke.
func TestMatchdaySessionFlow(t *testing.T) {
	s := NewBoardSim(
		WithSimLayout(400, 400, 1),
		WithScene(func(sc *Scene) {
			sc.Players = []Player{
				{ID: "gk", Name: "Sam", Goalie: true, Pos: &Point{X: 0.07, Y: 0.5}},
				fieldPlayer("p9", 0.5, 0.5),
				fieldPlayer("p7", 0.25, 0.6),
				fieldPlayer("p8", 0.75, 0.6),
				{ID: "p10", Name: "p10"},
			}
			sc.Anchors = []Anchor{
				{Pos: Point{X: 0.07, Y: 0.5}, Label: "GK"},
				{Pos: Point{X: 0.5, Y: 0.3}, Label: "ST"},
			}
			sc.SubSlots = []SubSlot{{Pos: Point{X: 0.96, Y: 0.25}, Label: "S1"}}
			sc.Opponents = []Opponent{{ID: "o1", Pos: Point{X: 0.4, Y: 0.4}}}
			sc.Discs = []TacticalDisc{{ID: "d1", Pos: Point{X: 0.7, Y: 0.7}, Kind: DiscHome}}
			sc.Ball = &Point{X: 0.5, Y: 0.5}
		}),
	)

	t.Log("drag the striker onto the open ST anchor")
	s.MouseDown(200, 200)
	s.MouseMove(201, 160)
	s.MouseMove(202, 124)
	s.MouseUp(202, 124)
	if p := s.playerByID("p9"); p.Pos.X != 0.5 || p.Pos.Y != 0.3 {
		t.Fatalf("striker should have snapped to the anchor, at %+v", p.Pos)
	}

	t.Log("swap the wide players tap by tap")
	s.Advance(time.Second)
	s.MouseClick(100, 240)
	s.Advance(500 * time.Millisecond)
	s.MouseClick(300, 240)
	if p := s.playerByID("p7"); p.Pos.X != 0.75 {
		t.Fatalf("p7 should hold the right side after the swap, at x=%v", p.Pos.X)
	}

	t.Log("double tap clears the opponent marker")
	s.Advance(time.Second)
	s.MouseClick(160, 160)
	s.Advance(150 * time.Millisecond)
	s.MouseClick(160, 160)
	if len(s.Scene.Opponents) != 0 {
		t.Fatalf("opponent should be removed, %d left", len(s.Scene.Opponents))
	}

	t.Log("bring the substitute on from the roster")
	s.Advance(time.Second)
	s.B.ArmPlacement("p10")
	s.MouseDown(80, 320)
	s.MouseUp(80, 320)
	if p := s.playerByID("p10"); p.Pos == nil || p.Pos.X != 0.2 || p.Pos.Y != 0.8 {
		t.Fatalf("substitute should land at (0.2, 0.8), got %+v", p.Pos)
	}

	t.Log("park the swapped winger on the bench slot")
	s.Advance(time.Second)
	s.MouseDown(300, 240)
	s.MouseMove(340, 180)
	s.MouseMove(380, 102)
	s.MouseUp(380, 102)
	if p := s.playerByID("p7"); p.Pos.X != 0.96 || p.Pos.Y != 0.25 {
		t.Fatalf("winger should snap onto the sub slot, at %+v", p.Pos)
	}

	t.Log("annotate the tactics view")
	s.Scene.View = ViewTactics
	s.Scene.Drawing = true
	s.Advance(time.Second)
	s.MouseDown(40, 40)
	s.MouseMove(60, 80)
	s.MouseMove(90, 120)
	s.MouseUp(90, 120)
	s.Scene.Drawing = false
	if len(s.Scene.Strokes) != 1 || len(s.Scene.Strokes[0].Points) != 3 {
		t.Fatalf("expected one three-point stroke, got %+v", s.Scene.Strokes)
	}

	t.Log("move the ball and flip the home disc")
	s.MouseDown(200, 200)
	s.MouseMove(240, 160)
	s.MouseUp(240, 160)
	if s.Scene.Ball.X != 0.6 || s.Scene.Ball.Y != 0.4 {
		t.Fatalf("ball should sit at (0.6, 0.4), got %+v", s.Scene.Ball)
	}
	s.Advance(time.Second)
	s.MouseClick(280, 280)
	s.Advance(150 * time.Millisecond)
	s.MouseClick(280, 280)
	if s.Scene.Discs[0].Kind != DiscGoalie {
		t.Fatalf("home disc should have toggled, kind %v", s.Scene.Discs[0].Kind)
	}

	if got := s.Log.Count("PlayerMoveEnd"); got != 2 {
		t.Fatalf("two player drags concluded, got %d ends", got)
	}
	if got := s.Log.Count("BallMoveEnd"); got != 1 {
		t.Fatalf("one ball drag concluded, got %d ends", got)
	}
	if got := s.Log.Count("StrokeEnd"); got != 1 {
		t.Fatalf("one stroke concluded, got %d ends", got)
	}
}
