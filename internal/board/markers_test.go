package board

import "testing"

func TestMarkerRadiusScalesWithShortSide(t *testing.T) {
	if got := markerRadius(300, 300); got != 13.5 {
		t.Fatalf("expected 13.5 on a 300px board, got %v", got)
	}
	if got := markerRadius(800, 300); got != 13.5 {
		t.Fatalf("radius should follow the short side, got %v", got)
	}
	if got := markerRadius(100, 100); got != minMarkerRadius {
		t.Fatalf("tiny boards should clamp to %v, got %v", minMarkerRadius, got)
	}
}

func TestPlayerFillPrecedence(t *testing.T) {
	p := &Player{ID: "p1", Pos: &Point{X: 0.5, Y: 0.5}}
	if got := playerFill(p); got != defaultPlayerColour {
		t.Fatalf("unset colour should fall back to the default, got %v", got)
	}

	p.Color = opponentColour
	if got := playerFill(p); got != opponentColour {
		t.Fatalf("explicit colour should win, got %v", got)
	}

	p.Goalie = true
	if got := playerFill(p); got != goalieColour {
		t.Fatalf("goalie colour should override, got %v", got)
	}
}

func TestSidelinePlayersDesaturate(t *testing.T) {
	on := &Player{ID: "p1", Pos: &Point{X: 0.5, Y: 0.5}}
	off := &Player{ID: "p1", Pos: &Point{X: SidelineBandX, Y: 0.5}}
	if playerFill(on) == playerFill(off) {
		t.Fatal("a player in the sideline band should render washed out")
	}
	d := desaturate(defaultPlayerColour)
	if d.A != defaultPlayerColour.A {
		t.Fatal("desaturation must not change alpha")
	}
}

func TestDiscColourPerKind(t *testing.T) {
	if discColour(DiscHome) == discColour(DiscOpponent) {
		t.Fatal("home and opponent discs should differ")
	}
	if discColour(DiscGoalie) == discColour(DiscOpponent) {
		t.Fatal("goalie and opponent discs should differ")
	}
}
