package board

import "testing"

func snapScene(anchors ...Point) *Scene {
	sc := &Scene{}
	for i, p := range anchors {
		sc.Anchors = append(sc.Anchors, Anchor{Pos: p, Label: []string{"LB", "CB", "RB", "CM"}[i%4]})
	}
	return sc
}

func TestSnapPullsReleaseOntoNearbyAnchor(t *testing.T) {
	sc := snapScene(Point{X: 0.5, Y: 0.75})
	// On a 300x300 board the anchor sits at pixel (150, 225); a release
	// a pixel off lands exactly on it.
	got, ok := snapPosition(sc, "p1", 151, 226, 300, 300)
	if !ok {
		t.Fatal("snap resolution failed")
	}
	if got.X != 0.5 || got.Y != 0.75 {
		t.Fatalf("expected snap to (0.5, 0.75), got (%v, %v)", got.X, got.Y)
	}
}

func TestSnapRadiusIsInclusive(t *testing.T) {
	sc := snapScene(Point{X: 0.5, Y: 0.5})
	got, ok := snapPosition(sc, "p1", 150+snapRadius, 150, 300, 300)
	if !ok || got.X != 0.5 || got.Y != 0.5 {
		t.Fatalf("release exactly %v px away should still snap, got (%v, %v)", snapRadius, got.X, got.Y)
	}
	got, ok = snapPosition(sc, "p1", 150+snapRadius+0.5, 150, 300, 300)
	if !ok {
		t.Fatal("snap resolution failed")
	}
	if got.X == 0.5 && got.Y == 0.5 {
		t.Fatal("release beyond the radius should keep the release point")
	}
}

func TestSnapKeepsReleasePointWhenNothingNear(t *testing.T) {
	sc := snapScene(Point{X: 0.9, Y: 0.9})
	got, ok := snapPosition(sc, "p1", 30, 60, 300, 300)
	if !ok {
		t.Fatal("snap resolution failed")
	}
	if got.X != 0.1 || got.Y != 0.2 {
		t.Fatalf("expected the clamped release point (0.1, 0.2), got (%v, %v)", got.X, got.Y)
	}
}

func TestSnapPrefersNearestCandidate(t *testing.T) {
	sc := snapScene(Point{X: 0.5, Y: 0.5}, Point{X: 0.6, Y: 0.5})
	// Release between the two, slightly nearer the second.
	got, _ := snapPosition(sc, "p1", 170, 150, 300, 300)
	if got.X != 0.6 {
		t.Fatalf("expected nearest anchor at x=0.6, got x=%v", got.X)
	}
}

func TestSnapSkipsOccupiedAnchor(t *testing.T) {
	sc := snapScene(Point{X: 0.5, Y: 0.75})
	sc.Players = []Player{
		{ID: "p1", Pos: &Point{X: 0.52, Y: 0.5}},
		{ID: "p2", Pos: &Point{X: 0.5, Y: 0.75}},
	}
	got, ok := snapPosition(sc, "p1", 151, 226, 300, 300)
	if !ok {
		t.Fatal("snap resolution failed")
	}
	if got.X == 0.5 && got.Y == 0.75 {
		t.Fatal("anchor held by another player should not attract a snap")
	}
}

func TestSnapIgnoresTheDraggedPlayerAsOccupant(t *testing.T) {
	// The dragged player's own last position hovers over the anchor;
	// they must still be allowed to settle back onto it.
	sc := snapScene(Point{X: 0.5, Y: 0.75})
	sc.Players = []Player{{ID: "p1", Pos: &Point{X: 0.503, Y: 0.753}}}
	got, ok := snapPosition(sc, "p1", 151, 226, 300, 300)
	if !ok || got.X != 0.5 || got.Y != 0.75 {
		t.Fatalf("self-occupied anchor should still snap, got (%v, %v)", got.X, got.Y)
	}
}

func TestSnapConsidersSubSlots(t *testing.T) {
	sc := &Scene{
		SubSlots: []SubSlot{{Pos: Point{X: 0.94, Y: 0.3}, Label: "S1"}},
	}
	got, ok := snapPosition(sc, "p1", 280, 92, 300, 300)
	if !ok || got.X != 0.94 || got.Y != 0.3 {
		t.Fatalf("expected snap onto the sub slot, got (%v, %v)", got.X, got.Y)
	}
}

func TestSnapFailsOnZeroArea(t *testing.T) {
	sc := snapScene(Point{X: 0.5, Y: 0.5})
	if _, ok := snapPosition(sc, "p1", 10, 10, 0, 0); ok {
		t.Fatal("zero-area board should not resolve a snap")
	}
}
