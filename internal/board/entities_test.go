package board

import "testing"

func TestIsOccupiedChecksEachAxisIndependently(t *testing.T) {
	players := []Player{
		{ID: "p1", Pos: &Point{X: 0.5, Y: 0.5}},
	}
	// Close on X but far on Y: both axes must be inside the threshold.
	if IsOccupied(players, 0.52, 0.6, occupyThreshold, "") {
		t.Fatal("slot far away on Y reported occupied")
	}
	if !IsOccupied(players, 0.52, 0.52, occupyThreshold, "") {
		t.Fatal("slot within threshold on both axes reported free")
	}
}

func TestIsOccupiedThresholdIsExclusive(t *testing.T) {
	players := []Player{{ID: "p1", Pos: &Point{X: 0.5, Y: 0.5}}}
	if IsOccupied(players, 0.54, 0.5, 0.04, "") {
		t.Fatal("delta exactly at threshold should not count as occupied")
	}
	if !IsOccupied(players, 0.539, 0.5, 0.04, "") {
		t.Fatal("delta just inside threshold should count as occupied")
	}
}

func TestIsOccupiedSkipsBenchedAndExcepted(t *testing.T) {
	players := []Player{
		{ID: "bench"},
		{ID: "self", Pos: &Point{X: 0.5, Y: 0.5}},
	}
	if IsOccupied(players, 0.5, 0.5, occupyThreshold, "self") {
		t.Fatal("excepted player should not occupy")
	}
	if IsOccupied(players[:1], 0.5, 0.5, occupyThreshold, "") {
		t.Fatal("benched player should not occupy")
	}
}

func TestDisplayNamePrefersNickname(t *testing.T) {
	p := Player{Name: "Alexandra", Nickname: "Alex"}
	if got := p.DisplayName(); got != "Alex" {
		t.Fatalf("expected nickname, got %q", got)
	}
	p.Nickname = ""
	if got := p.DisplayName(); got != "Alexandra" {
		t.Fatalf("expected full name, got %q", got)
	}
}

func TestEnumStrings(t *testing.T) {
	if ViewNormal.String() == ViewTactics.String() {
		t.Fatal("view modes should stringify distinctly")
	}
	if GameSoccer.String() == GameFutsal.String() {
		t.Fatal("game types should stringify distinctly")
	}
	if DiscHome.String() == DiscOpponent.String() || DiscOpponent.String() == DiscGoalie.String() {
		t.Fatal("disc kinds should stringify distinctly")
	}
}
