package board

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// ViewMode selects which layer set the board presents.
type ViewMode int

const (
	ViewNormal  ViewMode = iota // players, opponents, formation furniture
	ViewTactics                 // tactical discs, ball, freehand drawing
	viewModeCount
)

func (v ViewMode) String() string {
	switch v {
	case ViewNormal:
		return "normal"
	case ViewTactics:
		return "tactics"
	}
	return "unknown"
}

// GameType selects the pitch markings and dimensions.
type GameType int

const (
	GameSoccer GameType = iota // full-size 11-a-side pitch
	GameFutsal                 // futsal court
	gameTypeCount
)

func (g GameType) String() string {
	switch g {
	case GameSoccer:
		return "soccer"
	case GameFutsal:
		return "futsal"
	}
	return "unknown"
}

// DiscKind is the role colouring of a tactical disc.
type DiscKind int

const (
	DiscHome     DiscKind = iota // own team
	DiscOpponent                 // opposition
	DiscGoalie                   // keeper marker
	discKindCount
)

func (d DiscKind) String() string {
	switch d {
	case DiscHome:
		return "home"
	case DiscOpponent:
		return "opponent"
	case DiscGoalie:
		return "goalie"
	}
	return "unknown"
}

// Player is a roster member. Pos is nil while the player is on the bench;
// a non-nil Pos always has both axes set (positions are never partial).
type Player struct {
	ID       string
	Name     string
	Nickname string
	Pos      *Point
	Color    color.RGBA
	Goalie   bool
}

// DisplayName prefers the nickname for on-disc labels.
func (p Player) DisplayName() string {
	if p.Nickname != "" {
		return p.Nickname
	}
	return p.Name
}

// Opponent is an opposition marker. It only exists while placed on field,
// so its position is always defined.
type Opponent struct {
	ID  string
	Pos Point
}

// TacticalDisc is an anonymous marker used on the tactics view.
type TacticalDisc struct {
	ID   string
	Pos  Point
	Kind DiscKind
}

// Stroke is one continuous freehand drawing: an ordered vertex list.
// The stroke layer renders in insertion order, earliest first.
type Stroke struct {
	Points []Point
}

// Anchor is a valid on-field position for the active formation, with the
// role abbreviation shown next to a player occupying it.
type Anchor struct {
	Pos   Point
	Label string
}

// SubSlot is a labelled substitute slot on the sideline band.
type SubSlot struct {
	Pos   Point
	Label string
}

// Scene is the host-owned content of the board for one frame. The board
// only reads it; every mutation goes back to the host through Callbacks.
type Scene struct {
	Players   []Player
	Opponents []Opponent
	Discs     []TacticalDisc
	Strokes   []Stroke
	Anchors   []Anchor
	SubSlots  []SubSlot

	// Ball is nil while no ball has been placed. BallImage nil means the
	// ball texture is unavailable and ball rendering is skipped.
	Ball      *Point
	BallImage *ebiten.Image

	View      ViewMode
	Game      GameType
	Drawing   bool // freehand drawing enabled
	ShowNames bool // engraved name labels under player discs
}

// SidelineBandX is the relative X beyond which a position counts as the
// sideline band: placed players render desaturated there, and formation
// indicators are suppressed for anchors inside it. Hosts lay substitute
// slots out in this band.
const SidelineBandX = 0.94

// occupyThreshold is the per-axis relative distance inside which a player
// counts as occupying a position. Both axes must be inside independently.
const occupyThreshold = 0.04

// IsOccupied reports whether any placed player sits on (x,y) within
// threshold on both axes. A player near on one axis only does not count.
// exceptID exempts the player being moved so it never blocks itself.
func IsOccupied(players []Player, x, y, threshold float64, exceptID string) bool {
	for i := range players {
		p := &players[i]
		if p.Pos == nil || p.ID == exceptID {
			continue
		}
		if absf(p.Pos.X-x) < threshold && absf(p.Pos.Y-y) < threshold {
			return true
		}
	}
	return false
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
