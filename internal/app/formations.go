package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Garsondee/Pitch-Sense/internal/board"
)

// FormationAnchor is one named position in a formation, in relative
// field coordinates with the defended goal at the bottom.
type FormationAnchor struct {
	Label string  `yaml:"label"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
}

// Formation is a named set of anchor positions for one game type.
type Formation struct {
	Name    string            `yaml:"name"`
	Game    string            `yaml:"game"` // "soccer" or "futsal"
	Anchors []FormationAnchor `yaml:"anchors"`
}

// GameType parses the formation's game field.
func (f Formation) GameType() (board.GameType, error) {
	return ParseGameType(f.Game)
}

// ParseGameType maps the config spelling of a game type onto the board
// enum.
func ParseGameType(s string) (board.GameType, error) {
	switch s {
	case "", "soccer":
		return board.GameSoccer, nil
	case "futsal":
		return board.GameFutsal, nil
	}
	return board.GameSoccer, fmt.Errorf("unknown game type %q", s)
}

// GameTypeName is the config spelling for a board game type.
func GameTypeName(g board.GameType) string {
	if g == board.GameFutsal {
		return "futsal"
	}
	return "soccer"
}

// Validate checks a formation is usable: named, a known game type, and
// every anchor labelled and on the field.
func (f Formation) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("formation has no name")
	}
	if _, err := f.GameType(); err != nil {
		return fmt.Errorf("formation %q: %w", f.Name, err)
	}
	if len(f.Anchors) == 0 {
		return fmt.Errorf("formation %q has no anchors", f.Name)
	}
	for i, a := range f.Anchors {
		if a.Label == "" {
			return fmt.Errorf("formation %q: anchor %d has no label", f.Name, i)
		}
		if a.X < 0 || a.X > 1 || a.Y < 0 || a.Y > 1 {
			return fmt.Errorf("formation %q: anchor %q at (%v, %v) is off the field", f.Name, a.Label, a.X, a.Y)
		}
	}
	return nil
}

// BoardAnchors converts the formation into the board's anchor list.
func (f Formation) BoardAnchors() []board.Anchor {
	out := make([]board.Anchor, 0, len(f.Anchors))
	for _, a := range f.Anchors {
		out = append(out, board.Anchor{Pos: board.Point{X: a.X, Y: a.Y}, Label: a.Label})
	}
	return out
}

// BenchSlots lays out n substitute slots down the right sideline band.
func BenchSlots(n int) []board.SubSlot {
	out := make([]board.SubSlot, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, board.SubSlot{
			Pos:   board.Point{X: 0.96, Y: 0.16 + 0.13*float64(i)},
			Label: fmt.Sprintf("S%d", i+1),
		})
	}
	return out
}

// BuiltinFormations returns the stock library: three eleven-a-side
// shapes and two futsal shapes, keeper at the bottom, attacking up.
func BuiltinFormations() []Formation {
	return []Formation{
		{
			Name: "4-4-2", Game: "soccer",
			Anchors: []FormationAnchor{
				{Label: "GK", X: 0.5, Y: 0.93},
				{Label: "LB", X: 0.16, Y: 0.76}, {Label: "CB", X: 0.38, Y: 0.78},
				{Label: "CB", X: 0.62, Y: 0.78}, {Label: "RB", X: 0.84, Y: 0.76},
				{Label: "LM", X: 0.16, Y: 0.55}, {Label: "CM", X: 0.38, Y: 0.57},
				{Label: "CM", X: 0.62, Y: 0.57}, {Label: "RM", X: 0.84, Y: 0.55},
				{Label: "ST", X: 0.38, Y: 0.34}, {Label: "ST", X: 0.62, Y: 0.34},
			},
		},
		{
			Name: "4-3-3", Game: "soccer",
			Anchors: []FormationAnchor{
				{Label: "GK", X: 0.5, Y: 0.93},
				{Label: "LB", X: 0.16, Y: 0.76}, {Label: "CB", X: 0.38, Y: 0.78},
				{Label: "CB", X: 0.62, Y: 0.78}, {Label: "RB", X: 0.84, Y: 0.76},
				{Label: "CM", X: 0.28, Y: 0.56}, {Label: "CM", X: 0.5, Y: 0.60},
				{Label: "CM", X: 0.72, Y: 0.56},
				{Label: "LW", X: 0.18, Y: 0.34}, {Label: "ST", X: 0.5, Y: 0.30},
				{Label: "RW", X: 0.82, Y: 0.34},
			},
		},
		{
			Name: "3-5-2", Game: "soccer",
			Anchors: []FormationAnchor{
				{Label: "GK", X: 0.5, Y: 0.93},
				{Label: "CB", X: 0.26, Y: 0.78}, {Label: "CB", X: 0.5, Y: 0.80},
				{Label: "CB", X: 0.74, Y: 0.78},
				{Label: "LWB", X: 0.10, Y: 0.58}, {Label: "CM", X: 0.34, Y: 0.58},
				{Label: "CM", X: 0.5, Y: 0.62}, {Label: "CM", X: 0.66, Y: 0.58},
				{Label: "RWB", X: 0.90, Y: 0.58},
				{Label: "ST", X: 0.40, Y: 0.34}, {Label: "ST", X: 0.60, Y: 0.34},
			},
		},
		{
			Name: "2-2", Game: "futsal",
			Anchors: []FormationAnchor{
				{Label: "GK", X: 0.5, Y: 0.92},
				{Label: "FX", X: 0.32, Y: 0.68}, {Label: "FX", X: 0.68, Y: 0.68},
				{Label: "ALA", X: 0.32, Y: 0.34}, {Label: "ALA", X: 0.68, Y: 0.34},
			},
		},
		{
			Name: "1-2-1", Game: "futsal",
			Anchors: []FormationAnchor{
				{Label: "GK", X: 0.5, Y: 0.92},
				{Label: "FX", X: 0.5, Y: 0.70},
				{Label: "ALA", X: 0.24, Y: 0.50}, {Label: "ALA", X: 0.76, Y: 0.50},
				{Label: "PV", X: 0.5, Y: 0.28},
			},
		},
	}
}

// formationFile is the on-disk shape of a formation library override.
type formationFile struct {
	Formations []Formation `yaml:"formations"`
}

// LoadFormations merges a YAML library file over the builtins: entries
// sharing a name and game type replace the stock shape, new entries
// append. An empty path returns the builtins unchanged.
func LoadFormations(path string) ([]Formation, error) {
	out := BuiltinFormations()
	if path == "" {
		return out, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read formation file: %w", err)
	}
	var file formationFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse formation file %s: %w", path, err)
	}
	for _, f := range file.Formations {
		if err := f.Validate(); err != nil {
			return nil, fmt.Errorf("formation file %s: %w", path, err)
		}
		replaced := false
		for i := range out {
			if out[i].Name == f.Name && out[i].Game == f.Game {
				out[i] = f
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, f)
		}
	}
	return out, nil
}

// FormationsForGame filters the library down to one game type.
func FormationsForGame(all []Formation, g board.GameType) []Formation {
	var out []Formation
	for _, f := range all {
		if gt, err := f.GameType(); err == nil && gt == g {
			out = append(out, f)
		}
	}
	return out
}

// FindFormation looks a formation up by name, preferring the given game
// type when names collide across games.
func FindFormation(all []Formation, name string, g board.GameType) (Formation, bool) {
	for _, f := range all {
		if f.Name == name {
			if gt, err := f.GameType(); err == nil && gt == g {
				return f, true
			}
		}
	}
	for _, f := range all {
		if f.Name == name {
			return f, true
		}
	}
	return Formation{}, false
}
