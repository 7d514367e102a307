package board

import (
	"io"
	"log/slog"
	"time"
)

// BoardSim drives a Board through scripted input frames with no display
// attached. It plays the host role: every callback the board fires is
// recorded in Log and applied to Scene the way a real host would, so a
// test can run a gesture sequence and assert both the callback traffic
// and the resulting scene. The clock is simulated; double-tap timing is
// controlled with Advance.
//
// The sim sets the board's logical size directly and never allocates a
// drawing surface, so it runs headlessly (tests, the report tool).
type BoardSim struct {
	B     *Board
	Scene *Scene
	Log   *CallLog

	now time.Time

	mouseX, mouseY float64
	mouseDown      bool
	mouseInside    bool
	touches        []Touch
}

type simOptKind int

const (
	optClock simOptKind = iota
	optLayout
	optScene
)

// SimOption configures a BoardSim. Options apply in a fixed order
// (clock, then layout, then scene edits) whatever order they are passed
// in.
type SimOption struct {
	kind simOptKind
	fn   func(*BoardSim)
}

// WithSimStart sets the simulated clock's starting instant.
func WithSimStart(t time.Time) SimOption {
	return SimOption{kind: optClock, fn: func(s *BoardSim) { s.now = t }}
}

// WithSimLayout sets the board's logical size and scale.
func WithSimLayout(w, h int, scale float64) SimOption {
	return SimOption{kind: optLayout, fn: func(s *BoardSim) {
		s.B.w, s.B.h = w, h
		s.B.scale = scale
	}}
}

// WithScene edits the scene before the run starts.
func WithScene(mut func(*Scene)) SimOption {
	return SimOption{kind: optScene, fn: func(s *BoardSim) {
		if mut != nil {
			mut(s.Scene)
		}
	}}
}

// NewBoardSim builds a sim with a 300x300 logical board at scale 1 and
// an empty scene on the normal view.
func NewBoardSim(opts ...SimOption) *BoardSim {
	s := &BoardSim{
		Scene:       &Scene{},
		Log:         &CallLog{},
		now:         time.Unix(1700000000, 0),
		mouseInside: true,
	}
	s.B = New(s.hostCallbacks(),
		WithClock(func() time.Time { return s.now }),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	s.B.w, s.B.h = 300, 300
	s.B.scale = 1
	for _, k := range []simOptKind{optClock, optLayout, optScene} {
		for _, o := range opts {
			if o.kind == k && o.fn != nil {
				o.fn(s)
			}
		}
	}
	return s
}

// Advance moves the simulated clock forward.
func (s *BoardSim) Advance(d time.Duration) {
	s.now = s.now.Add(d)
}

// Frame feeds the current pointer state through the board once.
func (s *BoardSim) Frame() {
	in := InputFrame{
		MouseX:       s.mouseX,
		MouseY:       s.mouseY,
		MousePressed: s.mouseDown,
		MouseInside:  s.mouseInside,
		Touches:      append([]Touch(nil), s.touches...),
	}
	s.B.HandleInput(s.Scene, in)
}

// Idle runs one frame with no contact, releasing anything held.
func (s *BoardSim) Idle() {
	s.mouseDown = false
	s.touches = nil
	s.Frame()
}

func (s *BoardSim) MouseDown(x, y float64) {
	s.mouseX, s.mouseY = x, y
	s.mouseDown = true
	s.mouseInside = true
	s.Frame()
}

func (s *BoardSim) MouseMove(x, y float64) {
	s.mouseX, s.mouseY = x, y
	s.Frame()
}

func (s *BoardSim) MouseUp(x, y float64) {
	s.mouseX, s.mouseY = x, y
	s.mouseDown = false
	s.Frame()
}

// MouseLeave runs a frame with the cursor outside the board, button
// state unchanged.
func (s *BoardSim) MouseLeave() {
	s.mouseInside = false
	s.Frame()
}

// MouseClick is a press and release at the same point.
func (s *BoardSim) MouseClick(x, y float64) {
	s.MouseDown(x, y)
	s.MouseUp(x, y)
}

func (s *BoardSim) TouchDown(id int, x, y float64) {
	s.touches = append(s.touches, Touch{ID: id, X: x, Y: y})
	s.Frame()
}

func (s *BoardSim) TouchMove(id int, x, y float64) {
	for i := range s.touches {
		if s.touches[i].ID == id {
			s.touches[i].X, s.touches[i].Y = x, y
			break
		}
	}
	s.Frame()
}

func (s *BoardSim) TouchUp(id int) {
	kept := s.touches[:0]
	for _, t := range s.touches {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.touches = kept
	s.Frame()
}

// TouchTap is a press and release without movement.
func (s *BoardSim) TouchTap(id int, x, y float64) {
	s.TouchDown(id, x, y)
	s.TouchUp(id)
}

func (s *BoardSim) playerByID(id string) *Player {
	for i := range s.Scene.Players {
		if s.Scene.Players[i].ID == id {
			return &s.Scene.Players[i]
		}
	}
	return nil
}

// hostCallbacks records every callback and applies it to the scene the
// way the real host does: moves update positions, removals bench
// players and delete opponents and discs, the home disc toggles its
// kind, strokes accumulate.
func (s *BoardSim) hostCallbacks() Callbacks {
	return Callbacks{
		MovePlayer: func(id string, x, y float64) {
			s.Log.add("MovePlayer", id, x, y)
			if p := s.playerByID(id); p != nil {
				p.Pos = &Point{X: x, Y: y}
			}
		},
		PlayerMoveEnd: func() { s.Log.add("PlayerMoveEnd", "", 0, 0) },
		MoveOpponent: func(id string, x, y float64) {
			s.Log.add("MoveOpponent", id, x, y)
			for i := range s.Scene.Opponents {
				if s.Scene.Opponents[i].ID == id {
					s.Scene.Opponents[i].Pos = Point{X: x, Y: y}
				}
			}
		},
		OpponentMoveEnd: func() { s.Log.add("OpponentMoveEnd", "", 0, 0) },
		MoveDisc: func(id string, x, y float64) {
			s.Log.add("MoveDisc", id, x, y)
			for i := range s.Scene.Discs {
				if s.Scene.Discs[i].ID == id {
					s.Scene.Discs[i].Pos = Point{X: x, Y: y}
				}
			}
		},
		DiscMoveEnd: func() { s.Log.add("DiscMoveEnd", "", 0, 0) },
		MoveBall: func(x, y float64) {
			s.Log.add("MoveBall", "", x, y)
			s.Scene.Ball = &Point{X: x, Y: y}
		},
		BallMoveEnd: func() { s.Log.add("BallMoveEnd", "", 0, 0) },
		RemovePlayer: func(id string) {
			s.Log.add("RemovePlayer", id, 0, 0)
			if p := s.playerByID(id); p != nil {
				p.Pos = nil
			}
		},
		RemoveOpponent: func(id string) {
			s.Log.add("RemoveOpponent", id, 0, 0)
			kept := s.Scene.Opponents[:0]
			for _, o := range s.Scene.Opponents {
				if o.ID != id {
					kept = append(kept, o)
				}
			}
			s.Scene.Opponents = kept
		},
		RemoveDisc: func(id string) {
			s.Log.add("RemoveDisc", id, 0, 0)
			kept := s.Scene.Discs[:0]
			for _, d := range s.Scene.Discs {
				if d.ID != id {
					kept = append(kept, d)
				}
			}
			s.Scene.Discs = kept
		},
		ToggleDisc: func(id string) {
			s.Log.add("ToggleDisc", id, 0, 0)
			for i := range s.Scene.Discs {
				if s.Scene.Discs[i].ID == id {
					if s.Scene.Discs[i].Kind == DiscHome {
						s.Scene.Discs[i].Kind = DiscGoalie
					} else {
						s.Scene.Discs[i].Kind = DiscHome
					}
				}
			}
		},
		StrokeStart: func(p Point) {
			s.Log.add("StrokeStart", "", p.X, p.Y)
			s.Scene.Strokes = append(s.Scene.Strokes, Stroke{Points: []Point{p}})
		},
		StrokeAddPoint: func(p Point) {
			s.Log.add("StrokeAddPoint", "", p.X, p.Y)
			if n := len(s.Scene.Strokes); n > 0 {
				st := &s.Scene.Strokes[n-1]
				st.Points = append(st.Points, p)
			}
		},
		StrokeEnd: func() { s.Log.add("StrokeEnd", "", 0, 0) },
		SwapPlayers: func(a, b string) {
			s.Log.add("SwapPlayers", a+":"+b, 0, 0)
			pa, pb := s.playerByID(a), s.playerByID(b)
			if pa != nil && pb != nil {
				pa.Pos, pb.Pos = pb.Pos, pa.Pos
			}
		},
		DropFromExternal: func(id string, x, y float64) {
			s.Log.add("DropFromExternal", id, x, y)
			if p := s.playerByID(id); p != nil {
				p.Pos = &Point{X: x, Y: y}
			}
		},
	}
}

// CallRecord is one observed callback. ID doubles as the pair "a:b" for
// SwapPlayers.
type CallRecord struct {
	Name string
	ID   string
	X, Y float64
}

// CallLog accumulates callback observations in firing order.
type CallLog struct {
	Calls []CallRecord
}

func (l *CallLog) add(name, id string, x, y float64) {
	l.Calls = append(l.Calls, CallRecord{Name: name, ID: id, X: x, Y: y})
}

// Count returns how many calls with the given name were recorded.
func (l *CallLog) Count(name string) int {
	n := 0
	for _, c := range l.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Last returns the most recent call with the given name.
func (l *CallLog) Last(name string) (CallRecord, bool) {
	for i := len(l.Calls) - 1; i >= 0; i-- {
		if l.Calls[i].Name == name {
			return l.Calls[i], true
		}
	}
	return CallRecord{}, false
}

// Names returns the recorded call names in order.
func (l *CallLog) Names() []string {
	out := make([]string, len(l.Calls))
	for i, c := range l.Calls {
		out[i] = c.Name
	}
	return out
}

// Reset forgets everything recorded so far.
func (l *CallLog) Reset() {
	l.Calls = l.Calls[:0]
}
