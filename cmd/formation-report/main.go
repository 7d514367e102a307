package main

import (
	"flag"
	"fmt"
	"math"
	"time"

	"github.com/Garsondee/Pitch-Sense/internal/app"
	"github.com/Garsondee/Pitch-Sense/internal/board"
)

// The report drives the real gesture engine headlessly: every sampled
// release point is an actual simulated drag, so the numbers reflect
// what the board does, not a reimplementation of its geometry.

type spacingStats struct {
	min float64
	avg float64
}

type coverage struct {
	samples  int
	snapped  int
	subSlots int
	captures map[string]int
}

type gestureCheck struct {
	ran      bool
	moves    int
	moveEnds int
	swapOK   bool
	removeOK bool
	snapOK   bool
}

func (g gestureCheck) pass() bool {
	return g.ran && g.moves > 0 && g.moveEnds == 2 && g.swapOK && g.removeOK && g.snapOK
}

func (g gestureCheck) passStr() string {
	if !g.ran {
		return "skipped"
	}
	if g.pass() {
		return "true"
	}
	return "false"
}

func main() {
	var name string
	var game string
	var w, h int
	var grid int
	var file string
	var csv bool

	flag.StringVar(&name, "formation", "", "report a single formation by name")
	flag.StringVar(&game, "game-type", "", "restrict to soccer or futsal")
	flag.IntVar(&w, "w", 400, "board width in logical pixels")
	flag.IntVar(&h, "h", 600, "board height in logical pixels")
	flag.IntVar(&grid, "grid", 24, "snap samples per axis")
	flag.StringVar(&file, "file", "", "formation library YAML to merge over builtins")
	flag.BoolVar(&csv, "csv", false, "emit one CSV line per formation instead of the report")
	flag.Parse()

	if w <= 0 || h <= 0 {
		fmt.Println("error: -w and -h must be > 0")
		return
	}
	if grid < 2 {
		fmt.Println("error: -grid must be >= 2")
		return
	}

	forms, err := app.LoadFormations(file)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	if game != "" {
		gt, err := app.ParseGameType(game)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
		forms = app.FormationsForGame(forms, gt)
	}
	if name != "" {
		var kept []app.Formation
		for _, f := range forms {
			if f.Name == name {
				kept = append(kept, f)
			}
		}
		forms = kept
	}
	if len(forms) == 0 {
		fmt.Println("error: no formations match the filters")
		return
	}

	if csv {
		fmt.Println("name,game,anchors,min_spacing_px,avg_spacing_px,samples,snapped,snap_pct,gesture_pass")
	} else {
		fmt.Printf("=== Formation Snap Report ===\n")
		fmt.Printf("board=%dx%d grid=%d formations=%d\n\n", w, h, grid, len(forms))
	}

	totalSamples, totalSnapped, passed := 0, 0, 0
	for _, f := range forms {
		sp := anchorSpacing(f, w, h)
		cov := snapCoverage(f, w, h, grid)
		gc := runGestureCheck(f, w, h)

		totalSamples += cov.samples
		totalSnapped += cov.snapped
		if gc.pass() {
			passed++
		}

		if csv {
			fmt.Printf("%s,%s,%d,%.1f,%.1f,%d,%d,%.1f,%s\n",
				f.Name, f.Game, len(f.Anchors), sp.min, sp.avg,
				cov.samples, cov.snapped, pct(cov.snapped, cov.samples), gc.passStr())
			continue
		}

		fmt.Printf("--- %s (%s) ---\n", f.Name, f.Game)
		fmt.Printf("anchors: n=%d min_spacing=%.1fpx avg_spacing=%.1fpx\n", len(f.Anchors), sp.min, sp.avg)
		for _, a := range f.Anchors {
			px, py := board.ToPixel(board.Point{X: a.X, Y: a.Y}, float64(w), float64(h))
			fmt.Printf("  %-4s (%.2f,%.2f) px=(%.0f,%.0f) captures=%d\n",
				a.Label, a.X, a.Y, px, py, cov.captures[a.Label])
		}
		fmt.Printf("snap_coverage: samples=%d snapped=%d (%.1f%%) subslot_captures=%d\n",
			cov.samples, cov.snapped, pct(cov.snapped, cov.samples), cov.subSlots)
		if gc.ran {
			fmt.Printf("gesture_check: moves=%d move_ends=%d swap=%s double_remove=%s snap_release=%s\n\n",
				gc.moves, gc.moveEnds, okStr(gc.swapOK), okStr(gc.removeOK), okStr(gc.snapOK))
		} else {
			fmt.Printf("gesture_check: skipped (needs 5 anchors)\n\n")
		}
	}

	if !csv {
		fmt.Printf("=== Aggregate ===\n")
		fmt.Printf("formations=%d samples=%d snapped=%d (%.1f%%) gesture_checks=%d/%d passed\n",
			len(forms), totalSamples, totalSnapped, pct(totalSnapped, totalSamples), passed, len(forms))
	}
}

func pct(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return 100 * float64(part) / float64(whole)
}

func okStr(ok bool) string {
	if ok {
		return "ok"
	}
	return "FAIL"
}

func benchFor(f app.Formation) int {
	if gt, err := f.GameType(); err == nil && gt == board.GameFutsal {
		return 3
	}
	return 5
}

// anchorSpacing reports the tightest pair and the mean nearest-neighbour
// distance, in pixels at the report board size.
func anchorSpacing(f app.Formation, w, h int) spacingStats {
	n := len(f.Anchors)
	if n < 2 {
		return spacingStats{}
	}
	px := make([][2]float64, n)
	for i, a := range f.Anchors {
		x, y := board.ToPixel(board.Point{X: a.X, Y: a.Y}, float64(w), float64(h))
		px[i] = [2]float64{x, y}
	}
	min := math.Inf(1)
	sumNearest := 0.0
	for i := 0; i < n; i++ {
		nearest := math.Inf(1)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			d := math.Hypot(px[i][0]-px[j][0], px[i][1]-px[j][1])
			if d < nearest {
				nearest = d
			}
			if d < min {
				min = d
			}
		}
		sumNearest += nearest
	}
	return spacingStats{min: min, avg: sumNearest / float64(n)}
}

// probeSim builds a sim with a single probe player seated on the first
// anchor and every other anchor vacant, so release points compete over
// the whole formation.
func probeSim(f app.Formation, w, h int) *board.BoardSim {
	gt, _ := f.GameType()
	return board.NewBoardSim(
		board.WithSimLayout(w, h, 1),
		board.WithScene(func(sc *board.Scene) {
			sc.Game = gt
			sc.Anchors = f.BoardAnchors()
			sc.SubSlots = app.BenchSlots(benchFor(f))
			a := f.Anchors[0]
			sc.Players = []board.Player{{ID: "probe", Name: "Probe", Pos: &board.Point{X: a.X, Y: a.Y}}}
		}),
	)
}

// snapCoverage drags the probe to every grid sample and counts releases
// the engine pulled onto an anchor or sub slot.
func snapCoverage(f app.Formation, w, h, grid int) coverage {
	cov := coverage{captures: map[string]int{}}
	anchors := f.BoardAnchors()
	slots := app.BenchSlots(benchFor(f))
	start := anchors[0].Pos

	for gy := 0; gy < grid; gy++ {
		for gx := 0; gx < grid; gx++ {
			sx := (float64(gx) + 0.5) * float64(w) / float64(grid)
			sy := (float64(gy) + 0.5) * float64(h) / float64(grid)

			sim := probeSim(f, w, h)
			px, py := board.ToPixel(start, float64(w), float64(h))
			if sx == px && sy == py {
				sx++
			}
			sim.MouseDown(px, py)
			sim.MouseMove(sx, sy)
			sim.MouseUp(sx, sy)

			cov.samples++
			rec, ok := sim.Log.Last("MovePlayer")
			if !ok {
				continue
			}
			matched := false
			for _, a := range anchors {
				if rec.X == a.Pos.X && rec.Y == a.Pos.Y {
					cov.snapped++
					cov.captures[a.Label]++
					matched = true
					break
				}
			}
			if matched {
				continue
			}
			for _, sl := range slots {
				if rec.X == sl.Pos.X && rec.Y == sl.Pos.Y {
					cov.snapped++
					cov.subSlots++
					break
				}
			}
		}
	}
	return cov
}

// fullSquadSim seats one player per anchor with the sub slots laid out
// but vacant, the occupancy the gesture check expects.
func fullSquadSim(f app.Formation, w, h int) *board.BoardSim {
	gt, _ := f.GameType()
	return board.NewBoardSim(
		board.WithSimLayout(w, h, 1),
		board.WithScene(func(sc *board.Scene) {
			sc.Game = gt
			sc.Anchors = f.BoardAnchors()
			sc.SubSlots = app.BenchSlots(benchFor(f))
			for i, a := range f.Anchors {
				sc.Players = append(sc.Players, board.Player{
					ID:  fmt.Sprintf("p%d", i+1),
					Pos: &board.Point{X: a.X, Y: a.Y},
				})
			}
		}),
	)
}

// runGestureCheck scripts the core interactions against a seated squad:
// a drag with one end event, a tap-select swap, a double-click removal,
// then a release near the vacated anchor that must snap onto it.
func runGestureCheck(f app.Formation, w, h int) gestureCheck {
	if len(f.Anchors) < 5 {
		return gestureCheck{}
	}
	sim := fullSquadSim(f, w, h)
	fw, fh := float64(w), float64(h)
	at := func(i int) (float64, float64) {
		return board.ToPixel(board.Point{X: f.Anchors[i].X, Y: f.Anchors[i].Y}, fw, fh)
	}

	// Drag the second seat to the middle of the board.
	x2, y2 := at(1)
	sim.MouseDown(x2, y2)
	sim.MouseMove(fw/2, fh/2)
	sim.MouseUp(fw/2, fh/2)
	sim.Advance(400 * time.Millisecond)

	// Tap two seated players to swap them.
	x3, y3 := at(2)
	x4, y4 := at(3)
	sim.MouseClick(x3, y3)
	sim.Advance(400 * time.Millisecond)
	sim.MouseClick(x4, y4)
	sim.Advance(400 * time.Millisecond)

	// Double-click the fifth seat off the board.
	x5, y5 := at(4)
	sim.MouseClick(x5, y5)
	sim.Advance(100 * time.Millisecond)
	sim.MouseClick(x5, y5)
	sim.Advance(400 * time.Millisecond)

	// Drag the moved player to 20px beside the vacated anchor; the
	// release must land exactly on it.
	var from board.Point
	for _, p := range sim.Scene.Players {
		if p.ID == "p2" && p.Pos != nil {
			from = *p.Pos
		}
	}
	fx, fy := board.ToPixel(from, fw, fh)
	sim.MouseDown(fx, fy)
	sim.MouseMove(x5+20, y5)
	sim.MouseUp(x5+20, y5)

	gc := gestureCheck{
		ran:      true,
		moves:    sim.Log.Count("MovePlayer"),
		moveEnds: sim.Log.Count("PlayerMoveEnd"),
		swapOK:   sim.Log.Count("SwapPlayers") == 1,
		removeOK: sim.Log.Count("RemovePlayer") == 1,
	}
	if rec, ok := sim.Log.Last("MovePlayer"); ok {
		gc.snapOK = rec.X == f.Anchors[4].X && rec.Y == f.Anchors[4].Y
	}
	return gc
}
