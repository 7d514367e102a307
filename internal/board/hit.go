package board

// Nearest-wins hit testing in logical pixels. Each probe scans one
// entity class and keeps the candidate with the smallest squared
// distance inside that class's hit radius, so overlapping markers
// resolve to whichever centre is closer. Opponents and tactical discs
// use a reduced radius matching their smaller draw size; the ball keeps
// the full radius because its marker is small but precious.

func hitPlayer(sc *Scene, x, y, w, h float64) (string, bool) {
	best2 := sqr(markerRadius(w, h))
	id, found := "", false
	for i := range sc.Players {
		p := &sc.Players[i]
		if p.Pos == nil {
			continue
		}
		px, py := ToPixel(*p.Pos, w, h)
		if d2 := sqr(px-x) + sqr(py-y); d2 < best2 {
			best2 = d2
			id, found = p.ID, true
		}
	}
	return id, found
}

func hitOpponent(sc *Scene, x, y, w, h float64) (string, bool) {
	best2 := sqr(markerRadius(w, h) * smallMarkerMul)
	id, found := "", false
	for i := range sc.Opponents {
		o := &sc.Opponents[i]
		px, py := ToPixel(o.Pos, w, h)
		if d2 := sqr(px-x) + sqr(py-y); d2 < best2 {
			best2 = d2
			id, found = o.ID, true
		}
	}
	return id, found
}

func hitDisc(sc *Scene, x, y, w, h float64) (string, bool) {
	best2 := sqr(markerRadius(w, h) * smallMarkerMul)
	id, found := "", false
	for i := range sc.Discs {
		d := &sc.Discs[i]
		px, py := ToPixel(d.Pos, w, h)
		if d2 := sqr(px-x) + sqr(py-y); d2 < best2 {
			best2 = d2
			id, found = d.ID, true
		}
	}
	return id, found
}

func hitBall(sc *Scene, x, y, w, h float64) bool {
	if sc.Ball == nil {
		return false
	}
	px, py := ToPixel(*sc.Ball, w, h)
	return sqr(px-x)+sqr(py-y) < sqr(markerRadius(w, h))
}

// hitSlot finds the nearest formation anchor or substitute slot under
// the point, for tap-to-place with a selected player. Anchors win over
// slots at equal distance.
func hitSlot(sc *Scene, x, y, w, h float64) (Point, bool) {
	best2 := sqr(markerRadius(w, h))
	var at Point
	found := false
	for i := range sc.Anchors {
		a := &sc.Anchors[i]
		px, py := ToPixel(a.Pos, w, h)
		if d2 := sqr(px-x) + sqr(py-y); d2 < best2 {
			best2 = d2
			at, found = a.Pos, true
		}
	}
	for i := range sc.SubSlots {
		s := &sc.SubSlots[i]
		px, py := ToPixel(s.Pos, w, h)
		if d2 := sqr(px-x) + sqr(py-y); d2 < best2 {
			best2 = d2
			at, found = s.Pos, true
		}
	}
	return at, found
}

func discByID(sc *Scene, id string) *TacticalDisc {
	for i := range sc.Discs {
		if sc.Discs[i].ID == id {
			return &sc.Discs[i]
		}
	}
	return nil
}
