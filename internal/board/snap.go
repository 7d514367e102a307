package board

// snapRadius is how far, in logical pixels, a released player may land
// from a formation anchor or substitute slot and still get pulled onto
// it. The comparison is inclusive: exactly snapRadius away still snaps.
const snapRadius = 36.0

// snapPosition resolves where a player drag released at logical pixel
// (x, y) should land. The nearest free anchor or slot within snapRadius
// wins; ties keep the earlier candidate. A slot counts as taken when
// any other player sits within the marker hit radius of it, so the
// dragged player never blocks their own return. Without a qualifying
// candidate the clamped release point itself is returned.
func snapPosition(sc *Scene, id string, x, y, w, h float64) (Point, bool) {
	rel, ok := ToRelative(x, y, w, h)
	if !ok {
		return Point{}, false
	}
	best2 := sqr(snapRadius) + 1
	var snapped Point
	found := false
	consider := func(p Point) {
		px, py := ToPixel(p, w, h)
		d2 := sqr(px-x) + sqr(py-y)
		if d2 > sqr(snapRadius) || d2 >= best2 {
			return
		}
		if slotTaken(sc, id, px, py, w, h) {
			return
		}
		best2 = d2
		snapped, found = p, true
	}
	for i := range sc.Anchors {
		consider(sc.Anchors[i].Pos)
	}
	for i := range sc.SubSlots {
		consider(sc.SubSlots[i].Pos)
	}
	if found {
		return snapped, true
	}
	return rel, true
}

// slotTaken reports whether a player other than exceptID occupies the
// logical pixel position.
func slotTaken(sc *Scene, exceptID string, px, py, w, h float64) bool {
	r2 := sqr(markerRadius(w, h))
	for i := range sc.Players {
		p := &sc.Players[i]
		if p.ID == exceptID || p.Pos == nil {
			continue
		}
		qx, qy := ToPixel(*p.Pos, w, h)
		if sqr(qx-px)+sqr(qy-py) < r2 {
			return true
		}
	}
	return false
}
