package game

// advancePath prunes waypoints already reached and returns the pure-pursuit
// steering point lookAhead pixels of arc length along the remaining path,
// measured from (px,py). The pruned path is returned so the caller can keep
// it as its cache. ok is false when nothing of the path remains.
func advancePath(path [][2]float64, px, py, arrival, lookAhead float64) (pruned [][2]float64, tx, ty float64, ok bool) {
	for len(path) > 0 && dist(px, py, path[0][0], path[0][1]) < arrival {
		path = path[1:]
	}
	if len(path) == 0 {
		return path, 0, 0, false
	}

	remaining := lookAhead
	cx, cy := px, py
	for _, wp := range path {
		seg := dist(cx, cy, wp[0], wp[1])
		if seg >= remaining && seg > 1e-9 {
			t := remaining / seg
			return path, cx + (wp[0]-cx)*t, cy + (wp[1]-cy)*t, true
		}
		remaining -= seg
		cx, cy = wp[0], wp[1]
	}
	// Path is shorter than the look-ahead distance: steer at its end.
	last := path[len(path)-1]
	return path, last[0], last[1], true
}
