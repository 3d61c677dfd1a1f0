package ecs

// UpdateBodyPaths advances every path-driven body one tick toward its
// current waypoint, at most Speed pixels per axis
func UpdateBodyPaths(w *World, idx *SpatialIndex) {
	for _, id := range w.PathIDs() {
		path := w.BodyPath[id]
		body, ok := w.TileBody[id]
		if !ok || path.Done || len(path.Points) == 0 || path.Speed <= 0 {
			continue
		}

		target := path.Target()
		dx := clamp(target.X-body.X, -path.Speed, path.Speed)
		dy := clamp(target.Y-body.Y, -path.Speed, path.Speed)
		ApplyBodyDelta(w, idx, id, dx, dy)

		if body.X == target.X && body.Y == target.Y {
			path.advance()
		}
		w.BodyPath[id] = path
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
