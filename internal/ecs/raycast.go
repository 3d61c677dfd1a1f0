package ecs

import (
	"math"

	"github.com/younwookim/tilesim/internal/domain/entity"
)

// RayHit is the nearest crossing of a segment into blocking geometry
type RayHit struct {
	Point    entity.Vec
	Axis     entity.Axis
	Fraction float64 // 0..1 along origin->dest
	Body     EntityID
}

// RayCollision casts origin->dest against the tile bodies the index
// reports near the segment and returns the earliest crossing. Bodies whose
// geometry contains the origin do not report a crossing.
func RayCollision(w *World, idx *SpatialIndex, origin, dest entity.Vec) (RayHit, bool) {
	var best RayHit
	found := false

	for _, id := range idx.Entities(segmentBounds(origin, dest)) {
		body, ok := w.TileBody[id]
		if !ok {
			continue
		}
		c, ok := body.RayFraction(origin, dest)
		if !ok {
			continue
		}
		// Strict comparison keeps the lowest ID on ties
		if !found || c.Fraction < best.Fraction {
			best = RayHit{Point: c.Point, Axis: c.Axis, Fraction: c.Fraction, Body: id}
			found = true
		}
	}
	return best, found
}

// segmentBounds returns the inclusive pixel bounding box of a segment
func segmentBounds(a, b entity.Vec) entity.Rect {
	x0 := int(math.Floor(math.Min(a.X, b.X)))
	y0 := int(math.Floor(math.Min(a.Y, b.Y)))
	x1 := int(math.Floor(math.Max(a.X, b.X)))
	y1 := int(math.Floor(math.Max(a.Y, b.Y)))
	return entity.Rect{X: x0, Y: y0, W: x1 - x0 + 1, H: y1 - y0 + 1}
}
