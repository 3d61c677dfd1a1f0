package ecs

import (
	"slices"

	"github.com/younwookim/tilesim/internal/domain/entity"
)

// ApplyBodyDelta moves a tile body by (dx, dy) pixels, one pixel at a time,
// X steps before Y steps, carrying every pushable actor it touches.
// Unknown body IDs are ignored.
func ApplyBodyDelta(w *World, idx *SpatialIndex, bodyID EntityID, dx, dy int) {
	body, ok := w.TileBody[bodyID]
	if !ok {
		return
	}

	var carried []EntityID
	for i := 0; i < abs(dx); i++ {
		carried = stepBody(w, idx, bodyID, body, entity.AxisX, sign(dx), carried)
	}
	for i := 0; i < abs(dy); i++ {
		carried = stepBody(w, idx, bodyID, body, entity.AxisY, sign(dy), carried)
	}

	for _, id := range carried {
		actor := w.Actor[id]
		actor.Grounded = CollideAny(w, idx, w.Rect[id].FeetSensor())
		w.Actor[id] = actor
	}
}

// stepBody moves the body one pixel and drags its riders along.
// Riders are the union of the actors touching the body before and after
// the move: the first set catches actors resting on it, the second catches
// actors it is about to lift or shove.
func stepBody(w *World, idx *SpatialIndex, bodyID EntityID, body *entity.TileBody, axis entity.Axis, dir int, carried []EntityID) []EntityID {
	before := ridersOf(w, idx, body)

	old := body.Bounds()
	if axis == entity.AxisX {
		body.Move(dir, 0)
	} else {
		body.Move(0, dir)
	}
	idx.Remove(bodyID, old)
	idx.Insert(bodyID, body.Bounds())

	after := ridersOf(w, idx, body)

	riders := append(before, after...)
	slices.Sort(riders)
	riders = slices.Compact(riders)

	for _, id := range riders {
		actor := w.Actor[id]
		r := w.Rect[id]

		if axis == entity.AxisX {
			actor.PreciseX += float64(dir)
			stepAxis(w, idx, id, &r, &actor, axis, r.X+dir)
		} else {
			actor.PreciseY += float64(dir)
			stepAxis(w, idx, id, &r, &actor, axis, r.Y+dir)
		}

		if CollideAny(w, idx, r) {
			actor.Crushed = true
		}

		w.Actor[id] = actor
		w.Rect[id] = r

		if !slices.Contains(carried, id) {
			carried = append(carried, id)
		}
	}
	return carried
}

// ridersOf returns pushable actors whose pushing sensor overlaps a solid
// cell of body, in ascending ID order
func ridersOf(w *World, idx *SpatialIndex, body *entity.TileBody) []EntityID {
	// A pushing sensor reaches one pixel below its actor, so grow the
	// query upward by one pixel
	area := body.Bounds()
	area.Y--
	area.H++

	var riders []EntityID
	for _, id := range idx.Entities(area) {
		actor, ok := w.Actor[id]
		if !ok || !actor.Class.Pushable() {
			continue
		}
		r, ok := w.Rect[id]
		if !ok {
			continue
		}
		if body.Collides(r.PushingSensor()) {
			riders = append(riders, id)
		}
	}
	return riders
}
