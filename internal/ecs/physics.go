package ecs

import (
	"math"

	"github.com/younwookim/tilesim/internal/domain/entity"
)

// PhysicsConfig holds the per-tick motion constants.
// Velocities are in pixels per tick.
type PhysicsConfig struct {
	Gravity float64 // added to VY each tick for ClassActor
	Damping float64 // VX multiplier each tick
}

// DefaultPhysicsConfig returns the standard constants
func DefaultPhysicsConfig() PhysicsConfig {
	return PhysicsConfig{
		Gravity: 1,
		Damping: 0.6,
	}
}

// ResolveActorTick advances every movable actor one tick: gravity, damping,
// then X and Y resolution in that order, then the grounded check.
func ResolveActorTick(w *World, idx *SpatialIndex, cfg PhysicsConfig) {
	for _, id := range w.ActorIDs() {
		actor := w.Actor[id]
		r, ok := w.Rect[id]
		if !ok || !actor.Class.Movable() {
			continue
		}

		if actor.Class.HasGravity() {
			actor.VY += cfg.Gravity
		}
		actor.VX *= cfg.Damping

		if moveAxis(w, idx, id, &r, &actor, entity.AxisX, actor.VX) {
			actor.VX = 0
		}
		if moveAxis(w, idx, id, &r, &actor, entity.AxisY, actor.VY) {
			actor.VY = 0
		}

		actor.Grounded = CollideAny(w, idx, r.FeetSensor())
		if actor.Grounded && actor.VY > 0 {
			actor.VY = 0
		}

		w.Actor[id] = actor
		w.Rect[id] = r
	}
}

// moveAxis adds v to the accumulator and steps toward the rounded target.
// Returns true if geometry stopped the move.
func moveAxis(w *World, idx *SpatialIndex, id EntityID, r *entity.Rect, a *entity.Actor, axis entity.Axis, v float64) bool {
	if v == 0 {
		return false
	}
	if axis == entity.AxisX {
		a.PreciseX += v
		return stepAxis(w, idx, id, r, a, axis, int(math.Round(a.PreciseX)))
	}
	a.PreciseY += v
	return stepAxis(w, idx, id, r, a, axis, int(math.Round(a.PreciseY)))
}

// stepAxis moves r one pixel at a time toward target along axis, testing
// the next position before each step. On contact the accumulator snaps to
// the current integer position and the fraction is discarded.
func stepAxis(w *World, idx *SpatialIndex, id EntityID, r *entity.Rect, a *entity.Actor, axis entity.Axis, target int) bool {
	start := *r
	hit := false

	pos := &r.X
	precise := &a.PreciseX
	if axis == entity.AxisY {
		pos = &r.Y
		precise = &a.PreciseY
	}

	for *pos != target {
		step := sign(target - *pos)
		next := *r
		if axis == entity.AxisX {
			next.X += step
		} else {
			next.Y += step
		}

		if CollideAny(w, idx, next) {
			*precise = float64(*pos)
			hit = true
			break
		}
		*r = next
	}

	if *r != start {
		idx.Remove(id, start)
		idx.Insert(id, *r)
	}
	return hit
}

// CollideAny reports whether r overlaps solid cells of any indexed body
func CollideAny(w *World, idx *SpatialIndex, r entity.Rect) bool {
	hit := false
	idx.Visit(r, func(id EntityID) bool {
		if b, ok := w.TileBody[id]; ok && b.Collides(r) {
			hit = true
			return false
		}
		return true
	})
	return hit
}

// Helper functions
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
