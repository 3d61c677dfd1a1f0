package system

import "github.com/younwookim/tilesim/internal/ecs"

// Intent represents an action that an entity wants to perform
type Intent interface {
	isIntent()
}

// MoveIntent represents walking. Dir is -1, 0 or 1; zero leaves VX to damping.
type MoveIntent struct {
	EntityID ecs.EntityID
	Dir      int
	Speed    float64 // pixels per tick
}

func (MoveIntent) isIntent() {}

// JumpIntent represents a jump intention
type JumpIntent struct {
	EntityID ecs.EntityID
	Force    float64
}

func (JumpIntent) isIntent() {}

// JumpCutIntent shortens a jump that is still rising
type JumpCutIntent struct {
	EntityID   ecs.EntityID
	Multiplier float64
}

func (JumpCutIntent) isIntent() {}

// ApplyIntents writes intents into actor velocities.
// Intents addressed to entities without an Actor are dropped.
func ApplyIntents(w *ecs.World, intents []Intent) {
	for _, in := range intents {
		switch in := in.(type) {
		case MoveIntent:
			actor, ok := w.Actor[in.EntityID]
			if !ok || in.Dir == 0 {
				continue
			}
			actor.VX = float64(in.Dir) * in.Speed
			w.Actor[in.EntityID] = actor
		case JumpIntent:
			actor, ok := w.Actor[in.EntityID]
			if !ok {
				continue
			}
			actor.VY = -in.Force
			actor.Grounded = false
			w.Actor[in.EntityID] = actor
		case JumpCutIntent:
			actor, ok := w.Actor[in.EntityID]
			if !ok || actor.VY >= 0 {
				continue
			}
			actor.VY *= in.Multiplier
			w.Actor[in.EntityID] = actor
		}
	}
}
