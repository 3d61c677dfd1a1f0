package system

import (
	"fmt"
	"hash/fnv"
	"math"
	"time"

	"github.com/younwookim/tilesim/internal/domain/entity"
	"github.com/younwookim/tilesim/internal/ecs"
	"github.com/younwookim/tilesim/internal/infrastructure/config"
)

// Simulation runs a stage at a fixed tick rate.
//
// Each tick runs, in order: body paths (carrying riders), intents, actor
// resolution, then the kill line. Structural changes requested during the
// tick are buffered and applied at its end.
type Simulation struct {
	stage   *Stage
	physics ecs.PhysicsConfig
	clock   *Clock
	cmds    ecs.Commands
	tick    uint64
	respawn int
}

// NewSimulation creates a simulation over a loaded stage
func NewSimulation(stage *Stage, cfg *config.PhysicsConfig) *Simulation {
	return &Simulation{
		stage: stage,
		physics: ecs.PhysicsConfig{
			Gravity: cfg.Simulation.Gravity,
			Damping: cfg.Simulation.Damping,
		},
		clock: NewClock(cfg.Simulation.TickRate, cfg.Simulation.MaxTicksPerFrame),
	}
}

// Stage returns the simulated stage
func (s *Simulation) Stage() *Stage { return s.stage }

// World returns the simulated world
func (s *Simulation) World() *ecs.World { return s.stage.World }

// Ticks returns the number of ticks run so far
func (s *Simulation) Ticks() uint64 { return s.tick }

// Respawns returns how many times the player was sent back to spawn
func (s *Simulation) Respawns() int { return s.respawn }

// Clock returns the frame clock
func (s *Simulation) Clock() *Clock { return s.clock }

// Tick advances the world by one fixed step
func (s *Simulation) Tick(intents []Intent) {
	w, idx := s.stage.World, s.stage.Index

	ecs.UpdateBodyPaths(w, idx)
	ApplyIntents(w, intents)
	ecs.ResolveActorTick(w, idx, s.physics)
	s.applyKillLine()
	s.cmds.Apply(w, idx)

	s.tick++
}

// Step runs one tick driven by player input. Respawn requests are queued
// before the tick so they land at its end.
func (s *Simulation) Step(input *InputSystem, in InputState) {
	if in.Respawn {
		s.Respawn()
		input.Reset()
	}
	s.Tick(input.Intents(s.stage.World, in))
}

// Advance runs however many ticks elapsed covers, asking read for the
// input of each tick. Returns the number of ticks run.
func (s *Simulation) Advance(elapsed time.Duration, input *InputSystem, read func(tick int) InputState) int {
	n := s.clock.Advance(elapsed)
	for i := 0; i < n; i++ {
		s.Step(input, read(i))
	}
	return n
}

// Respawn queues the player's return to spawn for the end of the next tick
func (s *Simulation) Respawn() {
	if id := s.stage.World.PlayerID; id != 0 {
		s.cmds.Teleport(id, s.stage.Spawn)
		s.respawn++
	}
}

// applyKillLine removes actors that fell out of the stage. The player is
// returned to spawn instead, as is a crushed player.
func (s *Simulation) applyKillLine() {
	w := s.stage.World
	for _, id := range w.ActorIDs() {
		r, ok := w.Rect[id]
		if !ok {
			continue
		}
		fell := r.Y > s.stage.KillY
		if id == w.PlayerID {
			if fell || w.Actor[id].Crushed {
				s.Respawn()
			}
			continue
		}
		if fell {
			s.cmds.Despawn(id)
		}
	}
}

// Eye returns the centre of the player, or the spawn centre without one
func (s *Simulation) Eye() entity.Vec {
	w := s.stage.World
	if r, ok := w.Rect[w.PlayerID]; ok {
		return r.Center()
	}
	return s.stage.Spawn.Center()
}

// ShadowQuads returns the shadows cast around the player
func (s *Simulation) ShadowQuads(radius float64) []entity.Quad {
	return ecs.VisibleShadowQuads(s.stage.World, s.Eye(), radius)
}

// Digest returns a hash of the tick count and every actor and body
// position, for comparing runs
func (s *Simulation) Digest() uint64 {
	w := s.stage.World
	h := fnv.New64a()

	fmt.Fprintf(h, "T:%d;A:", s.tick)
	for _, id := range w.ActorIDs() {
		a := w.Actor[id]
		r := w.Rect[id]
		fmt.Fprintf(h, "%d:%d:%d:%x:%x:%x:%x:%v:%v,",
			id, r.X, r.Y,
			math.Float64bits(a.PreciseX), math.Float64bits(a.PreciseY),
			math.Float64bits(a.VX), math.Float64bits(a.VY),
			a.Grounded, a.Crushed)
	}

	fmt.Fprintf(h, ";B:")
	for _, id := range w.BodyIDs() {
		b := w.TileBody[id]
		fmt.Fprintf(h, "%d:%d:%d,", id, b.X, b.Y)
	}

	return h.Sum64()
}
