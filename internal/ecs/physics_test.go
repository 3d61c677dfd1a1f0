package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tilesim/internal/domain/entity"
)

func TestDefaultPhysicsConfig(t *testing.T) {
	cfg := DefaultPhysicsConfig()

	assert.Equal(t, 1.0, cfg.Gravity)
	assert.Equal(t, 0.6, cfg.Damping)
}

func TestCollideAny(t *testing.T) {
	w, idx := newTestWorld()
	addBody(w, idx, 0, 32, "####")
	addBody(w, idx, -64, -64, "#")

	tests := []struct {
		name string
		r    entity.Rect
		want bool
	}{
		{"open air", entity.NewRect(0, 0, 16, 16), false},
		{"touching floor top", entity.NewRect(0, 16, 16, 16), false},
		{"one pixel into floor", entity.NewRect(0, 17, 16, 16), true},
		{"negative-origin body", entity.NewRect(-60, -60, 2, 2), true},
		{"just right of negative body", entity.NewRect(-48, -64, 4, 4), false},
		{"far away", entity.NewRect(5000, 5000, 16, 16), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CollideAny(w, idx, tt.r))
		})
	}
}

func TestCollideAny_IgnoresUnindexedBodies(t *testing.T) {
	w, idx := newTestWorld()
	w.SpawnBody(newTestBody(0, 0, "#"))

	assert.False(t, CollideAny(w, idx, entity.NewRect(0, 0, 4, 4)))
}

func TestResolveActorTick_RestingActorBecomesGrounded(t *testing.T) {
	w, idx := newTestWorld()
	addBody(w, idx, 0, 32, "#")

	// Bottom row of the actor sits directly above the tile
	id := addActor(w, idx, entity.NewRect(0, 16, 16, 16), entity.ClassActor)

	ResolveActorTick(w, idx, DefaultPhysicsConfig())

	actor := w.Actor[id]
	assert.True(t, actor.Grounded)
	assert.Equal(t, 0.0, actor.VY)
	assert.Equal(t, entity.NewRect(0, 16, 16, 16), w.Rect[id])
	assert.Equal(t, 16.0, actor.PreciseY)
}

func TestResolveActorTick_OnePixelGapLandsInOneTick(t *testing.T) {
	w, idx := newTestWorld()
	addBody(w, idx, 0, 32, "#")
	id := addActor(w, idx, entity.NewRect(0, 15, 16, 16), entity.ClassActor)

	ResolveActorTick(w, idx, DefaultPhysicsConfig())

	actor := w.Actor[id]
	assert.True(t, actor.Grounded)
	assert.Equal(t, 0.0, actor.VY)
	assert.Equal(t, 16, w.Rect[id].Y)
}

func TestResolveActorTick_StopsFlushAgainstWall(t *testing.T) {
	w, idx := newTestWorld()
	bodyID := addBody(w, idx, 0, 0,
		"........#",
		"#########",
	)
	body := w.TileBody[bodyID]

	// Right edge at 125, wall face at 128
	id := addActor(w, idx, entity.NewRect(109, 0, 16, 16), entity.ClassActor)
	actor := w.Actor[id]
	actor.VX = 5
	w.Actor[id] = actor

	for tick := 0; tick < 4; tick++ {
		ResolveActorTick(w, idx, DefaultPhysicsConfig())
		require.False(t, body.Collides(w.Rect[id]), "tick %d overlaps geometry", tick)
	}

	r := w.Rect[id]
	assert.Equal(t, 128, r.Right(), "flush against the wall")
	assert.Equal(t, 0.0, w.Actor[id].VX)
	assert.Equal(t, 112.0, w.Actor[id].PreciseX)
	assert.True(t, w.Actor[id].Grounded)
}

func TestResolveActorTick_HorizontalResolvesBeforeVertical(t *testing.T) {
	w, idx := newTestWorld()
	addBody(w, idx, 32, 32, "#")
	id := addActor(w, idx, entity.NewRect(14, 14, 16, 16), entity.ClassFlyer)

	actor := w.Actor[id]
	actor.VX = 4
	actor.VY = 4
	w.Actor[id] = actor

	// No gravity or damping so the velocities stay exact
	ResolveActorTick(w, idx, PhysicsConfig{Gravity: 0, Damping: 1})

	// X moves freely first; Y then hits the tile corner
	r := w.Rect[id]
	assert.Equal(t, 18, r.X)
	assert.Equal(t, 16, r.Y)
	assert.Equal(t, 4.0, w.Actor[id].VX)
	assert.Equal(t, 0.0, w.Actor[id].VY)
}

func TestResolveActorTick_SubPixelAccumulator(t *testing.T) {
	w, idx := newTestWorld()
	id := addActor(w, idx, entity.NewRect(0, 0, 8, 8), entity.ClassFlyer)

	actor := w.Actor[id]
	actor.VX = 0.4
	w.Actor[id] = actor

	cfg := PhysicsConfig{Gravity: 0, Damping: 1}
	wantX := []int{0, 1, 1, 2, 2}
	for tick, want := range wantX {
		ResolveActorTick(w, idx, cfg)
		r := w.Rect[id]
		a := w.Actor[id]
		assert.Equal(t, want, r.X, "tick %d", tick)
		assert.InDelta(t, float64(r.X), a.PreciseX, 0.5, "accumulator drifted at tick %d", tick)
	}
	assert.InDelta(t, 2.0, w.Actor[id].PreciseX, 1e-9)
}

func TestResolveActorTick_DampingAndGravity(t *testing.T) {
	w, idx := newTestWorld()
	id := addActor(w, idx, entity.NewRect(0, 0, 8, 8), entity.ClassActor)
	actor := w.Actor[id]
	actor.VX = 10
	w.Actor[id] = actor

	ResolveActorTick(w, idx, DefaultPhysicsConfig())

	a := w.Actor[id]
	assert.InDelta(t, 6.0, a.VX, 1e-9)
	assert.Equal(t, 1.0, a.VY)
	assert.False(t, a.Grounded)
	assert.Equal(t, entity.NewRect(6, 1, 8, 8), w.Rect[id])
}

func TestResolveActorTick_FlyerIgnoresGravity(t *testing.T) {
	w, idx := newTestWorld()
	id := addActor(w, idx, entity.NewRect(0, 0, 8, 8), entity.ClassFlyer)

	for i := 0; i < 10; i++ {
		ResolveActorTick(w, idx, DefaultPhysicsConfig())
	}

	assert.Equal(t, entity.NewRect(0, 0, 8, 8), w.Rect[id])
	assert.Equal(t, 0.0, w.Actor[id].VY)
}

func TestResolveActorTick_StaticNeverMoves(t *testing.T) {
	w, idx := newTestWorld()
	id := addActor(w, idx, entity.NewRect(0, 0, 8, 8), entity.ClassStatic)
	actor := w.Actor[id]
	actor.VX = 3
	w.Actor[id] = actor

	ResolveActorTick(w, idx, DefaultPhysicsConfig())

	assert.Equal(t, entity.NewRect(0, 0, 8, 8), w.Rect[id])
	assert.Equal(t, 3.0, w.Actor[id].VX)
}

func TestResolveActorTick_SkipsActorWithoutRect(t *testing.T) {
	w, idx := newTestWorld()
	id := w.NewEntity()
	w.Actor[id] = entity.Actor{Class: entity.ClassActor}

	assert.NotPanics(t, func() { ResolveActorTick(w, idx, DefaultPhysicsConfig()) })
	assert.Equal(t, 0.0, w.Actor[id].VY)
}

func TestResolveActorTick_KeepsIndexInSync(t *testing.T) {
	w, idx := newTestWorld()
	id := addActor(w, idx, entity.NewRect(0, 0, 8, 8), entity.ClassFlyer)
	actor := w.Actor[id]
	actor.VX = 200
	w.Actor[id] = actor

	ResolveActorTick(w, idx, PhysicsConfig{Gravity: 0, Damping: 1})

	r := w.Rect[id]
	assert.Equal(t, 200, r.X)
	assert.Contains(t, idx.Entities(r), id)
	assert.NotContains(t, idx.Entities(entity.NewRect(0, 0, 8, 8)), id)
}

func TestResolveActorTick_FallingLandsOnFloor(t *testing.T) {
	w, idx := newTestWorld()
	addBody(w, idx, 0, 160, "##########")
	id := addActor(w, idx, entity.NewRect(40, 0, 12, 20), entity.ClassActor)

	for i := 0; i < 60; i++ {
		ResolveActorTick(w, idx, DefaultPhysicsConfig())
	}

	r := w.Rect[id]
	assert.Equal(t, 160, r.Bottom())
	assert.True(t, w.Actor[id].Grounded)
	assert.Equal(t, 0.0, w.Actor[id].VY)
}

func TestResolveActorTick_Deterministic(t *testing.T) {
	run := func() []entity.Rect {
		w, idx := newTestWorld()
		addBody(w, idx, 0, 96, "########")
		addBody(w, idx, 64, 48, "#")
		for i := 0; i < 8; i++ {
			id := addActor(w, idx, entity.NewRect(i*13, i*3, 8, 8), entity.ClassActor)
			a := w.Actor[id]
			a.VX = float64(i) - 3.5
			w.Actor[id] = a
		}
		for i := 0; i < 40; i++ {
			ResolveActorTick(w, idx, DefaultPhysicsConfig())
		}
		var out []entity.Rect
		for _, id := range w.ActorIDs() {
			out = append(out, w.Rect[id])
		}
		return out
	}

	assert.Equal(t, run(), run())
}
