package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tilesim/internal/domain/entity"
)

func TestCommands_SpawnActor(t *testing.T) {
	w, idx := newTestWorld()
	var cmds Commands

	r := entity.NewRect(10, 10, 8, 8)
	cmds.SpawnActor(r, entity.ClassFlyer)
	assert.Equal(t, 1, cmds.Len())
	assert.Equal(t, 0, w.CountActors(), "nothing happens before Apply")

	spawned := cmds.Apply(w, idx)

	require.Len(t, spawned, 1)
	id := spawned[0]
	assert.Equal(t, entity.ClassFlyer, w.Actor[id].Class)
	assert.Equal(t, r, w.Rect[id])
	assert.Contains(t, idx.Entities(r), id)
	assert.Equal(t, 0, cmds.Len())
}

func TestCommands_Despawn(t *testing.T) {
	w, idx := newTestWorld()
	id := addActor(w, idx, entity.NewRect(0, 0, 8, 8), entity.ClassActor)
	var cmds Commands

	cmds.Despawn(id)
	cmds.Despawn(id)
	cmds.Despawn(12345)

	assert.NotPanics(t, func() { cmds.Apply(w, idx) })
	assert.False(t, w.Exists(id))
	assert.Empty(t, idx.Entities(entity.NewRect(0, 0, 8, 8)))
}

func TestCommands_Teleport(t *testing.T) {
	w, idx := newTestWorld()
	id := addActor(w, idx, entity.NewRect(0, 0, 8, 8), entity.ClassFlyer)
	actor := w.Actor[id]
	actor.VX, actor.VY = 5, -3
	actor.Crushed = true
	w.Actor[id] = actor

	var cmds Commands
	dest := entity.NewRect(300, 40, 8, 8)
	cmds.Teleport(id, dest)
	cmds.Apply(w, idx)

	got := w.Actor[id]
	assert.Equal(t, dest, w.Rect[id])
	assert.Equal(t, entity.ClassFlyer, got.Class)
	assert.Equal(t, 0.0, got.VX)
	assert.Equal(t, 0.0, got.VY)
	assert.False(t, got.Crushed)
	assert.Equal(t, 300.0, got.PreciseX)
	assert.Contains(t, idx.Entities(dest), id)
	assert.NotContains(t, idx.Entities(entity.NewRect(0, 0, 8, 8)), id)
}

func TestCommands_AppliesInOrder(t *testing.T) {
	w, idx := newTestWorld()
	id := addActor(w, idx, entity.NewRect(0, 0, 8, 8), entity.ClassActor)

	var cmds Commands
	cmds.Despawn(id)
	cmds.Teleport(id, entity.NewRect(50, 50, 8, 8))
	cmds.SpawnActor(entity.NewRect(0, 0, 8, 8), entity.ClassActor)
	spawned := cmds.Apply(w, idx)

	require.Len(t, spawned, 1)
	assert.False(t, w.Exists(id), "teleport after despawn is skipped")
	assert.NotEqual(t, id, spawned[0], "IDs are never recycled")
	assert.Equal(t, 1, w.CountActors())
}
