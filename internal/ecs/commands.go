package ecs

import "github.com/younwookim/tilesim/internal/domain/entity"

type commandKind int

const (
	cmdSpawnActor commandKind = iota
	cmdDespawn
	cmdTeleport
)

type command struct {
	kind  commandKind
	id    EntityID
	rect  entity.Rect
	class entity.PhysicsClass
}

// Commands buffers world mutations requested while systems iterate the
// world. Apply runs them in request order once iteration is over.
type Commands struct {
	queue []command
}

// SpawnActor queues creation of an actor
func (c *Commands) SpawnActor(r entity.Rect, class entity.PhysicsClass) {
	c.queue = append(c.queue, command{kind: cmdSpawnActor, rect: r, class: class})
}

// Despawn queues removal of an entity
func (c *Commands) Despawn(id EntityID) {
	c.queue = append(c.queue, command{kind: cmdDespawn, id: id})
}

// Teleport queues moving an actor to r with its motion state cleared
func (c *Commands) Teleport(id EntityID, r entity.Rect) {
	c.queue = append(c.queue, command{kind: cmdTeleport, id: id, rect: r})
}

// Len returns the number of pending commands
func (c *Commands) Len() int {
	return len(c.queue)
}

// Apply executes and clears the queue, returning IDs of spawned entities.
// Commands addressing entities that no longer exist are skipped.
func (c *Commands) Apply(w *World, idx *SpatialIndex) []EntityID {
	var spawned []EntityID
	for _, cmd := range c.queue {
		switch cmd.kind {
		case cmdSpawnActor:
			id := w.SpawnActor(cmd.rect, cmd.class)
			w.Index(idx, id)
			spawned = append(spawned, id)
		case cmdDespawn:
			if !w.Exists(cmd.id) {
				continue
			}
			w.Despawn(idx, cmd.id)
		case cmdTeleport:
			old, ok := w.Rect[cmd.id]
			actor, hasActor := w.Actor[cmd.id]
			if !ok || !hasActor {
				continue
			}
			idx.Remove(cmd.id, old)
			w.Rect[cmd.id] = cmd.rect
			w.Actor[cmd.id] = entity.NewActor(cmd.rect, actor.Class)
			idx.Insert(cmd.id, cmd.rect)
		}
	}
	c.queue = c.queue[:0]
	return spawned
}
