package ecs

import (
	"fmt"
	"maps"
	"slices"

	"github.com/younwookim/tilesim/internal/domain/entity"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// World holds all component maps and the next entity ID.
// It is a single-writer structure: systems run one after another on the
// simulation goroutine and never concurrently.
type World struct {
	nextID EntityID

	// Components
	Rect     map[EntityID]entity.Rect
	Actor    map[EntityID]entity.Actor
	TileBody map[EntityID]*entity.TileBody
	BodyPath map[EntityID]BodyPath
	Name     map[EntityID]string

	// Tags
	IsPlayer map[EntityID]struct{}

	// Singleton references
	PlayerID EntityID
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:   1, // 0 is "nil"
		Rect:     make(map[EntityID]entity.Rect),
		Actor:    make(map[EntityID]entity.Actor),
		TileBody: make(map[EntityID]*entity.TileBody),
		BodyPath: make(map[EntityID]BodyPath),
		Name:     make(map[EntityID]string),
		IsPlayer: make(map[EntityID]struct{}),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// DestroyEntity removes all components for an entity.
// Index membership is not touched; use Despawn for indexed entities.
func (w *World) DestroyEntity(id EntityID) {
	delete(w.Rect, id)
	delete(w.Actor, id)
	delete(w.TileBody, id)
	delete(w.BodyPath, id)
	delete(w.Name, id)
	delete(w.IsPlayer, id)
	if w.PlayerID == id {
		w.PlayerID = 0
	}
}

// Exists checks if an entity has a spatial footprint
func (w *World) Exists(id EntityID) bool {
	_, ok := w.Footprint(id)
	return ok
}

// Footprint returns the rect an entity occupies in the spatial index:
// the actor rect, or the bounds of a tile body
func (w *World) Footprint(id EntityID) (entity.Rect, bool) {
	if b, ok := w.TileBody[id]; ok {
		return b.Bounds(), true
	}
	r, ok := w.Rect[id]
	return r, ok
}

// SpawnActor creates an actor entity at r
func (w *World) SpawnActor(r entity.Rect, class entity.PhysicsClass) EntityID {
	id := w.NewEntity()
	w.Rect[id] = r
	w.Actor[id] = entity.NewActor(r, class)
	return id
}

// SpawnPlayer creates the player actor and records it as the singleton
func (w *World) SpawnPlayer(r entity.Rect) EntityID {
	id := w.SpawnActor(r, entity.ClassActor)
	w.IsPlayer[id] = struct{}{}
	w.PlayerID = id
	return id
}

// SpawnBody creates a tile body entity
func (w *World) SpawnBody(body *entity.TileBody) EntityID {
	id := w.NewEntity()
	w.TileBody[id] = body
	return id
}

// ActorIDs returns actor entities in ascending ID order.
// Map iteration order is random; every system iterates through these
// helpers so ticks replay identically.
func (w *World) ActorIDs() []EntityID {
	return slices.Sorted(maps.Keys(w.Actor))
}

// BodyIDs returns tile body entities in ascending ID order
func (w *World) BodyIDs() []EntityID {
	return slices.Sorted(maps.Keys(w.TileBody))
}

// PathIDs returns entities with a body path in ascending ID order
func (w *World) PathIDs() []EntityID {
	return slices.Sorted(maps.Keys(w.BodyPath))
}

// MustPlayer returns the player entity.
// A player without its actor or rect is a setup bug and panics.
func (w *World) MustPlayer() EntityID {
	id := w.PlayerID
	if id == 0 {
		panic("ecs: no player entity in world")
	}
	if _, ok := w.Actor[id]; !ok {
		panic(fmt.Sprintf("ecs: player %d has no Actor component", id))
	}
	if _, ok := w.Rect[id]; !ok {
		panic(fmt.Sprintf("ecs: player %d has no Rect component", id))
	}
	return id
}

// CountActors returns the number of actors
func (w *World) CountActors() int {
	return len(w.Actor)
}

// Index inserts an entity's footprint into idx
func (w *World) Index(idx *SpatialIndex, id EntityID) {
	if r, ok := w.Footprint(id); ok {
		idx.Insert(id, r)
	}
}

// IndexAll inserts every entity with a footprint into idx
func (w *World) IndexAll(idx *SpatialIndex) {
	for _, id := range w.BodyIDs() {
		w.Index(idx, id)
	}
	for _, id := range w.ActorIDs() {
		w.Index(idx, id)
	}
}

// Despawn removes an entity from idx and destroys it
func (w *World) Despawn(idx *SpatialIndex, id EntityID) {
	if r, ok := w.Footprint(id); ok {
		idx.Remove(id, r)
	}
	w.DestroyEntity(id)
}
