package ecs

import "github.com/younwookim/tilesim/internal/domain/entity"

var testMapping = map[rune]entity.TileFlag{'#': entity.CellSolid}

// newTestBody builds a 16px tile body from text rows ('#' = solid)
func newTestBody(x, y int, rows ...string) *entity.TileBody {
	width, data := entity.ParseRows(rows, testMapping)
	return entity.NewTileBody(x, y, 16, width, data)
}

func newTestWorld() (*World, *SpatialIndex) {
	return NewWorld(), NewSpatialIndex(DefaultBucketSize)
}

func addBody(w *World, idx *SpatialIndex, x, y int, rows ...string) EntityID {
	id := w.SpawnBody(newTestBody(x, y, rows...))
	w.Index(idx, id)
	return id
}

func addActor(w *World, idx *SpatialIndex, r entity.Rect, class entity.PhysicsClass) EntityID {
	id := w.SpawnActor(r, class)
	w.Index(idx, id)
	return id
}
