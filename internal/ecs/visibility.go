package ecs

import (
	"math"

	"github.com/younwookim/tilesim/internal/domain/entity"
)

// ComputeObscurers rebuilds the boundary segment cache of every body.
// Occupancy never changes after load, so this runs once at setup.
func ComputeObscurers(w *World) {
	for _, id := range w.BodyIDs() {
		body := w.TileBody[id]
		body.Obscurers = entity.ExtractObscurers(body)
	}
}

// VisibleShadowQuads returns the shadow silhouettes cast by every body
// within radius of eye. Bodies without a segment cache are skipped.
func VisibleShadowQuads(w *World, eye entity.Vec, radius float64) []entity.Quad {
	view := entity.Rect{
		X: int(math.Floor(eye.X - radius)),
		Y: int(math.Floor(eye.Y - radius)),
		W: int(math.Ceil(2*radius)) + 2,
		H: int(math.Ceil(2*radius)) + 2,
	}

	var quads []entity.Quad
	for _, id := range w.BodyIDs() {
		body := w.TileBody[id]
		if body.Obscurers == nil || !body.Bounds().Intersects(view) {
			continue
		}
		quads = body.Obscurers.ShadowQuads(body.X, body.Y, eye, radius, quads)
	}
	return quads
}
