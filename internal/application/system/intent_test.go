package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/tilesim/internal/domain/entity"
	"github.com/younwookim/tilesim/internal/ecs"
)

func newIntentWorld() (*ecs.World, ecs.EntityID) {
	w := ecs.NewWorld()
	id := w.SpawnPlayer(entity.NewRect(0, 0, 12, 24))
	return w, id
}

func TestApplyIntents_Move(t *testing.T) {
	tests := []struct {
		name   string
		dir    int
		wantVX float64
	}{
		{"left", -1, -4},
		{"right", 1, 4},
		{"idle keeps velocity", 0, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, id := newIntentWorld()
			a := w.Actor[id]
			a.VX = 1.5
			w.Actor[id] = a

			ApplyIntents(w, []Intent{MoveIntent{EntityID: id, Dir: tt.dir, Speed: 4}})

			assert.Equal(t, tt.wantVX, w.Actor[id].VX)
		})
	}
}

func TestApplyIntents_Jump(t *testing.T) {
	w, id := newIntentWorld()
	a := w.Actor[id]
	a.Grounded = true
	w.Actor[id] = a

	ApplyIntents(w, []Intent{JumpIntent{EntityID: id, Force: 12}})

	assert.Equal(t, -12.0, w.Actor[id].VY)
	assert.False(t, w.Actor[id].Grounded)
}

func TestApplyIntents_JumpCut(t *testing.T) {
	tests := []struct {
		name   string
		vy     float64
		wantVY float64
	}{
		{"rising", -10, -5},
		{"falling untouched", 3, 3},
		{"apex untouched", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, id := newIntentWorld()
			a := w.Actor[id]
			a.VY = tt.vy
			w.Actor[id] = a

			ApplyIntents(w, []Intent{JumpCutIntent{EntityID: id, Multiplier: 0.5}})

			assert.Equal(t, tt.wantVY, w.Actor[id].VY)
		})
	}
}

func TestApplyIntents_UnknownEntity(t *testing.T) {
	w, _ := newIntentWorld()

	assert.NotPanics(t, func() {
		ApplyIntents(w, []Intent{
			MoveIntent{EntityID: 99, Dir: 1, Speed: 4},
			JumpIntent{EntityID: 99, Force: 12},
			JumpCutIntent{EntityID: 99, Multiplier: 0.5},
		})
	})
	assert.Equal(t, 1, w.CountActors())
}
