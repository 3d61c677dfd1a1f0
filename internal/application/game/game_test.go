package game

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/tilesim/internal/application/scene"
)

// mockScene is a test double for Scene interface
type mockScene struct {
	updateCalled  int
	drawCalled    int
	onEnterCalled int
	onExitCalled  int
	nextScene     scene.Scene
	updateErr     error
	dts           []float64
}

func (m *mockScene) Update(dt float64) (scene.Scene, error) {
	m.updateCalled++
	m.dts = append(m.dts, dt)
	return m.nextScene, m.updateErr
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawCalled++
}

func (m *mockScene) OnEnter() {
	m.onEnterCalled++
}

func (m *mockScene) OnExit() {
	m.onExitCalled++
}

func TestNew(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 320, 240)

	assert.NotNil(t, g)
	assert.Equal(t, 1, mockInitial.onEnterCalled, "OnEnter should be called on initial scene")
}

func TestGame_Update(t *testing.T) {
	tests := []struct {
		name      string
		updates   int
		err       error
		wantCalls int
	}{
		{"single frame", 1, nil, 1},
		{"stays on scene", 5, nil, 5},
		{"error stops at first frame", 1, assert.AnError, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockScene{updateErr: tt.err}
			g := New(m, 320, 240)

			for i := 0; i < tt.updates; i++ {
				err := g.Update()
				if tt.err != nil {
					assert.ErrorIs(t, err, tt.err)
				} else {
					assert.NoError(t, err)
				}
			}

			assert.Equal(t, tt.wantCalls, m.updateCalled)
			assert.Zero(t, m.onExitCalled, "no transition, no OnExit")
		})
	}
}

func TestGame_Draw_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 320, 240)

	// Create a dummy image for testing
	img := ebiten.NewImage(320, 240)
	g.Draw(img)

	assert.Equal(t, 1, mockInitial.drawCalled, "Draw should delegate to current scene")
}

func TestGame_Layout(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 320, 240)

	w, h := g.Layout(640, 480)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}

func TestGame_SceneTransition(t *testing.T) {
	scene1 := &mockScene{}
	scene2 := &mockScene{}

	scene1.nextScene = scene2
	g := New(scene1, 320, 240)

	assert.NoError(t, g.Update())
	assert.Equal(t, 1, scene1.onExitCalled)
	assert.Equal(t, 1, scene2.onEnterCalled)

	assert.NoError(t, g.Update())
	assert.Equal(t, 1, scene1.updateCalled)
	assert.Equal(t, 1, scene2.updateCalled)

	// Close reaches the new scene only
	g.Close()
	assert.Equal(t, 1, scene1.onExitCalled)
	assert.Equal(t, 1, scene2.onExitCalled)
}

// fakeClock is a manually advanced time source
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func TestGame_Update_PassesElapsedTime(t *testing.T) {
	tests := []struct {
		name    string
		advance time.Duration
		want    float64
	}{
		{"one frame", 20 * time.Millisecond, 0.02},
		{"long stall is clamped", 5 * time.Second, 0.25},
		{"clock going backwards", -time.Second, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockScene{}
			clock := &fakeClock{t: time.Unix(1000, 0)}
			g := New(m, 320, 240)
			g.SetClock(clock.now)

			assert.NoError(t, g.Update())
			clock.t = clock.t.Add(tt.advance)
			assert.NoError(t, g.Update())

			assert.Equal(t, 0.0, m.dts[0], "first frame has no elapsed time")
			assert.InDelta(t, tt.want, m.dts[1], 1e-9)
		})
	}
}

func TestGame_Close(t *testing.T) {
	m := &mockScene{}
	g := New(m, 320, 240)

	g.Close()

	assert.Equal(t, 1, m.onExitCalled)
}
