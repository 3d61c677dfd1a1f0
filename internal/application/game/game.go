// Package game adapts the scene stack to ebiten's frame loop.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/tilesim/internal/application/scene"
)

// maxFrameDelta bounds the elapsed time reported for one frame, so a
// window drag or breakpoint does not look like minutes of game time
const maxFrameDelta = 250 * time.Millisecond

// Game is the ebiten.Game handed to ebiten.RunGame. It owns the current
// scene and measures the wall-clock time between frames.
type Game struct {
	current scene.Scene
	screenW int
	screenH int

	now  func() time.Time
	last time.Time
}

// New makes initialScene current and calls its OnEnter
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		now:     time.Now,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene with the wall-clock time since the
// previous frame and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.frameDelta().Seconds())
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// frameDelta returns the time since the previous call. The first frame
// reports zero.
func (g *Game) frameDelta() time.Duration {
	now := g.now()
	if g.last.IsZero() {
		g.last = now
		return 0
	}
	dt := now.Sub(g.last)
	g.last = now
	return min(max(dt, 0), maxFrameDelta)
}

// Draw implements ebiten.Game
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout implements ebiten.Game with a fixed logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetClock replaces the time source and restarts frame timing
func (g *Game) SetClock(now func() time.Time) {
	g.now = now
	g.last = time.Time{}
}

// Close calls OnExit on the current scene
func (g *Game) Close() {
	g.current.OnExit()
}
