// Package scene defines what the game loop drives each frame.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the application. The game loop forwards every
// ebiten frame to the current scene; a scene hands control to another by
// returning it from Update.
type Scene interface {
	// Update advances the scene by dt seconds of wall-clock time.
	// A non-nil next replaces this scene; an error stops the loop.
	Update(dt float64) (next Scene, err error)

	Draw(screen *ebiten.Image)

	// OnEnter runs each time the scene becomes current.
	OnEnter()

	// OnExit runs when the scene is replaced or the window closes.
	// Recordings and other session output are flushed here.
	OnExit()
}
