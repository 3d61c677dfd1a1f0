package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/tilesim/internal/ecs"
	"github.com/younwookim/tilesim/internal/infrastructure/config"
)

// InputSystem turns player input into intents
type InputSystem struct {
	config *config.PlayerConfig

	// Timers, in ticks
	coyote     int
	jumpBuffer int
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg *config.PlayerConfig) *InputSystem {
	return &InputSystem{config: cfg}
}

// InputState holds the current input state
type InputState struct {
	Left         bool
	Right        bool
	Jump         bool
	JumpPressed  bool
	JumpReleased bool
	Pause        bool // toggle
	Step         bool // advance one tick while paused
	Respawn      bool
	Shadows      bool // toggle shadow rendering
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:         ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:        ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump:         ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeySpace),
		JumpPressed:  inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		JumpReleased: inpututil.IsKeyJustReleased(ebiten.KeyW) || inpututil.IsKeyJustReleased(ebiten.KeySpace),
		Pause:        inpututil.IsKeyJustPressed(ebiten.KeyP),
		Step:         inpututil.IsKeyJustPressed(ebiten.KeyPeriod),
		Respawn:      inpututil.IsKeyJustPressed(ebiten.KeyR),
		Shadows:      inpututil.IsKeyJustPressed(ebiten.KeyV),
	}
}

// Edges returns the state with one-shot flags cleared, for the extra
// ticks run within a single frame
func (in InputState) Edges() InputState {
	return InputState{
		Left:  in.Left,
		Right: in.Right,
		Jump:  in.Jump,
	}
}

// Intents produces the player's intents for one tick
func (s *InputSystem) Intents(w *ecs.World, input InputState) []Intent {
	id := w.MustPlayer()
	player := w.Actor[id]

	s.updateTimers(player.Grounded)

	var intents []Intent
	if m := s.handleMovement(id, input); m != nil {
		intents = append(intents, m)
	}
	intents = append(intents, s.handleJump(id, player.Grounded, player.VY, input)...)
	return intents
}

// Reset clears jump timers, e.g. after a respawn
func (s *InputSystem) Reset() {
	s.coyote = 0
	s.jumpBuffer = 0
}

// updateTimers updates the coyote and jump buffer timers
func (s *InputSystem) updateTimers(grounded bool) {
	// Coyote time
	if grounded {
		s.coyote = s.config.CoyoteTicks
	} else if s.coyote > 0 {
		s.coyote--
	}

	// Jump buffer
	if s.jumpBuffer > 0 {
		s.jumpBuffer--
	}
}

// handleMovement handles horizontal movement
func (s *InputSystem) handleMovement(id ecs.EntityID, input InputState) Intent {
	dir := 0
	if input.Left {
		dir--
	}
	if input.Right {
		dir++
	}
	if dir == 0 {
		return nil
	}
	return MoveIntent{EntityID: id, Dir: dir, Speed: s.config.WalkSpeed}
}

// handleJump handles jumping
func (s *InputSystem) handleJump(id ecs.EntityID, grounded bool, vy float64, input InputState) []Intent {
	// Buffer jump input
	if input.JumpPressed {
		s.jumpBuffer = s.config.JumpBufferTicks
	}

	// Can jump if on ground or has coyote time
	canJump := grounded || s.coyote > 0
	wantsJump := s.jumpBuffer > 0

	if canJump && wantsJump {
		s.coyote = 0
		s.jumpBuffer = 0
		return []Intent{JumpIntent{EntityID: id, Force: s.config.JumpForce}}
	}

	// Variable jump height (release to reduce upward velocity)
	if input.JumpReleased && vy < 0 {
		return []Intent{JumpCutIntent{EntityID: id, Multiplier: s.config.JumpCut}}
	}
	return nil
}
