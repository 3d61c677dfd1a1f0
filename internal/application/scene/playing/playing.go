// Package playing provides the interactive sandbox scene.
package playing

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/tilesim/internal/application/replay"
	"github.com/younwookim/tilesim/internal/application/scene"
	"github.com/younwookim/tilesim/internal/application/state"
	"github.com/younwookim/tilesim/internal/application/system"
	"github.com/younwookim/tilesim/internal/domain/entity"
	"github.com/younwookim/tilesim/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorWall     = color.RGBA{80, 80, 100, 255}
	colorPlatform = color.RGBA{120, 110, 80, 255}
	colorFoliage  = color.RGBA{40, 90, 50, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorActor    = color.RGBA{200, 140, 80, 255}
	colorFlyer    = color.RGBA{120, 160, 230, 255}
	colorStatic   = color.RGBA{150, 150, 150, 255}
	colorCrushed  = color.RGBA{230, 60, 60, 255}
	colorShadow   = color.RGBA{8, 8, 16, 235}
	colorEye      = color.RGBA{255, 240, 120, 255}
	colorOverlay  = color.RGBA{0, 0, 0, 128}
)

// Playing is the sandbox scene: a stage simulated at a fixed tick rate
// with the player's line of sight drawn as shadow quads
type Playing struct {
	config    *config.GameConfig
	sim       *system.Simulation
	input     *system.InputSystem
	readInput func() system.InputState
	state     state.SimState
	screenW   int
	screenH   int
	extent    entity.Rect // union of body bounds at load

	showShadows bool
	radius      float64
	whiteImg    *ebiten.Image

	// One-shot presses waiting for a tick to consume them
	latch system.InputState

	respawns int

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
}

// New creates a new Playing scene.
// If recordPath is not empty, every tick's input is recorded.
func New(cfg *config.GameConfig, stage *system.Stage, recordPath string) *Playing {
	input := system.NewInputSystem(&cfg.Physics.Player)

	p := &Playing{
		config:         cfg,
		sim:            system.NewSimulation(stage, cfg.Physics),
		input:          input,
		readInput:      input.GetInput,
		state:          state.StateRunning,
		screenW:        cfg.Physics.Display.ScreenWidth,
		screenH:        cfg.Physics.Display.ScreenHeight,
		extent:         worldExtent(stage),
		showShadows:    cfg.Physics.Visibility.Enabled,
		radius:         cfg.Physics.Visibility.Radius,
		recordFilename: recordPath,
	}

	if recordPath != "" {
		p.recorder = replay.NewRecorder(stage.ID)
		log.Info("recording enabled", "file", recordPath)
	}

	return p
}

// worldExtent returns the union of all body bounds
func worldExtent(stage *system.Stage) entity.Rect {
	w := stage.World
	ext := stage.Spawn
	for _, id := range w.BodyIDs() {
		b := w.TileBody[id].Bounds()
		x0, y0 := min(ext.X, b.X), min(ext.Y, b.Y)
		x1, y1 := max(ext.Right(), b.Right()), max(ext.Bottom(), b.Bottom())
		ext = entity.NewRect(x0, y0, x1-x0, y1-y0)
	}
	return ext
}

// Simulation returns the running simulation
func (p *Playing) Simulation() *system.Simulation {
	return p.sim
}

// State returns the run state
func (p *Playing) State() state.SimState {
	return p.state
}

// Update advances the simulation by the elapsed frame time (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	in := p.readInput()

	if in.Pause {
		p.state = p.state.Toggle()
		log.Debug("sandbox state changed", "state", p.state, "tick", p.sim.Ticks())
	}
	if in.Shadows {
		p.showShadows = !p.showShadows
	}

	p.latch.JumpPressed = p.latch.JumpPressed || in.JumpPressed
	p.latch.JumpReleased = p.latch.JumpReleased || in.JumpReleased
	p.latch.Respawn = p.latch.Respawn || in.Respawn

	read := func(int) system.InputState {
		frame := in.Edges()
		frame.JumpPressed = p.latch.JumpPressed
		frame.JumpReleased = p.latch.JumpReleased
		frame.Respawn = p.latch.Respawn
		p.latch = system.InputState{}

		if p.recorder != nil {
			p.recorder.RecordTick(frame)
		}
		return frame
	}

	switch p.state {
	case state.StateRunning:
		elapsed := time.Duration(dt * float64(time.Second))
		p.sim.Advance(elapsed, p.input, read)
	case state.StatePaused:
		if in.Step {
			p.state = state.StateStepping
		}
	}

	if p.state == state.StateStepping {
		p.sim.Step(p.input, read(0))
		p.state = state.StatePaused
	}

	if n := p.sim.Respawns(); n != p.respawns {
		p.respawns = n
		log.Info("player respawned", "tick", p.sim.Ticks(), "total", n)
	}

	return nil, nil // nil = stay on this scene
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || !p.recorder.IsRecording() {
		return
	}
	p.recorder.Finish(p.sim.Digest())

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Error("failed to save recording", "file", filename, "err", err)
		return
	}
	log.Info("recording saved", "file", filename, "ticks", p.recorder.TickCount(), "digest", fmt.Sprintf("%016x", p.sim.Digest()))
}

// Draw renders the sandbox
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	eye := p.sim.Eye()
	camX := clampCamera(int(eye.X), p.screenW, p.extent.X, p.extent.Right())
	camY := clampCamera(int(eye.Y), p.screenH, p.extent.Y, p.extent.Bottom())

	p.drawBodies(screen, camX, camY)
	p.drawActors(screen, camX, camY)
	if p.showShadows {
		p.drawShadows(screen, camX, camY)
	}
	ebitenutil.DrawRect(screen, eye.X-float64(camX)-1, eye.Y-float64(camY)-1, 2, 2, colorEye)

	p.drawUI(screen)
	if p.state != state.StateRunning {
		p.drawPauseOverlay(screen)
	}
}

// clampCamera returns the left (or top) edge of a view of the given size
// centered on center and kept within [lo, hi). Extents smaller than the
// view are centered instead.
func clampCamera(center, size, lo, hi int) int {
	if hi-lo <= size {
		return lo - (size-(hi-lo))/2
	}
	return min(max(center-size/2, lo), hi-size)
}

// cellColor picks the draw color for a visible cell
func cellColor(f entity.TileFlag) color.Color {
	wall := entity.FlagSolid | entity.FlagObscuring
	switch {
	case f&wall == wall:
		return colorWall
	case f.Has(entity.FlagSolid):
		return colorPlatform
	default:
		return colorFoliage
	}
}

func (p *Playing) drawBodies(screen *ebiten.Image, camX, camY int) {
	view := entity.NewRect(camX, camY, p.screenW, p.screenH)
	w := p.sim.World()

	for _, id := range w.BodyIDs() {
		body := w.TileBody[id]
		if !body.Bounds().Intersects(view) {
			continue
		}
		c0, r0, c1, r1 := body.TileRange(view)
		for row := max(r0, 0); row <= min(r1, body.Height()-1); row++ {
			for col := max(c0, 0); col <= min(c1, body.Width-1); col++ {
				cell := body.Cell(col, row)
				if !cell.Has(entity.FlagVisible) {
					continue
				}
				x := float64(body.X + col*body.Size - camX)
				y := float64(body.Y + row*body.Size - camY)
				ebitenutil.DrawRect(screen, x, y, float64(body.Size), float64(body.Size), cellColor(cell))
			}
		}
	}
}

func (p *Playing) drawActors(screen *ebiten.Image, camX, camY int) {
	w := p.sim.World()
	for _, id := range w.ActorIDs() {
		r, ok := w.Rect[id]
		if !ok {
			continue
		}
		actor := w.Actor[id]

		var c color.Color
		switch {
		case actor.Crushed:
			c = colorCrushed
		case id == w.PlayerID:
			c = colorPlayer
		case actor.Class == entity.ClassStatic:
			c = colorStatic
		case actor.Class == entity.ClassFlyer:
			c = colorFlyer
		default:
			c = colorActor
		}

		ebitenutil.DrawRect(screen, float64(r.X-camX), float64(r.Y-camY), float64(r.W), float64(r.H), c)
	}
}

func (p *Playing) drawShadows(screen *ebiten.Image, camX, camY int) {
	if p.whiteImg == nil {
		p.whiteImg = ebiten.NewImage(1, 1)
		p.whiteImg.Fill(color.White)
	}

	for _, q := range p.sim.ShadowQuads(p.radius) {
		p.drawQuad(screen, q, float32(camX), float32(camY))
	}
}

// drawQuad fills a shadow quad in screen space
func (p *Playing) drawQuad(dst *ebiten.Image, q entity.Quad, camX, camY float32) {
	path := vector.Path{}
	path.MoveTo(float32(q.Points[0].X)-camX, float32(q.Points[0].Y)-camY)
	for _, pt := range q.Points[1:] {
		path.LineTo(float32(pt.X)-camX, float32(pt.Y)-camY)
	}
	path.Close()

	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vertices {
		vertices[i].SrcX = 0
		vertices[i].SrcY = 0
		vertices[i].ColorR = float32(colorShadow.R) / 255
		vertices[i].ColorG = float32(colorShadow.G) / 255
		vertices[i].ColorB = float32(colorShadow.B) / 255
		vertices[i].ColorA = float32(colorShadow.A) / 255
	}

	dst.DrawTriangles(vertices, indices, p.whiteImg, &ebiten.DrawTrianglesOptions{AntiAlias: false})
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	status := fmt.Sprintf("tick %d  %s  respawns %d  TPS %.0f",
		p.sim.Ticks(), p.state, p.sim.Respawns(), ebiten.ActualTPS())
	ebitenutil.DebugPrintAt(screen, status, 4, p.screenH-16)

	// Controls
	debugText := "A/D: Move | W: Jump | P: Pause | .: Step | R: Respawn | V: Shadows"
	ebitenutil.DebugPrint(screen, debugText)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorOverlay)

	text := "PAUSED\n\nP: resume  .: step"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	st := p.sim.Stage()
	log.Info("sandbox started", "stage", st.ID, "actors", st.World.CountActors(), "killY", st.KillY)
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
