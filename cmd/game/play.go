package main

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/tilesim/internal/application/game"
	"github.com/younwookim/tilesim/internal/application/scene/playing"
)

var flagRecord string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the sandbox window",
	Long: `Open the stage in a window and simulate it in real time.

Controls:
  A/D, Left/Right  - Move
  W/Space          - Jump (hold for full height)
  P                - Pause
  .                - Step one tick while paused
  R                - Respawn
  V                - Toggle shadows

Examples:
  tilesim play
  tilesim play --stage demo --record session.json`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (e.g., --record replay.json)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	loader, err := newLoader(flagConfigDir)
	if err != nil {
		return err
	}
	cfg, stage, err := loadStage(loader, flagStage)
	if err != nil {
		return err
	}

	display := cfg.Physics.Display
	g := game.New(playing.New(cfg, stage, flagRecord), display.ScreenWidth, display.ScreenHeight)
	defer g.Close()

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(cfg.Physics.Simulation.TickRate)

	log.Info("opening window", "stage", stage.ID, "config", loader.BasePath())
	return ebiten.RunGame(g)
}
