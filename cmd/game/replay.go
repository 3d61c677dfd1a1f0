package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/tilesim/internal/application/replay"
	"github.com/younwookim/tilesim/internal/application/system"
	"github.com/younwookim/tilesim/internal/infrastructure/config"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Verify a recorded session",
	Long: `Re-simulate a recording made with 'tilesim play --record' and compare
the final state digest with the one stored in the file. The stage named
in the recording is used; --stage applies only when it names none.

Examples:
  tilesim replay session.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loader, err := newLoader(flagConfigDir)
		if err != nil {
			return err
		}
		return runReplay(cmd.OutOrStdout(), loader, args[0])
	},
}

// runReplay verifies the recording in filename against a fresh stage
func runReplay(out io.Writer, loader *config.Loader, filename string) error {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return err
	}
	if data.Version != replay.Version {
		log.Warn("replay version differs", "file", data.Version, "want", replay.Version)
	}

	name := data.Stage
	if name == "" {
		name = flagStage
	}
	cfg, stage, err := loadStage(loader, name)
	if err != nil {
		return err
	}

	sim := system.NewSimulation(stage, cfg.Physics)
	input := system.NewInputSystem(&cfg.Physics.Player)
	r := replay.NewReplayer(*data)
	if err := r.Verify(sim, input); err != nil {
		return err
	}

	fmt.Fprintf(out, "replay ok: stage %s  ticks %d  digest %016x\n", name, r.TotalTicks(), data.Digest)
	return nil
}
