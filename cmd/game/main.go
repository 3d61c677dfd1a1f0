// tilesim is a tile-body platformer sandbox.
//
// Usage:
//
//	tilesim play              - Open the sandbox window
//	tilesim sim --ticks N     - Run headless and print the state digest
//	tilesim inspect           - Describe a stage's bodies and index
//	tilesim replay <file>     - Re-simulate a recording and check its digest
//
// Global flags:
//
//	--config <dir>     - Config directory (default: embedded configs)
//	--stage <name>     - Stage to load (default: demo)
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/tilesim/internal/application/system"
	"github.com/younwookim/tilesim/internal/infrastructure/config"
)

var (
	// Global flags
	flagConfigDir string
	flagStage     string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilesim",
	Short: "Tile-body platformer sandbox",
	Long: `tilesim simulates actors moving through tile bodies at a fixed tick rate.

Available commands:
  play     - Open the sandbox window
  sim      - Run a stage headless and print its state digest
  inspect  - Describe a stage
  replay   - Verify a recorded session

Examples:
  tilesim play
  tilesim play --record session.json
  tilesim sim --ticks 600
  tilesim inspect --stage demo
  tilesim replay session.json`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return err
		}
		log.SetLevel(level)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "Config directory (empty = embedded configs)")
	rootCmd.PersistentFlags().StringVar(&flagStage, "stage", "demo", "Stage name under stages/")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(replayCmd)
}

// newLoader returns a loader over dir, or over the embedded configs when
// dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// loadStage loads the configs and builds the named stage
func loadStage(loader *config.Loader, name string) (*config.GameConfig, *system.Stage, error) {
	cfg, err := loader.LoadAll(name)
	if err != nil {
		return nil, nil, err
	}

	stage, err := system.LoadStage(cfg.Stage, cfg.Physics)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build stage %q: %w", name, err)
	}
	return cfg, stage, nil
}
