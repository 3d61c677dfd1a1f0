package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/younwookim/tilesim/internal/application/system"
	"github.com/younwookim/tilesim/internal/infrastructure/config"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Describe a stage",
	Long: `Load a stage and print its bodies, paths, actors and spatial index,
followed by every stage the config directory holds.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loader, err := newLoader(flagConfigDir)
		if err != nil {
			return err
		}
		_, stage, err := loadStage(loader, flagStage)
		if err != nil {
			return err
		}
		return runInspect(cmd.OutOrStdout(), loader, stage)
	},
}

func runInspect(out io.Writer, loader *config.Loader, stage *system.Stage) error {
	w := stage.World

	fmt.Fprintf(out, "Stage %s (%s)\n", stage.ID, stage.Name)
	fmt.Fprintf(out, "  spawn (%d,%d)  kill line y=%d\n", stage.Spawn.X, stage.Spawn.Y, stage.KillY)
	fmt.Fprintln(out)

	// Calculate column widths
	nameLen := 4 // "Body" header
	for _, id := range w.BodyIDs() {
		nameLen = max(nameLen, len(bodyName(w.Name[id], uint64(id))))
	}

	fmt.Fprintf(out, "  %-*s  %-10s  %-7s  %-9s  %s\n", nameLen, "Body", "Origin", "Tiles", "Obscurers", "Path")
	fmt.Fprintf(out, "  %-*s  %-10s  %-7s  %-9s  %s\n", nameLen, "----", "------", "-----", "---------", "----")
	for _, id := range w.BodyIDs() {
		b := w.TileBody[id]

		path := "-"
		if p, ok := w.BodyPath[id]; ok {
			path = fmt.Sprintf("%s, %d points, %d px/tick", p.Mode, len(p.Points), p.Speed)
		}

		fmt.Fprintf(out, "  %-*s  %-10s  %-7s  %-9d  %s\n",
			nameLen, bodyName(w.Name[id], uint64(id)),
			fmt.Sprintf("(%d,%d)", b.X, b.Y),
			fmt.Sprintf("%dx%d", b.Width, b.Height()),
			b.Obscurers.Len(), path)
	}
	fmt.Fprintln(out)

	counts := map[string]int{}
	for _, id := range w.ActorIDs() {
		counts[w.Actor[id].Class.String()]++
	}
	fmt.Fprintf(out, "  actors %d (actor %d, flyer %d, static %d)\n",
		w.CountActors(), counts["actor"], counts["flyer"], counts["static"])
	fmt.Fprintf(out, "  index  %d px buckets, %d occupied\n", stage.Index.BucketSize(), stage.Index.Len())
	fmt.Fprintln(out)

	stages, err := loader.ListStages()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Stages in %s: %s\n", loader.BasePath(), strings.Join(stages, ", "))
	return nil
}

func bodyName(name string, id uint64) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("#%d", id)
}
