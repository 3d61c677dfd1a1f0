package system

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/younwookim/tilesim/internal/domain/entity"
	"github.com/younwookim/tilesim/internal/ecs"
	"github.com/younwookim/tilesim/internal/infrastructure/config"
)

// killMarginTiles is how far below the lowest body the kill line sits
// when a stage does not set one
const killMarginTiles = 4

// Stage is a loaded world with its index built and obscurers cached
type Stage struct {
	ID    string
	Name  string
	World *ecs.World
	Index *ecs.SpatialIndex
	Spawn entity.Rect
	KillY int // actors whose top passes this line are removed
}

// LoadStage converts a StageConfig into an indexed world
func LoadStage(cfg *config.StageConfig, physics *config.PhysicsConfig) (*Stage, error) {
	mapping := tileMapping(cfg.TileMapping)
	warnUnknownGlyphs(cfg, mapping)

	w := ecs.NewWorld()
	lowest := cfg.PlayerSpawn.Y + physics.Player.Height

	for i, b := range cfg.Bodies {
		width, data := entity.ParseRows(b.Rows, mapping)
		body := entity.NewTileBody(b.X, b.Y, cfg.TileSize, width, data)
		id := w.SpawnBody(body)
		if b.Name != "" {
			w.Name[id] = b.Name
		}
		lowest = max(lowest, body.Bounds().Bottom())

		if b.Path == nil {
			continue
		}
		mode, err := ecs.ParsePathMode(b.Path.Mode)
		if err != nil {
			return nil, fmt.Errorf("%w: body %d: %v", config.ErrInvalidStage, i, err)
		}
		points := make([]ecs.PathPoint, len(b.Path.Points))
		for j, p := range b.Path.Points {
			points[j] = ecs.PathPoint{X: p.X, Y: p.Y}
			lowest = max(lowest, p.Y+body.Bounds().H)
		}
		w.BodyPath[id] = ecs.NewBodyPath(points, b.Path.Speed, mode)
	}

	for i, a := range cfg.Actors {
		class, err := entity.ParsePhysicsClass(a.Class)
		if err != nil {
			return nil, fmt.Errorf("%w: actor %d: %v", config.ErrInvalidStage, i, err)
		}
		w.SpawnActor(entity.NewRect(a.X, a.Y, a.W, a.H), class)
	}

	spawn := entity.NewRect(cfg.PlayerSpawn.X, cfg.PlayerSpawn.Y, physics.Player.Width, physics.Player.Height)
	w.SpawnPlayer(spawn)

	idx := ecs.NewSpatialIndex(physics.Simulation.BucketSize)
	w.IndexAll(idx)
	ecs.ComputeObscurers(w)

	killY := lowest + killMarginTiles*cfg.TileSize
	if cfg.KillY != nil {
		killY = *cfg.KillY
	}

	log.Debug("stage loaded",
		"id", cfg.ID,
		"bodies", len(cfg.Bodies),
		"actors", w.CountActors(),
		"buckets", idx.Len(),
		"killY", killY,
	)

	return &Stage{
		ID:    cfg.ID,
		Name:  cfg.Name,
		World: w,
		Index: idx,
		Spawn: spawn,
		KillY: killY,
	}, nil
}

// tileMapping converts glyph configs to cell flags
func tileMapping(cfg map[string]config.TileMappingConfig) map[rune]entity.TileFlag {
	mapping := make(map[rune]entity.TileFlag, len(cfg))
	for glyph, m := range cfg {
		var flags entity.TileFlag
		if m.Solid {
			flags |= entity.FlagSolid
		}
		if m.Visible {
			flags |= entity.FlagVisible
		}
		if m.Blocking {
			flags |= entity.FlagBlocking
		}
		if m.Obscuring {
			flags |= entity.FlagObscuring
		}
		for _, r := range glyph {
			mapping[r] = flags
		}
	}
	return mapping
}

// warnUnknownGlyphs logs each glyph that has no mapping and is not a
// conventional blank ('.' or ' ')
func warnUnknownGlyphs(cfg *config.StageConfig, mapping map[rune]entity.TileFlag) {
	var unknown []rune
	for _, b := range cfg.Bodies {
		for _, row := range b.Rows {
			for _, r := range row {
				if _, ok := mapping[r]; ok || r == '.' || r == ' ' {
					continue
				}
				if !slices.Contains(unknown, r) {
					unknown = append(unknown, r)
				}
			}
		}
	}
	slices.Sort(unknown)
	for _, r := range unknown {
		log.Warn("unmapped tile glyph treated as empty", "stage", cfg.ID, "glyph", string(r))
	}
}
