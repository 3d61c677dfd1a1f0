package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidStage is returned when a stage file parses but is unusable
	ErrInvalidStage = errors.New("invalid stage")
	// ErrInvalidPhysics is returned when physics.yaml holds unusable values
	ErrInvalidPhysics = errors.New("invalid physics config")
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics *PhysicsConfig
	Stage   *StageConfig
}

// Loader loads configuration files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the path the loader was created with
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadPhysics loads physics.yaml over the built-in defaults.
// Keys missing from the file keep their default value.
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "physics.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read physics.yaml: %w", err)
	}

	cfg := DefaultPhysicsConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse physics.yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("physics.yaml: %w", err)
	}

	return cfg, nil
}

// LoadStage loads a stage JSON file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	p := "stages/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
	}

	var cfg StageConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("stage %s: %w", name, err)
	}

	return &cfg, nil
}

// ListStages returns the names of all stage files, sorted
func (l *Loader) ListStages() ([]string, error) {
	matches, err := fs.Glob(l.fsys, "stages/*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to list stages: %w", err)
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), ".json"))
	}
	return names, nil
}

// LoadAll loads physics and the named stage
func (l *Loader) LoadAll(stage string) (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	st, err := l.LoadStage(stage)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics: physics,
		Stage:   st,
	}, nil
}

// Validate checks values the simulation cannot run with
func (c *PhysicsConfig) Validate() error {
	sim := c.Simulation
	switch {
	case sim.TickRate <= 0:
		return fmt.Errorf("%w: tickRate must be positive, got %d", ErrInvalidPhysics, sim.TickRate)
	case sim.MaxTicksPerFrame <= 0:
		return fmt.Errorf("%w: maxTicksPerFrame must be positive, got %d", ErrInvalidPhysics, sim.MaxTicksPerFrame)
	case sim.BucketSize <= 0:
		return fmt.Errorf("%w: bucketSize must be positive, got %d", ErrInvalidPhysics, sim.BucketSize)
	case sim.Damping < 0 || sim.Damping > 1:
		return fmt.Errorf("%w: damping must be within [0, 1], got %g", ErrInvalidPhysics, sim.Damping)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive, got %dx%d", ErrInvalidPhysics, c.Player.Width, c.Player.Height)
	}
	return nil
}

// Validate checks structural problems in a stage
func (c *StageConfig) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidStage)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("%w: tileSize must be positive, got %d", ErrInvalidStage, c.TileSize)
	}
	for glyph := range c.TileMapping {
		if len([]rune(glyph)) != 1 {
			return fmt.Errorf("%w: tileMapping key %q must be a single character", ErrInvalidStage, glyph)
		}
	}
	for i, b := range c.Bodies {
		if len(b.Rows) == 0 {
			return fmt.Errorf("%w: body %d has no rows", ErrInvalidStage, i)
		}
		if b.Path == nil {
			continue
		}
		if len(b.Path.Points) == 0 {
			return fmt.Errorf("%w: body %d path has no points", ErrInvalidStage, i)
		}
		if b.Path.Speed <= 0 {
			return fmt.Errorf("%w: body %d path speed must be positive, got %d", ErrInvalidStage, i, b.Path.Speed)
		}
	}
	for i, a := range c.Actors {
		if a.W <= 0 || a.H <= 0 {
			return fmt.Errorf("%w: actor %d size must be positive, got %dx%d", ErrInvalidStage, i, a.W, a.H)
		}
	}
	return nil
}
