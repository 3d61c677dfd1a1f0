package config

// StageConfig is the root config for stage JSON files
type StageConfig struct {
	ID          string                       `json:"id"`
	Name        string                       `json:"name"`
	TileSize    int                          `json:"tileSize"`
	PlayerSpawn PositionConfig               `json:"playerSpawn"`
	KillY       *int                         `json:"killY,omitempty"` // derived from the lowest body when omitted
	TileMapping map[string]TileMappingConfig `json:"tileMapping"`
	Bodies      []BodyConfig                 `json:"bodies"`
	Actors      []ActorSpawnConfig           `json:"actors"`
}

type PositionConfig struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// TileMappingConfig maps a glyph to cell flags
type TileMappingConfig struct {
	Solid     bool `json:"solid"`
	Visible   bool `json:"visible"`
	Blocking  bool `json:"blocking"`
	Obscuring bool `json:"obscuring"`
}

// BodyConfig is one tile grid. Rows use tileMapping glyphs; unmapped
// glyphs are empty cells.
type BodyConfig struct {
	Name string      `json:"name"`
	X    int         `json:"x"`
	Y    int         `json:"y"`
	Rows []string    `json:"rows"`
	Path *PathConfig `json:"path,omitempty"`
}

// PathConfig moves a body through waypoints.
// Mode is "loop", "pingpong" or "once".
type PathConfig struct {
	Points []PositionConfig `json:"points"`
	Speed  int              `json:"speed"`
	Mode   string           `json:"mode"`
}

// ActorSpawnConfig places a non-player actor.
// Class is "static", "actor" or "flyer"; empty means "actor".
type ActorSpawnConfig struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	W     int    `json:"w"`
	H     int    `json:"h"`
	Class string `json:"class"`
}
