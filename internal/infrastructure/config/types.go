package config

// PhysicsConfig is the root config for physics.yaml
type PhysicsConfig struct {
	Display    DisplayConfig    `yaml:"display"`
	Simulation SimulationConfig `yaml:"simulation"`
	Player     PlayerConfig     `yaml:"player"`
	Visibility VisibilityConfig `yaml:"visibility"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Scale        int    `yaml:"scale"`
	Title        string `yaml:"title"`
}

// SimulationConfig holds the fixed-step constants.
// Velocities are pixels per tick.
type SimulationConfig struct {
	TickRate         int     `yaml:"tickRate"`         // ticks per second
	MaxTicksPerFrame int     `yaml:"maxTicksPerFrame"` // catch-up cap
	Gravity          float64 `yaml:"gravity"`
	Damping          float64 `yaml:"damping"`
	BucketSize       int     `yaml:"bucketSize"` // spatial index bucket edge (pixels)
}

type PlayerConfig struct {
	Width           int     `yaml:"width"`
	Height          int     `yaml:"height"`
	WalkSpeed       float64 `yaml:"walkSpeed"`
	JumpForce       float64 `yaml:"jumpForce"`
	JumpCut         float64 `yaml:"jumpCut"`         // VY multiplier when jump is released while rising
	JumpBufferTicks int     `yaml:"jumpBufferTicks"` // early presses remembered this long
	CoyoteTicks     int     `yaml:"coyoteTicks"`     // jumps still allowed this long after leaving ground
}

type VisibilityConfig struct {
	Enabled bool    `yaml:"enabled"`
	Radius  float64 `yaml:"radius"`
}

// DefaultPhysicsConfig returns the built-in tuning.
// LoadPhysics overlays physics.yaml on top of these values.
func DefaultPhysicsConfig() *PhysicsConfig {
	return &PhysicsConfig{
		Display: DisplayConfig{
			ScreenWidth:  640,
			ScreenHeight: 360,
			Scale:        2,
			Title:        "tilesim",
		},
		Simulation: SimulationConfig{
			TickRate:         60,
			MaxTicksPerFrame: 5,
			Gravity:          1,
			Damping:          0.6,
			BucketSize:       64,
		},
		Player: PlayerConfig{
			Width:           12,
			Height:          24,
			WalkSpeed:       4,
			JumpForce:       12,
			JumpCut:         0.5,
			JumpBufferTicks: 6,
			CoyoteTicks:     5,
		},
		Visibility: VisibilityConfig{
			Enabled: true,
			Radius:  240,
		},
	}
}
