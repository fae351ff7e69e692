package config

// StageConfig is the root config for stage YAML files
type StageConfig struct {
	ID      string             `yaml:"id"`
	Name    string             `yaml:"name"`
	Width   float64            `yaml:"width"`
	Goal    GoalSpawnConfig    `yaml:"goal"`
	Solids  []RectConfig       `yaml:"solids"`
	Coins   []CoinSpawnConfig  `yaml:"coins"`
	Enemies []EnemySpawnConfig `yaml:"enemies"`
	Weapons []RectConfig       `yaml:"weapons"`
}

// GoalSpawnConfig places the exit. Y defaults to resting on the floor.
type GoalSpawnConfig struct {
	X float64  `yaml:"x"`
	Y *float64 `yaml:"y,omitempty"`
}

type RectConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type CoinSpawnConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	R float64 `yaml:"r"`
}

type EnemySpawnConfig struct {
	X            float64 `yaml:"x"`
	Y            float64 `yaml:"y"`
	W            float64 `yaml:"w"`
	H            float64 `yaml:"h"`
	VX           float64 `yaml:"vx"`
	MinX         float64 `yaml:"minX"`
	MaxX         float64 `yaml:"maxX"`
	ShotCooldown float64 `yaml:"shotCooldown"`
}
