package config

// PhysicsConfig is the root config for physics.yaml
type PhysicsConfig struct {
	Display     DisplayConfig     `yaml:"display"`
	Physics     PhysicsSettings   `yaml:"physics"`
	Player      PlayerConfig      `yaml:"player"`
	Jump        JumpConfig        `yaml:"jump"`
	Combat      CombatConfig      `yaml:"combat"`
	Projectiles ProjectilesConfig `yaml:"projectiles"`
	Enemy       EnemyAIConfig     `yaml:"enemy"`
	Pickups     PickupConfig      `yaml:"pickups"`
	Goal        GoalConfig        `yaml:"goal"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Campaign    CampaignConfig    `yaml:"campaign"`
}

// DisplayConfig describes the fixed view the camera follows with
type DisplayConfig struct {
	ViewWidth  float64 `yaml:"viewWidth"`
	ViewHeight float64 `yaml:"viewHeight"`
	Framerate  int     `yaml:"framerate"`
}

type PhysicsSettings struct {
	Gravity float64 `yaml:"gravity"`
	FloorY  float64 `yaml:"floorY"`
	// FallMargin is how far below the view the player may drop before dying
	FallMargin float64 `yaml:"fallMargin"`
	// MaxFrameDelta clamps wall-clock frame deltas (seconds)
	MaxFrameDelta float64 `yaml:"maxFrameDelta"`
}

type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	SpawnX float64 `yaml:"spawnX"`
	Speed  float64 `yaml:"speed"`
}

type JumpConfig struct {
	Speed      float64 `yaml:"speed"`
	CoyoteTime float64 `yaml:"coyoteTime"`
}

// CombatConfig holds the stomp rules
type CombatConfig struct {
	StompMinVY    float64 `yaml:"stompMinVY"`    // player vy must be >= this
	StompMaxDepth float64 `yaml:"stompMaxDepth"` // max overlap from the enemy top
	BounceSpeed   float64 `yaml:"bounceSpeed"`
}

type ProjectilesConfig struct {
	Player ShotConfig `yaml:"player"`
	Enemy  ShotConfig `yaml:"enemy"`
}

type ShotConfig struct {
	Speed    float64 `yaml:"speed"`
	Cooldown float64 `yaml:"cooldown"`
	Lifetime float64 `yaml:"lifetime"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	OffsetY  float64 `yaml:"offsetY,omitempty"`
}

type EnemyAIConfig struct {
	AggroRange float64 `yaml:"aggroRange"` // horizontal, center to center
	AggroBand  float64 `yaml:"aggroBand"`  // vertical, center to center
}

type PickupConfig struct {
	CoinReach float64 `yaml:"coinReach"`
}

type GoalConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Margin float64 `yaml:"margin"`
}

type ScoringConfig struct {
	Coin          int `yaml:"coin"`
	Weapon        int `yaml:"weapon"`
	Stomp         int `yaml:"stomp"`
	Shot          int `yaml:"shot"`
	LevelComplete int `yaml:"levelComplete"` // multiplied by the level number
	Win           int `yaml:"win"`
}

type CampaignConfig struct {
	Lives  int      `yaml:"lives"`
	Stages []string `yaml:"stages"`
}

// FixedDT returns the simulation tick period in seconds
func (c *PhysicsConfig) FixedDT() float64 {
	if c.Display.Framerate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.Display.Framerate)
}
