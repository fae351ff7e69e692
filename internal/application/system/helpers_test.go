package system

import (
	"github.com/younwookim/skyline/internal/application/state"
	"github.com/younwookim/skyline/internal/domain/entity"
	"github.com/younwookim/skyline/internal/infrastructure/config"
)

func createTestPhysicsConfig() *config.PhysicsConfig {
	return &config.PhysicsConfig{
		Display: config.DisplayConfig{ViewWidth: 960, ViewHeight: 540, Framerate: 60},
		Physics: config.PhysicsSettings{
			Gravity:       1900,
			FloorY:        470,
			FallMargin:    180,
			MaxFrameDelta: 0.033,
		},
		Player: config.PlayerConfig{Width: 36, Height: 48, SpawnX: 80, Speed: 300},
		Jump:   config.JumpConfig{Speed: 820, CoyoteTime: 0.12},
		Combat: config.CombatConfig{StompMinVY: -40, StompMaxDepth: 26, BounceSpeed: 430},
		Projectiles: config.ProjectilesConfig{
			Player: config.ShotConfig{Speed: 760, Cooldown: 0.18, Lifetime: 0.9, Width: 14, Height: 6, OffsetY: 18},
			Enemy:  config.ShotConfig{Speed: 320, Cooldown: 1.25, Lifetime: 2.1, Width: 12, Height: 6},
		},
		Enemy:   config.EnemyAIConfig{AggroRange: 560, AggroBand: 120},
		Pickups: config.PickupConfig{CoinReach: 16},
		Goal:    config.GoalConfig{Width: 24, Height: 160, Margin: 24},
		Scoring: config.ScoringConfig{Coin: 100, Weapon: 200, Stomp: 150, Shot: 150, LevelComplete: 500, Win: 5000},
		Campaign: config.CampaignConfig{
			Lives:  3,
			Stages: []string{"level1", "level2", "level3", "level4"},
		},
	}
}

// createTestWorld returns a 3000px wide world with a floor at y=470 and the
// player standing on it at x=80.
func createTestWorld() *entity.World {
	player := entity.NewPlayer(80, 422, 36, 48)
	world := entity.NewWorld(540, 470, player)
	world.Width = 3000
	world.Goal = entity.Goal{Rect: entity.NewRect(2900, 310, 24, 160)}
	world.Solids = []entity.Solid{{Rect: entity.NewRect(0, 470, 3000, 100)}}
	return world
}

func createTestContext(world *entity.World) *Context {
	run := state.NewRun(3, 4)
	run.ResetLevel(world.TotalCoins(), world.Width)
	return NewContext(world, run)
}

// farEnemy is a stationary enemy out of aggro range that will not fire
func farEnemy(x float64) entity.Enemy {
	return entity.NewEnemy(x, 436, 34, 34, 0, x, x+34, 10)
}
