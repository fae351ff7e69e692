package system

import (
	"github.com/younwookim/skyline/internal/domain/entity"
	"github.com/younwookim/skyline/internal/infrastructure/config"
)

// BuildWorld populates a fresh world from stage data.
// The player is placed at the spawn point resting on the floor.
func BuildWorld(physics *config.PhysicsConfig, stage *config.StageConfig) *entity.World {
	pc := physics.Player
	player := entity.NewPlayer(pc.SpawnX, physics.Physics.FloorY-pc.Height, pc.Width, pc.Height)

	world := entity.NewWorld(physics.Display.ViewHeight, physics.Physics.FloorY, player)
	LoadStage(world, physics, stage)
	return world
}

// LoadStage replaces the level-local stores of world with fresh copies of
// the stage data. Projectiles are cleared and the player respawns.
func LoadStage(world *entity.World, physics *config.PhysicsConfig, stage *config.StageConfig) {
	world.Width = stage.Width

	gc := physics.Goal
	goalY := physics.Physics.FloorY - gc.Height
	if stage.Goal.Y != nil {
		goalY = *stage.Goal.Y
	}
	world.Goal = entity.Goal{Rect: entity.NewRect(stage.Goal.X, goalY, gc.Width, gc.Height)}

	world.Solids = make([]entity.Solid, 0, len(stage.Solids))
	for _, s := range stage.Solids {
		world.Solids = append(world.Solids, entity.Solid{Rect: entity.NewRect(s.X, s.Y, s.W, s.H)})
	}

	world.Coins = make([]entity.Coin, 0, len(stage.Coins))
	for _, c := range stage.Coins {
		world.Coins = append(world.Coins, entity.Coin{X: c.X, Y: c.Y, R: c.R})
	}

	world.WeaponPickups = make([]entity.WeaponPickup, 0, len(stage.Weapons))
	for _, w := range stage.Weapons {
		world.WeaponPickups = append(world.WeaponPickups, entity.WeaponPickup{Rect: entity.NewRect(w.X, w.Y, w.W, w.H)})
	}

	world.Enemies = make([]entity.Enemy, 0, len(stage.Enemies))
	for _, e := range stage.Enemies {
		world.Enemies = append(world.Enemies, entity.NewEnemy(e.X, e.Y, e.W, e.H, e.VX, e.MinX, e.MaxX, e.ShotCooldown))
	}

	world.ClearProjectiles()

	pc := physics.Player
	world.Player.Respawn(pc.SpawnX, physics.Physics.FloorY-pc.Height)
}
