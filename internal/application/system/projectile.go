package system

import (
	"github.com/younwookim/skyline/internal/domain/entity"
	"github.com/younwookim/skyline/internal/infrastructure/config"
)

// ProjectileSystem spawns player shots and advances both projectile stores
type ProjectileSystem struct {
	config *config.PhysicsConfig
}

// NewProjectileSystem creates a new projectile system
func NewProjectileSystem(cfg *config.PhysicsConfig) *ProjectileSystem {
	return &ProjectileSystem{config: cfg}
}

// Fire is the edge-triggered fire command.
// Requires active play, the weapon, and an elapsed cooldown.
func (s *ProjectileSystem) Fire(ctx *Context) bool {
	if !ctx.Playing() || !ctx.Run.HasWeapon || ctx.Run.ShotCooldown > 0 {
		return false
	}
	p := ctx.World.Player
	shot := s.config.Projectiles.Player
	dir := p.FacingSign()

	x := p.X - shot.Width
	if dir > 0 {
		x = p.Right() - 2
	}
	proj := entity.NewProjectile(x, p.Y+shot.OffsetY, shot.Width, shot.Height, dir*shot.Speed, shot.Lifetime)

	ctx.Run.ShotCooldown = shot.Cooldown
	ctx.World.PlayerShots.Spawn(proj)
	ctx.Events.Emit(ShotFired{Owner: OwnerPlayer, X: proj.X, Y: proj.Y, VX: proj.VX})
	return true
}

// Update advances player shots first, then enemy shots
func (s *ProjectileSystem) Update(ctx *Context, dt float64) {
	s.updatePlayerShots(ctx, dt)
	s.updateEnemyShots(ctx, dt)
}

// alive applies the rules shared by both kinds: move, burn lifetime, and
// drop on expiry, leaving the world, or touching a solid.
func (s *ProjectileSystem) alive(ctx *Context, p *entity.Projectile, dt float64) bool {
	p.Advance(dt)
	if p.Expired() {
		return false
	}
	if p.OutOfWorld(ctx.World.Width) {
		return false
	}
	return !ctx.World.SolidAt(p.Rect)
}

func (s *ProjectileSystem) updatePlayerShots(ctx *Context, dt float64) {
	points := s.config.Scoring.Shot
	enemies := ctx.World.Enemies

	ctx.World.PlayerShots.Retain(func(p *entity.Projectile) bool {
		if !s.alive(ctx, p, dt) {
			return false
		}
		// At most one enemy per shot; store order decides ties
		for i := range enemies {
			enemy := &enemies[i]
			if !enemy.Alive || !entity.Intersects(p.Rect, enemy.Rect) {
				continue
			}
			enemy.Kill()
			ctx.Run.Award(points)
			ctx.Events.Emit(EnemyKilled{Index: i, Cause: KillShot, Points: points})
			return false
		}
		return true
	})
}

func (s *ProjectileSystem) updateEnemyShots(ctx *Context, dt float64) {
	player := ctx.World.Player

	ctx.World.EnemyShots.Retain(func(p *entity.Projectile) bool {
		// Once the player is down nothing else acts this tick
		if !ctx.Playing() {
			return true
		}
		if !s.alive(ctx, p, dt) {
			return false
		}
		if entity.Intersects(p.Rect, player.Rect) {
			ctx.KillPlayer(DeathShot)
			return false
		}
		return true
	})
}
