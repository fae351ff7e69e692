package system

import (
	"math"

	"github.com/younwookim/skyline/internal/domain/entity"
	"github.com/younwookim/skyline/internal/infrastructure/config"
)

// EnemySystem runs patrol, player contact and aggro fire for every live enemy
type EnemySystem struct {
	config *config.PhysicsConfig
}

// NewEnemySystem creates a new enemy system
func NewEnemySystem(cfg *config.PhysicsConfig) *EnemySystem {
	return &EnemySystem{config: cfg}
}

// Update advances all enemies by one tick.
// Stops as soon as the player dies so nothing acts on a finished tick.
func (s *EnemySystem) Update(ctx *Context, dt float64) {
	p := ctx.World.Player

	for i := range ctx.World.Enemies {
		enemy := &ctx.World.Enemies[i]
		if !enemy.Alive {
			continue
		}

		enemy.Patrol(dt)
		enemy.CoolDown(dt)

		// Contact resolves before the aggro shot: a stomped enemy never fires.
		if entity.Intersects(p.Rect, enemy.Rect) {
			if s.isStomp(p, enemy) {
				enemy.Kill()
				p.VY = -s.config.Combat.BounceSpeed
				ctx.Run.Award(s.config.Scoring.Stomp)
				ctx.Events.Emit(EnemyKilled{Index: i, Cause: KillStomp, Points: s.config.Scoring.Stomp})
				continue
			}
			ctx.KillPlayer(DeathContact)
			if !ctx.Playing() {
				return
			}
		}

		s.tryShoot(ctx, enemy)
	}
}

// isStomp reports the stomp geometry: falling or near-level, a shallow
// overlap from the top, and the player's top above the enemy's top.
// Stomp wins over contact death whenever this holds.
func (s *EnemySystem) isStomp(p *entity.Player, enemy *entity.Enemy) bool {
	overlapFromTop := p.Bottom() - enemy.Y
	return p.VY >= s.config.Combat.StompMinVY &&
		overlapFromTop > 0 &&
		overlapFromTop < s.config.Combat.StompMaxDepth &&
		p.Y < enemy.Y
}

// tryShoot fires at the player when off cooldown and within the aggro box
func (s *EnemySystem) tryShoot(ctx *Context, enemy *entity.Enemy) {
	if enemy.ShotCooldown > 0 {
		return
	}
	p := ctx.World.Player
	dx := p.CenterX() - enemy.CenterX()
	dy := p.CenterY() - enemy.CenterY()
	if math.Abs(dx) >= s.config.Enemy.AggroRange || math.Abs(dy) >= s.config.Enemy.AggroBand {
		return
	}

	shot := s.config.Projectiles.Enemy
	enemy.ShotCooldown = shot.Cooldown

	dir := entity.Sign(dx)
	if dir == 0 {
		dir = 1
	}
	proj := entity.NewProjectile(
		enemy.CenterX()-shot.Width/2,
		enemy.CenterY()-shot.Height/2,
		shot.Width, shot.Height,
		dir*shot.Speed,
		shot.Lifetime,
	)
	ctx.World.EnemyShots.Spawn(proj)
	ctx.Events.Emit(ShotFired{Owner: OwnerEnemy, X: proj.X, Y: proj.Y, VX: proj.VX})
}
