package system

import (
	"github.com/younwookim/skyline/internal/domain/entity"
	"github.com/younwookim/skyline/internal/infrastructure/config"
)

// PlayerSystem integrates input and gravity into the player's motion
type PlayerSystem struct {
	config *config.PhysicsConfig
}

// NewPlayerSystem creates a new player system
func NewPlayerSystem(cfg *config.PhysicsConfig) *PlayerSystem {
	return &PlayerSystem{config: cfg}
}

// Update advances the player by one tick
func (s *PlayerSystem) Update(ctx *Context, input Input, dt float64) {
	p := ctx.World.Player

	// Horizontal intent
	axis := input.Axis()
	p.VX = axis * s.config.Player.Speed
	if axis != 0 {
		p.Facing = int(axis)
	}

	// Coyote window refills while grounded and drains in the air
	if p.OnGround {
		p.CoyoteTime = s.config.Jump.CoyoteTime
	} else {
		p.CoyoteTime -= dt
		if p.CoyoteTime < 0 {
			p.CoyoteTime = 0
		}
	}

	p.VY += s.config.Physics.Gravity * dt

	// X first, then Y. The order is part of the observable physics.
	p.X += p.VX * dt
	p.X = entity.Clamp(p.X, 0, ctx.World.Width-p.W)
	ResolveHorizontal(p, ctx.World.Solids)

	p.Y += p.VY * dt
	ResolveVertical(p, ctx.World.Solids)

	if p.Y > s.config.Display.ViewHeight+s.config.Physics.FallMargin {
		ctx.KillPlayer(DeathFall)
		return
	}

	s.collectCoins(ctx)
	s.collectWeapons(ctx)
	ctx.Run.CoolDown(dt)
}

// Jump is the edge-triggered jump command. Returns true if it took effect.
func (s *PlayerSystem) Jump(ctx *Context) bool {
	if !ctx.Playing() {
		return false
	}
	p := ctx.World.Player
	if !p.CanJump() {
		return false
	}
	p.VY = -s.config.Jump.Speed
	p.OnGround = false
	p.CoyoteTime = 0
	ctx.Events.Emit(Jumped{})
	return true
}
