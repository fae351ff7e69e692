package entity

// Enemy is a patrolling turret.
// Dead enemies stay in the store as tombstones so indices remain stable.
type Enemy struct {
	Rect
	VX float64

	// Patrol bounds. The enemy's left edge never goes below MinX and its
	// right edge never goes beyond MaxX.
	MinX, MaxX float64

	Alive        bool
	ShotCooldown float64
}

// NewEnemy creates a live enemy
func NewEnemy(x, y, w, h, vx, minX, maxX, shotCooldown float64) Enemy {
	return Enemy{
		Rect:         NewRect(x, y, w, h),
		VX:           vx,
		MinX:         minX,
		MaxX:         maxX,
		Alive:        true,
		ShotCooldown: shotCooldown,
	}
}

// Kill marks the enemy dead. Returns false if it was already dead.
func (e *Enemy) Kill() bool {
	if !e.Alive {
		return false
	}
	e.Alive = false
	return true
}

// Patrol integrates the horizontal velocity and ping-pongs between bounds.
func (e *Enemy) Patrol(dt float64) {
	e.X += e.VX * dt
	if e.X <= e.MinX {
		e.X = e.MinX
		if e.VX < 0 {
			e.VX = -e.VX
		}
	} else if e.X+e.W >= e.MaxX {
		e.X = e.MaxX - e.W
		if e.VX > 0 {
			e.VX = -e.VX
		}
	}
}

// CoolDown decays the shot timer, floored at zero
func (e *Enemy) CoolDown(dt float64) {
	e.ShotCooldown -= dt
	if e.ShotCooldown < 0 {
		e.ShotCooldown = 0
	}
}
