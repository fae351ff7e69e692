package entity

// Player represents the player-controlled runner.
// Facing is +1 (right) or -1 (left) and is never zero.
type Player struct {
	Rect
	VX, VY float64

	OnGround bool
	// CoyoteTime is the remaining grace window (seconds) in which a jump
	// is still legal after leaving the ground.
	CoyoteTime float64
	Facing     int
}

// NewPlayer creates a player standing at (x, y) facing right
func NewPlayer(x, y, w, h float64) *Player {
	return &Player{
		Rect:   NewRect(x, y, w, h),
		Facing: 1,
	}
}

// Respawn puts the player back at (x, y) with all motion state cleared
func (p *Player) Respawn(x, y float64) {
	p.X = x
	p.Y = y
	p.VX = 0
	p.VY = 0
	p.OnGround = false
	p.CoyoteTime = 0
	p.Facing = 1
}

// CanJump returns true if grounded or still inside the coyote window
func (p *Player) CanJump() bool {
	return p.OnGround || p.CoyoteTime > 0
}

// FacingSign returns the facing direction as a float multiplier
func (p *Player) FacingSign() float64 {
	if p.Facing < 0 {
		return -1
	}
	return 1
}
