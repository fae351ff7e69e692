package entity

// Solid is a static piece of level geometry (ground or platform)
type Solid struct {
	Rect
}

// Coin is a circular collectible. Collected coins are flagged, never removed.
type Coin struct {
	X, Y      float64
	R         float64
	Collected bool
}

// WeaponPickup grants the ranged weapon when touched
type WeaponPickup struct {
	Rect
	Collected bool
}

// Goal marks the level exit
type Goal struct {
	Rect
}

// HitRegion returns the goal rectangle widened by margin on both sides
func (g Goal) HitRegion(margin float64) Rect {
	return g.Rect.Widen(margin)
}

// Within reports whether the point (px, py) is within reach of the coin center
func (c *Coin) Within(px, py, reach float64) bool {
	dx := px - c.X
	dy := py - c.Y
	r := c.R + reach
	return dx*dx+dy*dy <= r*r
}
