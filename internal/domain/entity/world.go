package entity

// World holds every entity store for the current level.
// All systems mutate it in place; nothing keeps a private copy.
type World struct {
	Width  float64
	Height float64
	FloorY float64

	Player *Player
	Goal   Goal

	Solids        []Solid
	Coins         []Coin
	WeaponPickups []WeaponPickup
	Enemies       []Enemy

	PlayerShots *ProjectileStore
	EnemyShots  *ProjectileStore
}

// NewWorld creates an empty world with the given view height and floor line
func NewWorld(height, floorY float64, player *Player) *World {
	return &World{
		Height:      height,
		FloorY:      floorY,
		Player:      player,
		PlayerShots: NewProjectileStore(),
		EnemyShots:  NewProjectileStore(),
	}
}

// SolidAt reports whether r overlaps any solid
func (w *World) SolidAt(r Rect) bool {
	for i := range w.Solids {
		if Intersects(r, w.Solids[i].Rect) {
			return true
		}
	}
	return false
}

// AliveEnemies returns the number of enemies still alive
func (w *World) AliveEnemies() int {
	n := 0
	for i := range w.Enemies {
		if w.Enemies[i].Alive {
			n++
		}
	}
	return n
}

// TotalCoins returns the number of coins in the level
func (w *World) TotalCoins() int {
	return len(w.Coins)
}

// ClearProjectiles drops every in-flight projectile of both kinds
func (w *World) ClearProjectiles() {
	w.PlayerShots.Clear()
	w.EnemyShots.Clear()
}
