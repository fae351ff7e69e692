package entity

// Projectile is a straight-flying laser bolt (player or enemy)
type Projectile struct {
	Rect
	VX  float64
	TTL float64 // seconds of life left, strictly decreasing
}

// NewProjectile creates a projectile
func NewProjectile(x, y, w, h, vx, ttl float64) Projectile {
	return Projectile{
		Rect: NewRect(x, y, w, h),
		VX:   vx,
		TTL:  ttl,
	}
}

// Advance moves the projectile and burns lifetime
func (p *Projectile) Advance(dt float64) {
	p.X += p.VX * dt
	p.TTL -= dt
}

// Expired returns true once the lifetime has run out
func (p *Projectile) Expired() bool {
	return p.TTL <= 0
}

// OutOfWorld returns true if the projectile lies entirely outside [0, worldWidth]
func (p *Projectile) OutOfWorld(worldWidth float64) bool {
	return p.X+p.W < 0 || p.X > worldWidth
}

// ProjectileStore is an ordered arena of in-flight projectiles.
// Removal compacts in place and preserves the order of survivors.
type ProjectileStore struct {
	items []Projectile
}

// NewProjectileStore creates an empty store
func NewProjectileStore() *ProjectileStore {
	return &ProjectileStore{items: make([]Projectile, 0, 16)}
}

// Spawn appends a projectile
func (s *ProjectileStore) Spawn(p Projectile) {
	s.items = append(s.items, p)
}

// Len returns the number of live projectiles
func (s *ProjectileStore) Len() int {
	return len(s.items)
}

// At returns a pointer to the i-th projectile
func (s *ProjectileStore) At(i int) *Projectile {
	return &s.items[i]
}

// All returns the live projectiles. The slice must not be retained across ticks.
func (s *ProjectileStore) All() []Projectile {
	return s.items
}

// Retain keeps only the projectiles for which keep returns true.
// keep is called exactly once per projectile, in store order.
func (s *ProjectileStore) Retain(keep func(p *Projectile) bool) {
	n := 0
	for i := range s.items {
		if keep(&s.items[i]) {
			s.items[n] = s.items[i]
			n++
		}
	}
	clear(s.items[n:])
	s.items = s.items[:n]
}

// Clear removes all projectiles
func (s *ProjectileStore) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}
