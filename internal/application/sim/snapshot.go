package sim

import (
	"encoding/json"
	"math"

	"github.com/younwookim/skyline/internal/application/state"
	"github.com/younwookim/skyline/internal/domain/entity"
)

const coordinateSystem = "origin at top-left, +x right, +y down; units in canvas pixels"

// Snapshot is a read-only, serializable dump of the observable state.
// Kinematic values are rounded so snapshots compare stably.
type Snapshot struct {
	Mode              state.Mode       `json:"mode"`
	CoordinateSystem  string           `json:"coordinateSystem"`
	CameraX           float64          `json:"cameraX"`
	World             WorldView        `json:"world"`
	Player            PlayerView       `json:"player"`
	Goal              PointView        `json:"goal"`
	Enemies           []EnemyView      `json:"enemies"`
	Weapon            WeaponView       `json:"weapon"`
	WeaponPickups     []RectView       `json:"weaponPickups"`
	PlayerProjectiles []ProjectileView `json:"playerProjectiles"`
	EnemyProjectiles  []ProjectileView `json:"enemyProjectiles"`
	Coins             []CoinView       `json:"coins"`
	Score             int              `json:"score"`
	Level             int              `json:"level"`
	Lives             int              `json:"lives"`
	CoinsCollected    int              `json:"coinsCollected"`
	TotalCoins        int              `json:"totalCoins"`
}

type WorldView struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	FloorY float64 `json:"floorY"`
}

type PlayerView struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	VX       float64 `json:"vx"`
	VY       float64 `json:"vy"`
	OnGround bool    `json:"onGround"`
	W        float64 `json:"w"`
	H        float64 `json:"h"`
}

type PointView struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type RectView struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type EnemyView struct {
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	W            float64 `json:"w"`
	H            float64 `json:"h"`
	VX           float64 `json:"vx"`
	ShotCooldown float64 `json:"shotCooldown"`
}

type WeaponView struct {
	HasLaser     bool    `json:"hasLaser"`
	ShotCooldown float64 `json:"shotCooldown"`
}

type ProjectileView struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	VX float64 `json:"vx"`
}

type CoinView struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	R float64 `json:"r"`
}

// Snapshot captures the current state. Dead enemies, collected pickups and
// collected coins are left out.
func (s *Simulation) Snapshot() Snapshot {
	w := s.world
	p := w.Player

	snap := Snapshot{
		Mode:             s.run.Mode,
		CoordinateSystem: coordinateSystem,
		CameraX:          round(s.run.CameraX, 1),
		World: WorldView{
			Width:  w.Width,
			Height: w.Height,
			FloorY: w.FloorY,
		},
		Player: PlayerView{
			X:        round(p.X, 1),
			Y:        round(p.Y, 1),
			VX:       round(p.VX, 1),
			VY:       round(p.VY, 1),
			OnGround: p.OnGround,
			W:        p.W,
			H:        p.H,
		},
		Goal: PointView{X: w.Goal.X, Y: w.Goal.Y},
		Weapon: WeaponView{
			HasLaser:     s.run.HasWeapon,
			ShotCooldown: round(s.run.ShotCooldown, 2),
		},
		Enemies:           make([]EnemyView, 0, len(w.Enemies)),
		WeaponPickups:     make([]RectView, 0, len(w.WeaponPickups)),
		PlayerProjectiles: projectileViews(w.PlayerShots),
		EnemyProjectiles:  projectileViews(w.EnemyShots),
		Coins:             make([]CoinView, 0, len(w.Coins)),
		Score:             s.run.Score,
		Level:             s.run.Level,
		Lives:             s.run.Lives,
		CoinsCollected:    s.run.CoinsCollected,
		TotalCoins:        s.run.TotalCoins,
	}

	for _, e := range w.Enemies {
		if !e.Alive {
			continue
		}
		snap.Enemies = append(snap.Enemies, EnemyView{
			X:            round(e.X, 1),
			Y:            round(e.Y, 1),
			W:            e.W,
			H:            e.H,
			VX:           round(e.VX, 1),
			ShotCooldown: round(e.ShotCooldown, 2),
		})
	}
	for _, wp := range w.WeaponPickups {
		if wp.Collected {
			continue
		}
		snap.WeaponPickups = append(snap.WeaponPickups, RectView{X: wp.X, Y: wp.Y, W: wp.W, H: wp.H})
	}
	for _, c := range w.Coins {
		if c.Collected {
			continue
		}
		snap.Coins = append(snap.Coins, CoinView{X: c.X, Y: c.Y, R: c.R})
	}

	return snap
}

// JSON encodes the snapshot as a single line
func (snap Snapshot) JSON() (string, error) {
	b, err := json.Marshal(snap)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func projectileViews(store *entity.ProjectileStore) []ProjectileView {
	views := make([]ProjectileView, 0, store.Len())
	for _, p := range store.All() {
		views = append(views, ProjectileView{
			X:  round(p.X, 1),
			Y:  round(p.Y, 1),
			VX: round(p.VX, 1),
		})
	}
	return views
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
