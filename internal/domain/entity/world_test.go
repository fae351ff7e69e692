package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorld_SolidAt(t *testing.T) {
	w := NewWorld(540, 470, NewPlayer(80, 422, 36, 48))
	w.Solids = []Solid{
		{Rect: NewRect(0, 470, 1000, 100)},
		{Rect: NewRect(430, 365, 140, 18)},
	}

	assert.True(t, w.SolidAt(NewRect(440, 360, 10, 10)))
	assert.False(t, w.SolidAt(NewRect(440, 340, 10, 10)))
	assert.False(t, w.SolidAt(NewRect(100, 460, 10, 10)), "resting exactly on the floor is not overlap")
}

func TestWorld_Counters(t *testing.T) {
	w := NewWorld(540, 470, NewPlayer(0, 0, 36, 48))
	w.Coins = []Coin{{X: 1, Y: 1, R: 10}, {X: 2, Y: 2, R: 10}}
	w.Enemies = []Enemy{
		NewEnemy(0, 0, 34, 34, 0, 0, 34, 0),
		NewEnemy(100, 0, 34, 34, 0, 100, 134, 0),
	}
	w.Enemies[0].Kill()

	assert.Equal(t, 2, w.TotalCoins())
	assert.Equal(t, 1, w.AliveEnemies())
	assert.Len(t, w.Enemies, 2, "dead enemies stay as tombstones")
}

func TestWorld_ClearProjectiles(t *testing.T) {
	w := NewWorld(540, 470, NewPlayer(0, 0, 36, 48))
	w.PlayerShots.Spawn(NewProjectile(0, 0, 14, 6, 760, 0.9))
	w.EnemyShots.Spawn(NewProjectile(0, 0, 12, 6, -320, 2.1))

	w.ClearProjectiles()

	assert.Equal(t, 0, w.PlayerShots.Len())
	assert.Equal(t, 0, w.EnemyShots.Len())
}

func TestPlayer_Respawn(t *testing.T) {
	p := NewPlayer(500, 100, 36, 48)
	p.VX, p.VY = 300, -820
	p.OnGround = true
	p.CoyoteTime = 0.1
	p.Facing = -1

	p.Respawn(80, 422)

	assert.Equal(t, 80.0, p.X)
	assert.Equal(t, 422.0, p.Y)
	assert.Zero(t, p.VX)
	assert.Zero(t, p.VY)
	assert.False(t, p.OnGround)
	assert.Zero(t, p.CoyoteTime)
	assert.Equal(t, 1, p.Facing)
	assert.Equal(t, 36.0, p.W, "size is kept")
}

func TestPlayer_CanJump(t *testing.T) {
	p := NewPlayer(0, 0, 36, 48)
	assert.False(t, p.CanJump())

	p.CoyoteTime = 0.01
	assert.True(t, p.CanJump())

	p.CoyoteTime = 0
	p.OnGround = true
	assert.True(t, p.CanJump())
}

func TestCoin_Within(t *testing.T) {
	c := Coin{X: 300, Y: 400, R: 10}

	assert.True(t, c.Within(300, 400, 16))
	assert.True(t, c.Within(326, 400, 16), "exactly on the reach boundary counts")
	assert.False(t, c.Within(326.5, 400, 16))
}
