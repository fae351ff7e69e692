package system

import "github.com/younwookim/skyline/internal/domain/entity"

// collectCoins tests every uncollected coin against the player's center
func (s *PlayerSystem) collectCoins(ctx *Context) {
	p := ctx.World.Player
	cx, cy := p.CenterX(), p.CenterY()
	reach := s.config.Pickups.CoinReach
	points := s.config.Scoring.Coin

	for i := range ctx.World.Coins {
		coin := &ctx.World.Coins[i]
		if coin.Collected || !coin.Within(cx, cy, reach) {
			continue
		}
		coin.Collected = true
		ctx.Run.CollectCoin(points)
		ctx.Events.Emit(CoinCollected{Index: i, Points: points})
	}
}

// collectWeapons grants the ranged weapon on rectangle overlap.
// The weapon flag survives level changes and is only cleared by a full reset.
func (s *PlayerSystem) collectWeapons(ctx *Context) {
	p := ctx.World.Player
	points := s.config.Scoring.Weapon

	for i := range ctx.World.WeaponPickups {
		pickup := &ctx.World.WeaponPickups[i]
		if pickup.Collected || !entity.Intersects(p.Rect, pickup.Rect) {
			continue
		}
		pickup.Collected = true
		ctx.Run.HasWeapon = true
		ctx.Run.Award(points)
		ctx.Events.Emit(WeaponAcquired{Index: i, Points: points})
	}
}
