package system

import "github.com/younwookim/skyline/internal/domain/entity"

// CameraOffset returns the horizontal camera offset that centers the player,
// clamped to the world. A world narrower than the view pins the camera at 0.
func CameraOffset(playerCenterX, viewWidth, worldWidth float64) float64 {
	return entity.Clamp(playerCenterX-viewWidth/2, 0, worldWidth-viewWidth)
}

// UpdateCamera recomputes the camera offset from the player position.
// No smoothing: the camera follows immediately.
func UpdateCamera(ctx *Context, viewWidth float64) {
	ctx.Run.CameraX = CameraOffset(ctx.World.Player.CenterX(), viewWidth, ctx.World.Width)
}
