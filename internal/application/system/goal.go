package system

import (
	"github.com/younwookim/skyline/internal/application/state"
	"github.com/younwookim/skyline/internal/domain/entity"
	"github.com/younwookim/skyline/internal/infrastructure/config"
)

// GoalSystem detects the player reaching the level exit
type GoalSystem struct {
	config *config.PhysicsConfig
}

// NewGoalSystem creates a new goal system
func NewGoalSystem(cfg *config.PhysicsConfig) *GoalSystem {
	return &GoalSystem{config: cfg}
}

// Update moves the run to level_complete or won when the player touches the
// widened goal region. Returns true if a transition happened.
func (s *GoalSystem) Update(ctx *Context) bool {
	if !ctx.Playing() {
		return false
	}
	region := ctx.World.Goal.HitRegion(s.config.Goal.Margin)
	if !entity.Intersects(ctx.World.Player.Rect, region) {
		return false
	}

	level := ctx.Run.Level
	bonus := ctx.Run.ReachGoal(s.config.Scoring.LevelComplete, s.config.Scoring.Win)
	if ctx.Run.Mode == state.ModeWon {
		ctx.Events.Emit(RunWon{Score: ctx.Run.Score, Bonus: bonus})
	} else {
		ctx.Events.Emit(LevelCompleted{Level: level, Bonus: bonus})
	}
	return true
}
