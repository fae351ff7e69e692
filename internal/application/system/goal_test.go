package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/skyline/internal/application/state"
	"github.com/younwookim/skyline/internal/domain/entity"
)

func TestGoalSystem_LevelComplete(t *testing.T) {
	world := createTestWorld()
	world.Goal = entity.Goal{Rect: entity.NewRect(130, 310, 24, 160)}
	ctx := createTestContext(world)
	ctx.Run.Level = 2
	sys := NewGoalSystem(createTestPhysicsConfig())

	assert.True(t, sys.Update(ctx))

	assert.Equal(t, state.ModeLevelComplete, ctx.Run.Mode)
	assert.Equal(t, 1000, ctx.Run.Score)
	assert.Equal(t, []Event{LevelCompleted{Level: 2, Bonus: 1000}}, ctx.Events.Drain())
}

func TestGoalSystem_WonOnce(t *testing.T) {
	world := createTestWorld()
	world.Goal = entity.Goal{Rect: entity.NewRect(130, 310, 24, 160)}
	ctx := createTestContext(world)
	ctx.Run.Level = 4
	ctx.Run.Score = 1200
	sys := NewGoalSystem(createTestPhysicsConfig())

	assert.True(t, sys.Update(ctx))
	assert.False(t, sys.Update(ctx))

	assert.Equal(t, state.ModeWon, ctx.Run.Mode)
	assert.Equal(t, 6200, ctx.Run.Score)
	assert.Equal(t, []Event{RunWon{Score: 6200, Bonus: 5000}}, ctx.Events.Drain())
}

func TestGoalSystem_HitRegion(t *testing.T) {
	tests := []struct {
		name  string
		goalX float64
		hit   bool
	}{
		{"inside margin", 139, true},
		{"touching is not overlap", 140, false},
		{"far away", 2900, false},
		{"overlapping the player", 70, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := createTestWorld()
			world.Goal = entity.Goal{Rect: entity.NewRect(tt.goalX, 310, 24, 160)}
			ctx := createTestContext(world)
			sys := NewGoalSystem(createTestPhysicsConfig())

			assert.Equal(t, tt.hit, sys.Update(ctx))
		})
	}
}
