package system

import (
	"github.com/younwookim/skyline/internal/application/state"
	"github.com/younwookim/skyline/internal/domain/entity"
)

// Context is the shared simulation state passed by reference to every system.
// Systems never keep copies of anything reachable from it.
type Context struct {
	World  *entity.World
	Run    *state.Run
	Events *EventBuffer
}

// NewContext bundles the stores, run record and event sink
func NewContext(world *entity.World, run *state.Run) *Context {
	return &Context{
		World:  world,
		Run:    run,
		Events: &EventBuffer{},
	}
}

// KillPlayer takes a life. Later triggers in the same tick are ignored
// because the run has already left the playing mode.
func (c *Context) KillPlayer(cause DeathCause) bool {
	if !c.Run.LoseLife() {
		return false
	}
	c.Events.Emit(PlayerDied{Cause: cause, LivesLeft: c.Run.Lives})
	if c.Run.Mode == state.ModeLost {
		c.Events.Emit(RunLost{Score: c.Run.Score})
	}
	return true
}

// Playing returns true while the run is in active play
func (c *Context) Playing() bool {
	return c.Run.Playing()
}
