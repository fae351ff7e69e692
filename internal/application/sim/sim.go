// Package sim is the frame driver: it owns the world and run record and
// composes the systems into the fixed per-tick pipeline.
package sim

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/younwookim/skyline/internal/application/state"
	"github.com/younwookim/skyline/internal/application/system"
	"github.com/younwookim/skyline/internal/domain/entity"
	"github.com/younwookim/skyline/internal/infrastructure/config"
)

// Frame is everything the host delivers for one frame: the held direction
// and the edge-triggered commands pressed since the previous frame.
type Frame struct {
	Input    system.Input
	Jump     bool
	Fire     bool
	Continue bool
}

// Simulation runs one play-through of the campaign
type Simulation struct {
	cfg     *config.GameConfig
	physics *config.PhysicsConfig

	world *entity.World
	run   *state.Run
	ctx   *system.Context
	input system.Input

	playerSys     *system.PlayerSystem
	enemySys      *system.EnemySystem
	projectileSys *system.ProjectileSystem
	goalSys       *system.GoalSystem

	listeners  []func(system.Event)
	logger     *log.Logger
	startLevel int
	ticks      int
}

// Option configures a Simulation
type Option func(*Simulation)

// WithLogger sets the logger used for mode transitions and level loads
func WithLogger(logger *log.Logger) Option {
	return func(s *Simulation) {
		s.logger = logger
	}
}

// WithStartLevel makes full resets begin at the given 1-based level
func WithStartLevel(level int) Option {
	return func(s *Simulation) {
		s.startLevel = level
	}
}

// New validates the configuration and creates a simulation on the start
// screen with the first level loaded.
func New(cfg *config.GameConfig, opts ...Option) (*Simulation, error) {
	if cfg == nil {
		return nil, fmt.Errorf("new simulation: %w", config.ErrNoStages)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}

	s := &Simulation{
		cfg:        cfg,
		physics:    cfg.Physics,
		logger:     log.New(io.Discard),
		startLevel: 1,
	}
	for _, opt := range opts {
		opt(s)
	}

	stage, err := cfg.Stage(s.startLevel)
	if err != nil {
		return nil, fmt.Errorf("new simulation: start level: %w", err)
	}

	s.world = system.BuildWorld(s.physics, stage)
	s.run = state.NewRun(s.physics.Campaign.Lives, cfg.MaxLevel())
	s.run.Level = s.startLevel
	s.run.Prepare(s.world.TotalCoins(), s.world.Width)
	s.ctx = system.NewContext(s.world, s.run)

	s.playerSys = system.NewPlayerSystem(s.physics)
	s.enemySys = system.NewEnemySystem(s.physics)
	s.projectileSys = system.NewProjectileSystem(s.physics)
	s.goalSys = system.NewGoalSystem(s.physics)

	system.UpdateCamera(s.ctx, s.physics.Display.ViewWidth)
	return s, nil
}

// Subscribe registers a listener called synchronously for every event
func (s *Simulation) Subscribe(fn func(system.Event)) {
	s.listeners = append(s.listeners, fn)
}

// SetInput sets the held direction used by subsequent ticks
func (s *Simulation) SetInput(in system.Input) {
	s.input = in
}

// Jump applies the jump command. Returns true if the player jumped.
func (s *Simulation) Jump() bool {
	ok := s.playerSys.Jump(s.ctx)
	s.flush()
	return ok
}

// Fire applies the fire command. Returns true if a shot was spawned.
func (s *Simulation) Fire() bool {
	ok := s.projectileSys.Fire(s.ctx)
	s.flush()
	return ok
}

// Continue applies the mode-dependent continue command: a full reset from
// start, won or lost; a level restart after a death; the next level after a
// completed one. Ignored while playing.
func (s *Simulation) Continue() bool {
	ok := s.advanceMode()
	s.flush()
	return ok
}

func (s *Simulation) advanceMode() bool {
	switch s.run.Mode {
	case state.ModeStart, state.ModeWon, state.ModeLost:
		s.run.ResetRun()
		s.run.Level = s.startLevel
	case state.ModeDied:
	case state.ModeLevelComplete:
		s.run.Level++
	default:
		return false
	}
	s.loadLevel()
	return true
}

// loadLevel rebuilds the current level's stores and enters play
func (s *Simulation) loadLevel() {
	stage := s.cfg.Stages[s.run.Level-1]
	system.LoadStage(s.world, s.physics, stage)
	s.run.ResetLevel(s.world.TotalCoins(), s.world.Width)
	system.UpdateCamera(s.ctx, s.physics.Display.ViewWidth)

	s.ctx.Events.Emit(system.LevelStarted{Level: s.run.Level})
	s.logger.Debug("level loaded", "level", s.run.Level, "stage", stage.ID, "lives", s.run.Lives, "score", s.run.Score)
}

// Update runs one tick of dt seconds. It is a no-op unless playing.
// Returns the events emitted during the tick.
func (s *Simulation) Update(dt float64) []system.Event {
	if !s.run.Playing() {
		return nil
	}
	s.tick(dt)
	return s.flush()
}

// tick runs the pipeline in its fixed order. Once the run leaves the
// playing mode the remaining systems are skipped.
func (s *Simulation) tick(dt float64) {
	ctx := s.ctx
	s.ticks++

	s.playerSys.Update(ctx, s.input, dt)
	if ctx.Playing() {
		s.enemySys.Update(ctx, dt)
	}
	if ctx.Playing() {
		s.projectileSys.Update(ctx, dt)
	}
	s.goalSys.Update(ctx)
	system.UpdateCamera(ctx, s.physics.Display.ViewWidth)

	if !ctx.Playing() {
		s.logger.Debug("mode changed", "mode", s.run.Mode, "tick", s.ticks, "lives", s.run.Lives, "score", s.run.Score)
	}
}

// AdvanceTime runs round(ms / tick period) fixed ticks back to back, at
// least one. Returns every event emitted.
func (s *Simulation) AdvanceTime(ms float64) []system.Event {
	period := 1000 * s.physics.FixedDT()
	steps := int(math.Round(ms / period))
	if steps < 1 {
		steps = 1
	}

	var events []system.Event
	dt := s.physics.FixedDT()
	for i := 0; i < steps; i++ {
		events = append(events, s.Update(dt)...)
	}
	return events
}

// Step runs one tick for a wall-clock delta, clamped to the maximum frame
// delta so a stall cannot produce a large physics jump.
func (s *Simulation) Step(elapsed float64) []system.Event {
	dt := entity.Clamp(elapsed, 0, s.physics.Physics.MaxFrameDelta)
	return s.Update(dt)
}

// Tick applies one host frame: held input, then commands, then one fixed
// tick. This is the unit recorded and replayed.
func (s *Simulation) Tick(f Frame) []system.Event {
	s.input = f.Input
	if f.Continue {
		s.advanceMode()
	}
	if f.Jump {
		s.playerSys.Jump(s.ctx)
	}
	if f.Fire {
		s.projectileSys.Fire(s.ctx)
	}
	if s.run.Playing() {
		s.tick(s.physics.FixedDT())
	}
	return s.flush()
}

// flush delivers pending events to subscribers and returns them
func (s *Simulation) flush() []system.Event {
	events := s.ctx.Events.Drain()
	for _, e := range events {
		for _, fn := range s.listeners {
			fn(e)
		}
	}
	return events
}

// Mode returns the current mode
func (s *Simulation) Mode() state.Mode {
	return s.run.Mode
}

// Run returns the run record. Callers must treat it as read-only.
func (s *Simulation) Run() *state.Run {
	return s.run
}

// World returns the entity stores. Callers must treat them as read-only.
func (s *Simulation) World() *entity.World {
	return s.world
}

// Physics returns the tunables the simulation runs with
func (s *Simulation) Physics() *config.PhysicsConfig {
	return s.physics
}

// Ticks returns the number of simulated ticks since construction
func (s *Simulation) Ticks() int {
	return s.ticks
}
