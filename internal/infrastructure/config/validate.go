package config

import (
	"errors"
	"fmt"
)

var (
	// ErrNoStages is returned when the campaign lists no stages
	ErrNoStages = errors.New("campaign has no stages")
	// ErrInvalidStage is returned for malformed stage data or an unknown level
	ErrInvalidStage = errors.New("invalid stage")
	// ErrInvalidPhysics is returned for out-of-range tunables
	ErrInvalidPhysics = errors.New("invalid physics")
)

// Validate checks the static configuration preconditions the simulation relies on
func (g *GameConfig) Validate() error {
	if g.Physics == nil {
		return fmt.Errorf("%w: missing physics", ErrInvalidPhysics)
	}
	if err := g.Physics.Validate(); err != nil {
		return err
	}
	if len(g.Stages) == 0 {
		return ErrNoStages
	}
	for i, s := range g.Stages {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("level %d: %w", i+1, err)
		}
	}
	return nil
}

// Validate checks physics tunables
func (c *PhysicsConfig) Validate() error {
	switch {
	case c.Display.ViewWidth <= 0 || c.Display.ViewHeight <= 0:
		return fmt.Errorf("%w: view size must be positive", ErrInvalidPhysics)
	case c.Display.Framerate <= 0:
		return fmt.Errorf("%w: framerate must be positive", ErrInvalidPhysics)
	case c.Physics.MaxFrameDelta <= 0:
		return fmt.Errorf("%w: maxFrameDelta must be positive", ErrInvalidPhysics)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalidPhysics)
	case c.Projectiles.Player.Lifetime <= 0 || c.Projectiles.Enemy.Lifetime <= 0:
		return fmt.Errorf("%w: projectile lifetime must be positive", ErrInvalidPhysics)
	case c.Campaign.Lives <= 0:
		return fmt.Errorf("%w: campaign needs at least one life", ErrInvalidPhysics)
	}
	return nil
}

// Validate checks a single stage
func (s *StageConfig) Validate() error {
	if s.Width <= 0 {
		return fmt.Errorf("%w %q: width must be positive", ErrInvalidStage, s.ID)
	}
	if len(s.Solids) == 0 {
		return fmt.Errorf("%w %q: no solids", ErrInvalidStage, s.ID)
	}
	for i, e := range s.Enemies {
		if e.MaxX-e.MinX < e.W {
			return fmt.Errorf("%w %q: enemy %d patrol range narrower than its body", ErrInvalidStage, s.ID, i)
		}
		if e.X < e.MinX || e.X+e.W > e.MaxX {
			return fmt.Errorf("%w %q: enemy %d spawns outside its patrol range", ErrInvalidStage, s.ID, i)
		}
	}
	for i, c := range s.Coins {
		if c.R <= 0 {
			return fmt.Errorf("%w %q: coin %d has no radius", ErrInvalidStage, s.ID, i)
		}
	}
	return nil
}
