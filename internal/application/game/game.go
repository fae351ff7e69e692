// Package game adapts the current Scene to ebiten.Game and runs the window.
package game

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/skyline/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	logger  *log.Logger
}

// New creates a new Game with the given initial scene and fixed tick period.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int, dt float64) *Game {
	if dt <= 0 {
		dt = 1.0 / 60.0
	}
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      dt,
		logger:  log.New(io.Discard),
	}
	g.current.OnEnter()
	return g
}

// SetLogger sets the logger for scene transitions
func (g *Game) SetLogger(logger *log.Logger) {
	g.logger = logger
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if errors.Is(err, ebiten.Termination) {
		g.current.OnExit()
		return err
	}
	if err != nil {
		return err
	}

	if next != nil {
		g.logger.Debug("scene transition", "from", fmt.Sprintf("%T", g.current), "to", fmt.Sprintf("%T", next))
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// TPS returns the ticks per second matching the fixed tick period
func (g *Game) TPS() int {
	return int(math.Round(1 / g.dt))
}

// Run opens the window and blocks until the game ends.
// A normal termination is not an error.
func (g *Game) Run(title string) error {
	ebiten.SetWindowSize(g.screenW, g.screenH)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(g.TPS())

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
