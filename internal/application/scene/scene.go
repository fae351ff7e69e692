// Package scene defines the Scene interface for screens hosted by game.Game.
//
// The simulation core knows nothing about scenes. A scene owns whatever it
// drives (the playing scene owns a sim.Simulation) and translates devices
// and drawing to and from it.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the host.
//
// Returning a non-nil Scene from Update switches to it. Returning
// ebiten.Termination ends the game normally; any other error aborts it.
type Scene interface {
	// Update advances the scene by one host frame of dt seconds.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene. It must not mutate simulation state.
	Draw(screen *ebiten.Image)

	// OnEnter is called when the scene becomes current.
	OnEnter()

	// OnExit is called when the scene stops being current, including when
	// the game terminates.
	OnExit()
}
