package playing

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/skyline/internal/application/sim"
	"github.com/younwookim/skyline/internal/application/system"
)

// KeySource reports keyboard state for the current frame
type KeySource interface {
	IsPressed(key ebiten.Key) bool
	IsJustPressed(key ebiten.Key) bool
}

// ebitenKeys reads the live keyboard
type ebitenKeys struct{}

func (ebitenKeys) IsPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (ebitenKeys) IsJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// Bindings maps physical keys to commands. Any key in a list triggers it.
type Bindings struct {
	Left     []ebiten.Key
	Right    []ebiten.Key
	Jump     []ebiten.Key
	Fire     []ebiten.Key
	Continue []ebiten.Key
	Save     []ebiten.Key
	Quit     []ebiten.Key
}

// DefaultBindings returns arrow movement, Space or Up to jump, Z/X/A/B to
// fire and Enter to continue.
func DefaultBindings() Bindings {
	return Bindings{
		Left:     []ebiten.Key{ebiten.KeyArrowLeft},
		Right:    []ebiten.Key{ebiten.KeyArrowRight},
		Jump:     []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp},
		Fire:     []ebiten.Key{ebiten.KeyZ, ebiten.KeyX, ebiten.KeyA, ebiten.KeyB},
		Continue: []ebiten.Key{ebiten.KeyEnter},
		Save:     []ebiten.Key{ebiten.KeyF5},
		Quit:     []ebiten.Key{ebiten.KeyEscape},
	}
}

// ReadFrame turns the keyboard state into one simulation frame.
// Movement is held; jump, fire and continue are edge-triggered.
func ReadFrame(keys KeySource, b Bindings) sim.Frame {
	return sim.Frame{
		Input: system.Input{
			Left:  anyPressed(keys, b.Left),
			Right: anyPressed(keys, b.Right),
		},
		Jump:     anyJustPressed(keys, b.Jump),
		Fire:     anyJustPressed(keys, b.Fire),
		Continue: anyJustPressed(keys, b.Continue),
	}
}

func anyPressed(keys KeySource, list []ebiten.Key) bool {
	for _, k := range list {
		if keys.IsPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys KeySource, list []ebiten.Key) bool {
	for _, k := range list {
		if keys.IsJustPressed(k) {
			return true
		}
	}
	return false
}
