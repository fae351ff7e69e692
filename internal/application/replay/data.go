package replay

import (
	"github.com/younwookim/skyline/internal/application/sim"
	"github.com/younwookim/skyline/internal/application/system"
)

// Version is written into every recording
const Version = "1.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left held
	R bool `json:"r,omitempty"` // Right held
	J bool `json:"j,omitempty"` // Jump pressed
	X bool `json:"x,omitempty"` // Fire pressed
	C bool `json:"c,omitempty"` // Continue pressed
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Level     int          `json:"level"` // start level for full resets
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// NewFrameInput converts a simulation frame into its recorded form
func NewFrameInput(n int, f sim.Frame) FrameInput {
	return FrameInput{
		F: n,
		L: f.Input.Left,
		R: f.Input.Right,
		J: f.Jump,
		X: f.Fire,
		C: f.Continue,
	}
}

// Frame converts the recorded input back into a simulation frame
func (fi FrameInput) Frame() sim.Frame {
	return sim.Frame{
		Input:    system.Input{Left: fi.L, Right: fi.R},
		Jump:     fi.J,
		Fire:     fi.X,
		Continue: fi.C,
	}
}
