package system

// Input is the continuous part of the player's intent for one tick.
// Device handling lives in the host; the core only sees this vector.
type Input struct {
	Left  bool
	Right bool
}

// Axis returns -1, 0 or +1
func (in Input) Axis() float64 {
	axis := 0.0
	if in.Right {
		axis++
	}
	if in.Left {
		axis--
	}
	return axis
}
