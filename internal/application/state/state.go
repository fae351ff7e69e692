package state

// Mode is the run-level mode. Exactly one is active at a time.
type Mode int

const (
	ModeStart Mode = iota
	ModePlaying
	ModeDied
	ModeLevelComplete
	ModeWon
	ModeLost
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "start"
	case ModePlaying:
		return "playing"
	case ModeDied:
		return "died"
	case ModeLevelComplete:
		return "level_complete"
	case ModeWon:
		return "won"
	case ModeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal returns true for modes that need a full reset to leave
func (m Mode) Terminal() bool {
	return m == ModeStart || m == ModeWon || m == ModeLost
}

// MarshalText implements encoding.TextMarshaler
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
