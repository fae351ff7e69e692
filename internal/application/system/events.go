package system

// Event is a discrete, presentation-free notification emitted by the simulation.
// Listeners (audio, HUD, logging) react to events; the core never calls them.
type Event interface {
	isEvent()
}

// Owner identifies who fired a projectile
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// KillCause is how an enemy died
type KillCause int

const (
	KillStomp KillCause = iota
	KillShot
)

// DeathCause is how the player lost a life
type DeathCause int

const (
	DeathFall DeathCause = iota
	DeathContact
	DeathShot
)

// String returns the string representation of the death cause
func (c DeathCause) String() string {
	switch c {
	case DeathFall:
		return "fall"
	case DeathContact:
		return "contact"
	case DeathShot:
		return "shot"
	default:
		return "unknown"
	}
}

// Jumped is emitted when a jump command succeeds
type Jumped struct{}

func (Jumped) isEvent() {}

// CoinCollected is emitted per coin picked up
type CoinCollected struct {
	Index  int
	Points int
}

func (CoinCollected) isEvent() {}

// WeaponAcquired is emitted when a weapon pickup is touched
type WeaponAcquired struct {
	Index  int
	Points int
}

func (WeaponAcquired) isEvent() {}

// ShotFired is emitted when a projectile spawns
type ShotFired struct {
	Owner Owner
	X, Y  float64
	VX    float64
}

func (ShotFired) isEvent() {}

// EnemyKilled is emitted when an enemy transitions alive -> dead
type EnemyKilled struct {
	Index  int
	Cause  KillCause
	Points int
}

func (EnemyKilled) isEvent() {}

// PlayerDied is emitted when a life is lost
type PlayerDied struct {
	Cause     DeathCause
	LivesLeft int
}

func (PlayerDied) isEvent() {}

// RunLost is emitted when the last life is lost
type RunLost struct {
	Score int
}

func (RunLost) isEvent() {}

// LevelCompleted is emitted on reaching the goal of a non-final level
type LevelCompleted struct {
	Level int
	Bonus int
}

func (LevelCompleted) isEvent() {}

// RunWon is emitted on reaching the goal of the final level
type RunWon struct {
	Score int
	Bonus int
}

func (RunWon) isEvent() {}

// LevelStarted is emitted whenever a level is (re)loaded into play
type LevelStarted struct {
	Level int
}

func (LevelStarted) isEvent() {}

// EventBuffer collects events emitted during one operation
type EventBuffer struct {
	events []Event
}

// Emit appends an event
func (b *EventBuffer) Emit(e Event) {
	b.events = append(b.events, e)
}

// Drain returns the collected events and empties the buffer
func (b *EventBuffer) Drain() []Event {
	if len(b.events) == 0 {
		return nil
	}
	out := b.events
	b.events = nil
	return out
}

// Len returns the number of pending events
func (b *EventBuffer) Len() int {
	return len(b.events)
}
