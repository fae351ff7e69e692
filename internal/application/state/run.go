package state

// Run is the bookkeeping for a whole play-through and the current level.
type Run struct {
	Mode     Mode
	Score    int
	Lives    int
	Level    int // 1-based
	MaxLevel int

	CoinsCollected int
	TotalCoins     int

	HasWeapon    bool
	ShotCooldown float64

	CameraX    float64
	WorldWidth float64

	initialLives int
}

// NewRun creates a run waiting on the start screen
func NewRun(lives, maxLevel int) *Run {
	return &Run{
		Mode:         ModeStart,
		Lives:        lives,
		Level:        1,
		MaxLevel:     maxLevel,
		initialLives: lives,
	}
}

// Playing returns true while the simulation is live
func (r *Run) Playing() bool {
	return r.Mode == ModePlaying
}

// ResetRun restores lives, score, level and weapon to their initial values
func (r *Run) ResetRun() {
	r.Score = 0
	r.Level = 1
	r.Lives = r.initialLives
	r.HasWeapon = false
}

// Prepare clears the level-local counters without changing the mode
func (r *Run) Prepare(totalCoins int, worldWidth float64) {
	r.CoinsCollected = 0
	r.TotalCoins = totalCoins
	r.ShotCooldown = 0
	r.WorldWidth = worldWidth
}

// ResetLevel clears the level-local counters and enters play
func (r *Run) ResetLevel(totalCoins int, worldWidth float64) {
	r.Prepare(totalCoins, worldWidth)
	r.Mode = ModePlaying
}

// LoseLife is the single player-death operation.
// It only acts while playing, so repeated triggers in one tick are ignored.
// Returns true if a life was taken.
func (r *Run) LoseLife() bool {
	if r.Mode != ModePlaying {
		return false
	}
	r.Lives--
	if r.Lives > 0 {
		r.Mode = ModeDied
	} else {
		r.Lives = 0
		r.Mode = ModeLost
	}
	return true
}

// ReachGoal applies the goal transition: level_complete with 500×level, or
// won with the win bonus on the last level. Returns the awarded points.
func (r *Run) ReachGoal(perLevel, winBonus int) int {
	if r.Mode != ModePlaying {
		return 0
	}
	if r.Level < r.MaxLevel {
		r.Mode = ModeLevelComplete
		bonus := perLevel * r.Level
		r.Score += bonus
		return bonus
	}
	r.Mode = ModeWon
	r.Score += winBonus
	return winBonus
}

// CollectCoin counts a coin and awards points
func (r *Run) CollectCoin(points int) {
	if r.CoinsCollected < r.TotalCoins {
		r.CoinsCollected++
	}
	r.Score += points
}

// Award adds points to the score
func (r *Run) Award(points int) {
	r.Score += points
}

// CoolDown decays the player's shot timer, floored at zero
func (r *Run) CoolDown(dt float64) {
	r.ShotCooldown -= dt
	if r.ShotCooldown < 0 {
		r.ShotCooldown = 0
	}
}
