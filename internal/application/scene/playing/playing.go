// Package playing provides the gameplay scene: it feeds keyboard frames into
// the simulation, draws the world with flat shapes and logs events.
package playing

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/skyline/internal/application/scene"
	"github.com/younwookim/skyline/internal/application/sim"
	"github.com/younwookim/skyline/internal/application/state"
	"github.com/younwookim/skyline/internal/application/system"
)

// Colors for rendering
var (
	colorBG          = color.RGBA{11, 15, 42, 255}
	colorSolid       = color.RGBA{40, 48, 96, 255}
	colorSolidEdge   = color.RGBA{0, 212, 255, 255}
	colorPlayer      = color.RGBA{0, 212, 255, 255}
	colorPlayerFlash = color.RGBA{255, 255, 255, 255}
	colorEnemy       = color.RGBA{255, 0, 128, 255}
	colorCoin        = color.RGBA{255, 215, 0, 255}
	colorWeapon      = color.RGBA{120, 255, 120, 255}
	colorGoal        = color.RGBA{255, 0, 255, 255}
	colorPlayerShot  = color.RGBA{120, 255, 255, 255}
	colorEnemyShot   = color.RGBA{255, 80, 80, 255}
	colorOverlay     = color.RGBA{0, 0, 0, 160}
)

// flashDuration is how long the player blinks after a hit (seconds)
const flashDuration = 0.4

// Playing is the main gameplay scene
type Playing struct {
	sim      *sim.Simulation
	keys     KeySource
	bindings Bindings
	logger   *log.Logger
	screenW  int
	screenH  int

	// Feedback
	flashTimer float64

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene driving s.
// If recordPath is not empty, gameplay will be recorded.
func New(s *sim.Simulation, logger *log.Logger, recordPath string) *Playing {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	display := s.Physics().Display

	p := &Playing{
		sim:            s,
		keys:           ebitenKeys{},
		bindings:       DefaultBindings(),
		logger:         logger,
		screenW:        int(display.ViewWidth),
		screenH:        int(display.ViewHeight),
		recordFilename: recordPath,
	}

	if recordPath != "" {
		p.recorder = NewRecorder(s.Run().Level)
		logger.Info("recording enabled", "file", recordPath)
	}

	s.Subscribe(p.onEvent)
	return p
}

// SetKeySource replaces the keyboard, used by tests and demos
func (p *Playing) SetKeySource(keys KeySource) {
	p.keys = keys
}

// Update reads one frame of input and ticks the simulation (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if anyJustPressed(p.keys, p.bindings.Quit) {
		return nil, ebiten.Termination
	}
	if anyJustPressed(p.keys, p.bindings.Save) && p.recorder != nil {
		p.saveRecording()
	}

	frame := ReadFrame(p.keys, p.bindings)
	if p.recorder != nil {
		p.recorder.RecordFrame(frame)
	}
	p.sim.Tick(frame)

	if p.flashTimer > 0 {
		p.flashTimer -= dt
	}

	return nil, nil // nil = stay on this scene
}

// onEvent turns simulation events into logs and visual feedback
func (p *Playing) onEvent(e system.Event) {
	switch ev := e.(type) {
	case system.PlayerDied:
		p.flashTimer = flashDuration
		p.logger.Info("life lost", "cause", ev.Cause, "lives", ev.LivesLeft)
	case system.RunLost:
		p.logger.Info("run lost", "score", ev.Score)
		p.finishRecording()
	case system.RunWon:
		p.logger.Info("run won", "score", ev.Score, "bonus", ev.Bonus)
		p.finishRecording()
	case system.LevelCompleted:
		p.logger.Info("level complete", "level", ev.Level, "bonus", ev.Bonus)
	case system.LevelStarted:
		p.logger.Info("level started", "level", ev.Level)
	case system.EnemyKilled:
		p.logger.Debug("enemy killed", "index", ev.Index, "points", ev.Points)
	case system.WeaponAcquired:
		p.logger.Debug("weapon acquired", "index", ev.Index)
	default:
		p.logger.Debug("event", "type", fmt.Sprintf("%T", e))
	}
}

// finishRecording stops the recorder at the end of a run and saves it,
// so the file holds exactly one run.
func (p *Playing) finishRecording() {
	if p.recorder == nil {
		return
	}
	p.recorder.Stop()
	p.saveRecording()
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.logger.Error("failed to save recording", "err", err)
		return
	}
	p.logger.Info("recording saved", "file", filename, "frames", p.recorder.FrameCount())
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	camX := p.sim.Run().CameraX

	p.drawSolids(screen, camX)
	p.drawGoal(screen, camX)
	p.drawPickups(screen, camX)
	p.drawEnemies(screen, camX)
	p.drawProjectiles(screen, camX)
	p.drawPlayer(screen, camX)

	p.drawHUD(screen)
	p.drawOverlay(screen)
}

func (p *Playing) drawSolids(screen *ebiten.Image, camX float64) {
	for _, s := range p.sim.World().Solids {
		if s.Right() < camX || s.X > camX+float64(p.screenW) {
			continue
		}
		ebitenutil.DrawRect(screen, s.X-camX, s.Y, s.W, s.H, colorSolid)
		ebitenutil.DrawRect(screen, s.X-camX, s.Y, s.W, 2, colorSolidEdge)
	}
}

func (p *Playing) drawGoal(screen *ebiten.Image, camX float64) {
	g := p.sim.World().Goal
	ebitenutil.DrawRect(screen, g.X-camX, g.Y, g.W, g.H, colorGoal)
}

func (p *Playing) drawPickups(screen *ebiten.Image, camX float64) {
	w := p.sim.World()
	for _, c := range w.Coins {
		if c.Collected {
			continue
		}
		vector.DrawFilledCircle(screen, float32(c.X-camX), float32(c.Y), float32(c.R), colorCoin, true)
	}
	for _, wp := range w.WeaponPickups {
		if wp.Collected {
			continue
		}
		ebitenutil.DrawRect(screen, wp.X-camX, wp.Y, wp.W, wp.H, colorWeapon)
	}
}

func (p *Playing) drawEnemies(screen *ebiten.Image, camX float64) {
	for _, e := range p.sim.World().Enemies {
		if !e.Alive {
			continue
		}
		ebitenutil.DrawRect(screen, e.X-camX, e.Y, e.W, e.H, colorEnemy)
	}
}

func (p *Playing) drawProjectiles(screen *ebiten.Image, camX float64) {
	w := p.sim.World()
	for _, proj := range w.PlayerShots.All() {
		ebitenutil.DrawRect(screen, proj.X-camX, proj.Y, proj.W, proj.H, colorPlayerShot)
	}
	for _, proj := range w.EnemyShots.All() {
		ebitenutil.DrawRect(screen, proj.X-camX, proj.Y, proj.W, proj.H, colorEnemyShot)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, camX float64) {
	pl := p.sim.World().Player

	c := colorPlayer
	if p.flashTimer > 0 && int(p.flashTimer*20)%2 == 0 {
		c = colorPlayerFlash
	}
	ebitenutil.DrawRect(screen, pl.X-camX, pl.Y, pl.W, pl.H, c)

	// Facing marker
	eyeX := pl.X - camX + pl.W - 10
	if pl.Facing < 0 {
		eyeX = pl.X - camX + 4
	}
	ebitenutil.DrawRect(screen, eyeX, pl.Y+10, 6, 6, colorBG)
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	run := p.sim.Run()

	weapon := "-"
	if run.HasWeapon {
		weapon = "LASER"
	}
	hud := fmt.Sprintf("SCORE %06d  LEVEL %d/%d  LIVES %d  COINS %d/%d  WEAPON %s",
		run.Score, run.Level, run.MaxLevel, run.Lives, run.CoinsCollected, run.TotalCoins, weapon)
	ebitenutil.DebugPrintAt(screen, hud, 10, 10)
	ebitenutil.DebugPrintAt(screen, "Arrows: run | Space: jump | Z/X/A/B: fire | Enter: continue | Esc: quit", 10, p.screenH-20)
}

func (p *Playing) drawOverlay(screen *ebiten.Image) {
	title, hint := overlayText(p.sim.Run())
	if title == "" {
		return
	}

	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorOverlay)
	ebitenutil.DebugPrintAt(screen, title+"\n\n"+hint, p.screenW/2-90, p.screenH/2-30)
}

// overlayText returns the banner for non-playing modes
func overlayText(run *state.Run) (title, hint string) {
	switch run.Mode {
	case state.ModeStart:
		return "SKYLINE SPRINT", "PRESS ENTER TO START"
	case state.ModeDied:
		return fmt.Sprintf("LIFE LOST - %d REMAINING", run.Lives), "PRESS ENTER TO RETRY LEVEL"
	case state.ModeLevelComplete:
		return fmt.Sprintf("LEVEL %d COMPLETE  SCORE %06d", run.Level, run.Score), "PRESS ENTER TO CONTINUE"
	case state.ModeWon:
		return fmt.Sprintf("YOU WIN  FINAL SCORE %06d", run.Score), "PRESS ENTER TO PLAY AGAIN"
	case state.ModeLost:
		return fmt.Sprintf("GAME OVER  FINAL SCORE %06d", run.Score), "PRESS ENTER TO RESTART"
	default:
		return "", ""
	}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.logger.Debug("playing scene entered", "mode", p.sim.Mode())
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}
