package playing

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/skyline/internal/application/replay"
	"github.com/younwookim/skyline/internal/application/scene"
	"github.com/younwookim/skyline/internal/application/sim"
	"github.com/younwookim/skyline/internal/application/state"
	"github.com/younwookim/skyline/internal/application/system"
	"github.com/younwookim/skyline/internal/infrastructure/config"
)

// fakeKeys is a scripted keyboard. Just-pressed keys last one frame.
type fakeKeys struct {
	held map[ebiten.Key]bool
	just map[ebiten.Key]bool
}

func newFakeKeys() *fakeKeys {
	return &fakeKeys{held: map[ebiten.Key]bool{}, just: map[ebiten.Key]bool{}}
}

func (f *fakeKeys) IsPressed(key ebiten.Key) bool     { return f.held[key] }
func (f *fakeKeys) IsJustPressed(key ebiten.Key) bool { return f.just[key] }

func (f *fakeKeys) press(key ebiten.Key) {
	f.just[key] = true
	f.held[key] = true
}

func (f *fakeKeys) endFrame() {
	f.just = map[ebiten.Key]bool{}
}

const dt = 1.0 / 60.0

func createTestPlaying(t *testing.T, recordPath string) (*Playing, *fakeKeys) {
	t.Helper()
	s, err := sim.New(config.Default())
	require.NoError(t, err)

	p := New(s, log.New(io.Discard), recordPath)
	keys := newFakeKeys()
	p.SetKeySource(keys)
	return p, keys
}

func TestPlaying_ImplementsScene(t *testing.T) {
	// Compile-time check that Playing implements scene.Scene
	var _ scene.Scene = (*Playing)(nil)
}

func TestNewPlaying(t *testing.T) {
	p, _ := createTestPlaying(t, "")

	assert.NotNil(t, p)
	assert.Nil(t, p.recorder)
	assert.Equal(t, 960, p.screenW)
	assert.Equal(t, 540, p.screenH)
	assert.Equal(t, state.ModeStart, p.sim.Mode())
}

func TestPlaying_Update_StaysOnScene(t *testing.T) {
	p, _ := createTestPlaying(t, "")

	next, err := p.Update(dt)

	assert.NoError(t, err)
	assert.Nil(t, next, "Should return nil when continuing to play")
	assert.Equal(t, state.ModeStart, p.sim.Mode(), "waits for continue")
}

func TestPlaying_EnterStartsAndArrowsMove(t *testing.T) {
	p, keys := createTestPlaying(t, "")

	keys.press(ebiten.KeyEnter)
	_, err := p.Update(dt)
	require.NoError(t, err)
	keys.endFrame()
	assert.Equal(t, state.ModePlaying, p.sim.Mode())

	keys.held[ebiten.KeyArrowRight] = true
	for i := 0; i < 10; i++ {
		_, err := p.Update(dt)
		require.NoError(t, err)
	}

	// The continue frame ticks idle, then ten ticks of 5px each
	assert.InDelta(t, 80+10*5.0, p.sim.World().Player.X, 1e-6)
}

func TestPlaying_EscapeQuits(t *testing.T) {
	p, keys := createTestPlaying(t, "")
	keys.press(ebiten.KeyEscape)

	_, err := p.Update(dt)

	assert.ErrorIs(t, err, ebiten.Termination)
}

func TestPlaying_WithRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	p, keys := createTestPlaying(t, path)
	require.NotNil(t, p.recorder)

	keys.press(ebiten.KeyEnter)
	_, err := p.Update(dt)
	require.NoError(t, err)
	keys.endFrame()
	keys.press(ebiten.KeySpace)
	_, err = p.Update(dt)
	require.NoError(t, err)

	assert.Equal(t, 2, p.recorder.FrameCount())
	frames := p.recorder.data.Frames
	assert.True(t, frames[0].C)
	assert.True(t, frames[1].J)

	// OnExit saves, and the file replays to the same state
	p.OnExit()
	data, err := replay.LoadReplay(path)
	require.NoError(t, err)

	s, err := sim.New(config.Default())
	require.NoError(t, err)
	replay.NewReplayer(*data).Play(s)
	assert.Equal(t, p.sim.Snapshot(), s.Snapshot())
}

func TestPlaying_OnExitWithoutFrames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	p, _ := createTestPlaying(t, path)

	assert.NotPanics(t, func() {
		p.OnEnter()
		p.OnExit()
	})
	assert.NoFileExists(t, path)
}

func TestPlaying_DeathFlash(t *testing.T) {
	p, keys := createTestPlaying(t, "")
	keys.press(ebiten.KeyEnter)
	_, _ = p.Update(dt)
	keys.endFrame()

	p.sim.World().Player.Y = 800
	_, _ = p.Update(dt)

	assert.Equal(t, state.ModeDied, p.sim.Mode())
	assert.InDelta(t, flashDuration-dt, p.flashTimer, 1e-9)
}

func TestReadFrame(t *testing.T) {
	keys := newFakeKeys()
	keys.held[ebiten.KeyArrowLeft] = true
	keys.press(ebiten.KeyX)
	keys.press(ebiten.KeyArrowUp)

	f := ReadFrame(keys, DefaultBindings())

	assert.Equal(t, sim.Frame{
		Input: system.Input{Left: true},
		Jump:  true,
		Fire:  true,
	}, f)
}

func TestReadFrame_FireKeys(t *testing.T) {
	for _, key := range []ebiten.Key{ebiten.KeyZ, ebiten.KeyX, ebiten.KeyA, ebiten.KeyB} {
		keys := newFakeKeys()
		keys.press(key)

		f := ReadFrame(keys, DefaultBindings())

		assert.True(t, f.Fire, key.String())
		assert.Equal(t, system.Input{}, f.Input, "%s does not move", key.String())
	}
}

func TestReadFrame_HeldJumpIsNotACommand(t *testing.T) {
	keys := newFakeKeys()
	keys.held[ebiten.KeySpace] = true
	keys.held[ebiten.KeyEnter] = true

	f := ReadFrame(keys, DefaultBindings())

	assert.False(t, f.Jump)
	assert.False(t, f.Continue)
}

func TestOverlayText(t *testing.T) {
	run := state.NewRun(3, 4)

	tests := []struct {
		mode  state.Mode
		empty bool
	}{
		{state.ModeStart, false},
		{state.ModePlaying, true},
		{state.ModeDied, false},
		{state.ModeLevelComplete, false},
		{state.ModeWon, false},
		{state.ModeLost, false},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			run.Mode = tt.mode
			title, hint := overlayText(run)
			assert.Equal(t, tt.empty, title == "")
			assert.Equal(t, tt.empty, hint == "")
		})
	}
}

func TestPlaying_RecorderStopsWhenRunEnds(t *testing.T) {
	tests := []struct {
		name  string
		event system.Event
	}{
		{"run lost", system.RunLost{Score: 300}},
		{"run won", system.RunWon{Score: 9000, Bonus: 5000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "run.json")
			p, keys := createTestPlaying(t, path)

			keys.press(ebiten.KeyEnter)
			_, err := p.Update(dt)
			require.NoError(t, err)
			keys.endFrame()

			p.onEvent(tt.event)
			require.FileExists(t, path)

			keys.press(ebiten.KeyArrowRight)
			_, err = p.Update(dt)
			require.NoError(t, err)

			assert.Equal(t, 1, p.recorder.FrameCount(), "frames after the run ends are not recorded")
			data, err := replay.LoadReplay(path)
			require.NoError(t, err)
			assert.Len(t, data.Frames, 1)
		})
	}
}

func TestRecorder_DoesNotRecordWhenStopped(t *testing.T) {
	r := NewRecorder(1)
	r.Stop()

	r.RecordFrame(sim.Frame{Input: system.Input{Left: true}})

	assert.Equal(t, 0, r.FrameCount())
}

func TestRecorder_SaveEmpty(t *testing.T) {
	r := NewRecorder(1)

	err := r.Save(filepath.Join(t.TempDir(), "x.json"))

	assert.ErrorContains(t, err, "no frames")
}

func TestGenerateFilename(t *testing.T) {
	assert.Regexp(t, `^replay_\d{8}_\d{6}\.json$`, GenerateFilename())
}
