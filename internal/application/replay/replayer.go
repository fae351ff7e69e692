package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/younwookim/skyline/internal/application/sim"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}

// Decode reads replay data from r
func Decode(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Level < 1 {
		data.Level = 1
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (sim.Frame, bool) {
	if r.frame >= len(r.data.Frames) {
		return sim.Frame{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return fi.Frame(), true
}

// Play feeds every remaining frame into s, one tick per frame.
// Returns the number of frames played.
func (r *Replayer) Play(s *sim.Simulation) int {
	played := 0
	for {
		f, ok := r.GetInput()
		if !ok {
			return played
		}
		s.Tick(f)
		played++
	}
}

// Level returns the start level the recording was made with
func (r *Replayer) Level() int {
	return r.data.Level
}

// CreateTestReplayData creates replay data for testing: continue on the
// first frame, then hold right.
func CreateTestReplayData(frames int) ReplayData {
	data := ReplayData{
		Version:   Version,
		Level:     1,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F: i,
			R: true,
			C: i == 0,
		}
	}

	return data
}
