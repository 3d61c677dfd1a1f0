package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/tilesim/internal/application/system"
)

// Version is written into new recordings
const Version = "2.0"

// ErrDigestMismatch is returned when a replay ends in a different state
// than the one recorded
var ErrDigestMismatch = errors.New("replay digest mismatch")

// Replayer handles input playback from recorded data
type Replayer struct {
	data ReplayData
	tick int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// GetInput returns the input for the current tick and advances
func (r *Replayer) GetInput() (system.InputState, bool) {
	if r.tick >= len(r.data.Ticks) {
		return system.InputState{}, false
	}

	ti := r.data.Ticks[r.tick]
	r.tick++

	return system.InputState{
		Left:         ti.L,
		Right:        ti.R,
		Jump:         ti.J,
		JumpPressed:  ti.JP,
		JumpReleased: ti.JR,
		Respawn:      ti.RS,
	}, true
}

// Play feeds every remaining recorded tick into sim and returns the
// number of ticks run
func (r *Replayer) Play(sim *system.Simulation, input *system.InputSystem) int {
	n := 0
	for {
		in, ok := r.GetInput()
		if !ok {
			return n
		}
		sim.Step(input, in)
		n++
	}
}

// Verify plays the whole recording from the start and compares the final
// state digest with the recorded one
func (r *Replayer) Verify(sim *system.Simulation, input *system.InputSystem) error {
	r.Reset()
	r.Play(sim, input)

	if got := sim.Digest(); got != r.data.Digest {
		return fmt.Errorf("%w: recorded %016x, replayed %016x after %d ticks",
			ErrDigestMismatch, r.data.Digest, got, sim.Ticks())
	}
	return nil
}

// CurrentTick returns the current tick number
func (r *Replayer) CurrentTick() int {
	return r.tick
}

// TotalTicks returns the total number of ticks
func (r *Replayer) TotalTicks() int {
	return len(r.data.Ticks)
}

// Stage returns the name of the recorded stage
func (r *Replayer) Stage() string {
	return r.data.Stage
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.tick = 0
}

// CreateTestReplayData creates replay data for testing (idle player)
func CreateTestReplayData(ticks int, stage string) ReplayData {
	data := ReplayData{
		Version:   Version,
		Stage:     stage,
		StartTime: time.Now().Format(time.RFC3339),
		Ticks:     make([]TickInput, ticks),
	}

	for i := 0; i < ticks; i++ {
		data.Ticks[i] = TickInput{T: i}
	}

	return data
}
