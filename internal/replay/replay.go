// Package replay records the input frames of a game session and re-runs
// them headlessly. Games are deterministic for a given seed, elapsed times
// and input frames, so a recording reproduces the session exactly.
package replay

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// FormatVersion is bumped whenever the encoding changes incompatibly.
const FormatVersion = 1

// Errors returned by Load and Play.
var (
	ErrVersion      = errors.New("replay: unsupported format version")
	ErrHashMismatch = errors.New("replay: final state does not match recording")
	ErrNoSnapshot   = errors.New("replay: game does not support snapshots")
)

// Frame is one host tick: the elapsed time and the input snapshot passed
// to Step.
type Frame struct {
	Dt    time.Duration   `msgpack:"dt"`
	Input core.InputFrame `msgpack:"in"`
}

// Recording is a complete session.
type Recording struct {
	Version   int       `msgpack:"v"`
	GameID    string    `msgpack:"game"`
	Seed      int64     `msgpack:"seed"`
	ScreenW   int       `msgpack:"w"`
	ScreenH   int       `msgpack:"h"`
	CreatedAt time.Time `msgpack:"created"`
	Frames    []Frame   `msgpack:"frames"`

	// FinalHash is the snapshot hash after the last frame; zero when the
	// recorder was not finished.
	FinalHash uint64 `msgpack:"hash"`
}

// Duration returns the total simulated wall time of the recording.
func (r *Recording) Duration() time.Duration {
	var total time.Duration
	for _, f := range r.Frames {
		total += f.Dt
	}
	return total
}

// Snapshotter is implemented by games that expose their full state.
type Snapshotter interface {
	Snapshot() breakout.Snapshot
}

// Recorder accumulates frames for one session.
type Recorder struct {
	rec Recording
}

// NewRecorder starts a recording for a game reset with the given runtime
// configuration. The seed must be the one actually passed to Reset.
func NewRecorder(gameID string, runtime core.RuntimeConfig) *Recorder {
	return &Recorder{
		rec: Recording{
			Version:   FormatVersion,
			GameID:    gameID,
			Seed:      runtime.Seed,
			ScreenW:   runtime.ScreenW,
			ScreenH:   runtime.ScreenH,
			CreatedAt: time.Now().UTC().Truncate(time.Second),
		},
	}
}

// Add appends a frame. The input is cloned so the caller may reuse it.
func (r *Recorder) Add(dt time.Duration, in core.InputFrame) {
	r.rec.Frames = append(r.rec.Frames, Frame{Dt: dt, Input: in.Clone()})
}

// Len returns the number of recorded frames.
func (r *Recorder) Len() int {
	return len(r.rec.Frames)
}

// Finish stamps the final state hash and returns the recording.
func (r *Recorder) Finish(finalHash uint64) *Recording {
	rec := r.rec
	rec.FinalHash = finalHash
	return &rec
}

// Marshal encodes a recording.
func Marshal(rec *Recording) ([]byte, error) {
	data, err := msgpack.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot encode: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a recording and checks its version.
func Unmarshal(data []byte) (*Recording, error) {
	var rec Recording
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("replay: cannot decode: %w", err)
	}
	if rec.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrVersion, rec.Version)
	}
	return &rec, nil
}

// Save writes a recording to path, creating parent directories.
func Save(path string, rec *Recording) error {
	data, err := Marshal(rec)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("replay: cannot create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("replay: cannot write %s: %w", path, err)
	}
	return nil
}

// Load reads a recording from path.
func Load(path string) (*Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot read %s: %w", path, err)
	}
	return Unmarshal(data)
}

// Play re-runs a recording on a fresh game and returns the final snapshot.
// A recording with a final hash that the re-run does not reproduce returns
// the snapshot together with ErrHashMismatch.
func Play(rec *Recording) (breakout.Snapshot, error) {
	game, err := registry.Create(rec.GameID)
	if err != nil {
		return breakout.Snapshot{}, fmt.Errorf("replay: %w", err)
	}
	snapper, ok := game.(Snapshotter)
	if !ok {
		return breakout.Snapshot{}, fmt.Errorf("%w: %s", ErrNoSnapshot, rec.GameID)
	}

	game.Reset(core.RuntimeConfig{
		ScreenW:  rec.ScreenW,
		ScreenH:  rec.ScreenH,
		TickRate: 60,
		Seed:     rec.Seed,
	})
	for _, f := range rec.Frames {
		game.Step(f.Dt, f.Input)
	}

	snap := snapper.Snapshot()
	if rec.FinalHash != 0 && snap.Hash() != rec.FinalHash {
		return snap, fmt.Errorf("%w: got %d, recorded %d", ErrHashMismatch, snap.Hash(), rec.FinalHash)
	}
	return snap, nil
}
