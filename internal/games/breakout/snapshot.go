package breakout

import "math"

// Snapshot contains the complete game state for replay verification and
// save/restore. Field tags keep the msgpack encoding stable.
type Snapshot struct {
	Tick  uint64 `msgpack:"tick"`
	State string `msgpack:"state"`
	Score int    `msgpack:"score"`
	Lives int    `msgpack:"lives"`
	Level int    `msgpack:"level"`

	PaddleX     float64 `msgpack:"paddle_x"`
	PaddleWidth float64 `msgpack:"paddle_width"`

	BallX     float64 `msgpack:"ball_x"`
	BallY     float64 `msgpack:"ball_y"`
	BallVX    float64 `msgpack:"ball_vx"`
	BallVY    float64 `msgpack:"ball_vy"`
	BallSpeed float64 `msgpack:"ball_speed"`
	BallStuck bool    `msgpack:"ball_stuck"`

	BricksRemaining int `msgpack:"bricks_remaining"`

	// Brick states in scan order, each brick is 2 ints: Alive, HP
	BrickData []int `msgpack:"bricks"`

	RNGState uint64 `msgpack:"rng"`
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world

	brickData := make([]int, len(w.Bricks)*2)
	for i, brick := range w.Bricks {
		if brick.Alive {
			brickData[i*2] = 1
		}
		brickData[i*2+1] = brick.HP
	}

	return Snapshot{
		Tick:  uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		State: g.state,
		Score: w.Score,
		Lives: w.Lives,
		Level: w.Level,

		PaddleX:     w.Paddle.X,
		PaddleWidth: w.Paddle.Width,

		BallX:     w.Ball.X,
		BallY:     w.Ball.Y,
		BallVX:    w.Ball.VX,
		BallVY:    w.Ball.VY,
		BallSpeed: w.Ball.Speed,
		BallStuck: w.Ball.Stuck,

		BricksRemaining: CountAlive(w.Bricks),
		BrickData:       brickData,
		RNGState:        g.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.State {
		h = h*31 + uint64(c)
	}
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level) //#nosec G115 -- hash computation

	for _, f := range []float64{
		snap.PaddleX, snap.PaddleWidth,
		snap.BallX, snap.BallY, snap.BallVX, snap.BallVY, snap.BallSpeed,
	} {
		h = h*31 + math.Float64bits(f)
	}
	if snap.BallStuck {
		h = h*31 + 1
	}

	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation
	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}
