package breakout

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// StartLives is the number of lives at the start of a game.
const StartLives = 3

// World is the simulation context: everything one step reads and writes.
// It has a single owner and no internal locking.
type World struct {
	Paddle Paddle
	Ball   Ball
	Bricks []Brick
	Score  int
	Lives  int
	Level  int

	// Contact of the last step: the wall the ball touched and the index of
	// the brick it hit, or -1. The renderer flashes both.
	LastWall  CollisionSide
	LastBrick int
}

// NewWorld returns a level 1 world with a full grid and the ball stuck to a
// centered paddle.
func NewWorld() *World {
	w := &World{
		Lives: StartLives,
		Level: 1,
		Ball: Ball{
			Radius: BallRadius,
			Speed:  BallSpeed,
		},
		LastBrick: -1,
	}
	w.resetPaddle()
	w.resetBall()
	w.Bricks = NewBrickGrid(w.Level)
	return w
}

// resetPaddle restores the default width and centers the paddle.
func (w *World) resetPaddle() {
	w.Paddle = Paddle{
		Width:  PaddleWidth,
		Height: PaddleHeight,
		Speed:  PaddleSpeed,
		X:      (FieldWidth - PaddleWidth) / 2,
		Y:      FieldHeight - PaddleBottomGap,
	}
}

// resetBall glues the ball to the paddle with zero velocity.
func (w *World) resetBall() {
	w.Ball.VX = 0
	w.Ball.VY = 0
	w.Ball.Stuck = true
	w.followPaddle()
}

// followPaddle pins a stuck ball just above the paddle center.
func (w *World) followPaddle() {
	w.Ball.X = w.Paddle.CenterX()
	w.Ball.Y = w.Paddle.Y - w.Ball.Radius - BallLift
}

// Launch frees a stuck ball. The offset is the deviation from straight up
// in radians; the resulting speed equals the ball's speed scalar.
// It does nothing if the ball is already free.
func (w *World) Launch(offset float64) bool {
	if !w.Ball.Stuck {
		return false
	}
	angle := -math.Pi/2 + offset
	w.Ball.VX = math.Cos(angle) * w.Ball.Speed
	w.Ball.VY = math.Sin(angle) * w.Ball.Speed
	w.Ball.Stuck = false
	return true
}

// Step advances the world by elapsed time, capped at MaxStep, using one
// input snapshot. It returns the events raised, in order.
func (w *World) Step(in core.InputFrame, elapsed time.Duration) []core.Event {
	dt := min(max(elapsed, 0), MaxStep).Seconds()

	w.movePaddle(in, dt)
	w.LastWall, w.LastBrick = CollisionNone, -1

	if w.Ball.Stuck {
		w.followPaddle()
		return nil
	}

	w.Ball.Move(dt)

	side, missed := ResolveWalls(&w.Ball)
	if missed {
		return w.loseLife()
	}
	w.LastWall = side

	BouncePaddle(&w.Ball, &w.Paddle)

	var events []core.Event
	if hit, ok := HitFirstBrick(&w.Ball, w.Bricks); ok {
		w.Score += hit.Points
		w.LastBrick = hit.Index
		if hit.Destroyed {
			events = append(events, core.EventBrickDestroyed)
		} else {
			events = append(events, core.EventBrickHit)
		}
	}

	if CountAlive(w.Bricks) == 0 {
		w.nextLevel()
		events = append(events, core.EventLevelUp)
	}

	return events
}

// movePaddle applies the pointer override or held directions, then clamps.
func (w *World) movePaddle(in core.InputFrame, dt float64) {
	if x, ok := in.Pointer(); ok {
		w.Paddle.X += (x - w.Paddle.CenterX()) * PointerEase
	} else {
		w.Paddle.X += in.Direction() * w.Paddle.Speed * dt
	}
	w.Paddle.Clamp()
}

// loseLife handles a ball that left the field through the bottom.
func (w *World) loseLife() []core.Event {
	w.Lives = max(w.Lives-1, 0)
	w.resetPaddle()
	w.resetBall()

	if w.Lives == 0 {
		return []core.Event{core.EventLifeLost, core.EventGameOver}
	}
	return []core.Event{core.EventLifeLost}
}

// nextLevel raises the difficulty and deals a fresh grid. The paddle keeps
// its position but loses width.
func (w *World) nextLevel() {
	w.Level++
	w.Ball.Speed += BallSpeedStep
	w.Paddle.Width = max(MinPaddleWidth, w.Paddle.Width-PaddleShrink)
	w.Paddle.Clamp()
	w.Bricks = NewBrickGrid(w.Level)
	w.resetBall()
}
