package breakout

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Play-field dimensions in world units.
const (
	FieldWidth  = 960.0
	FieldHeight = 600.0

	// WallThickness is the inset of the playable walls from the field edges.
	WallThickness = 10.0

	// PaddleMargin keeps the paddle one buffer away from each wall.
	PaddleMargin = WallThickness + 10.0

	// MaxStep caps the elapsed time consumed by one step so a slow frame
	// cannot tunnel the ball through a brick or the paddle.
	MaxStep = 20 * time.Millisecond
)

// Paddle tuning.
const (
	PaddleWidth     = 140.0
	PaddleHeight    = 14.0
	PaddleSpeed     = 640.0 // units per second
	PaddleBottomGap = 40.0  // distance from paddle top to field bottom
	MinPaddleWidth  = 90.0
	PaddleShrink    = 8.0 // width lost per level
	PointerEase     = 0.2 // fraction of the distance to the pointer covered per step
)

// Ball tuning.
const (
	BallRadius     = 8.0
	BallSpeed      = 360.0 // units per second at level 1
	BallSpeedStep  = 35.0  // added per level
	BallLift       = 2.0   // gap between stuck ball and paddle top
	LaunchSpread   = 0.3   // max launch deviation from straight up, radians
	MaxBounceAngle = math.Pi / 3
)

// Ball is the single ball in play.
type Ball struct {
	X, Y   float64 // Center
	VX, VY float64 // Units per second
	Radius float64
	Speed  float64 // Magnitude assigned on launch and paddle bounce
	Stuck  bool    // Glued to the paddle, waiting for launch
}

// Box returns the ball's bounding square.
func (b *Ball) Box() core.Box {
	return core.SquareAround(b.X, b.Y, b.Radius)
}

// Move integrates position over dt seconds.
func (b *Ball) Move(dt float64) {
	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.VX = -b.VX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.VY = -b.VY
}

// Paddle is the player's paddle. Y is the top edge and never changes.
type Paddle struct {
	X, Y   float64 // Top-left corner
	Width  float64
	Height float64
	Speed  float64
}

// CenterX returns the paddle's horizontal center.
func (p *Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Right returns the paddle's right edge.
func (p *Paddle) Right() float64 {
	return p.X + p.Width
}

// Clamp keeps the paddle between the field margins.
func (p *Paddle) Clamp() {
	p.X = core.ClampF(p.X, PaddleMargin, FieldWidth-p.Width-PaddleMargin)
}

// CollisionSide indicates which boundary the ball touched.
type CollisionSide int

const (
	CollisionNone CollisionSide = iota
	CollisionTop
	CollisionBottom
	CollisionLeft
	CollisionRight
)

// ResolveWalls reflects the ball off the left, right and top walls and
// places it flush against the wall it touched. It reports whether the ball
// has dropped completely below the field.
func ResolveWalls(ball *Ball) (side CollisionSide, missed bool) {
	if ball.X-ball.Radius < WallThickness {
		ball.X = WallThickness + ball.Radius
		ball.BounceX()
		side = CollisionLeft
	}
	if ball.X+ball.Radius > FieldWidth-WallThickness {
		ball.X = FieldWidth - WallThickness - ball.Radius
		ball.BounceX()
		side = CollisionRight
	}
	if ball.Y-ball.Radius < WallThickness {
		ball.Y = WallThickness + ball.Radius
		ball.BounceY()
		side = CollisionTop
	}
	if ball.Y-ball.Radius > FieldHeight {
		return CollisionBottom, true
	}
	return side, false
}

// BouncePaddle redirects a descending ball that reached the paddle top
// within the paddle span. The bounce angle grows with the distance from
// the paddle center, up to MaxBounceAngle from vertical, and the ball always
// leaves upward at its speed scalar.
func BouncePaddle(ball *Ball, paddle *Paddle) bool {
	if ball.VY <= 0 {
		return false
	}
	if ball.Y+ball.Radius < paddle.Y {
		return false
	}
	if ball.X < paddle.X || ball.X > paddle.Right() {
		return false
	}

	// Range: -1 (left edge) to +1 (right edge)
	hit := (ball.X - paddle.CenterX()) / (paddle.Width / 2)
	angle := hit * MaxBounceAngle

	ball.VX = math.Sin(angle) * ball.Speed
	ball.VY = -math.Cos(angle) * ball.Speed
	ball.Y = paddle.Y - ball.Radius - 1

	return true
}

// BrickHit describes the outcome of a brick collision.
type BrickHit struct {
	Index     int  // Position in the scan order
	Destroyed bool // Hit-points reached zero
	Points    int
}

// HitFirstBrick scans bricks in order and resolves a collision with the
// first alive brick overlapping the ball's bounding square. At most one
// brick is hit per call, even when the ball overlaps several.
func HitFirstBrick(ball *Ball, bricks []Brick) (BrickHit, bool) {
	ballBox := ball.Box()

	for i := range bricks {
		brick := &bricks[i]
		if !brick.Alive {
			continue
		}
		box := brick.Box()
		if !ballBox.Overlaps(box) {
			continue
		}

		// Bounce along the axis with the shallower penetration
		dx, dy := ballBox.Penetration(box)
		if dx < dy {
			ball.BounceX()
		} else {
			ball.BounceY()
		}

		hit := BrickHit{Index: i}
		brick.HP--
		if brick.HP <= 0 {
			brick.Alive = false
			hit.Destroyed = true
			hit.Points = PointsDestroy
		} else {
			hit.Points = PointsDamage
		}
		return hit, true
	}

	return BrickHit{Index: -1}, false
}
