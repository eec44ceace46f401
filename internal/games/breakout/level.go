// Package breakout implements a Breakout/Arkanoid-style brick breaker game.
package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Brick grid layout in world units.
const (
	BrickRows       = 6
	BrickCols       = 12
	BrickPadding    = 10.0
	BrickOffsetTop  = 70.0
	BrickOffsetLeft = 40.0
	BrickHeight     = 26.0
	MaxBrickHP      = 3
)

// Scoring.
const (
	PointsDestroy = 50 // Brick reached zero hit-points
	PointsDamage  = 15 // Brick survived the hit
)

// BrickWidth is the width of every brick so that the grid spans the field
// between the left and right offsets.
const BrickWidth = (FieldWidth - BrickOffsetLeft*2 - BrickPadding*(BrickCols-1)) / BrickCols

// Brick is a single brick in the grid.
type Brick struct {
	X, Y  float64 // Top-left corner
	W, H  float64
	HP    int  // Hits left before destruction
	Alive bool // Whether brick is still present
}

// Box returns the brick's bounding box.
func (b *Brick) Box() core.Box {
	return core.Box{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// BrickHP returns the starting hit-points for a brick in the given row
// (0 = top) at the given level (1-based). Toughness rises by one every
// three rows and every three levels, capped at MaxBrickHP.
func BrickHP(row, level int) int {
	hp := 1 + (row+level-1)/3
	return min(hp, MaxBrickHP)
}

// NewBrickGrid builds the full grid for a level in row-major order,
// which is also the collision scan order.
func NewBrickGrid(level int) []Brick {
	bricks := make([]Brick, 0, BrickRows*BrickCols)
	for row := range BrickRows {
		for col := range BrickCols {
			bricks = append(bricks, Brick{
				X:     BrickOffsetLeft + float64(col)*(BrickWidth+BrickPadding),
				Y:     BrickOffsetTop + float64(row)*(BrickHeight+BrickPadding),
				W:     BrickWidth,
				H:     BrickHeight,
				HP:    BrickHP(row, level),
				Alive: true,
			})
		}
	}
	return bricks
}

// CountAlive returns the number of bricks still standing.
func CountAlive(bricks []Brick) int {
	count := 0
	for _, b := range bricks {
		if b.Alive {
			count++
		}
	}
	return count
}
