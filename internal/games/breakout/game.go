package breakout

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar  = '▀'
	BallChar    = '●'
	BrickChar   = '█'
	BorderVert  = '│'
	BorderHoriz = '─'
	BorderTL    = '┌'
	BorderTR    = '┐'
)

// Brick colors by remaining hit-points
var brickColors = []core.Color{core.ColorTeal, core.ColorBlue, core.ColorMagenta}

// GameState constants
const (
	StateIdle     = "idle"     // Waiting for the first launch
	StateRunning  = "running"  // Simulation advancing
	StatePaused   = "paused"   // Frozen until resumed
	StateGameOver = "gameover" // No lives left, waiting for reset
)

// Overlay texts
const (
	titleStart    = "Breakout"
	titlePaused   = "Paused"
	titleGameOver = "Game Over"
)

// Game implements the Breakout game logic.
type Game struct {
	world *World
	rng   *SimpleRNG

	// Game state
	state     string
	tickCount int

	// Collaborators
	hud      core.HUD
	notifier core.Notifier

	// Configuration
	runtime        core.RuntimeConfig
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Breakout game instance.
func New() *Game {
	return &Game{
		hud:      core.NopHUD{},
		notifier: core.NopNotifier{},
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Attach connects the HUD and overlay collaborators. Nil values keep the
// current collaborator.
func (g *Game) Attach(hud core.HUD, notifier core.Notifier) {
	if hud != nil {
		g.hud = hud
	}
	if notifier != nil {
		g.notifier = notifier
	}
}

// Reset initializes or restarts the game and re-enters the idle state.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	g.minScreenW = 30
	g.minScreenH = 15
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.rng = NewSimpleRNG(runtime.Seed)
	g.restart()
}

// restart deals a fresh world and shows the start prompt.
func (g *Game) restart() {
	g.world = NewWorld()
	g.state = StateIdle
	g.tickCount = 0
	g.pushHUD()
	g.notifier.Show(titleStart, "Press SPACE to start", "Start")
}

// Resize adapts rendering to new screen dimensions without touching the
// simulation.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH
}

// Step applies this frame's intents, then advances the simulation by
// elapsed time if the game is running.
func (g *Game) Step(elapsed time.Duration, in core.InputFrame) core.StepResult {
	var events []core.Event

	if in.Has(core.ActionReset) {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.togglePause()
	}

	if in.Has(core.ActionLaunch) && g.launch() {
		events = append(events, core.EventLaunch)
	}

	// Idle, paused and game over leave the world untouched
	if g.state != StateRunning {
		return core.StepResult{State: g.State(), Events: events}
	}

	g.tickCount++
	stepEvents := g.world.Step(in, elapsed)
	g.handleEvents(stepEvents)
	events = append(events, stepEvents...)

	return core.StepResult{State: g.State(), Events: events}
}

// launch starts the game from idle and frees a stuck ball.
// Reports whether the ball was launched.
func (g *Game) launch() bool {
	switch g.state {
	case StateGameOver, StatePaused:
		return false
	case StateIdle:
		g.state = StateRunning
	}
	g.notifier.Hide()

	return g.world.Launch(g.rng.Spread(LaunchSpread))
}

// togglePause flips between running and paused. Other states ignore it.
func (g *Game) togglePause() {
	switch g.state {
	case StateRunning:
		g.state = StatePaused
		g.notifier.Show(titlePaused, "Press P to resume", "Resume")
	case StatePaused:
		g.state = StateRunning
		g.notifier.Hide()
	}
}

// handleEvents forwards step outcomes to the collaborators.
func (g *Game) handleEvents(events []core.Event) {
	for _, ev := range events {
		switch ev {
		case core.EventBrickHit, core.EventBrickDestroyed, core.EventLifeLost:
			g.pushHUD()
		case core.EventGameOver:
			g.state = StateGameOver
			g.pushHUD()
			g.notifier.Show(titleGameOver, fmt.Sprintf("Final score %d. Press R to play again", g.world.Score), "Restart")
		case core.EventLevelUp:
			g.pushHUD()
			g.notifier.Show(fmt.Sprintf("Level %d", g.world.Level), "Press SPACE to continue", "Continue")
		}
	}
}

// pushHUD sends the current score, lives and level to the HUD.
func (g *Game) pushHUD() {
	g.hud.Update(g.world.Score, g.world.Lives, g.world.Level)
}

// World returns the simulation context. Callers must not retain it across
// a Reset.
func (g *Game) World() *World {
	return g.world
}

// Phase returns the game-level state name.
func (g *Game) Phase() string {
	return g.state
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score,
		Lives:    g.world.Lives,
		Level:    g.world.Level,
		Running:  g.state == StateRunning || g.state == StatePaused,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < g.minScreenW || dst.Height() < g.minScreenH {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	v := newViewport(dst)
	g.renderWalls(dst, v)
	g.renderBricks(dst, v)
	g.renderPaddle(dst, v)
	g.renderBall(dst, v)

	if g.world.Ball.Stuck && g.state != StateGameOver {
		dst.DrawTextColored(2, dst.Height()-1, "SPACE launch", core.ColorGray)
	}
}

// viewport maps world units to screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(dst *core.Screen) viewport {
	return viewport{
		sx: float64(dst.Width()) / FieldWidth,
		sy: float64(dst.Height()) / FieldHeight,
	}
}

// PointerX maps a screen column to the world x at the center of that column.
func (g *Game) PointerX(col, cols int) float64 {
	if cols <= 0 {
		return FieldWidth / 2
	}
	return (float64(col) + 0.5) * FieldWidth / float64(cols)
}

func (v viewport) col(x float64) int { return int(x * v.sx) }
func (v viewport) row(y float64) int { return int(y * v.sy) }

// span returns the first and last cell covered by [from, to).
// Anything with positive extent covers at least one cell.
func (v viewport) span(from, to float64, scale float64) (int, int) {
	first := int(from * scale)
	last := int(to*scale) - 1
	return first, max(first, last)
}

// wallColor flashes the wall the ball touched in the last step.
func (g *Game) wallColor(side CollisionSide) core.Color {
	if g.world.LastWall == side {
		return core.ColorWhite
	}
	return core.ColorGray
}

func (g *Game) renderWalls(dst *core.Screen, v viewport) {
	right := dst.Width() - 1
	top, left, rightC := g.wallColor(CollisionTop), g.wallColor(CollisionLeft), g.wallColor(CollisionRight)

	dst.SetColored(0, 0, BorderTL, core.ColorGray)
	dst.SetColored(right, 0, BorderTR, core.ColorGray)
	for x := 1; x < right; x++ {
		dst.SetColored(x, 0, BorderHoriz, top)
	}
	for y := 1; y < dst.Height(); y++ {
		dst.SetColored(0, y, BorderVert, left)
		dst.SetColored(right, y, BorderVert, rightC)
	}
}

func (g *Game) renderBricks(dst *core.Screen, v viewport) {
	for i := range g.world.Bricks {
		brick := &g.world.Bricks[i]
		if !brick.Alive {
			continue
		}
		color := brickColors[core.Clamp(brick.HP, 1, len(brickColors))-1]
		if i == g.world.LastBrick {
			color = core.ColorWhite
		}
		x0, x1 := v.span(brick.X, brick.X+brick.W, v.sx)
		y0, y1 := v.span(brick.Y, brick.Y+brick.H, v.sy)
		dst.FillRect(core.NewRect(x0, y0, x1-x0+1, y1-y0+1), BrickChar, color)
	}
}

func (g *Game) renderPaddle(dst *core.Screen, v viewport) {
	p := &g.world.Paddle
	x0, x1 := v.span(p.X, p.Right(), v.sx)
	y := v.row(p.Y)
	for x := x0; x <= x1; x++ {
		dst.SetColored(x, y, PaddleChar, core.ColorOrange)
	}
}

func (g *Game) renderBall(dst *core.Screen, v viewport) {
	b := &g.world.Ball
	if b.Y-b.Radius > FieldHeight {
		return
	}
	dst.SetColored(v.col(b.X), v.row(b.Y), BallChar, core.ColorRed)
}

// Register the game with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}
