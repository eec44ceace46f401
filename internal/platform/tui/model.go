package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/replay"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// chromeRows is the number of screen rows used by the HUD bar and help line.
const chromeRows = 2

// pointerMapper is implemented by games that accept a drag position.
type pointerMapper interface {
	PointerX(col, cols int) float64
}

// Options configures a game session.
type Options struct {
	Config  config.ArcadeConfig
	Runtime core.RuntimeConfig // Screen size is the full terminal; Seed 0 means time-based
	Store   *storage.Store     // Optional
	Logger  *log.Logger        // Optional
	Player  string             // Recorded with saved scores
	Record  bool               // Keep a replay of the session
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	store    *storage.Store
	logger   *log.Logger
	runtime  core.RuntimeConfig
	interval time.Duration
	mouse    bool
	player   string

	keys    *KeyMapper
	help    help.Model
	hud     *HUD
	overlay *Overlay
	input   *heldInput
	frame   core.InputFrame

	recorder *replay.Recorder
	lastTick time.Time
	now      func() time.Time

	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = opts.Config.Display.TickRate
	}
	cfg.ScreenH = max(cfg.ScreenH-chromeRows, 0)

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	hold := opts.Config.Controls.KeyHold
	if hold <= 0 {
		hold = config.DefaultConfig().Controls.KeyHold
	}

	m := Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:    opts.Store,
		logger:   logger,
		runtime:  cfg,
		interval: time.Second / time.Duration(max(cfg.TickRate, 1)),
		mouse:    opts.Config.Controls.Mouse,
		player:   opts.Player,
		keys:     NewKeyMapper(),
		help:     help.New(),
		hud:      &HUD{},
		overlay:  &Overlay{},
		input:    newHeldInput(hold),
		frame:    core.NewInputFrame(),
		now:      time.Now,
	}
	m.help.Width = cfg.ScreenW

	if m.store != nil {
		if best, err := m.store.HighScore(game.ID()); err != nil {
			logger.Warn("could not read high score", "error", err)
		} else {
			m.hud.Best = best
		}
	}

	game.Attach(m.hud, m.overlay)
	game.Reset(cfg)
	m.gameState = game.State()

	if opts.Record {
		m.recorder = replay.NewRecorder(game.ID(), cfg)
	}

	logger.Debug("game ready", "game", game.ID(), "seed", cfg.Seed, "width", cfg.ScreenW, "height", cfg.ScreenH)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys()
	switch {
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.input.Press(action, m.now())

	return m, nil
}

// handleMouse turns a left-button drag into the pointer override.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.mouse {
		return m, nil
	}
	mapper, ok := m.game.(pointerMapper)
	if !ok {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress, tea.MouseActionMotion:
		if msg.Button == tea.MouseButtonLeft {
			m.input.Pointer(mapper.PointerX(msg.X, m.screen.Width()))
		}
	case tea.MouseActionRelease:
		m.input.ReleasePointer()
	}

	return m, nil
}

// handleResize processes window resize events. The simulation keeps running
// in world units; only the rendering adapts.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	h := max(msg.Height-chromeRows, 0)
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = h
	m.screen.Resize(msg.Width, h)
	m.game.Resize(msg.Width, h)
	m.help.Width = msg.Width

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed time.Duration
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	m.input.Frame(now, &m.frame)
	if m.recorder != nil {
		m.recorder.Add(elapsed, m.frame)
	}

	result := m.game.Step(elapsed, m.frame)
	m.gameState = result.State
	for _, ev := range result.Events {
		m.logger.Debug("game event", "event", ev, "score", result.State.Score, "lives", result.State.Lives, "level", result.State.Level)
	}

	// Save score on game over (once per game)
	switch {
	case m.gameState.GameOver && !m.scoreSaved:
		m.saveScore()
		m.scoreSaved = true
	case !m.gameState.GameOver:
		m.scoreSaved = false
	}

	return m, tickCmd(m.interval)
}

// saveScore records the finished game. Failures are logged and play continues.
func (m *Model) saveScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	entry := storage.ScoreEntry{
		GameID: m.game.ID(),
		Player: m.player,
		Score:  m.gameState.Score,
		Level:  m.gameState.Level,
	}
	if _, err := m.store.SaveScore(entry); err != nil {
		m.logger.Warn("could not save score", "error", err)
		return
	}
	m.logger.Info("score saved", "game", entry.GameID, "player", entry.Player, "score", entry.Score, "level", entry.Level)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)
	m.overlay.Draw(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	m.overlay.Draw(m.screen)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.hud.View(m.game.Title(), m.screen.Width()),
		RenderScreen(m.screen),
		helpStyle.Render(m.help.View(m.keys.Keys())),
	)
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// Recording returns the session replay, or nil when recording is off.
func (m Model) Recording() *replay.Recording {
	if m.recorder == nil {
		return nil
	}
	var hash uint64
	if snapper, ok := m.game.(replay.Snapshotter); ok {
		snap := snapper.Snapshot()
		hash = snap.Hash()
	}
	return m.recorder.Finish(hash)
}

// Run starts the Bubble Tea program and blocks until the player quits.
// It returns the session replay when opts.Record is set.
func Run(game registry.Game, opts Options) (*replay.Recording, error) {
	model := NewModel(game, opts)

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Config.Controls.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	final, err := tea.NewProgram(model, programOpts...).Run()
	if err != nil {
		return nil, err
	}

	if m, ok := final.(Model); ok {
		return m.Recording(), nil
	}
	return nil, nil
}
