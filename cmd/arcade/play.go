package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/replay"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagRecord string
	flagPlayer string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: breakout).

Controls:
  Left/A/H, Right/D/L - Move paddle
  Mouse drag          - Steer paddle to pointer
  Space               - Launch ball
  P/Esc               - Pause
  R                   - New game
  Ctrl+S              - Save screenshot
  ?                   - More help
  Q/Ctrl+C            - Quit

Examples:
  arcade play
  arcade play --seed 42
  arcade play --record ./run.replay
  arcade play --fps 30 --config ./arcade.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Save a replay of the session to this file")
	playCmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Player name stored with scores")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID, err := resolveGame(args)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(appConfig.Log, true)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	// Open score storage
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	rec, err := tui.Run(game, tui.Options{
		Config: appConfig,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: appConfig.Display.TickRate,
			Seed:     flagSeed,
		},
		Store:  store,
		Logger: logger,
		Player: flagPlayer,
		Record: flagRecord != "",
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if rec != nil {
		if err := replay.Save(flagRecord, rec); err != nil {
			return err
		}
		fmt.Printf("Replay saved to %s (%d frames, %s)\n", flagRecord, len(rec.Frames), rec.Duration().Round(time.Millisecond))
	}
	return nil
}
