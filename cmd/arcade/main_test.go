package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

func TestResolveGame(t *testing.T) {
	id, err := resolveGame(nil)
	if err != nil || id != defaultGame {
		t.Errorf("resolveGame(nil) = (%q, %v), expected %q", id, err, defaultGame)
	}

	id, err = resolveGame([]string{"breakout"})
	if err != nil || id != "breakout" {
		t.Errorf("resolveGame(breakout) = (%q, %v)", id, err)
	}

	if _, err := resolveGame([]string{"tetris"}); err == nil || !strings.Contains(err.Error(), "tetris") {
		t.Errorf("unknown game should fail, got %v", err)
	}
}

func TestLoadConfigFlagsOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	if err := rootCmd.ParseFlags([]string{"--fps", "30", "--log-level", "debug"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if err := loadConfig(rootCmd, nil); err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if appConfig.Display.TickRate != 30 || appConfig.Log.Level != "debug" {
		t.Errorf("flags not applied: tick_rate=%d level=%q", appConfig.Display.TickRate, appConfig.Log.Level)
	}
	if appConfig.Storage.DBPath != config.DefaultConfig().Storage.DBPath {
		t.Errorf("unchanged flag should keep config value, got %q", appConfig.Storage.DBPath)
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "arcade.log")

	logger, closeLog, err := newLogger(config.LogConfig{Level: "info", File: path}, true)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Info("hello", "n", 1)
	logger.Debug("hidden")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "hello") || strings.Contains(string(data), "hidden") {
		t.Errorf("log file = %q", data)
	}
}

func TestNewLoggerRejectsLevel(t *testing.T) {
	_, closeLog, err := newLogger(config.LogConfig{Level: "loud"}, false)
	if err == nil {
		t.Error("unknown level should fail")
	}
	if closeLog == nil {
		t.Fatal("close function should not be nil on error")
	}
	closeLog()
}

func TestNewLoggerBadFileCloses(t *testing.T) {
	// A regular file where the log directory should be
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, closeLog, err := newLogger(config.LogConfig{Level: "info", File: filepath.Join(blocker, "arcade.log")}, true)
	if err == nil {
		t.Error("log file under a regular file should fail")
	}
	if closeLog == nil {
		t.Fatal("close function should not be nil on error")
	}
	closeLog()
}

func TestPrintScoresLimit(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	for _, score := range []int{100, 300, 200} {
		if _, err := store.SaveScore(storage.ScoreEntry{GameID: "breakout", Score: score, Level: 1}); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}

	tests := []struct {
		limit    int
		expected int
	}{
		{2, 2},
		{0, 3},
		{-1, 3},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		if err := printScores(&out, store, "breakout", "Breakout", tt.limit); err != nil {
			t.Fatalf("printScores(limit=%d): %v", tt.limit, err)
		}
		rows := 0
		for _, line := range strings.Split(out.String(), "\n") {
			if fields := strings.Fields(line); len(fields) > 0 && fields[0] >= "1" && fields[0] <= "9" {
				rows++
			}
		}
		if rows != tt.expected {
			t.Errorf("limit %d: printed %d rows, expected %d\n%s", tt.limit, rows, tt.expected, out.String())
		}
		if !strings.Contains(out.String(), "Best: 300") {
			t.Errorf("limit %d: summary missing\n%s", tt.limit, out.String())
		}
	}
}

func TestLoadStats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")
	store, err := storage.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := store.SaveScore(storage.ScoreEntry{GameID: "breakout", Score: 450, Level: 2}); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}
	store.Close()

	stats, err := loadStats(path)
	if err != nil {
		t.Fatalf("loadStats: %v", err)
	}
	if s, ok := stats["breakout"]; !ok || s.GamesCount != 1 || s.HighScore != 450 {
		t.Errorf("stats = %+v", stats)
	}

	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := loadStats(filepath.Join(blocker, "scores.db")); err == nil {
		t.Error("loadStats under a regular file should fail")
	}
}
