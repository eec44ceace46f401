package tui

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

func newTestSSHServer(t *testing.T) *SSHServer {
	t.Helper()
	dir := t.TempDir()

	cfg := SSHServerConfigFrom(config.DefaultConfig(), "breakout")
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "scores.db")

	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}
	return srv
}

func TestNewSSHServerUnknownGame(t *testing.T) {
	cfg := SSHServerConfigFrom(config.DefaultConfig(), "tetris")
	if _, err := NewSSHServer(cfg, log.New(io.Discard)); err == nil {
		t.Error("unknown game should fail")
	}
}

func TestSSHServerShutdownClosesStore(t *testing.T) {
	srv := newTestSSHServer(t)
	if srv.store == nil {
		t.Fatal("expected an open scores store")
	}
	if _, err := srv.store.SaveScore(storage.ScoreEntry{GameID: "breakout", Score: 10, Level: 1}); err != nil {
		t.Fatalf("store should be usable before shutdown: %v", err)
	}

	if err := srv.Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if _, err := srv.store.TopScores("breakout", 1); err == nil {
		t.Error("store should be closed after shutdown")
	}
}
